package dto

import "github.com/google/uuid"

// ScheduleRequest asks for reminders on an appointment. Exactly one of
// OffsetMinutes and ScheduledFor is expected.
type ScheduleRequest struct {
	OffsetMinutes *int      `json:"offset_minutes"`
	ScheduledFor  string    `json:"scheduled_for" validate:"omitempty,datetime=2006-01-02 15:04:05"` // wall clock time in Timezone
	Timezone      string    `json:"timezone" validate:"omitempty,timezone"`
	UserID        uuid.UUID `json:"user_id"`
}

// ScheduleResponse lists the created dispatch ids.
type ScheduleResponse struct {
	IDs          []uuid.UUID `json:"ids"`
	ScheduledFor string      `json:"scheduled_for"`
}

// RetryRequest selects failed dispatches to re-arm.
type RetryRequest struct {
	All    bool        `json:"all"`
	IDs    []uuid.UUID `json:"ids"`
	Queue  string      `json:"queue" validate:"omitempty,max=255"`
	Notify bool        `json:"notify"`
}

// CancelResponse reports how many dispatches were cancelled.
type CancelResponse struct {
	Cancelled int `json:"cancelled"`
}

// StatusResponse is the cached status of one dispatch.
type StatusResponse struct {
	ID     uuid.UUID `json:"id"`
	Status string    `json:"status"`
}
