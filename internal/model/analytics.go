package model

import (
	"time"

	"github.com/google/uuid"
)

// AnalyticsReport is the read-only rollup over all dispatches.
type AnalyticsReport struct {
	Summary Summary        `json:"summary"`
	Today   TodayStats     `json:"today_stats"`
	Latest  LatestByStatus `json:"latest_reminders"`
	AsOf    time.Time      `json:"as_of"`
}

// Summary counts dispatches by status. Upcoming is the subset of pending
// dispatches scheduled after the report time.
type Summary struct {
	Total     int64 `json:"total_reminders"`
	Pending   int64 `json:"pending_reminders"`
	Sent      int64 `json:"sent_reminders"`
	Failed    int64 `json:"failed_reminders"`
	Cancelled int64 `json:"cancelled_reminders"`
	Upcoming  int64 `json:"upcoming_reminders"`
}

// TodayStats restricts the sent, failed and upcoming buckets to the current day.
type TodayStats struct {
	Sent     int64 `json:"sent"`
	Failed   int64 `json:"failed"`
	Upcoming int64 `json:"upcoming"`
}

// LatestByStatus holds the most recent dispatches of each bucket.
type LatestByStatus struct {
	Sent     []DispatchDigest `json:"sent"`
	Failed   []DispatchDigest `json:"failed"`
	Upcoming []DispatchDigest `json:"upcoming"`
}

// DispatchDigest is the compact projection used by analytics.
type DispatchDigest struct {
	ID           uuid.UUID         `json:"id"`
	Appointment  AppointmentDigest `json:"appointment"`
	User         string            `json:"user"`
	SentAt       *time.Time        `json:"sent_at,omitempty"`
	ScheduledFor *time.Time        `json:"scheduled_for,omitempty"`
	ErrorMessage *string           `json:"error_message,omitempty"`
}

// AppointmentDigest is the appointment part of a DispatchDigest.
type AppointmentDigest struct {
	Title     string    `json:"title"`
	StartTime time.Time `json:"start_datetime"`
}
