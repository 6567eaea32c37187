package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Appointment is the collaborator view of an appointment needed to
// schedule and render reminders.
type Appointment struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Location    string    `json:"location,omitempty"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	Timezone    string    `json:"timezone"`
	Clients     []Client  `json:"clients"`
}

// Client is a reminder recipient.
type Client struct {
	ID                     uuid.UUID `json:"id"`
	FirstName              string    `json:"first_name"`
	LastName               string    `json:"last_name"`
	Email                  string    `json:"email"`
	Phone                  string    `json:"phone"`
	Timezone               string    `json:"timezone"`
	NotificationPreference string    `json:"reminder_preference"`
}

// FullName joins first and last name.
func (c Client) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

// Address returns the recipient address used by the given channel.
func (c Client) Address(ch Channel) string {
	if ch == ChannelSMS {
		return c.Phone
	}

	return c.Email
}
