package model

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// MaxAttempts is the number of delivery attempts after which a failed
// dispatch is no longer retried automatically.
const MaxAttempts = 3

// DefaultQueue is the queue name dispatches are created on.
const DefaultQueue = "reminders"

// backoffSchedule is the fixed delay before the automatic retry that
// follows the n-th failed attempt.
var backoffSchedule = [...]time.Duration{
	30 * time.Second,
	60 * time.Second,
	120 * time.Second,
}

var (
	ErrIllegalTransition = errors.New("illegal status transition")
	ErrInvalidDispatch   = errors.New("invalid dispatch")
)

// Status is the delivery state of a reminder dispatch.
type Status string

const (
	StatusPending   Status = "pending"
	StatusSent      Status = "sent"
	StatusFailed    Status = "failed"
	StatusCancelled Status = "cancelled"
)

// Statuses lists every status in a stable order.
var Statuses = []Status{StatusPending, StatusSent, StatusFailed, StatusCancelled}

// ParseStatus converts a raw string into a Status, rejecting unknown values.
func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.Valid() {
		return "", fmt.Errorf("unknown status %q", s)
	}

	return st, nil
}

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusSent, StatusFailed, StatusCancelled:
		return true
	default:
		return false
	}
}

func (s Status) String() string {
	return string(s)
}

// transitions is the closed set of legal status changes.
var transitions = map[Status][]Status{
	StatusPending:   {StatusSent, StatusFailed, StatusCancelled},
	StatusFailed:    {StatusSent, StatusFailed, StatusPending, StatusCancelled},
	StatusSent:      nil,
	StatusCancelled: nil,
}

// CanTransition reports whether a dispatch may move from one status to another.
func CanTransition(from, to Status) bool {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}

	return false
}

// SourcesOf returns, in Statuses order, every status that may move to to.
func SourcesOf(to Status) []Status {
	var from []Status
	for _, s := range Statuses {
		if CanTransition(s, to) {
			from = append(from, s)
		}
	}

	return from
}

// Channel selects the notifier used to deliver a dispatch.
type Channel string

const (
	ChannelEmail Channel = "email"
	ChannelSMS   Channel = "sms"
)

// ParseChannel converts a client preference into a Channel. Empty or
// unknown preferences fall back to email.
func ParseChannel(s string) Channel {
	switch Channel(s) {
	case ChannelSMS:
		return ChannelSMS
	default:
		return ChannelEmail
	}
}

func (c Channel) String() string {
	return string(c)
}

// Backoff returns the delay before the retry that follows the given
// failed attempt (1-based). Attempts past the table reuse its last entry.
func Backoff(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	if attempt > len(backoffSchedule) {
		attempt = len(backoffSchedule)
	}

	return backoffSchedule[attempt-1]
}

// Dispatch is one reminder delivery record for one appointment.
//
// Status, SentAt, RetryCount, ErrorMessage and NextAttemptAt are only
// changed through MarkSent, MarkFailed, Reset and Cancel.
type Dispatch struct {
	ID            uuid.UUID  `json:"id"`
	AppointmentID uuid.UUID  `json:"appointment_id"`
	ClientID      *uuid.UUID `json:"client_id,omitempty"` // nil targets every client of the appointment
	UserID        uuid.UUID  `json:"user_id"`
	ScheduledFor  time.Time  `json:"scheduled_for"`
	OffsetMinutes int        `json:"offset_minutes"`
	Status        Status     `json:"status"`
	SentAt        *time.Time `json:"sent_at"`
	RetryCount    int        `json:"retry_count"`
	ErrorMessage  *string    `json:"error_message"`
	Channel       Channel    `json:"notification_type"`
	Queue         string     `json:"queue"`
	NextAttemptAt *time.Time `json:"next_attempt_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// NewDispatch builds a pending dispatch for one client.
func NewDispatch(appointmentID, userID uuid.UUID, clientID *uuid.UUID, scheduledFor time.Time, offsetMinutes int, channel Channel) Dispatch {
	return Dispatch{
		ID:            uuid.New(),
		AppointmentID: appointmentID,
		ClientID:      clientID,
		UserID:        userID,
		ScheduledFor:  scheduledFor.UTC(),
		OffsetMinutes: offsetMinutes,
		Status:        StatusPending,
		Channel:       channel,
		Queue:         DefaultQueue,
	}
}

// Exhausted reports whether a failed dispatch has used up its automatic attempts.
func (d *Dispatch) Exhausted() bool {
	return d.Status == StatusFailed && d.RetryCount >= MaxAttempts
}

// Deliverable reports whether a delivery attempt may run for the dispatch.
func (d *Dispatch) Deliverable() bool {
	switch d.Status {
	case StatusPending:
		return true
	case StatusFailed:
		return !d.Exhausted()
	default:
		return false
	}
}

// DueAt returns the earliest instant the next attempt may run.
func (d *Dispatch) DueAt() time.Time {
	if d.Status == StatusFailed && d.NextAttemptAt != nil {
		return *d.NextAttemptAt
	}

	return d.ScheduledFor
}

// MarkSent records a successful delivery.
func (d *Dispatch) MarkSent(at time.Time) error {
	if err := d.transition(StatusSent); err != nil {
		return err
	}

	sentAt := at.UTC()
	d.Status = StatusSent
	d.SentAt = &sentAt
	d.ErrorMessage = nil
	d.NextAttemptAt = nil
	d.UpdatedAt = sentAt

	return nil
}

// MarkFailed records a failed delivery attempt and arms the next automatic
// retry while attempts remain.
func (d *Dispatch) MarkFailed(reason string, at time.Time) error {
	if err := d.transition(StatusFailed); err != nil {
		return err
	}

	at = at.UTC()
	d.Status = StatusFailed
	d.RetryCount++
	d.ErrorMessage = &reason
	d.NextAttemptAt = nil
	if d.RetryCount < MaxAttempts {
		next := at.Add(Backoff(d.RetryCount))
		d.NextAttemptAt = &next
	}
	d.UpdatedAt = at

	return nil
}

// Reset re-arms a failed dispatch for immediate delivery.
func (d *Dispatch) Reset(at time.Time) error {
	if d.Status != StatusFailed {
		return fmt.Errorf("%w: reset requires %s, got %s", ErrIllegalTransition, StatusFailed, d.Status)
	}
	if err := d.transition(StatusPending); err != nil {
		return err
	}

	at = at.UTC()
	d.Status = StatusPending
	d.ErrorMessage = nil
	d.RetryCount++
	d.ScheduledFor = at
	d.NextAttemptAt = nil
	d.UpdatedAt = at

	return nil
}

// Cancel stops any further delivery attempts.
func (d *Dispatch) Cancel(at time.Time) error {
	if err := d.transition(StatusCancelled); err != nil {
		return err
	}

	d.Status = StatusCancelled
	d.NextAttemptAt = nil
	d.UpdatedAt = at.UTC()

	return nil
}

func (d *Dispatch) transition(to Status) error {
	if !CanTransition(d.Status, to) {
		return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, d.Status, to)
	}

	return nil
}

// Validate checks the record invariants that must hold before every write.
func (d *Dispatch) Validate() error {
	switch {
	case !d.Status.Valid():
		return fmt.Errorf("%w: unknown status %q", ErrInvalidDispatch, d.Status)
	case (d.SentAt != nil) != (d.Status == StatusSent):
		return fmt.Errorf("%w: sent_at must be set only for sent dispatches", ErrInvalidDispatch)
	case d.RetryCount < 0:
		return fmt.Errorf("%w: negative retry count", ErrInvalidDispatch)
	case d.ScheduledFor.IsZero():
		return fmt.Errorf("%w: scheduled_for is not set", ErrInvalidDispatch)
	case d.ScheduledFor.Location() != time.UTC:
		return fmt.Errorf("%w: scheduled_for must be UTC", ErrInvalidDispatch)
	}

	return nil
}
