// Package scheduler turns an appointment and an offset into reminder
// dispatches and places them on the dispatch queue.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/appointment-reminder/internal/metrics"
	"github.com/aliskhannn/appointment-reminder/internal/model"
	"github.com/aliskhannn/appointment-reminder/internal/repository/appointment"
	"github.com/aliskhannn/appointment-reminder/internal/timezone"
)

// Offsets are expressed in minutes before the appointment start.
const (
	MinOffsetMinutes = 1
	MaxOffsetMinutes = 7 * 24 * 60
)

var (
	ErrInvalidOffset       = fmt.Errorf("offset must be between %d and %d minutes", MinOffsetMinutes, MaxOffsetMinutes)
	ErrNoRecipients        = errors.New("appointment has no clients")
	ErrScheduleInPast      = errors.New("reminder time is not in the future")
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrInvalidLocalTime    = errors.New("invalid local reminder time")
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/scheduler/mock.go -package=mocks
type appointmentLookup interface {
	GetAppointment(ctx context.Context, id uuid.UUID) (model.Appointment, error)
}

type dispatchStore interface {
	CreateBatch(ctx context.Context, dispatches []model.Dispatch) ([]model.Dispatch, error)
}

type taskQueue interface {
	Enqueue(ctx context.Context, id uuid.UUID, at time.Time) error
}

// ScheduleInput asks for reminders a fixed number of minutes before the appointment.
type ScheduleInput struct {
	AppointmentID uuid.UUID
	UserID        uuid.UUID // owner; defaults to the appointment owner
	OffsetMinutes int
}

// ScheduleAtInput asks for reminders at an explicit wall clock time.
type ScheduleAtInput struct {
	AppointmentID uuid.UUID
	UserID        uuid.UUID
	LocalTime     string // "2006-01-02 15:04:05"
	Timezone      string // zone of LocalTime; defaults to the appointment zone
}

type Service struct {
	appointments appointmentLookup
	store        dispatchStore
	queue        taskQueue
	clock        timezone.Clock
}

func NewService(appointments appointmentLookup, store dispatchStore, queue taskQueue, clock timezone.Clock) *Service {
	return &Service{appointments: appointments, store: store, queue: queue, clock: clock}
}

// Plan computes the fire time of a reminder. It has no side effects.
func Plan(start time.Time, offsetMinutes int, now time.Time) (time.Time, error) {
	if offsetMinutes < MinOffsetMinutes || offsetMinutes > MaxOffsetMinutes {
		return time.Time{}, ErrInvalidOffset
	}

	at := start.UTC().Add(-time.Duration(offsetMinutes) * time.Minute)
	if !at.After(now) {
		return time.Time{}, ErrScheduleInPast
	}

	return at, nil
}

// Schedule creates one pending dispatch per client of the appointment and
// enqueues them. Nothing is written when validation fails.
func (s *Service) Schedule(ctx context.Context, in ScheduleInput) ([]model.Dispatch, error) {
	if in.OffsetMinutes < MinOffsetMinutes || in.OffsetMinutes > MaxOffsetMinutes {
		return nil, ErrInvalidOffset
	}

	appt, err := s.lookup(ctx, in.AppointmentID)
	if err != nil {
		return nil, err
	}

	at, err := Plan(appt.StartTime, in.OffsetMinutes, s.clock.Now())
	if err != nil {
		return nil, err
	}

	return s.create(ctx, appt, in.UserID, at, in.OffsetMinutes)
}

// ScheduleAt is Schedule for an explicit local time. The offset is derived
// from the appointment start and must satisfy the same bounds. The time must
// lie a whole number of minutes before the start, so the stored offset and
// fire time always agree.
func (s *Service) ScheduleAt(ctx context.Context, in ScheduleAtInput) ([]model.Dispatch, error) {
	appt, err := s.lookup(ctx, in.AppointmentID)
	if err != nil {
		return nil, err
	}

	loc := timezone.ForRequest(in.Timezone, appt.Timezone)
	at, err := timezone.ParseLocal(in.LocalTime, loc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidLocalTime, err)
	}

	gap := appt.StartTime.Sub(at)
	if gap%time.Minute != 0 {
		return nil, fmt.Errorf("%w: %s is not a whole number of minutes before the appointment", ErrInvalidLocalTime, in.LocalTime)
	}

	offset := int(gap / time.Minute)
	if offset < MinOffsetMinutes || offset > MaxOffsetMinutes {
		return nil, ErrInvalidOffset
	}
	if !at.After(s.clock.Now()) {
		return nil, ErrScheduleInPast
	}

	return s.create(ctx, appt, in.UserID, at, offset)
}

func (s *Service) lookup(ctx context.Context, id uuid.UUID) (model.Appointment, error) {
	appt, err := s.appointments.GetAppointment(ctx, id)
	if err != nil {
		if errors.Is(err, appointment.ErrAppointmentNotFound) {
			return model.Appointment{}, ErrAppointmentNotFound
		}

		return model.Appointment{}, fmt.Errorf("get appointment: %w", err)
	}

	if len(appt.Clients) == 0 {
		return model.Appointment{}, ErrNoRecipients
	}

	return appt, nil
}

func (s *Service) create(ctx context.Context, appt model.Appointment, userID uuid.UUID, at time.Time, offset int) ([]model.Dispatch, error) {
	if userID == uuid.Nil {
		userID = appt.UserID
	}

	dispatches := make([]model.Dispatch, 0, len(appt.Clients))
	for _, c := range appt.Clients {
		clientID := c.ID
		dispatches = append(dispatches, model.NewDispatch(
			appt.ID, userID, &clientID, at, offset, model.ParseChannel(c.NotificationPreference),
		))
	}

	created, err := s.store.CreateBatch(ctx, dispatches)
	if err != nil {
		return nil, fmt.Errorf("create dispatches: %w", err)
	}
	metrics.AddScheduled(len(created))

	// A failed enqueue leaves the record pending; the rescan job picks it up when due.
	for _, d := range created {
		if err := s.queue.Enqueue(ctx, d.ID, d.ScheduledFor); err != nil {
			zlog.Logger.Error().Err(err).Str("dispatch_id", d.ID.String()).Msg("failed to enqueue reminder")
			continue
		}
		metrics.IncEnqueued()
	}

	zlog.Logger.Info().
		Str("appointment_id", appt.ID.String()).
		Int("count", len(created)).
		Time("scheduled_for", at).
		Msg("reminders scheduled")

	return created, nil
}
