package reminder

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/appointment-reminder/internal/model"
	"github.com/aliskhannn/appointment-reminder/internal/queue"
	"github.com/aliskhannn/appointment-reminder/internal/render"
	"github.com/aliskhannn/appointment-reminder/internal/repository/dispatch"
	"github.com/aliskhannn/appointment-reminder/internal/timezone"
)

// stateWriteTimeout bounds the status write that follows a delivery attempt.
const stateWriteTimeout = 15 * time.Second

var (
	ErrUnknownChannel = errors.New("no notifier for channel")
	ErrNoRecipients   = errors.New("dispatch has no recipients")
	ErrNoAddress      = errors.New("client has no address for channel")
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/reminder/mock.go -package=mocks

type dispatchStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (model.Dispatch, error)
	GetStatus(ctx context.Context, id uuid.UUID) (model.Status, error)
	ListByAppointment(ctx context.Context, appointmentID uuid.UUID, status *model.Status) ([]model.Dispatch, error)
	MarkSent(ctx context.Context, id uuid.UUID, at time.Time) (model.Dispatch, error)
	MarkFailed(ctx context.Context, id uuid.UUID, reason string, at time.Time) (model.Dispatch, error)
	Cancel(ctx context.Context, id uuid.UUID, at time.Time) (model.Dispatch, error)
	CancelByAppointment(ctx context.Context, appointmentID uuid.UUID, at time.Time) ([]uuid.UUID, error)
}

type appointmentLookup interface {
	GetAppointment(ctx context.Context, id uuid.UUID) (model.Appointment, error)
	GetClient(ctx context.Context, id uuid.UUID) (model.Client, error)
}

type cache interface {
	SetWithRetry(ctx context.Context, strategy retry.Strategy, key string, value interface{}) error
	GetWithRetry(ctx context.Context, strategy retry.Strategy, key string) (string, error)
}

// Notifier delivers a plain text message to one address.
type Notifier interface {
	Send(to string, msg string) error
}

// richNotifier is implemented by notifiers that can carry a subject and an HTML body.
type richNotifier interface {
	SendMessage(to, subject, text, html string) error
}

type Service struct {
	store        dispatchStore
	appointments appointmentLookup
	notifiers    map[model.Channel]Notifier
	cache        cache
	clock        timezone.Clock
}

func NewService(
	store dispatchStore,
	appointments appointmentLookup,
	notifiers map[model.Channel]Notifier,
	cache cache,
	clock timezone.Clock,
) *Service {
	return &Service{
		store:        store,
		appointments: appointments,
		notifiers:    notifiers,
		cache:        cache,
		clock:        clock,
	}
}

// GetStatus returns the dispatch status, preferring the cache.
func (s *Service) GetStatus(ctx context.Context, strategy retry.Strategy, id uuid.UUID) (model.Status, error) {
	cached, err := s.cache.GetWithRetry(ctx, strategy, queue.StatusKey(id))
	if err == nil {
		if st, perr := model.ParseStatus(cached); perr == nil {
			return st, nil
		}
	} else if !errors.Is(err, redis.Nil) {
		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to get dispatch status from cache")
	}

	status, err := s.store.GetStatus(ctx, id)
	if err != nil {
		return "", fmt.Errorf("get dispatch status: %w", err)
	}

	s.cacheStatus(ctx, strategy, id, status)

	return status, nil
}

// Get loads a dispatch from the store.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (model.Dispatch, error) {
	d, err := s.store.GetByID(ctx, id)
	if err != nil {
		return model.Dispatch{}, fmt.Errorf("get dispatch: %w", err)
	}

	return d, nil
}

// ListForAppointment returns the dispatches of an appointment, optionally filtered by status.
func (s *Service) ListForAppointment(ctx context.Context, appointmentID uuid.UUID, status *model.Status) ([]model.Dispatch, error) {
	ds, err := s.store.ListByAppointment(ctx, appointmentID, status)
	if err != nil {
		return nil, fmt.Errorf("list dispatches: %w", err)
	}

	return ds, nil
}

// CancelForAppointment cancels every open dispatch of an appointment and
// returns how many were cancelled. Queued tasks become no-ops when they fire.
func (s *Service) CancelForAppointment(ctx context.Context, strategy retry.Strategy, appointmentID uuid.UUID) (int, error) {
	ids, err := s.store.CancelByAppointment(ctx, appointmentID, s.clock.Now())
	if err != nil {
		return 0, fmt.Errorf("cancel dispatches: %w", err)
	}

	for _, id := range ids {
		s.cacheStatus(ctx, strategy, id, model.StatusCancelled)
	}

	return len(ids), nil
}

// Cancel stops a single dispatch. Sent and cancelled dispatches are rejected
// with model.ErrIllegalTransition.
func (s *Service) Cancel(ctx context.Context, strategy retry.Strategy, id uuid.UUID) (model.Dispatch, error) {
	d, err := s.store.Cancel(ctx, id, s.clock.Now())
	if err != nil {
		return model.Dispatch{}, fmt.Errorf("cancel dispatch: %w", err)
	}

	s.cacheStatus(ctx, strategy, id, d.Status)

	return d, nil
}

// Deliver renders and sends the reminder of d to each of its recipients.
// Every recipient is attempted while ctx is live; any failure fails the
// whole dispatch.
func (s *Service) Deliver(ctx context.Context, d model.Dispatch) error {
	notifier, ok := s.notifiers[d.Channel]
	if !ok {
		return fmt.Errorf("%w %q", ErrUnknownChannel, d.Channel)
	}

	appt, err := s.appointments.GetAppointment(ctx, d.AppointmentID)
	if err != nil {
		return fmt.Errorf("get appointment: %w", err)
	}

	recipients, err := s.recipients(ctx, appt, d)
	if err != nil {
		return err
	}

	var errs []error
	for _, c := range recipients {
		// past the deadline the lease may already belong to another worker
		if err := ctx.Err(); err != nil {
			errs = append(errs, fmt.Errorf("client %s: not attempted: %w", c.ID, err))
			continue
		}

		if err := send(notifier, appt, c, d.Channel); err != nil {
			errs = append(errs, fmt.Errorf("client %s: %w", c.ID, err))
		}
	}

	return errors.Join(errs...)
}

// MarkSent records a successful delivery, retrying store errors with strategy.
func (s *Service) MarkSent(ctx context.Context, strategy retry.Strategy, id uuid.UUID) (model.Dispatch, error) {
	return s.transition(ctx, strategy, id, func(ctx context.Context) (model.Dispatch, error) {
		return s.store.MarkSent(ctx, id, s.clock.Now())
	})
}

// MarkFailed records a failed delivery, retrying store errors with strategy.
func (s *Service) MarkFailed(ctx context.Context, strategy retry.Strategy, id uuid.UUID, reason string) (model.Dispatch, error) {
	return s.transition(ctx, strategy, id, func(ctx context.Context) (model.Dispatch, error) {
		return s.store.MarkFailed(ctx, id, reason, s.clock.Now())
	})
}

// transition writes the outcome of an attempt that has already happened.
// The write is detached from ctx so a shutdown cannot drop it; only
// stateWriteTimeout bounds it.
func (s *Service) transition(ctx context.Context, strategy retry.Strategy, id uuid.UUID, apply func(context.Context) (model.Dispatch, error)) (model.Dispatch, error) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), stateWriteTimeout)
	defer cancel()

	var (
		out       model.Dispatch
		permanent error
	)

	err := retry.Do(func() error {
		if err := ctx.Err(); err != nil {
			permanent = err
			return nil
		}

		d, err := apply(ctx)
		switch {
		case err == nil:
			out = d
			return nil
		case errors.Is(err, model.ErrIllegalTransition), errors.Is(err, dispatch.ErrDispatchNotFound):
			permanent = err
			return nil
		default:
			return err
		}
	}, strategy)
	if err == nil {
		err = permanent
	}
	if err != nil {
		return model.Dispatch{}, fmt.Errorf("update dispatch %s: %w", id, err)
	}

	s.cacheStatus(ctx, strategy, id, out.Status)

	return out, nil
}

func (s *Service) recipients(ctx context.Context, appt model.Appointment, d model.Dispatch) ([]model.Client, error) {
	if d.ClientID == nil {
		if len(appt.Clients) == 0 {
			return nil, ErrNoRecipients
		}

		return appt.Clients, nil
	}

	for _, c := range appt.Clients {
		if c.ID == *d.ClientID {
			return []model.Client{c}, nil
		}
	}

	// the client may have been detached from the appointment after scheduling
	c, err := s.appointments.GetClient(ctx, *d.ClientID)
	if err != nil {
		return nil, fmt.Errorf("get client: %w", err)
	}

	return []model.Client{c}, nil
}

func send(n Notifier, appt model.Appointment, c model.Client, ch model.Channel) error {
	to := c.Address(ch)
	if to == "" {
		return ErrNoAddress
	}

	msg, err := render.Reminder(appt, c)
	if err != nil {
		return err
	}

	if rn, ok := n.(richNotifier); ok {
		return rn.SendMessage(to, msg.Subject, msg.Text, msg.HTML)
	}

	return n.Send(to, msg.Text)
}

func (s *Service) cacheStatus(ctx context.Context, strategy retry.Strategy, id uuid.UUID, status model.Status) {
	if err := s.cache.SetWithRetry(ctx, strategy, queue.StatusKey(id), string(status)); err != nil {
		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to cache dispatch status")
	}
}
