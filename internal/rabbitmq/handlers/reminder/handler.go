package reminder

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/appointment-reminder/internal/metrics"
	"github.com/aliskhannn/appointment-reminder/internal/model"
	"github.com/aliskhannn/appointment-reminder/internal/queue"
	rabbitqueue "github.com/aliskhannn/appointment-reminder/internal/rabbitmq/queue"
	"github.com/aliskhannn/appointment-reminder/internal/repository/dispatch"
	"github.com/aliskhannn/appointment-reminder/internal/timezone"
)

const defaultLockRetryDelay = 5 * time.Second

//go:generate mockgen -source=handler.go -destination=../../../mocks/rabbitmq/handlers/reminder/mock.go -package=mocks
type reminderService interface {
	Get(ctx context.Context, id uuid.UUID) (model.Dispatch, error)
	Deliver(ctx context.Context, d model.Dispatch) error
	MarkSent(ctx context.Context, strategy retry.Strategy, id uuid.UUID) (model.Dispatch, error)
	MarkFailed(ctx context.Context, strategy retry.Strategy, id uuid.UUID, reason string) (model.Dispatch, error)
}

type locker interface {
	Acquire(ctx context.Context, id uuid.UUID) (queue.Lease, bool, error)
	Release(ctx context.Context, lease queue.Lease) error
}

type taskQueue interface {
	Enqueue(ctx context.Context, id uuid.UUID, at time.Time) error
}

// Handler runs one delivery attempt per due task.
type Handler struct {
	service        reminderService
	locker         locker
	queue          taskQueue
	clock          timezone.Clock
	deliverTimeout time.Duration
	lockRetryDelay time.Duration
}

// NewHandler creates a handler whose delivery attempts end well inside
// lockTTL, so a lease never expires under a send in flight.
func NewHandler(svc reminderService, l locker, q taskQueue, clock timezone.Clock, lockTTL, lockRetryDelay time.Duration) *Handler {
	if lockTTL <= 0 {
		lockTTL = queue.DefaultLeaseTTL
	}
	if lockRetryDelay <= 0 {
		lockRetryDelay = defaultLockRetryDelay
	}

	return &Handler{
		service:        svc,
		locker:         l,
		queue:          q,
		clock:          clock,
		deliverTimeout: lockTTL * 3 / 4,
		lockRetryDelay: lockRetryDelay,
	}
}

// HandleMessage attempts delivery of the dispatch named by msg. The record
// is reloaded under its lease, so stale or duplicate tasks are no-ops.
func (h *Handler) HandleMessage(ctx context.Context, msg rabbitqueue.ReminderMessage, strategy retry.Strategy) {
	id := msg.ID

	lease, ok, err := h.locker.Acquire(ctx, id)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to acquire dispatch lease")
		h.enqueue(ctx, id, h.clock.Now().Add(h.lockRetryDelay))
		return
	}
	if !ok {
		metrics.IncLeaseBusy()
		zlog.Logger.Info().Str("id", id.String()).Msg("dispatch is being handled elsewhere, postponing")
		h.enqueue(ctx, id, h.clock.Now().Add(h.lockRetryDelay))
		return
	}
	defer h.release(ctx, lease)

	d, err := h.service.Get(ctx, id)
	if err != nil {
		if errors.Is(err, dispatch.ErrDispatchNotFound) {
			zlog.Logger.Warn().Str("id", id.String()).Msg("dispatch not found, dropping task")
			return
		}

		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to load dispatch")
		h.enqueue(ctx, id, h.clock.Now().Add(h.lockRetryDelay))
		return
	}

	if !d.Deliverable() {
		zlog.Logger.Info().Str("id", id.String()).Str("status", d.Status.String()).Msg("dispatch needs no delivery, skipping")
		return
	}

	if due := d.DueAt(); due.After(h.clock.Now()) {
		h.enqueue(ctx, id, due)
		return
	}

	if ctx.Err() != nil {
		// not attempted; the re-scan job picks the record up after restart
		zlog.Logger.Info().Str("id", id.String()).Msg("shutting down, leaving dispatch for later")
		return
	}

	// from here on the attempt runs to completion and its outcome is
	// recorded even when ctx is cancelled
	ctx = context.WithoutCancel(ctx)

	deliverCtx, cancel := context.WithTimeout(ctx, h.deliverTimeout)
	start := time.Now()
	sendErr := h.service.Deliver(deliverCtx, d)
	metrics.ObserveDelivery(time.Since(start))
	cancel()

	if sendErr == nil {
		metrics.IncDeliverySent()
		if _, err := h.service.MarkSent(ctx, strategy, id); err != nil {
			zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to mark dispatch sent")
			return
		}

		zlog.Logger.Info().Str("id", id.String()).Msg("reminder sent")
		return
	}

	metrics.IncDeliveryFailed()
	zlog.Logger.Error().Err(sendErr).Str("id", id.String()).Int("attempt", d.RetryCount+1).Msg("reminder delivery failed")

	updated, err := h.service.MarkFailed(ctx, strategy, id, sendErr.Error())
	if err != nil {
		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to mark dispatch failed")
		return
	}

	if updated.NextAttemptAt == nil {
		zlog.Logger.Warn().Str("id", id.String()).Int("retry_count", updated.RetryCount).Msg("reminder retries exhausted")
		return
	}

	h.enqueue(ctx, id, *updated.NextAttemptAt)
}

func (h *Handler) enqueue(ctx context.Context, id uuid.UUID, at time.Time) {
	if err := h.queue.Enqueue(ctx, id, at); err != nil {
		// the re-scan job picks the record up once it is due
		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to re-enqueue dispatch")
		return
	}

	metrics.IncEnqueued()
}

func (h *Handler) release(ctx context.Context, lease queue.Lease) {
	if err := h.locker.Release(context.WithoutCancel(ctx), lease); err != nil {
		zlog.Logger.Error().Err(err).Str("lease", lease.Key).Msg("failed to release dispatch lease")
	}
}
