// Package retry re-arms failed reminder dispatches on operator request.
package retry

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	wbfretry "github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/appointment-reminder/internal/metrics"
	"github.com/aliskhannn/appointment-reminder/internal/model"
	"github.com/aliskhannn/appointment-reminder/internal/queue"
	"github.com/aliskhannn/appointment-reminder/internal/render"
	"github.com/aliskhannn/appointment-reminder/internal/timezone"
)

const defaultNotifyTimeout = 30 * time.Second

var ErrEmptyFilter = errors.New("retry filter selects nothing: set all, ids or queue")

//go:generate mockgen -source=service.go -destination=../../mocks/service/retry/mock.go -package=mocks

type dispatchStore interface {
	ListFailed(ctx context.Context, filter model.RetryFilter) ([]model.Dispatch, error)
	Reset(ctx context.Context, id uuid.UUID, at time.Time) (model.Dispatch, error)
}

type taskQueue interface {
	Enqueue(ctx context.Context, id uuid.UUID, at time.Time) error
}

type cache interface {
	SetWithRetry(ctx context.Context, strategy wbfretry.Strategy, key string, value interface{}) error
}

// Notifier delivers the operator summary.
type Notifier interface {
	Send(to string, msg string) error
}

type richNotifier interface {
	SendMessage(to, subject, text, html string) error
}

// Operator is where retry summaries go. A nil Notifier disables summaries.
type Operator struct {
	Notifier Notifier
	Address  string
	Timeout  time.Duration
}

type Service struct {
	store    dispatchStore
	queue    taskQueue
	cache    cache
	operator Operator
	clock    timezone.Clock

	wg sync.WaitGroup
}

func NewService(store dispatchStore, queue taskQueue, cache cache, operator Operator, clock timezone.Clock) *Service {
	if operator.Timeout <= 0 {
		operator.Timeout = defaultNotifyTimeout
	}

	return &Service{store: store, queue: queue, cache: cache, operator: operator, clock: clock}
}

// RetryFailed resets every failed dispatch selected by filter to pending
// and enqueues it for immediate delivery. Per-record failures are reported,
// not returned. When notify is set a summary is sent to the operator in the
// background.
func (s *Service) RetryFailed(ctx context.Context, strategy wbfretry.Strategy, filter model.RetryFilter, notify bool) (model.RetryReport, error) {
	if filter.Empty() {
		return model.RetryReport{}, ErrEmptyFilter
	}

	failed, err := s.store.ListFailed(ctx, filter)
	if err != nil {
		return model.RetryReport{}, fmt.Errorf("list failed dispatches: %w", err)
	}

	report := model.RetryReport{
		TotalProcessed: len(failed),
		Successful:     []model.RetryOutcome{},
		Failed:         []model.RetryOutcome{},
	}

	for _, d := range failed {
		outcome := model.RetryOutcome{ID: d.ID, Queue: d.Queue}

		if err := s.retryOne(ctx, strategy, d.ID); err != nil {
			zlog.Logger.Error().Err(err).Str("id", d.ID.String()).Msg("failed to retry dispatch")
			outcome.Message = err.Error()
			report.Failed = append(report.Failed, outcome)
			metrics.IncRetried(false)
			continue
		}

		outcome.Message = "Retried successfully"
		report.Successful = append(report.Successful, outcome)
		metrics.IncRetried(true)
	}

	zlog.Logger.Info().
		Int("processed", report.TotalProcessed).
		Int("successful", len(report.Successful)).
		Int("failed", len(report.Failed)).
		Msg("retry run finished")

	if notify && report.TotalProcessed > 0 {
		s.notifyOperator(report)
	}

	return report, nil
}

func (s *Service) retryOne(ctx context.Context, strategy wbfretry.Strategy, id uuid.UUID) error {
	now := s.clock.Now()

	d, err := s.store.Reset(ctx, id, now)
	if err != nil {
		return fmt.Errorf("reset: %w", err)
	}

	if err := s.cache.SetWithRetry(ctx, strategy, queue.StatusKey(id), string(d.Status)); err != nil {
		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to cache dispatch status")
	}

	if err := s.queue.Enqueue(ctx, id, d.ScheduledFor); err != nil {
		return fmt.Errorf("enqueue: %w", err)
	}

	return nil
}

// notifyOperator sends the run summary without blocking the caller. Errors
// are only logged.
func (s *Service) notifyOperator(report model.RetryReport) {
	if s.operator.Notifier == nil {
		return
	}

	msg := render.RetrySummary(report, s.clock.Now())

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), s.operator.Timeout)
		defer cancel()

		done := make(chan error, 1)
		go func() {
			if rn, ok := s.operator.Notifier.(richNotifier); ok {
				done <- rn.SendMessage(s.operator.Address, msg.Subject, msg.Text, "")
				return
			}
			done <- s.operator.Notifier.Send(s.operator.Address, msg.Text)
		}()

		select {
		case err := <-done:
			if err != nil {
				zlog.Logger.Error().Err(err).Msg("failed to send retry summary")
			}
		case <-ctx.Done():
			zlog.Logger.Error().Err(ctx.Err()).Msg("retry summary timed out")
		}
	}()
}

// Wait blocks until pending operator summaries have finished or timed out.
func (s *Service) Wait() {
	s.wg.Wait()
}
