package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/appointment-reminder/internal/metrics"
	"github.com/aliskhannn/appointment-reminder/internal/timezone"
)

// DefaultRescanSpec runs the re-scan once a minute.
const DefaultRescanSpec = "* * * * *"

//go:generate mockgen -source=rescan.go -destination=../mocks/worker/rescan_mock.go -package=mocks
type dueLister interface {
	ListDue(ctx context.Context, now time.Time, limit int) ([]uuid.UUID, error)
}

type taskQueue interface {
	Enqueue(ctx context.Context, id uuid.UUID, at time.Time) error
}

// Rescanner re-enqueues due records whose tasks were lost, e.g. after a
// failed enqueue or a redis restart.
type Rescanner struct {
	store dueLister
	queue taskQueue
	clock timezone.Clock
	batch int

	stopped chan struct{}
}

func NewRescanner(store dueLister, q taskQueue, clock timezone.Clock, batch int) *Rescanner {
	if batch < 1 {
		batch = 500
	}

	return &Rescanner{store: store, queue: q, clock: clock, batch: batch, stopped: make(chan struct{})}
}

// Rescan enqueues every due record for immediate delivery and returns how
// many were enqueued.
func (r *Rescanner) Rescan(ctx context.Context) (int, error) {
	now := r.clock.Now()

	ids, err := r.store.ListDue(ctx, now, r.batch)
	if err != nil {
		return 0, fmt.Errorf("list due dispatches: %w", err)
	}

	n := 0
	for _, id := range ids {
		if err := r.queue.Enqueue(ctx, id, now); err != nil {
			zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("rescan: failed to enqueue dispatch")
			continue
		}
		metrics.IncEnqueued()
		n++
	}

	return n, nil
}

// Start runs Rescan on the cron schedule spec until ctx is done.
func (r *Rescanner) Start(ctx context.Context, spec string) error {
	if spec == "" {
		spec = DefaultRescanSpec
	}

	c := cron.New()
	_, err := c.AddFunc(spec, func() {
		n, err := r.Rescan(ctx)
		if err != nil {
			zlog.Logger.Error().Err(err).Msg("rescan failed")
			return
		}
		if n > 0 {
			zlog.Logger.Info().Int("count", n).Msg("rescan enqueued due reminders")
		}
	})
	if err != nil {
		return fmt.Errorf("schedule rescan %q: %w", spec, err)
	}

	c.Start()
	zlog.Logger.Printf("rescan scheduled with spec %q", spec)

	go func() {
		<-ctx.Done()
		<-c.Stop().Done()
		close(r.stopped)
		zlog.Logger.Print("rescan stopped")
	}()

	return nil
}

// Wait blocks until a started rescan schedule has stopped and its last run
// has returned.
func (r *Rescanner) Wait() {
	<-r.stopped
}
