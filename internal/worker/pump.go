package worker

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/appointment-reminder/internal/metrics"
	"github.com/aliskhannn/appointment-reminder/internal/rabbitmq/queue"
	"github.com/aliskhannn/appointment-reminder/internal/timezone"
)

//go:generate mockgen -source=pump.go -destination=../mocks/worker/pump_mock.go -package=mocks
type delayedSet interface {
	PopDue(ctx context.Context, now time.Time, limit int64) ([]uuid.UUID, error)
	Enqueue(ctx context.Context, id uuid.UUID, at time.Time) error
}

type reminderPublisher interface {
	Publish(msg queue.ReminderMessage, strategy retry.Strategy) error
}

// Pump moves due tasks from the delayed set onto the work queue.
type Pump struct {
	set       delayedSet
	publisher reminderPublisher
	clock     timezone.Clock
	interval  time.Duration
	batch     int
}

func NewPump(set delayedSet, pub reminderPublisher, clock timezone.Clock, interval time.Duration, batch int) *Pump {
	if interval <= 0 {
		interval = time.Second
	}
	if batch < 1 {
		batch = 100
	}

	return &Pump{set: set, publisher: pub, clock: clock, interval: interval, batch: batch}
}

// Run polls the delayed set every interval until ctx is done.
func (p *Pump) Run(ctx context.Context, strategy retry.Strategy) {
	t := time.NewTicker(p.interval)
	defer t.Stop()

	zlog.Logger.Printf("pump started, polling every %s", p.interval)

	for {
		select {
		case <-ctx.Done():
			zlog.Logger.Print("pump stopped")
			return
		case <-t.C:
			// drain backlogs larger than one batch without waiting a full tick
			for ctx.Err() == nil {
				if p.Tick(ctx, strategy) < p.batch {
					break
				}
			}
		}
	}
}

// Tick claims up to one batch of due tasks and publishes them. It returns
// how many tasks were claimed.
func (p *Pump) Tick(ctx context.Context, strategy retry.Strategy) int {
	now := p.clock.Now()

	ids, err := p.set.PopDue(ctx, now, int64(p.batch))
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to pop due reminders")
		return 0
	}

	published := 0
	for _, id := range ids {
		msg := queue.ReminderMessage{ID: id, ClaimedAt: now}
		if err := p.publisher.Publish(msg, strategy); err != nil {
			zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to publish reminder, putting it back")
			if err := p.set.Enqueue(ctx, id, now); err != nil {
				zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to put reminder back")
			}
			continue
		}
		published++
	}
	metrics.AddPumped(published)

	return len(ids)
}
