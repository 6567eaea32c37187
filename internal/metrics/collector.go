package metrics

import (
	"context"
	"time"

	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/appointment-reminder/internal/model"
)

type statusCounter interface {
	CountByStatus(ctx context.Context) (map[model.Status]int64, error)
}

// StartStatusCollector refreshes the per-status gauges from the store
// every interval until ctx is done.
func StartStatusCollector(ctx context.Context, store statusCounter, interval time.Duration) {
	if store == nil {
		return
	}
	if interval <= 0 {
		interval = 15 * time.Second
	}

	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()

		updateStatusGauges(ctx, store)
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				updateStatusGauges(ctx, store)
			}
		}
	}()
}

func updateStatusGauges(ctx context.Context, store statusCounter) {
	counts, err := store.CountByStatus(ctx)
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("metrics: failed to count dispatches by status")
		return
	}

	for status, n := range counts {
		SetDispatchStatusCount(string(status), n)
	}
}
