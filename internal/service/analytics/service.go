package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/aliskhannn/appointment-reminder/internal/model"
	"github.com/aliskhannn/appointment-reminder/internal/repository/analytics"
	"github.com/aliskhannn/appointment-reminder/internal/timezone"
)

// DefaultLatestLimit is how many recent dispatches are listed per status.
const DefaultLatestLimit = 5

//go:generate mockgen -source=service.go -destination=../../mocks/service/analytics/mock.go -package=mocks
type snapshotter interface {
	Snapshot(ctx context.Context, w analytics.Window) (model.AnalyticsReport, error)
}

type Service struct {
	repo  snapshotter
	clock timezone.Clock
	loc   *time.Location
	limit int
}

// NewService builds the aggregator. "Today" is the calendar day in zone,
// which falls back to UTC when empty or unknown.
func NewService(repo snapshotter, clock timezone.Clock, zone string, limit int) *Service {
	if limit <= 0 {
		limit = DefaultLatestLimit
	}

	return &Service{repo: repo, clock: clock, loc: timezone.Resolve(zone), limit: limit}
}

// Analytics returns the dispatch rollup as of now.
func (s *Service) Analytics(ctx context.Context) (model.AnalyticsReport, error) {
	now := s.clock.Now()
	start, end := timezone.DayBounds(now, s.loc)

	report, err := s.repo.Snapshot(ctx, analytics.Window{
		Now:      now,
		DayStart: start,
		DayEnd:   end,
		Limit:    s.limit,
	})
	if err != nil {
		return model.AnalyticsReport{}, fmt.Errorf("analytics snapshot: %w", err)
	}

	return report, nil
}
