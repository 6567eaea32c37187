package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/retry"

	mocks "github.com/aliskhannn/appointment-reminder/internal/mocks/worker"
	"github.com/aliskhannn/appointment-reminder/internal/rabbitmq/queue"
	"github.com/aliskhannn/appointment-reminder/internal/timezone"
)

func TestPump_Tick(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSet := mocks.NewMockdelayedSet(ctrl)
	mockPub := mocks.NewMockreminderPublisher(ctrl)
	now := time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC)
	p := NewPump(mockSet, mockPub, timezone.NewFixedClock(now), time.Second, 10)

	strategy := retry.Strategy{Attempts: 1, Delay: time.Millisecond}
	ok, broken := uuid.New(), uuid.New()

	mockSet.EXPECT().PopDue(gomock.Any(), now, int64(10)).Return([]uuid.UUID{ok, broken}, nil)
	mockPub.EXPECT().Publish(queue.ReminderMessage{ID: ok, ClaimedAt: now}, strategy).Return(nil)
	mockPub.EXPECT().Publish(queue.ReminderMessage{ID: broken, ClaimedAt: now}, strategy).Return(errors.New("channel closed"))
	// an unpublished task goes back to the set, due immediately
	mockSet.EXPECT().Enqueue(gomock.Any(), broken, now).Return(nil)

	assert.Equal(t, 2, p.Tick(context.Background(), strategy))
}

func TestPump_Tick_PopError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSet := mocks.NewMockdelayedSet(ctrl)
	p := NewPump(mockSet, nil, timezone.NewFixedClock(time.Now()), 0, 0)

	mockSet.EXPECT().PopDue(gomock.Any(), gomock.Any(), int64(100)).Return(nil, errors.New("redis down"))

	assert.Zero(t, p.Tick(context.Background(), retry.Strategy{}))
}

func TestPump_Run_StopsOnCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSet := mocks.NewMockdelayedSet(ctrl)
	p := NewPump(mockSet, nil, timezone.SystemClock{}, 5*time.Millisecond, 10)

	mockSet.EXPECT().PopDue(gomock.Any(), gomock.Any(), int64(10)).Return(nil, nil).MinTimes(1)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		p.Run(ctx, retry.Strategy{})
		close(done)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("pump did not stop")
	}
}
