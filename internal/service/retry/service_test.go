package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	wbfretry "github.com/wb-go/wbf/retry"

	mocks "github.com/aliskhannn/appointment-reminder/internal/mocks/service/retry"
	"github.com/aliskhannn/appointment-reminder/internal/model"
	"github.com/aliskhannn/appointment-reminder/internal/queue"
	"github.com/aliskhannn/appointment-reminder/internal/timezone"
)

var testNow = time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)

func failedDispatch(retries int) model.Dispatch {
	next := testNow.Add(-time.Hour)
	reason := "smtp timeout"
	return model.Dispatch{
		ID:            uuid.New(),
		Status:        model.StatusFailed,
		RetryCount:    retries,
		ErrorMessage:  &reason,
		ScheduledFor:  next,
		Queue:         model.DefaultQueue,
		NextAttemptAt: nil,
	}
}

func TestService_RetryFailed_EmptyFilter(t *testing.T) {
	svc := NewService(nil, nil, nil, Operator{}, timezone.NewFixedClock(testNow))

	_, err := svc.RetryFailed(context.Background(), wbfretry.Strategy{}, model.RetryFilter{}, false)
	assert.ErrorIs(t, err, ErrEmptyFilter)
}

func TestService_RetryFailed_NothingSelected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	storeMock := mocks.NewMockdispatchStore(ctrl)
	notifierMock := mocks.NewMockNotifier(ctrl)
	svc := NewService(storeMock, nil, nil, Operator{Notifier: notifierMock}, timezone.NewFixedClock(testNow))

	filter := model.RetryFilter{Queue: "reminders"}
	storeMock.EXPECT().ListFailed(gomock.Any(), filter).Return(nil, nil)

	report, err := svc.RetryFailed(context.Background(), wbfretry.Strategy{}, filter, true)
	svc.Wait()

	require.NoError(t, err)
	assert.Zero(t, report.TotalProcessed)
	assert.Empty(t, report.Successful)
	assert.Empty(t, report.Failed)
}

func TestService_RetryFailed_Report(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	storeMock := mocks.NewMockdispatchStore(ctrl)
	queueMock := mocks.NewMocktaskQueue(ctrl)
	cacheMock := mocks.NewMockcache(ctrl)
	svc := NewService(storeMock, queueMock, cacheMock, Operator{}, timezone.NewFixedClock(testNow))

	terminal := failedDispatch(model.MaxAttempts)
	raced := failedDispatch(1)
	broken := failedDispatch(2)
	filter := model.RetryFilter{All: true}

	// a terminal record comes back pending with one more attempt counted
	reset := terminal
	require.NoError(t, reset.Reset(testNow))
	assert.Equal(t, 4, reset.RetryCount)
	assert.Nil(t, reset.ErrorMessage)

	storeMock.EXPECT().ListFailed(gomock.Any(), filter).Return([]model.Dispatch{terminal, raced, broken}, nil)

	storeMock.EXPECT().Reset(gomock.Any(), terminal.ID, testNow).Return(reset, nil)
	cacheMock.EXPECT().SetWithRetry(gomock.Any(), gomock.Any(), queue.StatusKey(terminal.ID), "pending").Return(nil)
	queueMock.EXPECT().Enqueue(gomock.Any(), terminal.ID, testNow).Return(nil)

	storeMock.EXPECT().Reset(gomock.Any(), raced.ID, testNow).Return(model.Dispatch{}, model.ErrIllegalTransition)

	brokenReset := broken
	require.NoError(t, brokenReset.Reset(testNow))
	storeMock.EXPECT().Reset(gomock.Any(), broken.ID, testNow).Return(brokenReset, nil)
	cacheMock.EXPECT().SetWithRetry(gomock.Any(), gomock.Any(), queue.StatusKey(broken.ID), "pending").Return(errors.New("redis down"))
	queueMock.EXPECT().Enqueue(gomock.Any(), broken.ID, testNow).Return(errors.New("redis down"))

	report, err := svc.RetryFailed(context.Background(), wbfretry.Strategy{}, filter, false)
	require.NoError(t, err)

	assert.Equal(t, 3, report.TotalProcessed)
	require.Len(t, report.Successful, 1)
	assert.Equal(t, terminal.ID, report.Successful[0].ID)
	assert.Equal(t, "reminders", report.Successful[0].Queue)

	require.Len(t, report.Failed, 2)
	assert.Equal(t, raced.ID, report.Failed[0].ID)
	assert.Contains(t, report.Failed[0].Message, "reset")
	assert.Equal(t, broken.ID, report.Failed[1].ID)
	assert.Contains(t, report.Failed[1].Message, "enqueue")
}

func TestService_RetryFailed_NotifiesOperator(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	storeMock := mocks.NewMockdispatchStore(ctrl)
	queueMock := mocks.NewMocktaskQueue(ctrl)
	cacheMock := mocks.NewMockcache(ctrl)
	notifierMock := mocks.NewMockNotifier(ctrl)
	svc := NewService(storeMock, queueMock, cacheMock, Operator{Notifier: notifierMock, Address: "ops-chat"}, timezone.NewFixedClock(testNow))

	d := failedDispatch(1)
	reset := d
	require.NoError(t, reset.Reset(testNow))

	storeMock.EXPECT().ListFailed(gomock.Any(), gomock.Any()).Return([]model.Dispatch{d}, nil)
	storeMock.EXPECT().Reset(gomock.Any(), d.ID, testNow).Return(reset, nil)
	cacheMock.EXPECT().SetWithRetry(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	queueMock.EXPECT().Enqueue(gomock.Any(), d.ID, testNow).Return(nil)
	notifierMock.EXPECT().Send("ops-chat", gomock.Any()).
		DoAndReturn(func(_, msg string) error {
			assert.Contains(t, msg, "Successfully retried: 1 reminders")
			assert.Contains(t, msg, "Failed to retry: 0 reminders")
			return errors.New("telegram unavailable")
		})

	_, err := svc.RetryFailed(context.Background(), wbfretry.Strategy{}, model.RetryFilter{IDs: []uuid.UUID{d.ID}}, true)
	require.NoError(t, err)

	svc.Wait()
}

func TestService_NotifyOperator_Timeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	notifierMock := mocks.NewMockNotifier(ctrl)
	release := make(chan struct{})
	defer close(release)

	svc := NewService(nil, nil, nil, Operator{Notifier: notifierMock, Timeout: 20 * time.Millisecond}, timezone.NewFixedClock(testNow))

	notifierMock.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(func(_, _ string) error {
		<-release
		return nil
	}).AnyTimes()

	start := time.Now()
	svc.notifyOperator(model.RetryReport{TotalProcessed: 1})
	svc.Wait()

	assert.Less(t, time.Since(start), time.Second)
}
