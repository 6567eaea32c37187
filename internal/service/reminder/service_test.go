package reminder

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/retry"

	mocks "github.com/aliskhannn/appointment-reminder/internal/mocks/service/reminder"
	"github.com/aliskhannn/appointment-reminder/internal/model"
	"github.com/aliskhannn/appointment-reminder/internal/queue"
	"github.com/aliskhannn/appointment-reminder/internal/repository/dispatch"
	"github.com/aliskhannn/appointment-reminder/internal/timezone"
)

var testNow = time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC)

// emailNotifier satisfies both Notifier and richNotifier.
type emailNotifier struct {
	*mocks.MockNotifier
	*mocks.MockrichNotifier
}

func testAppointment() (model.Appointment, model.Client, model.Client) {
	ny := model.Client{ID: uuid.New(), FirstName: "Ann", Email: "ann@example.com", Phone: "+15550001", Timezone: "America/New_York"}
	in := model.Client{ID: uuid.New(), FirstName: "Ravi", Email: "ravi@example.com", Phone: "+915550002", Timezone: "Asia/Kolkata"}

	return model.Appointment{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		Title:     "Dental cleaning",
		StartTime: time.Date(2025, 6, 10, 15, 0, 0, 0, time.UTC),
		Timezone:  "UTC",
		Clients:   []model.Client{ny, in},
	}, ny, in
}

func TestService_GetStatus_CacheHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cacheMock := mocks.NewMockcache(ctrl)
	svc := NewService(nil, nil, nil, cacheMock, timezone.NewFixedClock(testNow))

	id := uuid.New()
	strategy := retry.Strategy{}

	cacheMock.EXPECT().GetWithRetry(gomock.Any(), strategy, queue.StatusKey(id)).Return("sent", nil)

	status, err := svc.GetStatus(context.Background(), strategy, id)
	assert.NoError(t, err)
	assert.Equal(t, model.StatusSent, status)
}

func TestService_GetStatus_CacheMiss(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	storeMock := mocks.NewMockdispatchStore(ctrl)
	cacheMock := mocks.NewMockcache(ctrl)
	svc := NewService(storeMock, nil, nil, cacheMock, timezone.NewFixedClock(testNow))

	id := uuid.New()
	strategy := retry.Strategy{}

	cacheMock.EXPECT().GetWithRetry(gomock.Any(), strategy, queue.StatusKey(id)).Return("", redis.Nil)
	storeMock.EXPECT().GetStatus(gomock.Any(), id).Return(model.StatusPending, nil)
	cacheMock.EXPECT().SetWithRetry(gomock.Any(), strategy, queue.StatusKey(id), "pending").Return(nil)

	status, err := svc.GetStatus(context.Background(), strategy, id)
	assert.NoError(t, err)
	assert.Equal(t, model.StatusPending, status)
}

func TestService_GetStatus_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	storeMock := mocks.NewMockdispatchStore(ctrl)
	cacheMock := mocks.NewMockcache(ctrl)
	svc := NewService(storeMock, nil, nil, cacheMock, timezone.NewFixedClock(testNow))

	id := uuid.New()
	cacheMock.EXPECT().GetWithRetry(gomock.Any(), gomock.Any(), queue.StatusKey(id)).Return("", errors.New("redis down"))
	storeMock.EXPECT().GetStatus(gomock.Any(), id).Return(model.Status(""), dispatch.ErrDispatchNotFound)

	_, err := svc.GetStatus(context.Background(), retry.Strategy{}, id)
	assert.ErrorIs(t, err, dispatch.ErrDispatchNotFound)
}

func TestService_Deliver_RendersInClientZone(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	lookupMock := mocks.NewMockappointmentLookup(ctrl)
	email := emailNotifier{mocks.NewMockNotifier(ctrl), mocks.NewMockrichNotifier(ctrl)}
	svc := NewService(nil, lookupMock, map[model.Channel]Notifier{model.ChannelEmail: email}, nil, timezone.NewFixedClock(testNow))

	appt, ny, in := testAppointment()

	lookupMock.EXPECT().GetAppointment(gomock.Any(), appt.ID).Return(appt, nil).Times(2)
	email.MockrichNotifier.EXPECT().
		SendMessage(ny.Email, "Appointment Reminder", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_, _, text, html string) error {
			assert.Contains(t, text, "11:00 AM")
			assert.Contains(t, html, "11:00 AM")
			return nil
		})
	email.MockrichNotifier.EXPECT().
		SendMessage(in.Email, "Appointment Reminder", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_, _, text, _ string) error {
			assert.Contains(t, text, "8:30 PM")
			return nil
		})

	for _, c := range []model.Client{ny, in} {
		id := c.ID
		d := model.NewDispatch(appt.ID, appt.UserID, &id, testNow, 60, model.ChannelEmail)
		require.NoError(t, svc.Deliver(context.Background(), d))
	}
}

func TestService_Deliver_LegacyFansOutAndJoinsErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	lookupMock := mocks.NewMockappointmentLookup(ctrl)
	smsMock := mocks.NewMockNotifier(ctrl)
	svc := NewService(nil, lookupMock, map[model.Channel]Notifier{model.ChannelSMS: smsMock}, nil, timezone.NewFixedClock(testNow))

	appt, ny, in := testAppointment()
	d := model.NewDispatch(appt.ID, appt.UserID, nil, testNow, 60, model.ChannelSMS)

	lookupMock.EXPECT().GetAppointment(gomock.Any(), appt.ID).Return(appt, nil)
	smsMock.EXPECT().Send(ny.Phone, gomock.Any()).Return(nil)
	smsMock.EXPECT().Send(in.Phone, gomock.Any()).Return(errors.New("twilio: invalid number"))

	err := svc.Deliver(context.Background(), d)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "twilio: invalid number")
	assert.Contains(t, err.Error(), in.ID.String())
}

func TestService_Deliver_DetachedClient(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	lookupMock := mocks.NewMockappointmentLookup(ctrl)
	smsMock := mocks.NewMockNotifier(ctrl)
	svc := NewService(nil, lookupMock, map[model.Channel]Notifier{model.ChannelSMS: smsMock}, nil, timezone.NewFixedClock(testNow))

	appt, _, _ := testAppointment()
	gone := model.Client{ID: uuid.New(), FirstName: "Lee"}
	d := model.NewDispatch(appt.ID, appt.UserID, &gone.ID, testNow, 60, model.ChannelSMS)

	lookupMock.EXPECT().GetAppointment(gomock.Any(), appt.ID).Return(appt, nil)
	lookupMock.EXPECT().GetClient(gomock.Any(), gone.ID).Return(gone, nil)

	err := svc.Deliver(context.Background(), d)
	assert.ErrorIs(t, err, ErrNoAddress)
}

func TestService_Deliver_UnknownChannel(t *testing.T) {
	svc := NewService(nil, nil, map[model.Channel]Notifier{}, nil, timezone.NewFixedClock(testNow))

	d := model.NewDispatch(uuid.New(), uuid.New(), nil, testNow, 60, model.ChannelSMS)
	assert.ErrorIs(t, svc.Deliver(context.Background(), d), ErrUnknownChannel)
}

func TestService_MarkSent_IllegalTransitionNotRetried(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	storeMock := mocks.NewMockdispatchStore(ctrl)
	cacheMock := mocks.NewMockcache(ctrl)
	svc := NewService(storeMock, nil, nil, cacheMock, timezone.NewFixedClock(testNow))

	id := uuid.New()
	strategy := retry.Strategy{Attempts: 3, Delay: time.Millisecond, Backoff: 1}

	storeMock.EXPECT().MarkSent(gomock.Any(), id, testNow).
		Return(model.Dispatch{}, fmt.Errorf("%w: sent -> sent", model.ErrIllegalTransition)).
		Times(1)

	_, err := svc.MarkSent(context.Background(), strategy, id)
	assert.ErrorIs(t, err, model.ErrIllegalTransition)
}

func TestService_MarkFailed_RetriesStoreErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	storeMock := mocks.NewMockdispatchStore(ctrl)
	cacheMock := mocks.NewMockcache(ctrl)
	svc := NewService(storeMock, nil, nil, cacheMock, timezone.NewFixedClock(testNow))

	id := uuid.New()
	strategy := retry.Strategy{Attempts: 2, Delay: time.Millisecond, Backoff: 1}
	failed := model.Dispatch{ID: id, Status: model.StatusFailed, RetryCount: 1}

	gomock.InOrder(
		storeMock.EXPECT().MarkFailed(gomock.Any(), id, "smtp timeout", testNow).Return(model.Dispatch{}, errors.New("connection reset")),
		storeMock.EXPECT().MarkFailed(gomock.Any(), id, "smtp timeout", testNow).Return(failed, nil),
	)
	cacheMock.EXPECT().SetWithRetry(gomock.Any(), strategy, queue.StatusKey(id), "failed").Return(nil)

	got, err := svc.MarkFailed(context.Background(), strategy, id, "smtp timeout")
	require.NoError(t, err)
	assert.Equal(t, 1, got.RetryCount)
}

func TestService_CancelForAppointment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	storeMock := mocks.NewMockdispatchStore(ctrl)
	cacheMock := mocks.NewMockcache(ctrl)
	svc := NewService(storeMock, nil, nil, cacheMock, timezone.NewFixedClock(testNow))

	apptID := uuid.New()
	ids := []uuid.UUID{uuid.New(), uuid.New()}

	storeMock.EXPECT().CancelByAppointment(gomock.Any(), apptID, testNow).Return(ids, nil)
	cacheMock.EXPECT().SetWithRetry(gomock.Any(), gomock.Any(), gomock.Any(), "cancelled").Return(nil).Times(2)

	n, err := svc.CancelForAppointment(context.Background(), retry.Strategy{}, apptID)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestService_Cancel_SentIsRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	storeMock := mocks.NewMockdispatchStore(ctrl)
	svc := NewService(storeMock, nil, nil, nil, timezone.NewFixedClock(testNow))

	id := uuid.New()
	storeMock.EXPECT().Cancel(gomock.Any(), id, testNow).
		Return(model.Dispatch{}, fmt.Errorf("%w: sent -> cancelled", model.ErrIllegalTransition))

	_, err := svc.Cancel(context.Background(), retry.Strategy{}, id)
	assert.ErrorIs(t, err, model.ErrIllegalTransition)
}

func TestService_MarkSent_PersistsAfterShutdown(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	storeMock := mocks.NewMockdispatchStore(ctrl)
	cacheMock := mocks.NewMockcache(ctrl)
	svc := NewService(storeMock, nil, nil, cacheMock, timezone.NewFixedClock(testNow))

	id := uuid.New()
	strategy := retry.Strategy{Attempts: 1, Delay: time.Millisecond}
	sent := model.Dispatch{ID: id, Status: model.StatusSent}

	// the worker context is cancelled between the send and the status write
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	storeMock.EXPECT().MarkSent(gomock.Any(), id, testNow).
		DoAndReturn(func(writeCtx context.Context, _ uuid.UUID, _ time.Time) (model.Dispatch, error) {
			assert.NoError(t, writeCtx.Err())
			_, hasDeadline := writeCtx.Deadline()
			assert.True(t, hasDeadline)
			return sent, nil
		})
	cacheMock.EXPECT().SetWithRetry(gomock.Any(), strategy, queue.StatusKey(id), "sent").Return(nil)

	got, err := svc.MarkSent(ctx, strategy, id)
	require.NoError(t, err)
	assert.Equal(t, model.StatusSent, got.Status)
}

func TestService_Deliver_StopsAtDeadline(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	lookupMock := mocks.NewMockappointmentLookup(ctrl)
	smsMock := mocks.NewMockNotifier(ctrl)
	svc := NewService(nil, lookupMock, map[model.Channel]Notifier{model.ChannelSMS: smsMock}, nil, timezone.NewFixedClock(testNow))

	appt, ny, in := testAppointment()
	d := model.NewDispatch(appt.ID, appt.UserID, nil, testNow, 60, model.ChannelSMS)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	lookupMock.EXPECT().GetAppointment(gomock.Any(), appt.ID).Return(appt, nil)
	// the deadline passes while the first recipient is being served
	smsMock.EXPECT().Send(ny.Phone, gomock.Any()).DoAndReturn(func(_, _ string) error {
		cancel()
		return nil
	})

	err := svc.Deliver(ctx, d)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Contains(t, err.Error(), in.ID.String())
}
