package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mocks "github.com/aliskhannn/appointment-reminder/internal/mocks/service/scheduler"
	"github.com/aliskhannn/appointment-reminder/internal/model"
	"github.com/aliskhannn/appointment-reminder/internal/repository/appointment"
	"github.com/aliskhannn/appointment-reminder/internal/timezone"
)

func testAppointment(clients ...model.Client) model.Appointment {
	return model.Appointment{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		Title:     "Checkup",
		StartTime: time.Date(2025, 6, 10, 15, 0, 0, 0, time.UTC),
		Timezone:  "America/New_York",
		Clients:   clients,
	}
}

func TestPlan(t *testing.T) {
	start := time.Date(2025, 6, 10, 15, 0, 0, 0, time.UTC)
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	at, err := Plan(start, 60, now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC), at)

	_, err = Plan(start, 0, now)
	assert.ErrorIs(t, err, ErrInvalidOffset)

	_, err = Plan(start, MaxOffsetMinutes+1, now)
	assert.ErrorIs(t, err, ErrInvalidOffset)

	_, err = Plan(start, 180, now)
	assert.ErrorIs(t, err, ErrScheduleInPast, "fire time equal to now is not in the future")

	_, err = Plan(start, 240, now)
	assert.ErrorIs(t, err, ErrScheduleInPast)
}

func TestService_Schedule(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	lookupMock := mocks.NewMockappointmentLookup(ctrl)
	storeMock := mocks.NewMockdispatchStore(ctrl)
	queueMock := mocks.NewMocktaskQueue(ctrl)
	clock := timezone.NewFixedClock(time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC))

	svc := NewService(lookupMock, storeMock, queueMock, clock)

	alice := model.Client{ID: uuid.New(), FirstName: "Alice", NotificationPreference: "sms"}
	bob := model.Client{ID: uuid.New(), FirstName: "Bob"}
	appt := testAppointment(alice, bob)
	want := time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC)

	lookupMock.EXPECT().GetAppointment(gomock.Any(), appt.ID).Return(appt, nil)
	storeMock.EXPECT().CreateBatch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ds []model.Dispatch) ([]model.Dispatch, error) {
			require.Len(t, ds, 2)
			assert.Equal(t, alice.ID, *ds[0].ClientID)
			assert.Equal(t, model.ChannelSMS, ds[0].Channel)
			assert.Equal(t, bob.ID, *ds[1].ClientID)
			assert.Equal(t, model.ChannelEmail, ds[1].Channel)
			for _, d := range ds {
				assert.Equal(t, model.StatusPending, d.Status)
				assert.Equal(t, want, d.ScheduledFor)
				assert.Equal(t, 60, d.OffsetMinutes)
				assert.Equal(t, appt.UserID, d.UserID)
				assert.Zero(t, d.RetryCount)
			}
			return ds, nil
		})
	queueMock.EXPECT().Enqueue(gomock.Any(), gomock.Any(), want).Return(nil).Times(2)

	got, err := svc.Schedule(context.Background(), ScheduleInput{AppointmentID: appt.ID, OffsetMinutes: 60})
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestService_Schedule_EnqueueFailureKeepsRecords(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	lookupMock := mocks.NewMockappointmentLookup(ctrl)
	storeMock := mocks.NewMockdispatchStore(ctrl)
	queueMock := mocks.NewMocktaskQueue(ctrl)
	clock := timezone.NewFixedClock(time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC))
	svc := NewService(lookupMock, storeMock, queueMock, clock)

	appt := testAppointment(model.Client{ID: uuid.New()})
	owner := uuid.New()

	lookupMock.EXPECT().GetAppointment(gomock.Any(), appt.ID).Return(appt, nil)
	storeMock.EXPECT().CreateBatch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ds []model.Dispatch) ([]model.Dispatch, error) {
			assert.Equal(t, owner, ds[0].UserID)
			return ds, nil
		})
	queueMock.EXPECT().Enqueue(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

	got, err := svc.Schedule(context.Background(), ScheduleInput{AppointmentID: appt.ID, UserID: owner, OffsetMinutes: 30})
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestService_Schedule_Rejections(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		offset  int
		appt    model.Appointment
		lookErr error
		wantErr error
	}{
		{name: "zero offset", offset: 0, wantErr: ErrInvalidOffset},
		{name: "offset over a week", offset: MaxOffsetMinutes + 1, wantErr: ErrInvalidOffset},
		{name: "no clients", offset: 60, appt: testAppointment(), wantErr: ErrNoRecipients},
		{name: "in the past", offset: 240, appt: testAppointment(model.Client{ID: uuid.New()}), wantErr: ErrScheduleInPast},
		{name: "unknown appointment", offset: 60, lookErr: appointment.ErrAppointmentNotFound, wantErr: ErrAppointmentNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			lookupMock := mocks.NewMockappointmentLookup(ctrl)
			storeMock := mocks.NewMockdispatchStore(ctrl)
			queueMock := mocks.NewMocktaskQueue(ctrl)
			svc := NewService(lookupMock, storeMock, queueMock, timezone.NewFixedClock(now))

			if tt.wantErr != ErrInvalidOffset {
				lookupMock.EXPECT().GetAppointment(gomock.Any(), gomock.Any()).Return(tt.appt, tt.lookErr)
			}

			_, err := svc.Schedule(context.Background(), ScheduleInput{AppointmentID: uuid.New(), OffsetMinutes: tt.offset})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestService_ScheduleAt(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	lookupMock := mocks.NewMockappointmentLookup(ctrl)
	storeMock := mocks.NewMockdispatchStore(ctrl)
	queueMock := mocks.NewMocktaskQueue(ctrl)
	clock := timezone.NewFixedClock(time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC))
	svc := NewService(lookupMock, storeMock, queueMock, clock)

	appt := testAppointment(model.Client{ID: uuid.New()})
	// 10:30 in New York during DST is 14:30 UTC
	want := time.Date(2025, 6, 10, 14, 30, 0, 0, time.UTC)

	lookupMock.EXPECT().GetAppointment(gomock.Any(), appt.ID).Return(appt, nil)
	storeMock.EXPECT().CreateBatch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ds []model.Dispatch) ([]model.Dispatch, error) {
			assert.Equal(t, want, ds[0].ScheduledFor)
			assert.Equal(t, 30, ds[0].OffsetMinutes)
			return ds, nil
		})
	queueMock.EXPECT().Enqueue(gomock.Any(), gomock.Any(), want).Return(nil)

	_, err := svc.ScheduleAt(context.Background(), ScheduleAtInput{
		AppointmentID: appt.ID,
		LocalTime:     "2025-06-10 10:30:00",
	})
	require.NoError(t, err)
}

func TestService_ScheduleAt_Invalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	lookupMock := mocks.NewMockappointmentLookup(ctrl)
	clock := timezone.NewFixedClock(time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC))
	svc := NewService(lookupMock, nil, nil, clock)

	appt := testAppointment(model.Client{ID: uuid.New()})
	lookupMock.EXPECT().GetAppointment(gomock.Any(), appt.ID).Return(appt, nil).Times(4)

	_, err := svc.ScheduleAt(context.Background(), ScheduleAtInput{AppointmentID: appt.ID, LocalTime: "tomorrow"})
	assert.ErrorIs(t, err, ErrInvalidLocalTime)

	// 59.5 minutes before the start has no exact minute offset; nothing is stored
	_, err = svc.ScheduleAt(context.Background(), ScheduleAtInput{AppointmentID: appt.ID, LocalTime: "2025-06-10 10:00:30"})
	assert.ErrorIs(t, err, ErrInvalidLocalTime)

	// after the appointment start
	_, err = svc.ScheduleAt(context.Background(), ScheduleAtInput{AppointmentID: appt.ID, LocalTime: "2025-06-10 11:30:00"})
	assert.ErrorIs(t, err, ErrInvalidOffset)

	// before now: 07:00 New York is 11:00 UTC
	_, err = svc.ScheduleAt(context.Background(), ScheduleAtInput{AppointmentID: appt.ID, LocalTime: "2025-06-10 07:00:00"})
	assert.ErrorIs(t, err, ErrScheduleInPast)
}
