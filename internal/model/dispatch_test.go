package model

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPending(t *testing.T) Dispatch {
	t.Helper()

	clientID := uuid.New()
	return NewDispatch(uuid.New(), uuid.New(), &clientID, time.Date(2025, 6, 1, 14, 0, 0, 0, time.UTC), 60, ChannelEmail)
}

func TestBackoff_FixedTable(t *testing.T) {
	assert.Equal(t, 30*time.Second, Backoff(1))
	assert.Equal(t, 60*time.Second, Backoff(2))
	assert.Equal(t, 120*time.Second, Backoff(3))
	assert.Equal(t, 120*time.Second, Backoff(7))
	assert.Equal(t, 30*time.Second, Backoff(0))
}

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to Status
		want     bool
	}{
		{StatusPending, StatusSent, true},
		{StatusPending, StatusFailed, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusPending, false},
		{StatusFailed, StatusPending, true},
		{StatusFailed, StatusSent, true},
		{StatusSent, StatusPending, false},
		{StatusSent, StatusCancelled, false},
		{StatusCancelled, StatusPending, false},
		{StatusCancelled, StatusSent, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, CanTransition(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestSourcesOf(t *testing.T) {
	assert.Equal(t, []Status{StatusPending, StatusFailed}, SourcesOf(StatusCancelled))
	assert.Equal(t, []Status{StatusPending, StatusFailed}, SourcesOf(StatusSent))
	assert.Equal(t, []Status{StatusFailed}, SourcesOf(StatusPending))
	assert.Empty(t, SourcesOf(Status("archived")))
}

func TestDispatch_MarkSent(t *testing.T) {
	d := newPending(t)
	now := time.Date(2025, 6, 1, 14, 0, 5, 0, time.UTC)

	require.NoError(t, d.MarkSent(now))
	assert.Equal(t, StatusSent, d.Status)
	require.NotNil(t, d.SentAt)
	assert.True(t, now.Equal(*d.SentAt))
	assert.Nil(t, d.ErrorMessage)
	assert.NoError(t, d.Validate())

	err := d.MarkSent(now.Add(time.Minute))
	assert.ErrorIs(t, err, ErrIllegalTransition)
	assert.True(t, now.Equal(*d.SentAt), "sent_at must not move on a repeated send")
}

func TestDispatch_ThreeFailuresBecomeTerminal(t *testing.T) {
	d := newPending(t)
	now := time.Date(2025, 6, 1, 14, 0, 0, 0, time.UTC)

	require.NoError(t, d.MarkFailed("smtp timeout", now))
	assert.Equal(t, 1, d.RetryCount)
	require.NotNil(t, d.NextAttemptAt)
	assert.Equal(t, now.Add(30*time.Second), *d.NextAttemptAt)
	assert.True(t, d.Deliverable())

	require.NoError(t, d.MarkFailed("smtp timeout", now))
	assert.Equal(t, 2, d.RetryCount)
	assert.Equal(t, now.Add(60*time.Second), *d.NextAttemptAt)

	require.NoError(t, d.MarkFailed("smtp timeout", now))
	assert.Equal(t, StatusFailed, d.Status)
	assert.Equal(t, 3, d.RetryCount)
	assert.Nil(t, d.NextAttemptAt)
	assert.True(t, d.Exhausted())
	assert.False(t, d.Deliverable())
	require.NotNil(t, d.ErrorMessage)
	assert.Equal(t, "smtp timeout", *d.ErrorMessage)
}

func TestDispatch_ResetTerminal(t *testing.T) {
	d := newPending(t)
	failedAt := time.Date(2025, 6, 1, 14, 0, 0, 0, time.UTC)
	for i := 0; i < MaxAttempts; i++ {
		require.NoError(t, d.MarkFailed("boom", failedAt))
	}

	now := failedAt.Add(2 * time.Hour)
	require.NoError(t, d.Reset(now))

	assert.Equal(t, StatusPending, d.Status)
	assert.Equal(t, 4, d.RetryCount)
	assert.Nil(t, d.ErrorMessage)
	assert.Equal(t, now, d.ScheduledFor)
	assert.NoError(t, d.Validate())
}

func TestDispatch_ResetRequiresFailed(t *testing.T) {
	d := newPending(t)

	err := d.Reset(time.Now())
	assert.ErrorIs(t, err, ErrIllegalTransition)
	assert.Equal(t, 0, d.RetryCount)
}

func TestDispatch_Cancel(t *testing.T) {
	d := newPending(t)
	require.NoError(t, d.Cancel(time.Now()))
	assert.Equal(t, StatusCancelled, d.Status)
	assert.False(t, d.Deliverable())

	assert.ErrorIs(t, d.Cancel(time.Now()), ErrIllegalTransition)
	assert.ErrorIs(t, d.MarkSent(time.Now()), ErrIllegalTransition)

	sent := newPending(t)
	require.NoError(t, sent.MarkSent(time.Now()))
	assert.ErrorIs(t, sent.Cancel(time.Now()), ErrIllegalTransition)
}

func TestDispatch_Validate(t *testing.T) {
	d := newPending(t)
	assert.NoError(t, d.Validate())

	now := time.Now().UTC()
	d.SentAt = &now
	assert.ErrorIs(t, d.Validate(), ErrInvalidDispatch)

	d = newPending(t)
	d.ScheduledFor = d.ScheduledFor.In(time.FixedZone("X", 3600))
	assert.ErrorIs(t, d.Validate(), ErrInvalidDispatch)

	d = newPending(t)
	d.Status = "retrying"
	assert.ErrorIs(t, d.Validate(), ErrInvalidDispatch)
}

func TestParseChannel(t *testing.T) {
	assert.Equal(t, ChannelSMS, ParseChannel("sms"))
	assert.Equal(t, ChannelEmail, ParseChannel("email"))
	assert.Equal(t, ChannelEmail, ParseChannel(""))
	assert.Equal(t, ChannelEmail, ParseChannel("pigeon"))
}

func TestParseStatus(t *testing.T) {
	st, err := ParseStatus("failed")
	require.NoError(t, err)
	assert.Equal(t, StatusFailed, st)

	_, err = ParseStatus("scheduled")
	assert.Error(t, err)
}
