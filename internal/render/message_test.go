package render

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/appointment-reminder/internal/model"
)

func testAppointment() model.Appointment {
	return model.Appointment{
		ID:        uuid.New(),
		Title:     "Dental check-up",
		Location:  "12 High St",
		StartTime: time.Date(2025, 6, 1, 15, 0, 0, 0, time.UTC),
		Timezone:  "Europe/London",
	}
}

func TestReminder_UsesClientTimezone(t *testing.T) {
	appt := testAppointment()

	ny, err := Reminder(appt, model.Client{FirstName: "Ann", LastName: "Lee", Timezone: "America/New_York"})
	require.NoError(t, err)
	assert.Contains(t, ny.Text, "Time: 11:00 AM (America/New_York)")
	assert.Contains(t, ny.Text, "Date: Sunday, June 1, 2025")
	assert.Contains(t, ny.Text, "Dear Ann Lee,")

	in, err := Reminder(appt, model.Client{FirstName: "Ravi", Timezone: "Asia/Kolkata"})
	require.NoError(t, err)
	assert.Contains(t, in.Text, "Time: 8:30 PM (Asia/Kolkata)")
	assert.Contains(t, in.HTML, "8:30 PM")
}

func TestReminder_FallsBackToAppointmentZone(t *testing.T) {
	msg, err := Reminder(testAppointment(), model.Client{FirstName: "Jo"})
	require.NoError(t, err)

	assert.Contains(t, msg.Text, "Time: 4:00 PM (Europe/London)")
	assert.Equal(t, Subject, msg.Subject)
}

func TestReminder_OptionalFields(t *testing.T) {
	appt := testAppointment()
	appt.Location = ""

	msg, err := Reminder(appt, model.Client{FirstName: "Jo"})
	require.NoError(t, err)
	assert.NotContains(t, msg.Text, "Location:")
	assert.NotContains(t, msg.Text, "Details:")

	appt.Description = "Bring <x-rays>"
	msg, err = Reminder(appt, model.Client{FirstName: "Jo"})
	require.NoError(t, err)
	assert.Contains(t, msg.Text, "Details: Bring <x-rays>")
	assert.Contains(t, msg.HTML, "Bring &lt;x-rays&gt;")
}

func TestRetrySummary(t *testing.T) {
	report := model.RetryReport{
		Successful: []model.RetryOutcome{{ID: uuid.New()}, {ID: uuid.New()}},
		Failed:     []model.RetryOutcome{{ID: uuid.New()}},
	}

	msg := RetrySummary(report, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
	assert.Contains(t, msg.Text, "Successfully retried: 2 reminders")
	assert.Contains(t, msg.Text, "Failed to retry: 1 reminders")
}
