// Package render builds reminder messages for a single recipient.
package render

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	"text/template"
	"time"

	"github.com/aliskhannn/appointment-reminder/internal/model"
	"github.com/aliskhannn/appointment-reminder/internal/timezone"
)

// Subject is the subject line of reminder emails.
const Subject = "Appointment Reminder"

const textBody = `Dear {{.Recipient}},

This is a reminder for your upcoming appointment:

Title: {{.Title}}
Date: {{.Date}}
Time: {{.Time}} ({{.Zone}})
{{- if .Location}}
Location: {{.Location}}
{{- end}}
{{- if .Description}}

Details: {{.Description}}
{{- end}}

If you need to reschedule, please contact us as soon as possible.

Best regards,
Your Appointment Team
`

const htmlBody = `<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"><title>Appointment Reminder</title></head>
<body>
<p>Dear {{.Recipient}},</p>
<p>This is a reminder for your upcoming appointment:</p>
<ul>
<li><strong>Title:</strong> {{.Title}}</li>
<li><strong>Date:</strong> {{.Date}}</li>
<li><strong>Time:</strong> {{.Time}} ({{.Zone}})</li>
{{- if .Location}}
<li><strong>Location:</strong> {{.Location}}</li>
{{- end}}
</ul>
{{- if .Description}}
<p><strong>Details:</strong> {{.Description}}</p>
{{- end}}
<p>If you need to reschedule, please contact us as soon as possible.</p>
<p>Best regards,<br>Your Appointment Team</p>
</body>
</html>
`

var (
	textTmpl = template.Must(template.New("reminder.txt").Parse(textBody))
	htmlTmpl = htmltemplate.Must(htmltemplate.New("reminder.html").Parse(htmlBody))
)

// Message is a rendered reminder for one recipient.
type Message struct {
	Subject string
	Text    string
	HTML    string
}

// view holds the values substituted into the templates.
type view struct {
	Recipient   string
	Title       string
	Date        string
	Time        string
	Zone        string
	Location    string
	Description string
}

// Reminder renders the reminder for client, showing the appointment start
// in the client's own timezone (falling back to the appointment zone, then UTC).
func Reminder(appt model.Appointment, client model.Client) (Message, error) {
	loc := timezone.ForClient("", client.Timezone, appt.Timezone)

	v := view{
		Recipient:   client.FullName(),
		Title:       appt.Title,
		Date:        timezone.FormatDate(appt.StartTime, loc),
		Time:        timezone.FormatTime(appt.StartTime, loc),
		Zone:        loc.String(),
		Location:    appt.Location,
		Description: appt.Description,
	}
	if v.Recipient == "" {
		v.Recipient = "client"
	}

	var text, html bytes.Buffer
	if err := textTmpl.Execute(&text, v); err != nil {
		return Message{}, fmt.Errorf("render text reminder: %w", err)
	}
	if err := htmlTmpl.Execute(&html, v); err != nil {
		return Message{}, fmt.Errorf("render html reminder: %w", err)
	}

	return Message{Subject: Subject, Text: text.String(), HTML: html.String()}, nil
}

// RetrySummary renders the operator notice sent after a retry run.
func RetrySummary(report model.RetryReport, at time.Time) Message {
	text := fmt.Sprintf(
		"Job Retry Report (%s)\n\nSuccessfully retried: %d reminders\nFailed to retry: %d reminders\n",
		at.UTC().Format(time.RFC3339), len(report.Successful), len(report.Failed),
	)

	return Message{Subject: "Reminder Retry Report", Text: text}
}
