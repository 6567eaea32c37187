// Package email delivers reminder and operator messages over SMTP.
package email

import (
	"gopkg.in/mail.v2"
)

// DefaultSubject is used by Send, which carries no subject of its own.
const DefaultSubject = "Appointment Reminder"

type Client struct {
	smtpHost string
	smtpPort int
	username string
	password string
	from     string
}

func NewClient(smtpHost string, smtpPort int, username, password, from string) *Client {
	return &Client{
		smtpHost: smtpHost,
		smtpPort: smtpPort,
		username: username,
		password: password,
		from:     from,
	}
}

// Send delivers a plain text message with the default subject.
func (c *Client) Send(to string, msg string) error {
	return c.SendMessage(to, DefaultSubject, msg, "")
}

// SendMessage delivers a message with a text body and, when html is not
// empty, an HTML alternative.
func (c *Client) SendMessage(to, subject, text, html string) error {
	dialer := mail.NewDialer(c.smtpHost, c.smtpPort, c.username, c.password)

	return dialer.DialAndSend(c.build(to, subject, text, html))
}

func (c *Client) build(to, subject, text, html string) *mail.Message {
	message := mail.NewMessage()

	message.SetHeader("From", c.from)
	message.SetHeader("To", to)
	message.SetHeader("Subject", subject)

	message.SetBody("text/plain", text)
	if html != "" {
		message.AddAlternative("text/html", html)
	}

	return message
}
