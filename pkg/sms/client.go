// Package sms delivers reminders as text messages through Twilio.
package sms

import (
	"errors"
	"fmt"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

var ErrNoRecipient = errors.New("sms recipient phone number is empty")

type messageCreator interface {
	CreateMessage(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error)
}

// Client sends SMS messages from a fixed sender number.
type Client struct {
	api  messageCreator
	from string
}

// NewClient creates a Twilio-backed SMS client.
func NewClient(accountSID, authToken, from string) *Client {
	rc := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})

	return &Client{api: rc.Api, from: from}
}

// Send delivers msg to the phone number in to.
func (c *Client) Send(to string, msg string) error {
	if to == "" {
		return ErrNoRecipient
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(c.from)
	params.SetBody(msg)

	resp, err := c.api.CreateMessage(params)
	if err != nil {
		return fmt.Errorf("twilio create message: %w", err)
	}
	if resp != nil && resp.ErrorMessage != nil {
		return fmt.Errorf("twilio rejected message: %s", *resp.ErrorMessage)
	}

	return nil
}
