// Package telegram sends operator notices through the Telegram Bot API.
package telegram

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const defaultBaseURL = "https://api.telegram.org"

// Client represents a Telegram client used to send notifications.
type Client struct {
	token   string
	chatID  string // used when Send is called without a chat id
	baseURL string
	client  *http.Client
}

// NewClient creates a new Telegram Client instance with the given bot token
// and default chat.
func NewClient(token, chatID string) *Client {
	return &Client{
		token:   token,
		chatID:  chatID,
		baseURL: defaultBaseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// sendMessageRequest represents the payload for the Telegram sendMessage API.
type sendMessageRequest struct {
	ChatID string `json:"chat_id"`
	Text   string `json:"text"`
}

// Send posts msg to the chat identified by to, or to the default chat when
// to is empty.
func (c *Client) Send(to string, msg string) error {
	if to == "" {
		to = c.chatID
	}
	if to == "" {
		return fmt.Errorf("telegram: no chat id")
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", c.baseURL, c.token)

	body, err := json.Marshal(sendMessageRequest{ChatID: to, Text: msg})
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	resp, err := c.client.Post(url, "application/json", bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("telegram API error: %s", resp.Status)
	}

	return nil
}
