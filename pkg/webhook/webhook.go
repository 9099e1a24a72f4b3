// Package webhook delivers structured messages to Discord webhooks.
// Delivery failures are returned to the caller, never swallowed: the
// moderation flow depends on knowing whether the notification went out.
package webhook

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/goccy/go-json"
)

// Field is a single embed field
type Field struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline,omitempty"`
}

// Author is the embed author block
type Author struct {
	Name    string `json:"name"`
	IconURL string `json:"icon_url,omitempty"`
	URL     string `json:"url,omitempty"`
}

// Embed is a Discord embed
type Embed struct {
	Title       string  `json:"title,omitempty"`
	Description string  `json:"description,omitempty"`
	Color       int     `json:"color,omitempty"`
	Author      *Author `json:"author,omitempty"`
	Fields      []Field `json:"fields,omitempty"`
	Timestamp   string  `json:"timestamp,omitempty"`
}

// Message is a webhook payload
type Message struct {
	Content  string
	Mentions []string // allowed mention types: "users", "roles"
	Embeds   []Embed
}

type payload struct {
	Content         string          `json:"content,omitempty"`
	AllowedMentions allowedMentions `json:"allowed_mentions"`
	Embeds          []Embed         `json:"embeds,omitempty"`
}

type allowedMentions struct {
	Parse []string `json:"parse"`
}

// Client posts messages to a single webhook URL
type Client struct {
	url  string
	http *http.Client
}

// New creates a webhook client. An empty URL yields a client whose Send is a
// no-op so local setups without webhooks keep working.
func New(url string) *Client {
	return &Client{
		url:  url,
		http: &http.Client{Timeout: 5 * time.Second},
	}
}

// Send delivers the message and reports any transport failure
func (c *Client) Send(ctx context.Context, msg Message) error {
	if c.url == "" {
		return nil
	}

	mentions := msg.Mentions
	if mentions == nil {
		mentions = []string{}
	}

	body, err := json.Marshal(payload{
		Content:         msg.Content,
		AllowedMentions: allowedMentions{Parse: mentions},
		Embeds:          msg.Embeds,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}
	return nil
}

// NowTimestamp returns the current time formatted for embed timestamps
func NowTimestamp() string {
	return time.Now().Format(time.RFC3339)
}
