package notifications

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const brevoAPI = "https://api.brevo.com/v3/smtp/email"

// Message is the delivery-channel contract: one plain-text message per
// recipient chunk. Delivery is fire-and-forget; no confirmation is awaited.
type Message struct {
	From    string
	To      []string
	Subject string
	Text    string
}

// Sender delivers reminder messages. Nil-safe no-op when unconfigured.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// BrevoSendRequest matches Brevo API v3 send transactional email body.
type BrevoSendRequest struct {
	Sender      BrevoSender `json:"sender"`
	To          []BrevoTo   `json:"to"`
	Subject     string      `json:"subject"`
	TextContent string      `json:"textContent"`
}

type BrevoSender struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

type BrevoTo struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// BrevoClient sends reminder emails via the Brevo (Sendinblue) API.
// Same env as the rest of the config: SENDINBLUE_API_KEY, MAIL_FROM.
type BrevoClient struct {
	APIKey   string
	MailFrom string
	Client   *http.Client
}

func (c *BrevoClient) from(msg Message) string {
	if msg.From != "" {
		return msg.From
	}
	if c.MailFrom != "" {
		return c.MailFrom
	}
	return "noreply@propdesk.local"
}

// Send posts one message to Brevo. No-op when the API key is unset.
func (c *BrevoClient) Send(ctx context.Context, msg Message) error {
	if c.APIKey == "" {
		return nil
	}
	to := make([]BrevoTo, 0, len(msg.To))
	for _, addr := range msg.To {
		to = append(to, BrevoTo{Email: addr})
	}
	body := BrevoSendRequest{
		Sender:      BrevoSender{Email: c.from(msg), Name: "PropDesk"},
		To:          to,
		Subject:     msg.Subject,
		TextContent: msg.Text,
	}
	bodyBytes, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, brevoAPI, bytes.NewReader(bodyBytes))
	if err != nil {
		return err
	}
	req.Header.Set("api-key", c.APIKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.Client == nil {
		c.Client = &http.Client{Timeout: 15 * time.Second}
	}
	resp, err := c.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("brevo send failed: status %d", resp.StatusCode)
	}
	return nil
}
