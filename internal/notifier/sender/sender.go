// Package sender delivers notifications through the external sender service.
package sender

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"authsvc/internal/domain/models"
)

type Client struct {
	baseURL string
	http    *http.Client
}

type sourceData struct {
	Email      string `json:"email"`
	SecretCode string `json:"secretCode"`
}

type sendOptions struct {
	Link     string `json:"link"`
	PublicID string `json:"publicId"`
}

type sendRequest struct {
	Source      sourceData  `json:"source"`
	Destination string      `json:"destination"`
	TemplateID  string      `json:"templateId"`
	Options     sendOptions `json:"options"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// New returns a client for the sender service rooted at baseURL
// (e.g. http://localhost:8082/v1/).
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/") + "/",
		http:    &http.Client{Timeout: timeout},
	}
}

// Send posts n to the sender's /send endpoint. Non-2xx responses are
// reported with the code and message the sender returned.
func (c *Client) Send(ctx context.Context, n models.Notification) error {
	const op = "sender.Send"

	payload, err := json.Marshal(sendRequest{
		Source:      sourceData{Email: n.SourceEmail, SecretCode: n.SecretCode},
		Destination: n.Destination,
		TemplateID:  n.TemplateID,
		Options:     sendOptions{Link: n.Link, PublicID: n.PublicID},
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"send", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	var e errorResponse
	if json.Unmarshal(body, &e) == nil && e.Code != "" {
		return fmt.Errorf("%s: sender returned %s: %s: %s", op, resp.Status, e.Code, e.Message)
	}

	return fmt.Errorf("%s: sender returned %s", op, resp.Status)
}

// LogOnly is used when no sender service is configured. It records the
// notification at debug level and never fails.
type LogOnly struct {
	log *slog.Logger
}

func NewLogOnly(log *slog.Logger) *LogOnly {
	return &LogOnly{log: log}
}

func (l *LogOnly) Send(ctx context.Context, n models.Notification) error {
	l.log.DebugContext(ctx, "notification not delivered: sender disabled",
		slog.String("template", n.TemplateID),
		slog.String("destination", n.Destination),
		slog.String("public_id", n.PublicID),
	)
	return nil
}
