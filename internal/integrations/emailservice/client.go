// Package emailservice is the outbound email client. It speaks the
// EmailJS-style template API: the service never renders email bodies itself,
// it posts template parameters and the provider does the rest.
package emailservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger is the logging surface the client needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Config carries the provider identifiers.
type Config struct {
	BaseURL   string
	ServiceID string
	UserID    string
}

// Client sends templated emails over HTTP.
type Client struct {
	cfg        Config
	httpClient *http.Client
	log        Logger
}

// NewClient creates an email client with the given request timeout.
func NewClient(cfg Config, timeout time.Duration, log Logger) *Client {
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

type sendRequest struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	TemplateParams map[string]string `json:"template_params"`
}

// Send posts one templated email. templateParams map directly onto the
// provider-side template variables.
func (c *Client) Send(ctx context.Context, templateID string, templateParams map[string]string) error {
	url := fmt.Sprintf("%s/api/v1.0/email/send", c.cfg.BaseURL)

	payload, err := json.Marshal(sendRequest{
		ServiceID:      c.cfg.ServiceID,
		TemplateID:     templateID,
		UserID:         c.cfg.UserID,
		TemplateParams: templateParams,
	})
	if err != nil {
		return fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: status %d: %s", ErrSendRejected, resp.StatusCode, string(body))
	}

	c.log.Info("Email sent: template=%s", templateID)
	return nil
}
