package webhook

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/mamadbah2/mangsho/internal/config"
)

// Alert is the payload pushed to the operator webhook.
type Alert struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

// Notifier exposes the alert delivery operation used by the application.
type Notifier interface {
	Notify(ctx context.Context, alert Alert) error
}

// Client is a resty-backed Notifier posting alerts to a configured URL.
type Client struct {
	httpClient *resty.Client
	url        string
}

// NewClient builds a webhook client from the alert configuration.
func NewClient(cfg config.AlertConfig) *Client {
	restyClient := resty.New()
	restyClient.
		SetHeader("Content-Type", "application/json").
		SetTimeout(15 * time.Second)

	if cfg.AuthToken != "" {
		restyClient.SetHeader("Authorization", fmt.Sprintf("Bearer %s", cfg.AuthToken))
	}

	return &Client{httpClient: restyClient, url: cfg.WebhookURL}
}

// apiError represents an error payload returned by the receiving endpoint.
type apiError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Notify posts the alert and fails on any non-2xx response.
func (c *Client) Notify(ctx context.Context, alert Alert) error {
	apiErr := new(apiError)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(alert).
		SetError(apiErr).
		Post(c.url)
	if err != nil {
		return fmt.Errorf("send webhook alert: %w", err)
	}

	if resp.StatusCode() >= http.StatusBadRequest {
		detail := apiErr.Error
		if detail == "" {
			detail = apiErr.Message
		}
		return fmt.Errorf("webhook error: status=%d, message=%s", resp.StatusCode(), detail)
	}

	return nil
}
