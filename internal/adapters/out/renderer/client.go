// Package renderer implements ports.DocumentRenderer against an external
// HTML-to-PDF rendering service.
package renderer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"deliveryops/internal/core/ports"

	"go.uber.org/zap"
)

const (
	defaultTimeout = 30 * time.Second
	renderPath     = "/render"
	maxErrorBody   = 512
)

// Client posts documents to the rendering service.
type Client struct {
	baseURL string
	http    *http.Client
}

type renderRequest struct {
	HTML     string  `json:"html"`
	WidthMM  float64 `json:"widthMm"`
	HeightMM float64 `json:"heightMm"`
}

// NewClient creates a client for baseURL. A non-positive timeout uses the default.
func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		http: &http.Client{
			Transport: &LoggingRoundTripper{
				Proxied: http.DefaultTransport,
				Logger:  logger,
			},
			Timeout: timeout,
		},
	}
}

// Render returns the rendered file. Any non-2xx answer is an error carrying
// the start of the response body.
func (c *Client) Render(ctx context.Context, html string, size ports.PageSize) ([]byte, error) {
	body, err := json.Marshal(renderRequest{HTML: html, WidthMM: size.WidthMM, HeightMM: size.HeightMM})
	if err != nil {
		return nil, fmt.Errorf("renderer: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+renderPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("renderer: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/pdf")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("renderer: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, fmt.Errorf("renderer: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	out, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("renderer: read response: %w", err)
	}
	return out, nil
}
