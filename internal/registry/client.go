// Package registry fetches company documents from the public CNPJ registry.
package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"cnpj-lookup/internal/common/errors"
	httpclient "cnpj-lookup/internal/common/http"
	"cnpj-lookup/internal/common/logger"
)

const maxBodyBytes = 1 << 20

// Fetcher is what the lookup service needs from the registry.
type Fetcher interface {
	Fetch(ctx context.Context, identifier string) (*Payload, error)
}

type Client struct {
	baseURL string
	http    *httpclient.Client
	logger  logger.Logger
}

func NewClient(baseURL string, timeout time.Duration, log logger.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpclient.NewClient(timeout),
		logger:  log,
	}
}

// Fetch issues one GET for identifier. Not-found answers come back as a
// payload with a marker in Name; every other failure is a transport
// failure.
func (c *Client) Fetch(ctx context.Context, identifier string) (*Payload, error) {
	endpoint := c.baseURL + "/" + url.PathEscape(identifier)
	start := time.Now()

	resp, err := c.http.GetJSON(ctx, endpoint)
	if err != nil {
		return nil, c.fail(identifier, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, c.fail(identifier, fmt.Errorf("read body: %w", err))
	}

	result, err := payloadSchema.ValidateBytes(body)
	if err != nil {
		return nil, c.fail(identifier, fmt.Errorf("status %d: decode body: %w", resp.StatusCode, err))
	}
	if err := result.Err(); err != nil {
		return nil, c.fail(identifier, fmt.Errorf("status %d: %w", resp.StatusCode, err))
	}

	var payload Payload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, c.fail(identifier, fmt.Errorf("status %d: decode body: %w", resp.StatusCode, err))
	}

	if resp.StatusCode >= http.StatusBadRequest && !payload.NotFound() {
		return nil, c.fail(identifier, fmt.Errorf("status %d: %s %s", resp.StatusCode, payload.Name, payload.Message))
	}

	c.logger.Debug("registry responded", map[string]interface{}{
		"identifier": identifier,
		"status":     resp.StatusCode,
		"notFound":   payload.NotFound(),
		"durationMs": time.Since(start).Milliseconds(),
	})

	return &payload, nil
}

func (c *Client) fail(identifier string, err error) error {
	c.logger.Warn("registry request failed", map[string]interface{}{
		"identifier": identifier,
		"error":      err.Error(),
	})
	return errors.NewTransportFailureError(identifier, err)
}
