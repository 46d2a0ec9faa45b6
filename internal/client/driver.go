package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/urbango/ride-booking/pkg/logger"
)

// HTTPDriverClient talks to the driver directory's REST API.
type HTTPDriverClient struct {
	baseURL string
	http    *http.Client
	logger  *logger.Logger
}

// NewHTTPDriverClient creates a driver directory client with the given base
// URL and per-call timeout.
func NewHTTPDriverClient(baseURL string, timeout time.Duration, log *logger.Logger) *HTTPDriverClient {
	return &HTTPDriverClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		logger:  log,
	}
}

// ListAvailable fetches the directory's currently available drivers. An empty
// list is a valid response; the caller decides whether that is an error.
func (c *HTTPDriverClient) ListAvailable(ctx context.Context) ([]Driver, error) {
	url := fmt.Sprintf("%s/v1/drivers/available", c.baseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build driver request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("Driver directory call failed", logger.Err(err))
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: driver directory returned %d", ErrUnavailable, resp.StatusCode)
	}

	var drivers []Driver
	if err := json.NewDecoder(resp.Body).Decode(&drivers); err != nil {
		return nil, fmt.Errorf("%w: decode driver response: %v", ErrUnavailable, err)
	}

	return drivers, nil
}

// UpdateRating asks the directory to fold a new score into the driver's
// aggregate. The directory owns the running average; this call only requests
// the update.
func (c *HTTPDriverClient) UpdateRating(ctx context.Context, driverID uuid.UUID, update RatingUpdate) error {
	url := fmt.Sprintf("%s/v1/drivers/%s/rating", c.baseURL, driverID)

	body, err := json.Marshal(update)
	if err != nil {
		return fmt.Errorf("encode rating update: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build rating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrDriverNotFound
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("%w: driver directory returned %d", ErrUnavailable, resp.StatusCode)
	}

	return nil
}
