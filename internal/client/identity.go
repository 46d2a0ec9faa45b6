package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/urbango/ride-booking/pkg/logger"
)

// HTTPIdentityClient resolves customers against the identity service's REST
// API.
type HTTPIdentityClient struct {
	baseURL string
	http    *http.Client
	logger  *logger.Logger
}

// NewHTTPIdentityClient creates an identity client with the given base URL and
// per-call timeout.
func NewHTTPIdentityClient(baseURL string, timeout time.Duration, log *logger.Logger) *HTTPIdentityClient {
	return &HTTPIdentityClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		logger:  log,
	}
}

// GetCustomer fetches a customer by ID. A 404 maps to ErrCustomerNotFound;
// any transport failure or non-2xx response maps to ErrUnavailable.
func (c *HTTPIdentityClient) GetCustomer(ctx context.Context, id uuid.UUID) (*Customer, error) {
	url := fmt.Sprintf("%s/v1/customers/%s", c.baseURL, id)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build identity request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("Identity service call failed",
			logger.String("customer_id", id.String()),
			logger.Err(err),
		)
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrCustomerNotFound
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("%w: identity service returned %d", ErrUnavailable, resp.StatusCode)
	}

	var customer Customer
	if err := json.NewDecoder(resp.Body).Decode(&customer); err != nil {
		return nil, fmt.Errorf("%w: decode identity response: %v", ErrUnavailable, err)
	}

	return &customer, nil
}
