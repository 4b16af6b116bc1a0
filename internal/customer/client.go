// Package customer provides the client for the remote customer service,
// wrapping the lookup call with a timeout, a bounded retry policy, and a
// circuit breaker. A definitive "customer does not exist" answer is
// authoritative: it is never retried and never trips the breaker. Everything
// else (timeouts, transport errors, 5xx responses, an open breaker) collapses
// to a single dependency-unavailable outcome.
package customer

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/sony/gobreaker/v2"

	"creditbank/internal/errors"
	"creditbank/internal/model"
)

const (
	defaultTimeout          = 2 * time.Second
	defaultRetryAttempts    = 3
	defaultBreakerThreshold = 5
	defaultBreakerCooldown  = 30 * time.Second

	retryDelay = 100 * time.Millisecond
)

// Options configures the customer service client and its resilience policy.
// Zero values fall back to the defaults above.
type Options struct {
	BaseURL          string
	Timeout          time.Duration
	RetryAttempts    uint
	BreakerThreshold uint32
	BreakerCooldown  time.Duration
}

// Client calls the customer service over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	attempts   uint
	breaker    *gobreaker.CircuitBreaker[*model.Customer]
}

// NewClient creates a customer service client.
func NewClient(opts Options) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	if opts.RetryAttempts == 0 {
		opts.RetryAttempts = defaultRetryAttempts
	}
	if opts.BreakerThreshold == 0 {
		opts.BreakerThreshold = defaultBreakerThreshold
	}
	if opts.BreakerCooldown <= 0 {
		opts.BreakerCooldown = defaultBreakerCooldown
	}

	breaker := gobreaker.NewCircuitBreaker[*model.Customer](gobreaker.Settings{
		Name:    "customer-service",
		Timeout: opts.BreakerCooldown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= opts.BreakerThreshold
		},
		// A real absence is a definitive answer from a healthy dependency,
		// not a failure to count against it.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.IsNotFound(err)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Printf("circuit breaker %q: %s -> %s", name, from, to)
		},
	})

	return &Client{
		baseURL:    strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/"),
		httpClient: &http.Client{},
		timeout:    opts.Timeout,
		attempts:   opts.RetryAttempts,
		breaker:    breaker,
	}
}

// GetCustomerByID resolves a customer from the customer service.
// It returns the snapshot, a NotFoundError when the customer definitively does
// not exist, or ErrDependencyUnavailable when the service is degraded.
func (c *Client) GetCustomerByID(ctx context.Context, customerID string) (*model.Customer, error) {
	cust, err := c.breaker.Execute(func() (*model.Customer, error) {
		return retry.DoWithData(
			func() (*model.Customer, error) {
				return c.fetchCustomer(ctx, customerID)
			},
			retry.Attempts(c.attempts),
			retry.Delay(retryDelay),
			retry.LastErrorOnly(true),
			retry.Context(ctx),
			// Only transient failures are retried. A 404 is authoritative.
			retry.RetryIf(func(err error) bool {
				return !errors.IsNotFound(err)
			}),
		)
	})
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, err
		}
		log.Printf("customer service degraded for customer %s: %v", customerID, err)
		return nil, errors.ErrDependencyUnavailable
	}
	return cust, nil
}

// Exists reports whether a customer exists. Non-existence and dependency
// unavailability both map to false; the unavailable case is logged loudly
// because the answer is a guess, not a fact. Use GetCustomerByID when the
// distinction matters.
func (c *Client) Exists(ctx context.Context, customerID string) (bool, error) {
	_, err := c.GetCustomerByID(ctx, customerID)
	if err != nil {
		if errors.IsNotFound(err) {
			return false, nil
		}
		log.Printf("customer service unavailable while checking existence of customer %s, reporting not found", customerID)
		return false, nil
	}
	return true, nil
}

// fetchCustomer performs one bounded HTTP attempt.
func (c *Client) fetchCustomer(ctx context.Context, customerID string) (*model.Customer, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	url := fmt.Sprintf("%s/api/customers/%s", c.baseURL, customerID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build customer request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call customer service: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, errors.NewNotFound("customer", customerID)
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, fmt.Errorf("customer service returned status %d", resp.StatusCode)
	}

	var cust model.Customer
	if err := json.NewDecoder(resp.Body).Decode(&cust); err != nil {
		return nil, fmt.Errorf("decode customer response: %w", err)
	}
	return &cust, nil
}
