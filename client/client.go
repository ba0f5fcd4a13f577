package client

import (
	"bytes"
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/mailru/easyjson"

	"payment-router/model"
)

// Client talks to the two remote payment processors.
type Client struct {
	urls   map[model.ProcessorName]string
	client *http.Client
}

func NewClient(defaultURL, fallbackURL string) *Client {
	transport := &http.Transport{
		MaxIdleConns:        2000,
		MaxIdleConnsPerHost: 2000,
		IdleConnTimeout:     90 * time.Second,
		DisableKeepAlives:   false,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 60 * time.Second,
		}).DialContext,
	}
	return &Client{
		urls: map[model.ProcessorName]string{
			model.ProcessorDefault:  defaultURL,
			model.ProcessorFallback: fallbackURL,
		},
		// No client-wide timeout: each call carries its own deadline
		// derived from the processor's health state.
		client: &http.Client{Transport: transport},
	}
}

// ProcessPayment POSTs the request to the named processor under the given
// deadline and returns the HTTP status code. A non-nil error means the
// call never produced a status (transport failure or timeout).
func (c *Client) ProcessPayment(ctx context.Context, name model.ProcessorName, req model.RoutableRequest, timeout time.Duration) (int, error) {
	body, err := easyjson.Marshal(req)
	if err != nil {
		return 0, fmt.Errorf("encoding payment %s: %w", req.CorrelationID, err)
	}

	callCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(callCtx, http.MethodPost, fmt.Sprintf("%s/payments", c.urls[name]), bytes.NewBuffer(body))
	if err != nil {
		return 0, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	return resp.StatusCode, nil
}

// CheckHealth probes the named processor's health endpoint. Any non-200
// status, transport failure or undecodable body is an error; the caller
// maps errors to the fail-safe unhealthy state.
func (c *Client) CheckHealth(ctx context.Context, name model.ProcessorName) (model.ProcessorHealth, error) {
	callCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(callCtx, http.MethodGet, fmt.Sprintf("%s/payments/service-health", c.urls[name]), nil)
	if err != nil {
		return model.Unhealthy, err
	}

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return model.Unhealthy, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return model.Unhealthy, fmt.Errorf("health endpoint of %s returned %d", name, resp.StatusCode)
	}

	var health model.ProcessorHealth
	if err := easyjson.UnmarshalFromReader(resp.Body, &health); err != nil {
		return model.Unhealthy, err
	}
	return health, nil
}
