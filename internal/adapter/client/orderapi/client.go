package orderapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"
)

const requestTimeout = 5 * time.Second

// Client is a typed client for the order service HTTP API, used by the
// demonstration driver.
type Client struct {
	base   string
	client *http.Client
	logger *zap.Logger
}

func NewClient(base string, logger *zap.Logger) *Client {
	return &Client{
		base:   base,
		client: &http.Client{Timeout: requestTimeout},
		logger: logger,
	}
}

type Order struct {
	ID        int64   `json:"id"`
	Symbol    string  `json:"symbol"`
	Side      string  `json:"side"`
	Quantity  float64 `json:"quantity"`
	Price     float64 `json:"price"`
	Status    string  `json:"status"`
	CreatedAt string  `json:"created_at"`
}

type OrderDraft struct {
	Symbol   string  `json:"symbol"`
	Side     string  `json:"side"`
	Quantity float64 `json:"quantity"`
	Price    float64 `json:"price"`
}

type Health struct {
	Status string `json:"status"`
	DB     string `json:"db"`
	Error  string `json:"error,omitempty"`
}

type CancelResult struct {
	Status string `json:"status"`
	ID     int64  `json:"id"`
}

type apiError struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

// Health reports the service liveness. A degraded (503) payload is a valid
// result, not an error.
func (c *Client) Health(ctx context.Context) (*Health, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+"/health", http.NoBody)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("health request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	var health Health
	if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
		return nil, fmt.Errorf("error on response decode: %w", err)
	}
	c.logger.Debug("health response", zap.Int("status", resp.StatusCode))

	return &health, nil
}

func (c *Client) CreateOrder(ctx context.Context, draft OrderDraft) (*Order, error) {
	body, err := json.Marshal(draft)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/orders", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("create order request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusCreated {
		return nil, c.decodeError(resp)
	}

	var order Order
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return nil, fmt.Errorf("error on response decode: %w", err)
	}
	c.logger.Debug("order created",
		zap.Int64("id", order.ID), zap.String("location", resp.Header.Get("Location")))

	return &order, nil
}

func (c *Client) ListOrders(ctx context.Context, limit int) ([]Order, error) {
	url := c.base + "/orders?limit=" + strconv.Itoa(limit)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("list orders request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, c.decodeError(resp)
	}

	var orders []Order
	if err := json.NewDecoder(resp.Body).Decode(&orders); err != nil {
		return nil, fmt.Errorf("error on response decode: %w", err)
	}

	return orders, nil
}

func (c *Client) CancelOrder(ctx context.Context, id int64) (*CancelResult, error) {
	url := c.base + "/orders/" + strconv.FormatInt(id, 10)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, http.NoBody)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("cancel order request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, c.decodeError(resp)
	}

	var result CancelResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("error on response decode: %w", err)
	}

	return &result, nil
}

func (c *Client) decodeError(resp *http.Response) error {
	var apiErr apiError
	if err := json.NewDecoder(resp.Body).Decode(&apiErr); err != nil {
		return fmt.Errorf("bad response %d", resp.StatusCode)
	}
	if apiErr.Detail != "" {
		return fmt.Errorf("bad response %d: %s (%s)", resp.StatusCode, apiErr.Error, apiErr.Detail)
	}
	return fmt.Errorf("bad response %d: %s", resp.StatusCode, apiErr.Error)
}
