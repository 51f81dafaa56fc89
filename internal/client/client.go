// Package client is the HTTP client for the stage API. It satisfies
// workflow.Stages, so a workflow.Runner can drive a remote server the
// same way it drives in-process services.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"orderflow/internal/apperr"
	"orderflow/internal/catalog"
	"orderflow/internal/model"
)

// Client calls the stage endpoints of a running server.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a client for the server at baseURL.
func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// apiError carries the server's message verbatim while unwrapping to
// the sentinel matching the reported kind.
type apiError struct {
	message  string
	sentinel error
}

func (e *apiError) Error() string { return e.message }

func (e *apiError) Unwrap() error { return e.sentinel }

// Search resolves a restaurant by name.
func (c *Client) Search(ctx context.Context, name string) (*catalog.Restaurant, error) {
	var out model.SearchResponse
	q := url.Values{"name": {name}}
	if err := c.get(ctx, "/api/search?"+q.Encode(), &out); err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}
	return &catalog.Restaurant{Name: out.Name, Menu: out.Menu}, nil
}

// PlaceOrder places an order for item at restaurantName.
func (c *Client) PlaceOrder(ctx context.Context, restaurantName, item string) (model.Order, error) {
	var out model.OrderResponse
	req := model.OrderRequest{RestaurantName: restaurantName, Item: item}
	if err := c.post(ctx, "/api/order", req, &out); err != nil {
		return model.Order{}, fmt.Errorf("order: %w", err)
	}
	return model.Order{OrderID: out.OrderID, Amount: out.Amount}, nil
}

// ProcessPayment attempts a payment for orderID.
func (c *Client) ProcessPayment(ctx context.Context, orderID string, amount float64, forceFail bool) (model.Payment, error) {
	var out model.PaymentResponse
	req := model.PaymentRequest{OrderID: orderID, Amount: &amount, ForceFail: forceFail}
	if err := c.post(ctx, "/api/payment", req, &out); err != nil {
		return model.Payment{}, fmt.Errorf("payment: %w", err)
	}
	return model.Payment{PaymentID: out.PaymentID}, nil
}

// ConfirmDelivery confirms delivery of orderID.
func (c *Client) ConfirmDelivery(ctx context.Context, orderID string) (model.Delivery, error) {
	var out model.DeliveryResponse
	q := url.Values{"orderId": {orderID}}
	if err := c.get(ctx, "/api/delivery?"+q.Encode(), &out); err != nil {
		return model.Delivery{}, fmt.Errorf("delivery: %w", err)
	}
	return model.Delivery{DeliveredAt: out.DeliveredAt}, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

// do executes the request, distinguishing network failures from the
// stage's own business errors. A non-2xx response is decoded into the
// error envelope and surfaced with the server's message verbatim.
func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return &apiError{
			message:  fmt.Sprintf("%s: %v", apperr.ErrTransport, err),
			sentinel: apperr.ErrTransport,
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var payload model.ErrorPayload
		if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil || payload.Error == "" {
			return &apiError{
				message:  fmt.Sprintf("unexpected status %d", resp.StatusCode),
				sentinel: apperr.ErrTransport,
			}
		}
		sentinel := apperr.FromKind(payload.Kind)
		if sentinel == nil {
			return fmt.Errorf("%s", payload.Error)
		}
		return &apiError{message: payload.Error, sentinel: sentinel}
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(out); err != nil {
		return &apiError{
			message:  fmt.Sprintf("%s: decoding response: %v", apperr.ErrTransport, err),
			sentinel: apperr.ErrTransport,
		}
	}
	return nil
}
