package billing

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// apiBackend talks to the provider through the application's own REST API
// (`<base>/stripe/...`). Errors come back as-is; there are no retries.
type apiBackend struct {
	baseURL     string
	frontendURL string
	client      *http.Client
}

func NewAPIBackend(baseURL, frontendURL string) Backend {
	return &apiBackend{
		baseURL:     strings.TrimSuffix(baseURL, "/"),
		frontendURL: strings.TrimSuffix(frontendURL, "/"),
		client:      &http.Client{Timeout: 15 * time.Second},
	}
}

func (b *apiBackend) CreateCheckoutSession(ctx context.Context, priceID, customerID string, metadata map[string]string) (*CheckoutSession, error) {
	body := map[string]any{
		"priceId":    priceID,
		"customerId": customerID,
		"metadata":   metadata,
		"successUrl": b.frontendURL + "/subscription/success",
		"cancelUrl":  b.frontendURL + "/pricing",
	}
	var session CheckoutSession
	if err := b.do(ctx, http.MethodPost, "/stripe/create-checkout-session", body, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (b *apiBackend) CreatePortalSession(ctx context.Context, customerID string) (*PortalSession, error) {
	body := map[string]any{
		"customerId": customerID,
		"returnUrl":  b.frontendURL + "/settings?tab=billing",
	}
	var session PortalSession
	if err := b.do(ctx, http.MethodPost, "/stripe/create-portal-session", body, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (b *apiBackend) Subscription(ctx context.Context, subscriptionID string) (*Subscription, error) {
	var sub Subscription
	if err := b.do(ctx, http.MethodGet, "/stripe/subscription/"+subscriptionID, nil, &sub); err != nil {
		return nil, err
	}
	return &sub, nil
}

func (b *apiBackend) Customer(ctx context.Context, customerID string) (*Customer, error) {
	var customer Customer
	if err := b.do(ctx, http.MethodGet, "/stripe/customer/"+customerID, nil, &customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

func (b *apiBackend) Invoices(ctx context.Context, customerID string, limit int) ([]Invoice, error) {
	// The provider wraps lists in {data: [...]}
	var wrapper struct {
		Data []Invoice `json:"data"`
	}
	path := "/stripe/invoices/" + customerID + "?limit=" + strconv.Itoa(limit)
	if err := b.do(ctx, http.MethodGet, path, nil, &wrapper); err != nil {
		return nil, err
	}
	return wrapper.Data, nil
}

func (b *apiBackend) UpdateSubscription(ctx context.Context, subscriptionID string, updates SubscriptionUpdate) (*Subscription, error) {
	var sub Subscription
	if err := b.do(ctx, http.MethodPut, "/stripe/subscription/"+subscriptionID, updates, &sub); err != nil {
		return nil, err
	}
	return &sub, nil
}

func (b *apiBackend) CancelSubscription(ctx context.Context, subscriptionID string, cancelAtPeriodEnd bool) (*Subscription, error) {
	body := map[string]any{"cancelAtPeriodEnd": cancelAtPeriodEnd}
	var sub Subscription
	if err := b.do(ctx, http.MethodPost, "/stripe/subscription/"+subscriptionID+"/cancel", body, &sub); err != nil {
		return nil, err
	}
	return &sub, nil
}

func (b *apiBackend) do(ctx context.Context, method, path string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, b.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := b.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr struct {
			Error   string `json:"error"`
			Message string `json:"message"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		if apiErr.Error != "" {
			return fmt.Errorf("billing backend: %s (status %d)", apiErr.Error, resp.StatusCode)
		}
		return fmt.Errorf("billing backend: unexpected status %d for %s %s", resp.StatusCode, method, path)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
