package billing

import (
	"context"

	"gympay/internal/config"
)

// Backend is the single seam between the billing state container and the
// payment provider. Two variants exist: apiBackend proxies to a real
// provider-backed API, demoBackend substitutes static demo behavior.
type Backend interface {
	CreateCheckoutSession(ctx context.Context, priceID, customerID string, metadata map[string]string) (*CheckoutSession, error)
	CreatePortalSession(ctx context.Context, customerID string) (*PortalSession, error)
	Subscription(ctx context.Context, subscriptionID string) (*Subscription, error)
	Customer(ctx context.Context, customerID string) (*Customer, error)
	Invoices(ctx context.Context, customerID string, limit int) ([]Invoice, error)
	UpdateSubscription(ctx context.Context, subscriptionID string, updates SubscriptionUpdate) (*Subscription, error)
	CancelSubscription(ctx context.Context, subscriptionID string, cancelAtPeriodEnd bool) (*Subscription, error)
}

// SelectBackend applies the capability gate. Static configuration check,
// not a live probe: a backend appearing after startup is not detected.
func SelectBackend(cfg *config.Config) Backend {
	if cfg.BillingBackendAvailable() {
		return NewAPIBackend(cfg.APIBaseURL, cfg.FrontendURL)
	}
	return NewDemoBackend()
}
