package billing

import (
	"context"
	"time"
)

// fallbackCheckoutLinks are hosted checkout pages registered per plan
// price; demo mode sends the operator there instead of creating a session.
var fallbackCheckoutLinks = map[string]string{
	"price_small_gym":  "https://buy.stripe.com/aEUg2l6Bi74v0xy3cf",
	"price_medium_gym": "https://buy.stripe.com/aEUaI1e3K60rbcc7su",
	"price_large_gym":  "https://buy.stripe.com/dR6dUd5xe60r800000",
	"price_gym_chain":  "https://buy.stripe.com/00gbM55xebkLa887st",
}

// demoBackend serves fixed demo data without any network calls. Reads
// succeed; actions that genuinely need a provider return
// ErrBackendRequired.
type demoBackend struct{}

func NewDemoBackend() Backend {
	return &demoBackend{}
}

func (b *demoBackend) CreateCheckoutSession(ctx context.Context, priceID, customerID string, metadata map[string]string) (*CheckoutSession, error) {
	url, ok := fallbackCheckoutLinks[priceID]
	if !ok {
		return nil, ErrNoFallbackLink
	}
	return &CheckoutSession{URL: url}, nil
}

func (b *demoBackend) CreatePortalSession(ctx context.Context, customerID string) (*PortalSession, error) {
	return nil, ErrBackendRequired
}

func (b *demoBackend) Subscription(ctx context.Context, subscriptionID string) (*Subscription, error) {
	return &Subscription{
		ID:               "sub_example123",
		Status:           "active",
		CurrentPeriodEnd: time.Now().Add(30 * 24 * time.Hour).Unix(),
		Items: SubscriptionItems{
			Data: []SubscriptionItem{
				{
					Price: Price{
						UnitAmount: 24900,
						Currency:   "usd",
						Nickname:   "Professional Plan",
					},
				},
			},
		},
	}, nil
}

func (b *demoBackend) Customer(ctx context.Context, customerID string) (*Customer, error) {
	return &Customer{
		ID:    "cus_example123",
		Email: "demo@example.com",
		PaymentMethods: []PaymentMethod{
			{
				ID:   "pm_1234567890",
				Type: "card",
				Card: Card{
					Brand:    "visa",
					Last4:    "4242",
					ExpMonth: 12,
					ExpYear:  2024,
				},
				IsDefault: true,
			},
		},
	}, nil
}

func (b *demoBackend) Invoices(ctx context.Context, customerID string, limit int) ([]Invoice, error) {
	now := time.Now().Unix()
	return []Invoice{
		{
			ID:               "in_1234567890",
			Number:           "INV-2024-001",
			Status:           "paid",
			AmountPaid:       39300,
			Currency:         "usd",
			Created:          now - 7*24*60*60,
			PeriodStart:      now - 30*24*60*60,
			PeriodEnd:        now,
			HostedInvoiceURL: "#",
			InvoicePDF:       "#",
		},
	}, nil
}

func (b *demoBackend) UpdateSubscription(ctx context.Context, subscriptionID string, updates SubscriptionUpdate) (*Subscription, error) {
	return nil, ErrBackendRequired
}

func (b *demoBackend) CancelSubscription(ctx context.Context, subscriptionID string, cancelAtPeriodEnd bool) (*Subscription, error) {
	return nil, ErrBackendRequired
}
