// Package billing holds the subscription state for the signed-in operator
// and mediates every payment-provider interaction through one decision:
// is a real billing backend reachable? The answer is computed once at
// startup and expressed as a Backend implementation, so nothing here
// re-checks capability per call.
package billing

// Record shapes follow the payment provider's JSON conventions (snake_case
// fields, minor-unit amounts, Unix-second timestamps) because the dashboard
// widgets render them as-is.

type Price struct {
	UnitAmount int64  `json:"unit_amount"`
	Currency   string `json:"currency"`
	Nickname   string `json:"nickname"`
}

type SubscriptionItem struct {
	Price Price `json:"price"`
}

type SubscriptionItems struct {
	Data []SubscriptionItem `json:"data"`
}

type Subscription struct {
	ID                string            `json:"id"`
	Status            string            `json:"status"`
	CurrentPeriodEnd  int64             `json:"current_period_end"`
	CancelAtPeriodEnd bool              `json:"cancel_at_period_end"`
	Items             SubscriptionItems `json:"items"`
}

type Card struct {
	Brand    string `json:"brand"`
	Last4    string `json:"last4"`
	ExpMonth int    `json:"exp_month"`
	ExpYear  int    `json:"exp_year"`
}

type PaymentMethod struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Card      Card   `json:"card"`
	IsDefault bool   `json:"is_default"`
}

type Customer struct {
	ID             string          `json:"id"`
	Email          string          `json:"email"`
	PaymentMethods []PaymentMethod `json:"payment_methods"`
}

type Invoice struct {
	ID               string `json:"id"`
	Number           string `json:"number"`
	Status           string `json:"status"`
	AmountPaid       int64  `json:"amount_paid"`
	Currency         string `json:"currency"`
	Created          int64  `json:"created"`
	PeriodStart      int64  `json:"period_start"`
	PeriodEnd        int64  `json:"period_end"`
	HostedInvoiceURL string `json:"hosted_invoice_url"`
	InvoicePDF       string `json:"invoice_pdf"`
}

type CheckoutSession struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

type PortalSession struct {
	URL string `json:"url"`
}

// SubscriptionUpdate carries the fields the dashboard can change. Field
// names match what the backend's provider routes expect.
type SubscriptionUpdate struct {
	PriceID           string `json:"priceId,omitempty"`
	CancelAtPeriodEnd *bool  `json:"cancelAtPeriodEnd,omitempty"`
}

// Operator is the demo account billing state is loaded for. There is no
// real user context yet.
type Operator struct {
	ID             string `json:"id"`
	CustomerID     string `json:"stripe_customer_id"`
	SubscriptionID string `json:"subscription_id"`
}

// Plan is one pricing tier shown on the pricing page. Price is whole
// dollars per month.
type Plan struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Price    int64    `json:"price"`
	PriceID  string   `json:"price_id"`
	Features []string `json:"features"`
}

func Plans() []Plan {
	return []Plan{
		{
			ID:      "small",
			Name:    "Small Gym",
			Price:   99,
			PriceID: "price_small_gym",
			Features: []string{
				"Up to 10 instructors",
				"1 location",
				"Payroll automation",
				"Email support",
			},
		},
		{
			ID:      "medium",
			Name:    "Medium Gym",
			Price:   199,
			PriceID: "price_medium_gym",
			Features: []string{
				"Up to 30 instructors",
				"3 locations",
				"Payroll automation",
				"Referral tracking",
				"Priority support",
			},
		},
		{
			ID:      "large",
			Name:    "Large Gym",
			Price:   299,
			PriceID: "price_large_gym",
			Features: []string{
				"Up to 100 instructors",
				"10 locations",
				"Advanced analytics",
				"Referral tracking",
				"Priority support",
			},
		},
		{
			ID:      "chain",
			Name:    "Gym Chain",
			Price:   499,
			PriceID: "price_gym_chain",
			Features: []string{
				"Unlimited instructors",
				"Unlimited locations",
				"Advanced analytics",
				"Dedicated account manager",
			},
		},
	}
}
