package billing

import (
	"context"
	"sync"

	"gympay/internal/config"
)

// Manager is the subscription state container. It loads subscription,
// customer and invoice data through its Backend and remembers the last
// action error. Action methods record their error and return it so the
// caller can react; nothing is retried.
type Manager struct {
	backend  Backend
	operator Operator

	mu           sync.RWMutex
	subscription *Subscription
	customer     *Customer
	invoices     []Invoice
	loaded       bool
	lastErr      error
}

const invoicePageSize = 10

func NewManager(cfg *config.Config) *Manager {
	return newManager(SelectBackend(cfg))
}

func newManager(backend Backend) *Manager {
	return &Manager{
		backend: backend,
		operator: Operator{
			ID:             "user_123",
			CustomerID:     "cus_example123",
			SubscriptionID: "sub_example123",
		},
	}
}

func (m *Manager) Operator() Operator {
	return m.operator
}

// Refresh loads the operator's billing state through the backend. In demo
// mode this never touches the network.
func (m *Manager) Refresh(ctx context.Context) error {
	subscription, err := m.backend.Subscription(ctx, m.operator.SubscriptionID)
	if err != nil {
		return m.fail(err)
	}
	customer, err := m.backend.Customer(ctx, m.operator.CustomerID)
	if err != nil {
		return m.fail(err)
	}
	invoices, err := m.backend.Invoices(ctx, m.operator.CustomerID, invoicePageSize)
	if err != nil {
		return m.fail(err)
	}

	m.mu.Lock()
	m.subscription = subscription
	m.customer = customer
	m.invoices = invoices
	m.loaded = true
	m.lastErr = nil
	m.mu.Unlock()
	return nil
}

func (m *Manager) Loaded() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.loaded
}

func (m *Manager) Subscription() *Subscription {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.subscription
}

func (m *Manager) Customer() *Customer {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.customer
}

func (m *Manager) Invoices() []Invoice {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.invoices
}

// Err returns the last recorded action error, or nil.
func (m *Manager) Err() error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.lastErr
}

// CheckoutURL starts a checkout for the given plan price and returns the
// URL the operator should be sent to. Demo mode resolves the registered
// hosted checkout link instead.
func (m *Manager) CheckoutURL(ctx context.Context, priceID string, metadata map[string]string) (string, error) {
	session, err := m.backend.CreateCheckoutSession(ctx, priceID, m.operator.CustomerID, metadata)
	if err != nil {
		return "", m.fail(err)
	}
	m.clearErr()
	return session.URL, nil
}

// PortalURL opens the provider's customer portal. Unavailable in demo mode.
func (m *Manager) PortalURL(ctx context.Context) (string, error) {
	session, err := m.backend.CreatePortalSession(ctx, m.operator.CustomerID)
	if err != nil {
		return "", m.fail(err)
	}
	m.clearErr()
	return session.URL, nil
}

func (m *Manager) UpdateSubscription(ctx context.Context, updates SubscriptionUpdate) (*Subscription, error) {
	subscription, err := m.backend.UpdateSubscription(ctx, m.operator.SubscriptionID, updates)
	if err != nil {
		return nil, m.fail(err)
	}

	m.mu.Lock()
	m.subscription = subscription
	m.lastErr = nil
	m.mu.Unlock()
	return subscription, nil
}

func (m *Manager) CancelSubscription(ctx context.Context, cancelAtPeriodEnd bool) (*Subscription, error) {
	subscription, err := m.backend.CancelSubscription(ctx, m.operator.SubscriptionID, cancelAtPeriodEnd)
	if err != nil {
		return nil, m.fail(err)
	}

	m.mu.Lock()
	m.subscription = subscription
	m.lastErr = nil
	m.mu.Unlock()
	return subscription, nil
}

func (m *Manager) fail(err error) error {
	m.mu.Lock()
	m.lastErr = err
	m.mu.Unlock()
	return err
}

func (m *Manager) clearErr() {
	m.mu.Lock()
	m.lastErr = nil
	m.mu.Unlock()
}
