package billing

import (
	"context"
	"errors"
	"testing"

	"gympay/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockBackend struct {
	mock.Mock
}

func (m *MockBackend) CreateCheckoutSession(ctx context.Context, priceID, customerID string, metadata map[string]string) (*CheckoutSession, error) {
	args := m.Called(ctx, priceID, customerID, metadata)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*CheckoutSession), args.Error(1)
}

func (m *MockBackend) CreatePortalSession(ctx context.Context, customerID string) (*PortalSession, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*PortalSession), args.Error(1)
}

func (m *MockBackend) Subscription(ctx context.Context, subscriptionID string) (*Subscription, error) {
	args := m.Called(ctx, subscriptionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Subscription), args.Error(1)
}

func (m *MockBackend) Customer(ctx context.Context, customerID string) (*Customer, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Customer), args.Error(1)
}

func (m *MockBackend) Invoices(ctx context.Context, customerID string, limit int) ([]Invoice, error) {
	args := m.Called(ctx, customerID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Invoice), args.Error(1)
}

func (m *MockBackend) UpdateSubscription(ctx context.Context, subscriptionID string, updates SubscriptionUpdate) (*Subscription, error) {
	args := m.Called(ctx, subscriptionID, updates)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Subscription), args.Error(1)
}

func (m *MockBackend) CancelSubscription(ctx context.Context, subscriptionID string, cancelAtPeriodEnd bool) (*Subscription, error) {
	args := m.Called(ctx, subscriptionID, cancelAtPeriodEnd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Subscription), args.Error(1)
}

func demoConfig() *config.Config {
	return &config.Config{
		FrontendURL: "http://localhost:5173",
		APIBaseURL:  config.DefaultAPIBaseURL,
	}
}

func TestSelectBackend_CapabilityGate(t *testing.T) {
	cfg := demoConfig()
	_, isDemo := SelectBackend(cfg).(*demoBackend)
	assert.True(t, isDemo, "placeholder API base URL must select the demo backend")

	cfg.APIBaseURL = "https://api.gympay.example.com/api"
	_, isAPI := SelectBackend(cfg).(*apiBackend)
	assert.True(t, isAPI, "custom API base URL must select the real backend")
}

func TestCheckoutURL_DemoModeUsesFallbackLink(t *testing.T) {
	m := NewManager(demoConfig())

	url, err := m.CheckoutURL(context.Background(), "price_small_gym", nil)
	require.NoError(t, err)
	assert.Equal(t, "https://buy.stripe.com/aEUg2l6Bi74v0xy3cf", url)
	assert.NoError(t, m.Err())
}

func TestCheckoutURL_DemoModeUnknownPrice(t *testing.T) {
	m := NewManager(demoConfig())

	_, err := m.CheckoutURL(context.Background(), "price_unknown", nil)
	require.ErrorIs(t, err, ErrNoFallbackLink)
	assert.ErrorIs(t, m.Err(), ErrNoFallbackLink)
}

func TestCheckoutURL_BackendCalledExactlyOnce(t *testing.T) {
	backend := new(MockBackend)
	backend.On("CreateCheckoutSession", mock.Anything, "price_small_gym", "cus_example123", mock.Anything).
		Return(&CheckoutSession{ID: "cs_123", URL: "https://checkout.example.com/cs_123"}, nil).
		Once()

	m := newManager(backend)
	url, err := m.CheckoutURL(context.Background(), "price_small_gym", map[string]string{"plan_name": "Small Gym"})
	require.NoError(t, err)
	assert.Equal(t, "https://checkout.example.com/cs_123", url)

	backend.AssertExpectations(t)
	backend.AssertNumberOfCalls(t, "CreateCheckoutSession", 1)
}

func TestCheckoutURL_BackendErrorSurfaces(t *testing.T) {
	boom := errors.New("provider unavailable")
	backend := new(MockBackend)
	backend.On("CreateCheckoutSession", mock.Anything, "price_small_gym", "cus_example123", mock.Anything).
		Return(nil, boom).
		Once()

	m := newManager(backend)
	_, err := m.CheckoutURL(context.Background(), "price_small_gym", nil)
	require.ErrorIs(t, err, boom)
	assert.ErrorIs(t, m.Err(), boom)

	backend.AssertNumberOfCalls(t, "CreateCheckoutSession", 1)
}

func TestRefresh_DemoModeLoadsFixedData(t *testing.T) {
	m := NewManager(demoConfig())

	require.NoError(t, m.Refresh(context.Background()))
	require.True(t, m.Loaded())

	sub := m.Subscription()
	require.NotNil(t, sub)
	assert.Equal(t, "sub_example123", sub.ID)
	assert.Equal(t, "active", sub.Status)
	require.Len(t, sub.Items.Data, 1)
	assert.Equal(t, int64(24900), sub.Items.Data[0].Price.UnitAmount)
	assert.Equal(t, "Professional Plan", sub.Items.Data[0].Price.Nickname)

	customer := m.Customer()
	require.NotNil(t, customer)
	assert.Equal(t, "demo@example.com", customer.Email)
	require.Len(t, customer.PaymentMethods, 1)
	assert.Equal(t, "4242", customer.PaymentMethods[0].Card.Last4)

	invoices := m.Invoices()
	require.Len(t, invoices, 1)
	assert.Equal(t, "INV-2024-001", invoices[0].Number)
	assert.Equal(t, int64(39300), invoices[0].AmountPaid)
}

func TestRefresh_BackendErrorRecorded(t *testing.T) {
	boom := errors.New("connection refused")
	backend := new(MockBackend)
	backend.On("Subscription", mock.Anything, "sub_example123").Return(nil, boom)

	m := newManager(backend)
	err := m.Refresh(context.Background())
	require.ErrorIs(t, err, boom)
	assert.False(t, m.Loaded())
	assert.ErrorIs(t, m.Err(), boom)
}

func TestPortal_DemoModeRequiresBackend(t *testing.T) {
	m := NewManager(demoConfig())

	_, err := m.PortalURL(context.Background())
	require.ErrorIs(t, err, ErrBackendRequired)
	assert.ErrorIs(t, m.Err(), ErrBackendRequired)
}

func TestUpdateAndCancel_DemoModeRequiresBackend(t *testing.T) {
	m := NewManager(demoConfig())

	_, err := m.UpdateSubscription(context.Background(), SubscriptionUpdate{PriceID: "price_medium_gym"})
	require.ErrorIs(t, err, ErrBackendRequired)

	_, err = m.CancelSubscription(context.Background(), true)
	require.ErrorIs(t, err, ErrBackendRequired)
}

func TestCancelSubscription_UpdatesState(t *testing.T) {
	cancelled := &Subscription{ID: "sub_example123", Status: "active", CancelAtPeriodEnd: true}
	backend := new(MockBackend)
	backend.On("CancelSubscription", mock.Anything, "sub_example123", true).
		Return(cancelled, nil).
		Once()

	m := newManager(backend)
	sub, err := m.CancelSubscription(context.Background(), true)
	require.NoError(t, err)
	assert.True(t, sub.CancelAtPeriodEnd)
	assert.Equal(t, cancelled, m.Subscription())
	backend.AssertExpectations(t)
}
