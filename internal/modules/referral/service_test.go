package referral

import (
	"context"
	"testing"

	"gympay/internal/domain"
	"gympay/internal/pkg/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) List(ctx context.Context, orgID string) ([]domain.Referral, error) {
	args := m.Called(ctx, orgID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Referral), args.Error(1)
}

func (m *MockStore) Create(ctx context.Context, referral *domain.Referral) error {
	args := m.Called(ctx, referral)
	return args.Error(0)
}

const testOrgID = "550e8400-e29b-41d4-a716-446655440000"

func TestCreateStartsPending(t *testing.T) {
	store := new(MockStore)
	service := NewService(store, testOrgID)

	store.On("Create", mock.Anything, mock.MatchedBy(func(r *domain.Referral) bool {
		return r.Status == domain.ReferralPending && r.OrganizationID == testOrgID
	})).Return(nil)

	referral, err := service.Create(context.Background(), CreateReferralRequest{
		ReferrerName: "Emma Davis",
		ReferredName: "Liam Park",
		ReferralType: "member",
		RewardAmount: 25,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.ReferralPending, referral.Status)
	assert.Equal(t, 25.0, referral.RewardAmount)
	store.AssertExpectations(t)
}

func TestCreateValidatesEntity(t *testing.T) {
	store := new(MockStore)
	service := NewService(store, testOrgID)

	_, err := service.Create(context.Background(), CreateReferralRequest{
		ReferrerName: "",
		ReferredName: "Liam Park",
		ReferralType: "member",
	})

	var fields validator.FieldErrors
	require.ErrorAs(t, err, &fields)
	assert.Equal(t, "required", fields["ReferrerName"])
	store.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestStatsCountsOnlyConvertedRewards(t *testing.T) {
	store := new(MockStore)
	service := NewService(store, testOrgID)

	store.On("List", mock.Anything, testOrgID).Return([]domain.Referral{
		{Status: domain.ReferralConverted, RewardAmount: 50},
		{Status: domain.ReferralConverted, RewardAmount: 75},
		{Status: domain.ReferralPending, RewardAmount: 100},
	}, nil)

	stats, err := service.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalReferrals)
	assert.Equal(t, 2, stats.Converted)
	assert.Equal(t, 1, stats.Pending)
	assert.Equal(t, 125.0, stats.TotalRewards)
	assert.Equal(t, 66.7, stats.ConversionRate)
}

func TestStatsEmpty(t *testing.T) {
	store := new(MockStore)
	service := NewService(store, testOrgID)

	store.On("List", mock.Anything, testOrgID).Return([]domain.Referral{}, nil)

	stats, err := service.Stats(context.Background())
	require.NoError(t, err)
	assert.Zero(t, stats.TotalReferrals)
	assert.Zero(t, stats.ConversionRate)
}
