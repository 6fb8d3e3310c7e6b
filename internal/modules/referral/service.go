package referral

import (
	"context"
	"math"

	"gympay/internal/domain"
	"gympay/internal/pkg/validator"
)

type Service struct {
	store Store
	orgID string
}

func NewService(store Store, orgID string) *Service {
	return &Service{store: store, orgID: orgID}
}

func (s *Service) List(ctx context.Context) ([]domain.Referral, error) {
	return s.store.List(ctx, s.orgID)
}

// Create records a referral. Status always starts at pending; nothing in
// this system advances it.
func (s *Service) Create(ctx context.Context, req CreateReferralRequest) (*domain.Referral, error) {
	referral := &domain.Referral{
		OrganizationID: s.orgID,
		ReferrerName:   req.ReferrerName,
		ReferredName:   req.ReferredName,
		ReferralType:   req.ReferralType,
		Status:         domain.ReferralPending,
		RewardAmount:   req.RewardAmount,
	}
	if err := validator.Check(referral); err != nil {
		return nil, err
	}
	if err := s.store.Create(ctx, referral); err != nil {
		return nil, err
	}
	return referral, nil
}

func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	referrals, err := s.store.List(ctx, s.orgID)
	if err != nil {
		return nil, err
	}

	stats := &Stats{TotalReferrals: len(referrals)}
	for _, r := range referrals {
		switch r.Status {
		case domain.ReferralConverted:
			stats.Converted++
			stats.TotalRewards += r.RewardAmount
		case domain.ReferralPending:
			stats.Pending++
		}
	}
	if stats.TotalReferrals > 0 {
		rate := float64(stats.Converted) / float64(stats.TotalReferrals) * 100
		stats.ConversionRate = math.Round(rate*10) / 10
	}
	return stats, nil
}
