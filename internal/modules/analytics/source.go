package analytics

import (
	"context"
	"math"
	"time"

	"gympay/internal/domain"
	"gympay/internal/repository"
)

// StoreSource computes the overview from stored rows. Earlier builds
// returned hardcoded values for everything but revenue; all four metrics
// are derived now.
type StoreSource struct {
	analytics *repository.AnalyticsRepository
	payroll   *repository.PayrollRepository
}

func NewStoreSource(analytics *repository.AnalyticsRepository, payroll *repository.PayrollRepository) *StoreSource {
	return &StoreSource{analytics: analytics, payroll: payroll}
}

func (s *StoreSource) Entries(ctx context.Context, orgID string, days int) ([]domain.AnalyticsEntry, error) {
	return s.analytics.Entries(ctx, orgID, days)
}

func (s *StoreSource) Overview(ctx context.Context, orgID string, days int) (*domain.AnalyticsOverview, error) {
	now := time.Now().UTC()
	windowStart := now.AddDate(0, 0, -days).Format("2006-01-02")
	midpoint := now.AddDate(0, 0, -days/2).Format("2006-01-02")

	totalRevenue, err := s.analytics.RevenueSince(ctx, orgID, windowStart)
	if err != nil {
		return nil, err
	}
	recentRevenue, err := s.analytics.RevenueSince(ctx, orgID, midpoint)
	if err != nil {
		return nil, err
	}

	activeInstructors, err := s.analytics.CountActiveInstructors(ctx, orgID)
	if err != nil {
		return nil, err
	}

	totalHours, err := s.payroll.TotalHours(ctx, orgID)
	if err != nil {
		return nil, err
	}

	return &domain.AnalyticsOverview{
		TotalRevenue:      totalRevenue,
		ActiveInstructors: activeInstructors,
		TotalHours:        totalHours,
		GrowthRate:        growthRate(totalRevenue-recentRevenue, recentRevenue),
	}, nil
}

// growthRate compares the window's second half against its first half,
// as a percentage rounded to one decimal.
func growthRate(firstHalf, secondHalf float64) float64 {
	if firstHalf <= 0 {
		return 0
	}
	rate := (secondHalf - firstHalf) / firstHalf * 100
	return math.Round(rate*10) / 10
}
