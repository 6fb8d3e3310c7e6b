package payroll

import (
	"context"
	"time"

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

func (s *Service) ListPeriods(ctx context.Context) ([]domain.PayrollPeriod, error) {
	return s.store.ListPeriods(ctx, s.orgID)
}

func (s *Service) CreatePeriod(ctx context.Context, req CreatePeriodRequest) (*domain.PayrollPeriod, error) {
	start, err := time.Parse("2006-01-02", req.PeriodStart)
	if err != nil {
		return nil, ErrBadDate
	}
	end, err := time.Parse("2006-01-02", req.PeriodEnd)
	if err != nil {
		return nil, ErrBadDate
	}
	if end.Before(start) {
		return nil, ErrInvalidPeriod
	}

	period := &domain.PayrollPeriod{
		OrganizationID:  s.orgID,
		PeriodStart:     req.PeriodStart,
		PeriodEnd:       req.PeriodEnd,
		Status:          domain.PayrollDraft,
		TotalAmount:     req.TotalAmount,
		InstructorCount: req.InstructorCount,
	}
	if err := validator.Check(period); err != nil {
		return nil, err
	}
	if err := s.store.CreatePeriod(ctx, period); err != nil {
		return nil, err
	}
	return period, nil
}

// Entries returns the instructor lines of one period, checking the period
// belongs to the organization first.
func (s *Service) Entries(ctx context.Context, periodID int64) ([]domain.PayrollEntry, error) {
	if _, err := s.store.GetPeriod(ctx, s.orgID, periodID); err != nil {
		return nil, err
	}
	return s.store.ListEntries(ctx, periodID)
}
