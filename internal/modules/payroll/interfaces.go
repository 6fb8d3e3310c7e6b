package payroll

import (
	"context"

	"gympay/internal/domain"
)

type Store interface {
	ListPeriods(ctx context.Context, orgID string) ([]domain.PayrollPeriod, error)
	CreatePeriod(ctx context.Context, period *domain.PayrollPeriod) error
	GetPeriod(ctx context.Context, orgID string, id int64) (*domain.PayrollPeriod, error)
	ListEntries(ctx context.Context, periodID int64) ([]domain.PayrollEntry, error)
}
