package repository

import (
	"context"

	"gympay/internal/domain"

	"gorm.io/gorm"
)

type PayrollRepository struct {
	db *gorm.DB
}

func NewPayrollRepository(db *gorm.DB) *PayrollRepository {
	return &PayrollRepository{db: db}
}

// ListPeriods returns payroll periods newest first.
func (r *PayrollRepository) ListPeriods(ctx context.Context, orgID string) ([]domain.PayrollPeriod, error) {
	var periods []domain.PayrollPeriod
	err := r.db.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Order("period_start DESC").
		Find(&periods).Error
	return periods, err
}

func (r *PayrollRepository) CreatePeriod(ctx context.Context, period *domain.PayrollPeriod) error {
	return r.db.WithContext(ctx).Create(period).Error
}

func (r *PayrollRepository) GetPeriod(ctx context.Context, orgID string, id int64) (*domain.PayrollPeriod, error) {
	var period domain.PayrollPeriod
	err := r.db.WithContext(ctx).
		Where("organization_id = ? AND id = ?", orgID, id).
		First(&period).Error
	if err != nil {
		return nil, err
	}
	return &period, nil
}

func (r *PayrollRepository) ListEntries(ctx context.Context, periodID int64) ([]domain.PayrollEntry, error) {
	var entries []domain.PayrollEntry
	err := r.db.WithContext(ctx).
		Where("payroll_period_id = ?", periodID).
		Preload("Instructor").
		Find(&entries).Error
	return entries, err
}

// TotalHours sums hours_worked across all of the organization's payroll
// entries; used by the analytics overview.
func (r *PayrollRepository) TotalHours(ctx context.Context, orgID string) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).
		Model(&domain.PayrollEntry{}).
		Joins("JOIN payroll_periods ON payroll_periods.id = payroll_entries.payroll_period_id").
		Where("payroll_periods.organization_id = ?", orgID).
		Select("COALESCE(SUM(payroll_entries.hours_worked), 0)").
		Scan(&total).Error
	return total, err
}
