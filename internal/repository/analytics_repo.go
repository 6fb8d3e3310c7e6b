package repository

import (
	"context"
	"time"

	"gympay/internal/domain"

	"gorm.io/gorm"
)

type AnalyticsRepository struct {
	db *gorm.DB
}

func NewAnalyticsRepository(db *gorm.DB) *AnalyticsRepository {
	return &AnalyticsRepository{db: db}
}

// Entries returns metric rows for the trailing window, newest first.
func (r *AnalyticsRepository) Entries(ctx context.Context, orgID string, days int) ([]domain.AnalyticsEntry, error) {
	since := windowStart(days)

	var entries []domain.AnalyticsEntry
	err := r.db.WithContext(ctx).
		Where("organization_id = ? AND date >= ?", orgID, since).
		Order("date DESC").
		Find(&entries).Error
	return entries, err
}

func (r *AnalyticsRepository) CreateEntry(ctx context.Context, entry *domain.AnalyticsEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

// RevenueSince sums revenue metric rows dated on or after the given
// YYYY-MM-DD day.
func (r *AnalyticsRepository) RevenueSince(ctx context.Context, orgID string, since string) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).
		Model(&domain.AnalyticsEntry{}).
		Where("organization_id = ? AND metric_type = ? AND date >= ?", orgID, domain.MetricRevenue, since).
		Select("COALESCE(SUM(metric_value), 0)").
		Scan(&total).Error
	return total, err
}

func (r *AnalyticsRepository) CountActiveInstructors(ctx context.Context, orgID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Instructor{}).
		Where("organization_id = ? AND status = ?", orgID, domain.InstructorActive).
		Count(&count).Error
	return count, err
}

func windowStart(days int) string {
	return time.Now().UTC().AddDate(0, 0, -days).Format("2006-01-02")
}
