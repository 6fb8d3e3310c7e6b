package repository

import (
	"context"

	"gympay/internal/domain"

	"gorm.io/gorm"
)

type ReferralRepository struct {
	db *gorm.DB
}

func NewReferralRepository(db *gorm.DB) *ReferralRepository {
	return &ReferralRepository{db: db}
}

func (r *ReferralRepository) List(ctx context.Context, orgID string) ([]domain.Referral, error) {
	var referrals []domain.Referral
	err := r.db.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Order("created_at DESC").
		Find(&referrals).Error
	return referrals, err
}

func (r *ReferralRepository) Create(ctx context.Context, referral *domain.Referral) error {
	return r.db.WithContext(ctx).Create(referral).Error
}
