package repository

import (
	"context"

	"gympay/internal/domain"

	"gorm.io/gorm"
)

type GymRepository struct {
	db *gorm.DB
}

func NewGymRepository(db *gorm.DB) *GymRepository {
	return &GymRepository{db: db}
}

func (r *GymRepository) List(ctx context.Context, orgID string) ([]domain.Gym, error) {
	var gyms []domain.Gym
	err := r.db.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Find(&gyms).Error
	return gyms, err
}

func (r *GymRepository) Create(ctx context.Context, gym *domain.Gym) error {
	return r.db.WithContext(ctx).Create(gym).Error
}
