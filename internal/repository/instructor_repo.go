package repository

import (
	"context"
	"errors"

	"gympay/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ErrDuplicateEmail maps the datastore's unique-email violation so the
// instructor module can answer with a 409 instead of a bare 500.
var ErrDuplicateEmail = errors.New("instructor email already exists")

type InstructorRepository struct {
	db *gorm.DB
}

func NewInstructorRepository(db *gorm.DB) *InstructorRepository {
	return &InstructorRepository{db: db}
}

func (r *InstructorRepository) List(ctx context.Context, orgID string) ([]domain.Instructor, error) {
	var instructors []domain.Instructor
	err := r.db.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Preload("Gym").
		Find(&instructors).Error
	return instructors, err
}

func (r *InstructorRepository) GetByID(ctx context.Context, orgID string, id int64) (*domain.Instructor, error) {
	var instructor domain.Instructor
	err := r.db.WithContext(ctx).
		Where("organization_id = ? AND id = ?", orgID, id).
		Preload("Gym").
		First(&instructor).Error
	if err != nil {
		return nil, err
	}
	return &instructor, nil
}

func (r *InstructorRepository) Create(ctx context.Context, instructor *domain.Instructor) error {
	if err := r.db.WithContext(ctx).Create(instructor).Error; err != nil {
		return mapUniqueViolation(err)
	}
	return nil
}

func (r *InstructorRepository) Update(ctx context.Context, instructor *domain.Instructor) error {
	if err := r.db.WithContext(ctx).Save(instructor).Error; err != nil {
		return mapUniqueViolation(err)
	}
	return nil
}

func (r *InstructorRepository) Delete(ctx context.Context, orgID string, id int64) error {
	res := r.db.WithContext(ctx).
		Where("organization_id = ? AND id = ?", orgID, id).
		Delete(&domain.Instructor{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func mapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrDuplicateEmail
	}
	return err
}
