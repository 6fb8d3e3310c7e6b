package instructor

import (
	"context"

	"gympay/internal/domain"
)

type Store interface {
	List(ctx context.Context, orgID string) ([]domain.Instructor, error)
	GetByID(ctx context.Context, orgID string, id int64) (*domain.Instructor, error)
	Create(ctx context.Context, instructor *domain.Instructor) error
	Update(ctx context.Context, instructor *domain.Instructor) error
	Delete(ctx context.Context, orgID string, id int64) error
}
