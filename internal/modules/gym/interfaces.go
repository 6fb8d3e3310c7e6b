package gym

import (
	"context"

	"gympay/internal/domain"
)

// Store is satisfied by the gorm repository and by the demo store. Which
// one a handler gets is decided once at startup.
type Store interface {
	List(ctx context.Context, orgID string) ([]domain.Gym, error)
	Create(ctx context.Context, gym *domain.Gym) error
}
