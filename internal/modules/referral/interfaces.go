package referral

import (
	"context"

	"gympay/internal/domain"
)

type Store interface {
	List(ctx context.Context, orgID string) ([]domain.Referral, error)
	Create(ctx context.Context, referral *domain.Referral) error
}
