package analytics

import (
	"context"

	"gympay/internal/domain"
)

// Source produces the overview aggregate and the raw metric rows. The
// datastore-backed source computes; the demo source returns fixed values.
type Source interface {
	Overview(ctx context.Context, orgID string, days int) (*domain.AnalyticsOverview, error)
	Entries(ctx context.Context, orgID string, days int) ([]domain.AnalyticsEntry, error)
}
