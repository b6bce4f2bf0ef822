package repositories

import (
	"context"

	"terminal-link.backend/internal/domain/entities"
)

// SaleRepository defines sale data operations. All pair lookups are
// order-independent (entities.PairKey).
type SaleRepository interface {
	// UpsertPending replaces the open PENDING sale for the pair, or inserts
	// a new one, atomically.
	UpsertPending(ctx context.Context, sale *entities.Sale) (*entities.Sale, error)
	// GetLatestByPair returns the most recently created sale for the pair,
	// regardless of status.
	GetLatestByPair(ctx context.Context, merchantID, terminalID string) (*entities.Sale, error)
}
