package repositories

import (
	"context"

	"terminal-link.backend/internal/domain/entities"
)

// TerminalConfigRepository defines terminal config data operations
type TerminalConfigRepository interface {
	Get(ctx context.Context, merchantID, terminalID string) (*entities.TerminalConfig, error)
	Upsert(ctx context.Context, cfg *entities.TerminalConfig) error
}
