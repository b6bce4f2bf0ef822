package repositories

import (
	"context"

	"terminal-link.backend/internal/domain/entities"
)

// DeploymentRepository defines deployment data operations
type DeploymentRepository interface {
	// Upsert merges the deployment keyed on terminal ID. WorkflowID and
	// ApplicationNumber are set only when the row is inserted.
	Upsert(ctx context.Context, dep *entities.Deployment) (*entities.Deployment, error)
	// GetByIdentifier matches terminal ID, the order-independent pair key or
	// SIM number.
	GetByIdentifier(ctx context.Context, identifier string) (*entities.Deployment, error)
}
