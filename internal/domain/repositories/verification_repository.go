package repositories

import (
	"context"

	"terminal-link.backend/internal/domain/entities"
)

// VerificationRepository defines OTP verification data operations
type VerificationRepository interface {
	GetByWorkflowID(ctx context.Context, workflowID string) (*entities.Verification, error)
	Upsert(ctx context.Context, v *entities.Verification) error
	MarkVerified(ctx context.Context, workflowID string) error
}
