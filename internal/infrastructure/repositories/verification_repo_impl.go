package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"terminal-link.backend/internal/domain/entities"
	domainerrors "terminal-link.backend/internal/domain/errors"
	"terminal-link.backend/internal/infrastructure/models"
)

// VerificationRepositoryImpl implements VerificationRepository
type VerificationRepositoryImpl struct {
	db *gorm.DB
}

func NewVerificationRepository(db *gorm.DB) *VerificationRepositoryImpl {
	return &VerificationRepositoryImpl{db: db}
}

func (r *VerificationRepositoryImpl) GetByWorkflowID(ctx context.Context, workflowID string) (*entities.Verification, error) {
	var m models.Verification
	err := r.db.WithContext(ctx).Where("workflow_id = ?", workflowID).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domainerrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return r.toEntity(&m), nil
}

// Upsert stores the verification record for the workflow, replacing any
// previously issued code.
func (r *VerificationRepositoryImpl) Upsert(ctx context.Context, v *entities.Verification) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var m models.Verification
		err := tx.Where("workflow_id = ?", v.WorkflowID).First(&m).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			m = models.Verification{
				ID:         uuid.New(),
				WorkflowID: v.WorkflowID,
				CreatedAt:  time.Now(),
			}
		} else if err != nil {
			return err
		}

		m.AppID = v.AppID
		m.OTP = v.OTP
		m.IsVerified = v.IsVerified
		m.SimNo = v.SimNo
		m.Latitude = v.Latitude
		m.Longitude = v.Longitude
		m.UpdatedAt = time.Now()
		return tx.Save(&m).Error
	})
}

func (r *VerificationRepositoryImpl) MarkVerified(ctx context.Context, workflowID string) error {
	result := r.db.WithContext(ctx).Model(&models.Verification{}).
		Where("workflow_id = ?", workflowID).
		Updates(map[string]interface{}{
			"is_verified": true,
			"updated_at":  time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *VerificationRepositoryImpl) toEntity(m *models.Verification) *entities.Verification {
	return &entities.Verification{
		WorkflowID: m.WorkflowID,
		AppID:      m.AppID,
		OTP:        m.OTP,
		IsVerified: m.IsVerified,
		SimNo:      m.SimNo,
		Latitude:   m.Latitude,
		Longitude:  m.Longitude,
	}
}
