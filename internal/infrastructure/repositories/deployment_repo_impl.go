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

// DeploymentRepositoryImpl implements DeploymentRepository
type DeploymentRepositoryImpl struct {
	db *gorm.DB
}

func NewDeploymentRepository(db *gorm.DB) *DeploymentRepositoryImpl {
	return &DeploymentRepositoryImpl{db: db}
}

// Upsert merges the deployment keyed on terminal ID. The caller supplies
// candidate WorkflowID and ApplicationNumber values; they are applied only
// when the row is inserted and preserved on every later update (insert-only
// defaults).
func (r *DeploymentRepositoryImpl) Upsert(ctx context.Context, dep *entities.Deployment) (*entities.Deployment, error) {
	var out *entities.Deployment
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var m models.Deployment
		err := tx.Where("terminal_id = ?", dep.TerminalID).First(&m).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			m = models.Deployment{
				ID:                uuid.New(),
				TerminalID:        dep.TerminalID,
				WorkflowID:        dep.WorkflowID,
				ApplicationNumber: dep.ApplicationNumber,
				CreatedAt:         time.Now(),
			}
		case err != nil:
			return err
		}

		// Request fields overwrite existing ones; empty values leave the
		// stored ones untouched.
		if dep.SimNo != "" {
			m.SimNo = dep.SimNo
		}
		if dep.MerchantID != "" {
			m.MerchantID = dep.MerchantID
		}
		if dep.PosDeviceID != "" {
			m.PosDeviceID = dep.PosDeviceID
		}
		if dep.AppID != "" {
			m.AppID = dep.AppID
		}
		if dep.Status != "" {
			m.Status = dep.Status
		}
		if m.MerchantID != "" {
			m.PairKey = entities.PairKey(m.MerchantID, m.TerminalID)
		}
		m.UpdatedAt = time.Now()

		if err := tx.Save(&m).Error; err != nil {
			return err
		}
		out = r.toEntity(&m)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GetByIdentifier matches the terminal ID, the merchant ID or the SIM number.
func (r *DeploymentRepositoryImpl) GetByIdentifier(ctx context.Context, identifier string) (*entities.Deployment, error) {
	var m models.Deployment
	err := r.db.WithContext(ctx).
		Where("terminal_id = ? OR merchant_id = ? OR sim_no = ?", identifier, identifier, identifier).
		First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domainerrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *DeploymentRepositoryImpl) toEntity(m *models.Deployment) *entities.Deployment {
	return &entities.Deployment{
		ID:                m.ID,
		SimNo:             m.SimNo,
		MerchantID:        m.MerchantID,
		TerminalID:        m.TerminalID,
		PosDeviceID:       m.PosDeviceID,
		AppID:             m.AppID,
		Status:            m.Status,
		WorkflowID:        m.WorkflowID,
		ApplicationNumber: m.ApplicationNumber,
	}
}
