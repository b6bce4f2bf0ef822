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

// TerminalConfigRepositoryImpl implements TerminalConfigRepository
type TerminalConfigRepositoryImpl struct {
	db *gorm.DB
}

func NewTerminalConfigRepository(db *gorm.DB) *TerminalConfigRepositoryImpl {
	return &TerminalConfigRepositoryImpl{db: db}
}

func (r *TerminalConfigRepositoryImpl) Get(ctx context.Context, merchantID, terminalID string) (*entities.TerminalConfig, error) {
	var m models.TerminalConfig
	err := r.db.WithContext(ctx).
		Where("merchant_id = ? AND terminal_id = ?", merchantID, terminalID).
		First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domainerrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return r.toEntity(&m), nil
}

// Upsert creates the config on first registration and overwrites the
// integration fields on later ones (idempotent PUT semantics).
func (r *TerminalConfigRepositoryImpl) Upsert(ctx context.Context, cfg *entities.TerminalConfig) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var m models.TerminalConfig
		err := tx.Where("merchant_id = ? AND terminal_id = ?", cfg.MerchantID, cfg.TerminalID).
			First(&m).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			m = models.TerminalConfig{
				ID:                        uuid.New(),
				MerchantID:                cfg.MerchantID,
				TerminalID:                cfg.TerminalID,
				IntegrationMode:           cfg.IntegrationMode,
				IntegratedModeDisplayName: cfg.IntegratedModeDisplayName,
				IntegrationMappingType:    cfg.IntegrationMappingType,
				Timestamp:                 cfg.Timestamp,
				CreatedAt:                 time.Now(),
				UpdatedAt:                 time.Now(),
			}
			return tx.Create(&m).Error
		}
		if err != nil {
			return err
		}

		return tx.Model(&m).Updates(map[string]interface{}{
			"integration_mode":             cfg.IntegrationMode,
			"integrated_mode_display_name": cfg.IntegratedModeDisplayName,
			"integration_mapping_type":     cfg.IntegrationMappingType,
			"timestamp":                    cfg.Timestamp,
			"updated_at":                   time.Now(),
		}).Error
	})
}

func (r *TerminalConfigRepositoryImpl) toEntity(m *models.TerminalConfig) *entities.TerminalConfig {
	return &entities.TerminalConfig{
		MerchantID:                m.MerchantID,
		TerminalID:                m.TerminalID,
		IntegrationMode:           m.IntegrationMode,
		IntegratedModeDisplayName: m.IntegratedModeDisplayName,
		IntegrationMappingType:    m.IntegrationMappingType,
		Timestamp:                 m.Timestamp,
	}
}
