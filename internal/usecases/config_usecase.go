package usecases

import (
	"context"
	"time"

	"terminal-link.backend/internal/domain/entities"
	"terminal-link.backend/internal/domain/repositories"
)

// ConfigUsecase handles terminal config registration and lookup
type ConfigUsecase struct {
	configRepo repositories.TerminalConfigRepository
}

// NewConfigUsecase creates a new config usecase
func NewConfigUsecase(configRepo repositories.TerminalConfigRepository) *ConfigUsecase {
	return &ConfigUsecase{configRepo: configRepo}
}

// ConfigInput represents input for config registration
type ConfigInput struct {
	MerchantID                string
	TerminalID                string
	IntegrationMode           string
	IntegratedModeDisplayName string
	IntegrationMappingType    string
}

// RegisterConfig upserts the config for the exact (merchant, terminal) pair.
// Missing fields fall back to the STANDALONE defaults.
func (u *ConfigUsecase) RegisterConfig(ctx context.Context, input ConfigInput) (*entities.TerminalConfig, error) {
	cfg := &entities.TerminalConfig{
		MerchantID:                input.MerchantID,
		TerminalID:                input.TerminalID,
		IntegrationMode:           input.IntegrationMode,
		IntegratedModeDisplayName: input.IntegratedModeDisplayName,
		IntegrationMappingType:    input.IntegrationMappingType,
		Timestamp:                 time.Now().UTC().Format(time.RFC3339),
	}
	if cfg.IntegrationMode == "" {
		cfg.IntegrationMode = entities.DefaultIntegrationMode
	}
	if cfg.IntegratedModeDisplayName == "" {
		cfg.IntegratedModeDisplayName = entities.DefaultIntegrationDisplay
	}
	if cfg.IntegrationMappingType == "" {
		cfg.IntegrationMappingType = entities.DefaultIntegrationMapping
	}

	if err := u.configRepo.Upsert(ctx, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// GetConfig looks up the config by exact match
func (u *ConfigUsecase) GetConfig(ctx context.Context, merchantID, terminalID string) (*entities.TerminalConfig, error) {
	return u.configRepo.Get(ctx, merchantID, terminalID)
}
