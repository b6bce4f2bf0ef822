package models

import (
	"time"

	"github.com/google/uuid"
)

type TerminalConfig struct {
	ID                        uuid.UUID `gorm:"type:uuid;primaryKey"`
	MerchantID                string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_terminal_configs_pair"`
	TerminalID                string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_terminal_configs_pair"`
	IntegrationMode           string    `gorm:"type:varchar(50);not null"`
	IntegratedModeDisplayName string    `gorm:"type:varchar(255)"`
	IntegrationMappingType    string    `gorm:"type:varchar(50)"`
	Timestamp                 string    `gorm:"type:varchar(50)"`
	CreatedAt                 time.Time
	UpdatedAt                 time.Time
}
