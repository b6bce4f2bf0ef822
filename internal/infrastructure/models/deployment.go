package models

import (
	"time"

	"github.com/google/uuid"
)

type Deployment struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	SimNo             string    `gorm:"type:varchar(255);index"`
	MerchantID        string    `gorm:"type:varchar(255)"`
	TerminalID        string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	PairKey           string    `gorm:"type:varchar(1023);index"`
	PosDeviceID       string    `gorm:"type:varchar(255)"`
	AppID             string    `gorm:"type:varchar(255)"`
	Status            string    `gorm:"type:varchar(50);not null"`
	WorkflowID        string    `gorm:"type:varchar(255);not null"`
	ApplicationNumber string    `gorm:"type:varchar(255);not null"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
