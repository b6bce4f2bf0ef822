package models

import (
	"time"

	"github.com/google/uuid"
)

type Sale struct {
	ID                            uuid.UUID `gorm:"type:uuid;primaryKey"`
	MerchantID                    string    `gorm:"type:varchar(255);not null"`
	TerminalID                    string    `gorm:"type:varchar(255);not null"`
	PairKey                       string    `gorm:"type:varchar(1023);not null;index"`
	PosDeviceID                   string    `gorm:"type:varchar(255)"`
	ShortOrderID                  string    `gorm:"type:varchar(255)"`
	Amount                        float64   `gorm:"type:decimal(18,2);default:0"`
	AllowedInstruments            string    `gorm:"type:text"`
	AutoAccept                    bool      `gorm:"default:true"`
	AutoAcceptWindowExpirySeconds int       `gorm:"default:0"`
	PregeneratedDQRTransactionID  string    `gorm:"column:pregenerated_dqr_transaction_id;type:varchar(255)"`
	PregeneratedCardTransactionID string    `gorm:"type:varchar(255)"`
	TransactionID                 string    `gorm:"type:varchar(255);not null"`
	CreatedAtISO                  string    `gorm:"column:created_at_iso;type:varchar(50)"`
	CreationTimestamp             int64     `gorm:"not null;index"`
	Status                        string    `gorm:"type:varchar(50);not null;index"`
	InvoiceNumber                 string    `gorm:"type:varchar(255)"`
	CreatedAt                     time.Time
	UpdatedAt                     time.Time
}
