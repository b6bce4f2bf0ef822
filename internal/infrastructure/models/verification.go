package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

type Verification struct {
	ID         uuid.UUID   `gorm:"type:uuid;primaryKey"`
	WorkflowID string      `gorm:"type:varchar(255);not null;uniqueIndex"`
	AppID      string      `gorm:"type:varchar(255)"`
	OTP        string      `gorm:"column:otp;type:varchar(10);not null"`
	IsVerified bool        `gorm:"default:false"`
	SimNo      string      `gorm:"type:varchar(255)"`
	Latitude   null.String `gorm:"type:varchar(50)"`
	Longitude  null.String `gorm:"type:varchar(50)"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
