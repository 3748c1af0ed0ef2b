package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MonthlyTargetModel represents the monthly_targets table. Rows are replaced
// wholesale on each spreadsheet ingestion — no field-level merge.
type MonthlyTargetModel struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Username string    `gorm:"size:50;not null;uniqueIndex:uq_monthly_targets_username_month,priority:1" json:"username"`
	// Month is YYYY-MM.
	Month string `gorm:"size:7;not null;uniqueIndex:uq_monthly_targets_username_month,priority:2" json:"month"`

	NewBusinessTarget decimal.Decimal `gorm:"type:numeric(18,2);not null;default:0" json:"new_business_target"`
	RenewalTarget     decimal.Decimal `gorm:"type:numeric(18,2);not null;default:0" json:"renewal_target"`
	RenewalCollected  decimal.Decimal `gorm:"type:numeric(18,2);not null;default:0" json:"renewal_collected"`

	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (MonthlyTargetModel) TableName() string {
	return "monthly_targets"
}

func (m *MonthlyTargetModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
