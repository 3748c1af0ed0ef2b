package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DailyRecordModel represents the daily_records table: one business day's
// plan/achievement figures for one user. Numeric measures are nullable to
// carry legacy rows where only actual_business was recorded.
type DailyRecordModel struct {
	ID     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index:idx_daily_records_user_date,priority:1" json:"user_id"`
	Date   string    `gorm:"type:date;not null;index:idx_daily_records_user_date,priority:2" json:"date"`

	ZonePlan    string `gorm:"size:255" json:"zone_plan"`
	BranchPlan  string `gorm:"size:255" json:"branch_plan"`
	MorningPlan string `gorm:"type:text" json:"morning_plan"`

	AgentAchievement      *float64 `gorm:"type:double precision" json:"agent_achievement"`
	BdoBranchPerformance  *float64 `gorm:"type:double precision" json:"bdo_branch_performance"`
	TotalBusiness         *float64 `gorm:"type:double precision" json:"total_business"`
	// ActualBusiness is the legacy alias overlapping with agent_achievement.
	ActualBusiness        *float64 `gorm:"type:double precision" json:"actual_business"`

	Zone   string `gorm:"size:100;not null;default:''" json:"zone"`
	Branch string `gorm:"size:100;not null;default:''" json:"branch"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (DailyRecordModel) TableName() string {
	return "daily_records"
}

func (m *DailyRecordModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
