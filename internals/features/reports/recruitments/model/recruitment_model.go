package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RecruitmentModel represents the recruitments table: one prospective agent
// moving through the five-stage onboarding pipeline. Each stage date is nil
// while the stage is pending.
type RecruitmentModel struct {
	ID     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`

	RecruitName string `gorm:"size:100;not null" json:"recruit_name"`
	ContactNo   string `gorm:"size:20" json:"contact_no"`
	NIC         string `gorm:"size:20" json:"nic"`
	Notes       string `gorm:"type:text" json:"notes"`

	DateFileSubmitted     *time.Time `gorm:"type:date" json:"date_file_submitted"`
	DateExamPassed        *time.Time `gorm:"type:date" json:"date_exam_passed"`
	DateDocumentsComplete *time.Time `gorm:"type:date" json:"date_documents_complete"`
	DateAppointed         *time.Time `gorm:"type:date" json:"date_appointed"`
	DateCodeIssued        *time.Time `gorm:"type:date" json:"date_code_issued"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (RecruitmentModel) TableName() string {
	return "recruitments"
}

func (r *RecruitmentModel) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// IsComplete reports whether all five pipeline stages have been reached.
func (r *RecruitmentModel) IsComplete() bool {
	return r.DateFileSubmitted != nil &&
		r.DateExamPassed != nil &&
		r.DateDocumentsComplete != nil &&
		r.DateAppointed != nil &&
		r.DateCodeIssued != nil
}
