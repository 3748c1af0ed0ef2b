package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"salestrack_backend/internals/features/reports/recruitments/model"
)

/* ===========================
   Request DTOs
   =========================== */

type CreateRecruitmentRequest struct {
	RecruitName string `json:"recruit_name" validate:"required,max=100"`
	ContactNo   string `json:"contact_no" validate:"omitempty,max=20"`
	NIC         string `json:"nic" validate:"omitempty,max=20"`
	Notes       string `json:"notes"`
}

func (r *CreateRecruitmentRequest) Normalize() {
	r.RecruitName = strings.TrimSpace(r.RecruitName)
	r.ContactNo = strings.TrimSpace(r.ContactNo)
	r.NIC = strings.TrimSpace(strings.ToUpper(r.NIC))
	r.Notes = strings.TrimSpace(r.Notes)
}

func (r *CreateRecruitmentRequest) ToModel(userID uuid.UUID) *model.RecruitmentModel {
	return &model.RecruitmentModel{
		UserID:      userID,
		RecruitName: r.RecruitName,
		ContactNo:   r.ContactNo,
		NIC:         r.NIC,
		Notes:       r.Notes,
	}
}

// UpdateRecruitmentRequest patches recruit details and stage dates. Nil fields
// keep the stored value; stage dates are YYYY-MM-DD.
type UpdateRecruitmentRequest struct {
	RecruitName *string `json:"recruit_name" validate:"omitempty,max=100"`
	ContactNo   *string `json:"contact_no" validate:"omitempty,max=20"`
	NIC         *string `json:"nic" validate:"omitempty,max=20"`
	Notes       *string `json:"notes"`

	DateFileSubmitted     *string `json:"date_file_submitted" validate:"omitempty,datetime=2006-01-02"`
	DateExamPassed        *string `json:"date_exam_passed" validate:"omitempty,datetime=2006-01-02"`
	DateDocumentsComplete *string `json:"date_documents_complete" validate:"omitempty,datetime=2006-01-02"`
	DateAppointed         *string `json:"date_appointed" validate:"omitempty,datetime=2006-01-02"`
	DateCodeIssued        *string `json:"date_code_issued" validate:"omitempty,datetime=2006-01-02"`
}

// Updates builds the partial update map.
func (r *UpdateRecruitmentRequest) Updates() map[string]interface{} {
	updates := map[string]interface{}{}
	if r.RecruitName != nil {
		updates["recruit_name"] = strings.TrimSpace(*r.RecruitName)
	}
	if r.ContactNo != nil {
		updates["contact_no"] = strings.TrimSpace(*r.ContactNo)
	}
	if r.NIC != nil {
		updates["nic"] = strings.TrimSpace(strings.ToUpper(*r.NIC))
	}
	if r.Notes != nil {
		updates["notes"] = strings.TrimSpace(*r.Notes)
	}
	putDate(updates, "date_file_submitted", r.DateFileSubmitted)
	putDate(updates, "date_exam_passed", r.DateExamPassed)
	putDate(updates, "date_documents_complete", r.DateDocumentsComplete)
	putDate(updates, "date_appointed", r.DateAppointed)
	putDate(updates, "date_code_issued", r.DateCodeIssued)
	return updates
}

func putDate(updates map[string]interface{}, column string, value *string) {
	if value == nil {
		return
	}
	if t, err := time.Parse("2006-01-02", strings.TrimSpace(*value)); err == nil {
		updates[column] = t
	}
}

/* ===========================
   Response DTO
   =========================== */

type RecruitmentResponse struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	RecruitName string    `json:"recruit_name"`
	ContactNo   string    `json:"contact_no,omitempty"`
	NIC         string    `json:"nic,omitempty"`
	Notes       string    `json:"notes,omitempty"`

	DateFileSubmitted     *time.Time `json:"date_file_submitted"`
	DateExamPassed        *time.Time `json:"date_exam_passed"`
	DateDocumentsComplete *time.Time `json:"date_documents_complete"`
	DateAppointed         *time.Time `json:"date_appointed"`
	DateCodeIssued        *time.Time `json:"date_code_issued"`

	IsComplete bool      `json:"is_complete"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func FromModel(m *model.RecruitmentModel) *RecruitmentResponse {
	if m == nil {
		return nil
	}
	return &RecruitmentResponse{
		ID:                    m.ID,
		UserID:                m.UserID,
		RecruitName:           m.RecruitName,
		ContactNo:             m.ContactNo,
		NIC:                   m.NIC,
		Notes:                 m.Notes,
		DateFileSubmitted:     m.DateFileSubmitted,
		DateExamPassed:        m.DateExamPassed,
		DateDocumentsComplete: m.DateDocumentsComplete,
		DateAppointed:         m.DateAppointed,
		DateCodeIssued:        m.DateCodeIssued,
		IsComplete:            m.IsComplete(),
		CreatedAt:             m.CreatedAt,
		UpdatedAt:             m.UpdatedAt,
	}
}

func FromModelList(records []model.RecruitmentModel) []RecruitmentResponse {
	out := make([]RecruitmentResponse, 0, len(records))
	for i := range records {
		if r := FromModel(&records[i]); r != nil {
			out = append(out, *r)
		}
	}
	return out
}
