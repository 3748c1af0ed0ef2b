package dto

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"salestrack_backend/internals/features/reports/daily_records/model"
)

/* ===========================
   Flexible input type
   =========================== */

// FlexString accepts a JSON string or number and keeps the raw text. Legacy
// clients submit achievement figures both ways ("500" and 500).
type FlexString string

func (f *FlexString) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		*f = ""
		return nil
	}
	if len(s) > 0 && s[0] == '"' {
		var out string
		if err := json.Unmarshal(b, &out); err != nil {
			return err
		}
		*f = FlexString(out)
		return nil
	}
	// bare number (or anything else the client sent unquoted)
	*f = FlexString(s)
	return nil
}

func (f FlexString) String() string { return string(f) }

// Float parses the value as a float. ok=false when it is not numeric.
func (f FlexString) Float() (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(string(f)), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

/* ===========================
   Request DTOs
   =========================== */

// SubmitDailyRecordRequest is one daily submission. Every non-identifying
// field is optional: absence means "leave the stored value unchanged" on
// update, and "default" on insert.
type SubmitDailyRecordRequest struct {
	UserID string `json:"user_id"`
	Date   string `json:"date"`

	ZonePlan             *FlexString `json:"zone_plan"`
	BranchPlan           *FlexString `json:"branch_plan"`
	MorningPlan          *FlexString `json:"morning_plan"`
	AgentAchievement     *FlexString `json:"agent_achievement"`
	BdoBranchPerformance *FlexString `json:"bdo_branch_performance"`
	ActualBusiness       *FlexString `json:"actual_business"`

	Zone   *string `json:"zone"`
	Branch *string `json:"branch"`
}

func (r *SubmitDailyRecordRequest) Normalize() {
	r.UserID = strings.TrimSpace(r.UserID)
	r.Date = strings.TrimSpace(r.Date)
	if r.Zone != nil {
		z := strings.TrimSpace(*r.Zone)
		r.Zone = &z
	}
	if r.Branch != nil {
		b := strings.TrimSpace(*r.Branch)
		r.Branch = &b
	}
}

/* ===========================
   Response DTOs
   =========================== */

type DailyRecordResponse struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Date        string    `json:"date"`
	ZonePlan    string    `json:"zone_plan,omitempty"`
	BranchPlan  string    `json:"branch_plan,omitempty"`
	MorningPlan string    `json:"morning_plan,omitempty"`

	AgentAchievement     *float64 `json:"agent_achievement,omitempty"`
	BdoBranchPerformance *float64 `json:"bdo_branch_performance,omitempty"`
	TotalBusiness        *float64 `json:"total_business,omitempty"`
	ActualBusiness       *float64 `json:"actual_business,omitempty"`

	Zone      string    `json:"zone,omitempty"`
	Branch    string    `json:"branch,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromModel(m *model.DailyRecordModel) *DailyRecordResponse {
	if m == nil {
		return nil
	}
	return &DailyRecordResponse{
		ID:                   m.ID,
		UserID:               m.UserID,
		Date:                 m.Date,
		ZonePlan:             m.ZonePlan,
		BranchPlan:           m.BranchPlan,
		MorningPlan:          m.MorningPlan,
		AgentAchievement:     m.AgentAchievement,
		BdoBranchPerformance: m.BdoBranchPerformance,
		TotalBusiness:        m.TotalBusiness,
		ActualBusiness:       m.ActualBusiness,
		Zone:                 m.Zone,
		Branch:               m.Branch,
		CreatedAt:            m.CreatedAt,
		UpdatedAt:            m.UpdatedAt,
	}
}

func FromModelList(records []model.DailyRecordModel) []DailyRecordResponse {
	out := make([]DailyRecordResponse, 0, len(records))
	for i := range records {
		if r := FromModel(&records[i]); r != nil {
			out = append(out, *r)
		}
	}
	return out
}
