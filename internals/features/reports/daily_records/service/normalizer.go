package service

import (
	"time"

	"github.com/google/uuid"

	"salestrack_backend/internals/features/reports/daily_records/dto"
	helper "salestrack_backend/internals/helpers"
)

// CanonicalRecord is the strict, typed form of a submission after alias
// resolution. Storage code only ever sees this shape.
type CanonicalRecord struct {
	UserID uuid.UUID
	Date   string

	MorningPlan string
	ZonePlan    string
	BranchPlan  string

	AgentAchievement  float64
	BranchPerformance float64
	TotalBusiness     float64

	Zone   string
	Branch string
}

// Normalize converts a raw submission into its canonical form. Pure; the only
// failures are ValidationErrors naming the offending field.
//
// Alias rules:
//   - agent achievement falls back to the legacy actual_business field
//   - morning plan falls back to zone_plan, then branch_plan
func Normalize(req *dto.SubmitDailyRecordRequest) (*CanonicalRecord, error) {
	if req.UserID == "" {
		return nil, helper.NewValidationError("user_id", "required")
	}
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, helper.NewValidationError("user_id", "must be a valid UUID")
	}

	if req.Date == "" {
		return nil, helper.NewValidationError("date", "required")
	}
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		return nil, helper.NewValidationError("date", "must be YYYY-MM-DD")
	}

	out := &CanonicalRecord{UserID: userID, Date: req.Date}

	// agent_achievement, else legacy actual_business, else 0
	switch {
	case req.AgentAchievement != nil:
		v, ok := req.AgentAchievement.Float()
		if !ok {
			return nil, helper.NewValidationError("agent_achievement", "must be numeric")
		}
		out.AgentAchievement = v
	case req.ActualBusiness != nil:
		v, ok := req.ActualBusiness.Float()
		if !ok {
			return nil, helper.NewValidationError("actual_business", "must be numeric")
		}
		out.AgentAchievement = v
	}

	if req.BdoBranchPerformance != nil {
		v, ok := req.BdoBranchPerformance.Float()
		if !ok {
			return nil, helper.NewValidationError("bdo_branch_performance", "must be numeric")
		}
		out.BranchPerformance = v
	}

	out.TotalBusiness = out.AgentAchievement + out.BranchPerformance

	// morning_plan, else zone_plan, else branch_plan, else ""
	switch {
	case req.MorningPlan != nil:
		out.MorningPlan = req.MorningPlan.String()
	case req.ZonePlan != nil:
		out.MorningPlan = req.ZonePlan.String()
	case req.BranchPlan != nil:
		out.MorningPlan = req.BranchPlan.String()
	}

	if req.ZonePlan != nil {
		out.ZonePlan = req.ZonePlan.String()
	}
	if req.BranchPlan != nil {
		out.BranchPlan = req.BranchPlan.String()
	}
	if req.Zone != nil {
		out.Zone = *req.Zone
	}
	if req.Branch != nil {
		out.Branch = *req.Branch
	}

	return out, nil
}
