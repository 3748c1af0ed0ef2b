package service

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	helper "salestrack_backend/internals/helpers"
)

// UnknownGroup is the bucket for records whose zone/branch cannot be resolved
// from either the record or its owning user.
const UnknownGroup = "Unknown"

// JoinedRecord is one daily record joined with its owning user's metadata,
// used as zone/branch/role fallback when the record's own fields are blank.
type JoinedRecord struct {
	ID     uuid.UUID `json:"id"`
	UserID uuid.UUID `json:"user_id"`
	Date   string    `json:"date"`

	ZonePlan    string `json:"zone_plan"`
	BranchPlan  string `json:"branch_plan"`
	MorningPlan string `json:"morning_plan"`

	AgentAchievement     *float64 `json:"agent_achievement"`
	BdoBranchPerformance *float64 `json:"bdo_branch_performance"`
	TotalBusiness        *float64 `json:"total_business"`
	ActualBusiness       *float64 `json:"actual_business"`

	Zone   string `json:"zone"`
	Branch string `json:"branch"`

	UserName   string `json:"user_name"`
	UserZone   string `json:"user_zone"`
	UserBranch string `json:"user_branch"`
	UserRole   string `json:"user_role"`
}

// ResolvedZone falls back to the owning user's zone, then "Unknown".
func (r *JoinedRecord) ResolvedZone() string {
	if r.Zone != "" {
		return r.Zone
	}
	if r.UserZone != "" {
		return r.UserZone
	}
	return UnknownGroup
}

// ResolvedBranch falls back to the owning user's branch, then "Unknown".
func (r *JoinedRecord) ResolvedBranch() string {
	if r.Branch != "" {
		return r.Branch
	}
	if r.UserBranch != "" {
		return r.UserBranch
	}
	return UnknownGroup
}

// GroupSummary is the per-bucket rollup of the five measures.
type GroupSummary struct {
	Zone                 string  `json:"zone,omitempty"`
	Branch               string  `json:"branch,omitempty"`
	Branches             int     `json:"branches,omitempty"`
	Plan                 float64 `json:"plan"`
	AgentAchievement     float64 `json:"agent_achievement"`
	BdoBranchPerformance float64 `json:"bdo_branch_performance"`
	TotalBusiness        float64 `json:"total_business"`
}

// FetchJoined loads the day's records with user metadata joined in.
func FetchJoined(db *gorm.DB, date string) ([]JoinedRecord, error) {
	var rows []JoinedRecord
	err := db.Table("daily_records").
		Select(`daily_records.id, daily_records.user_id, daily_records.date,
			daily_records.zone_plan, daily_records.branch_plan, daily_records.morning_plan,
			daily_records.agent_achievement, daily_records.bdo_branch_performance,
			daily_records.total_business, daily_records.actual_business,
			daily_records.zone, daily_records.branch,
			users.user_name AS user_name, users.zone AS user_zone,
			users.branch AS user_branch, users.role AS user_role`).
		Joins("LEFT JOIN users ON users.id = daily_records.user_id").
		Where("daily_records.date = ?", date).
		Scan(&rows).Error
	if err != nil {
		return nil, helper.NewStorageError("fetch joined daily records", err)
	}
	return rows, nil
}

// Augment overwrites each row's zone/branch with the resolved values so the
// flat listing reads the same as the grouped view ("Unknown" instead of blank).
func Augment(rows []JoinedRecord) []JoinedRecord {
	for i := range rows {
		rows[i].Zone = rows[i].ResolvedZone()
		rows[i].Branch = rows[i].ResolvedBranch()
	}
	return rows
}

// FilterByZone keeps only records whose resolved zone matches. Empty filter
// keeps everything.
func FilterByZone(rows []JoinedRecord, zone string) []JoinedRecord {
	if zone == "" {
		return rows
	}
	out := make([]JoinedRecord, 0, len(rows))
	for _, r := range rows {
		if r.ResolvedZone() == zone {
			out = append(out, r)
		}
	}
	return out
}

// FilterByZones keeps only records whose resolved zone is in the set. Empty
// set keeps everything.
func FilterByZones(rows []JoinedRecord, zones []string) []JoinedRecord {
	if len(zones) == 0 {
		return rows
	}
	allowed := make(map[string]struct{}, len(zones))
	for _, z := range zones {
		allowed[z] = struct{}{}
	}
	out := make([]JoinedRecord, 0, len(rows))
	for _, r := range rows {
		if _, ok := allowed[r.ResolvedZone()]; ok {
			out = append(out, r)
		}
	}
	return out
}

// GroupBy buckets the rows by dimension ("zone" or "branch") and sums the
// measures per bucket. Bucket order is first-seen, not sorted. Missing or
// non-numeric measures contribute 0 — a gap in one record never fails the
// whole report.
func GroupBy(rows []JoinedRecord, dimension string) []GroupSummary {
	index := map[string]int{}
	out := []GroupSummary{}

	for _, r := range rows {
		var key string
		if dimension == "branch" {
			key = r.ResolvedBranch()
		} else {
			key = r.ResolvedZone()
		}

		i, ok := index[key]
		if !ok {
			i = len(out)
			index[key] = i
			g := GroupSummary{}
			if dimension == "branch" {
				g.Branch = key
			} else {
				g.Zone = key
			}
			out = append(out, g)
		}

		g := &out[i]
		if dimension != "branch" {
			g.Branches++
		}
		g.Plan += planOf(&r)
		g.AgentAchievement += ValOrZero(r.AgentAchievement)
		g.BdoBranchPerformance += ValOrZero(r.BdoBranchPerformance)
		g.TotalBusiness += totalOf(&r)
	}

	return out
}

// planOf: zone_plan if numeric, else branch_plan if numeric, else 0.
func planOf(r *JoinedRecord) float64 {
	if v, ok := NumericOrZero(r.ZonePlan); ok {
		return v
	}
	if v, ok := NumericOrZero(r.BranchPlan); ok {
		return v
	}
	return 0
}

// totalOf: total_business if present, else the legacy actual_business, else 0.
func totalOf(r *JoinedRecord) float64 {
	if r.TotalBusiness != nil {
		return *r.TotalBusiness
	}
	return ValOrZero(r.ActualBusiness)
}

// NumericOrZero parses text as a float; ok=false (and 0) when blank or
// non-numeric.
func NumericOrZero(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func ValOrZero(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}
