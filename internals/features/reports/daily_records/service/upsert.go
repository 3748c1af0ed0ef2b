package service

import (
	"context"
	"errors"
	"log"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"salestrack_backend/internals/features/reports/daily_records/dto"
	"salestrack_backend/internals/features/reports/daily_records/model"
	helper "salestrack_backend/internals/helpers"
)

// UpsertEngine applies one submission to the store: resolve the key, then
// merge-update the existing row or insert a fresh one.
type UpsertEngine struct {
	DB *gorm.DB
}

func NewUpsertEngine(db *gorm.DB) *UpsertEngine { return &UpsertEngine{DB: db} }

// Upsert processes one normalized submission for a user with the given role.
// Returns created=true when a new row was inserted. At most one write per call.
func (e *UpsertEngine) Upsert(ctx context.Context, role string, req *dto.SubmitDailyRecordRequest, can *CanonicalRecord) (created bool, err error) {
	db := e.DB.WithContext(ctx)

	key := ResolveKey(role, can.UserID, can.Date, can.Branch)
	existing, err := FindExisting(db, key)
	if err != nil {
		return false, err
	}

	if existing != nil {
		return false, e.update(db, existing, req, can)
	}

	record := e.buildInsert(req, can)
	if err := db.Create(record).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// lost the resolve→write race; the other writer's row is now the key's row
			existing, ferr := FindExisting(db, key)
			if ferr != nil {
				return false, ferr
			}
			if existing != nil {
				return false, e.update(db, existing, req, can)
			}
		}
		return false, helper.NewStorageError("insert daily record", err)
	}
	return true, nil
}

// update writes only the fields present in the original submission; absence
// means "keep the stored value". total_business is always refreshed.
func (e *UpsertEngine) update(db *gorm.DB, existing *model.DailyRecordModel, req *dto.SubmitDailyRecordRequest, can *CanonicalRecord) error {
	updates := map[string]interface{}{
		"total_business": can.TotalBusiness,
	}

	if req.ZonePlan != nil {
		updates["zone_plan"] = can.ZonePlan
	}
	if req.BranchPlan != nil {
		updates["branch_plan"] = can.BranchPlan
	}
	if req.MorningPlan != nil {
		updates["morning_plan"] = can.MorningPlan
	}
	if req.AgentAchievement != nil {
		updates["agent_achievement"] = can.AgentAchievement
	}
	if req.ActualBusiness != nil {
		updates["actual_business"] = can.AgentAchievement
		if req.AgentAchievement == nil {
			updates["agent_achievement"] = can.AgentAchievement
		}
	}
	if req.BdoBranchPerformance != nil {
		updates["bdo_branch_performance"] = can.BranchPerformance
	}
	if req.Zone != nil {
		updates["zone"] = can.Zone
	}
	if req.Branch != nil {
		updates["branch"] = can.Branch
	}

	if err := db.Model(existing).Updates(updates).Error; err != nil {
		return helper.NewStorageError("update daily record", err)
	}
	return nil
}

func (e *UpsertEngine) buildInsert(req *dto.SubmitDailyRecordRequest, can *CanonicalRecord) *model.DailyRecordModel {
	record := &model.DailyRecordModel{
		UserID:               can.UserID,
		Date:                 can.Date,
		ZonePlan:             can.ZonePlan,
		BranchPlan:           can.BranchPlan,
		MorningPlan:          can.MorningPlan,
		AgentAchievement:     ptrFloat(can.AgentAchievement),
		BdoBranchPerformance: ptrFloat(can.BranchPerformance),
		TotalBusiness:        ptrFloat(can.TotalBusiness),
		Zone:                 can.Zone,
		Branch:               can.Branch,
	}
	if req.ActualBusiness != nil {
		record.ActualBusiness = ptrFloat(can.AgentAchievement)
	}
	return record
}

// ProcessBatch runs each submission independently with unordered concurrency.
// A failing record is logged and skipped; siblings still complete. Returns the
// number of records written.
func (e *UpsertEngine) ProcessBatch(ctx context.Context, role string, reqs []dto.SubmitDailyRecordRequest) int {
	var processed int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(8)

	for i := range reqs {
		req := &reqs[i]
		g.Go(func() error {
			req.Normalize()
			can, err := Normalize(req)
			if err != nil {
				log.Printf("[WARN] batch record skipped (user_id=%s date=%s): %v", req.UserID, req.Date, err)
				return nil
			}
			if _, err := e.Upsert(gctx, role, req, can); err != nil {
				log.Printf("[ERROR] batch record failed (user_id=%s date=%s): %v", req.UserID, req.Date, err)
				return nil
			}
			atomic.AddInt64(&processed, 1)
			return nil
		})
	}
	_ = g.Wait()

	return int(processed)
}

func ptrFloat(v float64) *float64 { return &v }
