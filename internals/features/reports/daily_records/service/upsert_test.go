package service

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"salestrack_backend/internals/constants"
	"salestrack_backend/internals/features/reports/daily_records/dto"
	"salestrack_backend/internals/features/reports/daily_records/model"
)

func mustUpsert(t *testing.T, e *UpsertEngine, role string, req *dto.SubmitDailyRecordRequest) bool {
	t.Helper()
	req.Normalize()
	can, err := Normalize(req)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	created, err := e.Upsert(context.Background(), role, req, can)
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	return created
}

func countRecords(t *testing.T, e *UpsertEngine, userID uuid.UUID, date string) int64 {
	t.Helper()
	var n int64
	if err := e.DB.Model(&model.DailyRecordModel{}).
		Where("user_id = ? AND date = ?", userID, date).
		Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	return n
}

func TestUpsertResubmissionUpdatesInPlace(t *testing.T) {
	e := NewUpsertEngine(newTestDB(t))
	userID := uuid.New()

	first := &dto.SubmitDailyRecordRequest{
		UserID: userID.String(), Date: "2026-01-05",
		MorningPlan:      fs("call five prospects"),
		AgentAchievement: fs("500"),
	}
	if created := mustUpsert(t, e, constants.RoleMember, first); !created {
		t.Fatal("first submission should insert")
	}

	second := &dto.SubmitDailyRecordRequest{
		UserID: userID.String(), Date: "2026-01-05",
		AgentAchievement: fs("800"),
	}
	if created := mustUpsert(t, e, constants.RoleMember, second); created {
		t.Fatal("resubmission should update, not insert")
	}

	if n := countRecords(t, e, userID, "2026-01-05"); n != 1 {
		t.Fatalf("row count: got %d, want 1", n)
	}

	var rec model.DailyRecordModel
	if err := e.DB.Where("user_id = ?", userID).First(&rec).Error; err != nil {
		t.Fatal(err)
	}
	if rec.AgentAchievement == nil || *rec.AgentAchievement != 800 {
		t.Fatalf("agent_achievement: got %v, want 800", rec.AgentAchievement)
	}
	if rec.TotalBusiness == nil || *rec.TotalBusiness != 800 {
		t.Fatalf("total_business: got %v, want 800", rec.TotalBusiness)
	}
	// absent in the second payload, so the stored value survives
	if rec.MorningPlan != "call five prospects" {
		t.Fatalf("morning_plan lost on partial update: got %q", rec.MorningPlan)
	}
}

func TestUpsertManagerGetsRowPerBranch(t *testing.T) {
	e := NewUpsertEngine(newTestDB(t))
	managerID := uuid.New()

	for _, branch := range []string{"Colombo Central", "Negombo"} {
		req := &dto.SubmitDailyRecordRequest{
			UserID: managerID.String(), Date: "2026-01-05",
			Zone:             strptr("West"),
			Branch:           strptr(branch),
			AgentAchievement: fs("100"),
		}
		mustUpsert(t, e, constants.RoleZonalManager, req)
	}

	if n := countRecords(t, e, managerID, "2026-01-05"); n != 2 {
		t.Fatalf("manager rows: got %d, want 2 (one per branch)", n)
	}

	// same branch again must update, not add a third row
	again := &dto.SubmitDailyRecordRequest{
		UserID: managerID.String(), Date: "2026-01-05",
		Branch:           strptr("Negombo"),
		AgentAchievement: fs("250"),
	}
	if created := mustUpsert(t, e, constants.RoleZonalManager, again); created {
		t.Fatal("same-branch resubmission should update")
	}
	if n := countRecords(t, e, managerID, "2026-01-05"); n != 2 {
		t.Fatalf("manager rows after resubmit: got %d, want 2", n)
	}

	var rec model.DailyRecordModel
	if err := e.DB.Where("user_id = ? AND branch = ?", managerID, "Negombo").First(&rec).Error; err != nil {
		t.Fatal(err)
	}
	if rec.AgentAchievement == nil || *rec.AgentAchievement != 250 {
		t.Fatalf("Negombo agent_achievement: got %v, want 250", rec.AgentAchievement)
	}
}

func TestUpsertMemberSecondBranchStillOneRow(t *testing.T) {
	e := NewUpsertEngine(newTestDB(t))
	userID := uuid.New()

	first := &dto.SubmitDailyRecordRequest{
		UserID: userID.String(), Date: "2026-01-05",
		Branch:           strptr("Kandy"),
		AgentAchievement: fs("400"),
	}
	mustUpsert(t, e, constants.RoleMember, first)

	second := &dto.SubmitDailyRecordRequest{
		UserID: userID.String(), Date: "2026-01-05",
		Branch:           strptr("Galle"),
		AgentAchievement: fs("600"),
	}
	mustUpsert(t, e, constants.RoleMember, second)

	if n := countRecords(t, e, userID, "2026-01-05"); n != 1 {
		t.Fatalf("member rows: got %d, want 1 (branch is not part of the key)", n)
	}

	var rec model.DailyRecordModel
	if err := e.DB.Where("user_id = ?", userID).First(&rec).Error; err != nil {
		t.Fatal(err)
	}
	if rec.Branch != "Galle" {
		t.Fatalf("branch: got %q, want latest value Galle", rec.Branch)
	}
}

func TestUpsertLegacyPayloadPopulatesBothColumns(t *testing.T) {
	e := NewUpsertEngine(newTestDB(t))
	userID := uuid.New()

	req := &dto.SubmitDailyRecordRequest{
		UserID: userID.String(), Date: "2026-01-05",
		ActualBusiness: fs("1200"),
	}
	mustUpsert(t, e, constants.RoleMember, req)

	var rec model.DailyRecordModel
	if err := e.DB.Where("user_id = ?", userID).First(&rec).Error; err != nil {
		t.Fatal(err)
	}
	if rec.ActualBusiness == nil || *rec.ActualBusiness != 1200 {
		t.Fatalf("actual_business: got %v, want 1200", rec.ActualBusiness)
	}
	if rec.AgentAchievement == nil || *rec.AgentAchievement != 1200 {
		t.Fatalf("agent_achievement mirror: got %v, want 1200", rec.AgentAchievement)
	}
	if rec.TotalBusiness == nil || *rec.TotalBusiness != 1200 {
		t.Fatalf("total_business: got %v, want 1200", rec.TotalBusiness)
	}
}

func TestProcessBatchSkipsBadRecords(t *testing.T) {
	e := NewUpsertEngine(newTestDB(t))

	good1 := uuid.New().String()
	good2 := uuid.New().String()
	reqs := []dto.SubmitDailyRecordRequest{
		{UserID: good1, Date: "2026-01-05", AgentAchievement: fs("100")},
		{UserID: "not-a-uuid", Date: "2026-01-05", AgentAchievement: fs("100")},
		{UserID: good2, Date: "2026-01-05", AgentAchievement: fs("not a number")},
		{UserID: good2, Date: "2026-01-05", AgentAchievement: fs("300")},
	}

	processed := e.ProcessBatch(context.Background(), constants.RoleMember, reqs)
	if processed != 2 {
		t.Fatalf("processed: got %d, want 2", processed)
	}

	var n int64
	if err := e.DB.Model(&model.DailyRecordModel{}).Count(&n).Error; err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Fatalf("stored rows: got %d, want 2", n)
	}
}
