package service

import (
	"testing"

	"github.com/google/uuid"
)

func rec(zone, branch, zonePlan string, agent, total float64) JoinedRecord {
	return JoinedRecord{
		ID: uuid.New(), UserID: uuid.New(), Date: "2026-01-05",
		Zone: zone, Branch: branch, ZonePlan: zonePlan,
		AgentAchievement: &agent,
		TotalBusiness:    &total,
	}
}

func TestGroupByZoneSumsMeasures(t *testing.T) {
	rows := []JoinedRecord{
		rec("West", "Colombo Central", "1000", 500, 500),
		rec("West", "Negombo", "1000", 1000, 1000),
		rec("East", "Batticaloa", "700", 200, 200),
	}

	groups := GroupBy(rows, "zone")
	if len(groups) != 2 {
		t.Fatalf("groups: got %d, want 2", len(groups))
	}

	west := groups[0]
	if west.Zone != "West" {
		t.Fatalf("first bucket: got %q, want West (first-seen order)", west.Zone)
	}
	if west.TotalBusiness != 1500 {
		t.Fatalf("West total_business: got %v, want 1500", west.TotalBusiness)
	}
	if west.AgentAchievement != 1500 {
		t.Fatalf("West agent_achievement: got %v, want 1500", west.AgentAchievement)
	}
	if west.Branches != 2 {
		t.Fatalf("West branches: got %d, want 2", west.Branches)
	}
	if west.Plan != 2000 {
		t.Fatalf("West plan: got %v, want 2000", west.Plan)
	}

	east := groups[1]
	if east.Zone != "East" || east.TotalBusiness != 200 {
		t.Fatalf("East bucket: %+v", east)
	}
}

func TestGroupByBranchOmitsBranchCount(t *testing.T) {
	rows := []JoinedRecord{
		rec("West", "Colombo Central", "", 100, 100),
		rec("West", "Colombo Central", "", 50, 50),
	}

	groups := GroupBy(rows, "branch")
	if len(groups) != 1 {
		t.Fatalf("groups: got %d, want 1", len(groups))
	}
	g := groups[0]
	if g.Branch != "Colombo Central" {
		t.Fatalf("branch: got %q", g.Branch)
	}
	if g.Branches != 0 {
		t.Fatalf("branch grouping should not count branches, got %d", g.Branches)
	}
	if g.TotalBusiness != 150 {
		t.Fatalf("total_business: got %v, want 150", g.TotalBusiness)
	}
}

func TestGroupByTextualPlanContributesZero(t *testing.T) {
	r := rec("West", "Negombo", "focus on renewals", 100, 100)
	r.BranchPlan = "call old clients"

	groups := GroupBy([]JoinedRecord{r}, "zone")
	if groups[0].Plan != 0 {
		t.Fatalf("plan from prose fields: got %v, want 0", groups[0].Plan)
	}
}

func TestGroupByBranchPlanFallback(t *testing.T) {
	r := rec("West", "Negombo", "", 100, 100)
	r.BranchPlan = "450"

	groups := GroupBy([]JoinedRecord{r}, "zone")
	if groups[0].Plan != 450 {
		t.Fatalf("plan: got %v, want branch_plan fallback 450", groups[0].Plan)
	}
}

func TestGroupByLegacyTotalFallback(t *testing.T) {
	legacy := 900.0
	r := JoinedRecord{
		ID: uuid.New(), UserID: uuid.New(), Date: "2026-01-05",
		Zone:           "South",
		ActualBusiness: &legacy,
	}

	groups := GroupBy([]JoinedRecord{r}, "zone")
	if groups[0].TotalBusiness != 900 {
		t.Fatalf("total_business legacy fallback: got %v, want 900", groups[0].TotalBusiness)
	}
}

func TestResolvedZoneFallsBackToUserThenUnknown(t *testing.T) {
	r := JoinedRecord{Zone: "", UserZone: "North"}
	if got := r.ResolvedZone(); got != "North" {
		t.Fatalf("user fallback: got %q", got)
	}

	r = JoinedRecord{}
	if got := r.ResolvedZone(); got != UnknownGroup {
		t.Fatalf("unknown fallback: got %q", got)
	}
	if got := r.ResolvedBranch(); got != UnknownGroup {
		t.Fatalf("unknown branch fallback: got %q", got)
	}
}

func TestFilterByZonesKeepsManagedSetOnly(t *testing.T) {
	rows := []JoinedRecord{
		{Zone: "West"},
		{Zone: "", UserZone: "South"},
		{Zone: "East"},
		{},
	}

	got := FilterByZones(rows, []string{"West", "South"})
	if len(got) != 2 {
		t.Fatalf("filtered: got %d, want 2", len(got))
	}
	for _, r := range got {
		if z := r.ResolvedZone(); z != "West" && z != "South" {
			t.Fatalf("zone outside managed set leaked through: %q", z)
		}
	}

	if all := FilterByZones(rows, nil); len(all) != 4 {
		t.Fatalf("empty set should keep everything, got %d", len(all))
	}
}

func TestAugmentMaterializesResolvedValues(t *testing.T) {
	rows := []JoinedRecord{
		{Zone: "", UserZone: "North", Branch: "", UserBranch: "Jaffna"},
		{Zone: "", UserZone: "", Branch: "", UserBranch: ""},
	}

	out := Augment(rows)
	if out[0].Zone != "North" || out[0].Branch != "Jaffna" {
		t.Fatalf("user fallback not materialized: %+v", out[0])
	}
	if out[1].Zone != UnknownGroup || out[1].Branch != UnknownGroup {
		t.Fatalf("unknown fallback not materialized: %+v", out[1])
	}
}

func TestFilterByZoneUsesResolvedZone(t *testing.T) {
	rows := []JoinedRecord{
		{Zone: "West"},
		{Zone: "", UserZone: "West"},
		{Zone: "East"},
	}

	got := FilterByZone(rows, "West")
	if len(got) != 2 {
		t.Fatalf("filtered: got %d, want 2", len(got))
	}
	if all := FilterByZone(rows, ""); len(all) != 3 {
		t.Fatalf("empty filter should keep everything, got %d", len(all))
	}
}

func TestFetchJoinedPullsUserMetadata(t *testing.T) {
	db := newTestDB(t)
	userID := uuid.New()

	if err := db.Exec(
		`INSERT INTO users (id, user_name, zone, branch, role) VALUES (?, ?, ?, ?, ?)`,
		userID.String(), "saman", "West", "Negombo", "member",
	).Error; err != nil {
		t.Fatal(err)
	}
	if err := db.Exec(
		`INSERT INTO daily_records (id, user_id, date, zone, branch, total_business)
		 VALUES (?, ?, ?, '', '', 300)`,
		uuid.New().String(), userID.String(), "2026-01-05",
	).Error; err != nil {
		t.Fatal(err)
	}
	// orphan record with no user row
	if err := db.Exec(
		`INSERT INTO daily_records (id, user_id, date, zone, branch, total_business)
		 VALUES (?, ?, ?, '', '', 100)`,
		uuid.New().String(), uuid.New().String(), "2026-01-05",
	).Error; err != nil {
		t.Fatal(err)
	}

	rows, err := FetchJoined(db, "2026-01-05")
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows: got %d, want 2", len(rows))
	}

	byUser := map[uuid.UUID]JoinedRecord{}
	for _, r := range rows {
		byUser[r.UserID] = r
	}
	joined := byUser[userID]
	if joined.UserName != "saman" || joined.ResolvedZone() != "West" || joined.ResolvedBranch() != "Negombo" {
		t.Fatalf("joined metadata: %+v", joined)
	}

	groups := GroupBy(rows, "zone")
	if len(groups) != 2 {
		t.Fatalf("groups: got %d, want 2 (West and Unknown)", len(groups))
	}
	for _, g := range groups {
		switch g.Zone {
		case "West":
			if g.TotalBusiness != 300 {
				t.Fatalf("West total: got %v", g.TotalBusiness)
			}
		case UnknownGroup:
			if g.TotalBusiness != 100 {
				t.Fatalf("Unknown total: got %v", g.TotalBusiness)
			}
		default:
			t.Fatalf("unexpected bucket %q", g.Zone)
		}
	}
}
