package controller

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"salestrack_backend/internals/constants"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	ddl := []string{
		`CREATE TABLE users (
			id TEXT PRIMARY KEY,
			user_name TEXT NOT NULL,
			role TEXT DEFAULT 'member',
			zone TEXT DEFAULT '',
			branch TEXT DEFAULT '',
			managed_zones TEXT
		)`,
		`CREATE TABLE daily_records (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			date TEXT NOT NULL,
			zone_plan TEXT DEFAULT '',
			branch_plan TEXT DEFAULT '',
			morning_plan TEXT DEFAULT '',
			agent_achievement REAL,
			bdo_branch_performance REAL,
			total_business REAL,
			actual_business REAL,
			zone TEXT NOT NULL DEFAULT '',
			branch TEXT NOT NULL DEFAULT '',
			created_at DATETIME,
			updated_at DATETIME
		)`,
	}
	for _, stmt := range ddl {
		if err := db.Exec(stmt).Error; err != nil {
			t.Fatalf("create schema: %v", err)
		}
	}
	return db
}

// asUser injects the locals AuthMiddleware would set.
func asUser(userID, role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("user_id", userID)
		c.Locals("userRole", role)
		return c.Next()
	}
}

func insertRecord(t *testing.T, db *gorm.DB, userID, date, zone string, total float64) {
	t.Helper()
	err := db.Exec(
		`INSERT INTO daily_records (id, user_id, date, zone, branch, total_business)
		 VALUES (?, ?, ?, ?, '', ?)`,
		uuid.New().String(), userID, date, zone, total,
	).Error
	if err != nil {
		t.Fatal(err)
	}
}

func getJSON(t *testing.T, app *fiber.App, url string) (int, map[string]any) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", url, nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("decode %q: %v", raw, err)
	}
	return resp.StatusCode, body
}

func zonesOf(t *testing.T, body map[string]any) map[string]bool {
	t.Helper()
	data, _ := body["data"].(map[string]any)
	groups, _ := data["groups"].([]any)
	out := map[string]bool{}
	for _, g := range groups {
		m, _ := g.(map[string]any)
		zone, _ := m["zone"].(string)
		out[zone] = true
	}
	return out
}

func TestDailyStatsMultiZoneManagerScopedWithoutFilter(t *testing.T) {
	db := newTestDB(t)
	managerID := uuid.New()

	err := db.Exec(
		`INSERT INTO users (id, user_name, role, managed_zones) VALUES (?, ?, ?, ?)`,
		managerID.String(), "manager1", constants.RoleZonalManager, "{West,South}",
	).Error
	if err != nil {
		t.Fatal(err)
	}

	insertRecord(t, db, uuid.New().String(), "2026-01-05", "West", 1000)
	insertRecord(t, db, uuid.New().String(), "2026-01-05", "South", 500)
	insertRecord(t, db, uuid.New().String(), "2026-01-05", "East", 300)

	app := fiber.New()
	sc := NewStatsController(db)
	app.Get("/stats/daily", asUser(managerID.String(), constants.RoleZonalManager), sc.DailyStats)

	status, body := getJSON(t, app, "/stats/daily?date=2026-01-05&group=zone")
	if status != fiber.StatusOK {
		t.Fatalf("status: got %d, want 200", status)
	}

	zones := zonesOf(t, body)
	if !zones["West"] || !zones["South"] {
		t.Fatalf("managed zones missing from rollup: %v", zones)
	}
	if zones["East"] {
		t.Fatalf("zone outside the managed set leaked into the rollup: %v", zones)
	}

	// explicit filter on an unmanaged zone is rejected
	status, _ = getJSON(t, app, "/stats/daily?date=2026-01-05&group=zone&zone=East")
	if status != fiber.StatusForbidden {
		t.Fatalf("unmanaged zone filter: got %d, want 403", status)
	}
}

func TestDailyStatsFlatListReportsResolvedZones(t *testing.T) {
	db := newTestDB(t)
	// record with a blank zone and no owning user row
	insertRecord(t, db, uuid.New().String(), "2026-01-05", "", 200)

	app := fiber.New()
	sc := NewStatsController(db)
	app.Get("/stats/daily", asUser(uuid.New().String(), constants.RoleAdmin), sc.DailyStats)

	status, body := getJSON(t, app, "/stats/daily?date=2026-01-05")
	if status != fiber.StatusOK {
		t.Fatalf("status: got %d, want 200", status)
	}

	data, _ := body["data"].(map[string]any)
	records, _ := data["records"].([]any)
	if len(records) != 1 {
		t.Fatalf("records: got %d, want 1", len(records))
	}
	first, _ := records[0].(map[string]any)
	if zone, _ := first["zone"].(string); zone != "Unknown" {
		t.Fatalf("flat list zone: got %q, want Unknown", zone)
	}
	if branch, _ := first["branch"].(string); branch != "Unknown" {
		t.Fatalf("flat list branch: got %q, want Unknown", branch)
	}
}

func TestFetchMemberCannotReadOtherUsers(t *testing.T) {
	db := newTestDB(t)
	memberID := uuid.New()
	otherID := uuid.New()
	insertRecord(t, db, otherID.String(), "2026-01-05", "West", 700)
	insertRecord(t, db, memberID.String(), "2026-01-05", "West", 100)

	app := fiber.New()
	dc := NewDailyRecordController(db)
	app.Get("/daily-records", asUser(memberID.String(), constants.RoleMember), dc.Fetch)

	status, _ := getJSON(t, app, "/daily-records?user_id="+otherID.String())
	if status != fiber.StatusForbidden {
		t.Fatalf("cross-user fetch as member: got %d, want 403", status)
	}

	// own records still readable
	status, body := getJSON(t, app, "/daily-records")
	if status != fiber.StatusOK {
		t.Fatalf("own fetch: got %d, want 200", status)
	}
	data, _ := body["data"].(map[string]any)
	if total, _ := data["total"].(float64); total != 1 {
		t.Fatalf("own records total: got %v, want 1", total)
	}
}

func TestFetchStaffMayReadOtherUsers(t *testing.T) {
	db := newTestDB(t)
	adminID := uuid.New()
	otherID := uuid.New()
	insertRecord(t, db, otherID.String(), "2026-01-05", "West", 700)

	app := fiber.New()
	dc := NewDailyRecordController(db)
	app.Get("/daily-records", asUser(adminID.String(), constants.RoleAdmin), dc.Fetch)

	status, body := getJSON(t, app, "/daily-records?user_id="+otherID.String())
	if status != fiber.StatusOK {
		t.Fatalf("staff cross-user fetch: got %d, want 200", status)
	}
	data, _ := body["data"].(map[string]any)
	if total, _ := data["total"].(float64); total != 1 {
		t.Fatalf("records total: got %v, want 1", total)
	}
}
