package service

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"salestrack_backend/internals/features/reports/daily_records/dto"
)

// newTestDB opens an in-memory SQLite database with the daily_records table.
// The schema mirrors the Postgres migration minus the uuid default, which the
// BeforeCreate hook covers.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	ddl := []string{
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
		`CREATE UNIQUE INDEX uq_daily_records_user_date_branch
			ON daily_records (user_id, date, branch)`,
		`CREATE TABLE users (
			id TEXT PRIMARY KEY,
			user_name TEXT NOT NULL,
			zone TEXT DEFAULT '',
			branch TEXT DEFAULT '',
			role TEXT DEFAULT 'member'
		)`,
	}
	for _, stmt := range ddl {
		if err := db.Exec(stmt).Error; err != nil {
			t.Fatalf("create schema: %v", err)
		}
	}

	// a :memory: database exists per connection; keep the pool at one so
	// concurrent goroutines see the same schema
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("pool handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	return db
}

func fs(s string) *dto.FlexString {
	f := dto.FlexString(s)
	return &f
}

func strptr(s string) *string { return &s }
