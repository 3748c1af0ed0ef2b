package database

import (
	"log"

	dailymodel "salestrack_backend/internals/features/reports/daily_records/model"
	targetmodel "salestrack_backend/internals/features/reports/monthly_targets/model"
	recruitmodel "salestrack_backend/internals/features/reports/recruitments/model"
	usermodel "salestrack_backend/internals/features/users/user/model"
)

func Migrate() {
	if err := DB.AutoMigrate(
		&usermodel.UserModel{},
		&dailymodel.DailyRecordModel{},
		&targetmodel.MonthlyTargetModel{},
		&recruitmodel.RecruitmentModel{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate failed: %v", err)
	}

	// Store-level backstop for the resolve→write race on daily submissions.
	// The resolver ignores branch for non-managers, so their writes always land
	// on one row; managers get one row per (user, date, branch).
	if err := DB.Exec(
		`CREATE UNIQUE INDEX IF NOT EXISTS uq_daily_records_user_date_branch
		 ON daily_records (user_id, date, branch)`,
	).Error; err != nil {
		log.Printf("[WARN] daily_records unique index: %v", err)
	}

	log.Println("✅ Migrations applied.")
}
