package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	recordRoute "salestrack_backend/internals/features/reports/daily_records/route"
	recruitmentRoute "salestrack_backend/internals/features/reports/recruitments/route"
)

// ReportUserRoutes: member-facing submissions + fetches (/api/u).
func ReportUserRoutes(r fiber.Router, db *gorm.DB) {
	recordRoute.DailyRecordUserRoutes(r, db)
	recruitmentRoute.RecruitmentUserRoutes(r, db)
}

// ReportAdminRoutes: rollups + maintenance (/api/a).
func ReportAdminRoutes(r fiber.Router, db *gorm.DB) {
	recordRoute.StatsRoutes(r, db)
	recordRoute.DailyRecordAdminRoutes(r, db)
	recruitmentRoute.RecruitmentAdminRoutes(r, db)
}
