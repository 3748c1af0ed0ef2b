package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "salestrack_backend/internals/features/reports/daily_records/controller"
)

// StatsRoutes mounts the aggregated rollup endpoint. Mounted on the
// management group (staff + zonal managers); manager zone scoping is enforced
// in the controller.
func StatsRoutes(r fiber.Router, db *gorm.DB) {
	statsController := controller.NewStatsController(db)

	r.Get("/stats/daily", statsController.DailyStats)
}
