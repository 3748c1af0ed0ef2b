package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "salestrack_backend/internals/features/reports/daily_records/controller"
)

// DailyRecordUserRoutes mounts member-facing record routes on the /api/u group.
func DailyRecordUserRoutes(r fiber.Router, db *gorm.DB) {
	recordController := controller.NewDailyRecordController(db)

	records := r.Group("/daily-records")
	records.Post("/", recordController.Submit)
	records.Get("/", recordController.Fetch)
}
