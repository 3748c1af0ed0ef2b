package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"salestrack_backend/internals/constants"
	controller "salestrack_backend/internals/features/reports/daily_records/controller"
	authMiddleware "salestrack_backend/internals/middlewares/auth"
)

// DailyRecordAdminRoutes mounts maintenance routes on the /api/a group.
// Deleting a record is an explicit admin action.
func DailyRecordAdminRoutes(r fiber.Router, db *gorm.DB) {
	recordController := controller.NewDailyRecordController(db)

	r.Delete("/daily-records/:id",
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("record maintenance"), constants.AdminOnly...),
		recordController.Delete,
	)
}
