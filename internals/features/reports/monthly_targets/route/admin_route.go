package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"salestrack_backend/internals/constants"
	controller "salestrack_backend/internals/features/reports/monthly_targets/controller"
	rateLimiter "salestrack_backend/internals/middlewares"
	authMiddleware "salestrack_backend/internals/middlewares/auth"
)

// MonthlyTargetAdminRoutes mounts target routes on the /api/a group (staff only).
func MonthlyTargetAdminRoutes(r fiber.Router, db *gorm.DB) {
	targetController := controller.NewMonthlyTargetController(db)

	targets := r.Group("/monthly-targets",
		authMiddleware.OnlyRoles(constants.RoleErrorStaff("monthly targets"), constants.StaffRoles...),
	)
	targets.Post("/upload", rateLimiter.UploadRateLimiter(), targetController.Upload)
	targets.Get("/", targetController.List)
	targets.Get("/summary", targetController.Summary)
}
