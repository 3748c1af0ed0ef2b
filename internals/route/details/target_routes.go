package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	targetRoute "salestrack_backend/internals/features/reports/monthly_targets/route"
)

// TargetAdminRoutes: monthly target upload + reads (/api/a).
func TargetAdminRoutes(r fiber.Router, db *gorm.DB) {
	targetRoute.MonthlyTargetAdminRoutes(r, db)
}
