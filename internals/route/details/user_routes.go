package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userRoute "salestrack_backend/internals/features/users/user/route"
)

// UserAdminRoutes: user management (/api/a, staff only).
func UserAdminRoutes(r fiber.Router, db *gorm.DB) {
	userRoute.UserAdminRoutes(r, db)
}
