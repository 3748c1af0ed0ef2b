package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"salestrack_backend/internals/constants"
	controller "salestrack_backend/internals/features/users/user/controller"
	authMiddleware "salestrack_backend/internals/middlewares/auth"
)

// UserAdminRoutes mounts user management on the /api/a group (staff only).
func UserAdminRoutes(r fiber.Router, db *gorm.DB) {
	userController := controller.NewAdminUserController(db)

	users := r.Group("/users",
		authMiddleware.OnlyRoles(constants.RoleErrorStaff("user management"), constants.StaffRoles...),
	)
	users.Get("/", userController.ListUsers)
	users.Patch("/:id/role", userController.AssignRole)
	users.Patch("/:id/managed-locations", userController.UpdateManagedLocations)
	users.Delete("/:id", userController.DeleteUser)
}
