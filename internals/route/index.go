// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"salestrack_backend/internals/constants"
	authMiddleware "salestrack_backend/internals/middlewares/auth"
	routeDetails "salestrack_backend/internals/route/details"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// ===================== AUTH BASE =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(app, db)

	// ===================== GROUPS =====================

	// PRIVATE (any authenticated user)
	log.Println("[INFO] Setting up PRIVATE group...")
	private := app.Group("/api/u",
		authMiddleware.AuthMiddleware(db),
	)

	// ADMIN (staff + zonal managers; feature routes tighten further where
	// only staff may pass)
	log.Println("[INFO] Setting up ADMIN group...")
	admin := app.Group("/api/a",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles(
			constants.RoleErrorManager("reports"),
			constants.RoleAdmin, constants.RoleHead, constants.RoleViewerAdmin, constants.RoleZonalManager,
		),
	)

	// ===================== MOUNT ROUTES =====================

	log.Println("[INFO] Mounting Report routes...")
	routeDetails.ReportUserRoutes(private, db)
	routeDetails.ReportAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Target routes...")
	routeDetails.TargetAdminRoutes(admin, db)

	log.Println("[INFO] Mounting User admin routes...")
	routeDetails.UserAdminRoutes(admin, db)
}
