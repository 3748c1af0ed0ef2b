// file: internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "salestrack_backend/internals/features/users/auth/controller"
	rateLimiter "salestrack_backend/internals/middlewares"
	authMiddleware "salestrack_backend/internals/middlewares/auth"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	authController := controller.NewAuthController(db)

	// global rate limiter
	app.Use(rateLimiter.GlobalRateLimiter())

	// ==========================
	// Base: /api/auth
	// Group middleware binds by prefix in Fiber, so the auth guard goes on
	// the protected routes directly instead of a second same-prefix group.
	// ==========================
	baseAuth := app.Group("/api/auth")
	requireAuth := authMiddleware.AuthMiddleware(db)

	// PUBLIC
	baseAuth.Post("/login", rateLimiter.LoginRateLimiter(), authController.Login)
	baseAuth.Post("/register", rateLimiter.RegisterRateLimiter(), authController.Register)
	baseAuth.Post("/refresh-token", authController.RefreshToken)

	// PROTECTED
	baseAuth.Get("/me", requireAuth, authController.Me)
	baseAuth.Post("/logout", requireAuth, authController.Logout)
	baseAuth.Post("/change-password", requireAuth, authController.ChangePassword)
}
