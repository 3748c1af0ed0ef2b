package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "salestrack_backend/internals/features/reports/recruitments/controller"
)

// RecruitmentUserRoutes mounts the caller-scoped pipeline routes on /api/u.
func RecruitmentUserRoutes(r fiber.Router, db *gorm.DB) {
	recruitmentController := controller.NewRecruitmentController(db)

	recruitments := r.Group("/recruitments")
	recruitments.Post("/", recruitmentController.Create)
	recruitments.Get("/", recruitmentController.ListMine)
	recruitments.Patch("/:id", recruitmentController.Update)
}

// RecruitmentAdminRoutes mounts the staff view on /api/a.
func RecruitmentAdminRoutes(r fiber.Router, db *gorm.DB) {
	recruitmentController := controller.NewRecruitmentController(db)

	r.Get("/recruitments", recruitmentController.ListAll)
}
