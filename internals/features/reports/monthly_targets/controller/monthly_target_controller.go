package controller

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"salestrack_backend/internals/features/reports/monthly_targets/service"
	helper "salestrack_backend/internals/helpers"
)

type MonthlyTargetController struct {
	DB *gorm.DB
}

func NewMonthlyTargetController(db *gorm.DB) *MonthlyTargetController {
	return &MonthlyTargetController{DB: db}
}

// POST /api/a/monthly-targets/upload  (multipart field "file", .xlsx)
//
// Per-row failures are logged server-side; callers only get the processed
// count back.
func (tc *MonthlyTargetController) Upload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return helper.JsonAppError(c, helper.NewValidationError("file", "missing upload"))
	}

	f, err := fileHeader.Open()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Could not open uploaded file")
	}
	defer f.Close()

	rows, err := service.ParseWorkbook(f)
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	results, processed := service.IngestRows(tc.DB.WithContext(c.UserContext()), rows)
	for _, r := range results {
		if r.Status == "failed" {
			log.Printf("[WARN] target row failed: username=%s month=%s err=%s", r.Username, r.Month, r.Error)
		}
	}

	return helper.JsonOK(c, "Targets processed", fiber.Map{
		"processed": processed,
	})
}

// GET /api/a/monthly-targets?month=&username=
func (tc *MonthlyTargetController) List(c *fiber.Ctx) error {
	month := strings.TrimSpace(c.Query("month"))
	username := strings.TrimSpace(c.Query("username"))

	targets, err := service.Query(tc.DB.WithContext(c.UserContext()), month, username)
	if err != nil {
		log.Println("[ERROR] List monthly targets:", err)
		return helper.JsonAppError(c, err)
	}

	return helper.JsonOK(c, "Targets fetched successfully", fiber.Map{
		"total":   len(targets),
		"targets": targets,
	})
}

// GET /api/a/monthly-targets/summary?month=&username=
func (tc *MonthlyTargetController) Summary(c *fiber.Ctx) error {
	month := strings.TrimSpace(c.Query("month"))
	username := strings.TrimSpace(c.Query("username"))

	targets, err := service.Query(tc.DB.WithContext(c.UserContext()), month, username)
	if err != nil {
		log.Println("[ERROR] Summary monthly targets:", err)
		return helper.JsonAppError(c, err)
	}

	return helper.JsonOK(c, "Target summary", service.Summarize(targets))
}
