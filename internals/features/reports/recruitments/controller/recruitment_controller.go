package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	recruitdto "salestrack_backend/internals/features/reports/recruitments/dto"
	"salestrack_backend/internals/features/reports/recruitments/model"
	helper "salestrack_backend/internals/helpers"
)

type RecruitmentController struct {
	DB *gorm.DB
}

func NewRecruitmentController(db *gorm.DB) *RecruitmentController {
	return &RecruitmentController{DB: db}
}

// POST /api/u/recruitments
func (rc *RecruitmentController) Create(c *fiber.Ctx) error {
	userIDStr, _ := c.Locals("user_id").(string)
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid user ID in context")
	}

	var req recruitdto.CreateRecruitmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	req.Normalize()
	if err := validator.New().Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	recruitment := req.ToModel(userID)
	if err := rc.DB.Create(recruitment).Error; err != nil {
		log.Println("[ERROR] Create recruitment:", err)
		return helper.JsonAppError(c, helper.NewStorageError("insert recruitment", err))
	}

	return helper.JsonCreated(c, "Recruitment created successfully", recruitdto.FromModel(recruitment))
}

// GET /api/u/recruitments — the caller's own pipeline
func (rc *RecruitmentController) ListMine(c *fiber.Ctx) error {
	userIDStr, _ := c.Locals("user_id").(string)

	var records []model.RecruitmentModel
	if err := rc.DB.Where("user_id = ?", userIDStr).Order("created_at DESC").Find(&records).Error; err != nil {
		log.Println("[ERROR] ListMine recruitments:", err)
		return helper.JsonAppError(c, helper.NewStorageError("fetch recruitments", err))
	}

	resp := recruitdto.FromModelList(records)
	return helper.JsonOK(c, "Recruitments fetched successfully", fiber.Map{
		"total":        len(resp),
		"recruitments": resp,
	})
}

// GET /api/a/recruitments?user_id= — any user's pipeline (staff)
func (rc *RecruitmentController) ListAll(c *fiber.Ctx) error {
	tx := rc.DB.Order("created_at DESC")
	if userID := strings.TrimSpace(c.Query("user_id")); userID != "" {
		tx = tx.Where("user_id = ?", userID)
	}

	var records []model.RecruitmentModel
	if err := tx.Find(&records).Error; err != nil {
		log.Println("[ERROR] ListAll recruitments:", err)
		return helper.JsonAppError(c, helper.NewStorageError("fetch recruitments", err))
	}

	resp := recruitdto.FromModelList(records)
	return helper.JsonOK(c, "Recruitments fetched successfully", fiber.Map{
		"total":        len(resp),
		"recruitments": resp,
	})
}

// PATCH /api/u/recruitments/:id — stage dates and details; nil keeps stored value
func (rc *RecruitmentController) Update(c *fiber.Ctx) error {
	recruitID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid recruitment id")
	}
	userIDStr, _ := c.Locals("user_id").(string)

	var req recruitdto.UpdateRecruitmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	if err := validator.New().Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	var recruitment model.RecruitmentModel
	if err := rc.DB.First(&recruitment, "id = ? AND user_id = ?", recruitID, userIDStr).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Recruitment not found")
		}
		log.Println("[ERROR] Update recruitment lookup:", err)
		return helper.JsonAppError(c, helper.NewStorageError("find recruitment", err))
	}

	updates := req.Updates()
	if len(updates) == 0 {
		return helper.JsonOK(c, "Nothing to update", recruitdto.FromModel(&recruitment))
	}

	if err := rc.DB.Model(&recruitment).Updates(updates).Error; err != nil {
		log.Println("[ERROR] Update recruitment:", err)
		return helper.JsonAppError(c, helper.NewStorageError("update recruitment", err))
	}

	return helper.JsonUpdated(c, "Recruitment updated successfully", recruitdto.FromModel(&recruitment))
}
