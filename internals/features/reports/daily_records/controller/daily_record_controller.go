package controller

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"salestrack_backend/internals/constants"
	recorddto "salestrack_backend/internals/features/reports/daily_records/dto"
	"salestrack_backend/internals/features/reports/daily_records/model"
	"salestrack_backend/internals/features/reports/daily_records/service"
	helper "salestrack_backend/internals/helpers"
)

type DailyRecordController struct {
	DB     *gorm.DB
	Upsert *service.UpsertEngine
}

func NewDailyRecordController(db *gorm.DB) *DailyRecordController {
	return &DailyRecordController{DB: db, Upsert: service.NewUpsertEngine(db)}
}

// POST /api/u/daily-records  (accepts a single object or an array)
//
// Batch semantics: records are processed independently and concurrently; one
// record's failure never rolls back its siblings. The response carries only
// the processed count.
func (dc *DailyRecordController) Submit(c *fiber.Ctx) error {
	role, _ := c.Locals("userRole").(string)
	authedID, _ := c.Locals("user_id").(string)

	// try array payload first
	var manyReq []recorddto.SubmitDailyRecordRequest
	if err := c.BodyParser(&manyReq); err == nil && len(manyReq) > 0 {
		for i := range manyReq {
			if strings.TrimSpace(manyReq[i].UserID) == "" {
				manyReq[i].UserID = authedID
			}
		}
		processed := dc.Upsert.ProcessBatch(c.UserContext(), role, manyReq)
		return helper.JsonOK(c, "Records processed", fiber.Map{
			"processed": processed,
			"received":  len(manyReq),
		})
	}

	// fallback: single record
	var req recorddto.SubmitDailyRecordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	if strings.TrimSpace(req.UserID) == "" {
		req.UserID = authedID
	}
	req.Normalize()

	can, err := service.Normalize(&req)
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	created, err := dc.Upsert.Upsert(c.UserContext(), role, &req, can)
	if err != nil {
		log.Println("[ERROR] Submit daily record:", err)
		return helper.JsonAppError(c, err)
	}

	if created {
		return helper.JsonCreated(c, "Record created", fiber.Map{"processed": 1})
	}
	return helper.JsonUpdated(c, "Record updated", fiber.Map{"processed": 1})
}

// GET /api/u/daily-records?user_id=&date=
//
// With date: exact (user, date) match. Without: the user's most recent 30
// records by date descending.
func (dc *DailyRecordController) Fetch(c *fiber.Ctx) error {
	authedID, _ := c.Locals("user_id").(string)
	userIDStr := strings.TrimSpace(c.Query("user_id"))
	if userIDStr == "" {
		userIDStr = authedID
	}

	// members read their own records only
	if role, _ := c.Locals("userRole").(string); role == constants.RoleMember && userIDStr != authedID {
		return helper.JsonError(c, fiber.StatusForbidden, "You may only view your own records")
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user_id")
	}

	tx := dc.DB.Where("user_id = ?", userID)
	if date := strings.TrimSpace(c.Query("date")); date != "" {
		tx = tx.Where("date = ?", date)
	} else {
		tx = tx.Order("date DESC").Limit(30)
	}

	var records []model.DailyRecordModel
	if err := tx.Find(&records).Error; err != nil {
		log.Println("[ERROR] Fetch daily records:", err)
		return helper.JsonAppError(c, helper.NewStorageError("fetch daily records", err))
	}

	resp := recorddto.FromModelList(records)
	return helper.JsonOK(c, "Records fetched successfully", fiber.Map{
		"total":   len(resp),
		"records": resp,
	})
}

// DELETE /api/a/daily-records/:id  (explicit delete by id only)
func (dc *DailyRecordController) Delete(c *fiber.Ctx) error {
	recordID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid record id")
	}

	res := dc.DB.Delete(&model.DailyRecordModel{}, "id = ?", recordID)
	if res.Error != nil {
		log.Println("[ERROR] Delete daily record:", res.Error)
		return helper.JsonAppError(c, helper.NewStorageError("delete daily record", res.Error))
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Record not found")
	}

	return helper.JsonDeleted(c, "Record deleted successfully", fiber.Map{"id": recordID})
}
