package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	userdto "salestrack_backend/internals/features/users/user/dto"
	"salestrack_backend/internals/features/users/user/model"
	helper "salestrack_backend/internals/helpers"
)

type AdminUserController struct {
	DB *gorm.DB
}

func NewAdminUserController(db *gorm.DB) *AdminUserController { return &AdminUserController{DB: db} }

// GET /api/a/users
// Query:
//   q=nameOrUsername (optional; filter/search)
//   id=... (optional; detail lookup)

func (ac *AdminUserController) ListUsers(c *fiber.Ctx) error {
	// DETAIL via ?id=...
	if id := strings.TrimSpace(c.Query("id")); id != "" {
		var u model.UserModel
		if err := ac.DB.First(&u, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.JsonError(c, fiber.StatusNotFound, "User not found")
			}
			log.Println("[ERROR] GetUserByID:", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch user")
		}
		return helper.JsonOK(c, "User fetched successfully", userdto.FromModel(&u))
	}

	// LIST / SEARCH via ?q=
	q := strings.TrimSpace(c.Query("q"))
	var users []model.UserModel

	tx := ac.DB.Order("created_at DESC")
	if q != "" {
		like := "%" + q + "%"
		tx = tx.Where("user_name ILIKE ? OR full_name ILIKE ?", like, like)
	}

	if err := tx.Find(&users).Error; err != nil {
		log.Println("[ERROR] ListUsers:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch users")
	}

	resp := userdto.FromModelList(users)
	return helper.JsonOK(c, "Users fetched successfully", fiber.Map{
		"total": len(resp),
		"users": resp,
	})
}

// ==============================
// ROLE ASSIGNMENT (ADMIN)
// ==============================

// PATCH /api/a/users/:id/role
func (ac *AdminUserController) AssignRole(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user id")
	}

	var req userdto.AssignRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	if err := validator.New().Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	res := ac.DB.Model(&model.UserModel{}).
		Where("id = ?", userID).
		Update("role", req.Role)
	if res.Error != nil {
		log.Println("[ERROR] AssignRole:", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update role")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}

	return helper.JsonUpdated(c, "Role updated successfully", fiber.Map{
		"id":   userID,
		"role": req.Role,
	})
}

// PATCH /api/a/users/:id/managed-locations
func (ac *AdminUserController) UpdateManagedLocations(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user id")
	}

	var req userdto.UpdateManagedLocationsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	if err := validator.New().Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	var u model.UserModel
	if err := ac.DB.First(&u, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		log.Println("[ERROR] UpdateManagedLocations:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch user")
	}

	if err := u.SetLocations(req.Locations); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Invalid managed locations payload")
	}

	if err := ac.DB.Model(&u).Updates(map[string]interface{}{
		"managed_locations": u.ManagedLocations,
		"managed_zones":     u.ManagedZones,
	}).Error; err != nil {
		log.Println("[ERROR] UpdateManagedLocations save:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update managed locations")
	}

	return helper.JsonUpdated(c, "Managed locations updated successfully", userdto.FromModel(&u))
}

// DELETE /api/a/users/:id  (explicit admin action only)
func (ac *AdminUserController) DeleteUser(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user id")
	}

	res := ac.DB.Delete(&model.UserModel{}, "id = ?", userID)
	if res.Error != nil {
		log.Println("[ERROR] DeleteUser:", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete user")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}

	return helper.JsonDeleted(c, "User deleted successfully", fiber.Map{"id": userID})
}
