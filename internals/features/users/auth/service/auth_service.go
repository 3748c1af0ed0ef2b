package service

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"salestrack_backend/internals/configs"
	userdto "salestrack_backend/internals/features/users/user/dto"
	usermodel "salestrack_backend/internals/features/users/user/model"
	helper "salestrack_backend/internals/helpers"
)

const (
	accessTokenTTL  = 2 * time.Hour
	refreshTokenTTL = 7 * 24 * time.Hour
)

// ==========================
// REGISTER
// ==========================
func Register(db *gorm.DB, c *fiber.Ctx) error {
	var req userdto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	req.Normalize()
	if err := validator.New().Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Println("[ERROR] bcrypt:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to process password")
	}

	user := req.ToModel()
	user.Password = string(hashed)
	if err := user.Validate(); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	if err := db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.JsonError(c, fiber.StatusConflict, "Username already taken")
		}
		log.Println("[ERROR] Register create:", err)
		return helper.JsonAppError(c, helper.NewStorageError("insert user", err))
	}

	return helper.JsonCreated(c, "User registered successfully", userdto.FromModel(user))
}

// ==========================
// LOGIN
// ==========================
func Login(db *gorm.DB, c *fiber.Ctx) error {
	var req struct {
		UserName string `json:"user_name" validate:"required"`
		Password string `json:"password" validate:"required"`
	}
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	if err := validator.New().Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	var user usermodel.UserModel
	if err := db.First(&user, "user_name = ?", strings.ToLower(strings.TrimSpace(req.UserName))).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid username or password")
		}
		log.Println("[ERROR] Login lookup:", err)
		return helper.JsonAppError(c, helper.NewStorageError("find user", err))
	}

	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Your account has been deactivated")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid username or password")
	}

	access, refresh, err := generateTokens(&user)
	if err != nil {
		log.Println("[ERROR] Login tokens:", err)
		return helper.JsonAppError(c, err)
	}

	setAuthCookies(c, access, refresh)

	return helper.JsonOK(c, "Login successful", fiber.Map{
		"access_token":  access,
		"refresh_token": refresh,
		"user":          userdto.FromModel(&user),
	})
}

// ==========================
// REFRESH TOKEN
// ==========================
func RefreshToken(db *gorm.DB, c *fiber.Ctx) error {
	raw := strings.TrimSpace(c.Cookies("refresh_token"))
	if raw == "" {
		var body struct {
			RefreshToken string `json:"refresh_token"`
		}
		_ = c.BodyParser(&body)
		raw = strings.TrimSpace(body.RefreshToken)
	}
	if raw == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Missing refresh token")
	}

	secret := configs.JWTRefreshSecret
	if secret == "" {
		return helper.JsonAppError(c, helper.NewConfigurationError("JWT_REFRESH_SECRET is not set"))
	}

	tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid refresh token")
	}

	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid refresh token claims")
	}
	sub, _ := claims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid refresh token subject")
	}

	var user usermodel.UserModel
	if err := db.First(&user, "id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User not found")
	}

	access, refresh, err := generateTokens(&user)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	setAuthCookies(c, access, refresh)

	return helper.JsonOK(c, "Token refreshed", fiber.Map{
		"access_token":  access,
		"refresh_token": refresh,
	})
}

// ==========================
// CHANGE PASSWORD
// ==========================
func ChangePassword(db *gorm.DB, c *fiber.Ctx) error {
	userIDStr, ok := c.Locals("user_id").(string)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid user ID in context")
	}

	var req struct {
		OldPassword string `json:"old_password" validate:"required"`
		NewPassword string `json:"new_password" validate:"required,min=8"`
	}
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	if err := validator.New().Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	var user usermodel.UserModel
	if err := db.First(&user, "id = ?", userIDStr).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.OldPassword)); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Old password does not match")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to process password")
	}

	if err := db.Model(&user).Update("password", string(hashed)).Error; err != nil {
		log.Println("[ERROR] ChangePassword:", err)
		return helper.JsonAppError(c, helper.NewStorageError("update password", err))
	}

	return helper.JsonUpdated(c, "Password changed successfully", nil)
}

// ==========================
// LOGOUT
// ==========================
func Logout(c *fiber.Ctx) error {
	expired := time.Now().Add(-time.Hour)
	c.Cookie(&fiber.Cookie{Name: "access_token", Value: "", Expires: expired, HTTPOnly: true})
	c.Cookie(&fiber.Cookie{Name: "refresh_token", Value: "", Expires: expired, HTTPOnly: true})
	return helper.JsonOK(c, "Logged out", nil)
}

// ==========================
// TOKEN HELPERS
// ==========================
func generateTokens(user *usermodel.UserModel) (string, string, error) {
	secret := configs.JWTSecret
	refreshSecret := configs.JWTRefreshSecret
	if secret == "" || refreshSecret == "" {
		return "", "", helper.NewConfigurationError("JWT secrets are not set")
	}

	now := time.Now()

	accessClaims := jwt.MapClaims{
		"id":        user.ID.String(),
		"user_name": user.UserName,
		"role":      user.Role,
		"zone":      user.Zone,
		"branch":    user.Branch,
		"iat":       now.Unix(),
		"exp":       now.Add(accessTokenTTL).Unix(),
	}
	access, err := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims).SignedString([]byte(secret))
	if err != nil {
		return "", "", err
	}

	refreshClaims := jwt.MapClaims{
		"sub": user.ID.String(),
		"iat": now.Unix(),
		"exp": now.Add(refreshTokenTTL).Unix(),
	}
	refresh, err := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims).SignedString([]byte(refreshSecret))
	if err != nil {
		return "", "", err
	}

	return access, refresh, nil
}

func setAuthCookies(c *fiber.Ctx, access, refresh string) {
	now := time.Now()
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    access,
		Expires:  now.Add(accessTokenTTL),
		HTTPOnly: true,
		SameSite: "Lax",
	})
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refresh,
		Expires:  now.Add(refreshTokenTTL),
		HTTPOnly: true,
		SameSite: "Lax",
	})
}
