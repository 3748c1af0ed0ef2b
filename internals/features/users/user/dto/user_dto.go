package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"salestrack_backend/internals/features/users/user/model"
)

/* ===========================
   Response DTO
   =========================== */

type UserResponse struct {
	ID           uuid.UUID               `json:"id"`
	UserName     string                  `json:"user_name"`
	FullName     string                  `json:"full_name,omitempty"`
	Role         string                  `json:"role"`
	Zone         string                  `json:"zone,omitempty"`
	Branch       string                  `json:"branch,omitempty"`
	ManagedZones []string                `json:"managed_zones,omitempty"`
	Locations    []model.ManagedLocation `json:"managed_locations,omitempty"`
	IsActive     bool                    `json:"is_active"`
	CreatedAt    time.Time               `json:"created_at"`
	UpdatedAt    time.Time               `json:"updated_at"`
}

func FromModel(u *model.UserModel) *UserResponse {
	if u == nil {
		return nil
	}
	locs, _ := u.Locations()
	return &UserResponse{
		ID:           u.ID,
		UserName:     u.UserName,
		FullName:     u.FullName,
		Role:         u.Role,
		Zone:         u.Zone,
		Branch:       u.Branch,
		ManagedZones: u.ManagedZones,
		Locations:    locs,
		IsActive:     u.IsActive,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func FromModelList(users []model.UserModel) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for i := range users {
		if r := FromModel(&users[i]); r != nil {
			out = append(out, *r)
		}
	}
	return out
}

/* ===========================
   Request DTOs
   =========================== */

type CreateUserRequest struct {
	UserName string `json:"user_name" validate:"required,min=3,max=50"`
	FullName string `json:"full_name" validate:"omitempty,max=100"`
	Password string `json:"password" validate:"required,min=8"`
	Zone     string `json:"zone" validate:"omitempty,max=100"`
	Branch   string `json:"branch" validate:"omitempty,max=100"`
}

func (r *CreateUserRequest) Normalize() {
	r.UserName = strings.TrimSpace(strings.ToLower(r.UserName))
	r.FullName = strings.TrimSpace(r.FullName)
	r.Zone = strings.TrimSpace(r.Zone)
	r.Branch = strings.TrimSpace(r.Branch)
}

func (r *CreateUserRequest) ToModel() *model.UserModel {
	return &model.UserModel{
		UserName: r.UserName,
		FullName: r.FullName,
		Password: r.Password,
		Zone:     r.Zone,
		Branch:   r.Branch,
	}
}

type AssignRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=admin head viewer_admin zonal_manager member"`
}

type UpdateManagedLocationsRequest struct {
	Locations []model.ManagedLocation `json:"managed_locations" validate:"required,dive"`
}
