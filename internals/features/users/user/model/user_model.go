package model

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Validator instance
var validate = validator.New()

// ManagedLocation is one (zone, branch) pair a zonal manager oversees.
type ManagedLocation struct {
	Zone   string `json:"zone"`
	Branch string `json:"branch"`
}

// UserModel represents the users table
type UserModel struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserName string    `gorm:"size:50;unique;not null" json:"user_name" validate:"required,min=3,max=50"`
	FullName string    `gorm:"size:100" json:"full_name"`
	Password string    `gorm:"not null" json:"-" validate:"required,min=8"`
	Role     string    `gorm:"type:varchar(20);not null;default:'member'" json:"role" validate:"omitempty,oneof=admin head viewer_admin zonal_manager member"`

	Zone   string `gorm:"size:100" json:"zone"`
	Branch string `gorm:"size:100" json:"branch"`

	// ManagedLocations is the authoritative scoping for a zonal_manager:
	// the ordered list of (zone, branch) pairs they submit/view data for.
	ManagedLocations datatypes.JSON `gorm:"type:jsonb" json:"managed_locations,omitempty"`

	// ManagedZones is a derived snapshot of the distinct zones in
	// ManagedLocations, kept for cheap scoping checks on stats queries.
	ManagedZones pq.StringArray `gorm:"type:text[]" json:"managed_zones,omitempty"`

	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

func (u *UserModel) SetDefaultValues() {
	if u.Role == "" {
		u.Role = "member"
	}
}

func (u *UserModel) Validate() error {
	u.SetDefaultValues()
	if err := validate.Struct(u); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// Locations decodes the managed_locations JSON column.
func (u *UserModel) Locations() ([]ManagedLocation, error) {
	if len(u.ManagedLocations) == 0 {
		return nil, nil
	}
	var locs []ManagedLocation
	if err := json.Unmarshal(u.ManagedLocations, &locs); err != nil {
		return nil, err
	}
	return locs, nil
}

// SetLocations writes managed_locations and refreshes the managed_zones snapshot.
func (u *UserModel) SetLocations(locs []ManagedLocation) error {
	raw, err := json.Marshal(locs)
	if err != nil {
		return err
	}
	u.ManagedLocations = raw

	seen := map[string]struct{}{}
	zones := pq.StringArray{}
	for _, l := range locs {
		if l.Zone == "" {
			continue
		}
		if _, ok := seen[l.Zone]; ok {
			continue
		}
		seen[l.Zone] = struct{}{}
		zones = append(zones, l.Zone)
	}
	u.ManagedZones = zones
	return nil
}

// ManagesZone reports whether zone is in the manager's snapshot.
func (u *UserModel) ManagesZone(zone string) bool {
	for _, z := range u.ManagedZones {
		if z == zone {
			return true
		}
	}
	return false
}

func formatValidationError(err error) error {
	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		var msg string
		for _, fieldErr := range validationErrs {
			switch fieldErr.Tag() {
			case "required":
				msg += fieldErr.Field() + " is required.\n"
			case "min":
				msg += fieldErr.Field() + " must be at least " + fieldErr.Param() + " characters.\n"
			case "max":
				msg += fieldErr.Field() + " must be under " + fieldErr.Param() + " characters.\n"
			case "oneof":
				msg += fieldErr.Field() + " must be one of " + fieldErr.Param() + ".\n"
			default:
				msg += fieldErr.Field() + ": invalid format.\n"
			}
		}
		return errors.New(msg)
	}
	return err
}
