package service

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"salestrack_backend/internals/constants"
	"salestrack_backend/internals/features/reports/daily_records/model"
	helper "salestrack_backend/internals/helpers"
)

// KeySpec is the predicate set that identifies "the" record for a submission.
// Non-manager roles get one row per (user, date); a zonal_manager submits one
// row per managed branch, so branch joins the key for them.
type KeySpec struct {
	UserID    uuid.UUID
	Date      string
	Branch    string
	UseBranch bool
}

// ResolveKey selects the keying strategy for a role. Pure.
func ResolveKey(role string, userID uuid.UUID, date, branch string) KeySpec {
	k := KeySpec{UserID: userID, Date: date}
	if role == constants.RoleZonalManager && branch != "" {
		k.Branch = branch
		k.UseBranch = true
	}
	return k
}

// Apply narrows tx to the rows matching the key.
func (k KeySpec) Apply(tx *gorm.DB) *gorm.DB {
	tx = tx.Where("user_id = ? AND date = ?", k.UserID, k.Date)
	if k.UseBranch {
		tx = tx.Where("branch = ?", k.Branch)
	}
	return tx
}

// FindExisting returns the stored record matching the key, or nil when there
// is none. If concurrent writes ever produced duplicates the first row wins.
func FindExisting(db *gorm.DB, k KeySpec) (*model.DailyRecordModel, error) {
	var existing model.DailyRecordModel
	err := k.Apply(db).Order("created_at ASC").First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, helper.NewStorageError("find daily record", err)
	}
	return &existing, nil
}
