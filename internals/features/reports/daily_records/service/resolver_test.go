package service

import (
	"testing"

	"github.com/google/uuid"

	"salestrack_backend/internals/constants"
)

func TestResolveKeyByRole(t *testing.T) {
	userID := uuid.New()

	cases := []struct {
		name      string
		role      string
		branch    string
		useBranch bool
	}{
		{"member ignores branch", constants.RoleMember, "Colombo Central", false},
		{"admin ignores branch", constants.RoleAdmin, "Colombo Central", false},
		{"head ignores branch", constants.RoleHead, "Colombo Central", false},
		{"viewer_admin ignores branch", constants.RoleViewerAdmin, "Colombo Central", false},
		{"zonal_manager keys on branch", constants.RoleZonalManager, "Colombo Central", true},
		{"zonal_manager without branch falls back", constants.RoleZonalManager, "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			k := ResolveKey(tc.role, userID, "2026-01-05", tc.branch)
			if k.UseBranch != tc.useBranch {
				t.Fatalf("UseBranch: got %v, want %v", k.UseBranch, tc.useBranch)
			}
			if k.UserID != userID || k.Date != "2026-01-05" {
				t.Fatalf("key identity mangled: %+v", k)
			}
			if tc.useBranch && k.Branch != tc.branch {
				t.Fatalf("Branch: got %q, want %q", k.Branch, tc.branch)
			}
		})
	}
}

func TestFindExistingReturnsNilWhenAbsent(t *testing.T) {
	db := newTestDB(t)

	got, err := FindExisting(db, KeySpec{UserID: uuid.New(), Date: "2026-01-05"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Fatalf("want nil for absent record, got %+v", got)
	}
}
