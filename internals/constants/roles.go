package constants

import "fmt"

// Role names as stored in users.role
const (
	RoleAdmin        = "admin"
	RoleHead         = "head"
	RoleViewerAdmin  = "viewer_admin"
	RoleZonalManager = "zonal_manager"
	RoleMember       = "member"
)

// Role error message templates
const (
	ErrOnlyAdminsCanAccess   = "❌ Only admin may access the %s feature."
	ErrOnlyManagersCanAccess = "❌ Only zonal managers or above may access the %s feature."
	ErrOnlyStaffCanAccess    = "❌ Only admin, head or viewer_admin may access the %s feature."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorManager(feature string) string {
	return fmt.Sprintf(ErrOnlyManagersCanAccess, feature)
}

func RoleErrorStaff(feature string) string {
	return fmt.Sprintf(ErrOnlyStaffCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleAdmin,
		RoleHead,
		RoleViewerAdmin,
		RoleZonalManager,
		RoleMember,
	}

	// Roles that may view org-wide rollups and manage targets
	StaffRoles = []string{
		RoleAdmin,
		RoleHead,
		RoleViewerAdmin,
	}

	// Roles that submit zone-level figures
	ManagerAndAbove = []string{
		RoleZonalManager,
		RoleHead,
		RoleAdmin,
	}

	AdminOnly = []string{
		RoleAdmin,
	}
)
