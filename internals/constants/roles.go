package constants

import (
	"fmt"
	"strings"
)

const (
	RoleSuperAdmin = "superadmin"
	RoleAdmin      = "admin"
	RoleTeacher    = "teacher"
	RoleStudent    = "student"
)

// Template pesan error role
const (
	ErrOnlyAdminsCanAccess   = "only admin or superadmin may access %s"
	ErrOnlyEndUsersCanAccess = "only teacher or student accounts may access %s"
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorEndUser(feature string) string {
	return fmt.Sprintf(ErrOnlyEndUsersCanAccess, feature)
}

var (
	AllRoles = []string{
		RoleSuperAdmin,
		RoleAdmin,
		RoleTeacher,
		RoleStudent,
	}

	AdminRoles = []string{
		RoleAdmin,
		RoleSuperAdmin,
	}

	EndUserRoles = []string{
		RoleTeacher,
		RoleStudent,
	}
)

func HasRole(list []string, role string) bool {
	role = strings.ToLower(strings.TrimSpace(role))
	for _, r := range list {
		if r == role {
			return true
		}
	}
	return false
}

// RequiresDepartment: admin & teacher selalu terikat ke satu department.
func RequiresDepartment(role string) bool {
	return role == RoleAdmin || role == RoleTeacher
}
