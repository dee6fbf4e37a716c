package helper

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"timetable_backend/internals/constants"
	helper "timetable_backend/internals/helpers"
)

// Authorize: superadmin selalu lolos; selain itu department harus sama.
// Pesan error sengaja tidak menyebut apakah resource target ada.
func Authorize(p Principal, department string) error {
	if p.IsSuperAdmin() {
		return nil
	}
	if p.Department != "" && normDept(p.Department) == normDept(department) {
		return nil
	}
	return helper.AuthorizationError(helper.CodeCrossTenantAccess, "department",
		"resource is outside your department")
}

// BlockSuperadminGeneration: superadmin mengelola tenant, tidak beroperasi di dalamnya.
func BlockSuperadminGeneration(p Principal) error {
	if p.IsSuperAdmin() {
		return helper.AuthorizationError(helper.CodeSuperadminGenerate, "timetable",
			"superadmin cannot generate timetables")
	}
	return nil
}

// OperatingDepartment: department tempat principal beroperasi untuk operasi tulis.
// Non-superadmin selalu memakai department miliknya, input klien diabaikan.
func OperatingDepartment(p Principal, requested string) (string, error) {
	if !p.IsSuperAdmin() {
		if p.Department == "" {
			return "", helper.AuthorizationError(helper.CodeCrossTenantAccess, "department",
				"account is not bound to a department")
		}
		return p.Department, nil
	}
	if d := normDept(requested); d != "" {
		if !constants.IsDepartment(d) {
			return "", helper.ValidationError(helper.CodeFieldValidation, "department",
				"unknown department").WithMeta("department", d)
		}
		return d, nil
	}
	return "", helper.ValidationError(helper.CodeDepartmentRequired, "department",
		"superadmin must name a department")
}

// ScopeFilter mempersempit filter list. Non-superadmin dipaksa ke department sendiri;
// superadmin memakai department yang diminta (kosong = semua).
func ScopeFilter(p Principal, requested string) (string, error) {
	if p.IsSuperAdmin() {
		return normDept(requested), nil
	}
	if p.Department == "" {
		return "", helper.AuthorizationError(helper.CodeCrossTenantAccess, "department",
			"account is not bound to a department")
	}
	return p.Department, nil
}

// ScopeDepartment adalah gorm scope untuk predicate department implisit.
// department kosong = tanpa filter (hanya terjadi untuk superadmin via ScopeFilter).
func ScopeDepartment(column, department string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if department == "" {
			return db
		}
		return db.Where(column+" = ?", department)
	}
}

// BlockSuperadminMiddleware: bentuk middleware dari BlockSuperadminGeneration.
func BlockSuperadminMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := GetPrincipal(c)
		if err != nil {
			return err
		}
		if err := BlockSuperadminGeneration(p); err != nil {
			return err
		}
		return c.Next()
	}
}

// GuardTarget memeriksa operasi single-target (get/update/delete by id).
// Untuk non-superadmin, resource yang tidak ada dan resource milik department lain
// menghasilkan error yang identik supaya keberadaan resource tenant lain tidak bocor.
func GuardTarget(p Principal, found bool, department, subject string) error {
	if p.IsSuperAdmin() {
		if !found {
			return helper.NotFoundError(subject, subject+" not found")
		}
		return nil
	}
	if !found {
		return crossTenant(subject)
	}
	if err := Authorize(p, department); err != nil {
		return crossTenant(subject)
	}
	return nil
}

func crossTenant(subject string) error {
	return helper.AuthorizationError(helper.CodeCrossTenantAccess, subject,
		subject+" is not accessible from your department")
}
