package accounts

import (
	"context"
	"log"
	"os"
	"strings"

	"github.com/bytedance/sonic"

	"timetable_backend/internals/constants"
	"timetable_backend/internals/features/users/accounts/model"
	"timetable_backend/internals/features/users/accounts/repository"
	helper "timetable_backend/internals/helpers"
)

type AccountSeed struct {
	Name          string                       `json:"name"`
	Email         string                       `json:"email"`
	Password      string                       `json:"password"`
	Role          string                       `json:"role"`
	Department    string                       `json:"department"`
	Subjects      []model.SubjectQualification `json:"subjects"`
	AdmissionYear *int                         `json:"admission_year"`
	Division      string                       `json:"division"`
	Batch         string                       `json:"batch"`
}

// SeedSuperadmin membuat akun superadmin bila email belum terdaftar.
func SeedSuperadmin(ctx context.Context, repo repository.Repository, email, password string) error {
	email = model.NormalizeEmail(email)
	if email == "" || strings.TrimSpace(password) == "" {
		log.Println("[INFO] superadmin seed skipped (SEED_SUPERADMIN_EMAIL/PASSWORD empty)")
		return nil
	}
	return seedOne(ctx, repo, AccountSeed{
		Name:     "Super Admin",
		Email:    email,
		Password: password,
		Role:     constants.RoleSuperAdmin,
	})
}

func SeedAccountsFromJSON(ctx context.Context, repo repository.Repository, filePath string) error {
	log.Println("[INFO] reading account seed:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	var inputs []AccountSeed
	if err := sonic.Unmarshal(file, &inputs); err != nil {
		return err
	}
	for _, data := range inputs {
		if err := seedOne(ctx, repo, data); err != nil {
			log.Printf("[WARN] seed account '%s' failed: %v", data.Email, err)
		}
	}
	return nil
}

func seedOne(ctx context.Context, repo repository.Repository, data AccountSeed) error {
	email := model.NormalizeEmail(data.Email)
	if _, err := repo.FindByEmail(ctx, email); err == nil {
		log.Printf("[INFO] account '%s' already exists, skipped", email)
		return nil
	} else if !helper.IsKind(err, helper.KindNotFound) {
		return err
	}

	role := strings.ToLower(strings.TrimSpace(data.Role))
	if !constants.HasRole(constants.AllRoles, role) {
		return helper.ValidationError(helper.CodeFieldValidation, "role", "unknown role").WithMeta("role", role)
	}
	acc := model.AccountModel{
		Name:          strings.TrimSpace(data.Name),
		Email:         email,
		Role:          role,
		IsActive:      true,
		Subjects:      append([]model.SubjectQualification{}, data.Subjects...),
		AdmissionYear: data.AdmissionYear,
	}
	if d := strings.TrimSpace(data.Department); d != "" {
		acc.Department = &d
	}
	if constants.RequiresDepartment(role) && acc.Department == nil {
		return helper.ValidationError(helper.CodeDepartmentRequired, "department", "department is required for role "+role)
	}
	if d := strings.TrimSpace(data.Division); d != "" {
		acc.Division = &d
	}
	if b := strings.TrimSpace(data.Batch); b != "" {
		acc.Batch = &b
	}
	if err := acc.SetPassword(data.Password); err != nil {
		return err
	}
	if err := repo.Create(ctx, &acc); err != nil {
		return err
	}
	log.Printf("[INFO] seeded account '%s' role=%s", email, role)
	return nil
}
