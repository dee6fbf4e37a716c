package service

import (
	"context"
	"log"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"timetable_backend/internals/constants"
	"timetable_backend/internals/features/users/accounts/dto"
	"timetable_backend/internals/features/users/accounts/model"
	"timetable_backend/internals/features/users/accounts/repository"
	helper "timetable_backend/internals/helpers"
	helperAuth "timetable_backend/internals/helpers/auth"
)

type AccountService struct {
	Repo repository.Repository
}

func NewAccountService(repo repository.Repository) *AccountService {
	return &AccountService{Repo: repo}
}

// Create membuat akun baru. Admin hanya boleh membuat teacher/student di department
// miliknya; superadmin boleh membuat admin untuk department mana pun.
func (s *AccountService) Create(ctx context.Context, p helperAuth.Principal, req dto.CreateAccountRequest) (*model.AccountModel, error) {
	req.Normalize()
	if err := helper.ValidateStruct("account", &req); err != nil {
		return nil, err
	}

	if !p.IsSuperAdmin() {
		if req.Role == constants.RoleAdmin {
			return nil, helper.AuthorizationError(helper.CodeForbiddenRole, "account",
				"only superadmin may create admin accounts")
		}
		// department dari principal, bukan dari body
		req.Department = p.Department
	}

	if constants.RequiresDepartment(req.Role) && req.Department == "" {
		return nil, helper.ValidationError(helper.CodeDepartmentRequired, "department",
			req.Role+" accounts require a department")
	}
	if req.Department != "" && !constants.IsDepartment(req.Department) {
		return nil, helper.ValidationError(helper.CodeFieldValidation, "department",
			"unknown department").WithMeta("department", req.Department)
	}

	m := req.ToModel(p.AccountID)
	if err := m.SetPassword(req.Password); err != nil {
		return nil, errors.Wrap(err, "hash password")
	}
	if err := s.Repo.Create(ctx, &m); err != nil {
		return nil, err
	}
	log.Printf("[ACCOUNT] created id=%s role=%s department=%q by=%s", m.ID, m.Role, m.DepartmentValue(), p.AccountID)
	return &m, nil
}

func (s *AccountService) List(ctx context.Context, p helperAuth.Principal, role, department string, paging helper.Paging) ([]model.AccountModel, int64, error) {
	dept, err := helperAuth.ScopeFilter(p, department)
	if err != nil {
		return nil, 0, err
	}
	return s.Repo.List(ctx, repository.Filter{
		Department: dept,
		Role:       role,
		Offset:     paging.Offset,
		Limit:      paging.Limit,
	})
}

// ActiveTeachers: akun teacher aktif di satu department.
func (s *AccountService) ActiveTeachers(ctx context.Context, department string) ([]model.AccountModel, error) {
	list, _, err := s.Repo.List(ctx, repository.Filter{
		Department: department,
		Role:       constants.RoleTeacher,
		ActiveOnly: true,
	})
	return list, err
}

func (s *AccountService) Get(ctx context.Context, p helperAuth.Principal, id uuid.UUID) (*model.AccountModel, error) {
	a, err := s.Repo.FindByID(ctx, id)
	if err != nil && !helper.IsKind(err, helper.KindNotFound) {
		return nil, err
	}
	found := err == nil
	dept := ""
	if found {
		dept = a.DepartmentValue()
	}
	if err := helperAuth.GuardTarget(p, found, dept, "account"); err != nil {
		return nil, err
	}
	if err := s.guardRole(p, a); err != nil {
		return nil, err
	}
	return a, nil
}

// SetActive menonaktifkan/mengaktifkan akun (soft-retire, tidak pernah hard delete).
func (s *AccountService) SetActive(ctx context.Context, p helperAuth.Principal, id uuid.UUID, active bool) (*model.AccountModel, error) {
	a, err := s.Get(ctx, p, id)
	if err != nil {
		return nil, err
	}
	if a.ID == p.AccountID {
		return nil, helper.ValidationError(helper.CodeFieldValidation, "account", "cannot change your own active flag")
	}
	a.IsActive = active
	if err := s.Repo.Update(ctx, a); err != nil {
		return nil, err
	}
	log.Printf("[ACCOUNT] id=%s is_active=%v by=%s", a.ID, active, p.AccountID)
	return a, nil
}

func (s *AccountService) UpdateSubjects(ctx context.Context, p helperAuth.Principal, id uuid.UUID, req dto.UpdateSubjectsRequest) (*model.AccountModel, error) {
	if err := helper.ValidateStruct("account", &req); err != nil {
		return nil, err
	}
	a, err := s.Get(ctx, p, id)
	if err != nil {
		return nil, err
	}
	if a.Role != constants.RoleTeacher {
		return nil, helper.ValidationError(helper.CodeFieldValidation, "subjects", "only teachers carry subject qualifications")
	}
	a.Subjects = dto.ToQualifications(req.Subjects, a.DepartmentValue())
	if err := s.Repo.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// guardRole: admin tidak mengelola admin lain.
func (s *AccountService) guardRole(p helperAuth.Principal, a *model.AccountModel) error {
	if p.IsSuperAdmin() || a.ID == p.AccountID {
		return nil
	}
	if a.Role == constants.RoleAdmin || a.Role == constants.RoleSuperAdmin {
		return helper.AuthorizationError(helper.CodeForbiddenRole, "account", "admins cannot manage other admins")
	}
	return nil
}
