package service

import (
	"context"
	"log"

	"github.com/google/uuid"

	"timetable_backend/internals/features/academics/subjects/dto"
	"timetable_backend/internals/features/academics/subjects/model"
	"timetable_backend/internals/features/academics/subjects/repository"
	helper "timetable_backend/internals/helpers"
	helperAuth "timetable_backend/internals/helpers/auth"
)

type SubjectService struct {
	Repo repository.Repository
}

func NewSubjectService(repo repository.Repository) *SubjectService {
	return &SubjectService{Repo: repo}
}

func (s *SubjectService) Create(ctx context.Context, p helperAuth.Principal, req dto.CreateSubjectRequest) (*model.SubjectModel, error) {
	req.Normalize()
	if len(req.Components) == 0 {
		return nil, emptyComponents()
	}
	if err := helper.ValidateStruct("subject", &req); err != nil {
		return nil, err
	}
	dept, err := helperAuth.OperatingDepartment(p, req.Department)
	if err != nil {
		return nil, err
	}
	m := req.ToModel(dept, p.AccountID)
	if err := validateComponents(m.Components); err != nil {
		return nil, err
	}
	if err := s.Repo.Create(ctx, &m); err != nil {
		return nil, err
	}
	log.Printf("[SUBJECT] created %s year=%s sem=%d department=%q by=%s",
		m.Code, m.Year, m.Semester, m.Department, p.AccountID)
	return &m, nil
}

func (s *SubjectService) List(ctx context.Context, p helperAuth.Principal, f repository.Filter) ([]model.SubjectModel, int64, error) {
	dept, err := helperAuth.ScopeFilter(p, f.Department)
	if err != nil {
		return nil, 0, err
	}
	f.Department = dept
	return s.Repo.List(ctx, f)
}

// ForCodes: lookup subject untuk pipeline generate, selalu satu department dan satu year.
func (s *SubjectService) ForCodes(ctx context.Context, department, year string, codes []string, semester int) ([]model.SubjectModel, error) {
	return s.Repo.FindByCodes(ctx, repository.CodesQuery{
		Department: department,
		Year:       year,
		Codes:      codes,
		Semester:   semester,
	})
}

func (s *SubjectService) Get(ctx context.Context, p helperAuth.Principal, id uuid.UUID) (*model.SubjectModel, error) {
	m, err := s.Repo.FindByID(ctx, id)
	if err != nil && !helper.IsKind(err, helper.KindNotFound) {
		return nil, err
	}
	found := err == nil
	dept := ""
	if found {
		dept = m.Department
	}
	if err := helperAuth.GuardTarget(p, found, dept, "subject"); err != nil {
		return nil, err
	}
	return m, nil
}

// Update: department subject tidak bisa dipindah lewat update.
func (s *SubjectService) Update(ctx context.Context, p helperAuth.Principal, id uuid.UUID, req dto.UpdateSubjectRequest) (*model.SubjectModel, error) {
	if req.Components != nil && len(*req.Components) == 0 {
		return nil, emptyComponents()
	}
	if err := helper.ValidateStruct("subject", &req); err != nil {
		return nil, err
	}
	m, err := s.Get(ctx, p, id)
	if err != nil {
		return nil, err
	}
	req.ApplyPatch(m)
	if err := validateComponents(m.Components); err != nil {
		return nil, err
	}
	if err := s.Repo.Update(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *SubjectService) Delete(ctx context.Context, p helperAuth.Principal, id uuid.UUID) error {
	m, err := s.Get(ctx, p, id)
	if err != nil {
		return err
	}
	if err := s.Repo.Delete(ctx, m.ID); err != nil {
		return err
	}
	log.Printf("[SUBJECT] deleted %s department=%q by=%s", m.Code, m.Department, p.AccountID)
	return nil
}

func emptyComponents() error {
	return helper.ValidationError(helper.CodeEmptyComponents, "components",
		"subject must have at least one component")
}

func validateComponents(list []model.Component) error {
	if len(list) == 0 {
		return emptyComponents()
	}
	for i, c := range list {
		if err := c.Validate(); err != nil {
			return helper.ValidationError(helper.CodeFieldValidation, "components", err.Error()).
				WithMeta("index", i)
		}
	}
	return nil
}
