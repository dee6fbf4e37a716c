package service

import (
	"bytes"
	"context"
	"log"

	"github.com/google/uuid"

	"timetable_backend/internals/constants"
	"timetable_backend/internals/features/timetables/timetable/dto"
	"timetable_backend/internals/features/timetables/timetable/model"
	"timetable_backend/internals/features/timetables/timetable/repository"
	helper "timetable_backend/internals/helpers"
	helperAuth "timetable_backend/internals/helpers/auth"
)

// RecentLimit: jumlah timetable terakhir yang dikirim ke solver sebagai konteks.
const RecentLimit = 5

type TimetableService struct {
	Repo repository.Repository
}

func NewTimetableService(repo repository.Repository) *TimetableService {
	return &TimetableService{Repo: repo}
}

// Save adalah reconciler idempotent: satu baris per (year, division, department),
// timetableData diganti utuh, timeConfig di-merge, atribusi ke principal saat ini.
func (s *TimetableService) Save(ctx context.Context, p helperAuth.Principal, req dto.SaveTimetableRequest) (*model.TimetableModel, error) {
	req.Normalize()
	if err := helper.ValidateStruct("timetable", &req); err != nil {
		return nil, err
	}
	data := bytes.TrimSpace(req.TimetableData)
	if len(data) == 0 || data[0] != '{' {
		return nil, helper.ValidationError(helper.CodeFieldValidation, "timetableData",
			"timetableData must be a JSON object")
	}
	if field, err := model.ValidateTimeConfig(req.TimeConfig); err != nil {
		return nil, helper.ValidationError(helper.CodeFieldValidation, "timeConfig."+field, err.Error())
	}
	dept, err := helperAuth.OperatingDepartment(p, req.Department)
	if err != nil {
		return nil, err
	}

	t, err := s.Repo.Upsert(ctx, repository.UpsertInput{
		Key:           model.Key{Year: req.Year, Division: req.Division, Department: dept},
		TimetableData: data,
		ConfigPatch:   req.TimeConfig,
		SavedBy:       p.AccountID,
		SavedByAdmin:  p.Name,
	})
	if err != nil {
		return nil, err
	}
	log.Printf("[TIMETABLE] saved year=%s division=%s department=%q by=%s",
		t.Year, t.Division, t.Department, p.AccountID)
	return t, nil
}

func (s *TimetableService) List(ctx context.Context, p helperAuth.Principal, f repository.Filter) ([]model.TimetableModel, int64, error) {
	dept, err := helperAuth.ScopeFilter(p, f.Department)
	if err != nil {
		return nil, 0, err
	}
	f.Department = dept
	return s.Repo.List(ctx, f)
}

// ForEndUser: teacher melihat seluruh timetable department-nya,
// student dibatasi ke division miliknya bila akun punya division.
func (s *TimetableService) ForEndUser(ctx context.Context, p helperAuth.Principal, year, division string) ([]model.TimetableModel, error) {
	if p.Department == "" {
		return []model.TimetableModel{}, nil
	}
	key := model.Key{Year: year, Division: division}.Normalize()
	if p.Role == constants.RoleStudent && p.Division != "" {
		key.Division = model.Key{Division: p.Division}.Normalize().Division
	}
	f := repository.Filter{Department: p.Department, Year: key.Year, Division: key.Division}
	list, _, err := s.Repo.List(ctx, f)
	return list, err
}

// Recent: konteks regenerasi untuk pipeline generate, terbaru lebih dulu.
func (s *TimetableService) Recent(ctx context.Context, department string) ([]model.TimetableModel, error) {
	return s.Repo.ListRecent(ctx, department, RecentLimit)
}

func (s *TimetableService) Get(ctx context.Context, p helperAuth.Principal, id uuid.UUID) (*model.TimetableModel, error) {
	t, err := s.Repo.FindByID(ctx, id)
	if err != nil && !helper.IsKind(err, helper.KindNotFound) {
		return nil, err
	}
	found := err == nil
	dept := ""
	if found {
		dept = t.Department
	}
	if err := helperAuth.GuardTarget(p, found, dept, "timetable"); err != nil {
		return nil, err
	}
	return t, nil
}

// Delete: tidak ada cascade ke entitas lain.
func (s *TimetableService) Delete(ctx context.Context, p helperAuth.Principal, id uuid.UUID) error {
	t, err := s.Get(ctx, p, id)
	if err != nil {
		return err
	}
	if err := s.Repo.Delete(ctx, t.ID); err != nil {
		return err
	}
	log.Printf("[TIMETABLE] deleted year=%s division=%s department=%q by=%s",
		t.Year, t.Division, t.Department, p.AccountID)
	return nil
}
