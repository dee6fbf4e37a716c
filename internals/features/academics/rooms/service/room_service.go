package service

import (
	"context"
	"log"

	"github.com/google/uuid"

	"timetable_backend/internals/constants"
	"timetable_backend/internals/features/academics/rooms/dto"
	"timetable_backend/internals/features/academics/rooms/model"
	"timetable_backend/internals/features/academics/rooms/repository"
	helper "timetable_backend/internals/helpers"
	helperAuth "timetable_backend/internals/helpers/auth"
)

type RoomService struct {
	Repo repository.Repository
}

func NewRoomService(repo repository.Repository) *RoomService {
	return &RoomService{Repo: repo}
}

func (s *RoomService) Create(ctx context.Context, p helperAuth.Principal, req dto.CreateRoomRequest) (*model.RoomModel, error) {
	req.Normalize()
	if err := helper.ValidateStruct("room", &req); err != nil {
		return nil, err
	}
	dept, err := helperAuth.OperatingDepartment(p, req.Department)
	if err != nil {
		return nil, err
	}
	m := req.ToModel(dept, p.AccountID)
	if err := validateRoom(m); err != nil {
		return nil, err
	}
	if err := s.Repo.Create(ctx, &m); err != nil {
		return nil, err
	}
	log.Printf("[ROOM] created %q department=%q by=%s", m.Name, m.Department, p.AccountID)
	return &m, nil
}

// List: filter department dipaksa oleh tenant guard.
func (s *RoomService) List(ctx context.Context, p helperAuth.Principal, f repository.Filter) ([]model.RoomModel, int64, error) {
	dept, err := helperAuth.ScopeFilter(p, f.Department)
	if err != nil {
		return nil, 0, err
	}
	f.Department = dept
	return s.Repo.List(ctx, f)
}

// ForDepartment: semua room satu department (pipeline generate).
func (s *RoomService) ForDepartment(ctx context.Context, department string) ([]model.RoomModel, error) {
	list, _, err := s.Repo.List(ctx, repository.Filter{Department: department})
	return list, err
}

func (s *RoomService) Get(ctx context.Context, p helperAuth.Principal, id uuid.UUID) (*model.RoomModel, error) {
	r, err := s.Repo.FindByID(ctx, id)
	if err != nil && !helper.IsKind(err, helper.KindNotFound) {
		return nil, err
	}
	found := err == nil
	dept := ""
	if found {
		dept = r.Department
	}
	if err := helperAuth.GuardTarget(p, found, dept, "room"); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *RoomService) Update(ctx context.Context, p helperAuth.Principal, id uuid.UUID, req dto.UpdateRoomRequest) (*model.RoomModel, error) {
	if err := helper.ValidateStruct("room", &req); err != nil {
		return nil, err
	}
	r, err := s.Get(ctx, p, id)
	if err != nil {
		return nil, err
	}
	req.ApplyPatch(r)
	if err := validateRoom(*r); err != nil {
		return nil, err
	}
	if err := s.Repo.Update(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *RoomService) Delete(ctx context.Context, p helperAuth.Principal, id uuid.UUID) error {
	r, err := s.Get(ctx, p, id)
	if err != nil {
		return err
	}
	if err := s.Repo.Delete(ctx, r.ID); err != nil {
		return err
	}
	log.Printf("[ROOM] deleted %q department=%q by=%s", r.Name, r.Department, p.AccountID)
	return nil
}

func validateRoom(m model.RoomModel) error {
	if !constants.HasRoomYear(m.PrimaryYear) {
		return helper.ValidationError(helper.CodeFieldValidation, "primary_year",
			"primary_year must be one of 1st Year..4th Year or Shared").WithMeta("primary_year", m.PrimaryYear)
	}
	if m.Capacity <= 0 {
		return helper.ValidationError(helper.CodeFieldValidation, "capacity", "capacity must be positive")
	}
	return nil
}
