package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"timetable_backend/internals/features/academics/rooms/model"
)

type CreateRoomRequest struct {
	Name        string `json:"name" validate:"required,max=80"`
	Department  string `json:"department" validate:"omitempty,max=120"` // hanya dipakai superadmin
	Type        string `json:"type" validate:"required,oneof=Classroom Lab Tutorial"`
	Capacity    int    `json:"capacity" validate:"required,gt=0,lte=1000"`
	LabCategory string `json:"lab_category" validate:"omitempty,max=60"`
	PrimaryYear string `json:"primary_year" validate:"omitempty,max=20"`
}

func (r *CreateRoomRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Department = strings.TrimSpace(r.Department)
	r.Type = strings.TrimSpace(r.Type)
	r.LabCategory = strings.TrimSpace(r.LabCategory)
	r.PrimaryYear = strings.TrimSpace(r.PrimaryYear)
}

// ToModel: department selalu diisi server.
func (r CreateRoomRequest) ToModel(department string, createdBy uuid.UUID) model.RoomModel {
	m := model.RoomModel{
		Name:        r.Name,
		Department:  department,
		Type:        r.Type,
		Capacity:    r.Capacity,
		LabCategory: r.LabCategory,
		PrimaryYear: r.PrimaryYear,
	}
	if createdBy != uuid.Nil {
		cb := createdBy
		m.CreatedBy = &cb
	}
	m.Normalize()
	return m
}

type UpdateRoomRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=80"`
	Type        *string `json:"type" validate:"omitempty,oneof=Classroom Lab Tutorial"`
	Capacity    *int    `json:"capacity" validate:"omitempty,gt=0,lte=1000"`
	LabCategory *string `json:"lab_category" validate:"omitempty,max=60"`
	PrimaryYear *string `json:"primary_year" validate:"omitempty,max=20"`
}

// ApplyPatch menerapkan field non-nil lalu menormalkan ulang kategori lab.
func (r UpdateRoomRequest) ApplyPatch(m *model.RoomModel) {
	if r.Name != nil {
		m.Name = strings.TrimSpace(*r.Name)
	}
	if r.Type != nil {
		m.Type = strings.TrimSpace(*r.Type)
	}
	if r.Capacity != nil {
		m.Capacity = *r.Capacity
	}
	if r.LabCategory != nil {
		m.LabCategory = strings.TrimSpace(*r.LabCategory)
	}
	if r.PrimaryYear != nil {
		m.PrimaryYear = strings.TrimSpace(*r.PrimaryYear)
	}
	m.Normalize()
}

type RoomResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Department  string    `json:"department"`
	Type        string    `json:"type"`
	Capacity    int       `json:"capacity"`
	LabCategory string    `json:"lab_category"`
	PrimaryYear string    `json:"primary_year"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func ToRoomResponse(m model.RoomModel) RoomResponse {
	return RoomResponse{
		ID:          m.ID,
		Name:        m.Name,
		Department:  m.Department,
		Type:        m.Type,
		Capacity:    m.Capacity,
		LabCategory: m.LabCategory,
		PrimaryYear: m.PrimaryYear,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func ToRoomResponses(list []model.RoomModel) []RoomResponse {
	out := make([]RoomResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToRoomResponse(m))
	}
	return out
}
