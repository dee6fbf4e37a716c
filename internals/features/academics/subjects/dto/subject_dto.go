package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"timetable_backend/internals/features/academics/subjects/model"
)

type ComponentRequest struct {
	Type        string `json:"type" validate:"required,oneof=Theory Lab Tutorial"`
	Hours       int    `json:"hours" validate:"required,gt=0,lte=40"`
	Batches     int    `json:"batches" validate:"omitempty,gt=0,lte=10"`
	LabDuration int    `json:"labDuration" validate:"omitempty,gt=0,lte=8"`
}

func (c ComponentRequest) ToModel() model.Component {
	return model.Component{
		Type:        strings.TrimSpace(c.Type),
		Hours:       c.Hours,
		Batches:     c.Batches,
		LabDuration: c.LabDuration,
	}.WithDefaults()
}

func toComponents(in []ComponentRequest) []model.Component {
	out := make([]model.Component, 0, len(in))
	for _, c := range in {
		out = append(out, c.ToModel())
	}
	return out
}

type CreateSubjectRequest struct {
	Code       string             `json:"code" validate:"required,max=30"`
	Name       string             `json:"name" validate:"required,max=150"`
	Year       string             `json:"year" validate:"required,oneof=1st 2nd 3rd 4th"`
	Semester   int                `json:"semester" validate:"required,gte=1,lte=8"`
	Department string             `json:"department" validate:"omitempty,max=120"` // hanya dipakai superadmin
	Components []ComponentRequest `json:"components" validate:"dive"`
}

func (r *CreateSubjectRequest) Normalize() {
	r.Code = model.NormalizeCode(r.Code)
	r.Name = strings.TrimSpace(r.Name)
	r.Year = strings.TrimSpace(r.Year)
	r.Department = strings.TrimSpace(r.Department)
}

func (r CreateSubjectRequest) ToModel(department string, createdBy uuid.UUID) model.SubjectModel {
	m := model.SubjectModel{
		Code:       r.Code,
		Name:       r.Name,
		Year:       r.Year,
		Semester:   r.Semester,
		Department: department,
		Components: toComponents(r.Components),
	}
	if createdBy != uuid.Nil {
		cb := createdBy
		m.CreatedBy = &cb
	}
	return m
}

// UpdateSubjectRequest: components bila dikirim menggantikan seluruh daftar.
type UpdateSubjectRequest struct {
	Code       *string             `json:"code" validate:"omitempty,min=1,max=30"`
	Name       *string             `json:"name" validate:"omitempty,min=1,max=150"`
	Year       *string             `json:"year" validate:"omitempty,oneof=1st 2nd 3rd 4th"`
	Semester   *int                `json:"semester" validate:"omitempty,gte=1,lte=8"`
	Components *[]ComponentRequest `json:"components" validate:"omitempty,dive"`
}

func (r UpdateSubjectRequest) ApplyPatch(m *model.SubjectModel) {
	if r.Code != nil {
		m.Code = model.NormalizeCode(*r.Code)
	}
	if r.Name != nil {
		m.Name = strings.TrimSpace(*r.Name)
	}
	if r.Year != nil {
		m.Year = strings.TrimSpace(*r.Year)
	}
	if r.Semester != nil {
		m.Semester = *r.Semester
	}
	if r.Components != nil {
		m.Components = toComponents(*r.Components)
	}
}

type SubjectResponse struct {
	ID         uuid.UUID         `json:"id"`
	Code       string            `json:"code"`
	Name       string            `json:"name"`
	Year       string            `json:"year"`
	Semester   int               `json:"semester"`
	Department string            `json:"department"`
	Components []model.Component `json:"components"`
	TotalHours int               `json:"total_hours"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

func ToSubjectResponse(m model.SubjectModel) SubjectResponse {
	comps := append([]model.Component{}, m.Components...)
	total := 0
	for _, c := range comps {
		total += c.Hours
	}
	return SubjectResponse{
		ID:         m.ID,
		Code:       m.Code,
		Name:       m.Name,
		Year:       m.Year,
		Semester:   m.Semester,
		Department: m.Department,
		Components: comps,
		TotalHours: total,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func ToSubjectResponses(list []model.SubjectModel) []SubjectResponse {
	out := make([]SubjectResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToSubjectResponse(m))
	}
	return out
}
