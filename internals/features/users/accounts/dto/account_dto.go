package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"timetable_backend/internals/features/users/accounts/model"
)

type SubjectQualificationDTO struct {
	Code       string `json:"code" validate:"required,max=30"`
	Name       string `json:"name" validate:"omitempty,max=150"`
	Department string `json:"department" validate:"omitempty,max=120"`
}

type CreateAccountRequest struct {
	Email      string                    `json:"email" validate:"required,email,max=255"`
	Password   string                    `json:"password" validate:"required,min=8,max=72"`
	Name       string                    `json:"name" validate:"required,max=150"`
	Role       string                    `json:"role" validate:"required,oneof=admin teacher student"`
	Department string                    `json:"department" validate:"omitempty,max=120"`
	Subjects   []SubjectQualificationDTO `json:"subjects" validate:"omitempty,dive"`

	AdmissionYear *int   `json:"admission_year" validate:"omitempty,min=1990,max=2100"`
	Division      string `json:"division" validate:"omitempty,max=20"`
	Batch         string `json:"batch" validate:"omitempty,max=20"`
}

func (r *CreateAccountRequest) Normalize() {
	r.Email = model.NormalizeEmail(r.Email)
	r.Name = strings.TrimSpace(r.Name)
	r.Role = strings.ToLower(strings.TrimSpace(r.Role))
	r.Department = strings.TrimSpace(r.Department)
	r.Division = strings.TrimSpace(r.Division)
	r.Batch = strings.TrimSpace(r.Batch)
}

// ToModel: password di-hash oleh service, bukan di sini.
func (r CreateAccountRequest) ToModel(createdBy uuid.UUID) model.AccountModel {
	m := model.AccountModel{
		Email:         r.Email,
		Name:          r.Name,
		Role:          r.Role,
		IsActive:      true,
		Department:    strPtr(r.Department),
		Subjects:      ToQualifications(r.Subjects, r.Department),
		AdmissionYear: r.AdmissionYear,
		Division:      strPtr(r.Division),
		Batch:         strPtr(r.Batch),
	}
	if createdBy != uuid.Nil {
		cb := createdBy
		m.CreatedBy = &cb
	}
	return m
}

type UpdateSubjectsRequest struct {
	Subjects []SubjectQualificationDTO `json:"subjects" validate:"dive"`
}

type SetActiveRequest struct {
	IsActive *bool `json:"is_active" validate:"required"`
}

// ToQualifications: department kosong diisi department pemilik akun, code di-uppercase.
func ToQualifications(in []SubjectQualificationDTO, department string) []model.SubjectQualification {
	out := make([]model.SubjectQualification, 0, len(in))
	for _, s := range in {
		dept := strings.TrimSpace(s.Department)
		if dept == "" {
			dept = department
		}
		out = append(out, model.SubjectQualification{
			Code:       strings.ToUpper(strings.TrimSpace(s.Code)),
			Name:       strings.TrimSpace(s.Name),
			Department: dept,
		})
	}
	return out
}

type AccountResponse struct {
	ID            uuid.UUID                    `json:"id"`
	Email         string                       `json:"email"`
	Name          string                       `json:"name"`
	Role          string                       `json:"role"`
	Department    string                       `json:"department,omitempty"`
	IsActive      bool                         `json:"is_active"`
	Subjects      []model.SubjectQualification `json:"subjects"`
	AdmissionYear *int                         `json:"admission_year,omitempty"`
	Division      string                       `json:"division,omitempty"`
	Batch         string                       `json:"batch,omitempty"`
	CreatedBy     *uuid.UUID                   `json:"created_by,omitempty"`
	CreatedAt     time.Time                    `json:"created_at"`
	UpdatedAt     time.Time                    `json:"updated_at"`
}

func ToAccountResponse(m model.AccountModel) AccountResponse {
	subjects := []model.SubjectQualification(m.Subjects)
	if subjects == nil {
		subjects = []model.SubjectQualification{}
	}
	return AccountResponse{
		ID:            m.ID,
		Email:         m.Email,
		Name:          m.Name,
		Role:          m.Role,
		Department:    m.DepartmentValue(),
		IsActive:      m.IsActive,
		Subjects:      subjects,
		AdmissionYear: m.AdmissionYear,
		Division:      m.DivisionValue(),
		Batch:         m.BatchValue(),
		CreatedBy:     m.CreatedBy,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func ToAccountResponses(list []model.AccountModel) []AccountResponse {
	out := make([]AccountResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToAccountResponse(m))
	}
	return out
}

func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
