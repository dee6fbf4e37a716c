package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"timetable_backend/internals/features/timetables/timetable/model"
)

// SaveTimetableRequest: bentuk body save-timetable (camelCase mengikuti klien scheduler).
type SaveTimetableRequest struct {
	Year          string         `json:"year" validate:"required,max=20"`
	Division      string         `json:"division" validate:"required,max=20"`
	Department    string         `json:"department" validate:"omitempty,max=120"` // hanya dipakai superadmin
	TimetableData datatypes.JSON `json:"timetableData"`
	TimeConfig    map[string]any `json:"timeConfig"`
}

func (r *SaveTimetableRequest) Normalize() {
	r.Year = strings.TrimSpace(r.Year)
	r.Division = strings.ToUpper(strings.TrimSpace(r.Division))
	r.Department = strings.TrimSpace(r.Department)
}

type TimetableResponse struct {
	ID            uuid.UUID      `json:"id"`
	Department    string         `json:"department"`
	Year          string         `json:"year"`
	Division      string         `json:"division"`
	TimetableData datatypes.JSON `json:"timetableData"`
	TimeConfig    datatypes.JSON `json:"timeConfig"`
	SavedBy       *uuid.UUID     `json:"savedBy,omitempty"`
	SavedByAdmin  string         `json:"savedByAdmin"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}

func ToTimetableResponse(m model.TimetableModel) TimetableResponse {
	return TimetableResponse{
		ID:            m.ID,
		Department:    m.Department,
		Year:          m.Year,
		Division:      m.Division,
		TimetableData: m.TimetableData,
		TimeConfig:    m.TimeConfig,
		SavedBy:       m.SavedBy,
		SavedByAdmin:  m.SavedByAdmin,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func ToTimetableResponses(list []model.TimetableModel) []TimetableResponse {
	out := make([]TimetableResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToTimetableResponse(m))
	}
	return out
}
