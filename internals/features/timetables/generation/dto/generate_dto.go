package dto

import (
	"strings"

	subjectModel "timetable_backend/internals/features/academics/subjects/model"
	"timetable_backend/internals/features/timetables/generation/model"
)

type YearRequest struct {
	Subjects  []string       `json:"subjects" validate:"omitempty,dive,required,max=30"`
	Semester  int            `json:"semester" validate:"omitempty,gte=1,lte=8"`
	Divisions []string       `json:"divisions" validate:"omitempty,dive,required,max=20"`
	Options   map[string]any `json:"options"`
}

// Codes: code unik, uppercase, urutan pertama kali muncul.
func (y YearRequest) Codes() []string {
	seen := make(map[string]bool, len(y.Subjects))
	out := make([]string, 0, len(y.Subjects))
	for _, c := range y.Subjects {
		c = subjectModel.NormalizeCode(c)
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}

type TeacherSubjectRequest struct {
	Code string `json:"code" validate:"required,max=30"`
	Name string `json:"name" validate:"omitempty,max=150"`
}

type TeacherRequest struct {
	ID       string                  `json:"id" validate:"omitempty,max=64"`
	Name     string                  `json:"name" validate:"required,max=150"`
	Email    string                  `json:"email" validate:"omitempty,email"`
	Subjects []TeacherSubjectRequest `json:"subjects" validate:"omitempty,dive"`
}

// ToPayload: department selalu milik principal, bukan dari body.
func (t TeacherRequest) ToPayload(department string) model.TeacherPayload {
	subs := make([]model.TeacherSubject, 0, len(t.Subjects))
	for _, s := range t.Subjects {
		subs = append(subs, model.TeacherSubject{
			Code: subjectModel.NormalizeCode(s.Code),
			Name: strings.TrimSpace(s.Name),
		})
	}
	return model.TeacherPayload{
		ID:         strings.TrimSpace(t.ID),
		Name:       strings.TrimSpace(t.Name),
		Email:      strings.TrimSpace(t.Email),
		Department: department,
		Subjects:   subs,
	}
}

// GenerateRequest: body generate-timetable. Department tidak diterima dari klien.
type GenerateRequest struct {
	Years        map[string]YearRequest `json:"years" validate:"required,min=1,dive"`
	RoomMappings map[string]any         `json:"roomMappings"`
	Teachers     []TeacherRequest       `json:"teachers" validate:"omitempty,dive"`
}
