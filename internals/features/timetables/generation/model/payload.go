// file: internals/features/timetables/generation/model/payload.go
package model

import (
	"time"

	"gorm.io/datatypes"

	subjectModel "timetable_backend/internals/features/academics/subjects/model"
)

// SchedulingPayload adalah body POST /generate ke solver.
type SchedulingPayload struct {
	Years           map[string]YearPayload `json:"years"`
	Rooms           []RoomPayload          `json:"rooms"`
	Teachers        []TeacherPayload       `json:"teachers"`
	SavedTimetables []SavedTimetable       `json:"saved_timetables"`
	RoomMappings    map[string]any         `json:"roomMappings"`
}

// YearPayload: konfigurasi satu tahun akademik, subjects sudah diratakan menjadi unit.
type YearPayload struct {
	Semester  int                 `json:"semester,omitempty"`
	Divisions []string            `json:"divisions"`
	Options   map[string]any      `json:"options,omitempty"`
	Subjects  []subjectModel.Unit `json:"subjects"`
}

type RoomPayload struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Capacity    int    `json:"capacity"`
	LabCategory string `json:"labCategory"`
	PrimaryYear string `json:"primaryYear"`
}

type TeacherSubject struct {
	Code string `json:"code"`
	Name string `json:"name,omitempty"`
}

type TeacherPayload struct {
	ID         string           `json:"id,omitempty"`
	Name       string           `json:"name"`
	Email      string           `json:"email,omitempty"`
	Department string           `json:"department"`
	Subjects   []TeacherSubject `json:"subjects"`
}

type SavedTimetable struct {
	Year          string         `json:"year"`
	Division      string         `json:"division"`
	TimetableData datatypes.JSON `json:"timetableData"`
	TimeConfig    datatypes.JSON `json:"timeConfig"`
	CreatedAt     time.Time      `json:"createdAt"`
}
