// file: internals/features/academics/subjects/model/subject_model.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// SubjectModel merepresentasikan tabel subjects.
// (code, year, semester, department) unik.
type SubjectModel struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;column:id;default:gen_random_uuid()"`
	Code       string    `json:"code" gorm:"type:varchar(30);not null;uniqueIndex:uq_subjects_key,priority:1;column:code"`
	Name       string    `json:"name" gorm:"type:varchar(150);not null;column:name"`
	Year       string    `json:"year" gorm:"type:varchar(10);not null;uniqueIndex:uq_subjects_key,priority:2;column:year"`
	Semester   int       `json:"semester" gorm:"not null;uniqueIndex:uq_subjects_key,priority:3;column:semester"`
	Department string    `json:"department" gorm:"type:varchar(120);not null;uniqueIndex:uq_subjects_key,priority:4;index;column:department"`

	Components datatypes.JSONSlice[Component] `json:"components" gorm:"type:jsonb;not null;default:'[]';column:components"`

	CreatedBy *uuid.UUID `json:"created_by,omitempty" gorm:"type:uuid;column:created_by"`
	CreatedAt time.Time  `json:"created_at" gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time  `json:"updated_at" gorm:"column:updated_at;autoUpdateTime"`
}

func (SubjectModel) TableName() string { return "subjects" }

func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// NormalizeYear: "1st Year" / "1ST" / " 1st " -> "1st", bentuk yang disimpan di kolom year.
func NormalizeYear(year string) string {
	y := strings.ToLower(strings.TrimSpace(year))
	y = strings.TrimSpace(strings.TrimSuffix(y, "year"))
	return y
}
