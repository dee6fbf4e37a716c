// file: internals/features/timetables/timetable/model/timetable_model.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// TimetableModel merepresentasikan tabel timetables.
// Paling banyak satu baris per (year, division, department).
type TimetableModel struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;column:id;default:gen_random_uuid()"`
	Department string    `json:"department" gorm:"type:varchar(120);not null;uniqueIndex:uq_timetables_key,priority:3;index:idx_timetables_dept_created,priority:1;column:department"`
	Year       string    `json:"year" gorm:"type:varchar(20);not null;uniqueIndex:uq_timetables_key,priority:1;column:year"`
	Division   string    `json:"division" gorm:"type:varchar(20);not null;uniqueIndex:uq_timetables_key,priority:2;column:division"`

	TimetableData datatypes.JSON `json:"timetable_data" gorm:"type:jsonb;not null;default:'{}';column:timetable_data"`
	TimeConfig    datatypes.JSON `json:"time_config" gorm:"type:jsonb;not null;default:'{}';column:time_config"`

	SavedBy      *uuid.UUID `json:"saved_by,omitempty" gorm:"type:uuid;column:saved_by"`
	SavedByAdmin string     `json:"saved_by_admin" gorm:"type:varchar(150);column:saved_by_admin"`

	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;autoCreateTime;index:idx_timetables_dept_created,priority:2,sort:desc"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at;autoUpdateTime"`
}

func (TimetableModel) TableName() string { return "timetables" }

// Key adalah kunci unik sebuah timetable.
type Key struct {
	Year       string
	Division   string
	Department string
}

func (k Key) Normalize() Key {
	return Key{
		Year:       strings.TrimSpace(k.Year),
		Division:   strings.ToUpper(strings.TrimSpace(k.Division)),
		Department: strings.TrimSpace(k.Department),
	}
}

func (t TimetableModel) Key() Key {
	return Key{Year: t.Year, Division: t.Division, Department: t.Department}
}
