// file: internals/features/academics/rooms/model/room_model.go
package model

import (
	"time"

	"github.com/google/uuid"

	"timetable_backend/internals/constants"
)

// RoomModel merepresentasikan tabel rooms. (name, department) unik.
type RoomModel struct {
	ID          uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey;column:id;default:gen_random_uuid()"`
	Name        string     `json:"name" gorm:"type:varchar(80);not null;uniqueIndex:uq_rooms_name_department,priority:1;column:name"`
	Department  string     `json:"department" gorm:"type:varchar(120);not null;uniqueIndex:uq_rooms_name_department,priority:2;index;column:department"`
	Type        string     `json:"type" gorm:"type:varchar(20);not null;column:type"`
	Capacity    int        `json:"capacity" gorm:"not null;check:chk_rooms_capacity,capacity > 0;column:capacity"`
	LabCategory string     `json:"lab_category" gorm:"type:varchar(60);not null;default:'None';column:lab_category"`
	PrimaryYear string     `json:"primary_year" gorm:"type:varchar(20);not null;default:'Shared';column:primary_year"`
	CreatedBy   *uuid.UUID `json:"created_by,omitempty" gorm:"type:uuid;column:created_by"`

	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at;autoUpdateTime"`
}

func (RoomModel) TableName() string { return "rooms" }

// NormalizeLabCategory: Lab tanpa kategori → default, Classroom selalu "None".
func NormalizeLabCategory(roomType, category string) string {
	switch roomType {
	case constants.RoomClassroom:
		return constants.LabCategoryNone
	case constants.RoomLab:
		if category == "" || category == constants.LabCategoryNone {
			return constants.LabCategoryDefault
		}
		return category
	default:
		if category == "" {
			return constants.LabCategoryNone
		}
		return category
	}
}

// Normalize menerapkan aturan kategori & default primary year.
func (r *RoomModel) Normalize() {
	r.LabCategory = NormalizeLabCategory(r.Type, r.LabCategory)
	if r.PrimaryYear == "" {
		r.PrimaryYear = constants.YearShared
	}
}
