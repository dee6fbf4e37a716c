package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
)

// SubjectQualification: mata kuliah yang boleh diajar seorang teacher.
type SubjectQualification struct {
	Code       string `json:"code"`
	Name       string `json:"name"`
	Department string `json:"department"`
}

// AccountModel merepresentasikan tabel accounts
type AccountModel struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;column:id;default:gen_random_uuid()"`
	Email      string    `json:"email" gorm:"type:varchar(255);not null;uniqueIndex:uq_accounts_email;column:email"`
	Password   string    `json:"-" gorm:"type:text;not null;column:password"`
	Name       string    `json:"name" gorm:"type:varchar(150);not null;column:name"`
	Role       string    `json:"role" gorm:"type:varchar(20);not null;index;column:role"`
	Department *string   `json:"department,omitempty" gorm:"type:varchar(120);index;column:department"`
	IsActive   bool      `json:"is_active" gorm:"not null;default:true;column:is_active"`

	Subjects datatypes.JSONSlice[SubjectQualification] `json:"subjects" gorm:"type:jsonb;not null;default:'[]';column:subjects"`

	// akademik (student)
	AdmissionYear *int    `json:"admission_year,omitempty" gorm:"column:admission_year"`
	Division      *string `json:"division,omitempty" gorm:"type:varchar(20);column:division"`
	Batch         *string `json:"batch,omitempty" gorm:"type:varchar(20);column:batch"`

	// referensi lemah ke pembuat akun, bukan relasi kepemilikan
	CreatedBy *uuid.UUID `json:"created_by,omitempty" gorm:"type:uuid;column:created_by"`

	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at;autoUpdateTime"`
}

func (AccountModel) TableName() string { return "accounts" }

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (a *AccountModel) SetPassword(plain string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	a.Password = string(hash)
	return nil
}

func (a *AccountModel) CheckPassword(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(a.Password), []byte(plain)) == nil
}

func (a *AccountModel) DepartmentValue() string {
	if a.Department == nil {
		return ""
	}
	return *a.Department
}

func (a *AccountModel) DivisionValue() string {
	if a.Division == nil {
		return ""
	}
	return *a.Division
}

func (a *AccountModel) BatchValue() string {
	if a.Batch == nil {
		return ""
	}
	return *a.Batch
}
