package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"timetable_backend/internals/features/users/accounts/model"
	helper "timetable_backend/internals/helpers"
	helperAuth "timetable_backend/internals/helpers/auth"
)

type Filter struct {
	Department string // kosong = semua department (hanya superadmin)
	Role       string
	ActiveOnly bool
	Offset     int
	Limit      int
}

type Repository interface {
	Create(ctx context.Context, a *model.AccountModel) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.AccountModel, error)
	FindByEmail(ctx context.Context, email string) (*model.AccountModel, error)
	List(ctx context.Context, f Filter) ([]model.AccountModel, int64, error)
	Update(ctx context.Context, a *model.AccountModel) error
}

/* ====================== GORM ====================== */

type gormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) Create(ctx context.Context, a *model.AccountModel) error {
	a.Email = model.NormalizeEmail(a.Email)
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if err := r.db.WithContext(ctx).Create(a).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return duplicateEmail(a.Email)
		}
		return errors.Wrap(err, "create account")
	}
	return nil
}

func (r *gormRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.AccountModel, error) {
	var a model.AccountModel
	if err := r.db.WithContext(ctx).First(&a, "id = ?", id).Error; err != nil {
		if helper.IsNotFound(err) {
			return nil, helper.NotFoundError("account", "account not found")
		}
		return nil, errors.Wrap(err, "find account by id")
	}
	return &a, nil
}

func (r *gormRepository) FindByEmail(ctx context.Context, email string) (*model.AccountModel, error) {
	var a model.AccountModel
	if err := r.db.WithContext(ctx).Where("email = ?", model.NormalizeEmail(email)).First(&a).Error; err != nil {
		if helper.IsNotFound(err) {
			return nil, helper.NotFoundError("account", "account not found")
		}
		return nil, errors.Wrap(err, "find account by email")
	}
	return &a, nil
}

func (r *gormRepository) List(ctx context.Context, f Filter) ([]model.AccountModel, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.AccountModel{}).
		Scopes(helperAuth.ScopeDepartment("department", f.Department))
	if f.Role != "" {
		q = q.Where("role = ?", f.Role)
	}
	if f.ActiveOnly {
		q = q.Where("is_active = ?", true)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "count accounts")
	}
	if f.Limit > 0 {
		q = q.Offset(f.Offset).Limit(f.Limit)
	}
	var out []model.AccountModel
	if err := q.Order("name ASC").Find(&out).Error; err != nil {
		return nil, 0, errors.Wrap(err, "list accounts")
	}
	return out, total, nil
}

func (r *gormRepository) Update(ctx context.Context, a *model.AccountModel) error {
	res := r.db.WithContext(ctx).Model(&model.AccountModel{}).Where("id = ?", a.ID).Updates(map[string]any{
		"name":           a.Name,
		"department":     a.Department,
		"is_active":      a.IsActive,
		"subjects":       a.Subjects,
		"admission_year": a.AdmissionYear,
		"division":       a.Division,
		"batch":          a.Batch,
		"password":       a.Password,
	})
	if res.Error != nil {
		return errors.Wrap(res.Error, "update account")
	}
	if res.RowsAffected == 0 {
		return helper.NotFoundError("account", "account not found")
	}
	return nil
}

func duplicateEmail(email string) error {
	return helper.ConflictError(helper.CodeDuplicateEmail, "account", "email already registered").
		WithMeta("email", email)
}
