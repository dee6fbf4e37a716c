package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"timetable_backend/internals/features/timetables/timetable/model"
	helper "timetable_backend/internals/helpers"
	helperAuth "timetable_backend/internals/helpers/auth"
)

type Filter struct {
	Department string // kosong = semua (hanya superadmin)
	Year       string
	Division   string
	Offset     int
	Limit      int
}

// UpsertInput: timetable_data diganti utuh, ConfigPatch di-merge ke time_config yang tersimpan.
type UpsertInput struct {
	Key           model.Key
	TimetableData datatypes.JSON
	ConfigPatch   map[string]any
	SavedBy       uuid.UUID
	SavedByAdmin  string
}

type Repository interface {
	Upsert(ctx context.Context, in UpsertInput) (*model.TimetableModel, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.TimetableModel, error)
	FindByKey(ctx context.Context, key model.Key) (*model.TimetableModel, error)
	List(ctx context.Context, f Filter) ([]model.TimetableModel, int64, error)
	ListRecent(ctx context.Context, department string, limit int) ([]model.TimetableModel, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

func timetableNotFound() error { return helper.NotFoundError("timetable", "timetable not found") }

func dataOrEmpty(raw datatypes.JSON) datatypes.JSON {
	if len(raw) == 0 || string(raw) == "null" {
		return datatypes.JSON("{}")
	}
	return raw
}

/* ====================== GORM ====================== */

type gormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

// Upsert memakai satu statement INSERT .. ON CONFLICT sehingga penulis konkuren
// pada key yang sama tidak pernah menghasilkan dua baris. Penulis terakhir menang.
func (g *gormRepository) Upsert(ctx context.Context, in UpsertInput) (*model.TimetableModel, error) {
	key := in.Key.Normalize()
	insertCfg, err := model.EncodeObject(model.MergeTimeConfig(model.DefaultTimeConfig(), in.ConfigPatch))
	if err != nil {
		return nil, errors.Wrap(err, "encode time config")
	}
	patch, err := model.EncodeObject(in.ConfigPatch)
	if err != nil {
		return nil, errors.Wrap(err, "encode time config patch")
	}

	row := model.TimetableModel{
		ID:            uuid.New(),
		Department:    key.Department,
		Year:          key.Year,
		Division:      key.Division,
		TimetableData: dataOrEmpty(in.TimetableData),
		TimeConfig:    insertCfg,
		SavedByAdmin:  in.SavedByAdmin,
	}
	if in.SavedBy != uuid.Nil {
		sb := in.SavedBy
		row.SavedBy = &sb
	}

	updates := clause.AssignmentColumns([]string{"timetable_data", "saved_by", "saved_by_admin", "updated_at"})
	updates = append(updates, clause.Assignment{
		Column: clause.Column{Name: "time_config"},
		Value:  gorm.Expr("COALESCE(timetables.time_config, '{}'::jsonb) || ?::jsonb", string(patch)),
	})

	var out model.TimetableModel
	err = g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "year"}, {Name: "division"}, {Name: "department"}},
			DoUpdates: updates,
		}).Create(&row).Error; err != nil {
			return err
		}
		return tx.Where("year = ? AND division = ? AND department = ?", key.Year, key.Division, key.Department).
			First(&out).Error
	})
	if err != nil {
		return nil, errors.Wrap(err, "upsert timetable")
	}
	return &out, nil
}

func (g *gormRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.TimetableModel, error) {
	var t model.TimetableModel
	if err := g.db.WithContext(ctx).First(&t, "id = ?", id).Error; err != nil {
		if helper.IsNotFound(err) {
			return nil, timetableNotFound()
		}
		return nil, errors.Wrap(err, "find timetable")
	}
	return &t, nil
}

func (g *gormRepository) FindByKey(ctx context.Context, key model.Key) (*model.TimetableModel, error) {
	key = key.Normalize()
	var t model.TimetableModel
	err := g.db.WithContext(ctx).
		Where("year = ? AND division = ? AND department = ?", key.Year, key.Division, key.Department).
		First(&t).Error
	if err != nil {
		if helper.IsNotFound(err) {
			return nil, timetableNotFound()
		}
		return nil, errors.Wrap(err, "find timetable by key")
	}
	return &t, nil
}

func (g *gormRepository) List(ctx context.Context, f Filter) ([]model.TimetableModel, int64, error) {
	q := g.db.WithContext(ctx).Model(&model.TimetableModel{}).
		Scopes(helperAuth.ScopeDepartment("department", f.Department))
	if f.Year != "" {
		q = q.Where("year = ?", f.Year)
	}
	if f.Division != "" {
		q = q.Where("division = ?", f.Division)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "count timetables")
	}
	if f.Limit > 0 {
		q = q.Offset(f.Offset).Limit(f.Limit)
	}
	var out []model.TimetableModel
	if err := q.Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, 0, errors.Wrap(err, "list timetables")
	}
	return out, total, nil
}

func (g *gormRepository) ListRecent(ctx context.Context, department string, limit int) ([]model.TimetableModel, error) {
	out := make([]model.TimetableModel, 0)
	if department == "" {
		return out, nil
	}
	err := g.db.WithContext(ctx).
		Where("department = ?", department).
		Order("created_at DESC").
		Limit(limit).
		Find(&out).Error
	if err != nil {
		return nil, errors.Wrap(err, "list recent timetables")
	}
	return out, nil
}

func (g *gormRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := g.db.WithContext(ctx).Delete(&model.TimetableModel{}, "id = ?", id)
	if res.Error != nil {
		return errors.Wrap(res.Error, "delete timetable")
	}
	if res.RowsAffected == 0 {
		return timetableNotFound()
	}
	return nil
}
