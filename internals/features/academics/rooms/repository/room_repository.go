package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"timetable_backend/internals/features/academics/rooms/model"
	helper "timetable_backend/internals/helpers"
	helperAuth "timetable_backend/internals/helpers/auth"
)

type Filter struct {
	Department  string // kosong = semua (hanya superadmin)
	Type        string
	PrimaryYear string
	Offset      int
	Limit       int
}

type Repository interface {
	Create(ctx context.Context, r *model.RoomModel) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.RoomModel, error)
	FindByUniqueKey(ctx context.Context, name, department string) (*model.RoomModel, error)
	List(ctx context.Context, f Filter) ([]model.RoomModel, int64, error)
	Update(ctx context.Context, r *model.RoomModel) error
	Delete(ctx context.Context, id uuid.UUID) error
}

func duplicateName(name, department string) error {
	return helper.ConflictError(helper.CodeDuplicateName, "room",
		"a room with this name already exists in the department").
		WithMeta("name", name).
		WithMeta("department", department)
}

func roomNotFound() error { return helper.NotFoundError("room", "room not found") }

/* ====================== GORM ====================== */

type gormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (g *gormRepository) Create(ctx context.Context, r *model.RoomModel) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	if err := g.db.WithContext(ctx).Create(r).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return duplicateName(r.Name, r.Department)
		}
		return errors.Wrap(err, "create room")
	}
	return nil
}

func (g *gormRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.RoomModel, error) {
	var r model.RoomModel
	if err := g.db.WithContext(ctx).First(&r, "id = ?", id).Error; err != nil {
		if helper.IsNotFound(err) {
			return nil, roomNotFound()
		}
		return nil, errors.Wrap(err, "find room")
	}
	return &r, nil
}

func (g *gormRepository) FindByUniqueKey(ctx context.Context, name, department string) (*model.RoomModel, error) {
	var r model.RoomModel
	err := g.db.WithContext(ctx).
		Where("name = ? AND department = ?", name, department).
		First(&r).Error
	if err != nil {
		if helper.IsNotFound(err) {
			return nil, roomNotFound()
		}
		return nil, errors.Wrap(err, "find room by key")
	}
	return &r, nil
}

func (g *gormRepository) List(ctx context.Context, f Filter) ([]model.RoomModel, int64, error) {
	q := g.db.WithContext(ctx).Model(&model.RoomModel{}).
		Scopes(helperAuth.ScopeDepartment("department", f.Department))
	if f.Type != "" {
		q = q.Where("type = ?", f.Type)
	}
	if f.PrimaryYear != "" {
		q = q.Where("primary_year = ?", f.PrimaryYear)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "count rooms")
	}
	if f.Limit > 0 {
		q = q.Offset(f.Offset).Limit(f.Limit)
	}
	var out []model.RoomModel
	if err := q.Order("name ASC").Find(&out).Error; err != nil {
		return nil, 0, errors.Wrap(err, "list rooms")
	}
	return out, total, nil
}

func (g *gormRepository) Update(ctx context.Context, r *model.RoomModel) error {
	res := g.db.WithContext(ctx).Model(&model.RoomModel{}).Where("id = ?", r.ID).Updates(map[string]any{
		"name":         r.Name,
		"type":         r.Type,
		"capacity":     r.Capacity,
		"lab_category": r.LabCategory,
		"primary_year": r.PrimaryYear,
	})
	if res.Error != nil {
		if helper.IsUniqueViolation(res.Error) {
			return duplicateName(r.Name, r.Department)
		}
		return errors.Wrap(res.Error, "update room")
	}
	if res.RowsAffected == 0 {
		return roomNotFound()
	}
	return nil
}

// Delete: hard delete, tanpa cascade ke timetable yang menyimpan nama room.
func (g *gormRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := g.db.WithContext(ctx).Delete(&model.RoomModel{}, "id = ?", id)
	if res.Error != nil {
		return errors.Wrap(res.Error, "delete room")
	}
	if res.RowsAffected == 0 {
		return roomNotFound()
	}
	return nil
}
