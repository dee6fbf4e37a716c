package repository

import (
	"context"
	"strconv"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"timetable_backend/internals/features/academics/subjects/model"
	helper "timetable_backend/internals/helpers"
	helperAuth "timetable_backend/internals/helpers/auth"
)

type Filter struct {
	Department string // kosong = semua (hanya superadmin)
	Year       string
	Semester   int
	Code       string
	Offset     int
	Limit      int
}

// CodesQuery: subject dengan code di Codes pada satu department dan satu year.
// Year kosong = semua year, Semester 0 = semua semester.
type CodesQuery struct {
	Department string
	Year       string
	Codes      []string
	Semester   int
}

type Repository interface {
	Create(ctx context.Context, s *model.SubjectModel) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.SubjectModel, error)
	FindByUniqueKey(ctx context.Context, code, year string, semester int, department string) (*model.SubjectModel, error)
	FindByCodes(ctx context.Context, q CodesQuery) ([]model.SubjectModel, error)
	List(ctx context.Context, f Filter) ([]model.SubjectModel, int64, error)
	Update(ctx context.Context, s *model.SubjectModel) error
	Delete(ctx context.Context, id uuid.UUID) error
}

func duplicateSubject(s *model.SubjectModel) error {
	return helper.ConflictError(helper.CodeDuplicateSubject, "subject",
		"subject with this code, year and semester already exists in the department").
		WithMeta("code", s.Code).
		WithMeta("year", s.Year).
		WithMeta("semester", strconv.Itoa(s.Semester)).
		WithMeta("department", s.Department)
}

func subjectNotFound() error { return helper.NotFoundError("subject", "subject not found") }

/* ====================== GORM ====================== */

type gormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (g *gormRepository) Create(ctx context.Context, s *model.SubjectModel) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if err := g.db.WithContext(ctx).Create(s).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return duplicateSubject(s)
		}
		return errors.Wrap(err, "create subject")
	}
	return nil
}

func (g *gormRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.SubjectModel, error) {
	var s model.SubjectModel
	if err := g.db.WithContext(ctx).First(&s, "id = ?", id).Error; err != nil {
		if helper.IsNotFound(err) {
			return nil, subjectNotFound()
		}
		return nil, errors.Wrap(err, "find subject")
	}
	return &s, nil
}

func (g *gormRepository) FindByUniqueKey(ctx context.Context, code, year string, semester int, department string) (*model.SubjectModel, error) {
	var s model.SubjectModel
	err := g.db.WithContext(ctx).
		Where("code = ? AND year = ? AND semester = ? AND department = ?", model.NormalizeCode(code), year, semester, department).
		First(&s).Error
	if err != nil {
		if helper.IsNotFound(err) {
			return nil, subjectNotFound()
		}
		return nil, errors.Wrap(err, "find subject by key")
	}
	return &s, nil
}

// FindByCodes selalu dibatasi department supaya code yang sama di department lain tidak ikut.
func (g *gormRepository) FindByCodes(ctx context.Context, q CodesQuery) ([]model.SubjectModel, error) {
	out := make([]model.SubjectModel, 0)
	if len(q.Codes) == 0 || q.Department == "" {
		return out, nil
	}
	codes := make([]string, 0, len(q.Codes))
	for _, c := range q.Codes {
		codes = append(codes, model.NormalizeCode(c))
	}
	tx := g.db.WithContext(ctx).
		Where("department = ?", q.Department).
		Where("code = ANY(?)", pq.Array(codes))
	if year := model.NormalizeYear(q.Year); year != "" {
		tx = tx.Where("year = ?", year)
	}
	if q.Semester > 0 {
		tx = tx.Where("semester = ?", q.Semester)
	}
	if err := tx.Order("code ASC, semester ASC").Find(&out).Error; err != nil {
		return nil, errors.Wrap(err, "find subjects by codes")
	}
	return out, nil
}

func (g *gormRepository) List(ctx context.Context, f Filter) ([]model.SubjectModel, int64, error) {
	q := g.db.WithContext(ctx).Model(&model.SubjectModel{}).
		Scopes(helperAuth.ScopeDepartment("department", f.Department))
	if f.Year != "" {
		q = q.Where("year = ?", f.Year)
	}
	if f.Semester > 0 {
		q = q.Where("semester = ?", f.Semester)
	}
	if f.Code != "" {
		q = q.Where("code = ?", model.NormalizeCode(f.Code))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "count subjects")
	}
	if f.Limit > 0 {
		q = q.Offset(f.Offset).Limit(f.Limit)
	}
	var out []model.SubjectModel
	if err := q.Order("year ASC, semester ASC, code ASC").Find(&out).Error; err != nil {
		return nil, 0, errors.Wrap(err, "list subjects")
	}
	return out, total, nil
}

func (g *gormRepository) Update(ctx context.Context, s *model.SubjectModel) error {
	res := g.db.WithContext(ctx).Model(&model.SubjectModel{}).Where("id = ?", s.ID).Updates(map[string]any{
		"code":       s.Code,
		"name":       s.Name,
		"year":       s.Year,
		"semester":   s.Semester,
		"components": s.Components,
	})
	if res.Error != nil {
		if helper.IsUniqueViolation(res.Error) {
			return duplicateSubject(s)
		}
		return errors.Wrap(res.Error, "update subject")
	}
	if res.RowsAffected == 0 {
		return subjectNotFound()
	}
	return nil
}

// Delete: hard delete; code yang tersimpan di timetable_data tidak ikut dibersihkan.
func (g *gormRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := g.db.WithContext(ctx).Delete(&model.SubjectModel{}, "id = ?", id)
	if res.Error != nil {
		return errors.Wrap(res.Error, "delete subject")
	}
	if res.RowsAffected == 0 {
		return subjectNotFound()
	}
	return nil
}
