package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"

	"timetable_backend/internals/features/timetables/timetable/model"
)

// memoryRepository: seluruh Upsert berjalan di bawah satu lock,
// padanan ON CONFLICT untuk mode tanpa database.
type memoryRepository struct {
	mu    sync.RWMutex
	byID  map[uuid.UUID]model.TimetableModel
	byKey map[model.Key]uuid.UUID
	now   func() time.Time
	last  time.Time // created_at terakhir, menjaga urutan strictly increasing
}

func NewMemoryRepository() Repository {
	return &memoryRepository{
		byID:  make(map[uuid.UUID]model.TimetableModel),
		byKey: make(map[model.Key]uuid.UUID),
		now:   time.Now,
	}
}

func (m *memoryRepository) Upsert(_ context.Context, in UpsertInput) (*model.TimetableModel, error) {
	key := in.Key.Normalize()

	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	var row model.TimetableModel
	base := model.DefaultTimeConfig()
	if id, ok := m.byKey[key]; ok {
		row = m.byID[id]
		stored, err := model.DecodeObject(row.TimeConfig)
		if err != nil {
			return nil, errors.Wrap(err, "decode stored time config")
		}
		base = stored
	} else {
		if !now.After(m.last) {
			now = m.last.Add(time.Nanosecond)
		}
		m.last = now
		row = model.TimetableModel{
			ID:         uuid.New(),
			Department: key.Department,
			Year:       key.Year,
			Division:   key.Division,
			CreatedAt:  now,
		}
	}

	cfg, err := model.EncodeObject(model.MergeTimeConfig(base, in.ConfigPatch))
	if err != nil {
		return nil, errors.Wrap(err, "encode time config")
	}
	row.TimeConfig = cfg
	row.TimetableData = append(datatypes.JSON(nil), dataOrEmpty(in.TimetableData)...)
	row.SavedByAdmin = in.SavedByAdmin
	row.SavedBy = nil
	if in.SavedBy != uuid.Nil {
		sb := in.SavedBy
		row.SavedBy = &sb
	}
	row.UpdatedAt = now

	m.byID[row.ID] = row
	m.byKey[key] = row.ID
	out := row
	return &out, nil
}

func (m *memoryRepository) FindByID(_ context.Context, id uuid.UUID) (*model.TimetableModel, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	t, ok := m.byID[id]
	if !ok {
		return nil, timetableNotFound()
	}
	return &t, nil
}

func (m *memoryRepository) FindByKey(_ context.Context, key model.Key) (*model.TimetableModel, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	id, ok := m.byKey[key.Normalize()]
	if !ok {
		return nil, timetableNotFound()
	}
	t := m.byID[id]
	return &t, nil
}

func (m *memoryRepository) sorted(match func(model.TimetableModel) bool) []model.TimetableModel {
	out := make([]model.TimetableModel, 0)
	for _, t := range m.byID {
		if match(t) {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func (m *memoryRepository) List(_ context.Context, f Filter) ([]model.TimetableModel, int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := m.sorted(func(t model.TimetableModel) bool {
		if f.Department != "" && t.Department != f.Department {
			return false
		}
		if f.Year != "" && t.Year != f.Year {
			return false
		}
		return f.Division == "" || t.Division == f.Division
	})
	total := int64(len(out))
	if f.Limit > 0 {
		if f.Offset >= len(out) {
			return []model.TimetableModel{}, total, nil
		}
		end := f.Offset + f.Limit
		if end > len(out) {
			end = len(out)
		}
		out = out[f.Offset:end]
	}
	return out, total, nil
}

func (m *memoryRepository) ListRecent(_ context.Context, department string, limit int) ([]model.TimetableModel, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if department == "" {
		return []model.TimetableModel{}, nil
	}
	out := m.sorted(func(t model.TimetableModel) bool { return t.Department == department })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memoryRepository) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.byID[id]
	if !ok {
		return timetableNotFound()
	}
	delete(m.byID, id)
	delete(m.byKey, t.Key())
	return nil
}
