package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"timetable_backend/internals/features/academics/rooms/model"
)

type memoryRepository struct {
	mu   sync.RWMutex
	byID map[uuid.UUID]model.RoomModel
}

func NewMemoryRepository() Repository {
	return &memoryRepository{byID: make(map[uuid.UUID]model.RoomModel)}
}

// taken: harus dipanggil dengan lock dipegang.
func (m *memoryRepository) taken(name, department string, except uuid.UUID) bool {
	for id, r := range m.byID {
		if id != except && r.Name == name && r.Department == department {
			return true
		}
	}
	return false
}

func (m *memoryRepository) Create(_ context.Context, r *model.RoomModel) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.taken(r.Name, r.Department, uuid.Nil) {
		return duplicateName(r.Name, r.Department)
	}
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	now := time.Now()
	r.CreatedAt, r.UpdatedAt = now, now
	m.byID[r.ID] = *r
	return nil
}

func (m *memoryRepository) FindByID(_ context.Context, id uuid.UUID) (*model.RoomModel, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.byID[id]
	if !ok {
		return nil, roomNotFound()
	}
	return &r, nil
}

func (m *memoryRepository) FindByUniqueKey(_ context.Context, name, department string) (*model.RoomModel, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, r := range m.byID {
		if r.Name == name && r.Department == department {
			return &r, nil
		}
	}
	return nil, roomNotFound()
}

func (m *memoryRepository) List(_ context.Context, f Filter) ([]model.RoomModel, int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]model.RoomModel, 0)
	for _, r := range m.byID {
		if f.Department != "" && r.Department != f.Department {
			continue
		}
		if f.Type != "" && r.Type != f.Type {
			continue
		}
		if f.PrimaryYear != "" && r.PrimaryYear != f.PrimaryYear {
			continue
		}
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	total := int64(len(out))
	if f.Limit > 0 {
		if f.Offset >= len(out) {
			return []model.RoomModel{}, total, nil
		}
		end := f.Offset + f.Limit
		if end > len(out) {
			end = len(out)
		}
		out = out[f.Offset:end]
	}
	return out, total, nil
}

func (m *memoryRepository) Update(_ context.Context, r *model.RoomModel) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	existing, ok := m.byID[r.ID]
	if !ok {
		return roomNotFound()
	}
	if m.taken(r.Name, existing.Department, r.ID) {
		return duplicateName(r.Name, existing.Department)
	}
	r.Department = existing.Department
	r.CreatedAt = existing.CreatedAt
	r.UpdatedAt = time.Now()
	m.byID[r.ID] = *r
	return nil
}

func (m *memoryRepository) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byID[id]; !ok {
		return roomNotFound()
	}
	delete(m.byID, id)
	return nil
}
