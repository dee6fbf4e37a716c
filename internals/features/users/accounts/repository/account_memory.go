package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"timetable_backend/internals/features/users/accounts/model"
	helper "timetable_backend/internals/helpers"
)

// memoryRepository menyimpan akun di memori (DB_DRIVER=memory & test).
type memoryRepository struct {
	mu   sync.RWMutex
	byID map[uuid.UUID]model.AccountModel
}

func NewMemoryRepository() Repository {
	return &memoryRepository{byID: make(map[uuid.UUID]model.AccountModel)}
}

func (r *memoryRepository) Create(_ context.Context, a *model.AccountModel) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a.Email = model.NormalizeEmail(a.Email)
	for _, existing := range r.byID {
		if existing.Email == a.Email {
			return duplicateEmail(a.Email)
		}
	}
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	now := time.Now()
	a.CreatedAt, a.UpdatedAt = now, now
	r.byID[a.ID] = *a
	return nil
}

func (r *memoryRepository) FindByID(_ context.Context, id uuid.UUID) (*model.AccountModel, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.byID[id]
	if !ok {
		return nil, helper.NotFoundError("account", "account not found")
	}
	return &a, nil
}

func (r *memoryRepository) FindByEmail(_ context.Context, email string) (*model.AccountModel, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	email = model.NormalizeEmail(email)
	for _, a := range r.byID {
		if a.Email == email {
			return &a, nil
		}
	}
	return nil, helper.NotFoundError("account", "account not found")
}

func (r *memoryRepository) List(_ context.Context, f Filter) ([]model.AccountModel, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.AccountModel, 0)
	for _, a := range r.byID {
		if f.Department != "" && a.DepartmentValue() != f.Department {
			continue
		}
		if f.Role != "" && a.Role != f.Role {
			continue
		}
		if f.ActiveOnly && !a.IsActive {
			continue
		}
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	total := int64(len(out))
	if f.Limit > 0 {
		if f.Offset >= len(out) {
			return []model.AccountModel{}, total, nil
		}
		end := f.Offset + f.Limit
		if end > len(out) {
			end = len(out)
		}
		out = out[f.Offset:end]
	}
	return out, total, nil
}

func (r *memoryRepository) Update(_ context.Context, a *model.AccountModel) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.byID[a.ID]
	if !ok {
		return helper.NotFoundError("account", "account not found")
	}
	a.Email = existing.Email
	a.CreatedAt = existing.CreatedAt
	a.UpdatedAt = time.Now()
	r.byID[a.ID] = *a
	return nil
}
