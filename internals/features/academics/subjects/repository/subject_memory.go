package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"timetable_backend/internals/features/academics/subjects/model"
)

type memoryRepository struct {
	mu   sync.RWMutex
	byID map[uuid.UUID]model.SubjectModel
}

func NewMemoryRepository() Repository {
	return &memoryRepository{byID: make(map[uuid.UUID]model.SubjectModel)}
}

func sameKey(a, b *model.SubjectModel) bool {
	return a.Code == b.Code && a.Year == b.Year && a.Semester == b.Semester && a.Department == b.Department
}

func (m *memoryRepository) taken(s *model.SubjectModel) bool {
	for id, existing := range m.byID {
		if id != s.ID && sameKey(&existing, s) {
			return true
		}
	}
	return false
}

func (m *memoryRepository) Create(_ context.Context, s *model.SubjectModel) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.taken(s) {
		return duplicateSubject(s)
	}
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	now := time.Now()
	s.CreatedAt, s.UpdatedAt = now, now
	m.byID[s.ID] = cloneSubject(*s)
	return nil
}

func (m *memoryRepository) FindByID(_ context.Context, id uuid.UUID) (*model.SubjectModel, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.byID[id]
	if !ok {
		return nil, subjectNotFound()
	}
	s = cloneSubject(s)
	return &s, nil
}

func (m *memoryRepository) FindByUniqueKey(_ context.Context, code, year string, semester int, department string) (*model.SubjectModel, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	key := model.SubjectModel{Code: model.NormalizeCode(code), Year: year, Semester: semester, Department: department}
	for _, s := range m.byID {
		if sameKey(&s, &key) {
			s = cloneSubject(s)
			return &s, nil
		}
	}
	return nil, subjectNotFound()
}

func (m *memoryRepository) FindByCodes(_ context.Context, q CodesQuery) ([]model.SubjectModel, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	want := make(map[string]bool, len(q.Codes))
	for _, c := range q.Codes {
		want[model.NormalizeCode(c)] = true
	}
	year := model.NormalizeYear(q.Year)
	out := make([]model.SubjectModel, 0)
	if q.Department == "" {
		return out, nil
	}
	for _, s := range m.byID {
		if s.Department != q.Department || !want[s.Code] {
			continue
		}
		if year != "" && s.Year != year {
			continue
		}
		if q.Semester > 0 && s.Semester != q.Semester {
			continue
		}
		out = append(out, cloneSubject(s))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Code != out[j].Code {
			return out[i].Code < out[j].Code
		}
		return out[i].Semester < out[j].Semester
	})
	return out, nil
}

func (m *memoryRepository) List(_ context.Context, f Filter) ([]model.SubjectModel, int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	code := model.NormalizeCode(f.Code)
	out := make([]model.SubjectModel, 0)
	for _, s := range m.byID {
		if f.Department != "" && s.Department != f.Department {
			continue
		}
		if f.Year != "" && s.Year != f.Year {
			continue
		}
		if f.Semester > 0 && s.Semester != f.Semester {
			continue
		}
		if code != "" && s.Code != code {
			continue
		}
		out = append(out, cloneSubject(s))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year < out[j].Year
		}
		if out[i].Semester != out[j].Semester {
			return out[i].Semester < out[j].Semester
		}
		return out[i].Code < out[j].Code
	})
	total := int64(len(out))
	if f.Limit > 0 {
		if f.Offset >= len(out) {
			return []model.SubjectModel{}, total, nil
		}
		end := f.Offset + f.Limit
		if end > len(out) {
			end = len(out)
		}
		out = out[f.Offset:end]
	}
	return out, total, nil
}

func (m *memoryRepository) Update(_ context.Context, s *model.SubjectModel) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	existing, ok := m.byID[s.ID]
	if !ok {
		return subjectNotFound()
	}
	s.Department = existing.Department
	if m.taken(s) {
		return duplicateSubject(s)
	}
	s.CreatedAt = existing.CreatedAt
	s.UpdatedAt = time.Now()
	m.byID[s.ID] = cloneSubject(*s)
	return nil
}

func (m *memoryRepository) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byID[id]; !ok {
		return subjectNotFound()
	}
	delete(m.byID, id)
	return nil
}

// cloneSubject memutus aliasing slice components antara store dan pemanggil.
func cloneSubject(s model.SubjectModel) model.SubjectModel {
	s.Components = append([]model.Component(nil), s.Components...)
	return s
}
