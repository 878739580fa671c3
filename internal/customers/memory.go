package customers

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"
)

// MemoryRepository is an in-process Repository. It enforces email uniqueness
// the way the database constraint does and never hands out internal pointers.
type MemoryRepository struct {
	mu     sync.RWMutex
	rows   map[int64]Customer
	nextID int64
	now    func() time.Time
}

// NewMemoryRepository returns an empty MemoryRepository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		rows:   make(map[int64]Customer),
		nextID: 1,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (m *MemoryRepository) FindAll(ctx context.Context, q ListCustomersQuery) (Page, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	needle := strings.ToLower(strings.TrimSpace(q.Search))
	matched := make([]Customer, 0, len(m.rows))
	for _, c := range m.rows {
		if needle != "" &&
			!strings.Contains(strings.ToLower(c.CompanyName), needle) &&
			!strings.Contains(strings.ToLower(c.ContactName), needle) {
			continue
		}
		matched = append(matched, c)
	}

	sort.Slice(matched, func(i, j int) bool {
		a, b := matched[i], matched[j]
		cmp := compareBy(q.Sort, a, b)
		if q.Order == OrderDesc {
			cmp = -cmp
		}
		if cmp != 0 {
			return cmp < 0
		}
		return a.ID < b.ID
	})

	total := len(matched)
	start := min(max(q.Offset(), 0), total)
	end := min(start+max(q.Limit, 0), total)

	data := make([]Customer, 0, end-start)
	for _, c := range matched[start:end] {
		data = append(data, clone(c))
	}
	return Page{Data: data, Pagination: NewPagination(q.Page, q.Limit, total)}, nil
}

func (m *MemoryRepository) FindByID(ctx context.Context, id int64) (*Customer, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	c, ok := m.rows[id]
	if !ok {
		return nil, nil
	}
	out := clone(c)
	return &out, nil
}

func (m *MemoryRepository) FindByEmail(ctx context.Context, email string) (*Customer, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, c := range m.rows {
		if c.Email == email {
			out := clone(c)
			return &out, nil
		}
	}
	return nil, nil
}

func (m *MemoryRepository) Create(ctx context.Context, nc NewCustomer) (*Customer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.emailTaken(nc.Email, 0) {
		return nil, ErrDuplicateEmail
	}
	now := m.now()
	c := Customer{
		ID:          m.nextID,
		CompanyName: nc.CompanyName,
		ContactName: nc.ContactName,
		Email:       nc.Email,
		Phone:       copyString(nc.Phone),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	m.nextID++
	m.rows[c.ID] = c
	out := clone(c)
	return &out, nil
}

func (m *MemoryRepository) Update(ctx context.Context, id int64, patch CustomerPatch) (*Customer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.rows[id]
	if !ok {
		return nil, ErrRecordNotFound
	}
	if patch.Email != nil && m.emailTaken(*patch.Email, id) {
		return nil, ErrDuplicateEmail
	}
	if patch.CompanyName != nil {
		c.CompanyName = *patch.CompanyName
	}
	if patch.ContactName != nil {
		c.ContactName = *patch.ContactName
	}
	if patch.Email != nil {
		c.Email = *patch.Email
	}
	if patch.Phone != nil {
		c.Phone = copyString(patch.Phone)
	}
	// Keep updated_at strictly increasing even when the clock has not moved.
	now := m.now()
	if !now.After(c.UpdatedAt) {
		now = c.UpdatedAt.Add(time.Microsecond)
	}
	c.UpdatedAt = now
	m.rows[id] = c
	out := clone(c)
	return &out, nil
}

func (m *MemoryRepository) Delete(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[id]; !ok {
		return ErrRecordNotFound
	}
	delete(m.rows, id)
	return nil
}

// Len reports the number of stored customers.
func (m *MemoryRepository) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.rows)
}

func (m *MemoryRepository) emailTaken(email string, except int64) bool {
	for id, c := range m.rows {
		if id != except && c.Email == email {
			return true
		}
	}
	return false
}

func compareBy(sortKey string, a, b Customer) int {
	switch sortKey {
	case SortContactName:
		return strings.Compare(a.ContactName, b.ContactName)
	case SortCreatedAt:
		return a.CreatedAt.Compare(b.CreatedAt)
	default:
		return strings.Compare(a.CompanyName, b.CompanyName)
	}
}

func clone(c Customer) Customer {
	c.Phone = copyString(c.Phone)
	return c
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
