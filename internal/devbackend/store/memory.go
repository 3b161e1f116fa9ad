package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryRepository - хранилище в памяти процесса. Используется без DATABASE_URL и в тестах.
type MemoryRepository struct {
	mu         sync.RWMutex
	seq        int64
	properties map[uuid.UUID]*memProperty
	leads      map[uuid.UUID]*memLead
	admins     map[string]*Admin
	now        func() time.Time
}

type memProperty struct {
	Property
	seq int64
}

type memLead struct {
	Lead
	seq int64
}

var _ Repository = (*MemoryRepository)(nil)

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		properties: make(map[uuid.UUID]*memProperty),
		leads:      make(map[uuid.UUID]*memLead),
		admins:     make(map[string]*Admin),
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (r *MemoryRepository) nextSeq() int64 {
	r.seq++
	return r.seq
}

func cloneProperty(p Property) Property {
	p.Images = append([]string{}, p.Images...)
	return p
}

// ListProperties - новые сверху.
func (r *MemoryRepository) ListProperties(_ context.Context, filter PropertyFilter) ([]Property, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]*memProperty, 0, len(r.properties))
	for _, p := range r.properties {
		if filter.matches(&p.Property) {
			matched = append(matched, p)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		}
		return matched[i].seq > matched[j].seq
	})

	result := make([]Property, 0, len(matched))
	for _, p := range matched {
		result = append(result, cloneProperty(p.Property))
	}
	return result, nil
}

func (r *MemoryRepository) GetProperty(_ context.Context, id uuid.UUID) (*Property, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.properties[id]
	if !ok {
		return nil, nil
	}
	prop := cloneProperty(p.Property)
	return &prop, nil
}

func (r *MemoryRepository) CreateProperty(_ context.Context, p *Property) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = r.now()
	}
	p.UpdatedAt = p.CreatedAt
	if p.Images == nil {
		p.Images = []string{}
	}
	r.properties[p.ID] = &memProperty{Property: cloneProperty(*p), seq: r.nextSeq()}
	return nil
}

func (r *MemoryRepository) UpdateProperty(_ context.Context, id uuid.UUID, patch PropertyPatch) (*Property, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.properties[id]
	if !ok {
		return nil, nil
	}
	patch.apply(&p.Property)
	p.UpdatedAt = r.now()
	prop := cloneProperty(p.Property)
	return &prop, nil
}

func (r *MemoryRepository) DeleteProperty(_ context.Context, id uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.properties[id]; !ok {
		return false, nil
	}
	delete(r.properties, id)
	return true, nil
}

func (r *MemoryRepository) CreateLead(_ context.Context, lead *Lead) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if lead.ID == uuid.Nil {
		lead.ID = uuid.New()
	}
	if lead.CreatedAt.IsZero() {
		lead.CreatedAt = r.now()
	}
	r.leads[lead.ID] = &memLead{Lead: *lead, seq: r.nextSeq()}
	return nil
}

func (r *MemoryRepository) ListLeads(_ context.Context, status string) ([]Lead, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]*memLead, 0, len(r.leads))
	for _, l := range r.leads {
		if status == "" || l.Status == status {
			matched = append(matched, l)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		}
		return matched[i].seq > matched[j].seq
	})

	result := make([]Lead, 0, len(matched))
	for _, l := range matched {
		result = append(result, l.Lead)
	}
	return result, nil
}

func (r *MemoryRepository) UpdateLeadStatus(_ context.Context, id uuid.UUID, status string) (*Lead, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	l, ok := r.leads[id]
	if !ok {
		return nil, nil
	}
	l.Status = status
	lead := l.Lead
	return &lead, nil
}

func (r *MemoryRepository) FindAdminByEmail(_ context.Context, email string) (*Admin, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.admins[email]
	if !ok {
		return nil, nil
	}
	admin := *a
	return &admin, nil
}

func (r *MemoryRepository) CreateAdmin(_ context.Context, admin *Admin) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.admins[admin.Email]; exists {
		return ErrAdminExists
	}
	if admin.ID == uuid.Nil {
		admin.ID = uuid.New()
	}
	if admin.CreatedAt.IsZero() {
		admin.CreatedAt = r.now()
	}
	a := *admin
	r.admins[admin.Email] = &a
	return nil
}

func (r *MemoryRepository) Stats(_ context.Context) (*Stats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stats := &Stats{TotalProperties: len(r.properties), TotalLeads: len(r.leads)}
	for _, p := range r.properties {
		switch p.Status {
		case "active":
			stats.ActiveProperties++
		case "draft":
			stats.DraftProperties++
		case "sold":
			stats.SoldProperties++
		}
	}
	for _, l := range r.leads {
		if l.Status == "pending" {
			stats.PendingLeads++
		}
	}
	return stats, nil
}
