package usecase

import (
	"aimlink-client/internal/core/domain"
	"context"
	"errors"
	"fmt"
)

type fakeStore struct {
	session *domain.Session
	cleared int
}

func (s *fakeStore) Load(ctx context.Context) (*domain.Session, error) {
	if s.session == nil {
		return nil, nil
	}
	copied := *s.session
	return &copied, nil
}

func (s *fakeStore) Save(ctx context.Context, session domain.Session) error {
	s.session = &session
	return nil
}

func (s *fakeStore) Clear(ctx context.Context) error {
	s.session = nil
	s.cleared++
	return nil
}

func loggedIn() *fakeStore {
	return &fakeStore{session: &domain.Session{Token: "token", Email: "admin@aimlinkproperties.com"}}
}

// fakeBackend хранит объекты и заявки в памяти и запоминает последние запросы.
type fakeBackend struct {
	properties []domain.Property
	leads      []domain.Lead
	lastQuery  domain.PropertyQuery
	created    []domain.NewProperty
	updates    []domain.PropertyUpdate
	deleted    []string
	failWith   error
	sessions   []domain.Session
}

func (b *fakeBackend) ListProperties(ctx context.Context, query domain.PropertyQuery) ([]domain.Property, error) {
	b.lastQuery = query
	if b.failWith != nil {
		return nil, b.failWith
	}
	return append([]domain.Property(nil), b.properties...), nil
}

func (b *fakeBackend) GetProperty(ctx context.Context, id string) (*domain.Property, error) {
	for _, p := range b.properties {
		if p.ID == id {
			found := p
			return &found, nil
		}
	}
	return nil, fmt.Errorf("%w: %w", domain.ErrNotFound, &domain.APIError{StatusCode: 404, Detail: "Property not found"})
}

func (b *fakeBackend) CreateProperty(ctx context.Context, session domain.Session, payload domain.NewProperty) (*domain.Property, error) {
	b.sessions = append(b.sessions, session)
	if b.failWith != nil {
		return nil, b.failWith
	}
	b.created = append(b.created, payload)
	p := domain.Property{ID: fmt.Sprintf("p%d", len(b.created)), Title: payload.Title, Images: payload.Images, Status: payload.Status}
	b.properties = append(b.properties, p)
	return &p, nil
}

func (b *fakeBackend) UpdateProperty(ctx context.Context, session domain.Session, id string, update domain.PropertyUpdate) (*domain.Property, error) {
	if b.failWith != nil {
		return nil, b.failWith
	}
	b.updates = append(b.updates, update)
	return b.GetProperty(ctx, id)
}

func (b *fakeBackend) DeleteProperty(ctx context.Context, session domain.Session, id string) error {
	if b.failWith != nil {
		return b.failWith
	}
	b.deleted = append(b.deleted, id)
	return nil
}

func (b *fakeBackend) GetDashboardStats(ctx context.Context, session domain.Session) (*domain.DashboardStats, error) {
	if b.failWith != nil {
		return nil, b.failWith
	}
	return &domain.DashboardStats{TotalProperties: len(b.properties), TotalLeads: len(b.leads)}, nil
}

func (b *fakeBackend) CreateLead(ctx context.Context, lead domain.NewLead) (*domain.Lead, error) {
	if b.failWith != nil {
		return nil, b.failWith
	}
	l := domain.Lead{ID: fmt.Sprintf("l%d", len(b.leads)+1), PropertyID: lead.PropertyID, Name: lead.Name, Phone: lead.Phone, Message: lead.Message, Status: domain.LeadPending}
	b.leads = append(b.leads, l)
	return &l, nil
}

func (b *fakeBackend) ListLeads(ctx context.Context, session domain.Session, status domain.LeadStatus) ([]domain.Lead, error) {
	if b.failWith != nil {
		return nil, b.failWith
	}
	var result []domain.Lead
	for _, l := range b.leads {
		if status == "" || l.Status == status {
			result = append(result, l)
		}
	}
	return result, nil
}

func (b *fakeBackend) UpdateLeadStatus(ctx context.Context, session domain.Session, id string, status domain.LeadStatus) (*domain.Lead, error) {
	if b.failWith != nil {
		return nil, b.failWith
	}
	for i := range b.leads {
		if b.leads[i].ID == id {
			b.leads[i].Status = status
			l := b.leads[i]
			return &l, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (b *fakeBackend) Login(ctx context.Context, email, password string) (*domain.Session, error) {
	if email == "admin@aimlinkproperties.com" && password == "admin123" {
		return &domain.Session{Token: "jwt-token", Email: email}, nil
	}
	return nil, &domain.APIError{StatusCode: 401, Detail: "Invalid email or password"}
}

var errExpired = fmt.Errorf("%w: %w", domain.ErrSessionExpired, &domain.APIError{StatusCode: 401, Detail: "Token has expired"})

type fakePrompter struct {
	answer bool
	asked  []string
}

func (p *fakePrompter) Confirm(ctx context.Context, title, message string) (bool, error) {
	p.asked = append(p.asked, message)
	return p.answer, nil
}

type fakeOpener struct {
	supported map[string]bool
	opened    []string
	failOpen  bool
}

func (o *fakeOpener) CanOpen(rawURL string) bool {
	for scheme, ok := range o.supported {
		if ok && len(rawURL) >= len(scheme) && rawURL[:len(scheme)] == scheme {
			return true
		}
	}
	return false
}

func (o *fakeOpener) Open(ctx context.Context, rawURL string) error {
	if o.failOpen {
		return errors.New("handler crashed")
	}
	o.opened = append(o.opened, rawURL)
	return nil
}
