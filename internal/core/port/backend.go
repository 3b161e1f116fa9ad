package port

import (
	"aimlink-client/internal/core/domain"
	"context"
)

// PropertyCatalogPort - публичная часть API объектов.
type PropertyCatalogPort interface {
	ListProperties(ctx context.Context, query domain.PropertyQuery) ([]domain.Property, error)
	// GetProperty возвращает domain.ErrNotFound, если объекта нет.
	GetProperty(ctx context.Context, id string) (*domain.Property, error)
}

// PropertyAdminPort - изменение объектов. Все методы требуют сессию,
// ответ 401 превращается в domain.ErrSessionExpired.
type PropertyAdminPort interface {
	CreateProperty(ctx context.Context, session domain.Session, payload domain.NewProperty) (*domain.Property, error)
	UpdateProperty(ctx context.Context, session domain.Session, id string, update domain.PropertyUpdate) (*domain.Property, error)
	DeleteProperty(ctx context.Context, session domain.Session, id string) error
	GetDashboardStats(ctx context.Context, session domain.Session) (*domain.DashboardStats, error)
}

// LeadsPort - заявки. CreateLead доступен без авторизации.
type LeadsPort interface {
	CreateLead(ctx context.Context, lead domain.NewLead) (*domain.Lead, error)
	ListLeads(ctx context.Context, session domain.Session, status domain.LeadStatus) ([]domain.Lead, error)
	UpdateLeadStatus(ctx context.Context, session domain.Session, id string, status domain.LeadStatus) (*domain.Lead, error)
}

// AuthPort - вход администратора.
type AuthPort interface {
	Login(ctx context.Context, email, password string) (*domain.Session, error)
}

// BackendPort объединяет все клиентские контракты бэкенда.
type BackendPort interface {
	PropertyCatalogPort
	PropertyAdminPort
	LeadsPort
	AuthPort
}
