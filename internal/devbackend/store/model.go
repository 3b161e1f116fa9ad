package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrAdminExists - администратор с таким email уже есть.
var ErrAdminExists = errors.New("Admin already exists")

// Property - строка таблицы properties.
type Property struct {
	ID             uuid.UUID
	Title          string
	Area           string
	LocationDetail string
	PriceUSD       float64
	PropertyType   string
	SizeSqm        float64
	Bedrooms       *int
	Bathrooms      *int
	FloorLevel     *string
	ViewType       *string
	Description    string
	Images         []string
	Latitude       *float64
	Longitude      *float64
	Status         string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// PropertyPatch - частичное обновление. nil - поле не меняется.
type PropertyPatch struct {
	Title          *string
	Area           *string
	LocationDetail *string
	PriceUSD       *float64
	PropertyType   *string
	SizeSqm        *float64
	Bedrooms       *int
	Bathrooms      *int
	FloorLevel     *string
	ViewType       *string
	Description    *string
	Images         *[]string
	Latitude       *float64
	Longitude      *float64
	Status         *string
}

func (p PropertyPatch) IsEmpty() bool {
	return p == PropertyPatch{}
}

// apply переносит заданные поля патча в объект.
func (p PropertyPatch) apply(prop *Property) {
	if p.Title != nil {
		prop.Title = *p.Title
	}
	if p.Area != nil {
		prop.Area = *p.Area
	}
	if p.LocationDetail != nil {
		prop.LocationDetail = *p.LocationDetail
	}
	if p.PriceUSD != nil {
		prop.PriceUSD = *p.PriceUSD
	}
	if p.PropertyType != nil {
		prop.PropertyType = *p.PropertyType
	}
	if p.SizeSqm != nil {
		prop.SizeSqm = *p.SizeSqm
	}
	if p.Bedrooms != nil {
		prop.Bedrooms = p.Bedrooms
	}
	if p.Bathrooms != nil {
		prop.Bathrooms = p.Bathrooms
	}
	if p.FloorLevel != nil {
		prop.FloorLevel = p.FloorLevel
	}
	if p.ViewType != nil {
		prop.ViewType = p.ViewType
	}
	if p.Description != nil {
		prop.Description = *p.Description
	}
	if p.Images != nil {
		prop.Images = append([]string{}, (*p.Images)...)
	}
	if p.Latitude != nil {
		prop.Latitude = p.Latitude
	}
	if p.Longitude != nil {
		prop.Longitude = p.Longitude
	}
	if p.Status != nil {
		prop.Status = *p.Status
	}
}

// PropertyFilter - фильтры списка. Пустые строки и нулевые цены не учитываются.
type PropertyFilter struct {
	Area         string
	PropertyType string
	Status       string
	MinPrice     float64
	MaxPrice     float64
}

func (f PropertyFilter) matches(p *Property) bool {
	if f.Area != "" && p.Area != f.Area {
		return false
	}
	if f.PropertyType != "" && p.PropertyType != f.PropertyType {
		return false
	}
	if f.Status != "" && p.Status != f.Status {
		return false
	}
	if f.MinPrice > 0 && p.PriceUSD < f.MinPrice {
		return false
	}
	if f.MaxPrice > 0 && p.PriceUSD > f.MaxPrice {
		return false
	}
	return true
}

// Lead - заявка на просмотр.
type Lead struct {
	ID         uuid.UUID
	PropertyID uuid.UUID
	Name       string
	Phone      string
	Message    *string
	Status     string
	CreatedAt  time.Time
}

// Admin - учетная запись администратора.
type Admin struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// Stats - счетчики для админ-панели.
type Stats struct {
	TotalProperties  int
	ActiveProperties int
	DraftProperties  int
	SoldProperties   int
	PendingLeads     int
	TotalLeads       int
}

// Repository - хранилище стенда. Отсутствующая запись - (nil, nil).
type Repository interface {
	ListProperties(ctx context.Context, filter PropertyFilter) ([]Property, error)
	GetProperty(ctx context.Context, id uuid.UUID) (*Property, error)
	CreateProperty(ctx context.Context, p *Property) error
	UpdateProperty(ctx context.Context, id uuid.UUID, patch PropertyPatch) (*Property, error)
	DeleteProperty(ctx context.Context, id uuid.UUID) (bool, error)

	CreateLead(ctx context.Context, lead *Lead) error
	ListLeads(ctx context.Context, status string) ([]Lead, error)
	UpdateLeadStatus(ctx context.Context, id uuid.UUID, status string) (*Lead, error)

	FindAdminByEmail(ctx context.Context, email string) (*Admin, error)
	CreateAdmin(ctx context.Context, admin *Admin) error

	Stats(ctx context.Context) (*Stats, error)
}
