package rest

import (
	"aimlink-client/internal/devbackend/store"
	"time"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Email string `json:"email"`
	Token string `json:"token"`
}

type PropertyResponse struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Area           string   `json:"area"`
	LocationDetail string   `json:"location_detail"`
	PriceUSD       float64  `json:"price_usd"`
	PropertyType   string   `json:"property_type"`
	SizeSqm        float64  `json:"size_sqm"`
	Bedrooms       *int     `json:"bedrooms"`
	Bathrooms      *int     `json:"bathrooms"`
	FloorLevel     *string  `json:"floor_level"`
	ViewType       *string  `json:"view_type"`
	Description    string   `json:"description"`
	Images         []string `json:"images"`
	Latitude       *float64 `json:"latitude"`
	Longitude      *float64 `json:"longitude"`
	Status         string   `json:"status"`
	CreatedAt      string   `json:"created_at"`
}

func toPropertyResponse(p store.Property) PropertyResponse {
	images := p.Images
	if images == nil {
		images = []string{}
	}
	return PropertyResponse{
		ID:             p.ID.String(),
		Title:          p.Title,
		Area:           p.Area,
		LocationDetail: p.LocationDetail,
		PriceUSD:       p.PriceUSD,
		PropertyType:   p.PropertyType,
		SizeSqm:        p.SizeSqm,
		Bedrooms:       p.Bedrooms,
		Bathrooms:      p.Bathrooms,
		FloorLevel:     p.FloorLevel,
		ViewType:       p.ViewType,
		Description:    p.Description,
		Images:         images,
		Latitude:       p.Latitude,
		Longitude:      p.Longitude,
		Status:         p.Status,
		CreatedAt:      p.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

// CreatePropertyRequest - images и status необязательны, значения по умолчанию ставит обработчик.
type CreatePropertyRequest struct {
	Title          string   `json:"title"`
	Area           string   `json:"area"`
	LocationDetail string   `json:"location_detail"`
	PriceUSD       float64  `json:"price_usd"`
	PropertyType   string   `json:"property_type"`
	SizeSqm        float64  `json:"size_sqm"`
	Bedrooms       *int     `json:"bedrooms"`
	Bathrooms      *int     `json:"bathrooms"`
	FloorLevel     *string  `json:"floor_level"`
	ViewType       *string  `json:"view_type"`
	Description    string   `json:"description"`
	Images         []string `json:"images"`
	Latitude       *float64 `json:"latitude"`
	Longitude      *float64 `json:"longitude"`
	Status         string   `json:"status"`
}

func (r *CreatePropertyRequest) applyDefaults() {
	if r.Images == nil {
		r.Images = []string{}
	}
	if r.Status == "" {
		r.Status = "active"
	}
}

func (r CreatePropertyRequest) toStore() *store.Property {
	return &store.Property{
		Title:          r.Title,
		Area:           r.Area,
		LocationDetail: r.LocationDetail,
		PriceUSD:       r.PriceUSD,
		PropertyType:   r.PropertyType,
		SizeSqm:        r.SizeSqm,
		Bedrooms:       r.Bedrooms,
		Bathrooms:      r.Bathrooms,
		FloorLevel:     r.FloorLevel,
		ViewType:       r.ViewType,
		Description:    r.Description,
		Images:         r.Images,
		Latitude:       r.Latitude,
		Longitude:      r.Longitude,
		Status:         r.Status,
	}
}

// UpdatePropertyRequest - null и отсутствующее поле означают "не менять".
type UpdatePropertyRequest struct {
	Title          *string   `json:"title,omitempty"`
	Area           *string   `json:"area,omitempty"`
	LocationDetail *string   `json:"location_detail,omitempty"`
	PriceUSD       *float64  `json:"price_usd,omitempty"`
	PropertyType   *string   `json:"property_type,omitempty"`
	SizeSqm        *float64  `json:"size_sqm,omitempty"`
	Bedrooms       *int      `json:"bedrooms,omitempty"`
	Bathrooms      *int      `json:"bathrooms,omitempty"`
	FloorLevel     *string   `json:"floor_level,omitempty"`
	ViewType       *string   `json:"view_type,omitempty"`
	Description    *string   `json:"description,omitempty"`
	Images         *[]string `json:"images,omitempty"`
	Latitude       *float64  `json:"latitude,omitempty"`
	Longitude      *float64  `json:"longitude,omitempty"`
	Status         *string   `json:"status,omitempty"`
}

func (r UpdatePropertyRequest) toPatch() store.PropertyPatch {
	return store.PropertyPatch{
		Title:          r.Title,
		Area:           r.Area,
		LocationDetail: r.LocationDetail,
		PriceUSD:       r.PriceUSD,
		PropertyType:   r.PropertyType,
		SizeSqm:        r.SizeSqm,
		Bedrooms:       r.Bedrooms,
		Bathrooms:      r.Bathrooms,
		FloorLevel:     r.FloorLevel,
		ViewType:       r.ViewType,
		Description:    r.Description,
		Images:         r.Images,
		Latitude:       r.Latitude,
		Longitude:      r.Longitude,
		Status:         r.Status,
	}
}

type LeadResponse struct {
	ID         string  `json:"id"`
	PropertyID string  `json:"property_id"`
	Name       string  `json:"name"`
	Phone      string  `json:"phone"`
	Message    *string `json:"message"`
	Status     string  `json:"status"`
	CreatedAt  string  `json:"created_at"`
}

func toLeadResponse(l store.Lead) LeadResponse {
	return LeadResponse{
		ID:         l.ID.String(),
		PropertyID: l.PropertyID.String(),
		Name:       l.Name,
		Phone:      l.Phone,
		Message:    l.Message,
		Status:     l.Status,
		CreatedAt:  l.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

type CreateLeadRequest struct {
	PropertyID string  `json:"property_id"`
	Name       string  `json:"name"`
	Phone      string  `json:"phone"`
	Message    *string `json:"message"`
}

type UpdateLeadRequest struct {
	Status string `json:"status"`
}

type DashboardStatsResponse struct {
	TotalProperties  int `json:"total_properties"`
	ActiveProperties int `json:"active_properties"`
	DraftProperties  int `json:"draft_properties"`
	SoldProperties   int `json:"sold_properties"`
	PendingLeads     int `json:"pending_leads"`
	TotalLeads       int `json:"total_leads"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
