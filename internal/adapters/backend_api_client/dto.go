package backend_api_client

import (
	"aimlink-client/internal/core/domain"
	"encoding/json"
	"strings"
	"time"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Email string `json:"email"`
	Token string `json:"token"`
}

// PropertyResponse - объект в ответе бэкенда.
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

// createPropertyRequest - необязательные поля сериализуются как null.
type createPropertyRequest struct {
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

// updatePropertyRequest - частичное обновление, nil-поля не отправляются.
type updatePropertyRequest struct {
	Title          *string  `json:"title,omitempty"`
	Area           *string  `json:"area,omitempty"`
	LocationDetail *string  `json:"location_detail,omitempty"`
	PriceUSD       *float64 `json:"price_usd,omitempty"`
	PropertyType   *string  `json:"property_type,omitempty"`
	SizeSqm        *float64 `json:"size_sqm,omitempty"`
	Bedrooms       *int     `json:"bedrooms,omitempty"`
	Bathrooms      *int     `json:"bathrooms,omitempty"`
	FloorLevel     *string  `json:"floor_level,omitempty"`
	ViewType       *string  `json:"view_type,omitempty"`
	Description    *string  `json:"description,omitempty"`
	Status         *string  `json:"status,omitempty"`
}

// LeadResponse - заявка в ответе бэкенда.
type LeadResponse struct {
	ID         string  `json:"id"`
	PropertyID string  `json:"property_id"`
	Name       string  `json:"name"`
	Phone      string  `json:"phone"`
	Message    *string `json:"message"`
	Status     string  `json:"status"`
	CreatedAt  string  `json:"created_at"`
}

type createLeadRequest struct {
	PropertyID string  `json:"property_id"`
	Name       string  `json:"name"`
	Phone      string  `json:"phone"`
	Message    *string `json:"message"`
}

type updateLeadRequest struct {
	Status string `json:"status"`
}

// DashboardStatsResponse - сводка админ-панели.
type DashboardStatsResponse struct {
	TotalProperties  int `json:"total_properties"`
	ActiveProperties int `json:"active_properties"`
	DraftProperties  int `json:"draft_properties"`
	SoldProperties   int `json:"sold_properties"`
	PendingLeads     int `json:"pending_leads"`
	TotalLeads       int `json:"total_leads"`
}

// errorResponse - бэкенд отдает {"detail": ...}; detail бывает и списком ошибок валидации.
type errorResponse struct {
	Detail json.RawMessage `json:"detail"`
	Error  string          `json:"error"`
}

func (e errorResponse) message() string {
	var detail string
	if err := json.Unmarshal(e.Detail, &detail); err == nil && detail != "" {
		return detail
	}
	var items []struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(e.Detail, &items); err == nil && len(items) > 0 {
		msgs := make([]string, 0, len(items))
		for _, it := range items {
			msgs = append(msgs, it.Msg)
		}
		return strings.Join(msgs, "; ")
	}
	return e.Error
}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
}

// parseTimestamp - время без зоны считается UTC.
func parseTimestamp(s string) time.Time {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC()
		}
	}
	return time.Time{}
}

func (dto PropertyResponse) toDomain() domain.Property {
	images := dto.Images
	if images == nil {
		images = []string{}
	}
	return domain.Property{
		ID:             dto.ID,
		Title:          dto.Title,
		Area:           domain.Area(dto.Area),
		LocationDetail: dto.LocationDetail,
		PriceUSD:       dto.PriceUSD,
		PropertyType:   domain.PropertyType(dto.PropertyType),
		SizeSqm:        dto.SizeSqm,
		Bedrooms:       dto.Bedrooms,
		Bathrooms:      dto.Bathrooms,
		FloorLevel:     dto.FloorLevel,
		ViewType:       dto.ViewType,
		Description:    dto.Description,
		Images:         images,
		Latitude:       dto.Latitude,
		Longitude:      dto.Longitude,
		Status:         domain.PropertyStatus(dto.Status),
		CreatedAt:      parseTimestamp(dto.CreatedAt),
	}
}

func (dto LeadResponse) toDomain() domain.Lead {
	lead := domain.Lead{
		ID:         dto.ID,
		PropertyID: dto.PropertyID,
		Name:       dto.Name,
		Phone:      dto.Phone,
		Status:     domain.LeadStatus(dto.Status),
		CreatedAt:  parseTimestamp(dto.CreatedAt),
	}
	if dto.Message != nil {
		lead.Message = *dto.Message
	}
	return lead
}

func newCreatePropertyRequest(p domain.NewProperty) createPropertyRequest {
	images := p.Images
	if images == nil {
		images = []string{}
	}
	return createPropertyRequest{
		Title:          p.Title,
		Area:           string(p.Area),
		LocationDetail: p.LocationDetail,
		PriceUSD:       p.PriceUSD,
		PropertyType:   string(p.PropertyType),
		SizeSqm:        p.SizeSqm,
		Bedrooms:       p.Bedrooms,
		Bathrooms:      p.Bathrooms,
		FloorLevel:     p.FloorLevel,
		ViewType:       p.ViewType,
		Description:    p.Description,
		Images:         images,
		Latitude:       p.Latitude,
		Longitude:      p.Longitude,
		Status:         string(p.Status),
	}
}

func newUpdatePropertyRequest(u domain.PropertyUpdate) updatePropertyRequest {
	req := updatePropertyRequest{
		Title:          u.Title,
		LocationDetail: u.LocationDetail,
		PriceUSD:       u.PriceUSD,
		SizeSqm:        u.SizeSqm,
		Bedrooms:       u.Bedrooms,
		Bathrooms:      u.Bathrooms,
		FloorLevel:     u.FloorLevel,
		ViewType:       u.ViewType,
		Description:    u.Description,
	}
	if u.Area != nil {
		v := string(*u.Area)
		req.Area = &v
	}
	if u.PropertyType != nil {
		v := string(*u.PropertyType)
		req.PropertyType = &v
	}
	if u.Status != nil {
		v := string(*u.Status)
		req.Status = &v
	}
	return req
}
