package domain

import (
	"strconv"
	"strings"
)

// EditForm - одностраничная форма редактирования. Значения хранятся строками.
type EditForm struct {
	Title          string
	Area           string
	LocationDetail string
	PriceUSD       string
	PropertyType   string
	SizeSqm        string
	Bedrooms       string
	Bathrooms      string
	FloorLevel     string
	ViewType       string
	Description    string
	Status         string
}

// PropertyUpdate - частичное обновление. nil означает "не отправлять".
type PropertyUpdate struct {
	Title          *string
	Area           *Area
	LocationDetail *string
	PriceUSD       *float64
	PropertyType   *PropertyType
	SizeSqm        *float64
	Bedrooms       *int
	Bathrooms      *int
	FloorLevel     *string
	ViewType       *string
	Description    *string
	Status         *PropertyStatus
}

// IsEmpty - обновление без единого поля бэкенд отклоняет.
func (u PropertyUpdate) IsEmpty() bool {
	return u == PropertyUpdate{}
}

// PrefillEditForm заполняет форму из загруженного объекта.
func PrefillEditForm(p Property) EditForm {
	form := EditForm{
		Title:          p.Title,
		Area:           string(p.Area),
		LocationDetail: p.LocationDetail,
		PriceUSD:       formatNumber(p.PriceUSD),
		PropertyType:   string(p.PropertyType),
		SizeSqm:        formatNumber(p.SizeSqm),
		Description:    p.Description,
		Status:         string(p.Status),
	}
	if p.Bedrooms != nil {
		form.Bedrooms = strconv.Itoa(*p.Bedrooms)
	}
	if p.Bathrooms != nil {
		form.Bathrooms = strconv.Itoa(*p.Bathrooms)
	}
	if p.FloorLevel != nil {
		form.FloorLevel = *p.FloorLevel
	}
	if p.ViewType != nil {
		form.ViewType = *p.ViewType
	}
	return form
}

// BuildUpdate проверяет форму и собирает частичное обновление.
// Фото и координаты не отправляются, сервер сохраняет их как есть.
func (f EditForm) BuildUpdate() (PropertyUpdate, error) {
	if blank(f.Title) || blank(f.Area) || blank(f.LocationDetail) || blank(f.PriceUSD) || blank(f.SizeSqm) || blank(f.Description) {
		return PropertyUpdate{}, NewValidationError("", MsgFillRequired)
	}
	price, ok := parsePositive(f.PriceUSD)
	if !ok {
		return PropertyUpdate{}, NewValidationError("price_usd", MsgInvalidPrice)
	}
	size, ok := parsePositive(f.SizeSqm)
	if !ok {
		return PropertyUpdate{}, NewValidationError("size_sqm", MsgInvalidSize)
	}
	area := Area(f.Area)
	if !area.Valid() {
		return PropertyUpdate{}, NewValidationError("area", MsgInvalidArea)
	}
	propertyType := PropertyType(f.PropertyType)
	if !propertyType.Valid() {
		return PropertyUpdate{}, NewValidationError("property_type", MsgInvalidType)
	}
	status := PropertyStatus(f.Status)
	if !status.Valid() {
		return PropertyUpdate{}, NewValidationError("status", MsgInvalidStatus)
	}
	bedrooms, err := optionalInt(f.Bedrooms)
	if err != nil {
		return PropertyUpdate{}, NewValidationError("bedrooms", MsgInvalidBedrooms)
	}
	bathrooms, err := optionalInt(f.Bathrooms)
	if err != nil {
		return PropertyUpdate{}, NewValidationError("bathrooms", MsgInvalidBathrooms)
	}

	title := strings.TrimSpace(f.Title)
	location := strings.TrimSpace(f.LocationDetail)
	description := f.Description

	return PropertyUpdate{
		Title:          &title,
		Area:           &area,
		LocationDetail: &location,
		PriceUSD:       &price,
		PropertyType:   &propertyType,
		SizeSqm:        &size,
		Bedrooms:       bedrooms,
		Bathrooms:      bathrooms,
		FloorLevel:     optionalString(f.FloorLevel),
		ViewType:       optionalString(f.ViewType),
		Description:    &description,
		Status:         &status,
	}, nil
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
