package domain

import "time"

// Area - район, к которому привязан объект.
type Area string

const (
	AreaBeirut       Area = "Beirut"
	AreaMountLebanon Area = "Mount Lebanon"
	AreaNorthLebanon Area = "North Lebanon"
	AreaKeserwan     Area = "Keserwan"
)

// Areas - допустимые значения в порядке отображения.
var Areas = []Area{AreaBeirut, AreaMountLebanon, AreaNorthLebanon, AreaKeserwan}

func (a Area) Valid() bool {
	for _, v := range Areas {
		if v == a {
			return true
		}
	}
	return false
}

type PropertyType string

const (
	TypeApartment PropertyType = "Apartment"
	TypeVilla     PropertyType = "Villa"
	TypeHouse     PropertyType = "House"
	TypeChalet    PropertyType = "Chalet"
	TypeOffice    PropertyType = "Office"
	TypeLand      PropertyType = "Land"
)

var PropertyTypes = []PropertyType{TypeApartment, TypeVilla, TypeHouse, TypeChalet, TypeOffice, TypeLand}

func (t PropertyType) Valid() bool {
	for _, v := range PropertyTypes {
		if v == t {
			return true
		}
	}
	return false
}

type PropertyStatus string

const (
	StatusActive PropertyStatus = "active"
	StatusDraft  PropertyStatus = "draft"
	StatusSold   PropertyStatus = "sold"
)

var PropertyStatuses = []PropertyStatus{StatusActive, StatusDraft, StatusSold}

func (s PropertyStatus) Valid() bool {
	for _, v := range PropertyStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// Property - объект недвижимости в том виде, в котором его отдает бэкенд.
// Необязательные поля представлены указателями.
type Property struct {
	ID             string
	Title          string
	Area           Area
	LocationDetail string
	PriceUSD       float64
	PropertyType   PropertyType
	SizeSqm        float64
	Bedrooms       *int
	Bathrooms      *int
	FloorLevel     *string
	ViewType       *string
	Description    string
	Images         []string
	Latitude       *float64
	Longitude      *float64
	Status         PropertyStatus
	CreatedAt      time.Time
}

// HasCoordinates сообщает, можно ли показать объект на карте.
// Нулевые координаты считаются отсутствующими.
func (p *Property) HasCoordinates() bool {
	return p.Latitude != nil && p.Longitude != nil && *p.Latitude != 0 && *p.Longitude != 0
}

// PropertyQuery - серверные фильтры каталога. Пустые поля не отправляются.
type PropertyQuery struct {
	Status       PropertyStatus
	Area         Area
	PropertyType PropertyType
	MinPrice     *float64
	MaxPrice     *float64
}

// DashboardStats - сводка для админ-панели.
type DashboardStats struct {
	TotalProperties  int
	ActiveProperties int
	DraftProperties  int
	SoldProperties   int
	PendingLeads     int
	TotalLeads       int
}
