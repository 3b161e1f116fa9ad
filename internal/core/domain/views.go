package domain

// DashboardView - то, что видит администратор после входа.
type DashboardView struct {
	Email string
	Stats DashboardStats
}

// CatalogView - список объектов с заголовком и текстом для пустого состояния.
type CatalogView struct {
	Title      string
	Properties []Property
	EmptyText  string
}

// ListingsRequest - фильтры экрана со всеми объявлениями.
// Area, PropertyType и цены уходят на сервер, Query применяется локально.
type ListingsRequest struct {
	Area         Area
	PropertyType PropertyType
	MinPrice     *float64
	MaxPrice     *float64
	Query        string
}
