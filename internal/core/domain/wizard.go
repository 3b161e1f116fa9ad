package domain

import (
	"math"
	"strconv"
	"strings"
)

// MaxImages - ограничение мастера на количество фотографий.
const MaxImages = 10

// Сообщения валидации, которые видит пользователь.
const (
	MsgFillRequired        = "Please fill all required fields"
	MsgInvalidPrice        = "Please enter a valid price"
	MsgFillSizeDescription = "Please fill size and description"
	MsgInvalidSize         = "Please enter a valid size"
	MsgInvalidArea         = "Please select a valid area"
	MsgInvalidType         = "Please select a valid property type"
	MsgInvalidStatus       = "Please select a valid status"
	MsgInvalidBedrooms     = "Please enter a valid number of bedrooms"
	MsgInvalidBathrooms    = "Please enter a valid number of bathrooms"
	MsgInvalidCoordinates  = "Please enter valid coordinates"
	MsgImageLimit          = "You can add up to 10 images"
	MsgPublishNoImages     = "Are you sure you want to publish without images?"
)

// BasicInfo - поля первого шага. Все значения хранятся строками, как в форме.
type BasicInfo struct {
	Title          string
	Area           string
	LocationDetail string
	PriceUSD       string
	PropertyType   string
}

// Specs - поля второго шага.
type Specs struct {
	SizeSqm     string
	Bedrooms    string
	Bathrooms   string
	FloorLevel  string
	ViewType    string
	Description string
}

// Media - поля третьего шага.
type Media struct {
	Images    []string
	Latitude  string
	Longitude string
}

// Draft - все, что пользователь успел ввести. При возврате назад ничего не теряется.
type Draft struct {
	Basic BasicInfo
	Specs Specs
	Media Media
}

// WizardState - состояние мастера добавления объекта: Step1, Step2 или Step3.
type WizardState interface {
	Step() int
	Data() Draft
	wizardState()
}

type Step1 struct{ Draft }
type Step2 struct{ Draft }
type Step3 struct{ Draft }

func (s Step1) Step() int   { return 1 }
func (s Step2) Step() int   { return 2 }
func (s Step3) Step() int   { return 3 }
func (s Step1) Data() Draft { return s.Draft }
func (s Step2) Data() Draft { return s.Draft }
func (s Step3) Data() Draft { return s.Draft }
func (Step1) wizardState()  {}
func (Step2) wizardState()  {}
func (Step3) wizardState()  {}

// NewWizard - начальное состояние с значениями по умолчанию.
func NewWizard() WizardState {
	return Step1{Draft{Basic: BasicInfo{
		Area:         string(AreaBeirut),
		PropertyType: string(TypeApartment),
	}}}
}

// Next переводит мастер на следующий шаг, если текущий шаг валиден.
// При ошибке возвращается исходное состояние.
func Next(state WizardState) (WizardState, error) {
	switch s := state.(type) {
	case Step1:
		if err := s.Basic.Validate(); err != nil {
			return s, err
		}
		return Step2{s.Draft}, nil
	case Step2:
		if err := s.Specs.Validate(); err != nil {
			return s, err
		}
		return Step3{s.Draft}, nil
	default:
		return state, ErrNoSuchStep
	}
}

// Back возвращает мастер на предыдущий шаг без проверок.
func Back(state WizardState) (WizardState, error) {
	switch s := state.(type) {
	case Step2:
		return Step1{s.Draft}, nil
	case Step3:
		return Step2{s.Draft}, nil
	default:
		return state, ErrNoSuchStep
	}
}

// AddImage добавляет фото в конец списка. Одиннадцатое фото отклоняется.
func (s Step3) AddImage(ref string) (Step3, error) {
	if len(s.Media.Images) >= MaxImages {
		return s, NewValidationError("images", MsgImageLimit)
	}
	images := make([]string, 0, len(s.Media.Images)+1)
	images = append(images, s.Media.Images...)
	s.Media.Images = append(images, ref)
	return s, nil
}

// RemoveImage удаляет фото по индексу. Неверный индекс игнорируется.
func (s Step3) RemoveImage(index int) Step3 {
	if index < 0 || index >= len(s.Media.Images) {
		return s
	}
	images := make([]string, 0, len(s.Media.Images)-1)
	images = append(images, s.Media.Images[:index]...)
	s.Media.Images = append(images, s.Media.Images[index+1:]...)
	return s
}

// NeedsImageConfirmation - публикация без фото требует подтверждения.
func (s Step3) NeedsImageConfirmation() bool {
	return len(s.Media.Images) == 0
}

// Validate - правила первого шага.
func (b BasicInfo) Validate() error {
	if blank(b.Title) || blank(b.Area) || blank(b.LocationDetail) || blank(b.PriceUSD) || blank(b.PropertyType) {
		return NewValidationError("", MsgFillRequired)
	}
	if _, ok := parsePositive(b.PriceUSD); !ok {
		return NewValidationError("price_usd", MsgInvalidPrice)
	}
	if !Area(b.Area).Valid() {
		return NewValidationError("area", MsgInvalidArea)
	}
	if !PropertyType(b.PropertyType).Valid() {
		return NewValidationError("property_type", MsgInvalidType)
	}
	return nil
}

// Validate - правила второго шага.
func (s Specs) Validate() error {
	if blank(s.SizeSqm) || blank(s.Description) {
		return NewValidationError("", MsgFillSizeDescription)
	}
	if _, ok := parsePositive(s.SizeSqm); !ok {
		return NewValidationError("size_sqm", MsgInvalidSize)
	}
	if _, err := optionalInt(s.Bedrooms); err != nil {
		return NewValidationError("bedrooms", MsgInvalidBedrooms)
	}
	if _, err := optionalInt(s.Bathrooms); err != nil {
		return NewValidationError("bathrooms", MsgInvalidBathrooms)
	}
	return nil
}

// NewProperty - тело запроса на создание объекта.
type NewProperty struct {
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
}

// BuildPayload собирает тело запроса из последнего шага.
// Пустые необязательные поля становятся nil, статус всегда active.
func (s Step3) BuildPayload() (NewProperty, error) {
	if err := s.Basic.Validate(); err != nil {
		return NewProperty{}, err
	}
	if err := s.Specs.Validate(); err != nil {
		return NewProperty{}, err
	}
	price, _ := parsePositive(s.Basic.PriceUSD)
	size, _ := parsePositive(s.Specs.SizeSqm)
	bedrooms, _ := optionalInt(s.Specs.Bedrooms)
	bathrooms, _ := optionalInt(s.Specs.Bathrooms)

	lat, err := optionalFloat(s.Media.Latitude)
	if err != nil || (lat != nil && math.Abs(*lat) > 90) {
		return NewProperty{}, NewValidationError("latitude", MsgInvalidCoordinates)
	}
	lng, err := optionalFloat(s.Media.Longitude)
	if err != nil || (lng != nil && math.Abs(*lng) > 180) {
		return NewProperty{}, NewValidationError("longitude", MsgInvalidCoordinates)
	}

	images := make([]string, len(s.Media.Images))
	copy(images, s.Media.Images)

	return NewProperty{
		Title:          strings.TrimSpace(s.Basic.Title),
		Area:           Area(s.Basic.Area),
		LocationDetail: strings.TrimSpace(s.Basic.LocationDetail),
		PriceUSD:       price,
		PropertyType:   PropertyType(s.Basic.PropertyType),
		SizeSqm:        size,
		Bedrooms:       bedrooms,
		Bathrooms:      bathrooms,
		FloorLevel:     optionalString(s.Specs.FloorLevel),
		ViewType:       optionalString(s.Specs.ViewType),
		Description:    s.Specs.Description,
		Images:         images,
		Latitude:       lat,
		Longitude:      lng,
		Status:         StatusActive,
	}, nil
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func parsePositive(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0, false
	}
	return v, true
}

func optionalInt(s string) (*int, error) {
	if blank(s) {
		return nil, nil
	}
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v < 0 {
		return nil, strconv.ErrSyntax
	}
	return &v, nil
}

func optionalFloat(s string) (*float64, error) {
	if blank(s) {
		return nil, nil
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, strconv.ErrSyntax
	}
	return &v, nil
}

func optionalString(s string) *string {
	if blank(s) {
		return nil
	}
	v := strings.TrimSpace(s)
	return &v
}
