package domain

import "strings"

// FeaturedLimit - сколько объектов показывает главная страница.
const FeaturedLimit = 6

// MatchesQuery проверяет вхождение текста запроса без учета регистра
// в title, location_detail, area или property_type.
func (p *Property) MatchesQuery(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	for _, field := range []string{p.Title, p.LocationDetail, string(p.Area), string(p.PropertyType)} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

// FilterProperties - клиентский текстовый фильтр. Порядок исходного списка сохраняется.
func FilterProperties(properties []Property, query string) []Property {
	result := make([]Property, 0, len(properties))
	for i := range properties {
		if properties[i].MatchesQuery(query) {
			result = append(result, properties[i])
		}
	}
	return result
}

// Featured - первые FeaturedLimit объектов из выдачи.
func Featured(properties []Property) []Property {
	if len(properties) > FeaturedLimit {
		return properties[:FeaturedLimit]
	}
	return properties
}
