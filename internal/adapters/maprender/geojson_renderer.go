package maprender

import (
	"aimlink-client/internal/core/domain"
	"aimlink-client/internal/core/port"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/mmcloughlin/geohash"
)

type featureCollection struct {
	Type     string    `json:"type"`
	Features []feature `json:"features"`
}

type feature struct {
	Type       string            `json:"type"`
	Geometry   geometry          `json:"geometry"`
	Properties featureProperties `json:"properties"`
}

type geometry struct {
	Type        string     `json:"type"`
	Coordinates [2]float64 `json:"coordinates"`
}

type featureProperties struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	Price        string  `json:"price"`
	PriceUSD     float64 `json:"price_usd"`
	Area         string  `json:"area"`
	PropertyType string  `json:"property_type"`
	Geohash      string  `json:"geohash"`
}

// GeoJSONRenderer выводит пины как FeatureCollection для внешних карт.
type GeoJSONRenderer struct{}

var _ port.MapRendererPort = GeoJSONRenderer{}

func NewGeoJSONRenderer() GeoJSONRenderer {
	return GeoJSONRenderer{}
}

func (GeoJSONRenderer) Render(ctx context.Context, w io.Writer, properties []domain.Property) error {
	collection := featureCollection{Type: "FeatureCollection", Features: make([]feature, 0, len(properties))}
	for _, p := range properties {
		if !p.HasCoordinates() {
			continue
		}
		collection.Features = append(collection.Features, feature{
			Type: "Feature",
			// В GeoJSON порядок [долгота, широта].
			Geometry: geometry{Type: "Point", Coordinates: [2]float64{*p.Longitude, *p.Latitude}},
			Properties: featureProperties{
				ID:           p.ID,
				Title:        p.Title,
				Price:        domain.FormatPrice(p.PriceUSD),
				PriceUSD:     p.PriceUSD,
				Area:         string(p.Area),
				PropertyType: string(p.PropertyType),
				Geohash:      geohash.Encode(*p.Latitude, *p.Longitude),
			},
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(collection); err != nil {
		return fmt.Errorf("failed to encode geojson: %w", err)
	}
	return nil
}
