package maprender

import (
	"aimlink-client/internal/core/domain"
	"aimlink-client/internal/core/port"
	"context"
	"fmt"
	"io"
)

// WebFallbackRenderer - на web карта недоступна, показываем только количество объектов.
type WebFallbackRenderer struct{}

var _ port.MapRendererPort = WebFallbackRenderer{}

func (WebFallbackRenderer) Render(_ context.Context, w io.Writer, properties []domain.Property) error {
	if _, err := fmt.Fprintln(w, domain.MsgMapWebFallback); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%d properties available\n", len(properties))
	return err
}

// New выбирает реализацию по имени из конфигурации.
func New(name string, region Region, precision int) (port.MapRendererPort, error) {
	switch name {
	case "", "terminal":
		return NewTerminalRenderer(region, precision), nil
	case "geojson":
		return NewGeoJSONRenderer(), nil
	case "web":
		return WebFallbackRenderer{}, nil
	default:
		return nil, fmt.Errorf("unknown map renderer: %q", name)
	}
}
