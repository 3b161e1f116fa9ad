package maprender

import (
	"aimlink-client/internal/contextkeys"
	"aimlink-client/internal/core/domain"
	"aimlink-client/internal/core/port"
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/mmcloughlin/geohash"
)

// Region - видимая область карты по умолчанию.
type Region struct {
	Latitude       float64
	Longitude      float64
	LatitudeDelta  float64
	LongitudeDelta float64
}

// DefaultRegion - Бейрут.
var DefaultRegion = Region{Latitude: 33.8938, Longitude: 35.5018, LatitudeDelta: 0.3, LongitudeDelta: 0.3}

// TerminalRenderer группирует объекты по ячейкам geohash и печатает их списком.
type TerminalRenderer struct {
	region    Region
	precision uint
}

var _ port.MapRendererPort = (*TerminalRenderer)(nil)

func NewTerminalRenderer(region Region, precision int) *TerminalRenderer {
	if precision < 1 || precision > 12 {
		precision = 5
	}
	return &TerminalRenderer{region: region, precision: uint(precision)}
}

type cluster struct {
	cell       string
	lat, lng   float64
	properties []domain.Property
}

func (r *TerminalRenderer) Render(ctx context.Context, w io.Writer, properties []domain.Property) error {
	logger := contextkeys.LoggerFromContext(ctx)

	if _, err := fmt.Fprintf(w, "Map centered at %.4f, %.4f (±%.2f)\n", r.region.Latitude, r.region.Longitude, r.region.LatitudeDelta); err != nil {
		return fmt.Errorf("failed to write map header: %w", err)
	}
	if len(properties) == 0 {
		_, err := fmt.Fprintln(w, domain.MsgNoMappableProperties)
		return err
	}

	clusters := r.cluster(properties)
	logger.Debug("Map clusters built", port.Fields{"properties": len(properties), "clusters": len(clusters)})

	for _, c := range clusters {
		if _, err := fmt.Fprintf(w, "\n[%s] %.4f, %.4f - %d pin(s)\n", c.cell, c.lat, c.lng, len(c.properties)); err != nil {
			return fmt.Errorf("failed to write cluster: %w", err)
		}
		for _, p := range c.properties {
			if _, err := fmt.Fprintf(w, "  • %s - %s (%s)\n", p.Title, domain.FormatPrice(p.PriceUSD), p.ID); err != nil {
				return fmt.Errorf("failed to write pin: %w", err)
			}
		}
	}
	return nil
}

// cluster сохраняет порядок первого появления ячейки.
func (r *TerminalRenderer) cluster(properties []domain.Property) []*cluster {
	byCell := make(map[string]*cluster)
	var order []string
	for _, p := range properties {
		if !p.HasCoordinates() {
			continue
		}
		cell := geohash.EncodeWithPrecision(*p.Latitude, *p.Longitude, r.precision)
		c, ok := byCell[cell]
		if !ok {
			lat, lng := geohash.DecodeCenter(cell)
			c = &cluster{cell: cell, lat: lat, lng: lng}
			byCell[cell] = c
			order = append(order, cell)
		}
		c.properties = append(c.properties, p)
	}

	result := make([]*cluster, 0, len(order))
	for _, cell := range order {
		result = append(result, byCell[cell])
	}
	sort.SliceStable(result, func(i, j int) bool {
		return len(result[i].properties) > len(result[j].properties)
	})
	return result
}
