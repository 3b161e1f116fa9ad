package maprender

import (
	"aimlink-client/internal/core/domain"
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pinned(id string, lat, lng float64) domain.Property {
	return domain.Property{ID: id, Title: "Property " + id, PriceUSD: 250000, Latitude: &lat, Longitude: &lng}
}

func TestTerminalRendererClustersNearbyPins(t *testing.T) {
	r := NewTerminalRenderer(DefaultRegion, 4)
	var buf bytes.Buffer
	err := r.Render(context.Background(), &buf, []domain.Property{
		pinned("a", 33.8938, 35.5018),
		pinned("b", 33.8940, 35.5020),
		pinned("c", 34.4367, 35.8497),
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Map centered at 33.8938, 35.5018")
	assert.Contains(t, out, "2 pin(s)")
	assert.Contains(t, out, "1 pin(s)")
	assert.Contains(t, out, "$250,000")
	assert.Less(t, strings.Index(out, "Property a"), strings.Index(out, "Property c"))
}

func TestTerminalRendererEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewTerminalRenderer(DefaultRegion, 0).Render(context.Background(), &buf, nil))
	assert.Contains(t, buf.String(), domain.MsgNoMappableProperties)
}

func TestGeoJSONRendererSkipsUnpinned(t *testing.T) {
	var buf bytes.Buffer
	err := NewGeoJSONRenderer().Render(context.Background(), &buf, []domain.Property{
		pinned("a", 33.8938, 35.5018),
		{ID: "b", Title: "No coords"},
	})
	require.NoError(t, err)

	var got featureCollection
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "FeatureCollection", got.Type)
	require.Len(t, got.Features, 1)
	assert.Equal(t, [2]float64{35.5018, 33.8938}, got.Features[0].Geometry.Coordinates)
	assert.Equal(t, "a", got.Features[0].Properties.ID)
	assert.NotEmpty(t, got.Features[0].Properties.Geohash)
}

func TestNewSelectsRenderer(t *testing.T) {
	r, err := New("web", DefaultRegion, 5)
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, r.Render(context.Background(), &buf, []domain.Property{pinned("a", 1, 1)}))
	assert.Contains(t, buf.String(), domain.MsgMapWebFallback)

	_, err = New("satellite", DefaultRegion, 5)
	assert.Error(t, err)
}
