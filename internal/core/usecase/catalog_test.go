package usecase

import (
	"aimlink-client/internal/core/domain"
	"bytes"
	"context"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func catalogFixture() *fakeBackend {
	return &fakeBackend{properties: []domain.Property{
		{ID: "1", Title: "Sea View Flat", Area: domain.AreaBeirut, PropertyType: domain.TypeApartment, Latitude: ptr(33.89), Longitude: ptr(35.50)},
		{ID: "2", Title: "Mountain Villa", Area: domain.AreaKeserwan, PropertyType: domain.TypeVilla},
	}}
}

func TestHomeCatalog(t *testing.T) {
	backend := catalogFixture()
	uc := NewHomeCatalogUseCase(backend)

	view, err := uc.Execute(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, domain.TitleFeatured, view.Title)
	assert.Len(t, view.Properties, 2)
	assert.Equal(t, domain.StatusActive, backend.lastQuery.Status)

	view, err = uc.Execute(context.Background(), "villa")
	require.NoError(t, err)
	assert.Equal(t, domain.TitleSearchResults, view.Title)
	require.Len(t, view.Properties, 1)
	assert.Equal(t, "2", view.Properties[0].ID)
}

func TestHomeCatalogSearchesOnlyFeatured(t *testing.T) {
	backend := &fakeBackend{}
	for i := 0; i < 8; i++ {
		backend.properties = append(backend.properties, domain.Property{ID: fmt.Sprint(i), Title: fmt.Sprintf("Flat %d", i)})
	}

	view, err := NewHomeCatalogUseCase(backend).Execute(context.Background(), "Flat 7")
	require.NoError(t, err)
	assert.Empty(t, view.Properties)
	assert.Equal(t, domain.MsgNoPropertiesFound, view.EmptyText)
}

func TestListingsPassesServerFilters(t *testing.T) {
	backend := catalogFixture()
	uc := NewListingsUseCase(backend)

	result, err := uc.Execute(context.Background(), domain.ListingsRequest{Area: domain.AreaBeirut, MinPrice: ptr(1000.0), Query: "sea"})
	require.NoError(t, err)
	assert.Len(t, result, 1)
	assert.Equal(t, domain.AreaBeirut, backend.lastQuery.Area)
	assert.Equal(t, domain.StatusActive, backend.lastQuery.Status)
	assert.Equal(t, 1000.0, *backend.lastQuery.MinPrice)

	_, err = uc.Execute(context.Background(), domain.ListingsRequest{Area: "Atlantis"})
	assert.EqualError(t, err, domain.MsgInvalidArea)
}

type recordingRenderer struct {
	got []domain.Property
}

func (r *recordingRenderer) Render(ctx context.Context, w io.Writer, properties []domain.Property) error {
	r.got = properties
	_, err := fmt.Fprintf(w, "%d pins", len(properties))
	return err
}

func TestMapViewKeepsOnlyLocated(t *testing.T) {
	renderer := &recordingRenderer{}
	var buf bytes.Buffer

	n, err := NewMapViewUseCase(catalogFixture(), renderer).Execute(context.Background(), &buf)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	require.Len(t, renderer.got, 1)
	assert.Equal(t, "1", renderer.got[0].ID)
	assert.Equal(t, "1 pins", buf.String())
}

func TestPropertyDetailNotFound(t *testing.T) {
	_, err := NewPropertyDetailUseCase(catalogFixture()).Execute(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, "Property not found", domain.UserMessage(err, domain.MsgLoadDetailsFailed))
}
