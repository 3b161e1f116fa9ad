package store

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProperty(title, area, status string, price float64) *Property {
	return &Property{
		Title:          title,
		Area:           area,
		LocationDetail: "Center",
		PriceUSD:       price,
		PropertyType:   "Apartment",
		SizeSqm:        120,
		Description:    "test",
		Status:         status,
	}
}

func TestMemoryRepositoryListFiltersAndOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	old := newProperty("Old", "Beirut", "active", 200000)
	old.CreatedAt = base
	fresh := newProperty("Fresh", "Beirut", "active", 400000)
	fresh.CreatedAt = base.Add(time.Hour)
	sold := newProperty("Sold", "Keserwan", "sold", 300000)
	for _, p := range []*Property{old, fresh, sold} {
		require.NoError(t, repo.CreateProperty(ctx, p))
	}

	list, err := repo.ListProperties(ctx, PropertyFilter{Status: "active"})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Fresh", list[0].Title)
	assert.Equal(t, "Old", list[1].Title)

	list, err = repo.ListProperties(ctx, PropertyFilter{Status: "active", MinPrice: 300000})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Fresh", list[0].Title)

	list, err = repo.ListProperties(ctx, PropertyFilter{Area: "Keserwan"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.NotNil(t, list[0].Images)
}

func TestMemoryRepositoryUpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()
	p := newProperty("Villa", "Mount Lebanon", "active", 900000)
	require.NoError(t, repo.CreateProperty(ctx, p))

	status := "sold"
	updated, err := repo.UpdateProperty(ctx, p.ID, PropertyPatch{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, "sold", updated.Status)
	assert.Equal(t, "Villa", updated.Title)

	missing, err := repo.UpdateProperty(ctx, uuid.New(), PropertyPatch{Status: &status})
	require.NoError(t, err)
	assert.Nil(t, missing)

	deleted, err := repo.DeleteProperty(ctx, p.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	got, err := repo.GetProperty(ctx, p.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	deleted, err = repo.DeleteProperty(ctx, p.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestMemoryRepositoryLeadsAndStats(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()
	p := newProperty("Chalet", "Keserwan", "draft", 150000)
	require.NoError(t, repo.CreateProperty(ctx, p))

	first := &Lead{PropertyID: p.ID, Name: "Rami", Phone: "+961 70 000 000", Status: "pending"}
	second := &Lead{PropertyID: p.ID, Name: "Maya", Phone: "+961 71 000 000", Status: "pending"}
	require.NoError(t, repo.CreateLead(ctx, first))
	require.NoError(t, repo.CreateLead(ctx, second))

	_, err := repo.UpdateLeadStatus(ctx, first.ID, "contacted")
	require.NoError(t, err)

	pending, err := repo.ListLeads(ctx, "pending")
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "Maya", pending[0].Name)

	stats, err := repo.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, Stats{TotalProperties: 1, DraftProperties: 1, PendingLeads: 1, TotalLeads: 2}, *stats)
}

func TestMemoryRepositoryAdmins(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()
	require.NoError(t, repo.CreateAdmin(ctx, &Admin{Email: "admin@aimlinkproperties.com", PasswordHash: "x"}))
	assert.ErrorIs(t, repo.CreateAdmin(ctx, &Admin{Email: "admin@aimlinkproperties.com"}), ErrAdminExists)

	a, err := repo.FindAdminByEmail(ctx, "admin@aimlinkproperties.com")
	require.NoError(t, err)
	require.NotNil(t, a)
	assert.NotEqual(t, uuid.Nil, a.ID)

	a, err = repo.FindAdminByEmail(ctx, "nobody@aimlinkproperties.com")
	require.NoError(t, err)
	assert.Nil(t, a)
}

func TestBuildPropertyWhere(t *testing.T) {
	where, args := buildPropertyWhere(PropertyFilter{})
	assert.Empty(t, where)
	assert.Empty(t, args)

	where, args = buildPropertyWhere(PropertyFilter{Area: "Beirut", Status: "active", MaxPrice: 500000})
	assert.Equal(t, " WHERE area = $1 AND status = $2 AND price_usd <= $3", where)
	assert.Equal(t, []any{"Beirut", "active", 500000.0}, args)
}

func TestBuildPropertySet(t *testing.T) {
	title := "New title"
	price := 99.5
	set, args := buildPropertySet(PropertyPatch{Title: &title, PriceUSD: &price})
	assert.Equal(t, "title = $1, price_usd = $2, updated_at = $3", set)
	require.Len(t, args, 3)
	assert.Equal(t, "New title", args[0])
	assert.Equal(t, 99.5, args[1])
}
