package rest_test

import (
	"aimlink-client/internal/adapters/backend_api_client"
	"aimlink-client/internal/contextkeys"
	"aimlink-client/internal/core/domain"
	"aimlink-client/internal/devbackend/auth"
	"aimlink-client/internal/devbackend/rest"
	"aimlink-client/internal/devbackend/store"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret   = "test-secret"
	testEmail    = "admin@aimlinkproperties.com"
	testPassword = "admin123"
)

type testEnv struct {
	server *httptest.Server
	client *backend_api_client.Client
	repo   *store.MemoryRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()

	repo := store.NewMemoryRepository()
	hash, err := auth.HashPassword(testPassword)
	require.NoError(t, err)
	require.NoError(t, repo.CreateAdmin(ctx, &store.Admin{Email: testEmail, PasswordHash: hash}))

	tokens, err := auth.NewTokenService(testSecret, time.Hour)
	require.NoError(t, err)

	logger := contextkeys.LoggerFromContext(ctx)
	router := rest.NewRouter(rest.NewHandlers(repo, tokens), tokens, repo, []string{"*"}, logger)
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return &testEnv{server: srv, client: backend_api_client.NewClient(srv.URL, 5*time.Second), repo: repo}
}

func (e *testEnv) login(t *testing.T) domain.Session {
	t.Helper()
	session, err := e.client.Login(context.Background(), testEmail, testPassword)
	require.NoError(t, err)
	return *session
}

func newProperty(title string, price float64) domain.NewProperty {
	bedrooms := 2
	lat, lng := 33.8938, 35.5018
	return domain.NewProperty{
		Title:          title,
		Area:           domain.AreaBeirut,
		LocationDetail: "Hamra",
		PriceUSD:       price,
		PropertyType:   domain.TypeApartment,
		SizeSqm:        120,
		Bedrooms:       &bedrooms,
		Description:    "Bright apartment",
		Images:         []string{},
		Latitude:       &lat,
		Longitude:      &lng,
		Status:         domain.StatusActive,
	}
}

func decodeDetail(t *testing.T, resp *http.Response) string {
	t.Helper()
	var body struct {
		Detail string `json:"detail"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body.Detail
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	session := env.login(t)
	assert.Equal(t, testEmail, session.Email)
	assert.NotEmpty(t, session.Token)

	_, err := env.client.Login(ctx, testEmail, "wrong")
	var apiErr *domain.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "Invalid email or password", apiErr.Detail)
	assert.NotErrorIs(t, err, domain.ErrSessionExpired)
}

func TestPropertyLifecycle(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	session := env.login(t)

	created, err := env.client.CreateProperty(ctx, session, newProperty("Sea View Flat", 450000))
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, domain.StatusActive, created.Status)
	assert.True(t, created.HasCoordinates())
	assert.False(t, created.CreatedAt.IsZero())

	got, err := env.client.GetProperty(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Sea View Flat", got.Title)
	require.NotNil(t, got.Bedrooms)
	assert.Equal(t, 2, *got.Bedrooms)

	price := 500000.0
	sold := domain.StatusSold
	updated, err := env.client.UpdateProperty(ctx, session, created.ID, domain.PropertyUpdate{PriceUSD: &price, Status: &sold})
	require.NoError(t, err)
	assert.Equal(t, 500000.0, updated.PriceUSD)
	assert.Equal(t, domain.StatusSold, updated.Status)
	assert.Equal(t, "Sea View Flat", updated.Title)

	require.NoError(t, env.client.DeleteProperty(ctx, session, created.ID))

	_, err = env.client.GetProperty(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = env.client.DeleteProperty(ctx, session, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListPropertiesDefaultsToActive(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	session := env.login(t)

	_, err := env.client.CreateProperty(ctx, session, newProperty("Cheap", 100000))
	require.NoError(t, err)
	expensive, err := env.client.CreateProperty(ctx, session, newProperty("Expensive", 900000))
	require.NoError(t, err)
	draft := newProperty("Hidden", 300000)
	draft.Status = domain.StatusDraft
	_, err = env.client.CreateProperty(ctx, session, draft)
	require.NoError(t, err)

	active, err := env.client.ListProperties(ctx, domain.PropertyQuery{})
	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, expensive.ID, active[0].ID, "newest first")

	drafts, err := env.client.ListProperties(ctx, domain.PropertyQuery{Status: domain.StatusDraft})
	require.NoError(t, err)
	require.Len(t, drafts, 1)
	assert.Equal(t, "Hidden", drafts[0].Title)

	minPrice := 200000.0
	filtered, err := env.client.ListProperties(ctx, domain.PropertyQuery{MinPrice: &minPrice, Area: domain.AreaBeirut})
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "Expensive", filtered[0].Title)

	zero := 0.0
	all, err := env.client.ListProperties(ctx, domain.PropertyQuery{MinPrice: &zero, MaxPrice: &zero})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestPropertyErrors(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	session := env.login(t)

	_, err := env.client.GetProperty(ctx, "not-a-uuid")
	var apiErr *domain.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "Invalid property ID", apiErr.Detail)

	created, err := env.client.CreateProperty(ctx, session, newProperty("Flat", 100000))
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPut, env.server.URL+"/api/properties/"+created.ID, strings.NewReader(`{}`))
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+session.Token)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "No data to update", decodeDetail(t, resp))
}

func TestCreatePropertySchemaRejection(t *testing.T) {
	env := newTestEnv(t)
	session := env.login(t)

	body := `{"title":"x","area":"Beirut","location_detail":"Hamra","price_usd":-5,"property_type":"Apartment","size_sqm":100,"description":"d"}`
	req, err := http.NewRequest(http.MethodPost, env.server.URL+"/api/properties", strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+session.Token)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	var payload struct {
		Detail []struct {
			Msg string `json:"msg"`
		} `json:"detail"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	require.Len(t, payload.Detail, 1)
	assert.NotEmpty(t, payload.Detail[0].Msg)
}

func TestAuthGate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	resp, err := http.Get(env.server.URL + "/api/leads")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "Not authenticated", decodeDetail(t, resp))

	claims := jwt.RegisteredClaims{
		Subject:   testEmail,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = env.client.ListLeads(ctx, domain.Session{Token: expired, Email: testEmail}, "")
	assert.ErrorIs(t, err, domain.ErrSessionExpired)
	var apiErr *domain.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Token has expired", apiErr.Detail)

	_, err = env.client.GetDashboardStats(ctx, domain.Session{Token: "garbage", Email: testEmail})
	assert.ErrorIs(t, err, domain.ErrSessionExpired)
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Invalid token", apiErr.Detail)

	ghost, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "ghost@aimlinkproperties.com",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)
	_, err = env.client.ListLeads(ctx, domain.Session{Token: ghost}, "")
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Admin not found", apiErr.Detail)

	_, err = env.client.ListLeads(ctx, domain.Session{}, "")
	assert.ErrorIs(t, err, domain.ErrNotAuthenticated)
}

func TestLeadsFlow(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	session := env.login(t)

	property, err := env.client.CreateProperty(ctx, session, newProperty("Flat", 100000))
	require.NoError(t, err)

	_, err = env.client.CreateLead(ctx, domain.NewLead{PropertyID: "00000000-0000-0000-0000-000000000000", Name: "Rami", Phone: "+961"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = env.client.CreateLead(ctx, domain.NewLead{PropertyID: "bogus", Name: "Rami", Phone: "+961"})
	var apiErr *domain.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Invalid property ID", apiErr.Detail)

	first, err := env.client.CreateLead(ctx, domain.NewLead{PropertyID: property.ID, Name: "Rami", Phone: "+961 1"})
	require.NoError(t, err)
	assert.Equal(t, domain.LeadPending, first.Status)
	assert.Empty(t, first.Message)

	second, err := env.client.CreateLead(ctx, domain.NewLead{PropertyID: property.ID, Name: "Nour", Phone: "+961 2", Message: "Evening please"})
	require.NoError(t, err)
	assert.Equal(t, "Evening please", second.Message)

	leads, err := env.client.ListLeads(ctx, session, "")
	require.NoError(t, err)
	require.Len(t, leads, 2)
	assert.Equal(t, second.ID, leads[0].ID)

	updated, err := env.client.UpdateLeadStatus(ctx, session, first.ID, domain.LeadContacted)
	require.NoError(t, err)
	assert.Equal(t, domain.LeadContacted, updated.Status)

	// переход назад протоколом не запрещен
	updated, err = env.client.UpdateLeadStatus(ctx, session, first.ID, domain.LeadPending)
	require.NoError(t, err)
	assert.Equal(t, domain.LeadPending, updated.Status)

	pending, err := env.client.ListLeads(ctx, session, domain.LeadPending)
	require.NoError(t, err)
	assert.Len(t, pending, 2)

	_, err = env.client.UpdateLeadStatus(ctx, session, "00000000-0000-0000-0000-000000000000", domain.LeadCompleted)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	stats, err := env.client.GetDashboardStats(ctx, session)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalProperties)
	assert.Equal(t, 1, stats.ActiveProperties)
	assert.Equal(t, 2, stats.TotalLeads)
	assert.Equal(t, 2, stats.PendingLeads)
}

func TestTraceIDEchoed(t *testing.T) {
	env := newTestEnv(t)

	req, err := http.NewRequest(http.MethodGet, env.server.URL+"/api/properties", nil)
	require.NoError(t, err)
	req.Header.Set("X-Trace-ID", "3f2a8c9e-1b7d-4e0a-9c5f-2d6b8a1e4f70")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "3f2a8c9e-1b7d-4e0a-9c5f-2d6b8a1e4f70", resp.Header.Get("X-Trace-ID"))
}
