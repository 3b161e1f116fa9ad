package backend_api_client

import (
	"aimlink-client/internal/contextkeys"
	"aimlink-client/internal/core/domain"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestHeaders(t *testing.T) {
	var got *http.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Clone(context.Background())
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"total_properties":3,"active_properties":2,"draft_properties":1,"sold_properties":0,"pending_leads":4,"total_leads":5}`))
	}))
	defer srv.Close()

	ctx := contextkeys.ContextWithTraceID(context.Background(), "trace-1")
	stats, err := NewClient(srv.URL+"/", 0).GetDashboardStats(ctx, domain.Session{Token: "tok", Email: "a@b.c"})
	require.NoError(t, err)

	assert.Equal(t, "/api/dashboard/stats", got.URL.Path)
	assert.Equal(t, "Bearer tok", got.Header.Get("Authorization"))
	assert.Equal(t, "trace-1", got.Header.Get("X-Trace-ID"))
	assert.Equal(t, 3, stats.TotalProperties)
	assert.Equal(t, 4, stats.PendingLeads)
}

func TestListPropertiesQuery(t *testing.T) {
	var query string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.RawQuery
		w.Write([]byte(`[{"id":"1","title":"Flat","area":"Beirut","price_usd":100,"images":null,"created_at":"2024-05-01T10:00:00"}]`))
	}))
	defer srv.Close()

	minPrice := 1000.5
	props, err := NewClient(srv.URL, 0).ListProperties(context.Background(), domain.PropertyQuery{
		Status:   domain.StatusActive,
		Area:     domain.AreaMountLebanon,
		MinPrice: &minPrice,
	})
	require.NoError(t, err)
	assert.Equal(t, "area=Mount+Lebanon&min_price=1000.5&status=active", query)
	require.Len(t, props, 1)
	assert.NotNil(t, props[0].Images)
	assert.Equal(t, time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC), props[0].CreatedAt)
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		session    bool
		wantIs     error
		wantDetail string
	}{
		{"expired session", http.StatusUnauthorized, `{"detail":"Token has expired"}`, true, domain.ErrSessionExpired, "Token has expired"},
		{"bad credentials", http.StatusUnauthorized, `{"detail":"Invalid email or password"}`, false, nil, "Invalid email or password"},
		{"not found", http.StatusNotFound, `{"detail":"Property not found"}`, false, domain.ErrNotFound, "Property not found"},
		{"validation list", http.StatusUnprocessableEntity, `{"detail":[{"msg":"price must be positive"},{"msg":"title required"}]}`, false, nil, "price must be positive; title required"},
		{"plain text", http.StatusInternalServerError, `oops`, false, nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				io.WriteString(w, tt.body)
			}))
			defer srv.Close()

			client := NewClient(srv.URL, 0)
			var err error
			if tt.session {
				_, err = client.ListLeads(context.Background(), domain.Session{Token: "t"}, "")
			} else {
				_, err = client.GetProperty(context.Background(), "42")
			}

			var apiErr *domain.APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, tt.wantDetail, apiErr.Detail)
			if tt.wantIs != nil {
				assert.ErrorIs(t, err, tt.wantIs)
			} else {
				assert.NotErrorIs(t, err, domain.ErrSessionExpired)
			}
		})
	}
}

func TestCreateLeadSendsNullMessage(t *testing.T) {
	var body map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.Write([]byte(`{"id":"l1","property_id":"p1","name":"Rami","phone":"1","message":null,"status":"pending","created_at":"2024-05-01T10:00:00Z"}`))
	}))
	defer srv.Close()

	lead, err := NewClient(srv.URL, 0).CreateLead(context.Background(), domain.NewLead{PropertyID: "p1", Name: "Rami", Phone: "1"})
	require.NoError(t, err)
	assert.Nil(t, body["message"])
	assert.Equal(t, domain.LeadPending, lead.Status)
	assert.Empty(t, lead.Message)
}

func TestSchemaRejectsBeforeSending(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, 0).UpdateLeadStatus(context.Background(), domain.Session{Token: "t"}, "l1", domain.LeadStatus("archived"))
	assert.Error(t, err)
	assert.False(t, called)
}

func TestCancelledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewClient(srv.URL, 0).ListProperties(ctx, domain.PropertyQuery{})
	assert.ErrorIs(t, err, context.Canceled)
}
