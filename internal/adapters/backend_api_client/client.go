package backend_api_client

import (
	"aimlink-client/internal/contextkeys"
	"aimlink-client/internal/contracts"
	"aimlink-client/internal/core/domain"
	"aimlink-client/internal/core/port"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Client - REST клиент бэкенда Aimlink Property. Реализует port.BackendPort.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

var _ port.BackendPort = (*Client)(nil)

// NewClient - конструктор. timeout == 0 означает таймауты транспорта по умолчанию.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// apiCall описывает один запрос к бэкенду.
type apiCall struct {
	method  string
	path    string
	query   url.Values
	session *domain.Session
	schema  string
	payload interface{}
	out     interface{}
}

// doRequest - внутренний хелпер для выполнения запросов
func (c *Client) doRequest(ctx context.Context, method, rawURL string, session *domain.Session, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, rawURL, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if traceID := contextkeys.TraceIDFromContext(ctx); traceID != "" {
		req.Header.Set("X-Trace-ID", traceID)
	}
	if session != nil {
		req.Header.Set("Authorization", "Bearer "+session.Token)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	return c.httpClient.Do(req)
}

func (c *Client) call(ctx context.Context, clientLogger port.LoggerPort, call apiCall) error {
	if call.session != nil && call.session.IsZero() {
		return domain.ErrNotAuthenticated
	}

	fullURL := c.baseURL + call.path
	if len(call.query) > 0 {
		fullURL += "?" + call.query.Encode()
	}

	var body io.Reader
	if call.payload != nil {
		data, err := json.Marshal(call.payload)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		if call.schema != "" {
			if err := contracts.Validate(call.schema, data); err != nil {
				clientLogger.Error("Request body rejected by schema", err, port.Fields{"schema": call.schema})
				return err
			}
		}
		body = bytes.NewReader(data)
	}

	clientLogger.Debug("Sending request to backend", port.Fields{"url": fullURL, "http_method": call.method})

	resp, err := c.doRequest(ctx, call.method, fullURL, call.session, body)
	if err != nil {
		clientLogger.Error("Failed to perform request to backend", err, nil)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		err := responseError(resp, call.session != nil)
		clientLogger.Error("Received error response from backend", err, port.Fields{"status_code": resp.StatusCode})
		return err
	}

	if call.out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(call.out); err != nil {
		clientLogger.Error("Failed to decode response from backend", err, nil)
		return fmt.Errorf("failed to decode backend response: %w", err)
	}
	return nil
}

// responseError превращает ответ не 2xx в доменную ошибку.
// 401 на запросе с сессией означает, что токен больше не действует.
func responseError(resp *http.Response, authenticated bool) error {
	bodyBytes, _ := io.ReadAll(resp.Body)

	apiErr := &domain.APIError{StatusCode: resp.StatusCode}
	var errResp errorResponse
	if json.Unmarshal(bodyBytes, &errResp) == nil {
		apiErr.Detail = errResp.message()
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized && authenticated:
		return fmt.Errorf("%w: %w", domain.ErrSessionExpired, apiErr)
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: %w", domain.ErrNotFound, apiErr)
	default:
		return apiErr
	}
}

func (c *Client) logger(ctx context.Context, method string) port.LoggerPort {
	return contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "BackendApiClient",
		"method":    method,
	})
}

// Login - POST /api/auth/login.
func (c *Client) Login(ctx context.Context, email, password string) (*domain.Session, error) {
	clientLogger := c.logger(ctx, "Login")

	var resp loginResponse
	err := c.call(ctx, clientLogger, apiCall{
		method:  http.MethodPost,
		path:    "/api/auth/login",
		payload: loginRequest{Email: email, Password: password},
		out:     &resp,
	})
	if err != nil {
		return nil, err
	}
	if resp.Token == "" {
		return nil, fmt.Errorf("backend returned empty token")
	}

	clientLogger.Info("Admin logged in", port.Fields{"email": resp.Email})
	return &domain.Session{Token: resp.Token, Email: resp.Email}, nil
}

// ListProperties - GET /api/properties с серверными фильтрами.
func (c *Client) ListProperties(ctx context.Context, query domain.PropertyQuery) ([]domain.Property, error) {
	clientLogger := c.logger(ctx, "ListProperties")

	params := url.Values{}
	if query.Status != "" {
		params.Set("status", string(query.Status))
	}
	if query.Area != "" {
		params.Set("area", string(query.Area))
	}
	if query.PropertyType != "" {
		params.Set("property_type", string(query.PropertyType))
	}
	if query.MinPrice != nil {
		params.Set("min_price", strconv.FormatFloat(*query.MinPrice, 'f', -1, 64))
	}
	if query.MaxPrice != nil {
		params.Set("max_price", strconv.FormatFloat(*query.MaxPrice, 'f', -1, 64))
	}

	var dtos []PropertyResponse
	if err := c.call(ctx, clientLogger, apiCall{method: http.MethodGet, path: "/api/properties", query: params, out: &dtos}); err != nil {
		return nil, err
	}

	result := make([]domain.Property, len(dtos))
	for i, dto := range dtos {
		result[i] = dto.toDomain()
	}
	clientLogger.Info("Successfully received properties", port.Fields{"properties_count": len(result)})
	return result, nil
}

// GetProperty - GET /api/properties/{id}.
func (c *Client) GetProperty(ctx context.Context, id string) (*domain.Property, error) {
	clientLogger := c.logger(ctx, "GetProperty").WithFields(port.Fields{"property_id": id})

	var dto PropertyResponse
	if err := c.call(ctx, clientLogger, apiCall{method: http.MethodGet, path: "/api/properties/" + url.PathEscape(id), out: &dto}); err != nil {
		return nil, err
	}
	p := dto.toDomain()
	return &p, nil
}

// CreateProperty - POST /api/properties.
func (c *Client) CreateProperty(ctx context.Context, session domain.Session, payload domain.NewProperty) (*domain.Property, error) {
	clientLogger := c.logger(ctx, "CreateProperty")

	var dto PropertyResponse
	err := c.call(ctx, clientLogger, apiCall{
		method:  http.MethodPost,
		path:    "/api/properties",
		session: &session,
		schema:  contracts.PropertyCreateV1,
		payload: newCreatePropertyRequest(payload),
		out:     &dto,
	})
	if err != nil {
		return nil, err
	}
	p := dto.toDomain()
	clientLogger.Info("Property created", port.Fields{"property_id": p.ID, "images_count": len(p.Images)})
	return &p, nil
}

// UpdateProperty - PUT /api/properties/{id}, отправляются только заданные поля.
func (c *Client) UpdateProperty(ctx context.Context, session domain.Session, id string, update domain.PropertyUpdate) (*domain.Property, error) {
	clientLogger := c.logger(ctx, "UpdateProperty").WithFields(port.Fields{"property_id": id})

	var dto PropertyResponse
	err := c.call(ctx, clientLogger, apiCall{
		method:  http.MethodPut,
		path:    "/api/properties/" + url.PathEscape(id),
		session: &session,
		schema:  contracts.PropertyUpdateV1,
		payload: newUpdatePropertyRequest(update),
		out:     &dto,
	})
	if err != nil {
		return nil, err
	}
	p := dto.toDomain()
	return &p, nil
}

// DeleteProperty - DELETE /api/properties/{id}.
func (c *Client) DeleteProperty(ctx context.Context, session domain.Session, id string) error {
	clientLogger := c.logger(ctx, "DeleteProperty").WithFields(port.Fields{"property_id": id})
	return c.call(ctx, clientLogger, apiCall{
		method:  http.MethodDelete,
		path:    "/api/properties/" + url.PathEscape(id),
		session: &session,
	})
}

// GetDashboardStats - GET /api/dashboard/stats.
func (c *Client) GetDashboardStats(ctx context.Context, session domain.Session) (*domain.DashboardStats, error) {
	clientLogger := c.logger(ctx, "GetDashboardStats")

	var dto DashboardStatsResponse
	if err := c.call(ctx, clientLogger, apiCall{method: http.MethodGet, path: "/api/dashboard/stats", session: &session, out: &dto}); err != nil {
		return nil, err
	}
	return &domain.DashboardStats{
		TotalProperties:  dto.TotalProperties,
		ActiveProperties: dto.ActiveProperties,
		DraftProperties:  dto.DraftProperties,
		SoldProperties:   dto.SoldProperties,
		PendingLeads:     dto.PendingLeads,
		TotalLeads:       dto.TotalLeads,
	}, nil
}

// CreateLead - POST /api/leads. Авторизация не нужна.
func (c *Client) CreateLead(ctx context.Context, lead domain.NewLead) (*domain.Lead, error) {
	clientLogger := c.logger(ctx, "CreateLead").WithFields(port.Fields{"property_id": lead.PropertyID})

	req := createLeadRequest{PropertyID: lead.PropertyID, Name: lead.Name, Phone: lead.Phone}
	if lead.Message != "" {
		req.Message = &lead.Message
	}

	var dto LeadResponse
	err := c.call(ctx, clientLogger, apiCall{
		method:  http.MethodPost,
		path:    "/api/leads",
		schema:  contracts.LeadCreateV1,
		payload: req,
		out:     &dto,
	})
	if err != nil {
		return nil, err
	}
	l := dto.toDomain()
	return &l, nil
}

// ListLeads - GET /api/leads, пустой status означает все заявки.
func (c *Client) ListLeads(ctx context.Context, session domain.Session, status domain.LeadStatus) ([]domain.Lead, error) {
	clientLogger := c.logger(ctx, "ListLeads")

	params := url.Values{}
	if status != "" {
		params.Set("status", string(status))
	}

	var dtos []LeadResponse
	if err := c.call(ctx, clientLogger, apiCall{method: http.MethodGet, path: "/api/leads", query: params, session: &session, out: &dtos}); err != nil {
		return nil, err
	}

	result := make([]domain.Lead, len(dtos))
	for i, dto := range dtos {
		result[i] = dto.toDomain()
	}
	clientLogger.Info("Successfully received leads", port.Fields{"leads_count": len(result)})
	return result, nil
}

// UpdateLeadStatus - PUT /api/leads/{id}.
func (c *Client) UpdateLeadStatus(ctx context.Context, session domain.Session, id string, status domain.LeadStatus) (*domain.Lead, error) {
	clientLogger := c.logger(ctx, "UpdateLeadStatus").WithFields(port.Fields{"lead_id": id, "status": status})

	var dto LeadResponse
	err := c.call(ctx, clientLogger, apiCall{
		method:  http.MethodPut,
		path:    "/api/leads/" + url.PathEscape(id),
		session: &session,
		schema:  contracts.LeadStatusV1,
		payload: updateLeadRequest{Status: string(status)},
		out:     &dto,
	})
	if err != nil {
		return nil, err
	}
	l := dto.toDomain()
	return &l, nil
}
