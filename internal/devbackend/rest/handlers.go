package rest

import (
	"aimlink-client/internal/contextkeys"
	"aimlink-client/internal/contracts"
	"aimlink-client/internal/core/port"
	"aimlink-client/internal/devbackend/auth"
	"aimlink-client/internal/devbackend/store"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// Handlers - обработчики API стенда.
type Handlers struct {
	repo   store.Repository
	tokens *auth.TokenService
}

func NewHandlers(repo store.Repository, tokens *auth.TokenService) *Handlers {
	return &Handlers{repo: repo, tokens: tokens}
}

func (h *Handlers) logger(r *http.Request, handler string) port.LoggerPort {
	return contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": handler})
}

// Login обрабатывает POST /api/auth/login
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	logger := h.logger(r, "Login")

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("Failed to decode login request body", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	handlerLogger := logger.WithFields(port.Fields{"email": req.Email})
	admin, err := h.repo.FindAdminByEmail(r.Context(), req.Email)
	if err != nil {
		handlerLogger.Error("Failed to load admin", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if admin == nil || !auth.CheckPassword(admin.PasswordHash, req.Password) {
		handlerLogger.Warn("Login failed: invalid credentials", nil)
		WriteJSONError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	token, err := h.tokens.GenerateToken(r.Context(), admin.Email)
	if err != nil {
		handlerLogger.Error("Failed to generate token", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	handlerLogger.Info("Admin logged in successfully", nil)
	RespondWithJSON(w, http.StatusOK, LoginResponse{Email: admin.Email, Token: token})
}

func parsePrice(r *http.Request, name string) (float64, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, true
	}
	v, err := strconv.ParseFloat(raw, 64)
	return v, err == nil
}

// ListProperties обрабатывает GET /api/properties. Без status отдаются только активные.
func (h *Handlers) ListProperties(w http.ResponseWriter, r *http.Request) {
	logger := h.logger(r, "ListProperties")
	q := r.URL.Query()

	filter := store.PropertyFilter{
		Area:         q.Get("area"),
		PropertyType: q.Get("property_type"),
		Status:       "active",
	}
	if q.Has("status") {
		filter.Status = q.Get("status")
	}

	var ok bool
	if filter.MinPrice, ok = parsePrice(r, "min_price"); !ok {
		WriteJSONError(w, http.StatusUnprocessableEntity, "min_price must be a number")
		return
	}
	if filter.MaxPrice, ok = parsePrice(r, "max_price"); !ok {
		WriteJSONError(w, http.StatusUnprocessableEntity, "max_price must be a number")
		return
	}

	properties, err := h.repo.ListProperties(r.Context(), filter)
	if err != nil {
		logger.Error("Failed to list properties", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	resp := make([]PropertyResponse, 0, len(properties))
	for _, p := range properties {
		resp = append(resp, toPropertyResponse(p))
	}
	logger.Debug("Properties listed", port.Fields{"count": len(resp)})
	RespondWithJSON(w, http.StatusOK, resp)
}

func parseID(w http.ResponseWriter, r *http.Request, param, invalidDetail string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, param))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, invalidDetail)
		return uuid.Nil, false
	}
	return id, true
}

// GetProperty обрабатывает GET /api/properties/{propertyID}
func (h *Handlers) GetProperty(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "propertyID", "Invalid property ID")
	if !ok {
		return
	}

	p, err := h.repo.GetProperty(r.Context(), id)
	if err != nil {
		h.logger(r, "GetProperty").Error("Failed to get property", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if p == nil {
		WriteJSONError(w, http.StatusNotFound, "Property not found")
		return
	}
	RespondWithJSON(w, http.StatusOK, toPropertyResponse(*p))
}

// CreateProperty обрабатывает POST /api/properties
func (h *Handlers) CreateProperty(w http.ResponseWriter, r *http.Request) {
	logger := h.logger(r, "CreateProperty").WithFields(port.Fields{"admin": adminEmailFromContext(r.Context())})

	var req CreatePropertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("Failed to decode property body", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.applyDefaults()
	if err := validateBody(contracts.PropertyCreateV1, req); err != nil {
		logger.Warn("Property body rejected by schema", port.Fields{"error": err.Error()})
		writeValidationError(w, err)
		return
	}

	p := req.toStore()
	if err := h.repo.CreateProperty(r.Context(), p); err != nil {
		logger.Error("Failed to create property", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	logger.Info("Property created", port.Fields{"property_id": p.ID.String()})
	RespondWithJSON(w, http.StatusOK, toPropertyResponse(*p))
}

// UpdateProperty обрабатывает PUT /api/properties/{propertyID}
func (h *Handlers) UpdateProperty(w http.ResponseWriter, r *http.Request) {
	logger := h.logger(r, "UpdateProperty")

	id, ok := parseID(w, r, "propertyID", "Invalid property ID")
	if !ok {
		return
	}

	var req UpdatePropertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	patch := req.toPatch()
	if patch.IsEmpty() {
		WriteJSONError(w, http.StatusBadRequest, "No data to update")
		return
	}
	if err := validateBody(contracts.PropertyUpdateV1, req); err != nil {
		writeValidationError(w, err)
		return
	}

	p, err := h.repo.UpdateProperty(r.Context(), id, patch)
	if err != nil {
		logger.Error("Failed to update property", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if p == nil {
		WriteJSONError(w, http.StatusNotFound, "Property not found")
		return
	}

	logger.Info("Property updated", port.Fields{"property_id": id.String()})
	RespondWithJSON(w, http.StatusOK, toPropertyResponse(*p))
}

// DeleteProperty обрабатывает DELETE /api/properties/{propertyID}
func (h *Handlers) DeleteProperty(w http.ResponseWriter, r *http.Request) {
	logger := h.logger(r, "DeleteProperty")

	id, ok := parseID(w, r, "propertyID", "Invalid property ID")
	if !ok {
		return
	}

	deleted, err := h.repo.DeleteProperty(r.Context(), id)
	if err != nil {
		logger.Error("Failed to delete property", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if !deleted {
		WriteJSONError(w, http.StatusNotFound, "Property not found")
		return
	}

	logger.Info("Property deleted", port.Fields{"property_id": id.String()})
	RespondWithJSON(w, http.StatusOK, MessageResponse{Message: "Property deleted successfully"})
}

// CreateLead обрабатывает POST /api/leads. Открытый эндпоинт, статус всегда pending.
func (h *Handlers) CreateLead(w http.ResponseWriter, r *http.Request) {
	logger := h.logger(r, "CreateLead")

	var req CreateLeadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validateBody(contracts.LeadCreateV1, req); err != nil {
		writeValidationError(w, err)
		return
	}

	propertyID, err := uuid.Parse(req.PropertyID)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid property ID")
		return
	}
	p, err := h.repo.GetProperty(r.Context(), propertyID)
	if err != nil {
		logger.Error("Failed to check property", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if p == nil {
		WriteJSONError(w, http.StatusNotFound, "Property not found")
		return
	}

	lead := &store.Lead{
		PropertyID: propertyID,
		Name:       req.Name,
		Phone:      req.Phone,
		Message:    req.Message,
		Status:     "pending",
	}
	if err := h.repo.CreateLead(r.Context(), lead); err != nil {
		logger.Error("Failed to create lead", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	logger.Info("Lead created", port.Fields{"lead_id": lead.ID.String(), "property_id": propertyID.String()})
	RespondWithJSON(w, http.StatusOK, toLeadResponse(*lead))
}

// ListLeads обрабатывает GET /api/leads
func (h *Handlers) ListLeads(w http.ResponseWriter, r *http.Request) {
	leads, err := h.repo.ListLeads(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		h.logger(r, "ListLeads").Error("Failed to list leads", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	resp := make([]LeadResponse, 0, len(leads))
	for _, l := range leads {
		resp = append(resp, toLeadResponse(l))
	}
	RespondWithJSON(w, http.StatusOK, resp)
}

// UpdateLead обрабатывает PUT /api/leads/{leadID}
func (h *Handlers) UpdateLead(w http.ResponseWriter, r *http.Request) {
	logger := h.logger(r, "UpdateLead")

	id, ok := parseID(w, r, "leadID", "Invalid lead ID")
	if !ok {
		return
	}

	var req UpdateLeadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validateBody(contracts.LeadStatusV1, req); err != nil {
		writeValidationError(w, err)
		return
	}

	lead, err := h.repo.UpdateLeadStatus(r.Context(), id, req.Status)
	if err != nil {
		logger.Error("Failed to update lead", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if lead == nil {
		WriteJSONError(w, http.StatusNotFound, "Lead not found")
		return
	}

	logger.Info("Lead status updated", port.Fields{"lead_id": id.String(), "status": req.Status})
	RespondWithJSON(w, http.StatusOK, toLeadResponse(*lead))
}

// DashboardStats обрабатывает GET /api/dashboard/stats
func (h *Handlers) DashboardStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.repo.Stats(r.Context())
	if err != nil {
		h.logger(r, "DashboardStats").Error("Failed to count stats", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	RespondWithJSON(w, http.StatusOK, DashboardStatsResponse{
		TotalProperties:  stats.TotalProperties,
		ActiveProperties: stats.ActiveProperties,
		DraftProperties:  stats.DraftProperties,
		SoldProperties:   stats.SoldProperties,
		PendingLeads:     stats.PendingLeads,
		TotalLeads:       stats.TotalLeads,
	})
}
