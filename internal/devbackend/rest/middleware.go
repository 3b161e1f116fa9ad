package rest

import (
	"aimlink-client/internal/contextkeys"
	"aimlink-client/internal/core/port"
	"aimlink-client/internal/devbackend/auth"
	"aimlink-client/internal/devbackend/store"
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

// LoggerMiddleware создает контекстный логгер для каждого запроса.
func LoggerMiddleware(logger port.LoggerPort) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// trace_id приходит от клиента, иначе генерируем
			traceID := r.Header.Get("X-Trace-ID")
			if _, err := uuid.Parse(traceID); err != nil {
				traceID = uuid.New().String()
			}

			coreLogger := logger.WithFields(port.Fields{"trace_id": traceID})
			httpLogger := coreLogger.WithFields(port.Fields{
				"http_method": r.Method,
				"http_path":   r.URL.Path,
				"remote_addr": r.RemoteAddr,
			})

			ctx := contextkeys.ContextWithLogger(r.Context(), coreLogger)
			ctx = contextkeys.ContextWithTraceID(ctx, traceID)

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			ww.Header().Set("X-Trace-ID", traceID)
			startTime := time.Now()

			httpLogger.Info("Request started", nil)

			next.ServeHTTP(ww, r.WithContext(ctx))

			httpLogger.Info("Request finished", port.Fields{
				"status_code":   ww.Status(),
				"bytes_written": ww.BytesWritten(),
				"duration_ms":   time.Since(startTime).Milliseconds(),
			})
		})
	}
}

type contextKey string

const adminEmailKey = contextKey("adminEmail")

func adminEmailFromContext(ctx context.Context) string {
	email, _ := ctx.Value(adminEmailKey).(string)
	return email
}

// AuthMiddleware проверяет Bearer-токен и наличие администратора.
func AuthMiddleware(tokens *auth.TokenService, repo store.Repository) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"middleware": "Auth"})

			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || strings.TrimSpace(token) == "" {
				WriteJSONError(w, http.StatusForbidden, "Not authenticated")
				return
			}

			email, err := tokens.ValidateToken(r.Context(), strings.TrimSpace(token))
			if err != nil {
				if errors.Is(err, auth.ErrTokenExpired) {
					WriteJSONError(w, http.StatusUnauthorized, auth.ErrTokenExpired.Error())
					return
				}
				WriteJSONError(w, http.StatusUnauthorized, auth.ErrTokenInvalid.Error())
				return
			}

			admin, err := repo.FindAdminByEmail(r.Context(), email)
			if err != nil {
				logger.Error("Failed to load admin", err, nil)
				WriteJSONError(w, http.StatusInternalServerError, "Internal server error")
				return
			}
			if admin == nil {
				WriteJSONError(w, http.StatusUnauthorized, "Admin not found")
				return
			}

			ctx := context.WithValue(r.Context(), adminEmailKey, admin.Email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
