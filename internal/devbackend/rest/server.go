package rest

import (
	"context"
	"fmt"
	"net/http"

	core_port "aimlink-client/internal/core/port"
	"aimlink-client/internal/devbackend/auth"
	"aimlink-client/internal/devbackend/store"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Server - REST API стенда.
type Server struct {
	httpServer *http.Server
	logger     core_port.LoggerPort
}

// NewRouter собирает маршруты /api.
func NewRouter(handlers *Handlers, tokens *auth.TokenService, repo store.Repository, allowedOrigins []string, baseLogger core_port.LoggerPort) http.Handler {
	r := chi.NewRouter()

	r.Use(LoggerMiddleware(baseLogger))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token", "X-Trace-ID"},
		ExposedHeaders:   []string{"X-Trace-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	requireAdmin := AuthMiddleware(tokens, repo)

	r.Route("/api", func(r chi.Router) {
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			RespondWithJSON(w, http.StatusOK, MessageResponse{Message: "Aimlink Property API"})
		})
		r.Post("/auth/login", handlers.Login)

		r.Route("/properties", func(r chi.Router) {
			r.Get("/", handlers.ListProperties)
			r.Get("/{propertyID}", handlers.GetProperty)

			r.Group(func(r chi.Router) {
				r.Use(requireAdmin)
				r.Post("/", handlers.CreateProperty)
				r.Put("/{propertyID}", handlers.UpdateProperty)
				r.Delete("/{propertyID}", handlers.DeleteProperty)
			})
		})

		r.Route("/leads", func(r chi.Router) {
			r.Post("/", handlers.CreateLead)

			r.Group(func(r chi.Router) {
				r.Use(requireAdmin)
				r.Get("/", handlers.ListLeads)
				r.Put("/{leadID}", handlers.UpdateLead)
			})
		})

		r.With(requireAdmin).Get("/dashboard/stats", handlers.DashboardStats)
	})

	return r
}

// NewServer создает новый экземпляр сервера.
func NewServer(port string, router http.Handler, baseLogger core_port.LoggerPort) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:    ":" + port,
			Handler: router,
		},
		logger: baseLogger,
	}
}

// Start запускает HTTP-сервер.
func (s *Server) Start() error {
	s.logger.Info("Starting REST API server", core_port.Fields{"address": s.httpServer.Addr})
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		s.logger.Error("Could not start server", err, nil)
		return fmt.Errorf("could not start server: %w", err)
	}
	return nil
}

// Stop корректно останавливает сервер.
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping REST API server...", nil)
	return s.httpServer.Shutdown(ctx)
}
