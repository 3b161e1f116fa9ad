package devbackend

import (
	logger_adapter "aimlink-client/internal/adapters/logger"
	"aimlink-client/internal/configs"
	"aimlink-client/internal/contextkeys"
	"aimlink-client/internal/core/port"
	"aimlink-client/internal/devbackend/auth"
	"aimlink-client/internal/devbackend/rest"
	"aimlink-client/internal/devbackend/store"
	"aimlink-client/internal/fluentlogger"
	"aimlink-client/internal/postgres"
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/fluent/fluent-logger-golang/fluent"
	"github.com/jackc/pgx/v5/pgxpool"
)

// App – локальный стенд бэкенда для разработки клиента.
type App struct {
	config       *configs.DevBackendConfig
	apiServer    *rest.Server
	dbPool       *pgxpool.Pool
	fluentClient *fluent.Fluent
	logger       port.LoggerPort
}

func NewApp(ctx context.Context) (*App, error) {
	appConfig, err := configs.LoadDevBackendConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading application configuration: %w", err)
	}

	// --- 1. ИНИЦИАЛИЗАЦИЯ ЛОГГЕРОВ ---
	var activeLoggers []port.LoggerPort

	stdoutLogger := logger_adapter.NewSlogAdapter(logger_adapter.SlogConfig{
		Level:     parseLogLevel(appConfig.StdoutLogger.Level),
		AddSource: true,
		IsJSON:    appConfig.StdoutLogger.IsJSON,
		UseColor:  true,
	})
	activeLoggers = append(activeLoggers, stdoutLogger)

	var fluentClient *fluent.Fluent
	if appConfig.FluentBit.Enabled {
		fluentClient, err = fluentlogger.NewClient(fluentlogger.Config{
			Host:      appConfig.FluentBit.Host,
			Port:      appConfig.FluentBit.Port,
			TagPrefix: appConfig.AppName,
		})
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit client", err, nil)
			return nil, fmt.Errorf("failed to create fluentbit client: %w", err)
		}
		fluentAdapter, err := logger_adapter.NewFluentLoggerAdapter(fluentClient, parseLogLevel(appConfig.FluentBit.Level))
		if err != nil {
			fluentClient.Close()
			return nil, err
		}
		activeLoggers = append(activeLoggers, fluentAdapter)
	}

	multiLogger, err := logger_adapter.NewMultiLoggerAdapter(activeLoggers...)
	if err != nil {
		return nil, fmt.Errorf("failed to create multi-logger: %w", err)
	}

	// --- 2. БАЗОВЫЙ ЛОГГЕР ПРИЛОЖЕНИЯ ---
	baseLogger := multiLogger.WithFields(port.Fields{"service_name": appConfig.AppName})
	appLogger := baseLogger.WithFields(port.Fields{"component": "app"})
	ctx = contextkeys.ContextWithLogger(ctx, appLogger)

	app := &App{config: appConfig, fluentClient: fluentClient, logger: appLogger}

	// --- 3. ХРАНИЛИЩЕ ---
	var repo store.Repository
	if appConfig.DatabaseURL != "" {
		pool, err := postgres.NewClient(ctx, postgres.Config{DatabaseURL: appConfig.DatabaseURL})
		if err != nil {
			appLogger.Error("Failed to connect to database", err, nil)
			app.close()
			return nil, err
		}
		app.dbPool = pool

		pgRepo, err := store.NewPostgresRepository(pool)
		if err != nil {
			app.close()
			return nil, err
		}
		if err := pgRepo.Migrate(ctx); err != nil {
			appLogger.Error("Failed to apply schema", err, nil)
			app.close()
			return nil, err
		}
		repo = pgRepo
		appLogger.Info("Using PostgreSQL storage", nil)
	} else {
		repo = store.NewMemoryRepository()
		appLogger.Info("DATABASE_URL is empty, using in-memory storage", nil)
	}

	if err := EnsureAdmin(ctx, repo, appConfig.AdminEmail, appConfig.AdminPassword); err != nil {
		app.close()
		return nil, err
	}
	if appConfig.Seed {
		if _, err := SeedProperties(ctx, repo); err != nil {
			app.close()
			return nil, err
		}
	}

	// --- 4. REST API ---
	tokens, err := auth.NewTokenService(appConfig.JWTSecret, appConfig.TokenTTL)
	if err != nil {
		app.close()
		return nil, err
	}
	handlers := rest.NewHandlers(repo, tokens)
	router := rest.NewRouter(handlers, tokens, repo, appConfig.AllowedOrigins, baseLogger)
	app.apiServer = rest.NewServer(appConfig.Port, router, baseLogger)

	appLogger.Info("Application initialized", port.Fields{"port": appConfig.Port})
	return app, nil
}

// Run запускает HTTP-сервер и ждет отмены ctx или ошибки сервера.
func (a *App) Run(ctx context.Context) error {
	defer a.close()

	a.logger.Info("Application is starting...", nil)

	serverErrors := make(chan error, 1)
	go func() {
		if err := a.apiServer.Start(); err != nil && err != http.ErrServerClosed {
			serverErrors <- fmt.Errorf("failed to start HTTP server: %w", err)
		}
	}()

	var runErr error
	select {
	case <-ctx.Done():
		a.logger.Warn("Received shutdown signal, shutting down...", nil)
	case runErr = <-serverErrors:
		a.logger.Error("HTTP server failed, shutting down", runErr, nil)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := a.apiServer.Stop(shutdownCtx); err != nil {
		a.logger.Error("Error during API server shutdown", err, nil)
	}
	return runErr
}

func (a *App) close() {
	if a.dbPool != nil {
		a.dbPool.Close()
	}
	a.logger.Info("Application shut down gracefully.", nil)
	if a.fluentClient != nil {
		if err := a.fluentClient.Close(); err != nil {
			fmt.Printf("ERROR: Error closing fluent client: %v\n", err)
		}
	}
}

func parseLogLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		log.Printf("Warning: Unknown log level '%s'. Defaulting to 'info'.", levelStr)
		return slog.LevelInfo
	}
}
