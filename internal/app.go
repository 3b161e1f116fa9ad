package internal

import (
	"aimlink-client/internal/adapters/backend_api_client"
	"aimlink-client/internal/adapters/cli"
	"aimlink-client/internal/adapters/deeplink"
	logger_adapter "aimlink-client/internal/adapters/logger"
	"aimlink-client/internal/adapters/maprender"
	"aimlink-client/internal/adapters/session_store"
	"aimlink-client/internal/configs"
	"aimlink-client/internal/contextkeys"
	"aimlink-client/internal/core/domain"
	"aimlink-client/internal/core/port"
	"aimlink-client/internal/core/usecase"
	"aimlink-client/internal/fluentlogger"
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/fluent/fluent-logger-golang/fluent"
)

// App – клиентское приложение: адаптеры, use cases и дерево команд.
type App struct {
	config *configs.AppConfig
	cli    *cli.CLI

	sessionCloser io.Closer
	fluentClient  *fluent.Fluent
	logger        port.LoggerPort
}

func NewApp(in io.Reader, out io.Writer) (*App, error) {
	appConfig, err := configs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading application configuration: %w", err)
	}

	// --- 1. ИНИЦИАЛИЗАЦИЯ ЛОГГЕРОВ ---
	var activeLoggers []port.LoggerPort

	stdoutLogger := logger_adapter.NewSlogAdapter(logger_adapter.SlogConfig{
		Level:    parseLogLevel(appConfig.StdoutLogger.Level),
		IsJSON:   appConfig.StdoutLogger.IsJSON,
		UseColor: true,
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
			stdoutLogger.Error("Failed to create fluentbit adapter", err, nil)
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
	baseLogger := multiLogger.WithFields(port.Fields{
		"service_name": appConfig.AppName,
		"platform":     appConfig.Device.Platform,
	})
	appLogger := baseLogger.WithFields(port.Fields{"component": "app"})
	appLogger.Debug("Logger system initialized", port.Fields{
		"active_loggers": len(activeLoggers), "fluent_enabled": appConfig.FluentBit.Enabled,
	})

	// --- 3. АДАПТЕРЫ ---
	backendClient := backend_api_client.NewClient(appConfig.Backend.URL, appConfig.Backend.Timeout)

	sessionStore, sessionCloser, err := newSessionStore(appConfig.SessionStore)
	if err != nil {
		appLogger.Error("Failed to open session store", err, nil)
		if fluentClient != nil {
			fluentClient.Close()
		}
		return nil, err
	}

	renderer, err := maprender.New(appConfig.Map.Renderer, maprender.Region{
		Latitude:       appConfig.Map.DefaultLatitude,
		Longitude:      appConfig.Map.DefaultLongitude,
		LatitudeDelta:  appConfig.Map.DefaultDelta,
		LongitudeDelta: appConfig.Map.DefaultDelta,
	}, appConfig.Map.GeohashPrecision)
	if err != nil {
		return nil, err
	}

	opener, err := deeplink.New(appConfig.Device.LinkOpener, out, appConfig.Device.LinkSchemes)
	if err != nil {
		return nil, err
	}

	console := cli.NewConsole(in, out)
	platform := domain.Platform(appConfig.Device.Platform)
	appLogger.Debug("All adapters initialized.", port.Fields{
		"backend_url":   appConfig.Backend.URL,
		"session_store": appConfig.SessionStore.Driver,
		"map_renderer":  appConfig.Map.Renderer,
		"link_opener":   appConfig.Device.LinkOpener,
	})

	// --- 4. USE CASES ---
	useCases := cli.UseCases{
		Login:          usecase.NewLoginUseCase(backendClient, sessionStore),
		Logout:         usecase.NewLogoutUseCase(sessionStore),
		CurrentSession: usecase.NewCurrentSessionUseCase(sessionStore),
		Dashboard:      usecase.NewGetDashboardUseCase(sessionStore, backendClient),

		HomeCatalog:     usecase.NewHomeCatalogUseCase(backendClient),
		Listings:        usecase.NewListingsUseCase(backendClient),
		MapView:         usecase.NewMapViewUseCase(backendClient, renderer),
		PropertyDetail:  usecase.NewPropertyDetailUseCase(backendClient),
		RequestVisit:    usecase.NewRequestVisitUseCase(backendClient),
		ContactWhatsApp: usecase.NewContactWhatsAppUseCase(opener, platform),
		ViewOnMap:       usecase.NewViewOnMapUseCase(opener, platform),
		ShareProperty:   usecase.NewSharePropertyUseCase(opener),

		AdminListProperties: usecase.NewAdminListPropertiesUseCase(sessionStore, backendClient),
		DeleteProperty:      usecase.NewDeletePropertyUseCase(sessionStore, backendClient, console),
		PublishProperty:     usecase.NewPublishPropertyUseCase(sessionStore, backendClient, console),
		LoadPropertyForEdit: usecase.NewLoadPropertyForEditUseCase(sessionStore, backendClient),
		UpdateProperty:      usecase.NewUpdatePropertyUseCase(sessionStore, backendClient),
		ListLeads:           usecase.NewListLeadsUseCase(sessionStore, backendClient),
		UpdateLeadStatus:    usecase.NewUpdateLeadStatusUseCase(sessionStore, backendClient),
	}
	appLogger.Debug("All use cases initialized.", nil)

	return &App{
		config:        appConfig,
		cli:           cli.New(useCases, console, baseLogger),
		sessionCloser: sessionCloser,
		fluentClient:  fluentClient,
		logger:        appLogger,
	}, nil
}

// Run выполняет одну команду. ctx отменяется по SIGINT/SIGTERM, это прерывает запрос к бэкенду.
func (a *App) Run(ctx context.Context, args []string) error {
	defer a.close()

	root := a.cli.RootCmd(a.config.AppName)
	root.SetArgs(args)

	ctx = contextkeys.ContextWithLogger(ctx, a.logger)
	if err := root.ExecuteContext(ctx); err != nil {
		a.logger.Debug("Command failed", port.Fields{"error": err.Error()})
		return err
	}
	return nil
}

func (a *App) close() {
	if a.sessionCloser != nil {
		if err := a.sessionCloser.Close(); err != nil {
			a.logger.Error("Error closing session store", err, nil)
		}
	}
	if a.fluentClient != nil {
		if err := a.fluentClient.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: Error closing fluent client: %v\n", err)
		}
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func newSessionStore(cfg configs.SessionStoreConfig) (port.SessionStorePort, io.Closer, error) {
	switch cfg.Driver {
	case "memory":
		return session_store.NewMemoryStore(), nopCloser{}, nil
	case "", "sqlite":
		if cfg.Path != ":memory:" {
			if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o700); err != nil {
				return nil, nil, fmt.Errorf("failed to create session store directory: %w", err)
			}
		}
		store, err := session_store.NewSQLiteStore(cfg.Path)
		if err != nil {
			return nil, nil, err
		}
		return store, store, nil
	default:
		return nil, nil, fmt.Errorf("unknown session store driver: %q", cfg.Driver)
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
