package configs

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type BackendConfig struct {
	URL     string
	Timeout time.Duration
}

type SessionStoreConfig struct {
	// Driver: "sqlite" или "memory"
	Driver string
	Path   string
}

type DeviceConfig struct {
	// Platform: ios, android, web, desktop
	Platform string
	// LinkOpener: "browser" открывает ссылки через ОС, "print" только печатает их
	LinkOpener string
	// LinkSchemes - схемы, которые считаются поддерживаемыми на этом устройстве
	LinkSchemes []string
}

type MapConfig struct {
	// Renderer: terminal, geojson, web
	Renderer         string
	GeohashPrecision int
	DefaultLatitude  float64
	DefaultLongitude float64
	DefaultDelta     float64
}

type StdoutLogConfig struct {
	Level  string
	IsJSON bool
}

type FluentBitConfig struct {
	Host    string
	Port    int
	Enabled bool
	Level   string
}

// AppConfig - конфигурация клиента.
type AppConfig struct {
	AppName      string
	Backend      BackendConfig
	SessionStore SessionStoreConfig
	Device       DeviceConfig
	Map          MapConfig
	StdoutLogger StdoutLogConfig
	FluentBit    FluentBitConfig
}

// LoadConfig читает .env (если есть) и переменные окружения.
// Отсутствие .env для клиента не ошибка.
func LoadConfig(envPath ...string) (*AppConfig, error) {
	loadDotEnv(envPath...)

	cfg := &AppConfig{}
	cfg.AppName = getEnvAsString("APP_NAME", "aimlink-client")

	cfg.Backend.URL = getEnvAsString("BACKEND_URL", "http://localhost:8001")
	cfg.Backend.Timeout = getEnvAsDuration("HTTP_TIMEOUT", 0)

	cfg.SessionStore.Driver = strings.ToLower(getEnvAsString("SESSION_STORE", "sqlite"))
	cfg.SessionStore.Path = getEnvAsString("SESSION_DB_PATH", defaultSessionPath())

	cfg.Device.Platform = strings.ToLower(getEnvAsString("APP_PLATFORM", "desktop"))
	cfg.Device.LinkOpener = strings.ToLower(getEnvAsString("LINK_OPENER", "browser"))
	cfg.Device.LinkSchemes = getEnvAsList("LINK_SCHEMES", []string{"https", "http", "mailto"})

	cfg.Map.Renderer = strings.ToLower(getEnvAsString("MAP_RENDERER", "terminal"))
	cfg.Map.GeohashPrecision = getEnvAsInt("MAP_GEOHASH_PRECISION", 5)
	cfg.Map.DefaultLatitude = getEnvAsFloat("MAP_DEFAULT_LAT", 33.8938)
	cfg.Map.DefaultLongitude = getEnvAsFloat("MAP_DEFAULT_LNG", 35.5018)
	cfg.Map.DefaultDelta = getEnvAsFloat("MAP_DEFAULT_DELTA", 0.3)

	cfg.StdoutLogger.Level = getEnvAsString("STDOUT_LOG_LEVEL", "warn")
	cfg.StdoutLogger.IsJSON = getEnvAsBool("STDOUT_LOG_JSON", false)

	cfg.FluentBit.Enabled = getEnvAsBool("FLUENTBIT_ENABLED", false)
	if cfg.FluentBit.Enabled {
		cfg.FluentBit.Host = os.Getenv("FLUENTBIT_HOST")
		if cfg.FluentBit.Host == "" {
			log.Println("WARNING: FLUENTBIT_ENABLED is true, but FLUENTBIT_HOST is not set. Disabling Fluent Bit.")
			cfg.FluentBit.Enabled = false
		}
		cfg.FluentBit.Port = getEnvAsInt("FLUENTBIT_PORT", 24224)
		cfg.FluentBit.Level = getEnvAsString("FLUENTBIT_LOG_LEVEL", "info")
	}

	return cfg, nil
}

// DevBackendConfig - настройки локального стенда бэкенда.
type DevBackendConfig struct {
	AppName        string
	Port           string
	JWTSecret      string
	TokenTTL       time.Duration
	AdminEmail     string
	AdminPassword  string
	Seed           bool
	DatabaseURL    string
	AllowedOrigins []string
	StdoutLogger   StdoutLogConfig
	FluentBit      FluentBitConfig
}

func LoadDevBackendConfig(envPath ...string) (*DevBackendConfig, error) {
	loadDotEnv(envPath...)

	cfg := &DevBackendConfig{}
	cfg.AppName = getEnvAsString("APP_NAME", "aimlink-devbackend")
	cfg.Port = getEnvAsString("DEV_BACKEND_PORT", "8001")
	cfg.JWTSecret = getEnvAsString("DEV_JWT_SECRET", "aimlink-dev-secret-change-me")
	cfg.TokenTTL = getEnvAsDuration("DEV_TOKEN_TTL", 7*24*time.Hour)
	cfg.AdminEmail = getEnvAsString("DEV_ADMIN_EMAIL", "admin@aimlinkproperties.com")
	cfg.AdminPassword = getEnvAsString("DEV_ADMIN_PASSWORD", "admin123")
	cfg.Seed = getEnvAsBool("DEV_SEED", true)
	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	cfg.AllowedOrigins = getEnvAsList("CORS_ALLOWED_ORIGINS", []string{"*"})

	cfg.StdoutLogger.Level = getEnvAsString("STDOUT_LOG_LEVEL", "debug")
	cfg.StdoutLogger.IsJSON = getEnvAsBool("STDOUT_LOG_JSON", false)

	cfg.FluentBit.Enabled = getEnvAsBool("FLUENTBIT_ENABLED", false)
	if cfg.FluentBit.Enabled {
		cfg.FluentBit.Host = getEnvAsString("FLUENTBIT_HOST", "localhost")
		cfg.FluentBit.Port = getEnvAsInt("FLUENTBIT_PORT", 24224)
		cfg.FluentBit.Level = getEnvAsString("FLUENTBIT_LOG_LEVEL", "info")
	}

	return cfg, nil
}

func loadDotEnv(envPath ...string) {
	var err error
	if len(envPath) > 0 {
		err = godotenv.Load(envPath[0])
	} else {
		err = godotenv.Load()
	}
	if err != nil && len(envPath) > 0 {
		log.Printf("Info: Could not load .env file (path: %v): %v. Using environment only.\n", envPath, err)
	}
}

func defaultSessionPath() string {
	dir, err := os.UserConfigDir()
	if err != nil || dir == "" {
		return "aimlink-session.db"
	}
	return dir + string(os.PathSeparator) + "aimlink" + string(os.PathSeparator) + "session.db"
}

func getEnvAsString(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt читает переменную окружения как int или возвращает значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valueInt, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Environment variable %s (value: %s) could not be parsed as int: %v. Using default value: %d\n", key, valueStr, err, defaultValue)
		return defaultValue
	}
	return valueInt
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Warning: Environment variable %s (value: %s) could not be parsed as float: %v. Using default value: %v\n", key, valueStr, err, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valBool, err := strconv.ParseBool(valStr)
	if err != nil {
		log.Printf("Warning: Environment variable %s (value: %s) could not be parsed as bool: %v. Using default value: %t\n", key, valStr, err, defaultValue)
		return defaultValue
	}
	return valBool
}

// getEnvAsDuration ожидает формат time.ParseDuration: "30s", "168h".
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := time.ParseDuration(valStr)
	if err != nil {
		log.Printf("Warning: Environment variable %s (value: %s) could not be parsed as duration: %v. Using default value: %s\n", key, valStr, err, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvAsList(key string, defaultValue []string) []string {
	valStr, exists := os.LookupEnv(key)
	if !exists || strings.TrimSpace(valStr) == "" {
		return defaultValue
	}
	var result []string
	for _, item := range strings.Split(valStr, ",") {
		if item = strings.TrimSpace(item); item != "" {
			result = append(result, item)
		}
	}
	return result
}
