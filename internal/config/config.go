package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/riskibarqy/fightcard/internal/platform/logging"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv             string
	ServiceName        string
	ServiceVersion     string
	HTTPAddr           string
	ReadTimeout        time.Duration
	WriteTimeout       time.Duration
	CORSAllowedOrigins []string
	AdminToken         string
	SwaggerEnabled     bool
	LogLevel           logging.Level

	UFCDataURL                   string
	UFCDataToken                 string
	UFCDataFile                  string
	UFCFightersURL               string
	UFCFightersFile              string
	UFCDataShape                 string
	UFCDataTimeout               time.Duration
	UFCDataMaxRetries            int
	UFCDataRetryDelay            time.Duration
	UFCDataCircuitEnabled        bool
	UFCDataCircuitFailureCount   int
	UFCDataCircuitOpenTimeout    time.Duration
	UFCDataCircuitHalfOpenMaxReq int

	CacheTTL        time.Duration
	BuildWorkers    int
	DefaultFlagCode string
	HeuristicsFile  string
	OddsFile        string
	CountriesFile   string
	AssetsDir       string
	RedisURL        string
	RedisCacheTTL   time.Duration

	PprofEnabled               bool
	PprofAddr                  string
	UptraceEnabled             bool
	UptraceDSN                 string
	UptraceLogsEnabled         bool
	PyroscopeEnabled           bool
	PyroscopeServerAddress     string
	PyroscopeAppName           string
	PyroscopeAuthToken         string
	PyroscopeBasicAuthUser     string
	PyroscopeBasicAuthPassword string
	PyroscopeUploadRate        time.Duration
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

// Load reads the environment, after merging an optional dotenv file.
// ENV_FILE points at the file; ".env" is tried when it is unset. Variables
// already present in the environment win over the file.
func Load() (Config, error) {
	if err := loadDotEnv(os.Getenv("ENV_FILE")); err != nil {
		return Config{}, err
	}

	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}
	swaggerDefault := "true"
	if appEnv == EnvProd {
		swaggerDefault = "false"
	}
	swaggerEnabled, err := strconv.ParseBool(getEnv("SWAGGER_ENABLED", swaggerDefault))
	if err != nil {
		return Config{}, fmt.Errorf("parse SWAGGER_ENABLED: %w", err)
	}
	logLevel, err := logging.ParseLevel(getEnv("APP_LOG_LEVEL", "info"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_LOG_LEVEL: %w", err)
	}

	readTimeout, err := time.ParseDuration(getEnv("APP_READ_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_READ_TIMEOUT: %w", err)
	}
	writeTimeout, err := time.ParseDuration(getEnv("APP_WRITE_TIMEOUT", "30s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_WRITE_TIMEOUT: %w", err)
	}

	dataURL := strings.TrimSpace(getEnv("UFC_DATA_URL", ""))
	dataFile := strings.TrimSpace(getEnv("UFC_DATA_FILE", ""))
	if dataURL == "" && dataFile == "" {
		return Config{}, fmt.Errorf("UFC_DATA_URL or UFC_DATA_FILE is required")
	}
	if dataURL != "" && dataFile != "" {
		return Config{}, fmt.Errorf("UFC_DATA_URL and UFC_DATA_FILE are mutually exclusive")
	}
	fightersURL := strings.TrimSpace(getEnv("UFC_FIGHTERS_URL", ""))
	fightersFile := strings.TrimSpace(getEnv("UFC_FIGHTERS_FILE", ""))
	if fightersURL != "" && fightersFile != "" {
		return Config{}, fmt.Errorf("UFC_FIGHTERS_URL and UFC_FIGHTERS_FILE are mutually exclusive")
	}

	shape, err := parseShape(getEnv("UFC_DATA_SHAPE", "auto"))
	if err != nil {
		return Config{}, err
	}

	dataTimeout, err := time.ParseDuration(getEnv("UFC_DATA_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UFC_DATA_TIMEOUT: %w", err)
	}
	if dataTimeout <= 0 {
		return Config{}, fmt.Errorf("UFC_DATA_TIMEOUT must be > 0")
	}
	dataMaxRetries, err := getEnvAsInt("UFC_DATA_MAX_RETRIES", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse UFC_DATA_MAX_RETRIES: %w", err)
	}
	if dataMaxRetries < 0 {
		return Config{}, fmt.Errorf("UFC_DATA_MAX_RETRIES must be >= 0")
	}
	dataRetryDelay, err := time.ParseDuration(getEnv("UFC_DATA_RETRY_DELAY", "1s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UFC_DATA_RETRY_DELAY: %w", err)
	}
	if dataRetryDelay <= 0 {
		return Config{}, fmt.Errorf("UFC_DATA_RETRY_DELAY must be > 0")
	}

	circuitEnabled, err := strconv.ParseBool(getEnv("UFC_DATA_CIRCUIT_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UFC_DATA_CIRCUIT_ENABLED: %w", err)
	}
	circuitFailureCount, err := getEnvAsInt("UFC_DATA_CIRCUIT_FAILURE_COUNT", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse UFC_DATA_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if circuitFailureCount < 1 {
		return Config{}, fmt.Errorf("UFC_DATA_CIRCUIT_FAILURE_COUNT must be >= 1")
	}
	circuitOpenTimeout, err := time.ParseDuration(getEnv("UFC_DATA_CIRCUIT_OPEN_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UFC_DATA_CIRCUIT_OPEN_TIMEOUT: %w", err)
	}
	if circuitOpenTimeout <= 0 {
		return Config{}, fmt.Errorf("UFC_DATA_CIRCUIT_OPEN_TIMEOUT must be > 0")
	}
	circuitHalfOpenMaxReq, err := getEnvAsInt("UFC_DATA_CIRCUIT_HALF_OPEN_MAX_REQ", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse UFC_DATA_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	if circuitHalfOpenMaxReq < 1 {
		return Config{}, fmt.Errorf("UFC_DATA_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	}

	cacheTTL, err := time.ParseDuration(getEnv("CACHE_TTL", "5m"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_TTL: %w", err)
	}
	if cacheTTL <= 0 {
		return Config{}, fmt.Errorf("CACHE_TTL must be > 0")
	}
	buildWorkers, err := getEnvAsInt("BUILD_WORKERS", 8)
	if err != nil {
		return Config{}, fmt.Errorf("parse BUILD_WORKERS: %w", err)
	}
	if buildWorkers < 1 {
		return Config{}, fmt.Errorf("BUILD_WORKERS must be >= 1")
	}

	redisCacheTTL, err := time.ParseDuration(getEnv("REDIS_CACHE_TTL", "5m"))
	if err != nil {
		return Config{}, fmt.Errorf("parse REDIS_CACHE_TTL: %w", err)
	}
	if redisCacheTTL <= 0 {
		return Config{}, fmt.Errorf("REDIS_CACHE_TTL must be > 0")
	}

	pprofEnabled, err := strconv.ParseBool(getEnv("PPROF_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PPROF_ENABLED: %w", err)
	}
	pprofAddr := strings.TrimSpace(getEnv("PPROF_ADDR", ":6060"))
	if pprofEnabled && pprofAddr == "" {
		return Config{}, fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceDSN == "" {
		uptraceDSN = parseUptraceDSNFromOTLPHeaders(getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""))
	}
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}
	uptraceLogsEnabled, err := strconv.ParseBool(getEnv("UPTRACE_LOGS_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_LOGS_ENABLED: %w", err)
	}

	pyroscopeEnabled, err := strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	pyroscopeServerAddress := strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if pyroscopeEnabled && pyroscopeServerAddress == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	pyroscopeUploadRate, err := time.ParseDuration(getEnv("PYROSCOPE_UPLOAD_RATE", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_UPLOAD_RATE: %w", err)
	}
	if pyroscopeUploadRate <= 0 {
		return Config{}, fmt.Errorf("PYROSCOPE_UPLOAD_RATE must be > 0")
	}

	cfg := Config{
		AppEnv:             appEnv,
		ServiceName:        getEnv("APP_SERVICE_NAME", "fightcard-api"),
		ServiceVersion:     getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:           getEnv("APP_HTTP_ADDR", ":8080"),
		ReadTimeout:        readTimeout,
		WriteTimeout:       writeTimeout,
		CORSAllowedOrigins: splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		AdminToken:         strings.TrimSpace(getEnv("ADMIN_TOKEN", "")),
		SwaggerEnabled:     swaggerEnabled,
		LogLevel:           logLevel,

		UFCDataURL:                   dataURL,
		UFCDataToken:                 strings.TrimSpace(getEnv("UFC_DATA_TOKEN", "")),
		UFCDataFile:                  dataFile,
		UFCFightersURL:               fightersURL,
		UFCFightersFile:              fightersFile,
		UFCDataShape:                 shape,
		UFCDataTimeout:               dataTimeout,
		UFCDataMaxRetries:            dataMaxRetries,
		UFCDataRetryDelay:            dataRetryDelay,
		UFCDataCircuitEnabled:        circuitEnabled,
		UFCDataCircuitFailureCount:   circuitFailureCount,
		UFCDataCircuitOpenTimeout:    circuitOpenTimeout,
		UFCDataCircuitHalfOpenMaxReq: circuitHalfOpenMaxReq,

		CacheTTL:        cacheTTL,
		BuildWorkers:    buildWorkers,
		DefaultFlagCode: strings.ToLower(strings.TrimSpace(getEnv("DEFAULT_FLAG_CODE", "us"))),
		HeuristicsFile:  strings.TrimSpace(getEnv("HEURISTICS_FILE", "")),
		OddsFile:        strings.TrimSpace(getEnv("ODDS_FILE", "")),
		CountriesFile:   strings.TrimSpace(getEnv("COUNTRIES_FILE", "")),
		AssetsDir:       strings.TrimSpace(getEnv("ASSETS_DIR", "")),
		RedisURL:        strings.TrimSpace(getEnv("REDIS_URL", "")),
		RedisCacheTTL:   redisCacheTTL,

		PprofEnabled:               pprofEnabled,
		PprofAddr:                  pprofAddr,
		UptraceEnabled:             uptraceEnabled,
		UptraceDSN:                 uptraceDSN,
		UptraceLogsEnabled:         uptraceLogsEnabled,
		PyroscopeEnabled:           pyroscopeEnabled,
		PyroscopeServerAddress:     pyroscopeServerAddress,
		PyroscopeAuthToken:         strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
		PyroscopeBasicAuthUser:     strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_USER", "")),
		PyroscopeBasicAuthPassword: strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_PASSWORD", "")),
		PyroscopeUploadRate:        pyroscopeUploadRate,
	}
	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))
	if cfg.PyroscopeEnabled && cfg.PyroscopeAppName == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_APP_NAME cannot be empty when PYROSCOPE_ENABLED=true")
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}
	if cfg.AppEnv == EnvProd && cfg.AdminToken == "" {
		return Config{}, fmt.Errorf("ADMIN_TOKEN is required when APP_ENV=prod")
	}

	return cfg, nil
}

func loadDotEnv(path string) error {
	explicit := strings.TrimSpace(path) != ""
	if !explicit {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load env file %s: %w", path, err)
	}
	return nil
}

func parseShape(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case "auto", "scrape", "sportsdata":
		return value, nil
	default:
		return "", fmt.Errorf("invalid UFC_DATA_SHAPE %q: valid values are auto, scrape, sportsdata", v)
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}

func parseUptraceDSNFromOTLPHeaders(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	items := strings.Split(raw, ",")
	for _, item := range items {
		parts := strings.SplitN(strings.TrimSpace(item), "=", 2)
		if len(parts) != 2 {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(parts[0]), "uptrace-dsn") {
			value := strings.TrimSpace(parts[1])
			return strings.Trim(value, "\"'")
		}
	}

	return ""
}

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
