package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/sleeper-league/internal/platform/logging"
	"github.com/riskibarqy/sleeper-league/internal/platform/resilience"
)

// Config stores runtime configuration for the client and the read API.
type Config struct {
	AppEnv             string
	ServiceName        string
	ServiceVersion     string
	HTTPAddr           string
	CORSAllowedOrigins []string
	ReadTimeout        time.Duration
	WriteTimeout       time.Duration
	SleeperBaseURL     string
	SleeperCDNURL      string
	SleeperTimeout     time.Duration
	SleeperUserAgent   string
	PlayersCacheDir    string
	RosterArchiveDir   string
	HistoryMaxSeasons  int
	UptraceEnabled     bool
	UptraceDSN         string
	LogLevel           logging.Level
	LogOutput          string
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	sleeperTimeout, err := time.ParseDuration(getEnv("SLEEPER_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SLEEPER_TIMEOUT: %w", err)
	}
	if sleeperTimeout <= 0 {
		return Config{}, fmt.Errorf("SLEEPER_TIMEOUT must be > 0")
	}

	breaker, err := loadBreakerConfig()
	if err != nil {
		return Config{}, err
	}

	readTimeout, err := time.ParseDuration(getEnv("READ_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse READ_TIMEOUT: %w", err)
	}
	writeTimeout, err := time.ParseDuration(getEnv("WRITE_TIMEOUT", "60s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse WRITE_TIMEOUT: %w", err)
	}

	historyMaxSeasons, err := getEnvAsInt("HISTORY_MAX_SEASONS", 50)
	if err != nil {
		return Config{}, fmt.Errorf("parse HISTORY_MAX_SEASONS: %w", err)
	}
	if historyMaxSeasons < 1 {
		return Config{}, fmt.Errorf("HISTORY_MAX_SEASONS must be >= 1")
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}

	pprofEnabled, err := strconv.ParseBool(getEnv("PPROF_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PPROF_ENABLED: %w", err)
	}

	pyroscopeEnabled, err := strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	pyroscopeUploadRate, err := time.ParseDuration(getEnv("PYROSCOPE_UPLOAD_RATE", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_UPLOAD_RATE: %w", err)
	}
	pyroscopeServer := strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if pyroscopeEnabled && pyroscopeServer == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}

	baseDir := defaultDataDir()

	return Config{
		AppEnv:             appEnv,
		ServiceName:        getEnv("SERVICE_NAME", "sleeper-league"),
		ServiceVersion:     getEnv("SERVICE_VERSION", "dev"),
		HTTPAddr:           getEnv("HTTP_ADDR", ":8080"),
		CORSAllowedOrigins: parseCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		ReadTimeout:        readTimeout,
		WriteTimeout:       writeTimeout,
		SleeperBaseURL:     strings.TrimRight(strings.TrimSpace(getEnv("SLEEPER_BASE_URL", "https://api.sleeper.app/v1")), "/"),
		SleeperCDNURL:      strings.TrimRight(strings.TrimSpace(getEnv("SLEEPER_CDN_URL", "https://sleepercdn.com")), "/"),
		SleeperTimeout:     sleeperTimeout,
		SleeperBreaker:     breaker,
		SleeperUserAgent:   getEnv("SLEEPER_USER_AGENT", "sleeper-league/1.0"),
		PlayersCacheDir:    getEnv("PLAYERS_CACHE_DIR", filepath.Join(baseDir, "players")),
		RosterArchiveDir:   getEnv("ROSTER_ARCHIVE_DIR", filepath.Join(baseDir, "rosters")),
		HistoryMaxSeasons:  historyMaxSeasons,
		UptraceEnabled:     uptraceEnabled,
		UptraceDSN:         uptraceDSN,
		LogLevel:           parseLogLevel(getEnv("APP_LOG_LEVEL", "info")),
		LogOutput:          getEnv("LOG_OUTPUT", logging.OutputStdout),
	}, nil
}

func loadBreakerConfig() (resilience.CircuitBreakerConfig, error) {
	cfg := resilience.DefaultCircuitBreakerConfig()

	enabled, err := strconv.ParseBool(getEnv("SLEEPER_BREAKER_ENABLED", strconv.FormatBool(cfg.Enabled)))
	if err != nil {
		return cfg, fmt.Errorf("parse SLEEPER_BREAKER_ENABLED: %w", err)
	}
	cfg.Enabled = enabled

	if cfg.FailureThreshold, err = getEnvAsInt("SLEEPER_BREAKER_FAILURES", cfg.FailureThreshold); err != nil {
		return cfg, fmt.Errorf("parse SLEEPER_BREAKER_FAILURES: %w", err)
	}
	if cfg.OpenTimeout, err = time.ParseDuration(getEnv("SLEEPER_BREAKER_OPEN_TIMEOUT", cfg.OpenTimeout.String())); err != nil {
		return cfg, fmt.Errorf("parse SLEEPER_BREAKER_OPEN_TIMEOUT: %w", err)
	}
	return cfg, nil
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil || strings.TrimSpace(home) == "" {
		return "data"
	}
	return filepath.Join(home, ".sleeper-league")
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func parseCSV(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}
		out = append(out, trimmed)
	}
	return out
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

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
