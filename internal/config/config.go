package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// State backends
const (
	BackendFile     = "file"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
)

// Config holds the application configuration
type Config struct {
	// Logging
	LogLevel    string
	LogFormat   string
	Environment string
	ServiceName string
	Version     string
	LogDir      string

	// HTTP
	BindAddr       string
	Port           int
	APIKey         string
	TrustedProxies []string

	// Persistence
	StateBackend string
	StatePath    string
	SQLitePath   string
	SaveSlot     string

	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string
	DBSSLMode  string
	DBMaxConns int
	// DBConnectAttempts bounds startup pings before giving up
	DBConnectAttempts int

	// Simulation
	TablesPath            string
	TickInterval          time.Duration
	SaveInterval          time.Duration
	QuestResetOffsetHours int
	RNGSeed               int64
	WorkerCount           int

	// Idempotency cache for POST intents
	IdempotencyCacheSize int
	IdempotencyTTL       time.Duration
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "text"),
		Environment: getEnv("ENVIRONMENT", "dev"),
		ServiceName: getEnv("SERVICE_NAME", "growpot"),
		Version:     getEnv("VERSION", "dev"),
		LogDir:      getEnv("LOG_DIR", ""),

		BindAddr:       getEnv("BIND_ADDR", "127.0.0.1"),
		APIKey:         getEnv("API_KEY", ""),
		TrustedProxies: splitList(getEnv("TRUSTED_PROXIES", "")),

		StateBackend: getEnv("STATE_BACKEND", BackendFile),
		StatePath:    getEnv("STATE_PATH", "state.json"),
		SQLitePath:   getEnv("SQLITE_PATH", "growpot.db"),
		SaveSlot:     getEnv("SAVE_SLOT", "default"),

		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBName:     getEnv("DB_NAME", "growpot"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),
		DBMaxConns: getEnvAsInt("DB_MAX_CONNS", 4),

		DBConnectAttempts: getEnvAsInt("DB_CONNECT_ATTEMPTS", 5),

		TablesPath:            getEnv("TABLES_PATH", ""),
		TickInterval:          getEnvAsDuration("TICK_INTERVAL", 100*time.Millisecond),
		SaveInterval:          getEnvAsDuration("SAVE_INTERVAL", 1500*time.Millisecond),
		QuestResetOffsetHours: getEnvAsInt("QUEST_RESET_UTC_OFFSET_HOURS", 7),
		WorkerCount:           getEnvAsInt("WORKER_COUNT", 2),

		IdempotencyCacheSize: getEnvAsInt("IDEMPOTENCY_CACHE_SIZE", 256),
		IdempotencyTTL:       getEnvAsDuration("IDEMPOTENCY_TTL", 10*time.Minute),
	}

	port, err := strconv.Atoi(getEnv("PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	if port < 1 || port > 65535 {
		return nil, fmt.Errorf("invalid PORT value: %d out of range", port)
	}
	cfg.Port = port

	seed, err := strconv.ParseInt(getEnv("RNG_SEED", "0"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid RNG_SEED value: %w", err)
	}
	cfg.RNGSeed = seed

	switch cfg.StateBackend {
	case BackendFile, BackendSQLite, BackendPostgres:
	default:
		return nil, fmt.Errorf("invalid STATE_BACKEND %q: must be one of %s, %s, %s",
			cfg.StateBackend, BackendFile, BackendSQLite, BackendPostgres)
	}

	if cfg.TickInterval <= 0 {
		return nil, fmt.Errorf("TICK_INTERVAL must be positive")
	}
	if cfg.SaveInterval <= 0 {
		return nil, fmt.Errorf("SAVE_INTERVAL must be positive")
	}
	if cfg.WorkerCount < 1 {
		return nil, fmt.Errorf("WORKER_COUNT must be at least 1, got %d", cfg.WorkerCount)
	}
	if cfg.QuestResetOffsetHours < -12 || cfg.QuestResetOffsetHours > 14 {
		return nil, fmt.Errorf("QUEST_RESET_UTC_OFFSET_HOURS must be between -12 and 14, got %d", cfg.QuestResetOffsetHours)
	}

	return cfg, nil
}

// QuestResetLocation returns the fixed zone whose calendar days bound daily quests.
func (c *Config) QuestResetLocation() *time.Location {
	name := fmt.Sprintf("UTC%+d", c.QuestResetOffsetHours)
	return time.FixedZone(name, c.QuestResetOffsetHours*60*60)
}

// ListenAddr returns the host:port the HTTP server binds to.
func (c *Config) ListenAddr() string {
	return fmt.Sprintf("%s:%d", c.BindAddr, c.Port)
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     c.DBHost + ":" + c.DBPort,
		Path:     "/" + c.DBName,
		RawQuery: "sslmode=" + url.QueryEscape(c.DBSSLMode),
	}
	return u.String()
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses an integer environment variable, falling back to the
// default when unset or malformed
func getEnvAsInt(key string, defaultValue int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

// getEnvAsDuration parses a Go duration (e.g. "250ms", "1m") environment variable
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return d
}

// splitList parses a comma separated list, dropping blanks
func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
