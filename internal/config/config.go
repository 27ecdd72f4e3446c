package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverPgx      = "pgx"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverMemory   = "memory"
)

type Config struct {
	Port string

	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	SQLitePath string

	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	// RedisEnabled is false when REDIS_HOST is unset; cache, denylist and rate limiting are then off.
	RedisEnabled bool

	JWTSecret string
	JWTIssuer string
	JWTTTL    time.Duration

	ReportLocation *time.Location
	QueryTimeout   time.Duration
	MaxConcurrency int

	LookupBaseURL  string
	LookupTimeout  time.Duration
	ProductTTL     time.Duration
	RateLimit      int
	BarcodeLimit   int
	RateWindow     time.Duration
	AllowedOrigins []string
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", key, err)
	}
	return d, nil
}

func getInt(key string, fallback int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", key, err)
	}
	return n, nil
}

// Load reads the environment, after merging an optional .env file from the working directory.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv reads the process environment only.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Port:          getEnv("PORT", "8080"),
		DBDriver:      strings.ToLower(getEnv("DB_DRIVER", DriverPgx)),
		DBHost:        getEnv("DB_HOST", "localhost"),
		DBPort:        getEnv("DB_PORT", "5432"),
		DBUser:        getEnv("DB_USER", "fitjournal"),
		DBPassword:    os.Getenv("DB_PASSWORD"),
		DBName:        getEnv("DB_NAME", "fitjournal"),
		DBSSLMode:     getEnv("DB_SSLMODE", "disable"),
		SQLitePath:    getEnv("SQLITE_PATH", "fitjournal.db"),
		RedisHost:     os.Getenv("REDIS_HOST"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		JWTIssuer:     getEnv("JWT_ISSUER", "fitjournal-engine"),
		LookupBaseURL: getEnv("OFF_BASE_URL", "https://world.openfoodfacts.org"),
	}
	cfg.RedisEnabled = cfg.RedisHost != ""

	switch cfg.DBDriver {
	case DriverPgx, DriverPostgres, DriverSQLite, DriverMemory:
	default:
		return nil, fmt.Errorf("config: DB_DRIVER %q is not one of pgx, postgres, sqlite, memory", cfg.DBDriver)
	}

	loc, err := time.LoadLocation(getEnv("REPORT_TZ", "UTC"))
	if err != nil {
		return nil, fmt.Errorf("config: REPORT_TZ: %w", err)
	}
	cfg.ReportLocation = loc

	if cfg.RedisDB, err = getInt("REDIS_DB", 0); err != nil {
		return nil, err
	}
	if cfg.MaxConcurrency, err = getInt("MAX_CONCURRENCY", 7); err != nil {
		return nil, err
	}
	if cfg.RateLimit, err = getInt("RATE_LIMIT", 100); err != nil {
		return nil, err
	}
	if cfg.BarcodeLimit, err = getInt("BARCODE_RATE_LIMIT", 20); err != nil {
		return nil, err
	}
	if cfg.JWTTTL, err = getDuration("JWT_TTL", 24*time.Hour); err != nil {
		return nil, err
	}
	if cfg.QueryTimeout, err = getDuration("QUERY_TIMEOUT", 5*time.Second); err != nil {
		return nil, err
	}
	if cfg.LookupTimeout, err = getDuration("LOOKUP_TIMEOUT", 8*time.Second); err != nil {
		return nil, err
	}
	if cfg.ProductTTL, err = getDuration("PRODUCT_CACHE_TTL", 30*24*time.Hour); err != nil {
		return nil, err
	}
	if cfg.RateWindow, err = getDuration("RATE_WINDOW", time.Minute); err != nil {
		return nil, err
	}

	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
			}
		}
	}

	return cfg, nil
}

// DSN builds the connection string for the configured driver. Memory has none.
func (c *Config) DSN() string {
	switch c.DBDriver {
	case DriverSQLite:
		return "file:" + c.SQLitePath
	case DriverPgx, DriverPostgres:
		return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
			c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode)
	default:
		return ""
	}
}

// RequireJWTSecret is for the API server only; the CLI runs without one.
func (c *Config) RequireJWTSecret() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("config: JWT_SECRET is required")
	}
	return nil
}
