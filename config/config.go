package config

import (
	"errors"
	"fmt"
	"log"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Configuration validation errors.
var (
	ErrInvalidAnalyzerURL = errors.New("ANALYZER_URL must be an absolute http(s) URL")
	ErrUnknownArchive     = errors.New("ARCHIVE_BACKEND must be one of: none, postgres, sqlite, csv")
	ErrUnsupportedLang    = errors.New("DEFAULT_LANG must be one of: de, en")
)

// Archive backends.
const (
	ArchiveNone     = "none"
	ArchivePostgres = "postgres"
	ArchiveSQLite   = "sqlite"
	ArchiveCSV      = "csv"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	AnalyzerURL    string
	ListenAddr     string
	LogLevel       string
	DefaultLang    string
	RequestTimeout time.Duration
	SessionTTL     time.Duration

	RateLimitRPS   int
	RateLimitBurst int

	ArchiveBackend   string
	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresSSLMode  string
	SQLitePath       string
	CSVOutputPath    string
	MaxRetries       int
	ArchiveWorkers   int

	SentryDSN   string
	Environment string
}

// Load reads the .env file and returns a populated Config struct.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] No .env file found, falling back to system env vars")
	}

	return &Config{
		AnalyzerURL:    getEnv("ANALYZER_URL", "http://127.0.0.1:8000"),
		ListenAddr:     getEnv("LISTEN_ADDR", ":3000"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		DefaultLang:    getEnv("DEFAULT_LANG", "de"),
		RequestTimeout: getEnvDuration("REQUEST_TIMEOUT_SEC", 90, time.Second),
		SessionTTL:     getEnvDuration("SESSION_TTL_MIN", 60, time.Minute),

		RateLimitRPS:   getEnvInt("RATE_LIMIT_RPS", 1),
		RateLimitBurst: getEnvInt("RATE_LIMIT_BURST", 5),

		ArchiveBackend:   getEnv("ARCHIVE_BACKEND", ArchiveNone),
		PostgresHost:     getEnv("POSTGRES_HOST", "localhost"),
		PostgresPort:     getEnv("POSTGRES_PORT", "5432"),
		PostgresUser:     getEnv("POSTGRES_USER", "dealcheck"),
		PostgresPassword: getEnv("POSTGRES_PASSWORD", "dealcheck"),
		PostgresDB:       getEnv("POSTGRES_DB", "dealcheck"),
		PostgresSSLMode:  getEnv("POSTGRES_SSLMODE", "disable"),
		SQLitePath:       getEnv("SQLITE_PATH", "./output/scans.db"),
		CSVOutputPath:    getEnv("CSV_OUTPUT_PATH", "./output/scans.csv"),
		MaxRetries:       getEnvInt("MAX_RETRIES", 3),
		ArchiveWorkers:   getEnvInt("ARCHIVE_WORKERS", 2),

		SentryDSN:   getEnv("SENTRY_DSN", ""),
		Environment: getEnv("ENVIRONMENT", "development"),
	}
}

// Validate checks the values that cannot be defaulted silently.
func (c *Config) Validate() error {
	u, err := url.Parse(c.AnalyzerURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %q", ErrInvalidAnalyzerURL, c.AnalyzerURL)
	}

	switch c.ArchiveBackend {
	case "", ArchiveNone, ArchivePostgres, ArchiveSQLite, ArchiveCSV:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownArchive, c.ArchiveBackend)
	}

	if c.DefaultLang != "de" && c.DefaultLang != "en" {
		return fmt.Errorf("%w: %q", ErrUnsupportedLang, c.DefaultLang)
	}
	return nil
}

// DSN returns the PostgreSQL connection string.
func (c *Config) DSN() string {
	return "host=" + c.PostgresHost +
		" port=" + c.PostgresPort +
		" user=" + c.PostgresUser +
		" password=" + c.PostgresPassword +
		" dbname=" + c.PostgresDB +
		" sslmode=" + c.PostgresSSLMode
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		n, err := strconv.Atoi(val)
		if err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback int, unit time.Duration) time.Duration {
	n := getEnvInt(key, fallback)
	if n <= 0 {
		n = fallback
	}
	return time.Duration(n) * unit
}
