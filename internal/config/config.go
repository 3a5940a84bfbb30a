package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultHTTPAddr        = ":8080"
	defaultRefreshInterval = 5 * time.Minute
	defaultSnapshotTTL     = 10 * time.Minute
	defaultRequestTimeout  = 30 * time.Second
)

// Config holds everything soclens reads from the environment.
type Config struct {
	DatabaseURL      string
	HTTPAddr         string
	MetricsAddr      string
	RedisAddr        string
	RedisPassword    string
	RedisDB          int
	AuthCookieSecure bool

	RefreshInterval time.Duration
	SnapshotTTL     time.Duration
	RequestTimeout  time.Duration

	SIEMAPIURL   string
	SIEMAPIToken string

	SonicWallAPIURL   string
	SonicWallUser     string
	SonicWallPassword string

	VaultAddr       string
	VaultToken      string
	VaultSecretPath string
}

// LoadOptions controls which settings are mandatory for the command at hand.
type LoadOptions struct {
	RequireDatabaseURL bool
}

func Load() (Config, error) {
	return LoadWithOptions(LoadOptions{RequireDatabaseURL: true})
}

func LoadOptionalDB() (Config, error) {
	return LoadWithOptions(LoadOptions{RequireDatabaseURL: false})
}

func LoadWithOptions(opts LoadOptions) (Config, error) {
	if err := godotenv.Load(); err != nil {
		var pathErr *os.PathError
		if !errors.As(err, &pathErr) {
			return Config{}, err
		}
	}

	cfg := Config{
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		HTTPAddr:         getenvDefault("HTTP_ADDR", defaultHTTPAddr),
		MetricsAddr:      os.Getenv("METRICS_ADDR"),
		RedisAddr:        os.Getenv("REDIS_ADDR"),
		RedisPassword:    os.Getenv("REDIS_PASSWORD"),
		RedisDB:          getenvIntDefault("REDIS_DB", 0),
		AuthCookieSecure: getenvBoolDefault("AUTH_COOKIE_SECURE", false),
		RefreshInterval:  defaultRefreshInterval,
		SnapshotTTL:      defaultSnapshotTTL,
		RequestTimeout:   defaultRequestTimeout,

		SIEMAPIURL:   strings.TrimRight(os.Getenv("SIEM_API_URL"), "/"),
		SIEMAPIToken: os.Getenv("SIEM_API_TOKEN"),

		SonicWallAPIURL:   strings.TrimRight(os.Getenv("SONICWALL_API_URL"), "/"),
		SonicWallUser:     os.Getenv("SONICWALL_USER"),
		SonicWallPassword: os.Getenv("SONICWALL_PASSWORD"),

		VaultAddr:       os.Getenv("VAULT_ADDR"),
		VaultToken:      os.Getenv("VAULT_TOKEN"),
		VaultSecretPath: getenvDefault("VAULT_SECRET_PATH", "secret/data/soclens/datasources"),
	}

	if v := os.Getenv("REFRESH_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.RefreshInterval = d
		}
	}
	if v := os.Getenv("SNAPSHOT_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.SnapshotTTL = d
		}
	}
	if v := os.Getenv("REQUEST_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.RequestTimeout = d
		}
	}

	if opts.RequireDatabaseURL && cfg.DatabaseURL == "" {
		return cfg, errors.New("DATABASE_URL is required")
	}

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvIntDefault(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return def
	}
	return n
}

func getenvBoolDefault(key string, def bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	switch v {
	case "1":
		return true
	case "0":
		return false
	default:
		return def
	}
}
