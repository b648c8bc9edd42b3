package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	defaultPort            = "8000"
	defaultDataPath        = "capacity_planner.db"
	defaultAdminUsername   = "admin"
	defaultAdminPassword   = "admin123"
	defaultMaxRangeDays    = 3660
	defaultResultCacheSize = 256
)

// Config holds the configuration for the service
type Config struct {
	Port    string
	GinMode string

	// Database: Postgres when DatabaseURL is set, SQLite at DataPath otherwise
	DatabaseURL string
	DataPath    string

	JWTSecret       string
	APIMasterSecret string
	AdminUsername   string
	AdminPassword   string

	MaxRangeDays    int
	ResultCacheSize int
}

// envPaths are tried in order; the first existing file wins
var envPaths = []string{".env", "../.env", "../../.env"}

// LoadDotEnv loads the first .env file found relative to the working directory
func LoadDotEnv() {
	for _, p := range envPaths {
		if _, err := os.Stat(p); err == nil {
			if err := godotenv.Load(p); err != nil {
				log.Printf("config: could not load %s: %v", p, err)
			}
			return
		}
	}
}

// Load reads .env and then builds a Config from the environment
func Load() (*Config, error) {
	LoadDotEnv()
	return NewFromEnv()
}

// NewFromEnv creates a new Config from environment variables
func NewFromEnv() (*Config, error) {
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable not set")
	}

	masterSecret := os.Getenv("API_MASTER_SECRET")
	if masterSecret == "" {
		return nil, fmt.Errorf("API_MASTER_SECRET environment variable not set")
	}

	maxRangeDays, err := intEnv("MAX_RANGE_DAYS", defaultMaxRangeDays)
	if err != nil {
		return nil, err
	}
	cacheSize, err := intEnv("RESULT_CACHE_SIZE", defaultResultCacheSize)
	if err != nil {
		return nil, err
	}

	return &Config{
		Port:            getEnv("PORT", defaultPort),
		GinMode:         os.Getenv("GIN_MODE"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		DataPath:        getEnv("DATA_PATH", defaultDataPath),
		JWTSecret:       jwtSecret,
		APIMasterSecret: masterSecret,
		AdminUsername:   getEnv("ADMIN_USERNAME", defaultAdminUsername),
		AdminPassword:   getEnv("ADMIN_PASSWORD", defaultAdminPassword),
		MaxRangeDays:    maxRangeDays,
		ResultCacheSize: cacheSize,
	}, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func intEnv(key string, fallback int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	if n < 0 {
		return 0, fmt.Errorf("%s must not be negative", key)
	}
	return n, nil
}
