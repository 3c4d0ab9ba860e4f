package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Catalog sources
const (
	SourceSample   = "sample"
	SourceYAML     = "yaml"
	SourceSQLite   = "sqlite"
	SourcePostgres = "postgres"
)

// Config holds all configuration for the planner binaries
type Config struct {
	// HTTP
	Port           string   `validate:"required,numeric"`
	AllowedOrigins []string `validate:"min=1,dive,required"`

	// Catalog
	CatalogSource  string `validate:"oneof=sample yaml sqlite postgres"`
	CatalogPath    string `validate:"required_if=CatalogSource yaml"`
	DatabasePath   string `validate:"required_if=CatalogSource sqlite"`
	DatabaseURL    string `validate:"required_if=CatalogSource postgres"`
	SearchFrontier string `validate:"oneof=scan heap"`
	QueryCacheSize int    `validate:"gte=0"`

	// Static GTFS refresh
	GTFSURL           string `validate:"omitempty,url"`
	CacheDir          string `validate:"required"`
	StaticRefreshDays int    `validate:"gte=1"`
}

// Load reads configuration from environment variables with defaults and
// validates the result
func Load() (*Config, error) {
	cfg := &Config{
		Port:           getEnv("PORT", "8081"),
		AllowedOrigins: getEnvList("ALLOWED_ORIGINS", []string{"http://localhost:5173"}),

		CatalogSource:  getEnv("CATALOG_SOURCE", SourceSample),
		CatalogPath:    getEnv("CATALOG_PATH", ""),
		DatabasePath:   getEnv("SQLITE_DATABASE", "/data/timetable.db"),
		DatabaseURL:    getEnv("DATABASE_URL", ""),
		SearchFrontier: getEnv("SEARCH_FRONTIER", "scan"),
		QueryCacheSize: getEnvInt("QUERY_CACHE_SIZE", 1024),

		GTFSURL:           getEnv("GTFS_URL", ""),
		CacheDir:          getEnv("CACHE_DIR", "/data/cache"),
		StaticRefreshDays: getEnvInt("STATIC_REFRESH_DAYS", 7),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the struct tags
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvList splits a comma separated value, dropping empty entries
func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, v := range strings.Split(value, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
