package config

import (
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "ALLOWED_ORIGINS", "CATALOG_SOURCE", "CATALOG_PATH", "SQLITE_DATABASE",
		"DATABASE_URL", "SEARCH_FRONTIER", "QUERY_CACHE_SIZE", "GTFS_URL", "CACHE_DIR",
		"STATIC_REFRESH_DAYS",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Port != "8081" {
		t.Errorf("Port = %q, want 8081", cfg.Port)
	}
	if cfg.CatalogSource != SourceSample {
		t.Errorf("CatalogSource = %q, want sample", cfg.CatalogSource)
	}
	if cfg.SearchFrontier != "scan" {
		t.Errorf("SearchFrontier = %q, want scan", cfg.SearchFrontier)
	}
	if cfg.QueryCacheSize != 1024 {
		t.Errorf("QueryCacheSize = %d, want 1024", cfg.QueryCacheSize)
	}
	if cfg.StaticRefreshDays != 7 {
		t.Errorf("StaticRefreshDays = %d, want 7", cfg.StaticRefreshDays)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("ALLOWED_ORIGINS", "http://a.example, ,http://b.example")
	t.Setenv("CATALOG_SOURCE", "yaml")
	t.Setenv("CATALOG_PATH", "/etc/timetable/catalog.yaml")
	t.Setenv("SEARCH_FRONTIER", "heap")
	t.Setenv("QUERY_CACHE_SIZE", "not-a-number")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Port != "9000" {
		t.Errorf("Port = %q, want 9000", cfg.Port)
	}
	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[1] != "http://b.example" {
		t.Errorf("AllowedOrigins = %v", cfg.AllowedOrigins)
	}
	if cfg.SearchFrontier != "heap" {
		t.Errorf("SearchFrontier = %q, want heap", cfg.SearchFrontier)
	}
	// unparsable ints fall back to the default
	if cfg.QueryCacheSize != 1024 {
		t.Errorf("QueryCacheSize = %d, want 1024", cfg.QueryCacheSize)
	}
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name  string
		env   map[string]string
		field string
	}{
		{"unknown source", map[string]string{"CATALOG_SOURCE": "csv"}, "CatalogSource"},
		{"yaml without path", map[string]string{"CATALOG_SOURCE": "yaml", "CATALOG_PATH": ""}, "CatalogPath"},
		{"postgres without url", map[string]string{"CATALOG_SOURCE": "postgres", "DATABASE_URL": ""}, "DatabaseURL"},
		{"unknown frontier", map[string]string{"SEARCH_FRONTIER": "fibonacci"}, "SearchFrontier"},
		{"bad port", map[string]string{"PORT": "http"}, "Port"},
		{"bad gtfs url", map[string]string{"GTFS_URL": "not a url"}, "GTFSURL"},
		{"zero refresh days", map[string]string{"STATIC_REFRESH_DAYS": "0"}, "StaticRefreshDays"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("CATALOG_SOURCE", "")
			t.Setenv("PORT", "")
			t.Setenv("SEARCH_FRONTIER", "")
			t.Setenv("GTFS_URL", "")
			t.Setenv("STATIC_REFRESH_DAYS", "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load()
			if err == nil {
				t.Fatal("Load() expected an error")
			}
			if !strings.Contains(err.Error(), tt.field) {
				t.Errorf("error %q does not mention %s", err, tt.field)
			}
		})
	}
}
