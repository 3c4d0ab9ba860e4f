package static

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/mini-rodalies-3d/timetable/internal/config"
	"github.com/mini-rodalies-3d/timetable/internal/static/gtfs"
)

// GeneratorVersion is bumped whenever the cached feed must be fetched again
// regardless of its age
const GeneratorVersion = "1"

const (
	feedFile     = "gtfs.zip"
	manifestFile = "manifest.json"
)

// ErrNoFeedURL is returned when a refresh is needed but GTFS_URL is unset
var ErrNoFeedURL = errors.New("GTFS_URL is not configured")

// Manifest records when the cached feed was fetched
type Manifest struct {
	UpdatedAt        string `json:"updated_at,omitempty"`
	GeneratedAt      string `json:"generated_at,omitempty"` // written by older versions
	GeneratorVersion string `json:"generator_version,omitempty"`
	SourceURL        string `json:"source_url,omitempty"`
}

// FeedPath returns where the cached GTFS zip lives
func FeedPath(cfg *config.Config) string {
	return filepath.Join(cfg.CacheDir, feedFile)
}

// RefreshIfStale downloads the configured feed into the cache directory when
// the cached copy is missing, older than StaticRefreshDays, or was fetched
// by a different generator version. It returns the path of the zip and
// whether a download happened.
func RefreshIfStale(cfg *config.Config) (string, bool, error) {
	zipPath := FeedPath(cfg)
	manifestPath := filepath.Join(cfg.CacheDir, manifestFile)

	_, statErr := os.Stat(zipPath)
	stale := statErr != nil ||
		isStaleOrMissing(manifestPath, cfg.StaticRefreshDays) ||
		getStoredGeneratorVersion(manifestPath) != GeneratorVersion

	if !stale {
		log.Println("Static GTFS data is fresh, skipping refresh")
		return zipPath, false, nil
	}

	if cfg.GTFSURL == "" {
		return "", false, ErrNoFeedURL
	}

	if err := os.MkdirAll(cfg.CacheDir, 0755); err != nil {
		return "", false, err
	}

	log.Printf("Refreshing static GTFS data from %s...", cfg.GTFSURL)
	if err := gtfs.Download(cfg.GTFSURL, zipPath); err != nil {
		return "", false, err
	}

	if err := writeManifest(manifestPath, Manifest{
		UpdatedAt:        time.Now().UTC().Format(time.RFC3339),
		GeneratorVersion: GeneratorVersion,
		SourceURL:        cfg.GTFSURL,
	}); err != nil {
		return "", false, err
	}

	log.Println("Static GTFS data refreshed successfully")
	return zipPath, true, nil
}

func readManifest(manifestPath string) (*Manifest, error) {
	data, err := os.ReadFile(manifestPath)
	if err != nil {
		return nil, err
	}
	var manifest Manifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, err
	}
	return &manifest, nil
}

func writeManifest(manifestPath string, m Manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(manifestPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}
	return nil
}

func isStaleOrMissing(manifestPath string, maxAgeDays int) bool {
	manifest, err := readManifest(manifestPath)
	if err != nil {
		return true
	}

	stamp := manifest.UpdatedAt
	if stamp == "" {
		stamp = manifest.GeneratedAt
	}
	updatedAt, err := time.Parse(time.RFC3339, stamp)
	if err != nil {
		return true
	}

	maxAge := time.Duration(maxAgeDays) * 24 * time.Hour
	return time.Since(updatedAt) > maxAge
}

// getStoredGeneratorVersion returns "" when the manifest is missing or has no version
func getStoredGeneratorVersion(manifestPath string) string {
	manifest, err := readManifest(manifestPath)
	if err != nil {
		return ""
	}
	return manifest.GeneratorVersion
}
