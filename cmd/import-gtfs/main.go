package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"github.com/mini-rodalies-3d/timetable/internal/catalog"
	"github.com/mini-rodalies-3d/timetable/internal/config"
	"github.com/mini-rodalies-3d/timetable/internal/db"
	"github.com/mini-rodalies-3d/timetable/internal/static"
	"github.com/mini-rodalies-3d/timetable/internal/static/gtfs"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	dbPath := flag.String("db", "", "Path to SQLite database (default: SQLITE_DATABASE)")
	zipPath := flag.String("gtfs", "", "GTFS zip to import")
	refresh := flag.Bool("refresh", false, "Download GTFS_URL into CACHE_DIR when stale and import it")
	yamlPath := flag.String("catalog", "", "Import a YAML catalog instead of a GTFS feed")
	retentionDays := flag.Int("retention-days", 90, "Keep import history for this many days")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if *dbPath == "" {
		*dbPath = cfg.DatabasePath
	}

	c, source, err := loadCatalog(cfg, *zipPath, *yamlPath, *refresh)
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}

	// refuse to store anything the planner could not load
	tt, err := c.Build()
	if err != nil {
		log.Fatalf("Catalog does not build into a timetable: %v", err)
	}
	log.Printf("Catalog OK: %d stations, %d lines", len(tt.Stations()), len(tt.Lines()))

	database, err := db.Connect(*dbPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer database.Close()

	ctx := context.Background()
	if err := database.EnsureSchema(ctx); err != nil {
		log.Fatalf("Failed to ensure schema: %v", err)
	}

	importID, err := database.SaveCatalog(ctx, c, source)
	if err != nil {
		log.Fatalf("Failed to save catalog: %v", err)
	}
	log.Printf("SUCCESS: imported %s as %s", source, importID)

	if _, err := database.PruneImports(ctx, time.Duration(*retentionDays)*24*time.Hour); err != nil {
		log.Printf("Warning: %v", err)
	}
}

func loadCatalog(cfg *config.Config, zipPath, yamlPath string, refresh bool) (*catalog.Catalog, string, error) {
	switch {
	case yamlPath != "":
		c, err := catalog.LoadFile(yamlPath)
		return c, yamlPath, err
	case refresh:
		path, downloaded, err := static.RefreshIfStale(cfg)
		if err != nil {
			return nil, "", err
		}
		if !downloaded {
			log.Printf("Using cached feed %s", path)
		}
		zipPath = path
	case zipPath == "":
		flag.Usage()
		os.Exit(2)
	}

	data, err := gtfs.Parse(zipPath)
	if err != nil {
		return nil, "", err
	}
	return catalog.FromGTFS(data), zipPath, nil
}
