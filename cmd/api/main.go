package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/mini-rodalies-3d/timetable/internal/catalog"
	"github.com/mini-rodalies-3d/timetable/internal/config"
	"github.com/mini-rodalies-3d/timetable/internal/handlers"
	"github.com/mini-rodalies-3d/timetable/internal/planner"
	"github.com/mini-rodalies-3d/timetable/internal/repository"
	"github.com/mini-rodalies-3d/timetable/internal/search"
	"github.com/mini-rodalies-3d/timetable/internal/timetable"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	// .env.local overrides .env for local development
	_ = godotenv.Load(".env")
	_ = godotenv.Overload(".env.local")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	tt, err := loadTimetable(ctx, cfg)
	cancel()
	if err != nil {
		log.Fatalf("Failed to load timetable: %v", err)
	}
	log.Printf("Timetable loaded from %s: %d stations, %d lines", cfg.CatalogSource, len(tt.Stations()), len(tt.Lines()))

	frontier, err := search.ParseFrontierKind(cfg.SearchFrontier)
	if err != nil {
		log.Fatalf("Invalid SEARCH_FRONTIER: %v", err)
	}

	p := planner.New(tt, planner.WithFrontier(frontier), planner.WithCacheSize(cfg.QueryCacheSize))

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handlers.NewRouter(p, cfg.CatalogSource, cfg.AllowedOrigins),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("API server starting on :%s", cfg.Port)
		log.Println("  GET /api/stations")
		log.Println("  GET /api/stations/{tag}")
		log.Println("  GET /api/stations/{tag}/departures?at=HH:MM")
		log.Println("  GET /api/connections?from=TAG&to=TAG&at=HH:MM")
		log.Println("  GET /health")
		log.Println("  GET /metrics")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	log.Printf("shutdown signal received")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Warning: graceful shutdown failed: %v", err)
	}
	log.Println("API server stopped")
}

func loadTimetable(ctx context.Context, cfg *config.Config) (*timetable.Timetable, error) {
	var (
		c   *catalog.Catalog
		err error
	)

	switch cfg.CatalogSource {
	case config.SourceSample:
		c = catalog.Sample()
	case config.SourceYAML:
		c, err = catalog.LoadFile(cfg.CatalogPath)
	case config.SourceSQLite:
		var db *repository.SQLiteDB
		db, err = repository.NewSQLiteDB(cfg.DatabasePath)
		if err != nil {
			return nil, err
		}
		defer db.Close()
		c, err = repository.NewSQLiteCatalogRepository(db.GetDB()).LoadCatalog(ctx)
	case config.SourcePostgres:
		var repo *repository.PostgresCatalogRepository
		repo, err = repository.NewPostgresCatalogRepository(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		defer repo.Close()
		c, err = repo.LoadCatalog(ctx)
	default:
		return nil, fmt.Errorf("unknown catalog source %q", cfg.CatalogSource)
	}
	if err != nil {
		return nil, err
	}

	return c.Build()
}
