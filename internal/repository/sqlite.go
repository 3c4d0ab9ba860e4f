package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/mini-rodalies-3d/timetable/internal/catalog"

	_ "modernc.org/sqlite"
)

// SQLiteDB wraps a read-only view of the catalog store
type SQLiteDB struct {
	db *sql.DB
}

// NewSQLiteDB opens the catalog database written by the importer
func NewSQLiteDB(dbPath string) (*SQLiteDB, error) {
	db, err := sql.Open("sqlite", dbPath+"?_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(time.Hour)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &SQLiteDB{db: db}, nil
}

// Close closes the database connection
func (s *SQLiteDB) Close() error {
	return s.db.Close()
}

// GetDB returns the underlying database connection
func (s *SQLiteDB) GetDB() *sql.DB {
	return s.db
}

// SQLiteCatalogRepository reads the catalog from SQLite
type SQLiteCatalogRepository struct {
	db *sql.DB
}

// NewSQLiteCatalogRepository creates a new SQLiteCatalogRepository
func NewSQLiteCatalogRepository(db *sql.DB) *SQLiteCatalogRepository {
	return &SQLiteCatalogRepository{db: db}
}

// LoadCatalog reads all stations and lines in their stored order
func (r *SQLiteCatalogRepository) LoadCatalog(ctx context.Context) (*catalog.Catalog, error) {
	var rows catalogRows

	stations, err := r.db.QueryContext(ctx, stationsQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to query stations: %w", err)
	}
	defer stations.Close()

	for stations.Next() {
		var tag, name string
		if err := stations.Scan(&tag, &name); err != nil {
			return nil, fmt.Errorf("failed to scan station row: %w", err)
		}
		rows.addStation(tag, name)
	}
	if err := stations.Err(); err != nil {
		return nil, fmt.Errorf("error iterating stations: %w", err)
	}

	stops, err := r.db.QueryContext(ctx, stopsQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to query line stops: %w", err)
	}
	defer stops.Close()

	for stops.Next() {
		var (
			lineID             int64
			lineName, tag      string
			arrival, departure *string
		)
		if err := stops.Scan(&lineID, &lineName, &tag, &arrival, &departure); err != nil {
			return nil, fmt.Errorf("failed to scan stop row: %w", err)
		}
		rows.addStop(lineID, lineName, tag, arrival, departure)
	}
	if err := stops.Err(); err != nil {
		return nil, fmt.Errorf("error iterating line stops: %w", err)
	}

	return rows.catalog()
}
