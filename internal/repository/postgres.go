package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mini-rodalies-3d/timetable/internal/catalog"
)

// PostgresCatalogRepository reads the catalog from Postgres. The tables
// follow the SQLite schema.
type PostgresCatalogRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresCatalogRepository(ctx context.Context, databaseURL string) (*PostgresCatalogRepository, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresCatalogRepository{pool: pool}, nil
}

func (r *PostgresCatalogRepository) Close() {
	r.pool.Close()
}

func (r *PostgresCatalogRepository) LoadCatalog(ctx context.Context) (*catalog.Catalog, error) {
	var rows catalogRows

	stations, err := r.pool.Query(ctx, stationsQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to query stations: %w", err)
	}
	for stations.Next() {
		var tag, name string
		if err := stations.Scan(&tag, &name); err != nil {
			stations.Close()
			return nil, fmt.Errorf("failed to scan station row: %w", err)
		}
		rows.addStation(tag, name)
	}
	stations.Close()
	if err := stations.Err(); err != nil {
		return nil, fmt.Errorf("error iterating stations: %w", err)
	}

	stops, err := r.pool.Query(ctx, stopsQuery)
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
