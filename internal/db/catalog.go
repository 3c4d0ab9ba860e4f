package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mini-rodalies-3d/timetable/internal/catalog"
)

// ErrNoImport is returned when the store has never received a catalog
var ErrNoImport = errors.New("no catalog imported")

// Import describes one SaveCatalog run
type Import struct {
	ID         string
	Source     string
	ImportedAt time.Time
	Stations   int
	Lines      int
}

// SaveCatalog replaces the stored catalog with c in a single transaction and
// returns the new import id. Readers never see a half-written catalog.
func (db *DB) SaveCatalog(ctx context.Context, c *catalog.Catalog, source string) (string, error) {
	db.writeMu.Lock()
	defer db.writeMu.Unlock()

	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"line_stops", "lines", "stations"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return "", fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	stationStmt, err := tx.PrepareContext(ctx, "INSERT INTO stations (tag, name, position) VALUES (?, ?, ?)")
	if err != nil {
		return "", fmt.Errorf("failed to prepare station statement: %w", err)
	}
	defer stationStmt.Close()

	for i, s := range c.Stations {
		if _, err := stationStmt.ExecContext(ctx, s.Tag, s.Name, i); err != nil {
			return "", fmt.Errorf("failed to insert station %s: %w", s.Tag, err)
		}
	}

	lineStmt, err := tx.PrepareContext(ctx, "INSERT INTO lines (line_id, name, position) VALUES (?, ?, ?)")
	if err != nil {
		return "", fmt.Errorf("failed to prepare line statement: %w", err)
	}
	defer lineStmt.Close()

	stopStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO line_stops (line_id, stop_sequence, station_tag, arrival, departure)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return "", fmt.Errorf("failed to prepare stop statement: %w", err)
	}
	defer stopStmt.Close()

	for i, l := range c.Lines {
		lineID := i + 1
		if _, err := lineStmt.ExecContext(ctx, lineID, l.Name, i); err != nil {
			return "", fmt.Errorf("failed to insert line %s: %w", l.Name, err)
		}
		for seq, s := range l.Stops {
			if _, err := stopStmt.ExecContext(ctx, lineID, seq, s.Tag, nullable(s.Arrival), nullable(s.Departure)); err != nil {
				return "", fmt.Errorf("failed to insert stop %d of line %s: %w", seq, l.Name, err)
			}
		}
	}

	importID := uuid.New().String()
	_, err = tx.ExecContext(ctx, `
		INSERT INTO catalog_imports (import_id, source, imported_at_utc, station_count, line_count)
		VALUES (?, ?, ?, ?, ?)
	`, importID, source, time.Now().UTC().Format(time.RFC3339), len(c.Stations), len(c.Lines))
	if err != nil {
		return "", fmt.Errorf("failed to record import: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit catalog: %w", err)
	}

	return importID, nil
}

// LatestImport returns the most recent import
func (db *DB) LatestImport(ctx context.Context) (*Import, error) {
	var imp Import
	var importedAt string
	err := db.conn.QueryRowContext(ctx, `
		SELECT import_id, source, imported_at_utc, station_count, line_count
		FROM catalog_imports
		ORDER BY imported_at_utc DESC, rowid DESC
		LIMIT 1
	`).Scan(&imp.ID, &imp.Source, &importedAt, &imp.Stations, &imp.Lines)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoImport
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query imports: %w", err)
	}

	imp.ImportedAt, err = time.Parse(time.RFC3339, importedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse import time %q: %w", importedAt, err)
	}
	return &imp, nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
