package db

import (
	"context"
	"fmt"
	"log"
	"time"
)

// PruneImports deletes import records older than retention. The latest
// import is always kept since it describes the catalog currently stored.
func (db *DB) PruneImports(ctx context.Context, retention time.Duration) (int, error) {
	hours := int(retention.Hours())
	if hours < 1 {
		hours = 1
	}

	db.writeMu.Lock()
	defer db.writeMu.Unlock()

	result, err := db.conn.ExecContext(ctx, `
		DELETE FROM catalog_imports
		WHERE datetime(imported_at_utc) < datetime('now', ?)
		AND import_id != (
			SELECT import_id FROM catalog_imports
			ORDER BY imported_at_utc DESC, rowid DESC
			LIMIT 1
		)
	`, fmt.Sprintf("-%d hours", hours))
	if err != nil {
		return 0, fmt.Errorf("failed to prune imports: %w", err)
	}

	deleted, _ := result.RowsAffected()
	if deleted > 0 {
		log.Printf("Cleanup: deleted %d import records older than %d hours", deleted, hours)
	}
	return int(deleted), nil
}
