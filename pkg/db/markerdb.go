// SQLite-backed reference marker table.

package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pchalerm/dnarisk/pkg/model"
)

// InitSchema creates the markers table if it does not exist yet.
func InitSchema(db *sql.DB) error {
	ctx := context.TODO()

	qstring := `
	CREATE TABLE IF NOT EXISTS markers (
		marker      TEXT NOT NULL,
		risk        REAL NOT NULL,
		description TEXT NOT NULL DEFAULT ''
	);`

	if _, err := db.ExecContext(ctx, qstring); err != nil {
		return fmt.Errorf("create markers table: %w", err)
	}
	return nil
}

// SaveMarkers replaces the stored marker table with the given records,
// preserving their order (rowid order is the iteration order on load).
func SaveMarkers(db *sql.DB, markers []model.MarkerRecord) error {
	ctx := context.TODO()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin marker save: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM markers`); err != nil {
		tx.Rollback()
		return fmt.Errorf("clear markers table: %w", err)
	}

	for _, rec := range markers {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO markers (marker, risk, description) VALUES (?, ?, ?)`,
			rec.Marker, rec.Risk, rec.Description)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("insert marker %s: %w", rec.Marker, err)
		}
	}

	return tx.Commit()
}

// LoadMarkers reads the full marker table in insertion order.
func LoadMarkers(db *sql.DB) ([]model.MarkerRecord, error) {
	ctx := context.TODO()

	qstring := `SELECT marker, risk, description FROM markers ORDER BY rowid;`

	stm, err := db.PrepareContext(ctx, qstring)
	if err != nil {
		return nil, err
	}
	defer stm.Close()

	rows, err := stm.QueryContext(ctx)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []model.MarkerRecord

	for rows.Next() {
		var rec model.MarkerRecord
		if err := rows.Scan(&rec.Marker, &rec.Risk, &rec.Description); err != nil {
			return nil, fmt.Errorf("scan marker row: %w", err)
		}
		results = append(results, rec)
	}

	return results, rows.Err()
}
