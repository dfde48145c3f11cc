package source

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"

	"github.com/lib/pq"
	_ "modernc.org/sqlite"

	"bell-lookup/internal/channel"
)

// OpenSQLite reads a local snapshot of the channel table.
func OpenSQLite(path, table string) (Source, error) {
	if path == "" {
		return nil, errors.New("sqlite: path empty")
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("sqlite: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open: %w", err)
	}
	db.SetMaxOpenConns(1)
	return &sqlSource{name: "sqlite", db: db, table: table}, nil
}

const createTableSQL = `CREATE TABLE IF NOT EXISTS %s (
	"index" INTEGER PRIMARY KEY,
	"Channel_Name" TEXT,
	"Channel_Number" TEXT,
	"Category" TEXT,
	"Included_Bundles" TEXT,
	"AlaCarte_10" BOOLEAN,
	"AlaCarte_Price" REAL,
	"AddOn_Name" TEXT,
	"AddOn_Price" REAL
)`

// WriteSQLite creates a snapshot file at path holding recs. It is used to
// take an offline copy of the hosted table.
func WriteSQLite(ctx context.Context, path, table string, recs []channel.Record) error {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("sqlite: open: %w", err)
	}
	defer db.Close()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("sqlite: begin: %w", err)
	}
	defer tx.Rollback()

	qt := pq.QuoteIdentifier(table)
	if _, err := tx.ExecContext(ctx, fmt.Sprintf(createTableSQL, qt)); err != nil {
		return fmt.Errorf("sqlite: create: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM "+qt); err != nil {
		return fmt.Errorf("sqlite: clear: %w", err)
	}
	stmt, err := tx.PrepareContext(ctx, "INSERT INTO "+qt+` VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("sqlite: prepare: %w", err)
	}
	defer stmt.Close()
	for _, r := range recs {
		if _, err := stmt.ExecContext(ctx, r.Index, value(r.Name), value(r.Number), value(r.Category), value(r.Bundles),
			value(r.AlaCarte), value(r.AlaCartePrice), value(r.AddOnName), value(r.AddOnPrice)); err != nil {
			return fmt.Errorf("sqlite: insert %d: %w", r.Index, err)
		}
	}
	return tx.Commit()
}

// value unwraps p for binding; nil binds as NULL.
func value[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}
