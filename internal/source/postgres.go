package source

import (
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/lib/pq"
)

// OpenPostgres connects to the hosted database directly. The connection is
// only used for reads.
func OpenPostgres(dsn, table string) (Source, error) {
	if dsn == "" {
		return nil, errors.New("postgres: DATABASE_URL empty")
	}
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: open: %w", err)
	}
	db.SetMaxOpenConns(2)
	return &sqlSource{name: "postgres", db: db, table: table}, nil
}
