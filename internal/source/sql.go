package source

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"bell-lookup/internal/channel"
)

// sqlSource runs the single ordered SELECT against a database/sql handle.
type sqlSource struct {
	name  string
	db    *sql.DB
	table string
}

func (s *sqlSource) Name() string { return s.name }

func (s *sqlSource) Close() error { return s.db.Close() }

func selectQuery(table string) string {
	cols := []string{colIndex, colName, colNumber, colCategory, colBundles, colAlaCarte, colAlaCartePrice, colAddOnName, colAddOnPrice}
	for i, c := range cols {
		cols[i] = pq.QuoteIdentifier(c)
	}
	return fmt.Sprintf("SELECT %s FROM %s ORDER BY %s ASC",
		strings.Join(cols, ", "), pq.QuoteIdentifier(table), pq.QuoteIdentifier(colIndex))
}

func (s *sqlSource) FetchChannels(ctx context.Context) ([]channel.Record, error) {
	rows, err := s.db.QueryContext(ctx, selectQuery(s.table))
	if err != nil {
		return nil, fmt.Errorf("%s.%s query: %w", s.name, s.table, err)
	}
	defer rows.Close()

	var out []channel.Record
	for rows.Next() {
		var (
			idx                             sql.NullInt64
			name, number, category, bundles sql.NullString
			alaCarte                        sql.NullBool
			alaCartePrice, addOnPrice       sql.NullFloat64
			addOnName                       sql.NullString
		)
		if err := rows.Scan(&idx, &name, &number, &category, &bundles, &alaCarte, &alaCartePrice, &addOnName, &addOnPrice); err != nil {
			return nil, fmt.Errorf("%s.%s scan: %w", s.name, s.table, err)
		}
		rec := channel.Record{
			Index:         int(idx.Int64),
			Name:          nullString(name),
			Number:        nullString(number),
			Category:      nullString(category),
			Bundles:       nullString(bundles),
			AlaCartePrice: nullFloat(alaCartePrice),
			AddOnName:     nullString(addOnName),
			AddOnPrice:    nullFloat(addOnPrice),
		}
		if alaCarte.Valid {
			rec.AlaCarte = &alaCarte.Bool
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s.%s rows: %w", s.name, s.table, err)
	}
	return out, nil
}

func nullString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

func nullFloat(nf sql.NullFloat64) *float64 {
	if !nf.Valid {
		return nil
	}
	f := nf.Float64
	return &f
}
