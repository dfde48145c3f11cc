package source

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	"bell-lookup/internal/channel"
	"bell-lookup/internal/supabase"
)

// Column names as stored in the backend table.
const (
	colIndex         = "index"
	colName          = "Channel_Name"
	colNumber        = "Channel_Number"
	colCategory      = "Category"
	colBundles       = "Included_Bundles"
	colAlaCarte      = "AlaCarte_10"
	colAlaCartePrice = "AlaCarte_Price"
	colAddOnName     = "AddOn_Name"
	colAddOnPrice    = "AddOn_Price"
)

// REST reads the table through the Supabase PostgREST endpoint.
type REST struct {
	client *supabase.Client
	table  string
}

func NewREST(c *supabase.Client, table string) *REST {
	return &REST{client: c, table: table}
}

func (r *REST) Name() string { return "rest" }

func (r *REST) Close() error { return nil }

// Metrics exposes the transport counters of the underlying client.
func (r *REST) Metrics() *supabase.Metrics { return r.client.Metrics() }

// FetchChannels reads every row ordered by index ascending.
func (r *REST) FetchChannels(ctx context.Context) ([]channel.Record, error) {
	q := url.Values{}
	q.Set("select", "*")
	q.Set("order", colIndex+".asc")
	rows, err := r.client.Select(ctx, r.table, q)
	if err != nil {
		return nil, fmt.Errorf("rest.%s %w", r.table, err)
	}
	out := make([]channel.Record, 0, len(rows))
	for i, row := range rows {
		out = append(out, recordFromRow(row, i))
	}
	return out, nil
}

// recordFromRow decodes one JSON row. Numbers may arrive as numbers or
// strings; only a literal true sets the ala-carte flag. pos stands in for a
// missing index and for one that is not a whole number; a fractional index
// is rejected, never truncated.
func recordFromRow(row map[string]any, pos int) channel.Record {
	rec := channel.Record{
		Name:          textField(row[colName]),
		Number:        textField(row[colNumber]),
		Category:      textField(row[colCategory]),
		Bundles:       textField(row[colBundles]),
		AlaCartePrice: numberField(row[colAlaCartePrice]),
		AddOnName:     textField(row[colAddOnName]),
		AddOnPrice:    numberField(row[colAddOnPrice]),
	}
	if b, ok := row[colAlaCarte].(bool); ok {
		rec.AlaCarte = &b
	}
	rec.Index = pos
	if i, ok := indexField(row[colIndex]); ok {
		rec.Index = i
	}
	return rec
}

func indexField(v any) (int, bool) {
	f := numberField(v)
	if f == nil || math.IsInf(*f, 0) || *f != math.Trunc(*f) {
		return 0, false
	}
	return int(*f), true
}

func textField(v any) *string {
	var s string
	switch t := v.(type) {
	case string:
		s = t
	case json.Number:
		s = t.String()
	case float64:
		s = strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		s = strconv.FormatBool(t)
	default:
		return nil
	}
	return &s
}

func numberField(v any) *float64 {
	var f float64
	var err error
	switch t := v.(type) {
	case json.Number:
		f, err = t.Float64()
	case float64:
		f = t
	case string:
		f, err = strconv.ParseFloat(strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(t), "$")), 64)
	default:
		return nil
	}
	if err != nil {
		return nil
	}
	return &f
}
