// Package catalog keeps the served channel list in an in-memory database.
package catalog

import (
	"fmt"
	"sort"
	"time"

	"github.com/hashicorp/go-memdb"

	"bell-lookup/internal/channel"
)

const (
	tableChannels = "channels"
	tableMeta     = "meta"
	metaKey       = "state"
)

// row is one stored channel. Pos keeps load order.
type row struct {
	Pos     int
	ID      int
	Channel channel.Channel
}

type meta struct {
	Key      string
	Loading  bool
	LoadedAt time.Time
}

// Snapshot is a consistent view of the catalog.
type Snapshot struct {
	Channels []channel.Channel
	Loading  bool
	LoadedAt time.Time
}

// Catalog holds the current channel list. Writers swap the whole list in one
// transaction; readers see either the old or the new list.
type Catalog struct {
	db *memdb.MemDB
}

func schema() *memdb.DBSchema {
	return &memdb.DBSchema{
		Tables: map[string]*memdb.TableSchema{
			tableChannels: {
				Name: tableChannels,
				Indexes: map[string]*memdb.IndexSchema{
					"id": {
						Name:    "id",
						Unique:  true,
						Indexer: &memdb.IntFieldIndex{Field: "Pos"},
					},
					"channel": {
						Name:    "channel",
						Indexer: &memdb.IntFieldIndex{Field: "ID"},
					},
				},
			},
			tableMeta: {
				Name: tableMeta,
				Indexes: map[string]*memdb.IndexSchema{
					"id": {
						Name:    "id",
						Unique:  true,
						Indexer: &memdb.StringFieldIndex{Field: "Key"},
					},
				},
			},
		},
	}
}

// New returns an empty catalog in the loading state.
func New() (*Catalog, error) {
	db, err := memdb.NewMemDB(schema())
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	txn := db.Txn(true)
	if err := txn.Insert(tableMeta, &meta{Key: metaKey, Loading: true}); err != nil {
		txn.Abort()
		return nil, fmt.Errorf("catalog: %w", err)
	}
	txn.Commit()
	return &Catalog{db: db}, nil
}

// Replace swaps in list and clears loading.
func (c *Catalog) Replace(list []channel.Channel) error {
	txn := c.db.Txn(true)
	defer txn.Abort()

	if _, err := txn.DeleteAll(tableChannels, "id"); err != nil {
		return fmt.Errorf("catalog: clear: %w", err)
	}
	for i, ch := range list {
		if err := txn.Insert(tableChannels, &row{Pos: i, ID: ch.ID, Channel: ch}); err != nil {
			return fmt.Errorf("catalog: insert %d: %w", ch.ID, err)
		}
	}
	if err := txn.Insert(tableMeta, &meta{Key: metaKey, LoadedAt: time.Now()}); err != nil {
		return fmt.Errorf("catalog: meta: %w", err)
	}
	txn.Commit()
	return nil
}

// Failed clears loading and keeps the current list.
func (c *Catalog) Failed() error {
	txn := c.db.Txn(true)
	defer txn.Abort()
	m, err := readMeta(txn)
	if err != nil {
		return err
	}
	next := *m
	next.Loading = false
	if err := txn.Insert(tableMeta, &next); err != nil {
		return fmt.Errorf("catalog: meta: %w", err)
	}
	txn.Commit()
	return nil
}

// Snapshot returns the list in load order plus the loading flag.
func (c *Catalog) Snapshot() (Snapshot, error) {
	txn := c.db.Txn(false)
	defer txn.Abort()

	m, err := readMeta(txn)
	if err != nil {
		return Snapshot{}, err
	}
	it, err := txn.Get(tableChannels, "id")
	if err != nil {
		return Snapshot{}, fmt.Errorf("catalog: scan: %w", err)
	}
	var rows []*row
	for obj := it.Next(); obj != nil; obj = it.Next() {
		rows = append(rows, obj.(*row))
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Pos < rows[j].Pos })

	list := make([]channel.Channel, len(rows))
	for i, r := range rows {
		list[i] = r.Channel
	}
	return Snapshot{Channels: list, Loading: m.Loading, LoadedAt: m.LoadedAt}, nil
}

// Get looks up a channel by its index. With duplicate indexes the first
// loaded one wins.
func (c *Catalog) Get(id int) (channel.Channel, bool, error) {
	txn := c.db.Txn(false)
	defer txn.Abort()

	it, err := txn.Get(tableChannels, "channel", id)
	if err != nil {
		return channel.Channel{}, false, fmt.Errorf("catalog: get %d: %w", id, err)
	}
	var best *row
	for obj := it.Next(); obj != nil; obj = it.Next() {
		if r := obj.(*row); best == nil || r.Pos < best.Pos {
			best = r
		}
	}
	if best == nil {
		return channel.Channel{}, false, nil
	}
	return best.Channel, true, nil
}

func readMeta(txn *memdb.Txn) (*meta, error) {
	raw, err := txn.First(tableMeta, "id", metaKey)
	if err != nil {
		return nil, fmt.Errorf("catalog: meta: %w", err)
	}
	if raw == nil {
		return &meta{Key: metaKey}, nil
	}
	return raw.(*meta), nil
}
