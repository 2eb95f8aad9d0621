package postgres

import (
	"cmp"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/okorolenko/chirp/internal/model"
	"github.com/okorolenko/chirp/internal/repository"
)

// Table is a generic ordered store backed by one SQL table per entity
// region: a typed key column plus a JSONB document column. All region
// tables are created by the embedded migrations, so table and key
// column names are compile-time constants, never caller input.
type Table[K cmp.Ordered, V any] struct {
	db *DB

	getSQL    string
	putSQL    string
	deleteSQL string
	listSQL   string
}

// NewTable constructs a store over the named table and key column.
func NewTable[K cmp.Ordered, V any](db *DB, table, keyCol string) *Table[K, V] {
	return &Table[K, V]{
		db:        db,
		getSQL:    fmt.Sprintf(`SELECT doc FROM %s WHERE %s=$1`, table, keyCol),
		putSQL:    fmt.Sprintf(`INSERT INTO %s (%s, doc) VALUES ($1, $2) ON CONFLICT (%s) DO UPDATE SET doc = EXCLUDED.doc`, table, keyCol, keyCol),
		deleteSQL: fmt.Sprintf(`DELETE FROM %s WHERE %s=$1 RETURNING doc`, table, keyCol),
		listSQL:   fmt.Sprintf(`SELECT %s, doc FROM %s ORDER BY %s ASC`, keyCol, table, keyCol),
	}
}

// NewTweetTable returns the store over the tweets region.
func NewTweetTable(db *DB) repository.TweetStore {
	return NewTable[uint64, model.Tweet](db, "tweets", "id")
}

// NewProfileTable returns the store over the profiles region.
func NewProfileTable(db *DB) repository.ProfileStore {
	return NewTable[model.Identity, model.Profile](db, "profiles", "identity")
}

// Get returns the record for key, reporting whether it exists.
func (t *Table[K, V]) Get(ctx context.Context, key K) (V, bool, error) {
	var zero V
	var doc []byte
	if err := t.db.Pool.QueryRow(ctx, t.getSQL, key).Scan(&doc); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return zero, false, nil
		}
		return zero, false, err
	}
	var v V
	if err := json.Unmarshal(doc, &v); err != nil {
		return zero, false, fmt.Errorf("decode document: %w", err)
	}
	return v, true, nil
}

// Put inserts the record, fully replacing any prior document for key.
func (t *Table[K, V]) Put(ctx context.Context, key K, value V) error {
	doc, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	_, err = t.db.Pool.Exec(ctx, t.putSQL, key, string(doc))
	return err
}

// Delete removes and returns the prior record if present.
func (t *Table[K, V]) Delete(ctx context.Context, key K) (V, bool, error) {
	var zero V
	var doc []byte
	if err := t.db.Pool.QueryRow(ctx, t.deleteSQL, key).Scan(&doc); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return zero, false, nil
		}
		return zero, false, err
	}
	var v V
	if err := json.Unmarshal(doc, &v); err != nil {
		return zero, false, fmt.Errorf("decode document: %w", err)
	}
	return v, true, nil
}

// All returns every entry in ascending key order.
func (t *Table[K, V]) All(ctx context.Context) ([]repository.Entry[K, V], error) {
	rows, err := t.db.Pool.Query(ctx, t.listSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []repository.Entry[K, V]
	for rows.Next() {
		var (
			key K
			doc []byte
		)
		if err := rows.Scan(&key, &doc); err != nil {
			return nil, err
		}
		var v V
		if err := json.Unmarshal(doc, &v); err != nil {
			return nil, fmt.Errorf("decode document: %w", err)
		}
		entries = append(entries, repository.Entry[K, V]{Key: key, Value: v})
	}
	return entries, rows.Err()
}
