package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/require"

	"github.com/okorolenko/chirp/internal/model"
)

func newDB(t *testing.T) (*DB, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	return &DB{Pool: mock}, mock
}

func TestTable_Get(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	tab := NewTable[uint64, model.Tweet](db, "tweets", "id")
	ctx := context.Background()

	doc := []byte(`{"id":7,"author":"alice","content":"hi","created_at":"2024-05-06T07:08:09Z","likes":0,"retweets":0}`)
	mock.ExpectQuery(`SELECT doc FROM tweets WHERE id=\$1`).
		WithArgs(uint64(7)).
		WillReturnRows(pgxmock.NewRows([]string{"doc"}).AddRow(doc))
	tw, ok, err := tab.Get(ctx, 7)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "alice", tw.Author)
	require.Equal(t, time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC), tw.CreatedAt)

	// Absent key is not an error.
	mock.ExpectQuery(`SELECT doc FROM tweets WHERE id=\$1`).
		WithArgs(uint64(8)).
		WillReturnError(pgx.ErrNoRows)
	_, ok, err = tab.Get(ctx, 8)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestTable_Put(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	tab := NewTable[uint64, model.Tweet](db, "tweets", "id")

	mock.ExpectExec(`INSERT INTO tweets \(id, doc\) VALUES \(\$1, \$2\) ON CONFLICT \(id\) DO UPDATE SET doc = EXCLUDED\.doc`).
		WithArgs(uint64(7), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	err := tab.Put(context.Background(), 7, model.Tweet{ID: 7, Author: "alice", Content: "hi"})
	require.NoError(t, err)
}

func TestTable_Delete(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	tab := NewTable[uint64, model.Tweet](db, "tweets", "id")
	ctx := context.Background()

	mock.ExpectQuery(`DELETE FROM tweets WHERE id=\$1 RETURNING doc`).
		WithArgs(uint64(7)).
		WillReturnRows(pgxmock.NewRows([]string{"doc"}).AddRow([]byte(`{"id":7,"author":"alice","content":"hi"}`)))
	prior, ok, err := tab.Delete(ctx, 7)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "hi", prior.Content)

	mock.ExpectQuery(`DELETE FROM tweets WHERE id=\$1 RETURNING doc`).
		WithArgs(uint64(7)).
		WillReturnError(pgx.ErrNoRows)
	_, ok, err = tab.Delete(ctx, 7)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestTable_AllAscending(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	tab := NewProfileTable(db)

	rows := pgxmock.NewRows([]string{"identity", "doc"}).
		AddRow(model.Identity("id-a"), []byte(`{"username":"alice","password":"pw"}`)).
		AddRow(model.Identity("id-b"), []byte(`{"username":"bob","password":"pw"}`))
	mock.ExpectQuery(`SELECT identity, doc FROM profiles ORDER BY identity ASC`).
		WillReturnRows(rows)

	entries, err := tab.All(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, model.Identity("id-a"), entries[0].Key)
	require.Equal(t, "alice", entries[0].Value.Username)
	require.Equal(t, "bob", entries[1].Value.Username)
}

func TestSequence_Next(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	seq := NewSequence(db, "tweets")
	ctx := context.Background()

	mock.ExpectQuery(`UPDATE counters SET value = value \+ 1 WHERE name=\$1 RETURNING value - 1`).
		WithArgs("tweets").
		WillReturnRows(pgxmock.NewRows([]string{"value"}).AddRow(int64(0)))
	id, err := seq.Next(ctx)
	require.NoError(t, err)
	require.Equal(t, uint64(0), id)

	mock.ExpectQuery(`UPDATE counters SET value = value \+ 1 WHERE name=\$1 RETURNING value - 1`).
		WithArgs("tweets").
		WillReturnError(pgx.ErrNoRows)
	_, err = seq.Next(ctx)
	require.Error(t, err)
}
