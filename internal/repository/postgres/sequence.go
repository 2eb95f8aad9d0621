package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// Sequence is a durable identifier allocator over the counters region.
// Allocation is a single statement, so the counter advances atomically
// and a value is never handed out twice, even across restarts.
type Sequence struct {
	db   *DB
	name string
}

// NewSequence constructs the allocator for one entity class. Counter
// rows are seeded by the migrations; the first allocated value is 0.
func NewSequence(db *DB, name string) *Sequence {
	return &Sequence{db: db, name: name}
}

// Next advances the counter and returns the pre-increment value.
func (s *Sequence) Next(ctx context.Context) (uint64, error) {
	const q = `UPDATE counters SET value = value + 1 WHERE name=$1 RETURNING value - 1`
	var id int64
	if err := s.db.Pool.QueryRow(ctx, q, s.name).Scan(&id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, fmt.Errorf("counter %q not seeded", s.name)
		}
		return 0, err
	}
	return uint64(id), nil
}
