package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/okorolenko/chirp/internal/errs"
	"github.com/okorolenko/chirp/internal/model"
	"github.com/okorolenko/chirp/internal/repository"
)

// Registry implements UsernameRegistry over the identities and
// claimed_usernames regions. Both inserts of a claim run in one
// transaction, so the paired write cannot half-apply.
type Registry struct {
	db  *DB
	seq repository.Sequence
}

// NewRegistry constructs the registry. seq is the users allocator; it
// stamps each claim with its position so enumeration preserves claim
// order.
func NewRegistry(db *DB, seq repository.Sequence) *Registry {
	return &Registry{db: db, seq: seq}
}

// Claim binds username to identity. Precondition order is fixed:
// the claimed_usernames insert runs first, so a taken username wins
// over an already-registered identity.
func (r *Registry) Claim(ctx context.Context, identity model.Identity, username string) (err error) {
	if username == "" {
		return errs.ErrInvalidInput
	}

	pos, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}

	tx, err := r.db.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
			return
		}
		if e := tx.Commit(ctx); e != nil {
			err = e
		}
	}()

	const markClaimed = `INSERT INTO claimed_usernames (username) VALUES ($1)`
	if _, err = tx.Exec(ctx, markClaimed, username); err != nil {
		if isUniqueViolation(err) {
			err = errs.ErrUsernameTaken
		}
		return err
	}

	const bind = `INSERT INTO identities (identity, username, pos) VALUES ($1, $2, $3)`
	if _, err = tx.Exec(ctx, bind, string(identity), username, int64(pos)); err != nil {
		if isUniqueViolation(err) {
			err = errs.ErrAlreadyRegistered
		}
		return err
	}
	return nil
}

// Resolve returns the username bound to identity, if any.
func (r *Registry) Resolve(ctx context.Context, identity model.Identity) (string, bool, error) {
	const q = `SELECT username FROM identities WHERE identity=$1`
	var username string
	if err := r.db.Pool.QueryRow(ctx, q, string(identity)).Scan(&username); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false, nil
		}
		return "", false, err
	}
	return username, true, nil
}

// Lookup returns the identity that claimed username, if any.
func (r *Registry) Lookup(ctx context.Context, username string) (model.Identity, bool, error) {
	const q = `SELECT identity FROM identities WHERE username=$1`
	var identity string
	if err := r.db.Pool.QueryRow(ctx, q, username).Scan(&identity); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false, nil
		}
		return "", false, err
	}
	return model.Identity(identity), true, nil
}

// Usernames returns claimed usernames in claim order, or ErrNoUsers
// when nothing was ever claimed.
func (r *Registry) Usernames(ctx context.Context) ([]string, error) {
	const q = `SELECT username FROM identities ORDER BY pos ASC`
	rows, err := r.db.Pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, errs.ErrNoUsers
	}
	return names, nil
}
