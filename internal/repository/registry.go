package repository

import (
	"context"

	"github.com/okorolenko/chirp/internal/model"
)

// UsernameRegistry is the bijective identity↔username mapping. Both
// directions are written as one logical unit: a claim either binds the
// identity and marks the username taken, or does neither.
//
// Usernames are write-once. There is no release or rename.
type UsernameRegistry interface {
	// Claim binds username to identity. Precondition order is fixed:
	// empty username -> errs.ErrInvalidInput, username already claimed
	// -> errs.ErrUsernameTaken, identity already bound ->
	// errs.ErrAlreadyRegistered.
	Claim(ctx context.Context, identity model.Identity, username string) error

	// Resolve returns the username bound to identity, if any. This is
	// the read path for every authorization check.
	Resolve(ctx context.Context, identity model.Identity) (string, bool, error)

	// Lookup is the reverse index: the identity that claimed username.
	Lookup(ctx context.Context, username string) (model.Identity, bool, error)

	// Usernames returns all claimed usernames in claim order. An empty
	// registry yields errs.ErrNoUsers.
	Usernames(ctx context.Context) ([]string, error)
}
