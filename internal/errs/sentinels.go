// Package errs contains sentinel errors used across layers for stable error mapping.
package errs

import "errors"

// Common sentinels across repo/service layers. All of them are
// caller-correctable conditions; none should terminate the process.
var (
	// ErrInvalidInput indicates a required field was empty.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrUnauthorized indicates the caller is not registered or does not own the resource.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrUsernameTaken indicates the username was already claimed by some identity.
	ErrUsernameTaken = errors.New("username already taken")

	// ErrAlreadyRegistered indicates the identity already claimed a username.
	ErrAlreadyRegistered = errors.New("identity already registered")

	// ErrNoUsers indicates an enumeration over an empty registry.
	ErrNoUsers = errors.New("no registered users")
)
