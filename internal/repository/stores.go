// Package repository defines storage interfaces implemented by concrete backends.
package repository

import (
	"cmp"
	"context"

	"github.com/okorolenko/chirp/internal/model"
)

// Store is a durable ordered mapping from key to record. It carries no
// entity-specific logic; tweets and profiles are both instances of it.
//
// Put fully replaces any existing record, never merges fields.
type Store[K cmp.Ordered, V any] interface {
	// Get returns the record for key, reporting whether it exists.
	Get(ctx context.Context, key K) (V, bool, error)
	// Put inserts the record, replacing any prior value for key.
	Put(ctx context.Context, key K, value V) error
	// Delete removes and returns the prior record if present.
	Delete(ctx context.Context, key K) (V, bool, error)
	// All returns every entry in ascending key order.
	All(ctx context.Context) ([]Entry[K, V], error)
}

// Entry is one key/record pair from an ordered traversal.
type Entry[K cmp.Ordered, V any] struct {
	Key   K
	Value V
}

// Sequence issues strictly increasing identifiers, starting at 0. A
// value is never issued twice for the lifetime of the store, even for
// entities that were later deleted. Each entity class gets its own
// sequence.
type Sequence interface {
	Next(ctx context.Context) (uint64, error)
}

// TweetStore holds tweets keyed by their allocated ID.
type TweetStore = Store[uint64, model.Tweet]

// ProfileStore holds profiles keyed by the owning caller identity.
type ProfileStore = Store[model.Identity, model.Profile]
