package memory

import (
	"context"
	"sync"

	"github.com/okorolenko/chirp/internal/errs"
	"github.com/okorolenko/chirp/internal/model"
)

// Registry is the in-memory identity↔username mapping. One struct owns
// both directions plus the claim-order list, so a claim is a single
// critical section and the paired write cannot half-apply.
type Registry struct {
	mu         sync.Mutex
	byIdentity map[model.Identity]string
	byUsername map[string]model.Identity
	order      []string
}

// NewRegistry constructs an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byIdentity: make(map[model.Identity]string),
		byUsername: make(map[string]model.Identity),
	}
}

// Claim binds username to identity, checking preconditions in the
// fixed order: non-empty, username unclaimed, identity unbound.
func (r *Registry) Claim(_ context.Context, identity model.Identity, username string) error {
	if username == "" {
		return errs.ErrInvalidInput
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, taken := r.byUsername[username]; taken {
		return errs.ErrUsernameTaken
	}
	if _, bound := r.byIdentity[identity]; bound {
		return errs.ErrAlreadyRegistered
	}
	r.byIdentity[identity] = username
	r.byUsername[username] = identity
	r.order = append(r.order, username)
	return nil
}

// Resolve returns the username bound to identity, if any.
func (r *Registry) Resolve(_ context.Context, identity model.Identity) (string, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byIdentity[identity]
	return u, ok, nil
}

// Lookup returns the identity that claimed username, if any.
func (r *Registry) Lookup(_ context.Context, username string) (model.Identity, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id, ok := r.byUsername[username]
	return id, ok, nil
}

// Usernames returns claimed usernames in claim order, or ErrNoUsers
// when nothing was ever claimed.
func (r *Registry) Usernames(_ context.Context) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.order) == 0 {
		return nil, errs.ErrNoUsers
	}
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out, nil
}
