package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/okorolenko/chirp/internal/errs"
	"github.com/okorolenko/chirp/internal/model"
	"github.com/okorolenko/chirp/internal/repository"
)

// ProfileService maintains the optional per-identity profile. A
// profile can only exist for an identity that already claimed a
// username.
type ProfileService interface {
	// Update upserts the caller's profile (full replace, not merge).
	Update(ctx context.Context, caller model.Identity, profile model.Profile) error
	// Get returns the profile behind a username. An unknown username
	// or an identity without a profile yields absence, not an error.
	Get(ctx context.Context, username string) (*model.Profile, bool, error)
}

type ProfileServiceImpl struct {
	profiles repository.ProfileStore
	registry repository.UsernameRegistry
	log      *zap.Logger
}

// NewProfileService constructs ProfileService with required dependencies.
func NewProfileService(profiles repository.ProfileStore, registry repository.UsernameRegistry, log *zap.Logger) *ProfileServiceImpl {
	if log == nil {
		log = zap.NewNop()
	}
	return &ProfileServiceImpl{profiles: profiles, registry: registry, log: log}
}

// Update upserts the whole profile record keyed by the caller
// identity. The username field is forced to the registered one.
func (s *ProfileServiceImpl) Update(ctx context.Context, caller model.Identity, profile model.Profile) error {
	username, ok, err := s.registry.Resolve(ctx, caller)
	if err != nil {
		return err
	}
	if !ok {
		return errs.ErrUnauthorized
	}
	profile.Username = username
	if err := s.profiles.Put(ctx, caller, profile); err != nil {
		return err
	}
	s.log.Info("profile updated", zap.String("username", username))
	return nil
}

// Get resolves username to its owning identity and returns that
// identity's profile, if one was ever set.
func (s *ProfileServiceImpl) Get(ctx context.Context, username string) (*model.Profile, bool, error) {
	identity, ok, err := s.registry.Lookup(ctx, username)
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return nil, false, nil
	}
	profile, ok, err := s.profiles.Get(ctx, identity)
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return nil, false, nil
	}
	return &profile, true, nil
}
