// Package service contains application services for tweets and profiles.
package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/okorolenko/chirp/internal/clock"
	"github.com/okorolenko/chirp/internal/errs"
	"github.com/okorolenko/chirp/internal/model"
	"github.com/okorolenko/chirp/internal/repository"
)

// TweetService defines the ledger operations over tweets.
//
// Ownership is checked against the Author string stored on the tweet
// at creation time, not against a re-resolved current owner. Usernames
// are immutable once claimed, so the two coincide in practice; the
// stored-string rule is the contract.
type TweetService interface {
	// Create stores a new tweet authored by the caller's username.
	Create(ctx context.Context, caller model.Identity, content string) (*model.Tweet, error)
	// Get returns a tweet by ID.
	Get(ctx context.Context, id uint64) (*model.Tweet, error)
	// Update replaces the content of a tweet owned by the caller.
	Update(ctx context.Context, caller model.Identity, id uint64, content string) (*model.Tweet, error)
	// Delete removes a tweet owned by the caller and returns it.
	Delete(ctx context.Context, caller model.Identity, id uint64) (*model.Tweet, error)
	// Comment appends a comment by any registered caller.
	Comment(ctx context.Context, caller model.Identity, id uint64, content string) (*model.Tweet, error)
	// List returns all tweets in ascending ID order.
	List(ctx context.Context) ([]model.Tweet, error)
	// Authors enumerates everyone who ever registered.
	Authors(ctx context.Context) ([]string, error)
}

type TweetServiceImpl struct {
	tweets   repository.TweetStore
	ids      repository.Sequence
	registry repository.UsernameRegistry
	clock    clock.Clock
	log      *zap.Logger
}

// NewTweetService constructs TweetService with required dependencies.
func NewTweetService(
	tweets repository.TweetStore,
	ids repository.Sequence,
	registry repository.UsernameRegistry,
	clk clock.Clock,
	log *zap.Logger,
) *TweetServiceImpl {
	if log == nil {
		log = zap.NewNop()
	}
	return &TweetServiceImpl{tweets: tweets, ids: ids, registry: registry, clock: clk, log: log}
}

// Create validates content, requires a registered caller, allocates an
// ID and stores the tweet. The author username is snapshotted now.
func (s *TweetServiceImpl) Create(ctx context.Context, caller model.Identity, content string) (*model.Tweet, error) {
	if content == "" {
		return nil, errs.ErrInvalidInput
	}
	username, ok, err := s.registry.Resolve(ctx, caller)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errs.ErrUnauthorized
	}

	id, err := s.ids.Next(ctx)
	if err != nil {
		return nil, err
	}
	tweet := model.Tweet{
		ID:        id,
		Author:    username,
		Content:   content,
		CreatedAt: s.clock.Now(),
	}
	if err := s.tweets.Put(ctx, id, tweet); err != nil {
		return nil, err
	}
	s.log.Info("tweet created", zap.Uint64("id", id), zap.String("author", username))
	return &tweet, nil
}

// Get returns a tweet by ID.
func (s *TweetServiceImpl) Get(ctx context.Context, id uint64) (*model.Tweet, error) {
	tweet, ok, err := s.tweets.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errs.ErrNotFound
	}
	return &tweet, nil
}

// Update replaces content only; ID, author and creation time stay as
// stored. A failed check leaves the store untouched.
func (s *TweetServiceImpl) Update(ctx context.Context, caller model.Identity, id uint64, content string) (*model.Tweet, error) {
	username, registered, err := s.registry.Resolve(ctx, caller)
	if err != nil {
		return nil, err
	}
	tweet, ok, err := s.tweets.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errs.ErrNotFound
	}
	if !registered || tweet.Author != username {
		return nil, errs.ErrUnauthorized
	}

	tweet.Content = content
	if err := s.tweets.Put(ctx, id, tweet); err != nil {
		return nil, err
	}
	s.log.Info("tweet updated", zap.Uint64("id", id))
	return &tweet, nil
}

// Delete checks ownership before removal, so an unauthorized call
// never mutates the store. Returns the pre-deletion tweet.
func (s *TweetServiceImpl) Delete(ctx context.Context, caller model.Identity, id uint64) (*model.Tweet, error) {
	username, registered, err := s.registry.Resolve(ctx, caller)
	if err != nil {
		return nil, err
	}
	tweet, ok, err := s.tweets.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errs.ErrNotFound
	}
	if !registered || tweet.Author != username {
		return nil, errs.ErrUnauthorized
	}

	prior, _, err := s.tweets.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	s.log.Info("tweet deleted", zap.Uint64("id", id))
	return &prior, nil
}

// Comment appends one comment. Any registered caller may comment on
// any tweet; comments are append-only.
func (s *TweetServiceImpl) Comment(ctx context.Context, caller model.Identity, id uint64, content string) (*model.Tweet, error) {
	if content == "" {
		return nil, errs.ErrInvalidInput
	}
	username, ok, err := s.registry.Resolve(ctx, caller)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errs.ErrUnauthorized
	}
	tweet, found, err := s.tweets.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, errs.ErrNotFound
	}

	tweet.Comments = append(tweet.Comments, model.Comment{
		Username:  username,
		Content:   content,
		CreatedAt: s.clock.Now(),
	})
	if err := s.tweets.Put(ctx, id, tweet); err != nil {
		return nil, err
	}
	return &tweet, nil
}

// List returns all tweets in ascending ID order.
func (s *TweetServiceImpl) List(ctx context.Context) ([]model.Tweet, error) {
	entries, err := s.tweets.All(ctx)
	if err != nil {
		return nil, err
	}
	tweets := make([]model.Tweet, 0, len(entries))
	for _, e := range entries {
		tweets = append(tweets, e.Value)
	}
	return tweets, nil
}

// Authors delegates to the registry enumeration: everyone who ever
// registered, in claim order.
func (s *TweetServiceImpl) Authors(ctx context.Context) ([]string, error) {
	return s.registry.Usernames(ctx)
}
