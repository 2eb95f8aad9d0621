package cli

import (
	"context"

	"go.uber.org/zap"

	"github.com/okorolenko/chirp/internal/clock"
	"github.com/okorolenko/chirp/internal/config"
	"github.com/okorolenko/chirp/internal/migrate"
	"github.com/okorolenko/chirp/internal/model"
	"github.com/okorolenko/chirp/internal/repository"
	"github.com/okorolenko/chirp/internal/repository/memory"
	"github.com/okorolenko/chirp/internal/repository/postgres"
	"github.com/okorolenko/chirp/internal/service"
)

// app wires stores and services for one command invocation.
type app struct {
	log      *zap.Logger
	caller   model.Identity
	registry repository.UsernameRegistry
	tweets   service.TweetService
	profiles service.ProfileService
	closeFn  func()
}

// newApp resolves configuration, opens the backend and constructs the
// services. Migrations run before the pool opens, mirroring server
// startup order.
func newApp(ctx context.Context, opts *RootOptions) (*app, error) {
	cfgPath := opts.Config
	if cfgPath == "" {
		cfgPath = config.DefaultPath()
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}
	if opts.DSN != "" {
		cfg.DSN = opts.DSN
	}
	if opts.Identity != "" {
		cfg.Identity = opts.Identity
	}
	if cfg.Identity == "" {
		if err := config.EnsureIdentity(cfgPath, cfg); err != nil {
			return nil, err
		}
	}

	log := zap.NewNop()
	if opts.Verbose {
		if log, err = zap.NewDevelopment(); err != nil {
			return nil, err
		}
	}

	a := &app{log: log, caller: model.Identity(cfg.Identity), closeFn: func() {}}

	if cfg.DSN == "memory" {
		// Non-persistent mode: every invocation starts from an empty
		// ledger. Useful for trying commands out, nothing else.
		reg := memory.NewRegistry()
		a.registry = reg
		a.tweets = service.NewTweetService(
			memory.NewMap[uint64, model.Tweet](), memory.NewSequence(), reg, clock.System{}, log)
		a.profiles = service.NewProfileService(
			memory.NewMap[model.Identity, model.Profile](), reg, log)
		return a, nil
	}

	if err := migrate.Up(ctx, cfg.DSN); err != nil {
		return nil, err
	}
	db, err := postgres.New(ctx, cfg.DSN)
	if err != nil {
		return nil, err
	}
	reg := postgres.NewRegistry(db, postgres.NewSequence(db, "users"))
	a.registry = reg
	a.tweets = service.NewTweetService(
		postgres.NewTweetTable(db), postgres.NewSequence(db, "tweets"), reg, clock.System{}, log)
	a.profiles = service.NewProfileService(postgres.NewProfileTable(db), reg, log)
	a.closeFn = db.Close
	return a, nil
}

// Close releases the backend and flushes logs.
func (a *app) Close() {
	_ = a.log.Sync()
	a.closeFn()
}
