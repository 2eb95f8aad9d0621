package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"

	"github.com/okorolenko/chirp/internal/errs"
	"github.com/okorolenko/chirp/internal/model"
)

// ledgerSnapshot is the serialized end state of a scenario run. With a
// manual clock and memory stores the bytes are fully deterministic, so
// the snapshot is pinned with a golden file.
type ledgerSnapshot struct {
	Usernames []string       `json:"usernames"`
	Tweets    []model.Tweet  `json:"tweets"`
	Profile   *model.Profile `json:"profile,omitempty"`
}

// TestLedgerScenario_Golden walks the full claim/tweet/comment/profile
// flow with two identities and pins the resulting ledger state.
//
// Regenerate with: go test ./internal/service -update
func TestLedgerScenario_Golden(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	a, b := model.Identity("id-a"), model.Identity("id-b")

	require.NoError(t, e.registry.Claim(ctx, a, "alice"))
	require.ErrorIs(t, e.registry.Claim(ctx, b, "alice"), errs.ErrUsernameTaken)
	require.NoError(t, e.registry.Claim(ctx, b, "bob"))

	created, err := e.svc.Create(ctx, a, "hello")
	require.NoError(t, err)
	require.Equal(t, uint64(0), created.ID)

	_, err = e.svc.Update(ctx, b, created.ID, "x")
	require.ErrorIs(t, err, errs.ErrUnauthorized)

	_, err = e.svc.Update(ctx, a, created.ID, "bye")
	require.NoError(t, err)

	_, err = e.svc.Comment(ctx, b, created.ID, "nice")
	require.NoError(t, err)

	require.NoError(t, e.prof.Update(ctx, a, model.Profile{
		Password: "secret",
		Bio:      "just alice",
	}))

	usernames, err := e.registry.Usernames(ctx)
	require.NoError(t, err)
	tweets, err := e.svc.List(ctx)
	require.NoError(t, err)
	profile, ok, err := e.prof.Get(ctx, "alice")
	require.NoError(t, err)
	require.True(t, ok)

	data, err := json.MarshalIndent(ledgerSnapshot{
		Usernames: usernames,
		Tweets:    tweets,
		Profile:   profile,
	}, "", "  ")
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "ledger_scenario", data)
}
