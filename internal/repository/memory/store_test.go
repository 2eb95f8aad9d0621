package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/okorolenko/chirp/internal/model"
	"github.com/okorolenko/chirp/internal/repository"
)

var (
	_ repository.TweetStore   = (*Map[uint64, model.Tweet])(nil)
	_ repository.ProfileStore = (*Map[model.Identity, model.Profile])(nil)
	_ repository.Sequence     = (*Sequence)(nil)
)

func TestMap_GetPutDelete(t *testing.T) {
	ctx := context.Background()
	m := NewMap[uint64, model.Tweet]()

	_, ok, err := m.Get(ctx, 7)
	require.NoError(t, err)
	require.False(t, ok)

	tw := model.Tweet{ID: 7, Author: "alice", Content: "hi"}
	require.NoError(t, m.Put(ctx, 7, tw))

	got, ok, err := m.Get(ctx, 7)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, tw, got)

	// Put replaces the whole record, never merges.
	require.NoError(t, m.Put(ctx, 7, model.Tweet{ID: 7, Author: "alice", Content: "bye"}))
	got, _, err = m.Get(ctx, 7)
	require.NoError(t, err)
	require.Equal(t, "bye", got.Content)

	prior, ok, err := m.Delete(ctx, 7)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "bye", prior.Content)

	_, ok, err = m.Delete(ctx, 7)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestMap_AllAscending(t *testing.T) {
	ctx := context.Background()
	m := NewMap[uint64, string]()
	for _, k := range []uint64{5, 1, 9, 3} {
		require.NoError(t, m.Put(ctx, k, "v"))
	}
	entries, err := m.All(ctx)
	require.NoError(t, err)
	keys := make([]uint64, 0, len(entries))
	for _, e := range entries {
		keys = append(keys, e.Key)
	}
	require.Equal(t, []uint64{1, 3, 5, 9}, keys)
}

func TestSequence_StartsAtZeroAndNeverRepeats(t *testing.T) {
	ctx := context.Background()
	s := NewSequence()
	for want := uint64(0); want < 5; want++ {
		got, err := s.Next(ctx)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
}
