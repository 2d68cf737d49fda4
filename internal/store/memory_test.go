package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordmatch/internal/game"
	"github.com/robalobadob/wordmatch/internal/match"
	"github.com/robalobadob/wordmatch/internal/words"
)

func newGame(t *testing.T) *game.Game {
	t.Helper()
	m, err := match.NewWordMapping(match.Pair{Source: "cat", Target: "chat"})
	require.NoError(t, err)
	g, err := game.New(words.Round{Canonical: m, Display: m}, match.DefaultLayout(), game.ModeRandom)
	require.NoError(t, err)
	return g
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	g := newGame(t)

	_, err := s.Get(ctx, g.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Save(ctx, g))
	got, err := s.Get(ctx, g.ID)
	require.NoError(t, err)
	assert.Same(t, g, got)

	require.NoError(t, s.Delete(ctx, g.ID))
	_, err = s.Get(ctx, g.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, s.Delete(ctx, "missing"))
}

func TestPrune(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	old, fresh := newGame(t), newGame(t)
	old.CreatedAt = time.Now().Add(-2 * time.Hour)
	require.NoError(t, s.Save(ctx, old))
	require.NoError(t, s.Save(ctx, fresh))

	n, err := s.Prune(ctx, time.Now().Add(-time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = s.Get(ctx, old.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.Get(ctx, fresh.ID)
	assert.NoError(t, err)
}
