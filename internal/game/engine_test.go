package game

import (
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordmatch/internal/match"
	"github.com/robalobadob/wordmatch/internal/words"
)

// fixedRound shows cat/dog with their targets swapped.
func fixedRound(t *testing.T) words.Round {
	t.Helper()
	canonical, err := match.NewWordMapping(match.Pair{Source: "cat", Target: "chat"}, match.Pair{Source: "dog", Target: "chien"})
	require.NoError(t, err)
	display, err := match.NewWordMapping(match.Pair{Source: "cat", Target: "chien"}, match.Pair{Source: "dog", Target: "chat"})
	require.NoError(t, err)
	return words.Round{Canonical: canonical, Display: display}
}

func newGame(t *testing.T) *Game {
	t.Helper()
	g, err := New(fixedRound(t), match.DefaultLayout(), "")
	require.NoError(t, err)
	return g
}

func TestNewGame(t *testing.T) {
	g := newGame(t)
	assert.Len(t, g.ID, 16)
	assert.Equal(t, ModeRandom, g.Mode)

	v := g.Snapshot()
	assert.Equal(t, "idle", v.State)
	assert.Equal(t, float64(100), v.Height)
	assert.Nil(t, v.Score)
}

func TestPlayAndGrade(t *testing.T) {
	g := newGame(t)

	o, err := g.Pointer(PointerUp, 10, 10) // cat
	require.NoError(t, err)
	assert.Equal(t, match.OutcomeStarted, o)

	_, err = g.Pointer(PointerMove, 400, 60)
	require.NoError(t, err)
	v := g.Snapshot()
	assert.Equal(t, "drawing", v.State)
	require.NotNil(t, v.LiveLine)
	assert.Equal(t, match.Position{X: 400, Y: 60}, v.LiveLine.End)

	o, err = g.Pointer(PointerUp, 900, 60) // chat (row 1 of display)
	require.NoError(t, err)
	assert.Equal(t, match.OutcomeCommitted, o)

	sc, answer := g.Grade()
	assert.Equal(t, match.Score{Correct: 1, Total: 2, Percent: 50}, sc)
	got, ok := answer.Get("cat")
	require.True(t, ok)
	assert.Equal(t, "chat", got)
	_, ok = answer.Get("dog")
	assert.False(t, ok)

	_, _ = g.Pointer(PointerDown, 10, 60)  // dog
	_, _ = g.Pointer(PointerDown, 900, 10) // chien
	sc, _ = g.Grade()
	assert.Equal(t, 100, sc.Percent)
	require.NotNil(t, g.Snapshot().Score)
}

func TestRestartClearsAnswer(t *testing.T) {
	g := newGame(t)
	_, _ = g.Pointer(PointerUp, 10, 10)
	_, _ = g.Pointer(PointerUp, 900, 60)
	g.Grade()

	require.NoError(t, g.Restart())
	v := g.Snapshot()
	assert.Empty(t, v.Lines)
	assert.Nil(t, v.Score)
	b, err := json.Marshal(v.Answer)
	require.NoError(t, err)
	assert.JSONEq(t, `{"cat":null,"dog":null}`, string(b))
}

func TestPointerErrors(t *testing.T) {
	g := newGame(t)
	_, err := g.Pointer("click", 1, 1)
	assert.ErrorIs(t, err, ErrUnknownPointer)

	_, err = g.Pointer(PointerUp, 10, 500)
	assert.ErrorIs(t, err, match.ErrWordIndexOutOfBound)
}

func TestSnapshotHidesCanonical(t *testing.T) {
	g := newGame(t)
	b, err := json.Marshal(g.Snapshot())
	require.NoError(t, err)
	assert.Contains(t, string(b), `"mapping":{"cat":"chien","dog":"chat"}`)
}

func TestConcurrentEventsAreSerialised(t *testing.T) {
	g := newGame(t)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _ = g.Pointer(PointerMove, float64(i), float64(i))
			_, _ = g.Pointer(PointerUp, 10, float64(i%100))
			_ = g.Snapshot()
		}(i)
	}
	wg.Wait()
	assert.LessOrEqual(t, len(g.Snapshot().Lines), 2)
}
