package tui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordmatch/internal/game"
	"github.com/robalobadob/wordmatch/internal/match"
	"github.com/robalobadob/wordmatch/internal/words"
)

func simScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(100, 10)
	t.Cleanup(screen.Fini)
	return screen
}

func newGame(t *testing.T) *game.Game {
	t.Helper()
	m, err := match.NewWordMapping(match.Pair{Source: "cat", Target: "chat"}, match.Pair{Source: "dog", Target: "chien"})
	require.NoError(t, err)
	g, err := game.New(words.Round{Canonical: m, Display: m}, match.DefaultLayout(), game.ModeRandom)
	require.NoError(t, err)
	return g
}

func runeAt(s tcell.Screen, x, y int) rune {
	r, _, _, _ := s.GetContent(x, y)
	return r
}

func TestGridRoundTrip(t *testing.T) {
	g := FitGrid(match.DefaultLayout(), 100, RowsPerWord)
	assert.Equal(t, float64(10), g.CellW)

	x, y := g.Cell(match.Position{X: 200, Y: 50})
	assert.Equal(t, 20, x)
	assert.Equal(t, 3, y)

	p := g.Pixel(5, 1)
	assert.Equal(t, 55.0, p.X)
	cx, cy := g.Cell(p)
	assert.Equal(t, [2]int{5, 1}, [2]int{cx, cy})
}

func TestDrawBoxesAndWords(t *testing.T) {
	screen := simScreen(t)
	app := NewApp(screen, newGame(t), nil)
	require.NoError(t, app.Draw())

	assert.Equal(t, '│', runeAt(screen, 20, 0))
	assert.Equal(t, '│', runeAt(screen, 80, 5))
	assert.Equal(t, '─', runeAt(screen, 5, 3))
	// "cat" centred on column 10, row 1
	assert.Equal(t, 'c', runeAt(screen, 9, 1))
	assert.Equal(t, 'a', runeAt(screen, 10, 1))
}

func click(app *App, x, y int) {
	app.Handle(tcell.NewEventMouse(x, y, tcell.Button1, tcell.ModNone))
	app.Handle(tcell.NewEventMouse(x, y, tcell.ButtonNone, tcell.ModNone))
}

func TestMouseClicksPairWords(t *testing.T) {
	screen := simScreen(t)
	g := newGame(t)
	app := NewApp(screen, g, nil)

	click(app, 5, 1)  // cat
	click(app, 90, 1) // chat
	require.NoError(t, app.Draw())

	got, ok := g.Snapshot().Answer.Get("cat")
	require.True(t, ok)
	assert.Equal(t, "chat", got)
	assert.Equal(t, "paired", app.status)
	assert.Equal(t, '─', runeAt(screen, 50, 1))
}

func TestMouseRejectionShowsHint(t *testing.T) {
	screen := simScreen(t)
	app := NewApp(screen, newGame(t), nil)

	click(app, 5, 1)
	click(app, 5, 4)
	assert.Equal(t, match.OutcomeRejectedSameType.Hint(), app.status)
}

func TestKeys(t *testing.T) {
	screen := simScreen(t)
	g := newGame(t)
	var calls int
	app := NewApp(screen, g, func() (*game.Game, error) {
		calls++
		return newGame(t), nil
	})

	click(app, 5, 1)
	click(app, 90, 1)
	assert.False(t, app.Handle(tcell.NewEventKey(tcell.KeyRune, 'g', tcell.ModNone)))
	assert.Equal(t, "score: 50% (1/2)", app.status)

	app.Handle(tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone))
	assert.Empty(t, g.Snapshot().Lines)

	app.Handle(tcell.NewEventKey(tcell.KeyRune, 'n', tcell.ModNone))
	assert.Equal(t, 1, calls)
	assert.NotSame(t, g, app.game)

	assert.True(t, app.Handle(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)))
	assert.True(t, app.Handle(nil))
}
