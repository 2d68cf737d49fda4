// internal/game/engine.go
//
// Game engine for a single matching round.
// Responsibilities:
//   - Create games from a words.Round and a surface layout.
//   - Route host pointer events onto the matching surface.
//   - Restart the round (same words, empty answer) and grade it.
//
// Notes:
//   - The canonical mapping never leaves this package except through Grade.
//   - randomID() is a compact hex identifier for correlating server state.
package game

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/robalobadob/wordmatch/internal/match"
	"github.com/robalobadob/wordmatch/internal/words"
)

// ErrUnknownPointer is returned for an unrecognised pointer kind.
var ErrUnknownPointer = errors.New("unknown pointer event")

// New constructs a game showing round.Display on a surface with layout.
func New(round words.Round, layout match.Layout, mode Mode) (*Game, error) {
	s, err := match.NewSurface(layout, round.Display)
	if err != nil {
		return nil, fmt.Errorf("new surface: %w", err)
	}
	if mode == "" {
		mode = ModeRandom
	}
	return &Game{
		ID:        randomID(),
		Mode:      mode,
		CreatedAt: time.Now().UTC(),
		round:     round,
		surface:   s,
	}, nil
}

// Pointer applies one pointer event. Moves report OutcomeIgnored; the view
// changes only while a line is being drawn.
func (g *Game) Pointer(kind PointerKind, x, y float64) (match.Outcome, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	switch kind {
	case PointerMove:
		g.surface.PointerMove(x, y)
		return match.OutcomeIgnored, nil
	case PointerDown:
		return g.surface.PointerDown(x, y)
	case PointerUp:
		return g.surface.PointerUp(x, y)
	}
	return match.OutcomeIgnored, fmt.Errorf("%w: %q", ErrUnknownPointer, kind)
}

// Restart resets the surface onto the same display mapping.
func (g *Game) Restart() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.graded = nil
	return g.surface.Reset(g.round.Display)
}

// Grade scores the current answer against the canonical translations and
// returns the answer it scored. Grading again after more pairings
// recomputes the score.
func (g *Game) Grade() (match.Score, match.WordMapping) {
	g.mu.Lock()
	defer g.mu.Unlock()
	answer := g.surface.Answer()
	sc := match.Grade(g.round.Canonical, answer)
	g.graded = &sc
	return sc, answer
}

// Render draws the surface onto c.
func (g *Game) Render(c match.Canvas) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.surface.Render(c)
}

// Layout returns the surface geometry.
func (g *Game) Layout() match.Layout {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.surface.Layout()
}

// Size returns the surface width and height in pixels.
func (g *Game) Size() (float64, float64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.surface.Layout().Width, g.surface.Height()
}

// Snapshot returns the current view.
func (g *Game) Snapshot() View {
	g.mu.Lock()
	defer g.mu.Unlock()

	v := View{
		ID:      g.ID,
		Mode:    g.Mode,
		Layout:  g.surface.Layout(),
		Height:  g.surface.Height(),
		Mapping: g.surface.Mapping(),
		Answer:  g.surface.Answer(),
		Lines:   g.surface.Lines(),
		State:   "idle",
	}
	if p, ok := g.surface.Pending(); ok {
		v.State = "drawing"
		v.Pending = &p
	}
	if l, ok := g.surface.LiveLine(); ok {
		v.LiveLine = &l
	}
	if g.graded != nil {
		sc := *g.graded
		v.Score = &sc
	}
	return v
}

// randomID returns a compact 16‑hex‑char identifier.
// Collisions are extremely unlikely given crypto/rand entropy.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
