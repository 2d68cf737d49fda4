// internal/game/types.go
//
// Core type definitions for a matching game.
// Defines:
//   - Mode: how the round's words were chosen (random or daily).
//   - PointerKind: the host pointer events the surface understands.
//   - Game: one round plus its matching surface.
//   - View: the JSON snapshot handed to clients.

package game

import (
	"sync"
	"time"

	"github.com/robalobadob/wordmatch/internal/match"
	"github.com/robalobadob/wordmatch/internal/words"
)

// Mode selects how words are picked for a new game.
type Mode string

const (
	ModeRandom Mode = "random"
	ModeDaily  Mode = "daily"
)

// PointerKind is a pointer event type from the host.
type PointerKind string

const (
	PointerMove PointerKind = "move"
	PointerDown PointerKind = "down"
	PointerUp   PointerKind = "up"
)

// Game holds one matching round. All methods are safe for concurrent use;
// events are serialised onto the single-threaded surface.
type Game struct {
	mu sync.Mutex

	ID        string
	Learner   string // owner; only they may play or grade the round
	Mode      Mode
	Date      string // daily key (YYYY-MM-DD) the round was built for
	CreatedAt time.Time

	round   words.Round
	surface *match.Surface
	graded  *match.Score
}

// View is a read-only snapshot of a game for clients.
type View struct {
	ID       string            `json:"gameId"`
	Mode     Mode              `json:"mode"`
	Layout   match.Layout      `json:"layout"`
	Height   float64           `json:"height"`
	Mapping  match.WordMapping `json:"mapping"`
	Answer   match.WordMapping `json:"answer"`
	Lines    []match.Line      `json:"lines"`
	State    string            `json:"state"` // idle | drawing
	Pending  *match.Selection  `json:"pending,omitempty"`
	LiveLine *match.Line       `json:"liveLine,omitempty"`
	Score    *match.Score      `json:"score,omitempty"`
}
