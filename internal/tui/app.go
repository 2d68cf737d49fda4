package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordmatch/internal/game"
	"github.com/robalobadob/wordmatch/internal/match"
)

// RowsPerWord is how many terminal rows one word row occupies.
const RowsPerWord = 3

// App runs one game in a terminal. Left click picks and connects words,
// g grades, r restarts the round, n asks NewGame for another round, q quits.
type App struct {
	screen  tcell.Screen
	game    *game.Game
	newGame func() (*game.Game, error)
	status  string
	held    bool
}

// NewApp wires screen to g. newGame may be nil to disable 'n'.
func NewApp(screen tcell.Screen, g *game.Game, newGame func() (*game.Game, error)) *App {
	return &App{screen: screen, game: g, newGame: newGame, status: "click a word, then its translation"}
}

func (a *App) grid() Grid {
	w, _ := a.screen.Size()
	return FitGrid(a.game.Layout(), w, RowsPerWord)
}

// Draw renders the game plus a status line below the surface.
func (a *App) Draw() error {
	grid := a.grid()
	if err := a.game.Render(NewCanvas(a.screen, grid)); err != nil {
		return err
	}
	_, h := a.game.Size()
	_, y := grid.Cell(match.Position{Y: h})
	for i, r := range []rune(a.status) {
		a.screen.SetContent(i, y+1, r, nil, tcell.StyleDefault.Dim(true))
	}
	a.screen.Show()
	return nil
}

// Handle applies one tcell event and reports whether the app should quit.
func (a *App) Handle(ev tcell.Event) (quit bool) {
	if ev == nil {
		// screen finalised
		return true
	}
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.key(ev)
	case *tcell.EventMouse:
		a.mouse(ev)
	case *tcell.EventResize:
		a.screen.Sync()
	}
	return false
}

func (a *App) key(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
		return true
	}
	switch ev.Rune() {
	case 'q':
		return true
	case 'g':
		sc, _ := a.game.Grade()
		a.status = fmt.Sprintf("score: %d%% (%d/%d)", sc.Percent, sc.Correct, sc.Total)
	case 'r':
		if err := a.game.Restart(); err != nil {
			a.status = err.Error()
		} else {
			a.status = "round restarted"
		}
	case 'n':
		if a.newGame == nil {
			break
		}
		g, err := a.newGame()
		if err != nil {
			a.status = err.Error()
			break
		}
		a.game = g
		a.status = "new round"
	}
	return false
}

// mouse turns button transitions into pointer events: a release of the
// primary button is a pointer-up, everything else is a move.
func (a *App) mouse(ev *tcell.EventMouse) {
	cx, cy := ev.Position()
	p := a.grid().Pixel(cx, cy)
	pressed := ev.Buttons()&tcell.Button1 != 0

	kind := game.PointerMove
	if a.held && !pressed {
		kind = game.PointerUp
	}
	a.held = pressed

	o, err := a.game.Pointer(kind, p.X, p.Y)
	switch {
	case err != nil:
		log.Debug().Err(err).Float64("x", p.X).Float64("y", p.Y).Msg("pointer aborted")
	case o.Rejected():
		a.status = o.Hint()
	case o == match.OutcomeCommitted:
		a.status = "paired"
	}
}

// Run draws and processes events until quit.
func (a *App) Run() error {
	a.screen.EnableMouse(tcell.MouseMotionEvents)
	for {
		if err := a.Draw(); err != nil {
			return err
		}
		if a.Handle(a.screen.PollEvent()) {
			return nil
		}
	}
}
