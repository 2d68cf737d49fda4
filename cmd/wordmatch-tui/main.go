// Command wordmatch-tui plays a matching round in the terminal.
//
// Click a word, then its translation in the other column. Keys: g grades,
// r restarts the round, n deals a new one, q quits.
package main

import (
	"flag"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordmatch/internal/config"
	"github.com/robalobadob/wordmatch/internal/daily"
	"github.com/robalobadob/wordmatch/internal/game"
	"github.com/robalobadob/wordmatch/internal/tui"
	"github.com/robalobadob/wordmatch/internal/words"
)

func main() {
	cfg := config.Load()
	size := flag.Int("n", cfg.RoundSize, "pairs per round (0 = all)")
	dailyMode := flag.Bool("daily", false, "play today's shared round")
	flag.Parse()

	// the screen owns stdout; log to stderr and only warnings up
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.WarnLevel)

	if err := words.Init(); err != nil {
		log.Fatal().Err(err).Msg("failed to load word pairs")
	}

	newGame := func() (*game.Game, error) {
		rng, mode := words.RandomSource(), game.ModeRandom
		if *dailyMode {
			rng = words.SeededSource(daily.Seed(time.Now(), cfg.DailySalt))
			mode = game.ModeDaily
		}
		round, err := words.NewRound(words.Pairs(), *size, rng)
		if err != nil {
			return nil, err
		}
		g, err := game.New(round, cfg.Layout, mode)
		if err != nil {
			return nil, err
		}
		g.Date = daily.DateKey(time.Now())
		return g, nil
	}

	g, err := newGame()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to deal a round")
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal().Err(err).Msg("no terminal")
	}
	if err := screen.Init(); err != nil {
		log.Fatal().Err(err).Msg("terminal init")
	}

	runErr := tui.NewApp(screen, g, newGame).Run()
	screen.Fini()
	if runErr != nil {
		log.Fatal().Err(runErr).Msg("tui exited")
	}
}
