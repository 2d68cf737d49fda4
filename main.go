// main.go
//
// Entry point for the wordmatch HTTP server.
// Loads configuration (.env + environment), the word list, the results
// database, then serves the game API until the process exits.

package main

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordmatch/internal/config"
	"github.com/robalobadob/wordmatch/internal/httpserver"
	"github.com/robalobadob/wordmatch/internal/results"
	"github.com/robalobadob/wordmatch/internal/store"
	"github.com/robalobadob/wordmatch/internal/words"
)

const (
	pruneEvery = 10 * time.Minute
	gameTTL    = 24 * time.Hour
)

func main() {
	cfg := config.Load()
	zerolog.SetGlobalLevel(cfg.LogLevel)

	if err := cfg.Layout.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid surface layout")
	}
	if err := words.Init(); err != nil {
		log.Fatal().Err(err).Msg("failed to load word pairs")
	}
	log.Info().Int("pairs", words.Stats()).Msg("word pairs loaded")

	rs, err := results.Open(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Str("db", cfg.DBPath).Msg("failed to open results db")
	}
	defer rs.Close()

	srv := httpserver.New(cfg, store.NewMemoryStore(), rs)
	go prune(srv)

	log.Info().Str("port", cfg.Port).Msg("starting wordmatch server")
	if err := srv.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

// prune drops abandoned games so memory stays bounded.
func prune(srv *httpserver.Server) {
	t := time.NewTicker(pruneEvery)
	defer t.Stop()
	for range t.C {
		n, err := srv.PruneGames(context.Background(), gameTTL)
		if err != nil {
			log.Warn().Err(err).Msg("prune games")
			continue
		}
		if n > 0 {
			log.Debug().Int("games", n).Msg("pruned games")
		}
	}
}
