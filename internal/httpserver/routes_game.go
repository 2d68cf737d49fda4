// internal/httpserver/routes_game.go
//
// HTTP routes for matching rounds.
//   - POST /game/new           → start a random or daily round
//   - GET  /game/{id}          → current view
//   - POST /game/{id}/pointer  → apply one pointer event (move | down | up)
//   - POST /game/{id}/reset    → clear all pairings, same words
//   - POST /game/{id}/grade    → score the answer, record it for the learner
//   - GET  /game/{id}/canvas.png → server-side rendering of the surface
//
// A learner gets one daily round per date: asking again returns the same game
// while it is still in memory.

package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordmatch/internal/daily"
	"github.com/robalobadob/wordmatch/internal/game"
	"github.com/robalobadob/wordmatch/internal/match"
	"github.com/robalobadob/wordmatch/internal/render"
	"github.com/robalobadob/wordmatch/internal/results"
	"github.com/robalobadob/wordmatch/internal/store"
	"github.com/robalobadob/wordmatch/internal/words"
)

// dailyGames maps learnerID|date to the learner's daily game ID.
type dailyGames struct {
	mu  sync.Mutex
	ids map[string]string
}

func (d *dailyGames) get(key string) (string, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	id, ok := d.ids[key]
	return id, ok
}

func (d *dailyGames) put(key, id string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.ids[key] = id
}

// mountGame registers all /game routes.
func (s *Server) mountGame(r chi.Router) {
	r.Route("/game", func(r chi.Router) {
		r.Get("/{id}/ws", s.withGame(s.handleStream))

		r.Group(func(r chi.Router) {
			r.Use(chimw.Timeout(requestTimeout))
			r.Post("/new", s.handleNewGame)
			r.Get("/{id}", s.withGame(s.handleGetGame))
			r.Post("/{id}/pointer", s.withGame(s.handlePointer))
			r.Post("/{id}/reset", s.withGame(s.handleReset))
			r.Post("/{id}/grade", s.withGame(s.handleGrade))
			r.Get("/{id}/canvas.png", s.withGame(s.handleCanvas))
		})
	})
}

// -----------------------------------------------------------------------------
// /game/new

// newGameReq is the optional request body for /game/new.
type newGameReq struct {
	Size int       `json:"size" validate:"gte=0,lte=200"`
	Mode game.Mode `json:"mode" validate:"omitempty,oneof=random daily"`
}

// handleNewGame builds a round from the word list and stores a new game.
// An empty body starts a random round of the configured size.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var p newGameReq
	if err := decodeOptional(r.Body, &p); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request")
		return
	}
	if err := s.validate.Struct(p); err != nil {
		writeError(w, http.StatusBadRequest, "invalid")
		return
	}
	if p.Mode == "" {
		p.Mode = game.ModeRandom
	}
	if p.Size == 0 {
		p.Size = s.cfg.RoundSize
	}

	learner := s.ensureLearner(w, r)
	now := s.now().UTC()
	date := daily.DateKey(now)

	// Reuse today's daily game while it is still held.
	key := learner + "|" + date
	if p.Mode == game.ModeDaily {
		if id, ok := s.daily.get(key); ok {
			if g, err := s.store.Get(r.Context(), id); err == nil {
				writeJSON(w, http.StatusOK, g.Snapshot())
				return
			}
		}
	}

	rng := words.RandomSource()
	if p.Mode == game.ModeDaily {
		rng = words.SeededSource(daily.Seed(now, s.cfg.DailySalt))
	}
	round, err := words.NewRound(s.pairs(), p.Size, rng)
	if err != nil {
		log.Error().Err(err).Msg("build round")
		writeError(w, http.StatusServiceUnavailable, "no_words")
		return
	}
	g, err := game.New(round, s.cfg.Layout, p.Mode)
	if err != nil {
		log.Error().Err(err).Msg("new game")
		writeError(w, http.StatusInternalServerError, "server_error")
		return
	}
	g.Date = date
	g.Learner = learner

	if err := s.store.Save(r.Context(), g); err != nil {
		writeError(w, http.StatusInternalServerError, "server_error")
		return
	}
	if p.Mode == game.ModeDaily {
		s.daily.put(key, g.ID)
	}
	log.Info().Str("gameId", g.ID).Str("mode", string(g.Mode)).Int("pairs", round.Display.Len()).Msg("game started")
	writeJSON(w, http.StatusOK, g.Snapshot())
}

// decodeOptional decodes a JSON body, treating an empty body as zero values.
func decodeOptional(body io.Reader, v any) error {
	err := json.NewDecoder(body).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// -----------------------------------------------------------------------------
// /game/{id}/...

type gameHandler func(w http.ResponseWriter, r *http.Request, g *game.Game)

// withGame resolves {id} from the store for the learner who started it.
// Unknown games and games owned by another learner both answer 404.
func (s *Server) withGame(h gameHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		g, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
		if err == nil && g.Learner != s.learnerID(r) {
			err = store.ErrNotFound
		}
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "game_not_found")
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, "server_error")
			return
		}
		h(w, r, g)
	}
}

func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request, g *game.Game) {
	writeJSON(w, http.StatusOK, g.Snapshot())
}

// pointerReq is one host pointer event in surface pixels.
type pointerReq struct {
	Type game.PointerKind `json:"type" validate:"required,oneof=move down up"`
	X    *float64         `json:"x" validate:"required"`
	Y    *float64         `json:"y" validate:"required"`
}

// pointerRes reports what the event did and the resulting view.
type pointerRes struct {
	Outcome match.Outcome `json:"outcome"`
	Hint    string        `json:"hint,omitempty"`
	View    game.View     `json:"view"`
}

// applyPointer validates and applies p, returning an HTTP status and error
// code on failure. Shared by the REST and websocket transports.
func (s *Server) applyPointer(g *game.Game, p pointerReq) (pointerRes, int, string) {
	if err := s.validate.Struct(p); err != nil {
		return pointerRes{}, http.StatusBadRequest, "invalid"
	}
	o, err := g.Pointer(p.Type, *p.X, *p.Y)
	switch {
	case errors.Is(err, match.ErrWordIndexOutOfBound):
		return pointerRes{}, http.StatusUnprocessableEntity, "word_index_out_of_bound"
	case errors.Is(err, match.ErrMissingWord):
		log.Error().Err(err).Str("gameId", g.ID).Msg("mapping lost a word")
		return pointerRes{}, http.StatusInternalServerError, "missing_word"
	case err != nil:
		return pointerRes{}, http.StatusBadRequest, "invalid"
	}
	res := pointerRes{Outcome: o, View: g.Snapshot()}
	if o.Rejected() {
		res.Hint = o.Hint()
	}
	return res, http.StatusOK, ""
}

func (s *Server) handlePointer(w http.ResponseWriter, r *http.Request, g *game.Game) {
	var p pointerReq
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request")
		return
	}
	res, status, code := s.applyPointer(g, p)
	if code != "" {
		writeError(w, status, code)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request, g *game.Game) {
	if err := g.Restart(); err != nil {
		log.Error().Err(err).Str("gameId", g.ID).Msg("reset")
		writeError(w, http.StatusInternalServerError, "server_error")
		return
	}
	writeJSON(w, http.StatusOK, g.Snapshot())
}

// gradeRes is returned by /game/{id}/grade.
type gradeRes struct {
	match.Score
	Answer match.WordMapping `json:"answer"`
}

// handleGrade scores the round and records it for its learner. A failed
// write is logged; the learner still gets their score.
func (s *Server) handleGrade(w http.ResponseWriter, r *http.Request, g *game.Game) {
	sc, answer := g.Grade()

	if s.results != nil {
		err := s.results.Insert(r.Context(), results.Result{
			GameID:    g.ID,
			LearnerID: g.Learner,
			Mode:      string(g.Mode),
			Date:      g.Date,
			Correct:   sc.Correct,
			Total:     sc.Total,
			Percent:   sc.Percent,
			ElapsedMs: s.now().Sub(g.CreatedAt).Milliseconds(),
		})
		if err != nil {
			log.Warn().Err(err).Str("gameId", g.ID).Msg("record result")
		}
	}
	log.Info().Str("gameId", g.ID).Int("percent", sc.Percent).Msg("game graded")
	writeJSON(w, http.StatusOK, gradeRes{Score: sc, Answer: answer})
}

// handleCanvas renders the surface to PNG. The image is built in memory
// first so a render failure can still be reported as JSON.
func (s *Server) handleCanvas(w http.ResponseWriter, r *http.Request, g *game.Game) {
	var buf bytes.Buffer
	if err := render.Surface(&buf, g); err != nil {
		log.Error().Err(err).Str("gameId", g.ID).Msg("render canvas")
		writeError(w, http.StatusInternalServerError, "render_failed")
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

// PruneGames drops games older than ttl and forgets their daily entries.
func (s *Server) PruneGames(ctx context.Context, ttl time.Duration) (int, error) {
	n, err := s.store.Prune(ctx, s.now().Add(-ttl))
	if err != nil {
		return 0, err
	}
	today := daily.DateKey(s.now().UTC())
	s.daily.mu.Lock()
	for k := range s.daily.ids {
		if !strings.HasSuffix(k, "|"+today) {
			delete(s.daily.ids, k)
		}
	}
	s.daily.mu.Unlock()
	return n, nil
}
