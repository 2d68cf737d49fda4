// internal/httpserver/server.go
//
// HTTP server wiring for the wordmatch backend.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health", "/debug/words".
//   - Game endpoints: mounted under /game (routes_game.go, routes_ws.go).
//   - Result history endpoints: mounted under /results (routes_results.go).
//   - Anonymous learner identity carried in a signed JWT cookie.
//
// Notes:
//   - CORS is origin‑aware and credentials‑enabled (so cookies work).
//   - There are no accounts; the learner cookie only ties graded rounds
//     to one browser.

package httpserver

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordmatch/internal/config"
	"github.com/robalobadob/wordmatch/internal/match"
	"github.com/robalobadob/wordmatch/internal/results"
	"github.com/robalobadob/wordmatch/internal/store"
	"github.com/robalobadob/wordmatch/internal/words"
)

// requestTimeout bounds every request/response handler. The websocket
// stream is exempt.
const requestTimeout = 10 * time.Second

// Server bundles router, in-memory game store, and results DB.
type Server struct {
	r        *chi.Mux
	cfg      config.Config
	store    store.Store
	results  *results.Store // nil disables history
	daily    *dailyGames
	validate *validator.Validate
	pairs    func() []match.Pair
	now      func() time.Time
}

// New constructs a Server, installs middleware, and registers routes.
// rs may be nil when no results database is configured.
func New(cfg config.Config, st store.Store, rs *results.Store) *Server {
	s := &Server{
		r:        chi.NewRouter(),
		cfg:      cfg,
		store:    st,
		results:  rs,
		daily:    &dailyGames{ids: make(map[string]string)},
		validate: validator.New(),
		pairs:    words.Pairs,
		now:      time.Now,
	}

	// --- middleware ---
	s.r.Use(chimw.RequestID)  // add X-Request-ID
	s.r.Use(chimw.RealIP)     // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(chimw.Recoverer)  // recover from panics
	s.r.Use(jsonContentType)  // default JSON responses
	s.r.Use(s.corsFromConfig) // credentials-friendly CORS
	s.r.Use(requestLogger)    // zerolog access log

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"service":"wordmatch","endpoints":["/health","POST /game/new","POST /game/{id}/pointer","POST /game/{id}/grade","GET /game/{id}/ws","/results/*"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]int{"pairs": len(s.pairs())})
	})

	s.mountGame(s.r)
	s.mountResults(s.r)

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found", "path": r.URL.Path})
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// corsFromConfig enables credentialed CORS for the configured client origin.
func (s *Server) corsFromConfig(next http.Handler) http.Handler {
	origin := s.cfg.ClientOrigin
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Vary", "Origin")
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// requestLogger writes one debug line per request.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		log.Debug().
			Str("reqId", chimw.GetReqID(r.Context())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("took", time.Since(start)).
			Msg("request")
	})
}

// ------------------------------ responses -----------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, map[string]string{"error": code})
}

// ------------------------------ learner id ----------------------------------

const learnerCookieName = "wordmatch_learner"

// learnerID returns the learner from a valid token in the Authorization
// header or cookie, or "" when there is none.
func (s *Server) learnerID(r *http.Request) string {
	tok := bearerOrCookie(r)
	if tok == "" {
		return ""
	}
	claims := jwt.RegisteredClaims{}
	t, err := jwt.ParseWithClaims(tok, &claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.JWTSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !t.Valid {
		return ""
	}
	return claims.Subject
}

// ensureLearner returns the current learner or issues a new signed cookie.
func (s *Server) ensureLearner(w http.ResponseWriter, r *http.Request) string {
	if id := s.learnerID(r); id != "" {
		return id
	}
	id := genID()
	exp := s.now().Add(s.cfg.LearnerTTL)
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   id,
		IssuedAt:  jwt.NewNumericDate(s.now()),
		ExpiresAt: jwt.NewNumericDate(exp),
	}).SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		log.Warn().Err(err).Msg("sign learner token")
		return id
	}
	sameSite := http.SameSiteLaxMode
	if s.cfg.Production {
		sameSite = http.SameSiteNoneMode // required for third‑party contexts when Secure
	}
	http.SetCookie(w, &http.Cookie{
		Name:     learnerCookieName,
		Value:    tok,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.cfg.Production,
		SameSite: sameSite,
		Expires:  exp,
	})
	return id
}

// bearerOrCookie extracts a bearer token from Authorization header or learner cookie.
func bearerOrCookie(r *http.Request) string {
	// Authorization: Bearer <token>
	if a := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(a), "bearer ") {
		return strings.TrimSpace(a[7:])
	}
	if c, err := r.Cookie(learnerCookieName); err == nil {
		return c.Value
	}
	return ""
}

// genID creates a 22‑char URL‑safe, crypto‑random identifier (no padding).
func genID() string {
	var b [16]byte
	_, _ = rand.Read(b[:])
	return base64.RawURLEncoding.EncodeToString(b[:])
}
