// internal/httpserver/server.go
//
// Local HTTP adapter for a presentation layer.
// Responsibilities:
//   - Router + middleware (request IDs, real IP, logging, panic recovery,
//     timeouts, JSON, CORS, per-client rate limiting).
//   - Diagnostics: "/", "/health".
//   - Game intents: /game, /game/letter, /game/delete, /game/submit, /game/reset.
//   - Stats, leaderboard, share text, countdown and word lookup.
//
// Notes:
//   - The session is single-writer; every handler touches it under s.mu, so
//     intents are applied one at a time in arrival order.
//   - Name validation and the duplicate-submission check for the leaderboard
//     live here, not in the session.

package httpserver

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/robalobadob/wordly/internal/session"
	"github.com/robalobadob/wordly/internal/words"
)

// Options configures a Server. Zero values pick defaults.
type Options struct {
	ClientOrigin   string
	RateLimitRPS   int
	RateLimitBurst int
	RequestTimeout time.Duration
	ShareURL       string
	Words          *words.List
	Clock          session.Clock
}

// Server bundles router and session.
type Server struct {
	r        *chi.Mux
	mu       sync.Mutex // guards sess
	sess     *session.Session
	words    *words.List
	clock    session.Clock
	shareURL string
}

// New constructs a Server, installs middleware, and registers routes.
func New(sess *session.Session, opts Options) *Server {
	if opts.ClientOrigin == "" {
		opts.ClientOrigin = "http://localhost:5173"
	}
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = 10 * time.Second
	}
	if opts.Words == nil {
		opts.Words = words.Default()
	}
	if opts.Clock == nil {
		opts.Clock = session.SystemClock
	}
	s := &Server{
		r:        chi.NewRouter(),
		sess:     sess,
		words:    opts.Words,
		clock:    opts.Clock,
		shareURL: opts.ShareURL,
	}

	// --- middleware ---
	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(requestLogger)
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(opts.RequestTimeout))
	s.r.Use(jsonContentType)
	s.r.Use(cors(opts.ClientOrigin))
	s.r.Use(newLimiter(opts.RateLimitRPS, opts.RateLimitBurst).middleware)

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"service":"wordly","endpoints":["/health","/game","/stats","/leaderboard","/share","/countdown","/words/{word}"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	s.mountGame(s.r)
	s.mountLeaderboard(s.r)

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found")
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// writeJSON encodes v with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError writes {"error": code}.
func writeError(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, map[string]string{"error": code})
}
