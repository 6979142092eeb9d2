// internal/httpserver/server.go
//
// HTTP server wiring for the browser front-end.
// Responsibilities:
//   - Router + middleware (request IDs, panic recovery, timeouts, access log, CORS).
//   - Public endpoints: "/" (embedded UI), "/health".
//   - Game endpoints: GET /api/game, POST /api/game/key, POST /api/game/reset.
//   - Live channel: GET /api/ws (see ws.go).
//
// Notes:
//   - Every request is bound to a session (see session.go); a missing or
//     stale cookie silently starts a new game.
//   - Rejected keys are not HTTP errors: the response carries the unchanged
//     board and any notices.

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/hlog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-solo/assets"
	"github.com/robalobadob/wordle/apps/go-solo/internal/game"
	"github.com/robalobadob/wordle/apps/go-solo/internal/store"
)

// Options are the transport settings taken from config.
type Options struct {
	Secret         []byte  // HS256 key for the session cookie
	CookieName     string  // session cookie name
	ClientOrigin   string  // allowed CORS / WebSocket origin
	SecureCookies  bool    // set Secure + SameSite=None
	WSEventsPerSec float64 // per-connection event budget
}

// Server bundles router, state machine and session store.
type Server struct {
	r        *chi.Mux
	machine  *game.Machine
	store    store.Store
	opts     Options
	upgrader websocket.Upgrader
	http     *http.Server
}

// New constructs a Server, installs middleware, and registers routes.
func New(m *game.Machine, st store.Store, opts Options) *Server {
	if opts.CookieName == "" {
		opts.CookieName = "wordle_session"
	}
	if opts.WSEventsPerSec <= 0 {
		opts.WSEventsPerSec = 20
	}
	s := &Server{r: chi.NewRouter(), machine: m, store: st, opts: opts}
	s.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     s.checkOrigin,
	}

	// --- middleware ---
	s.r.Use(chimw.RequestID)          // add X-Request-ID
	s.r.Use(chimw.RealIP)             // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(chimw.Recoverer)          // recover from panics
	s.r.Use(hlog.NewHandler(log.Logger))
	s.r.Use(hlog.AccessHandler(accessLog))
	s.r.Use(s.cors)

	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFileFS(w, r, assets.Web(), "index.html")
	})

	// Long-lived; kept out of the timeout group.
	s.r.Get("/api/ws", s.handleWS)

	s.r.Group(func(r chi.Router) {
		r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
		r.Use(jsonContentType)                 // default JSON responses

		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"ok":true}`))
		})

		r.Route("/api/game", func(r chi.Router) {
			r.Get("/", s.handleGame)
			r.Post("/key", s.handleKey)
			r.Post("/reset", s.handleReset)
		})
	})

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		writeError(w, http.StatusNotFound, "not_found")
	})

	return s
}

// Start serves HTTP on addr until Shutdown is called.
func (s *Server) Start(addr string) error {
	s.http = &http.Server{Addr: addr, Handler: s.r, ReadHeaderTimeout: 5 * time.Second}
	if err := s.http.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops a server started with Start.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

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

// cors enables credentialed CORS for the configured origin.
func (s *Server) cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.opts.ClientOrigin != "" {
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Origin", s.opts.ClientOrigin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		}
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func accessLog(r *http.Request, status, size int, d time.Duration) {
	hlog.FromRequest(r).Debug().
		Str("method", r.Method).
		Stringer("url", r.URL).
		Int("status", status).
		Int("size", size).
		Dur("duration", d).
		Msg("request")
}

// ------------------------------ GAME ---------------------------------------

// gameRes is the response of every game endpoint and WS message.
type gameRes struct {
	Board                game.Board    `json:"board"`
	Notices              []game.Notice `json:"notices"`
	ShowCompletionDialog bool          `json:"showCompletionDialog"`
}

// keyReq is the payload for POST /api/game/key.
type keyReq struct {
	Key string `json:"key"` // "A".."Z" | "Enter" | "Delete"
}

func (s *Server) response(out game.Outcome) gameRes {
	notices := out.Notices
	if notices == nil {
		notices = []game.Notice{}
	}
	return gameRes{
		Board:                s.machine.Board(out.State),
		Notices:              notices,
		ShowCompletionDialog: out.ShowCompletionDialog,
	}
}

// handleGame returns the caller's current board.
func (s *Server) handleGame(w http.ResponseWriter, r *http.Request) {
	id, err := s.session(r, w.Header())
	if err != nil {
		log.Error().Err(err).Msg("session")
		writeError(w, http.StatusInternalServerError, "session_failed")
		return
	}
	st, err := s.store.Get(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}
	_ = json.NewEncoder(w).Encode(s.response(game.Outcome{State: st}))
}

// handleKey applies one key press.
func (s *Server) handleKey(w http.ResponseWriter, r *http.Request) {
	var req keyReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	ev, ok := game.ParseKey(req.Key)
	if !ok {
		// unknown keys are ignored, not errors
		s.handleGame(w, r)
		return
	}
	s.handleEvent(w, r, ev)
}

// handleReset starts over ("Play Again").
func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	s.handleEvent(w, r, game.Event{Kind: game.EventReset})
}

func (s *Server) handleEvent(w http.ResponseWriter, r *http.Request, ev game.Event) {
	id, err := s.session(r, w.Header())
	if err != nil {
		log.Error().Err(err).Msg("session")
		writeError(w, http.StatusInternalServerError, "session_failed")
		return
	}
	out, err := s.apply(r.Context(), id, ev)
	if err != nil {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}
	_ = json.NewEncoder(w).Encode(s.response(out))
}

// apply runs ev against the session's state as one atomic step.
func (s *Server) apply(ctx context.Context, id string, ev game.Event) (game.Outcome, error) {
	var out game.Outcome
	_, err := s.store.Update(ctx, id, func(st game.State) game.State {
		out = s.machine.Apply(st, ev)
		return out.State
	})
	if err != nil {
		return out, err
	}

	for _, n := range out.Notices {
		log.Debug().Str("session", id).Str("notice", string(n.Kind)).Msg("guess rejected")
	}
	if out.ShowCompletionDialog {
		log.Info().Str("session", id).Int("row", out.State.Row).Msg("game won")
	}
	return out, nil
}

// writeError writes a JSON error body {"error":code}.
func writeError(w http.ResponseWriter, status int, code string) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": code})
}
