// internal/httpserver/ws.go
//
// Live channel for the browser UI.
//
//   client → server: {"type":"key","key":"A"} | {"type":"reset"}
//   server → client: gameRes (board, notices, showCompletionDialog)
//
// The current board is pushed right after the upgrade. Unparseable or
// over-budget messages are dropped without a reply.

package httpserver

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/robalobadob/wordle/apps/go-solo/internal/game"
)

type wsMsg struct {
	Type string `json:"type"` // "key" | "reset"
	Key  string `json:"key"`
}

func (m wsMsg) event() (game.Event, bool) {
	switch m.Type {
	case "key":
		return game.ParseKey(m.Key)
	case "reset":
		return game.Event{Kind: game.EventReset}, true
	}
	return game.Event{}, false
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	hdr := http.Header{}
	id, err := s.session(r, hdr)
	if err != nil {
		log.Error().Err(err).Msg("session")
		http.Error(w, `{"error":"session_failed"}`, http.StatusInternalServerError)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, hdr)
	if err != nil {
		log.Warn().Err(err).Str("session", id).Msg("ws upgrade failed")
		return
	}
	defer conn.Close()

	ctx := r.Context()

	st, err := s.store.Get(ctx, id)
	if err != nil {
		return
	}
	if err := conn.WriteJSON(s.response(game.Outcome{State: st})); err != nil {
		return
	}

	burst := int(s.opts.WSEventsPerSec * 2)
	if burst < 1 {
		burst = 1
	}
	limiter := rate.NewLimiter(rate.Limit(s.opts.WSEventsPerSec), burst)

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Debug().Err(err).Str("session", id).Msg("ws closed")
			}
			return
		}
		if !limiter.Allow() {
			continue
		}
		var msg wsMsg
		if err := json.Unmarshal(data, &msg); err != nil {
			continue
		}
		ev, ok := msg.event()
		if !ok {
			continue
		}
		out, err := s.apply(ctx, id, ev)
		if err != nil {
			// session swept while connected
			_ = conn.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, "session_expired"))
			return
		}
		if err := conn.WriteJSON(s.response(out)); err != nil {
			return
		}
	}
}
