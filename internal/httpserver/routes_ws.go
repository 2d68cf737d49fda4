// internal/httpserver/routes_ws.go
//
// GET /game/{id}/ws streams pointer events over a websocket so a browser can
// forward every mouse move without a request per event. Each text frame is a
// pointerReq; each reply is a pointerRes or {"error": code}.

package httpserver

import (
	"net/http"
	"net/url"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordmatch/internal/game"
)

const (
	wsWriteWait = 5 * time.Second
	wsIdleWait  = 2 * time.Minute
	wsMaxFrame  = 1 << 10
)

func (s *Server) upgrader() *websocket.Upgrader {
	return &websocket.Upgrader{
		ReadBufferSize:  wsMaxFrame,
		WriteBufferSize: 4 * wsMaxFrame,
		CheckOrigin:     s.checkOrigin,
	}
}

// checkOrigin accepts the configured client origin and same-host pages.
func (s *Server) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" || origin == s.cfg.ClientOrigin {
		return true
	}
	u, err := url.Parse(origin)
	return err == nil && u.Host == r.Host
}

type wsError struct {
	Error string `json:"error"`
}

func (s *Server) handleStream(w http.ResponseWriter, r *http.Request, g *game.Game) {
	conn, err := s.upgrader().Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already answered the client.
		log.Debug().Err(err).Str("gameId", g.ID).Msg("ws upgrade")
		return
	}
	defer conn.Close()
	conn.SetReadLimit(wsMaxFrame)

	log.Debug().Str("gameId", g.ID).Msg("ws open")
	for {
		_ = conn.SetReadDeadline(time.Now().Add(wsIdleWait))
		var p pointerReq
		if err := conn.ReadJSON(&p); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Debug().Err(err).Str("gameId", g.ID).Msg("ws read")
			}
			return
		}

		var reply any
		res, _, code := s.applyPointer(g, p)
		if code != "" {
			reply = wsError{Error: code}
		} else {
			reply = res
		}

		_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
		if err := conn.WriteJSON(reply); err != nil {
			log.Debug().Err(err).Str("gameId", g.ID).Msg("ws write")
			return
		}
	}
}
