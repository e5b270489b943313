package http

import (
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"

	"hacknight-service/internal/domain"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

type outboundMessage struct {
	Type    string                    `json:"type"`
	Payload []domain.LeaderboardEntry `json:"payload"`
}

// handleWS streams leaderboard snapshots to clients that prefer a live feed
// over polling GET /leaderboard. The first message is the current ranking;
// one follows after every mutation.
func (h *Handler) handleWS(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	updates, cancel, err := h.service.Subscribe(r.Context())
	if err != nil {
		h.writeServiceError(w, err, "Failed to fetch leaderboard")
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		cancel()
		h.log.Warn("ws upgrade failed", "error", err)
		return
	}
	defer conn.Close()
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		// Drain client frames so we notice the peer closing.
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case entries, ok := <-updates:
			if !ok {
				return
			}
			if err := conn.WriteJSON(outboundMessage{Type: "leaderboard", Payload: entries}); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}
