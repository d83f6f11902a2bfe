package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"

	"trivia-night/internal/domain"
)

// Feed publishes the live session.
type Feed interface {
	Subscribe() (<-chan domain.Snapshot, func())
}

type WSHandler struct {
	feed     Feed
	rooms    RoomReader
	logger   *slog.Logger
	upgrader websocket.Upgrader
}

func NewWSHandler(feed Feed, rooms RoomReader, logger *slog.Logger) *WSHandler {
	return &WSHandler{
		feed:   feed,
		rooms:  rooms,
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

type outboundMessage[T any] struct {
	Type    string `json:"type"`
	Payload T      `json:"payload"`
}

type closedPayload struct {
	RoomCode string `json:"roomCode"`
}

// ServeWS streams snapshots of one room to a read-only spectator. The stream
// ends with a "closed" message once the room stops being the live game.
func (h *WSHandler) ServeWS(w http.ResponseWriter, r *http.Request) {
	room := r.URL.Query().Get("room")
	if room == "" {
		writeError(w, http.StatusBadRequest, "missing room")
		return
	}
	if _, err := h.rooms.Get(r.Context(), room); err != nil {
		if errors.Is(err, domain.ErrRoomNotFound) {
			writeError(w, http.StatusNotFound, "room not found")
			return
		}
		h.logger.Error("room lookup failed", "room", room, "err", err)
		writeError(w, http.StatusInternalServerError, "room lookup failed")
		return
	}

	updates, cancel := h.feed.Subscribe()
	defer cancel()

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("ws upgrade failed", "err", err)
		return
	}
	defer conn.Close()

	// Spectators never send anything meaningful; reading only surfaces the
	// close frame or a dropped connection.
	readerDone := make(chan struct{})
	go func() {
		defer close(readerDone)
		for {
			if _, _, err := conn.NextReader(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-readerDone:
			return
		case snap, ok := <-updates:
			if !ok {
				_ = conn.WriteJSON(outboundMessage[closedPayload]{Type: "closed", Payload: closedPayload{RoomCode: room}})
				return
			}
			if snap.RoomCode != room {
				_ = conn.WriteJSON(outboundMessage[closedPayload]{Type: "closed", Payload: closedPayload{RoomCode: room}})
				_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, "room closed"))
				return
			}
			if err := conn.WriteJSON(outboundMessage[domain.Snapshot]{Type: "snapshot", Payload: snap}); err != nil {
				h.logger.Debug("ws write failed", "room", room, "err", err)
				return
			}
		}
	}
}
