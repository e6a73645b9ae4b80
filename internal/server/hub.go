package server

import (
	"sync"

	"github.com/gofiber/websocket/v2"
	"github.com/rs/zerolog"

	"github.com/lgbarn/chessai-client/internal/session"
)

// hub tracks connected websocket clients.
type hub struct {
	mu    sync.Mutex
	conns map[*websocket.Conn]*sync.Mutex
	log   zerolog.Logger
}

func newHub(log zerolog.Logger) *hub {
	return &hub{
		conns: make(map[*websocket.Conn]*sync.Mutex),
		log:   log,
	}
}

func (h *hub) add(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.conns[conn] = &sync.Mutex{}
	h.log.Debug().Int("clients", len(h.conns)).Msg("websocket client connected")
}

func (h *hub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.conns, conn)
	h.log.Debug().Int("clients", len(h.conns)).Msg("websocket client disconnected")
}

// send writes one state document to conn. Writes to a connection must not
// interleave.
func (h *hub) send(conn *websocket.Conn, state session.State) error {
	h.mu.Lock()
	lock, ok := h.conns[conn]
	h.mu.Unlock()
	if !ok {
		return nil
	}

	lock.Lock()
	defer lock.Unlock()
	return conn.WriteJSON(state)
}

// broadcast sends state to every client; failed clients are dropped.
func (h *hub) broadcast(state session.State) {
	h.mu.Lock()
	conns := make([]*websocket.Conn, 0, len(h.conns))
	for conn := range h.conns {
		conns = append(conns, conn)
	}
	h.mu.Unlock()

	for _, conn := range conns {
		if err := h.send(conn, state); err != nil {
			h.log.Warn().Err(err).Msg("websocket write failed")
			h.remove(conn)
			conn.Close()
		}
	}
}

// size returns the number of connected clients.
func (h *hub) size() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.conns)
}
