// fan-out for the scoreboard and chat websockets. No ordering or delivery
// guarantees; a dead connection is dropped without failing the others.
package realtime

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

// Registry tracks the open connections of one websocket surface. It is
// owned by the server process and scoped to its lifetime.
type Registry struct {
	name  string
	mu    sync.Mutex
	conns map[*websocket.Conn]struct{}
}

func NewRegistry(name string) *Registry {
	return &Registry{
		name:  name,
		conns: make(map[*websocket.Conn]struct{}),
	}
}

func (r *Registry) Add(conn *websocket.Conn) {
	r.mu.Lock()
	r.conns[conn] = struct{}{}
	n := len(r.conns)
	r.mu.Unlock()
	log.Info().Str("registry", r.name).Int("connections", n).Msg("client connected")
}

func (r *Registry) Remove(conn *websocket.Conn) {
	r.mu.Lock()
	delete(r.conns, conn)
	n := len(r.conns)
	r.mu.Unlock()
	_ = conn.Close()
	log.Info().Str("registry", r.name).Int("connections", n).Msg("client disconnected")
}

// Broadcast sends v as JSON to every connection. A send failure drops that
// connection only.
func (r *Registry) Broadcast(v any) {
	payload, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Str("registry", r.name).Msg("broadcast marshal failed")
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for conn := range r.conns {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			log.Warn().Err(err).Str("registry", r.name).Msg("dropping dead connection")
			delete(r.conns, conn)
			_ = conn.Close()
		}
	}
}

// Len reports the current connection count.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.conns)
}
