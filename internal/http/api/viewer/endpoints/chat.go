package endpoints

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/courtside-live/courtside/internal/http/api"
	"github.com/courtside-live/courtside/internal/realtime"
)

type ChatController struct {
	conns *realtime.Registry
}

// ChatModule mounts the chat relay websocket. Every message a client sends
// is fanned out to all connections, sender included. No history, no
// delivery guarantees.
func ChatModule(conns *realtime.Registry) api.Module {
	ctl := &ChatController{conns: conns}
	return api.ModuleFunc(func(c *api.Controller) {
		c.RAW(http.MethodGet, "/ws/chat", ctl.chatSocket)
	})
}

// GET /ws/chat
func (c *ChatController) chatSocket(ctx *gin.Context) {
	conn, err := upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		log.Error().Err(err).Msg("chat websocket upgrade failed")
		return
	}

	c.conns.Add(conn)
	defer c.conns.Remove(conn)

	for {
		_, payload, err := conn.ReadMessage()
		if err != nil {
			break
		}
		if !json.Valid(payload) {
			continue
		}
		c.conns.Broadcast(json.RawMessage(payload))
	}
}
