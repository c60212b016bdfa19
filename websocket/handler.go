package websocket

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/gridironhub/chat_backend/store"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins
	},
}

// ServeWS returns the gin handler that upgrades requests and attaches the
// resulting connection to hub. Chat is unauthenticated: usernames are
// whatever the client claims per message.
func ServeWS(hub *Hub, messages store.MessageStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Warn().Err(err).Msg("error upgrading connection")
			return
		}

		client := newClient(hub, conn, messages)
		client.hub.register <- client

		// Start goroutines for reading and writing
		go client.readPump()
		go client.writePump()
	}
}
