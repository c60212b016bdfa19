package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/gridironhub/chat_backend/store"
)

// MessageController serves chat history reads. Clients hydrate from here
// after connecting (or reconnecting) to the live socket.
type MessageController struct {
	store store.MessageStore
}

func NewMessageController(messages store.MessageStore) *MessageController {
	return &MessageController{store: messages}
}

// GetMessages returns prior chat messages ordered oldest first.
// Query parameters: roomId (optional; omit to fetch across all rooms) and
// limit (optional; caps the result to the most recent limit messages).
func (mc *MessageController) GetMessages(c *gin.Context) {
	var roomID *string
	if value, ok := c.GetQuery("roomId"); ok {
		roomID = &value
	}

	limit := 0
	if value, ok := c.GetQuery("limit"); ok {
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
			return
		}
		limit = n
	}

	messages, err := mc.store.Messages(c.Request.Context(), roomID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch messages"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"messages": messages})
}
