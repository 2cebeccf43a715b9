package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/thereayou/roomhub/internal/database"
)

type TopicHandler struct {
	db *database.Database
}

func NewTopicHandler(db *database.Database) *TopicHandler {
	return &TopicHandler{db: db}
}

// ListTopics returns topics with room counts, optionally narrowed by a
// name substring via `q`.
func (h *TopicHandler) ListTopics(c *gin.Context) {
	topics, err := h.db.ListTopics(c.Query("q"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list topics"})
		return
	}

	result := make([]gin.H, len(topics))
	for i, topic := range topics {
		result[i] = gin.H{
			"id":         topic.ID,
			"name":       topic.Name,
			"room_count": topic.RoomCount,
		}
	}

	c.JSON(http.StatusOK, gin.H{"topics": result})
}
