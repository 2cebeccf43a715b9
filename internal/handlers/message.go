package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/thereayou/roomhub/internal/database"
	"github.com/thereayou/roomhub/internal/handlers/dto"
	"github.com/thereayou/roomhub/internal/middleware"
	"github.com/thereayou/roomhub/internal/models"
)

type MessageHandler struct {
	db *database.Database
}

func NewMessageHandler(db *database.Database) *MessageHandler {
	return &MessageHandler{db: db}
}

// PostMessage appends a message to a room. Posting joins the author to
// the room's participant set if they were not in it already.
func (h *MessageHandler) PostMessage(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)

	roomID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid room id"})
		return
	}

	var req dto.PostMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	message := &models.Message{
		RoomID:    roomID,
		UserID:    userID,
		Body:      req.Body,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := h.db.CreateMessage(message); err != nil {
		switch {
		case errors.Is(err, database.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
		case errors.Is(err, database.ErrEmptyBody):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save message"})
		}
		return
	}

	fullMessage, err := h.db.GetMessage(message.ID.String())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load message"})
		return
	}

	c.JSON(http.StatusCreated, formatMessageResponse(fullMessage))
}

// ListRoomMessages returns a room's messages newest-updated first.
func (h *MessageHandler) ListRoomMessages(c *gin.Context) {
	roomID := c.Param("id")

	if _, err := h.db.GetRoom(roomID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
		return
	}

	messages, err := h.db.GetRoomMessages(roomID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list messages"})
		return
	}

	result := make([]gin.H, len(messages))
	for i := range messages {
		result[i] = formatMessageResponse(&messages[i])
	}

	c.JSON(http.StatusOK, gin.H{"messages": result})
}

func (h *MessageHandler) UpdateMessage(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)

	var req dto.UpdateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	message, err := h.db.UpdateMessage(c.Param("id"), userID, req.Body)
	if err != nil {
		switch {
		case errors.Is(err, database.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "message not found"})
		case errors.Is(err, database.ErrNotAuthor):
			c.JSON(http.StatusForbidden, gin.H{"error": "you can only edit your own messages"})
		case errors.Is(err, database.ErrEmptyBody):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update message"})
		}
		return
	}

	c.JSON(http.StatusOK, formatMessageResponse(message))
}

func (h *MessageHandler) DeleteMessage(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)

	if err := h.db.DeleteMessage(c.Param("id"), userID); err != nil {
		switch {
		case errors.Is(err, database.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "message not found"})
		case errors.Is(err, database.ErrNotAuthor):
			c.JSON(http.StatusForbidden, gin.H{"error": "you can only delete your own messages"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete message"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "message deleted"})
}

// RecentActivity returns the newest messages across all rooms.
func (h *MessageHandler) RecentActivity(c *gin.Context) {
	limit := 50
	if l := c.Query("limit"); l != "" {
		if parsed, err := strconv.Atoi(l); err == nil && parsed > 0 && parsed <= 100 {
			limit = parsed
		}
	}

	messages, err := h.db.GetRecentMessages(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list messages"})
		return
	}

	result := make([]gin.H, len(messages))
	for i := range messages {
		entry := formatMessageResponse(&messages[i])
		entry["room"] = gin.H{"id": messages[i].Room.ID, "name": messages[i].Room.Name}
		result[i] = entry
	}

	c.JSON(http.StatusOK, gin.H{"messages": result})
}
