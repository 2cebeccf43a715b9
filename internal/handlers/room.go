package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/thereayou/roomhub/internal/database"
	"github.com/thereayou/roomhub/internal/handlers/dto"
	"github.com/thereayou/roomhub/internal/middleware"
	"github.com/thereayou/roomhub/internal/models"
)

type RoomHandler struct {
	db *database.Database
}

func NewRoomHandler(db *database.Database) *RoomHandler {
	return &RoomHandler{db: db}
}

// CreateRoom creates a room hosted by the current user. The topic is
// resolved by name, created on first use. The participant set starts
// empty; the host joins like anyone else.
func (h *RoomHandler) CreateRoom(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)

	var req dto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	topic, err := h.db.GetOrCreateTopic(req.Topic)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to resolve topic"})
		return
	}

	room := &models.Room{
		Name:        req.Name,
		Description: req.Description,
		HostID:      &userID,
		TopicID:     &topic.ID,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := h.db.CreateRoom(room); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create room"})
		return
	}

	fullRoom, err := h.db.GetRoom(room.ID.String())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load room"})
		return
	}

	c.JSON(http.StatusCreated, formatRoomResponse(fullRoom))
}

// ListRooms lists rooms newest-updated first. `q` matches topic name,
// room name or description as a case-insensitive substring; `topic`
// filters by exact topic name.
func (h *RoomHandler) ListRooms(c *gin.Context) {
	rooms, err := h.db.SearchRooms(c.Query("q"), c.Query("topic"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list rooms"})
		return
	}

	result := make([]gin.H, len(rooms))
	for i := range rooms {
		result[i] = formatRoomResponse(&rooms[i])
	}

	c.JSON(http.StatusOK, gin.H{"rooms": result})
}

func (h *RoomHandler) GetRoom(c *gin.Context) {
	room, err := h.db.GetRoom(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
		return
	}

	c.JSON(http.StatusOK, formatRoomResponse(room))
}

func (h *RoomHandler) UpdateRoom(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)

	var req dto.UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var topicID *uuid.UUID
	if req.Topic != "" {
		topic, err := h.db.GetOrCreateTopic(req.Topic)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to resolve topic"})
			return
		}
		topicID = &topic.ID
	}

	room, err := h.db.UpdateRoom(c.Param("id"), userID, req.Name, req.Description, topicID)
	if err != nil {
		switch {
		case errors.Is(err, database.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
		case errors.Is(err, database.ErrNotHost):
			c.JSON(http.StatusForbidden, gin.H{"error": "only the room host can update the room"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update room"})
		}
		return
	}

	c.JSON(http.StatusOK, formatRoomResponse(room))
}

func (h *RoomHandler) DeleteRoom(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)

	if err := h.db.DeleteRoom(c.Param("id"), userID); err != nil {
		switch {
		case errors.Is(err, database.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
		case errors.Is(err, database.ErrNotHost):
			c.JSON(http.StatusForbidden, gin.H{"error": "only the room host can delete the room"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete room"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "room deleted"})
}

// JoinRoom adds the current user to the participant set. Joining twice is
// a no-op.
func (h *RoomHandler) JoinRoom(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)
	roomID := c.Param("id")

	if err := h.db.AddParticipant(roomID, userID.String()); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to join room"})
		return
	}

	room, err := h.db.GetRoom(roomID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load room"})
		return
	}

	c.JSON(http.StatusOK, formatRoomResponse(room))
}
