package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/thereayou/roomhub/internal/models"
)

func formatUserResponse(user *models.User) gin.H {
	return gin.H{
		"id":         user.ID,
		"email":      user.Email,
		"name":       user.Name,
		"bio":        user.Bio,
		"avatar":     user.Avatar,
		"created_at": user.CreatedAt,
	}
}

// formatPublicUser leaves out the email for responses visible to other
// users.
func formatPublicUser(user *models.User) gin.H {
	return gin.H{
		"id":     user.ID,
		"name":   user.Name,
		"bio":    user.Bio,
		"avatar": user.Avatar,
	}
}

func formatRoomResponse(room *models.Room) gin.H {
	resp := gin.H{
		"id":          room.ID,
		"name":        room.Name,
		"description": room.Description,
		"created_at":  room.CreatedAt,
		"updated_at":  room.UpdatedAt,
	}

	if room.Host != nil {
		resp["host"] = formatPublicUser(room.Host)
	}
	if room.Topic != nil {
		resp["topic"] = gin.H{"id": room.Topic.ID, "name": room.Topic.Name}
	}

	participants := make([]gin.H, len(room.Participants))
	for i := range room.Participants {
		participants[i] = formatPublicUser(&room.Participants[i])
	}
	resp["participants"] = participants

	return resp
}

func formatMessageResponse(message *models.Message) gin.H {
	return gin.H{
		"id":         message.ID,
		"room_id":    message.RoomID,
		"user":       formatPublicUser(&message.User),
		"body":       message.Body,
		"created_at": message.CreatedAt,
		"updated_at": message.UpdatedAt,
	}
}
