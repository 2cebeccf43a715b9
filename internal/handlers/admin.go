package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/thereayou/roomhub/internal/database"
)

// AdminHandler serves the staff-only user management surface.
type AdminHandler struct {
	db *database.Database
}

func NewAdminHandler(db *database.Database) *AdminHandler {
	return &AdminHandler{db: db}
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.db.ListUsers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list users"})
		return
	}

	result := make([]gin.H, len(users))
	for i := range users {
		entry := formatUserResponse(&users[i])
		entry["is_staff"] = users[i].IsStaff
		entry["is_superuser"] = users[i].IsSuperuser
		result[i] = entry
	}

	c.JSON(http.StatusOK, gin.H{"users": result})
}

// DeleteUser removes an account. Their messages go with them; rooms they
// hosted stay behind with no host.
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	if err := h.db.DeleteUser(c.Param("id")); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "user deleted"})
}
