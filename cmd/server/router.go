package server

import (
	"github.com/gin-gonic/gin"
	"github.com/thereayou/roomhub/internal/middleware"
)

func APIEndpoints(r *gin.Engine, s *Server) {
	// Auth endpoints
	auth := r.Group("/auth")
	{
		auth.POST("/register", s.AuthH.Register)
		auth.POST("/login", s.AuthH.Login)
		auth.POST("/logout", s.AuthH.Logout)
	}

	// Uploaded avatars
	r.Static("/images", s.Config.MediaDir)

	// API endpoints
	api := r.Group("/api/v1")
	api.Use(middleware.AuthMiddleware(s.JWTManager, s.Redis))
	{
		api.GET("/users/me", s.UserH.GetMe)
		api.PUT("/users/me", s.UserH.UpdateMe)
		api.POST("/users/me/avatar", s.UserH.UploadAvatar)
		api.GET("/users/:id", s.UserH.GetUser)

		api.GET("/topics", s.TopicH.ListTopics)

		api.GET("/rooms", s.RoomH.ListRooms)
		api.POST("/rooms", s.RoomH.CreateRoom)
		api.GET("/rooms/:id", s.RoomH.GetRoom)
		api.PUT("/rooms/:id", s.RoomH.UpdateRoom)
		api.DELETE("/rooms/:id", s.RoomH.DeleteRoom)
		api.POST("/rooms/:id/join", s.RoomH.JoinRoom)

		api.GET("/rooms/:id/messages", s.MessageH.ListRoomMessages)
		api.POST("/rooms/:id/messages", s.MessageH.PostMessage)
		api.GET("/messages", s.MessageH.RecentActivity)
		api.PUT("/messages/:id", s.MessageH.UpdateMessage)
		api.DELETE("/messages/:id", s.MessageH.DeleteMessage)
	}

	// Staff-only user management
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(s.JWTManager, s.Redis), middleware.StaffOnly(s.DB))
	{
		admin.GET("/users", s.AdminH.ListUsers)
		admin.DELETE("/users/:id", s.AdminH.DeleteUser)
	}
}
