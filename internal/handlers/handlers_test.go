package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/thereayou/roomhub/internal/database"
	"github.com/thereayou/roomhub/internal/middleware"
	"github.com/thereayou/roomhub/internal/models"
	"github.com/thereayou/roomhub/pkg/auth"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestRouter wires the full route table against an in-memory SQLite
// database, with no redis client.
func setupTestRouter(t *testing.T) (*gin.Engine, *database.Database) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	err = gdb.AutoMigrate(&models.User{}, &models.Topic{}, &models.Room{}, &models.Message{})
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	d := database.NewDatabase(gdb)
	jwtMgr := auth.NewJWTManager("test-secret", time.Hour)

	authH := NewAuthHandler(d, jwtMgr, nil)
	userH := NewUserHandler(d, t.TempDir())
	topicH := NewTopicHandler(d)
	roomH := NewRoomHandler(d)
	messageH := NewMessageHandler(d)
	adminH := NewAdminHandler(d)

	r := gin.New()

	r.POST("/auth/register", authH.Register)
	r.POST("/auth/login", authH.Login)
	r.POST("/auth/logout", authH.Logout)

	api := r.Group("/api/v1")
	api.Use(middleware.AuthMiddleware(jwtMgr, nil))
	{
		api.GET("/users/me", userH.GetMe)
		api.PUT("/users/me", userH.UpdateMe)
		api.POST("/users/me/avatar", userH.UploadAvatar)
		api.GET("/users/:id", userH.GetUser)

		api.GET("/topics", topicH.ListTopics)

		api.GET("/rooms", roomH.ListRooms)
		api.POST("/rooms", roomH.CreateRoom)
		api.GET("/rooms/:id", roomH.GetRoom)
		api.PUT("/rooms/:id", roomH.UpdateRoom)
		api.DELETE("/rooms/:id", roomH.DeleteRoom)
		api.POST("/rooms/:id/join", roomH.JoinRoom)

		api.GET("/rooms/:id/messages", messageH.ListRoomMessages)
		api.POST("/rooms/:id/messages", messageH.PostMessage)
		api.GET("/messages", messageH.RecentActivity)
		api.PUT("/messages/:id", messageH.UpdateMessage)
		api.DELETE("/messages/:id", messageH.DeleteMessage)
	}

	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(jwtMgr, nil), middleware.StaffOnly(d))
	{
		admin.GET("/users", adminH.ListUsers)
		admin.DELETE("/users/:id", adminH.DeleteUser)
	}

	return r, d
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
}

// registerTestUser registers an account over HTTP and returns its token
// and user id.
func registerTestUser(t *testing.T, r *gin.Engine, email string) (string, string) {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/auth/register", "", gin.H{
		"email":    email,
		"password": "sup3rsecret",
		"name":     "Test User",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("register returned %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Token string `json:"token"`
		User  struct {
			ID string `json:"id"`
		} `json:"user"`
	}
	decodeBody(t, w, &resp)
	if resp.Token == "" || resp.User.ID == "" {
		t.Fatalf("register response missing token or user id: %s", w.Body.String())
	}
	return resp.Token, resp.User.ID
}

func createRoomViaAPI(t *testing.T, r *gin.Engine, token, name, topic string) string {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/api/v1/rooms", token, gin.H{
		"name":  name,
		"topic": topic,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create room returned %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		ID string `json:"id"`
	}
	decodeBody(t, w, &resp)
	return resp.ID
}
