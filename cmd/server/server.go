package server

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"github.com/thereayou/roomhub/internal/config"
	"github.com/thereayou/roomhub/internal/database"
	"github.com/thereayou/roomhub/internal/handlers"
	"github.com/thereayou/roomhub/pkg/auth"
)

type Server struct {
	Router     *gin.Engine
	DB         *database.Database
	Redis      *redis.Client
	JWTManager *auth.JWTManager
	Config     config.Config

	AuthH    *handlers.AuthHandler
	UserH    *handlers.UserHandler
	TopicH   *handlers.TopicHandler
	RoomH    *handlers.RoomHandler
	MessageH *handlers.MessageHandler
	AdminH   *handlers.AdminHandler
}

func NewServer() *Server {
	if err := godotenv.Load(".env.local"); err != nil {
		if err := godotenv.Load(); err != nil {
			log.Println(".env not found, using environment variables")
		}
	}

	cfg := config.Load()

	dbConn := &database.Database{}
	if err := dbConn.Connect(cfg.DatabaseURL); err != nil {
		log.Fatalf("Postgres connect failed: %v", err)
	}

	var rdb *redis.Client
	if cfg.RedisURL != "" {
		redisOpts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatalf("invalid REDIS_URL: %v", err)
		}
		rdb = redis.NewClient(redisOpts)
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			log.Fatalf("Redis connect failed: %v", err)
		}
	} else {
		log.Println("REDIS_URL not set, logout token revocation disabled")
	}

	jwtMgr := auth.NewJWTManager(
		cfg.JWTSecret,
		time.Duration(cfg.JWTTTLHours)*time.Hour,
	)

	s := &Server{
		DB:         dbConn,
		Redis:      rdb,
		JWTManager: jwtMgr,
		Config:     cfg,

		AuthH:    handlers.NewAuthHandler(dbConn, jwtMgr, rdb),
		UserH:    handlers.NewUserHandler(dbConn, cfg.MediaDir),
		TopicH:   handlers.NewTopicHandler(dbConn),
		RoomH:    handlers.NewRoomHandler(dbConn),
		MessageH: handlers.NewMessageHandler(dbConn),
		AdminH:   handlers.NewAdminHandler(dbConn),
	}

	router := gin.Default()
	APIEndpoints(router, s)
	s.Router = router

	return s
}

func (s *Server) Run() {
	addr := fmt.Sprintf(":%d", s.Config.Port)
	log.Printf("Server starting on %s", addr)
	if err := s.Router.Run(addr); err != nil {
		log.Fatalf("Server run error: %v", err)
	}
}
