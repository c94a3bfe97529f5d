package server

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"github.com/quickshare/rooms/internal/config"
	"github.com/quickshare/rooms/internal/database"
	"github.com/quickshare/rooms/internal/handlers"
	"github.com/quickshare/rooms/internal/realtime"
	"github.com/quickshare/rooms/internal/service"
	"github.com/quickshare/rooms/internal/storage"
	"github.com/quickshare/rooms/internal/websocket"
	"github.com/sirupsen/logrus"
)

type Server struct {
	Router *gin.Engine
	Config *config.Config
	Hub    *websocket.Hub
	Bus    realtime.Bus
}

func NewServer() *Server {
	if err := godotenv.Load(".env.local"); err != nil {
		if err := godotenv.Load(); err != nil {
			logrus.Info(".env not found, using environment variables")
		}
	}

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Config error: %v", err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		logrus.Fatalf("Postgres connect failed: %v", err)
	}

	var bus realtime.Bus
	if cfg.RedisURL != "" {
		redisOpts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			logrus.Fatalf("invalid REDIS_URL: %v", err)
		}
		rdb := redis.NewClient(redisOpts)
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			logrus.Fatalf("Redis connect failed: %v", err)
		}
		bus = realtime.NewRedisBus(rdb)
	} else {
		logrus.Warn("REDIS_URL not set, fanout is in-process only")
		bus = realtime.NewMemoryBus()
	}

	blobs, err := storage.NewDiskStore(cfg.StorageDir)
	if err != nil {
		logrus.Fatalf("Blob store init failed: %v", err)
	}
	signer := storage.NewURLSigner(cfg.SigningSecret)

	activitySvc := service.NewActivityService(db, bus)
	roomSvc := service.NewRoomService(db, db, blobs, bus, activitySvc)
	memberSvc := service.NewMemberService(db, roomSvc, bus, activitySvc)
	messageSvc := service.NewMessageService(db, roomSvc, bus)
	fileSvc := service.NewFileService(db, roomSvc, blobs, signer, bus, activitySvc)
	noteSvc := service.NewNoteService(db, roomSvc, bus)

	hub := websocket.NewHub(bus, noteSvc)
	go hub.Run()

	router := gin.Default()
	APIEndpoints(router, &Handlers{
		Session:  handlers.NewSessionHandler(),
		Room:     handlers.NewRoomHandler(roomSvc, memberSvc, hub),
		Message:  handlers.NewMessageHandler(messageSvc),
		File:     handlers.NewFileHandler(fileSvc),
		Note:     handlers.NewNoteHandler(noteSvc),
		Activity: handlers.NewActivityHandler(activitySvc),
		WS:       handlers.NewWebSocketHandler(hub, roomSvc),
	})

	return &Server{
		Router: router,
		Config: cfg,
		Hub:    hub,
		Bus:    bus,
	}
}

func (s *Server) Run() {
	logrus.Infof("Server starting on port %s", s.Config.Port)
	if err := s.Router.Run(":" + s.Config.Port); err != nil {
		logrus.Fatalf("Server run error: %v", err)
	}
}
