package server

import (
	"github.com/gin-gonic/gin"
	"github.com/quickshare/rooms/internal/handlers"
	"github.com/quickshare/rooms/internal/middleware"
)

type Handlers struct {
	Session  *handlers.SessionHandler
	Room     *handlers.RoomHandler
	Message  *handlers.MessageHandler
	File     *handlers.FileHandler
	Note     *handlers.NoteHandler
	Activity *handlers.ActivityHandler
	WS       *handlers.WebSocketHandler
}

func APIEndpoints(r *gin.Engine, h *Handlers) {
	// No session header needed: identity minting and link redemption.
	r.POST("/api/session", h.Session.CreateSession)
	r.GET("/api/files/:id/download", h.File.Download)
	r.GET("/api/files/:id/preview", h.File.Preview)
	r.GET("/ws", h.WS.HandleWebSocket)

	api := r.Group("/api", middleware.Session())
	{
		api.POST("/rooms", h.Room.CreateRoom)
		// Lookup lives under /room/:code so the :code segment cannot
		// collide with the :id routes below.
		api.GET("/room/:code", h.Room.GetRoom)
		api.DELETE("/rooms/:id", h.Room.CloseRoom)

		api.POST("/rooms/:id/join", h.Room.JoinRoom)
		api.GET("/rooms/:id/members", h.Room.ListMembers)

		api.POST("/rooms/:id/messages", h.Message.SendMessage)
		api.GET("/rooms/:id/messages", h.Message.ListMessages)

		api.POST("/rooms/:id/files", h.File.UploadFile)
		api.GET("/rooms/:id/files", h.File.ListFiles)
		api.GET("/files/:id/url", h.File.GetDownloadURL)

		api.GET("/rooms/:id/note", h.Note.GetNote)
		api.PUT("/rooms/:id/note", h.Note.UpdateNote)

		api.GET("/rooms/:id/activity", h.Activity.ListActivity)
	}
}
