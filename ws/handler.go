package ws

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"jobportal_backend/internal/logger"
	"jobportal_backend/internal/middleware"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Browser clients connect from the frontend origin; token auth
		// already gates the upgrade.
		return true
	},
}

type Handler struct {
	manager       *Manager
	notifications NotificationMarker
}

func NewHandler(manager *Manager, notifications NotificationMarker) *Handler {
	return &Handler{
		manager:       manager,
		notifications: notifications,
	}
}

// ServeWS upgrades an authenticated request to a websocket connection
// and registers it with the manager.
func (h *Handler) ServeWS(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "authentication required"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.GetLogger().Warn("websocket upgrade failed", "error", err)
		return
	}

	client := &Client{
		UserID:        userID,
		Conn:          conn,
		Send:          make(chan any, 256),
		Ctx:           c.Request.Context(),
		manager:       h.manager,
		notifications: h.notifications,
	}

	h.manager.register <- client

	go client.readPump()
	go client.writePump()
}
