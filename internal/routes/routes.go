package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"jobportal_backend/internal/handlers"
	"jobportal_backend/internal/middleware"
	"jobportal_backend/pkg/contextkeys"
	"jobportal_backend/ws"
)

// RegisterRoutes mounts the whole HTTP surface: the REST API under
// /api/v1, the websocket endpoint, and the health check.
func RegisterRoutes(r *gin.Engine, appHandlers *handlers.AppHandlers, wsHandler *ws.Handler) {
	r.GET("/health", healthCheck)

	api := r.Group("/api/v1")
	{
		appHandlers.AuthHandler.RegisterRoutes(api)
		appHandlers.UserHandler.RegisterRoutes(api)
		appHandlers.JobHandler.RegisterRoutes(api)
		appHandlers.ApplicationHandler.RegisterRoutes(api)
		appHandlers.NotificationHandler.RegisterRoutes(api)
	}

	socket := r.Group("/ws")
	socket.Use(middleware.AuthMiddleware())
	{
		socket.GET("", wsHandler.ServeWS)
	}
}

// healthCheck pings the database through the handle DBMiddleware put
// in the context.
func healthCheck(c *gin.Context) {
	dbVal, ok := c.Get(string(contextkeys.DBContextKey))
	if !ok {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "message": "database unavailable"})
		return
	}

	db, ok := dbVal.(*gorm.DB)
	if !ok {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "message": "database unavailable"})
		return
	}

	sqlDB, err := db.DB()
	if err != nil || sqlDB.Ping() != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "message": "database unreachable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
