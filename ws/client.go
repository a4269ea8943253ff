package ws

import (
	"context"
	"encoding/json"

	"github.com/gorilla/websocket"

	"jobportal_backend/internal/logger"
)

// NotificationMarker is the slice of the notification service the
// socket needs for inbound mark_read actions.
type NotificationMarker interface {
	MarkAsRead(ctx context.Context, userID, notificationID string) error
	MarkAllAsRead(ctx context.Context, userID string) error
}

// IncomingMessage is the envelope clients send over the socket.
type IncomingMessage struct {
	Action string          `json:"action"`
	Data   json.RawMessage `json:"data"`
}

// PushMessage is the envelope the server sends to clients.
type PushMessage struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

type Client struct {
	UserID string
	Conn   *websocket.Conn
	Send   chan any
	Ctx    context.Context

	manager       *Manager
	notifications NotificationMarker
}

func (c *Client) readPump() {
	defer func() {
		c.manager.unregister <- c
		c.Conn.Close()
	}()

	log := logger.GetLogger()

	for {
		_, msgBytes, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Debug("websocket read error", "user_id", c.UserID, "error", err)
			}
			break
		}

		var msg IncomingMessage
		if err := json.Unmarshal(msgBytes, &msg); err != nil {
			log.Debug("failed to parse websocket message", "user_id", c.UserID, "error", err)
			continue
		}

		c.handleMessage(msg)
	}
}

func (c *Client) writePump() {
	for msg := range c.Send {
		if err := c.Conn.WriteJSON(msg); err != nil {
			logger.GetLogger().Debug("websocket write error", "user_id", c.UserID, "error", err)
			break
		}
	}
}

func (c *Client) handleMessage(msg IncomingMessage) {
	log := logger.GetLogger()

	switch msg.Action {

	case "mark_read":
		var payload struct {
			NotificationID string `json:"notificationId"`
		}
		if err := json.Unmarshal(msg.Data, &payload); err != nil {
			log.Debug("invalid mark_read payload", "user_id", c.UserID, "error", err)
			return
		}
		if err := c.notifications.MarkAsRead(c.Ctx, c.UserID, payload.NotificationID); err != nil {
			log.Debug("failed to mark notification as read", "user_id", c.UserID, "error", err)
		}

	case "mark_all_read":
		if err := c.notifications.MarkAllAsRead(c.Ctx, c.UserID); err != nil {
			log.Debug("failed to mark notifications as read", "user_id", c.UserID, "error", err)
		}

	default:
		log.Debug("unhandled websocket action", "action", msg.Action, "user_id", c.UserID)
	}
}
