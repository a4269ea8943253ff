package models

import (
	"time"

	"gorm.io/datatypes"
)

// Notification event types pushed over the realtime channel and
// persisted for the notification list.
const (
	NotificationTypeNewApplication = "newApplication"
	NotificationTypeStatusUpdate   = "applicationStatusUpdate"
	NotificationTypeWelcome        = "welcome"
)

type Notification struct {
	BaseModel
	UserID  string         `gorm:"type:uuid;not null;index" json:"user_id"`
	Type    string         `gorm:"not null" json:"type"`
	Title   string         `gorm:"not null" json:"title"`
	Message string         `json:"message"`
	Data    datatypes.JSON `gorm:"type:jsonb" json:"data,omitempty"` // {"job_id": "...", "application_id": "..."}
	IsRead  bool           `gorm:"default:false" json:"is_read"`
	ReadAt  *time.Time     `json:"read_at,omitempty"`
}
