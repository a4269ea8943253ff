package dto

import (
	"time"

	"jobportal_backend/internal/models"
)

type NotificationListQuery struct {
	Unread bool   `form:"unread"`
	Type   string `form:"type"`
	Page   int    `form:"page"`
	Limit  int    `form:"limit"`
}

type NotificationListResponse struct {
	Notifications []models.Notification `json:"notifications"`
	Total         int64                 `json:"total"`
	Page          int                   `json:"page"`
	PageSize      int                   `json:"page_size"`
	TotalPages    int                   `json:"total_pages"`
}

type UnreadCountResponse struct {
	Count int64 `json:"count"`
}

// Event is the payload pushed to a user's realtime channel and queued
// for email rendering.
type Event struct {
	Type          string    `json:"type"`
	RecipientID   string    `json:"-"`
	JobID         string    `json:"job_id,omitempty"`
	JobTitle      string    `json:"job_title,omitempty"`
	CompanyName   string    `json:"company_name,omitempty"`
	ApplicationID string    `json:"application_id,omitempty"`
	CandidateName string    `json:"candidate_name,omitempty"`
	Status        string    `json:"status,omitempty"`
	OccurredAt    time.Time `json:"occurred_at"`
}
