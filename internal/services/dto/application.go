package dto

import (
	"time"

	"jobportal_backend/internal/models"
)

// ---------------- Requests ----------------

type SubmitApplicationRequest struct {
	CoverLetter string `json:"cover_letter" validate:"omitempty,max=2000"`
	Source      string `json:"source" validate:"omitempty,is-application-source"`
}

type TransitionStatusRequest struct {
	Status string `json:"status" validate:"required,is-application-status"`
	Notes  string `json:"notes" validate:"omitempty,max=1000"`
}

type InterviewRequest struct {
	ScheduledAt *time.Time `json:"scheduled_at" validate:"required"`
	Type        string     `json:"type" validate:"required,is-interview-type"`
	Link        string     `json:"link" validate:"omitempty,url"`
	Location    string     `json:"location" validate:"omitempty,max=255"`
	Notes       string     `json:"notes" validate:"omitempty,max=1000"`
	Feedback    string     `json:"feedback" validate:"omitempty,max=2000"`
	Rating      *int       `json:"rating" validate:"omitempty,min=1,max=5"`
}

type AddNoteRequest struct {
	Content string `json:"content" validate:"required,max=2000"`
}

type BulkTransitionRequest struct {
	ApplicationIDs []string `json:"applicationIds" validate:"required,min=1,dive,uuid"`
	Status         string   `json:"status" validate:"required,is-application-status"`
	Notes          string   `json:"notes" validate:"omitempty,max=1000"`
}

type ApplicationListQuery struct {
	Status string `form:"status" validate:"omitempty,is-application-status"`
	Stage  string `form:"stage"`
	Sort   string `form:"sort"`
	Page   int    `form:"page"`
	Limit  int    `form:"limit"`
}

// ---------------- Responses ----------------

type ApplicationListResponse struct {
	Applications []models.Application `json:"applications"`
	Total        int64                `json:"total"`
	Page         int                  `json:"page"`
	PageSize     int                  `json:"page_size"`
	TotalPages   int                  `json:"total_pages"`
}

// BulkTransitionResult reports per-id outcomes: failures are collected,
// successes commit independently.
type BulkTransitionResult struct {
	Updated []string          `json:"updated"`
	Failed  map[string]string `json:"failed,omitempty"` // id -> reason
}
