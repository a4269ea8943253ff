package dto

import (
	"time"

	"jobportal_backend/internal/models"
)

// ---------------- Requests ----------------

type CreateJobRequest struct {
	Title            string   `json:"title" validate:"required,max=200"`
	Description      string   `json:"description" validate:"required,min=50"`
	Requirements     []string `json:"requirements" validate:"required,min=1"`
	Responsibilities []string `json:"responsibilities" validate:"required,min=1"`
	Skills           []string `json:"skills"`
	Benefits         []string `json:"benefits"`
	Tags             []string `json:"tags"`

	CompanyName    string `json:"company_name" validate:"required,max=100"`
	CompanyLogo    string `json:"company_logo" validate:"omitempty,url"`
	CompanyWebsite string `json:"company_website" validate:"omitempty,url"`
	CompanyAbout   string `json:"company_about" validate:"omitempty,max=2000"`

	Location        string `json:"location" validate:"required,oneof=remote onsite hybrid"`
	City            string `json:"city"`
	State           string `json:"state"`
	Country         string `json:"country"`
	Address         string `json:"address"`
	EmploymentType  string `json:"employment_type" validate:"required,oneof=full-time part-time contract internship freelance"`
	ExperienceLevel string `json:"experience_level" validate:"required,oneof=entry mid senior executive"`
	Category        string `json:"category" validate:"required,oneof=technology marketing sales design finance hr operations other"`

	SalaryMin        float64 `json:"salary_min" validate:"required,gt=0"`
	SalaryMax        float64 `json:"salary_max" validate:"required,gtefield=SalaryMin"`
	SalaryCurrency   string  `json:"salary_currency" validate:"omitempty,len=3"`
	SalaryPeriod     string  `json:"salary_period" validate:"omitempty,oneof=hourly monthly yearly"`
	SalaryNegotiable bool    `json:"salary_negotiable"`

	Status              string    `json:"status" validate:"omitempty,is-job-status"`
	ApplicationDeadline time.Time `json:"application_deadline" validate:"required"`
}

type UpdateJobRequest struct {
	Title               *string    `json:"title,omitempty" validate:"omitempty,max=200"`
	Description         *string    `json:"description,omitempty" validate:"omitempty,min=50"`
	Requirements        []string   `json:"requirements,omitempty"`
	Responsibilities    []string   `json:"responsibilities,omitempty"`
	Skills              []string   `json:"skills,omitempty"`
	Benefits            []string   `json:"benefits,omitempty"`
	Tags                []string   `json:"tags,omitempty"`
	Status              *string    `json:"status,omitempty" validate:"omitempty,is-job-status"`
	ApplicationDeadline *time.Time `json:"application_deadline,omitempty"`
	SalaryMin           *float64   `json:"salary_min,omitempty" validate:"omitempty,gt=0"`
	SalaryMax           *float64   `json:"salary_max,omitempty" validate:"omitempty,gt=0"`
	SalaryNegotiable    *bool      `json:"salary_negotiable,omitempty"`
}

type FeatureJobRequest struct {
	Featured bool `json:"featured"`
}

type JobSearchQuery struct {
	Q          string `form:"q"`
	Location   string `form:"location"`
	Remote     string `form:"remote"`
	Experience string `form:"experience" validate:"omitempty,oneof=entry mid senior executive"`
	Type       string `form:"type" validate:"omitempty,oneof=full-time part-time contract internship freelance"`
	Category   string `form:"category"`
	SalaryMin  string `form:"salaryMin"`
	SalaryMax  string `form:"salaryMax"`
	Skills     string `form:"skills"` // comma-separated
	Sort       string `form:"sort"`
	Page       int    `form:"page"`
	Limit      int    `form:"limit"`
}

// ---------------- Responses ----------------

type JobListResponse struct {
	Jobs       []models.Job `json:"jobs"`
	Total      int64        `json:"total"`
	Page       int          `json:"page"`
	PageSize   int          `json:"page_size"`
	TotalPages int          `json:"total_pages"`
}
