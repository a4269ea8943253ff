package models

import (
	"time"

	"gorm.io/datatypes"
)

type Job struct {
	BaseModel
	PostedBy    string `gorm:"type:uuid;not null;index" json:"posted_by"`
	Title       string `gorm:"not null" json:"title"`
	Description string `gorm:"not null" json:"description"`

	Requirements     datatypes.JSON `gorm:"type:jsonb" json:"requirements"`     // []string
	Responsibilities datatypes.JSON `gorm:"type:jsonb" json:"responsibilities"` // []string
	Skills           datatypes.JSON `gorm:"type:jsonb" json:"skills"`           // []string
	Benefits         datatypes.JSON `gorm:"type:jsonb" json:"benefits"`         // []string
	Tags             datatypes.JSON `gorm:"type:jsonb" json:"tags"`             // []string

	CompanyName    string `gorm:"not null" json:"company_name"`
	CompanyLogo    string `json:"company_logo,omitempty"`
	CompanyWebsite string `json:"company_website,omitempty"`
	CompanyAbout   string `json:"company_about,omitempty"`

	Location        string `gorm:"type:varchar(20);not null" json:"location"` // remote | onsite | hybrid
	City            string `json:"city,omitempty"`
	State           string `json:"state,omitempty"`
	Country         string `json:"country,omitempty"`
	Address         string `json:"address,omitempty"`
	EmploymentType  string `gorm:"type:varchar(20);not null" json:"employment_type"`
	ExperienceLevel string `gorm:"type:varchar(20);not null" json:"experience_level"`
	Category        string `gorm:"type:varchar(30);not null;index" json:"category"`

	SalaryMin        float64 `json:"salary_min"`
	SalaryMax        float64 `json:"salary_max"`
	SalaryCurrency   string  `gorm:"type:varchar(10);default:'USD'" json:"salary_currency"`
	SalaryPeriod     string  `gorm:"type:varchar(10);default:'yearly'" json:"salary_period"`
	SalaryNegotiable bool    `json:"salary_negotiable"`

	Status              JobStatus  `gorm:"type:varchar(20);default:'active';index" json:"status"`
	ApplicationDeadline *time.Time `gorm:"not null;index" json:"application_deadline"`
	Views               int        `gorm:"default:0" json:"views"`
	ApplicationsCount   int        `gorm:"default:0" json:"applications_count"`
	Featured            bool       `gorm:"default:false;index" json:"featured"`
}

// IsOpen reports whether the job accepts new applications: active
// status and a deadline still in the future.
func (j *Job) IsOpen() bool {
	return j.Status == JobStatusActive &&
		j.ApplicationDeadline != nil &&
		j.ApplicationDeadline.After(time.Now())
}
