package models

import "time"

// Application is a candidate's submission for a job. The (JobID,
// CandidateID) pair is unique; only the application service mutates
// Status and the history.
type Application struct {
	BaseModel
	JobID       string `gorm:"type:uuid;not null;uniqueIndex:idx_job_candidate;index:idx_app_job_status" json:"job_id"`
	CandidateID string `gorm:"type:uuid;not null;uniqueIndex:idx_job_candidate;index:idx_app_candidate_status" json:"candidate_id"`

	ResumeURL      string `gorm:"not null" json:"resume_url"`
	ResumeFileName string `json:"resume_file_name,omitempty"`
	CoverLetter    string `gorm:"type:text" json:"cover_letter,omitempty"`

	Status       ApplicationStatus `gorm:"type:varchar(20);default:'applied';index:idx_app_job_status;index:idx_app_candidate_status" json:"status"`
	CurrentStage ApplicationStage  `gorm:"type:varchar(20);default:'application'" json:"current_stage"`
	Source       ApplicationSource `gorm:"type:varchar(20);default:'portal'" json:"source"`
	AppliedAt    time.Time         `gorm:"default:now();index" json:"applied_at"`

	// Interview sub-record, set by AddInterview/UpdateInterview.
	InterviewScheduledAt *time.Time    `json:"interview_scheduled_at,omitempty"`
	InterviewType        InterviewType `gorm:"type:varchar(20)" json:"interview_type,omitempty"`
	InterviewLink        string        `json:"interview_link,omitempty"`
	InterviewLocation    string        `json:"interview_location,omitempty"`
	InterviewNotes       string        `json:"interview_notes,omitempty"`
	InterviewFeedback    string        `json:"interview_feedback,omitempty"`
	InterviewRating      *int          `json:"interview_rating,omitempty"` // 1..5

	FeedbackGeneral       string `gorm:"type:text" json:"feedback_general,omitempty"`
	FeedbackInternalNotes string `gorm:"type:text" json:"-"`

	CandidateRating *int `json:"candidate_rating,omitempty"` // 1..5
	RecruiterRating *int `json:"recruiter_rating,omitempty"` // 1..5

	LastViewedAt *time.Time `json:"last_viewed_at,omitempty"`
	ViewCount    int        `gorm:"default:0" json:"view_count"`

	StatusHistory []ApplicationStatusChange `gorm:"foreignKey:ApplicationID;constraint:OnDelete:CASCADE" json:"status_history,omitempty"`
	Notes         []ApplicationNote         `gorm:"foreignKey:ApplicationID;constraint:OnDelete:CASCADE" json:"notes,omitempty"`
}

// ApplicationStatusChange is one append-only audit entry. The last
// entry's status always equals the application's Status field.
type ApplicationStatusChange struct {
	ID            string            `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	ApplicationID string            `gorm:"type:uuid;not null;index" json:"application_id"`
	Status        ApplicationStatus `gorm:"type:varchar(20);not null" json:"status"`
	ChangedBy     string            `gorm:"type:uuid;not null" json:"changed_by"`
	ChangedAt     time.Time         `gorm:"default:now()" json:"changed_at"`
	Notes         string            `json:"notes,omitempty"`
}

type ApplicationNote struct {
	ID            string    `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	ApplicationID string    `gorm:"type:uuid;not null;index" json:"application_id"`
	Content       string    `gorm:"type:text;not null" json:"content"`
	CreatedBy     string    `gorm:"type:uuid;not null" json:"created_by"`
	CreatedAt     time.Time `gorm:"default:now()" json:"created_at"`
}

// StageForStatus projects a status onto the coarser UI stage. Rejected
// and withdrawn keep the stage the application was in; selected moves
// to offer, and a repeated selected transition confirms the hire.
func StageForStatus(status ApplicationStatus, current ApplicationStage) ApplicationStage {
	switch status {
	case ApplicationStatusApplied:
		return StageApplication
	case ApplicationStatusUnderReview, ApplicationStatusShortlisted:
		return StageScreening
	case ApplicationStatusInterviewing:
		return StageInterview
	case ApplicationStatusSelected:
		if current == StageOffer || current == StageHired {
			return StageHired
		}
		return StageOffer
	default: // rejected, withdrawn
		return current
	}
}
