package models

type UserRole string
type JobStatus string
type ApplicationStatus string
type ApplicationStage string
type InterviewType string
type ApplicationSource string

const (
	UserRoleCandidate UserRole = "candidate"
	UserRoleRecruiter UserRole = "recruiter"
	UserRoleAdmin     UserRole = "admin"

	JobStatusDraft  JobStatus = "draft"
	JobStatusActive JobStatus = "active"
	JobStatusClosed JobStatus = "closed"

	ApplicationStatusApplied      ApplicationStatus = "applied"
	ApplicationStatusUnderReview  ApplicationStatus = "under_review"
	ApplicationStatusShortlisted  ApplicationStatus = "shortlisted"
	ApplicationStatusInterviewing ApplicationStatus = "interviewing"
	ApplicationStatusRejected     ApplicationStatus = "rejected"
	ApplicationStatusWithdrawn    ApplicationStatus = "withdrawn"
	ApplicationStatusSelected     ApplicationStatus = "selected"

	StageApplication ApplicationStage = "application"
	StageScreening   ApplicationStage = "screening"
	StageInterview   ApplicationStage = "interview"
	StageOffer       ApplicationStage = "offer"
	StageHired       ApplicationStage = "hired"

	InterviewTypePhone    InterviewType = "phone"
	InterviewTypeVideo    InterviewType = "video"
	InterviewTypeInPerson InterviewType = "in_person"

	SourcePortal   ApplicationSource = "portal"
	SourceLinkedIn ApplicationSource = "linkedin"
	SourceIndeed   ApplicationSource = "indeed"
	SourceReferral ApplicationSource = "referral"
	SourceOther    ApplicationSource = "other"
)

// ValidJobStatus reports whether s is a member of the job status enum.
func ValidJobStatus(s JobStatus) bool {
	switch s {
	case JobStatusDraft, JobStatusActive, JobStatusClosed:
		return true
	}
	return false
}

// ValidApplicationStatus reports whether s is a member of the status
// enum. The enum is the only restriction on transitions: any
// status->status edge is permitted.
func ValidApplicationStatus(s ApplicationStatus) bool {
	switch s {
	case ApplicationStatusApplied, ApplicationStatusUnderReview,
		ApplicationStatusShortlisted, ApplicationStatusInterviewing,
		ApplicationStatusRejected, ApplicationStatusWithdrawn,
		ApplicationStatusSelected:
		return true
	}
	return false
}

// TerminalApplicationStatus reports whether s ends the workflow.
func TerminalApplicationStatus(s ApplicationStatus) bool {
	return s == ApplicationStatusRejected || s == ApplicationStatusWithdrawn
}
