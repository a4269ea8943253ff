package validator

import (
	"log"

	"github.com/go-playground/validator/v10"

	"jobportal_backend/internal/models"
)

// registerCustomRules installs the domain validation tags backed by the
// enums in internal/models.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// Startup-time misconfiguration, refuse to run.
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-user-role", validateUserRole)
	mustRegister("is-job-status", validateJobStatus)
	mustRegister("is-application-status", validateApplicationStatus)
	mustRegister("is-interview-type", validateInterviewType)
	mustRegister("is-application-source", validateApplicationSource)
}

func validateUserRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // 'required' handles empty
	}
	switch models.UserRole(value) {
	case models.UserRoleCandidate, models.UserRoleRecruiter, models.UserRoleAdmin:
		return true
	default:
		return false
	}
}

func validateJobStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.JobStatus(value) {
	case models.JobStatusDraft, models.JobStatusActive, models.JobStatusClosed:
		return true
	default:
		return false
	}
}

func validateApplicationStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.ValidApplicationStatus(models.ApplicationStatus(value))
}

func validateInterviewType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.InterviewType(value) {
	case models.InterviewTypePhone, models.InterviewTypeVideo, models.InterviewTypeInPerson:
		return true
	default:
		return false
	}
}

func validateApplicationSource(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.ApplicationSource(value) {
	case models.SourcePortal, models.SourceLinkedIn, models.SourceIndeed,
		models.SourceReferral, models.SourceOther:
		return true
	default:
		return false
	}
}
