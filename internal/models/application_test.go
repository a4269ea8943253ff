package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStageForStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		status  ApplicationStatus
		current ApplicationStage
		want    ApplicationStage
	}{
		{"applied maps to application", ApplicationStatusApplied, StageApplication, StageApplication},
		{"under_review maps to screening", ApplicationStatusUnderReview, StageApplication, StageScreening},
		{"shortlisted maps to screening", ApplicationStatusShortlisted, StageScreening, StageScreening},
		{"interviewing maps to interview", ApplicationStatusInterviewing, StageScreening, StageInterview},
		{"selected moves to offer", ApplicationStatusSelected, StageInterview, StageOffer},
		{"selected again confirms hire", ApplicationStatusSelected, StageOffer, StageHired},
		{"selected stays hired", ApplicationStatusSelected, StageHired, StageHired},
		{"rejected keeps current stage", ApplicationStatusRejected, StageInterview, StageInterview},
		{"withdrawn keeps current stage", ApplicationStatusWithdrawn, StageScreening, StageScreening},
		{"rejected at application stage", ApplicationStatusRejected, StageApplication, StageApplication},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StageForStatus(tt.status, tt.current))
		})
	}
}

func TestValidApplicationStatus(t *testing.T) {
	t.Parallel()

	valid := []ApplicationStatus{
		ApplicationStatusApplied, ApplicationStatusUnderReview,
		ApplicationStatusShortlisted, ApplicationStatusInterviewing,
		ApplicationStatusRejected, ApplicationStatusWithdrawn,
		ApplicationStatusSelected,
	}
	for _, s := range valid {
		assert.True(t, ValidApplicationStatus(s), "status %q should be valid", s)
	}

	assert.False(t, ValidApplicationStatus("hired"))
	assert.False(t, ValidApplicationStatus(""))
	assert.False(t, ValidApplicationStatus("APPLIED"))
}

func TestTerminalApplicationStatus(t *testing.T) {
	t.Parallel()

	assert.True(t, TerminalApplicationStatus(ApplicationStatusRejected))
	assert.True(t, TerminalApplicationStatus(ApplicationStatusWithdrawn))
	assert.False(t, TerminalApplicationStatus(ApplicationStatusSelected))
	assert.False(t, TerminalApplicationStatus(ApplicationStatusApplied))
}
