package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestJobIsOpen(t *testing.T) {
	t.Parallel()

	future := time.Now().Add(24 * time.Hour)
	past := time.Now().Add(-24 * time.Hour)

	tests := []struct {
		name     string
		status   JobStatus
		deadline *time.Time
		want     bool
	}{
		{"active with future deadline", JobStatusActive, &future, true},
		{"active with past deadline", JobStatusActive, &past, false},
		{"active without deadline", JobStatusActive, nil, false},
		{"draft with future deadline", JobStatusDraft, &future, false},
		{"closed with future deadline", JobStatusClosed, &future, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			job := &Job{Status: tt.status, ApplicationDeadline: tt.deadline}
			assert.Equal(t, tt.want, job.IsOpen())
		})
	}
}

func TestValidJobStatus(t *testing.T) {
	t.Parallel()

	assert.True(t, ValidJobStatus(JobStatusDraft))
	assert.True(t, ValidJobStatus(JobStatusActive))
	assert.True(t, ValidJobStatus(JobStatusClosed))
	assert.False(t, ValidJobStatus("archived"))
	assert.False(t, ValidJobStatus(""))
}
