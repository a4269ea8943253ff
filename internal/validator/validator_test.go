package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobportal_backend/internal/services/dto"
)

func TestRegisterRequestValidation(t *testing.T) {
	t.Parallel()
	v := New()

	valid := dto.RegisterRequest{
		Email:     "carl@example.com",
		Password:  "sup3r-secret",
		Role:      "candidate",
		FirstName: "Carl",
		LastName:  "Candidate",
	}
	assert.NoError(t, v.Validate(valid))

	invalid := valid
	invalid.Email = "not-an-email"
	invalid.Role = "superuser"

	err := v.Validate(invalid)
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	// Field names come from the JSON tags.
	assert.Contains(t, vErr.Errors, "email")
	assert.Contains(t, vErr.Errors, "role")
}

func TestTransitionStatusValidation(t *testing.T) {
	t.Parallel()
	v := New()

	assert.NoError(t, v.Validate(dto.TransitionStatusRequest{Status: "shortlisted"}))
	assert.Error(t, v.Validate(dto.TransitionStatusRequest{Status: "promoted"}))
	assert.Error(t, v.Validate(dto.TransitionStatusRequest{}))
}

func TestBulkTransitionValidation(t *testing.T) {
	t.Parallel()
	v := New()

	valid := dto.BulkTransitionRequest{
		ApplicationIDs: []string{"0f8fad5b-d9cb-469f-a165-70867728950e"},
		Status:         "rejected",
	}
	assert.NoError(t, v.Validate(valid))

	assert.Error(t, v.Validate(dto.BulkTransitionRequest{Status: "rejected"}))
	assert.Error(t, v.Validate(dto.BulkTransitionRequest{
		ApplicationIDs: []string{"not-a-uuid"},
		Status:         "rejected",
	}))
}

func TestInterviewTypeValidation(t *testing.T) {
	t.Parallel()
	v := New()

	type req struct {
		Type string `json:"type" validate:"omitempty,is-interview-type"`
	}

	assert.NoError(t, v.Validate(req{Type: "video"}))
	assert.NoError(t, v.Validate(req{}))
	assert.Error(t, v.Validate(req{Type: "carrier-pigeon"}))
}
