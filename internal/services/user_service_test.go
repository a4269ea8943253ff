package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobportal_backend/internal/models"
	"jobportal_backend/internal/services/dto"
)

func TestUpdateProfile(t *testing.T) {
	t.Parallel()
	userRepo := newFakeUserRepo()
	service := NewUserService(userRepo)

	user := &models.User{
		Email: "carl@example.com", Role: models.UserRoleCandidate,
		FirstName: "Carl", LastName: "Candidate", IsActive: true,
	}
	require.NoError(t, userRepo.Create(user))

	first := "Carlos"
	updated, err := service.UpdateProfile(user.ID, &dto.UpdateProfileRequest{FirstName: &first})
	require.NoError(t, err)
	assert.Equal(t, "Carlos", updated.FirstName)
	assert.Equal(t, "Candidate", updated.LastName)

	// Company name is a recruiter-only field.
	company := "Acme"
	_, err = service.UpdateProfile(user.ID, &dto.UpdateProfileRequest{CompanyName: &company})
	require.Error(t, err)
}

func TestUpdateResume_CandidateOnly(t *testing.T) {
	t.Parallel()
	userRepo := newFakeUserRepo()
	service := NewUserService(userRepo)

	candidate := &models.User{Email: "c@example.com", Role: models.UserRoleCandidate, IsActive: true}
	recruiter := &models.User{Email: "r@example.com", Role: models.UserRoleRecruiter, IsActive: true}
	require.NoError(t, userRepo.Create(candidate))
	require.NoError(t, userRepo.Create(recruiter))

	req := &dto.UpdateResumeRequest{URL: "https://cdn.example.com/r.pdf", FileName: "r.pdf"}

	updated, err := service.UpdateResume(candidate.ID, req)
	require.NoError(t, err)
	assert.Equal(t, req.URL, updated.ResumeURL)

	_, err = service.UpdateResume(recruiter.ID, req)
	require.Error(t, err)
}

func TestGetProfile_NotFound(t *testing.T) {
	t.Parallel()
	service := NewUserService(newFakeUserRepo())

	_, err := service.GetProfile("missing")
	require.Error(t, err)
}
