package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobportal_backend/internal/models"
	"jobportal_backend/internal/services/dto"
	"jobportal_backend/pkg/apperrors"
)

func createJobRequest() *dto.CreateJobRequest {
	return &dto.CreateJobRequest{
		Title:               "Backend Engineer",
		Description:         "Build and operate the job portal backend services in Go.",
		Requirements:        []string{"Go", "PostgreSQL"},
		Responsibilities:    []string{"Own backend services"},
		Skills:              []string{"go", "sql"},
		CompanyName:         "Acme",
		Location:            "remote",
		EmploymentType:      "full-time",
		ExperienceLevel:     "senior",
		Category:            "technology",
		SalaryMin:           90000,
		SalaryMax:           140000,
		ApplicationDeadline: time.Now().Add(30 * 24 * time.Hour),
	}
}

func TestCreateJob(t *testing.T) {
	t.Parallel()
	service := NewJobService(newFakeJobRepo())

	job, err := service.Create("recruiter-1", createJobRequest())
	require.NoError(t, err)

	assert.Equal(t, models.JobStatusActive, job.Status)
	assert.Equal(t, "recruiter-1", job.PostedBy)
	assert.True(t, job.IsOpen())
	assert.JSONEq(t, `["Go","PostgreSQL"]`, string(job.Requirements))
}

func TestUpdateJob_OwnerOnly(t *testing.T) {
	t.Parallel()
	service := NewJobService(newFakeJobRepo())

	job, err := service.Create("recruiter-1", createJobRequest())
	require.NoError(t, err)

	newTitle := "Staff Backend Engineer"
	_, err = service.Update(job.ID, "someone-else", models.UserRoleRecruiter,
		&dto.UpdateJobRequest{Title: &newTitle})
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrInsufficientPermissions))

	updated, err := service.Update(job.ID, "recruiter-1", models.UserRoleRecruiter,
		&dto.UpdateJobRequest{Title: &newTitle})
	require.NoError(t, err)
	assert.Equal(t, newTitle, updated.Title)

	// Admins can edit anyone's posting.
	other := "Principal Backend Engineer"
	updated, err = service.Update(job.ID, "admin-1", models.UserRoleAdmin,
		&dto.UpdateJobRequest{Title: &other})
	require.NoError(t, err)
	assert.Equal(t, other, updated.Title)
}

func TestUpdateJob_SalaryRangeChecked(t *testing.T) {
	t.Parallel()
	service := NewJobService(newFakeJobRepo())

	job, err := service.Create("recruiter-1", createJobRequest())
	require.NoError(t, err)

	low := 10000.0
	_, err = service.Update(job.ID, "recruiter-1", models.UserRoleRecruiter,
		&dto.UpdateJobRequest{SalaryMax: &low})
	require.Error(t, err)
}

func TestGetJob_CountsView(t *testing.T) {
	t.Parallel()
	service := NewJobService(newFakeJobRepo())

	job, err := service.Create("recruiter-1", createJobRequest())
	require.NoError(t, err)

	got, err := service.Get(job.ID, true)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Views)

	got, err = service.Get(job.ID, false)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Views)
}

func TestSetFeatured_NotFound(t *testing.T) {
	t.Parallel()
	service := NewJobService(newFakeJobRepo())

	_, err := service.SetFeatured("missing", true)
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.HTTPCode)
}

func TestDeleteJob(t *testing.T) {
	t.Parallel()
	service := NewJobService(newFakeJobRepo())

	job, err := service.Create("recruiter-1", createJobRequest())
	require.NoError(t, err)

	require.Error(t, service.Delete(job.ID, "other", models.UserRoleRecruiter))
	require.NoError(t, service.Delete(job.ID, "recruiter-1", models.UserRoleRecruiter))

	_, err = service.Get(job.ID, false)
	require.Error(t, err)
}
