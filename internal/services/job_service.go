package services

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"jobportal_backend/internal/models"
	"jobportal_backend/internal/repositories"
	"jobportal_backend/internal/services/dto"
	"jobportal_backend/pkg/apperrors"
)

type JobService interface {
	Create(posterID string, req *dto.CreateJobRequest) (*models.Job, error)
	Get(id string, countView bool) (*models.Job, error)
	Update(id, actorID string, actorRole models.UserRole, req *dto.UpdateJobRequest) (*models.Job, error)
	Delete(id, actorID string, actorRole models.UserRole) error
	List(query *dto.JobSearchQuery) (*dto.JobListResponse, error)
	ListByPoster(posterID string, query *dto.JobSearchQuery) (*dto.JobListResponse, error)
	SetFeatured(id string, featured bool) (*models.Job, error)
	Stats() (*repositories.JobStats, error)
}

type JobServiceImpl struct {
	jobRepo repositories.JobRepository
}

func NewJobService(jobRepo repositories.JobRepository) JobService {
	return &JobServiceImpl{jobRepo: jobRepo}
}

func (s *JobServiceImpl) Create(posterID string, req *dto.CreateJobRequest) (*models.Job, error) {
	status := models.JobStatusActive
	if req.Status != "" {
		status = models.JobStatus(req.Status)
	}

	deadline := req.ApplicationDeadline
	job := &models.Job{
		PostedBy:    posterID,
		Title:       req.Title,
		Description: req.Description,

		Requirements:     toJSONList(req.Requirements),
		Responsibilities: toJSONList(req.Responsibilities),
		Skills:           toJSONList(req.Skills),
		Benefits:         toJSONList(req.Benefits),
		Tags:             toJSONList(req.Tags),

		CompanyName:    req.CompanyName,
		CompanyLogo:    req.CompanyLogo,
		CompanyWebsite: req.CompanyWebsite,
		CompanyAbout:   req.CompanyAbout,

		Location:        req.Location,
		City:            req.City,
		State:           req.State,
		Country:         req.Country,
		Address:         req.Address,
		EmploymentType:  req.EmploymentType,
		ExperienceLevel: req.ExperienceLevel,
		Category:        req.Category,

		SalaryMin:        req.SalaryMin,
		SalaryMax:        req.SalaryMax,
		SalaryCurrency:   req.SalaryCurrency,
		SalaryPeriod:     req.SalaryPeriod,
		SalaryNegotiable: req.SalaryNegotiable,

		Status:              status,
		ApplicationDeadline: &deadline,
	}

	if err := s.jobRepo.Create(job); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return job, nil
}

// Get loads one job; countView increments the view counter for public
// detail reads.
func (s *JobServiceImpl) Get(id string, countView bool) (*models.Job, error) {
	job, err := s.findJob(id)
	if err != nil {
		return nil, err
	}

	if countView {
		if err := s.jobRepo.IncrementViews(id); err != nil {
			return nil, apperrors.InternalError(err)
		}
		job.Views++
	}
	return job, nil
}

func (s *JobServiceImpl) Update(id, actorID string, actorRole models.UserRole, req *dto.UpdateJobRequest) (*models.Job, error) {
	job, err := s.findJob(id)
	if err != nil {
		return nil, err
	}

	if err := authorizeJobOwner(job, actorID, actorRole); err != nil {
		return nil, err
	}

	if req.Title != nil {
		job.Title = *req.Title
	}
	if req.Description != nil {
		job.Description = *req.Description
	}
	if req.Requirements != nil {
		job.Requirements = toJSONList(req.Requirements)
	}
	if req.Responsibilities != nil {
		job.Responsibilities = toJSONList(req.Responsibilities)
	}
	if req.Skills != nil {
		job.Skills = toJSONList(req.Skills)
	}
	if req.Benefits != nil {
		job.Benefits = toJSONList(req.Benefits)
	}
	if req.Tags != nil {
		job.Tags = toJSONList(req.Tags)
	}
	if req.Status != nil {
		status := models.JobStatus(*req.Status)
		if !models.ValidJobStatus(status) {
			return nil, apperrors.ErrInvalidJobStatus
		}
		job.Status = status
	}
	if req.ApplicationDeadline != nil {
		job.ApplicationDeadline = req.ApplicationDeadline
	}
	if req.SalaryMin != nil {
		job.SalaryMin = *req.SalaryMin
	}
	if req.SalaryMax != nil {
		job.SalaryMax = *req.SalaryMax
	}
	if job.SalaryMax < job.SalaryMin {
		return nil, apperrors.NewBadRequestError("salary_max must not be below salary_min")
	}
	if req.SalaryNegotiable != nil {
		job.SalaryNegotiable = *req.SalaryNegotiable
	}

	if err := s.jobRepo.Update(job); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return job, nil
}

func (s *JobServiceImpl) Delete(id, actorID string, actorRole models.UserRole) error {
	job, err := s.findJob(id)
	if err != nil {
		return err
	}

	if err := authorizeJobOwner(job, actorID, actorRole); err != nil {
		return err
	}

	if err := s.jobRepo.Delete(id); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// List serves the public job search. Only active jobs are visible.
func (s *JobServiceImpl) List(query *dto.JobSearchQuery) (*dto.JobListResponse, error) {
	criteria := toJobCriteria(query)
	criteria.Status = models.JobStatusActive
	return s.list(criteria)
}

// ListByPoster serves a recruiter's own dashboard, every status
// included.
func (s *JobServiceImpl) ListByPoster(posterID string, query *dto.JobSearchQuery) (*dto.JobListResponse, error) {
	criteria := toJobCriteria(query)
	criteria.PostedBy = posterID
	return s.list(criteria)
}

func (s *JobServiceImpl) list(criteria repositories.JobCriteria) (*dto.JobListResponse, error) {
	jobs, total, err := s.jobRepo.List(criteria)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	page, pageSize := criteria.Pagination.Normalized()
	return &dto.JobListResponse{
		Jobs:       jobs,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages(total, pageSize),
	}, nil
}

func (s *JobServiceImpl) SetFeatured(id string, featured bool) (*models.Job, error) {
	if err := s.jobRepo.SetFeatured(id, featured); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("job not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return s.findJob(id)
}

func (s *JobServiceImpl) Stats() (*repositories.JobStats, error) {
	stats, err := s.jobRepo.Stats()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return stats, nil
}

func (s *JobServiceImpl) findJob(id string) (*models.Job, error) {
	job, err := s.jobRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("job not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return job, nil
}

// authorizeJobOwner allows the posting recruiter and admins.
func authorizeJobOwner(job *models.Job, actorID string, actorRole models.UserRole) error {
	if actorRole == models.UserRoleAdmin || job.PostedBy == actorID {
		return nil
	}
	return apperrors.ErrInsufficientPermissions
}

func toJobCriteria(query *dto.JobSearchQuery) repositories.JobCriteria {
	criteria := repositories.JobCriteria{
		Pagination: repositories.Pagination{
			Page:     query.Page,
			PageSize: query.Limit,
		},
		Category:        query.Category,
		City:            query.Location,
		EmploymentType:  query.Type,
		ExperienceLevel: query.Experience,
		Search:          query.Q,
		Sort:            query.Sort,
	}

	if query.Remote == "true" {
		criteria.Location = "remote"
	}
	if min, err := strconv.ParseFloat(query.SalaryMin, 64); err == nil {
		criteria.SalaryMin = &min
	}
	if max, err := strconv.ParseFloat(query.SalaryMax, 64); err == nil {
		criteria.SalaryMax = &max
	}
	if query.Skills != "" {
		for _, skill := range strings.Split(query.Skills, ",") {
			if trimmed := strings.TrimSpace(skill); trimmed != "" {
				criteria.Skills = append(criteria.Skills, trimmed)
			}
		}
	}
	return criteria
}

func toJSONList(items []string) datatypes.JSON {
	if items == nil {
		items = []string{}
	}
	data, _ := json.Marshal(items)
	return datatypes.JSON(data)
}

func totalPages(total int64, pageSize int) int {
	if pageSize <= 0 {
		return 0
	}
	pages := int(total) / pageSize
	if int(total)%pageSize != 0 {
		pages++
	}
	return pages
}
