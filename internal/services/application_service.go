package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"jobportal_backend/internal/models"
	"jobportal_backend/internal/repositories"
	"jobportal_backend/internal/services/dto"
	"jobportal_backend/pkg/apperrors"
)

type ApplicationService interface {
	Submit(candidateID, jobID string, req *dto.SubmitApplicationRequest) (*models.Application, error)
	Get(id, actorID string, actorRole models.UserRole) (*models.Application, error)
	ListMy(candidateID string, query *dto.ApplicationListQuery) (*dto.ApplicationListResponse, error)
	ListForJob(jobID, actorID string, actorRole models.UserRole, query *dto.ApplicationListQuery) (*dto.ApplicationListResponse, error)

	TransitionStatus(id, actorID string, actorRole models.UserRole, req *dto.TransitionStatusRequest) (*models.Application, error)
	BulkTransition(actorID string, actorRole models.UserRole, req *dto.BulkTransitionRequest) (*dto.BulkTransitionResult, error)

	SaveInterview(id, actorID string, actorRole models.UserRole, req *dto.InterviewRequest) (*models.Application, error)
	AddNote(id, actorID string, actorRole models.UserRole, req *dto.AddNoteRequest) (*models.Application, error)
	Delete(id, actorID string, actorRole models.UserRole) error
}

type ApplicationServiceImpl struct {
	applicationRepo repositories.ApplicationRepository
	jobRepo         repositories.JobRepository
	userRepo        repositories.UserRepository
	dispatcher      *Dispatcher
}

func NewApplicationService(
	applicationRepo repositories.ApplicationRepository,
	jobRepo repositories.JobRepository,
	userRepo repositories.UserRepository,
	dispatcher *Dispatcher,
) ApplicationService {
	return &ApplicationServiceImpl{
		applicationRepo: applicationRepo,
		jobRepo:         jobRepo,
		userRepo:        userRepo,
		dispatcher:      dispatcher,
	}
}

// Submit creates an application in the applied status with its first
// history entry. The job must be open and the candidate must not have
// applied to it before.
func (s *ApplicationServiceImpl) Submit(candidateID, jobID string, req *dto.SubmitApplicationRequest) (*models.Application, error) {
	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("job not found")
		}
		return nil, apperrors.InternalError(err)
	}

	if !job.IsOpen() {
		return nil, apperrors.ErrJobClosed
	}

	candidate, err := s.userRepo.FindByID(candidateID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if candidate.ResumeURL == "" {
		return nil, apperrors.NewBadRequestError("a resume is required before applying")
	}

	if existing, err := s.applicationRepo.FindByJobAndCandidate(jobID, candidateID); err == nil && existing != nil {
		return nil, apperrors.ErrDuplicateApplication
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.InternalError(err)
	}

	source := models.SourcePortal
	if req.Source != "" {
		source = models.ApplicationSource(req.Source)
	}

	now := time.Now()
	app := &models.Application{
		JobID:       jobID,
		CandidateID: candidateID,

		ResumeURL:      candidate.ResumeURL,
		ResumeFileName: candidate.ResumeFileName,
		CoverLetter:    req.CoverLetter,

		Status:       models.ApplicationStatusApplied,
		CurrentStage: models.StageApplication,
		Source:       source,
		AppliedAt:    now,
	}
	entry := &models.ApplicationStatusChange{
		Status:    models.ApplicationStatusApplied,
		ChangedBy: candidateID,
		ChangedAt: now,
	}

	if err := s.applicationRepo.CreateWithHistory(app, entry); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrDuplicateApplication
		}
		return nil, apperrors.InternalError(err)
	}

	if s.dispatcher != nil {
		s.dispatcher.Notify(dto.Event{
			Type:          models.NotificationTypeNewApplication,
			RecipientID:   job.PostedBy,
			JobID:         job.ID,
			JobTitle:      job.Title,
			CompanyName:   job.CompanyName,
			ApplicationID: app.ID,
			CandidateName: candidate.FullName(),
			OccurredAt:    now,
		})
	}

	return app, nil
}

// Get loads an application with its history and notes. Recruiters
// viewing an application update its view tracking.
func (s *ApplicationServiceImpl) Get(id, actorID string, actorRole models.UserRole) (*models.Application, error) {
	app, job, err := s.findWithJob(id)
	if err != nil {
		return nil, err
	}

	if err := authorizeApplicationRead(app, job, actorID, actorRole); err != nil {
		return nil, err
	}

	if actorRole == models.UserRoleRecruiter && job.PostedBy == actorID {
		if err := s.applicationRepo.TouchViewed(id); err != nil {
			return nil, apperrors.InternalError(err)
		}
	}
	return app, nil
}

func (s *ApplicationServiceImpl) ListMy(candidateID string, query *dto.ApplicationListQuery) (*dto.ApplicationListResponse, error) {
	criteria := toApplicationCriteria(query)
	criteria.CandidateID = candidateID
	return s.list(criteria)
}

func (s *ApplicationServiceImpl) ListForJob(jobID, actorID string, actorRole models.UserRole, query *dto.ApplicationListQuery) (*dto.ApplicationListResponse, error) {
	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("job not found")
		}
		return nil, apperrors.InternalError(err)
	}

	if err := authorizeJobOwner(job, actorID, actorRole); err != nil {
		return nil, err
	}

	criteria := toApplicationCriteria(query)
	criteria.JobID = jobID
	return s.list(criteria)
}

func (s *ApplicationServiceImpl) list(criteria repositories.ApplicationCriteria) (*dto.ApplicationListResponse, error) {
	apps, total, err := s.applicationRepo.List(criteria)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	page, pageSize := criteria.Pagination.Normalized()
	return &dto.ApplicationListResponse{
		Applications: apps,
		Total:        total,
		Page:         page,
		PageSize:     pageSize,
		TotalPages:   totalPages(total, pageSize),
	}, nil
}

// TransitionStatus moves an application to a new status and appends
// the history entry atomically. The job owner and admins may set any
// status; the candidate may only withdraw their own application.
func (s *ApplicationServiceImpl) TransitionStatus(id, actorID string, actorRole models.UserRole, req *dto.TransitionStatusRequest) (*models.Application, error) {
	status := models.ApplicationStatus(req.Status)
	if !models.ValidApplicationStatus(status) {
		return nil, apperrors.NewBadRequestError("unknown application status")
	}

	app, job, err := s.findWithJob(id)
	if err != nil {
		return nil, err
	}

	if err := authorizeTransition(app, job, actorID, actorRole, status); err != nil {
		return nil, err
	}

	now := time.Now()
	app.Status = status
	app.CurrentStage = models.StageForStatus(status, app.CurrentStage)

	entry := &models.ApplicationStatusChange{
		ApplicationID: app.ID,
		Status:        status,
		ChangedBy:     actorID,
		ChangedAt:     now,
		Notes:         req.Notes,
	}

	if err := s.applicationRepo.UpdateStatusWithHistory(app, entry); err != nil {
		return nil, apperrors.InternalError(err)
	}
	app.StatusHistory = append(app.StatusHistory, *entry)

	if s.dispatcher != nil {
		s.dispatcher.Notify(dto.Event{
			Type:          models.NotificationTypeStatusUpdate,
			RecipientID:   app.CandidateID,
			JobID:         job.ID,
			JobTitle:      job.Title,
			CompanyName:   job.CompanyName,
			ApplicationID: app.ID,
			Status:        string(status),
			OccurredAt:    now,
		})
	}

	return app, nil
}

// BulkTransition applies one status to many applications. Each id is
// processed independently: failures are collected per id and never
// roll back the others.
func (s *ApplicationServiceImpl) BulkTransition(actorID string, actorRole models.UserRole, req *dto.BulkTransitionRequest) (*dto.BulkTransitionResult, error) {
	status := models.ApplicationStatus(req.Status)
	if !models.ValidApplicationStatus(status) {
		return nil, apperrors.NewBadRequestError("unknown application status")
	}

	result := &dto.BulkTransitionResult{
		Updated: []string{},
		Failed:  map[string]string{},
	}

	transition := &dto.TransitionStatusRequest{Status: req.Status, Notes: req.Notes}
	for _, id := range req.ApplicationIDs {
		if _, err := s.TransitionStatus(id, actorID, actorRole, transition); err != nil {
			result.Failed[id] = transitionFailureReason(err)
			continue
		}
		result.Updated = append(result.Updated, id)
	}

	return result, nil
}

// SaveInterview records or updates the interview details on an
// application. Scheduling does not change the status; that is a
// separate explicit transition.
func (s *ApplicationServiceImpl) SaveInterview(id, actorID string, actorRole models.UserRole, req *dto.InterviewRequest) (*models.Application, error) {
	app, job, err := s.findWithJob(id)
	if err != nil {
		return nil, err
	}

	if err := authorizeJobOwner(job, actorID, actorRole); err != nil {
		return nil, err
	}

	app.InterviewScheduledAt = req.ScheduledAt
	app.InterviewType = models.InterviewType(req.Type)
	app.InterviewLink = req.Link
	app.InterviewLocation = req.Location
	app.InterviewNotes = req.Notes
	app.InterviewFeedback = req.Feedback
	app.InterviewRating = req.Rating

	if err := s.applicationRepo.SaveInterview(app); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return app, nil
}

func (s *ApplicationServiceImpl) AddNote(id, actorID string, actorRole models.UserRole, req *dto.AddNoteRequest) (*models.Application, error) {
	app, job, err := s.findWithJob(id)
	if err != nil {
		return nil, err
	}

	if err := authorizeJobOwner(job, actorID, actorRole); err != nil {
		return nil, err
	}

	note := &models.ApplicationNote{
		ApplicationID: app.ID,
		Content:       req.Content,
		CreatedBy:     actorID,
	}
	if err := s.applicationRepo.AddNote(note); err != nil {
		return nil, apperrors.InternalError(err)
	}
	app.Notes = append(app.Notes, *note)
	return app, nil
}

// Delete removes an application entirely. Admins and the owning
// recruiter may do this; candidates withdraw instead so the audit
// trail survives.
func (s *ApplicationServiceImpl) Delete(id, actorID string, actorRole models.UserRole) error {
	_, job, err := s.findWithJob(id)
	if err != nil {
		return err
	}

	if actorRole != models.UserRoleAdmin && job.PostedBy != actorID {
		return apperrors.ErrInsufficientPermissions
	}

	if err := s.applicationRepo.Delete(id); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *ApplicationServiceImpl) findWithJob(id string) (*models.Application, *models.Job, error) {
	app, err := s.applicationRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, apperrors.ErrApplicationNotFound
		}
		return nil, nil, apperrors.InternalError(err)
	}

	job, err := s.jobRepo.FindByID(app.JobID)
	if err != nil {
		return nil, nil, apperrors.InternalError(err)
	}
	return app, job, nil
}

func authorizeApplicationRead(app *models.Application, job *models.Job, actorID string, actorRole models.UserRole) error {
	if actorRole == models.UserRoleAdmin {
		return nil
	}
	if app.CandidateID == actorID || job.PostedBy == actorID {
		return nil
	}
	return apperrors.ErrInsufficientPermissions
}

// authorizeTransition enforces who may move an application where: the
// job owner and admins anywhere, the candidate only to withdrawn.
func authorizeTransition(app *models.Application, job *models.Job, actorID string, actorRole models.UserRole, status models.ApplicationStatus) error {
	if actorRole == models.UserRoleAdmin || job.PostedBy == actorID {
		return nil
	}
	if app.CandidateID == actorID && status == models.ApplicationStatusWithdrawn {
		return nil
	}
	return apperrors.ErrInsufficientPermissions
}

func transitionFailureReason(err error) string {
	if appErr, ok := apperrors.AsAppError(err); ok {
		return appErr.Message
	}
	return "internal error"
}

func toApplicationCriteria(query *dto.ApplicationListQuery) repositories.ApplicationCriteria {
	return repositories.ApplicationCriteria{
		Pagination: repositories.Pagination{
			Page:     query.Page,
			PageSize: query.Limit,
		},
		Status: models.ApplicationStatus(query.Status),
		Stage:  models.ApplicationStage(query.Stage),
		Sort:   query.Sort,
	}
}
