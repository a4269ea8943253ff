package repositories

import (
	"time"

	"gorm.io/gorm"

	"jobportal_backend/internal/models"
)

// ApplicationCriteria is the filter/sort/page specification for
// application listings.
type ApplicationCriteria struct {
	Pagination
	JobID       string
	CandidateID string
	Status      models.ApplicationStatus
	Stage       models.ApplicationStage
	Sort        string
}

type ApplicationRepository interface {
	// CreateWithHistory persists the application, its first history
	// entry, and the job counter increment in one transaction.
	CreateWithHistory(app *models.Application, entry *models.ApplicationStatusChange) error

	FindByID(id string) (*models.Application, error)
	FindByJobAndCandidate(jobID, candidateID string) (*models.Application, error)
	List(criteria ApplicationCriteria) ([]models.Application, int64, error)

	// UpdateStatusWithHistory sets status/stage and appends the history
	// entry atomically: either both happen or neither.
	UpdateStatusWithHistory(app *models.Application, entry *models.ApplicationStatusChange) error

	SaveInterview(app *models.Application) error
	AddNote(note *models.ApplicationNote) error
	Delete(id string) error
	TouchViewed(id string) error
}

type applicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

func (r *applicationRepository) CreateWithHistory(app *models.Application, entry *models.ApplicationStatusChange) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(app).Error; err != nil {
			return err
		}

		entry.ApplicationID = app.ID
		if err := tx.Create(entry).Error; err != nil {
			return err
		}

		return tx.Model(&models.Job{}).Where("id = ?", app.JobID).
			UpdateColumn("applications_count", gorm.Expr("applications_count + 1")).Error
	})
}

func (r *applicationRepository) FindByID(id string) (*models.Application, error) {
	var app models.Application
	err := r.db.
		Preload("StatusHistory", func(db *gorm.DB) *gorm.DB {
			return db.Order("changed_at ASC")
		}).
		Preload("Notes", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		First(&app, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &app, nil
}

func (r *applicationRepository) FindByJobAndCandidate(jobID, candidateID string) (*models.Application, error) {
	var app models.Application
	err := r.db.First(&app, "job_id = ? AND candidate_id = ?", jobID, candidateID).Error
	if err != nil {
		return nil, err
	}
	return &app, nil
}

var applicationSortColumns = map[string]string{
	"applied_at": "applied_at",
	"status":     "status",
	"updated_at": "updated_at",
}

func (r *applicationRepository) List(criteria ApplicationCriteria) ([]models.Application, int64, error) {
	query := r.db.Model(&models.Application{})

	if criteria.JobID != "" {
		query = query.Where("job_id = ?", criteria.JobID)
	}
	if criteria.CandidateID != "" {
		query = query.Where("candidate_id = ?", criteria.CandidateID)
	}
	if criteria.Status != "" {
		query = query.Where("status = ?", criteria.Status)
	}
	if criteria.Stage != "" {
		query = query.Where("current_stage = ?", criteria.Stage)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var apps []models.Application
	err := query.
		Scopes(orderBy(criteria.Sort, applicationSortColumns, "applied_at DESC"), paginate(criteria.Pagination)).
		Find(&apps).Error
	if err != nil {
		return nil, 0, err
	}

	return apps, total, nil
}

func (r *applicationRepository) UpdateStatusWithHistory(app *models.Application, entry *models.ApplicationStatusChange) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&models.Application{}).Where("id = ?", app.ID).
			Updates(map[string]interface{}{
				"status":        app.Status,
				"current_stage": app.CurrentStage,
			}).Error
		if err != nil {
			return err
		}

		entry.ApplicationID = app.ID
		return tx.Create(entry).Error
	})
}

func (r *applicationRepository) SaveInterview(app *models.Application) error {
	return r.db.Model(&models.Application{}).Where("id = ?", app.ID).
		Updates(map[string]interface{}{
			"interview_scheduled_at": app.InterviewScheduledAt,
			"interview_type":         app.InterviewType,
			"interview_link":         app.InterviewLink,
			"interview_location":     app.InterviewLocation,
			"interview_notes":        app.InterviewNotes,
			"interview_feedback":     app.InterviewFeedback,
			"interview_rating":       app.InterviewRating,
		}).Error
}

func (r *applicationRepository) AddNote(note *models.ApplicationNote) error {
	return r.db.Create(note).Error
}

func (r *applicationRepository) Delete(id string) error {
	// History and notes go with it via ON DELETE CASCADE.
	return r.db.Delete(&models.Application{}, "id = ?", id).Error
}

func (r *applicationRepository) TouchViewed(id string) error {
	now := time.Now()
	return r.db.Model(&models.Application{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"last_viewed_at": &now,
			"view_count":     gorm.Expr("view_count + 1"),
		}).Error
}
