package repositories

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"jobportal_backend/internal/models"
)

// JobCriteria is the filter/sort/page specification for job listings,
// translated into a store query.
type JobCriteria struct {
	Pagination
	Status          models.JobStatus
	Category        string
	Location        string // remote | onsite | hybrid
	City            string
	EmploymentType  string
	ExperienceLevel string
	SalaryMin       *float64
	SalaryMax       *float64
	Skills          []string
	Search          string // matches title, description, company name
	Featured        *bool
	PostedBy        string
	Sort            string // e.g. "-created_at", "salary_min"
}

// JobStats is the admin aggregate view over the jobs collection.
type JobStats struct {
	TotalJobs      int64            `json:"total_jobs"`
	JobsByStatus   map[string]int64 `json:"jobs_by_status"`
	JobsByCategory map[string]int64 `json:"jobs_by_category"`
	AvgSalaryMin   float64          `json:"avg_salary_min"`
	AvgSalaryMax   float64          `json:"avg_salary_max"`
}

type JobRepository interface {
	Create(job *models.Job) error
	FindByID(id string) (*models.Job, error)
	Update(job *models.Job) error
	Delete(id string) error
	List(criteria JobCriteria) ([]models.Job, int64, error)
	IncrementViews(id string) error
	SetFeatured(id string, featured bool) error
	CloseExpired(now time.Time) (int64, error)
	Stats() (*JobStats, error)
}

type jobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &jobRepository{db: db}
}

func (r *jobRepository) Create(job *models.Job) error {
	return r.db.Create(job).Error
}

func (r *jobRepository) FindByID(id string) (*models.Job, error) {
	var job models.Job
	if err := r.db.First(&job, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *jobRepository) Update(job *models.Job) error {
	return r.db.Save(job).Error
}

func (r *jobRepository) Delete(id string) error {
	return r.db.Delete(&models.Job{}, "id = ?", id).Error
}

var jobSortColumns = map[string]string{
	"created_at":           "created_at",
	"application_deadline": "application_deadline",
	"salary_min":           "salary_min",
	"salary_max":           "salary_max",
	"views":                "views",
	"title":                "title",
}

func (r *jobRepository) List(criteria JobCriteria) ([]models.Job, int64, error) {
	query := r.db.Model(&models.Job{})

	if criteria.Status != "" {
		query = query.Where("status = ?", criteria.Status)
	}
	if criteria.Category != "" {
		query = query.Where("category = ?", criteria.Category)
	}
	if criteria.Location != "" {
		query = query.Where("location = ?", criteria.Location)
	}
	if criteria.City != "" {
		query = query.Where("city ILIKE ?", "%"+criteria.City+"%")
	}
	if criteria.EmploymentType != "" {
		query = query.Where("employment_type = ?", criteria.EmploymentType)
	}
	if criteria.ExperienceLevel != "" {
		query = query.Where("experience_level = ?", criteria.ExperienceLevel)
	}
	if criteria.SalaryMin != nil {
		query = query.Where("salary_min >= ?", *criteria.SalaryMin)
	}
	if criteria.SalaryMax != nil {
		query = query.Where("salary_max <= ?", *criteria.SalaryMax)
	}
	if criteria.Featured != nil {
		query = query.Where("featured = ?", *criteria.Featured)
	}
	if criteria.PostedBy != "" {
		query = query.Where("posted_by = ?", criteria.PostedBy)
	}
	if criteria.Search != "" {
		like := "%" + criteria.Search + "%"
		query = query.Where("title ILIKE ? OR description ILIKE ? OR company_name ILIKE ?", like, like, like)
	}
	for _, skill := range criteria.Skills {
		// skills is a JSONB array of strings
		query = query.Where("skills::text ILIKE ?", "%"+skill+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var jobs []models.Job
	err := query.
		Scopes(orderBy(criteria.Sort, jobSortColumns, "created_at DESC"), paginate(criteria.Pagination)).
		Find(&jobs).Error
	if err != nil {
		return nil, 0, err
	}

	return jobs, total, nil
}

func (r *jobRepository) IncrementViews(id string) error {
	return r.db.Model(&models.Job{}).Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1")).Error
}

func (r *jobRepository) SetFeatured(id string, featured bool) error {
	result := r.db.Model(&models.Job{}).Where("id = ?", id).
		Update("featured", featured)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CloseExpired flips active jobs whose deadline has passed to closed.
// Used by the background worker to keep the stored status consistent
// with IsOpen over time.
func (r *jobRepository) CloseExpired(now time.Time) (int64, error) {
	result := r.db.Model(&models.Job{}).
		Where("status = ? AND application_deadline < ?", models.JobStatusActive, now).
		Update("status", models.JobStatusClosed)
	return result.RowsAffected, result.Error
}

func (r *jobRepository) Stats() (*JobStats, error) {
	stats := &JobStats{
		JobsByStatus:   make(map[string]int64),
		JobsByCategory: make(map[string]int64),
	}

	if err := r.db.Model(&models.Job{}).Count(&stats.TotalJobs).Error; err != nil {
		return nil, err
	}

	type bucket struct {
		Key   string
		Count int64
	}

	var byStatus []bucket
	if err := r.db.Model(&models.Job{}).
		Select("status AS key, COUNT(*) AS count").
		Group("status").Scan(&byStatus).Error; err != nil {
		return nil, err
	}
	for _, b := range byStatus {
		stats.JobsByStatus[b.Key] = b.Count
	}

	var byCategory []bucket
	if err := r.db.Model(&models.Job{}).
		Select("category AS key, COUNT(*) AS count").
		Group("category").Scan(&byCategory).Error; err != nil {
		return nil, err
	}
	for _, b := range byCategory {
		stats.JobsByCategory[b.Key] = b.Count
	}

	var salary struct {
		AvgMin float64
		AvgMax float64
	}
	err := r.db.Model(&models.Job{}).
		Select("COALESCE(AVG(salary_min), 0) AS avg_min, COALESCE(AVG(salary_max), 0) AS avg_max").
		Scan(&salary).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate salaries: %w", err)
	}
	stats.AvgSalaryMin = salary.AvgMin
	stats.AvgSalaryMax = salary.AvgMax

	return stats, nil
}
