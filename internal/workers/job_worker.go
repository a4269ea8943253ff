package workers

import (
	"context"
	"time"

	"jobportal_backend/internal/logger"
	"jobportal_backend/internal/repositories"
)

// JobWorker runs background maintenance over the jobs table.
type JobWorker struct {
	jobRepo          repositories.JobRepository
	notificationRepo repositories.NotificationRepository
}

func NewJobWorker(jobRepo repositories.JobRepository, notificationRepo repositories.NotificationRepository) *JobWorker {
	return &JobWorker{
		jobRepo:          jobRepo,
		notificationRepo: notificationRepo,
	}
}

// Start launches the background loops.
func (w *JobWorker) Start(ctx context.Context) {
	go w.autoCloseJobs(ctx)
	go w.cleanOldNotifications(ctx)
}

// autoCloseJobs closes active jobs whose application deadline passed.
// The deadline check in the submit path is authoritative; this keeps
// listings tidy.
func (w *JobWorker) autoCloseJobs(ctx context.Context) {
	ticker := time.NewTicker(1 * time.Hour)
	defer ticker.Stop()

	log := logger.GetLogger()

	for {
		select {
		case <-ctx.Done():
			log.Info("job worker stopped")
			return
		case <-ticker.C:
			closed, err := w.jobRepo.CloseExpired(time.Now())
			if err != nil {
				log.Error("failed to auto-close expired jobs", "error", err)
			} else if closed > 0 {
				log.Info("auto-closed expired jobs", "count", closed)
			}
		}
	}
}

// cleanOldNotifications drops read notifications past the retention
// window.
func (w *JobWorker) cleanOldNotifications(ctx context.Context) {
	const retention = 90 * 24 * time.Hour

	ticker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()

	log := logger.GetLogger()

	for {
		select {
		case <-ctx.Done():
			log.Info("notification cleanup stopped")
			return
		case <-ticker.C:
			removed, err := w.notificationRepo.DeleteOlderThan(time.Now().Add(-retention))
			if err != nil {
				log.Error("failed to clean old notifications", "error", err)
			} else if removed > 0 {
				log.Info("cleaned old notifications", "count", removed)
			}
		}
	}
}
