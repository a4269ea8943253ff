package services

import (
	"fmt"
	"sync"
	"time"

	"gorm.io/gorm"

	"jobportal_backend/internal/models"
	"jobportal_backend/internal/pkg/email"
	"jobportal_backend/internal/repositories"
)

// In-memory repository fakes shared by the service tests.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*models.User
	seq   int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (r *fakeUserRepo) Create(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	if user.ID == "" {
		r.seq++
		user.ID = fmt.Sprintf("user-%d", r.seq)
	}
	user.CreatedAt = time.Now()
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) FindByID(id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) FindByEmail(email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) Update(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) UpdateLastLogin(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	now := time.Now()
	u.LastLogin = &now
	return nil
}

type fakeRefreshTokenRepo struct {
	mu     sync.Mutex
	tokens map[string]*models.RefreshToken
}

func newFakeRefreshTokenRepo() *fakeRefreshTokenRepo {
	return &fakeRefreshTokenRepo{tokens: make(map[string]*models.RefreshToken)}
}

func (r *fakeRefreshTokenRepo) Create(token *models.RefreshToken) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tokens[token.Token] = token
	return nil
}

func (r *fakeRefreshTokenRepo) FindByToken(token string) (*models.RefreshToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if t, ok := r.tokens[token]; ok {
		return t, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeRefreshTokenRepo) Delete(token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.tokens, token)
	return nil
}

func (r *fakeRefreshTokenRepo) DeleteByUser(userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for k, t := range r.tokens {
		if t.UserID == userID {
			delete(r.tokens, k)
		}
	}
	return nil
}

func (r *fakeRefreshTokenRepo) DeleteExpired() error { return nil }

type fakeJobRepo struct {
	mu   sync.Mutex
	jobs map[string]*models.Job
	seq  int
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{jobs: make(map[string]*models.Job)}
}

func (r *fakeJobRepo) Create(job *models.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if job.ID == "" {
		r.seq++
		job.ID = fmt.Sprintf("job-%d", r.seq)
	}
	job.CreatedAt = time.Now()
	r.jobs[job.ID] = job
	return nil
}

func (r *fakeJobRepo) FindByID(id string) (*models.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if j, ok := r.jobs[id]; ok {
		return j, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeJobRepo) Update(job *models.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.jobs[job.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.jobs[job.ID] = job
	return nil
}

func (r *fakeJobRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.jobs, id)
	return nil
}

func (r *fakeJobRepo) List(criteria repositories.JobCriteria) ([]models.Job, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Job
	for _, j := range r.jobs {
		if criteria.Status != "" && j.Status != criteria.Status {
			continue
		}
		if criteria.PostedBy != "" && j.PostedBy != criteria.PostedBy {
			continue
		}
		out = append(out, *j)
	}
	return out, int64(len(out)), nil
}

func (r *fakeJobRepo) IncrementViews(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	j, ok := r.jobs[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	j.Views++
	return nil
}

func (r *fakeJobRepo) SetFeatured(id string, featured bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	j, ok := r.jobs[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	j.Featured = featured
	return nil
}

func (r *fakeJobRepo) CloseExpired(now time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var closed int64
	for _, j := range r.jobs {
		if j.Status == models.JobStatusActive && j.ApplicationDeadline != nil && j.ApplicationDeadline.Before(now) {
			j.Status = models.JobStatusClosed
			closed++
		}
	}
	return closed, nil
}

func (r *fakeJobRepo) Stats() (*repositories.JobStats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return &repositories.JobStats{TotalJobs: int64(len(r.jobs))}, nil
}

type fakeApplicationRepo struct {
	mu      sync.Mutex
	apps    map[string]*models.Application
	history map[string][]models.ApplicationStatusChange
	notes   map[string][]models.ApplicationNote
	seq     int
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{
		apps:    make(map[string]*models.Application),
		history: make(map[string][]models.ApplicationStatusChange),
		notes:   make(map[string][]models.ApplicationNote),
	}
}

func (r *fakeApplicationRepo) CreateWithHistory(app *models.Application, entry *models.ApplicationStatusChange) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.apps {
		if a.JobID == app.JobID && a.CandidateID == app.CandidateID {
			return gorm.ErrDuplicatedKey
		}
	}
	r.seq++
	app.ID = fmt.Sprintf("app-%d", r.seq)
	app.CreatedAt = time.Now()
	entry.ApplicationID = app.ID
	r.apps[app.ID] = app
	r.history[app.ID] = []models.ApplicationStatusChange{*entry}
	return nil
}

func (r *fakeApplicationRepo) FindByID(id string) (*models.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	app, ok := r.apps[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *app
	copied.StatusHistory = append([]models.ApplicationStatusChange(nil), r.history[id]...)
	copied.Notes = append([]models.ApplicationNote(nil), r.notes[id]...)
	return &copied, nil
}

func (r *fakeApplicationRepo) FindByJobAndCandidate(jobID, candidateID string) (*models.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.apps {
		if a.JobID == jobID && a.CandidateID == candidateID {
			return a, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeApplicationRepo) List(criteria repositories.ApplicationCriteria) ([]models.Application, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Application
	for _, a := range r.apps {
		if criteria.JobID != "" && a.JobID != criteria.JobID {
			continue
		}
		if criteria.CandidateID != "" && a.CandidateID != criteria.CandidateID {
			continue
		}
		if criteria.Status != "" && a.Status != criteria.Status {
			continue
		}
		if criteria.Stage != "" && a.CurrentStage != criteria.Stage {
			continue
		}
		out = append(out, *a)
	}
	return out, int64(len(out)), nil
}

func (r *fakeApplicationRepo) UpdateStatusWithHistory(app *models.Application, entry *models.ApplicationStatusChange) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.apps[app.ID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	stored.Status = app.Status
	stored.CurrentStage = app.CurrentStage
	r.history[app.ID] = append(r.history[app.ID], *entry)
	return nil
}

func (r *fakeApplicationRepo) SaveInterview(app *models.Application) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.apps[app.ID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	stored.InterviewScheduledAt = app.InterviewScheduledAt
	stored.InterviewType = app.InterviewType
	stored.InterviewLink = app.InterviewLink
	stored.InterviewLocation = app.InterviewLocation
	stored.InterviewNotes = app.InterviewNotes
	stored.InterviewFeedback = app.InterviewFeedback
	stored.InterviewRating = app.InterviewRating
	return nil
}

func (r *fakeApplicationRepo) AddNote(note *models.ApplicationNote) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.apps[note.ApplicationID]; !ok {
		return gorm.ErrRecordNotFound
	}
	note.ID = fmt.Sprintf("note-%d", len(r.notes[note.ApplicationID])+1)
	note.CreatedAt = time.Now()
	r.notes[note.ApplicationID] = append(r.notes[note.ApplicationID], *note)
	return nil
}

func (r *fakeApplicationRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.apps, id)
	delete(r.history, id)
	delete(r.notes, id)
	return nil
}

func (r *fakeApplicationRepo) TouchViewed(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	app, ok := r.apps[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	now := time.Now()
	app.LastViewedAt = &now
	app.ViewCount++
	return nil
}

type fakeNotificationRepo struct {
	mu            sync.Mutex
	notifications []*models.Notification
	createErr     error
	seq           int
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{}
}

func (r *fakeNotificationRepo) Create(n *models.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	r.seq++
	n.ID = fmt.Sprintf("notif-%d", r.seq)
	n.CreatedAt = time.Now()
	r.notifications = append(r.notifications, n)
	return nil
}

func (r *fakeNotificationRepo) FindByID(id string) (*models.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, n := range r.notifications {
		if n.ID == id {
			return n, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeNotificationRepo) ListByUser(userID string, criteria repositories.NotificationCriteria) ([]models.Notification, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Notification
	for _, n := range r.notifications {
		if n.UserID != userID {
			continue
		}
		if criteria.UnreadOnly && n.IsRead {
			continue
		}
		if criteria.Type != "" && n.Type != criteria.Type {
			continue
		}
		out = append(out, *n)
	}
	return out, int64(len(out)), nil
}

func (r *fakeNotificationRepo) MarkAsRead(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, n := range r.notifications {
		if n.ID == id {
			now := time.Now()
			n.IsRead = true
			n.ReadAt = &now
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeNotificationRepo) MarkAllAsRead(userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	for _, n := range r.notifications {
		if n.UserID == userID && !n.IsRead {
			n.IsRead = true
			n.ReadAt = &now
		}
	}
	return nil
}

func (r *fakeNotificationRepo) UnreadCount(userID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for _, n := range r.notifications {
		if n.UserID == userID && !n.IsRead {
			count++
		}
	}
	return count, nil
}

func (r *fakeNotificationRepo) DeleteOlderThan(cutoff time.Time) (int64, error) {
	return 0, nil
}

func (r *fakeNotificationRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.notifications)
}

// fakeBroadcaster records pushed messages per user.
type fakeBroadcaster struct {
	mu       sync.Mutex
	messages map[string][]any
}

func newFakeBroadcaster() *fakeBroadcaster {
	return &fakeBroadcaster{messages: make(map[string][]any)}
}

func (b *fakeBroadcaster) SendToUser(userID string, message any) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.messages[userID] = append(b.messages[userID], message)
}

func (b *fakeBroadcaster) sent(userID string) []any {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]any(nil), b.messages[userID]...)
}

// fakeEmailSender records delivered emails and can fail on demand.
type fakeEmailSender struct {
	mu      sync.Mutex
	sent    []string
	sendErr error
}

func (s *fakeEmailSender) record(kind string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sendErr != nil {
		return s.sendErr
	}
	s.sent = append(s.sent, kind)
	return nil
}

func (s *fakeEmailSender) Send(*email.Email) error { return s.record("raw") }

func (s *fakeEmailSender) SendTemplate(to []string, subject, name string, data interface{}) error {
	return s.record("template:" + name)
}

func (s *fakeEmailSender) SendWelcome(to, name, role string) error {
	return s.record("welcome")
}

func (s *fakeEmailSender) SendNewApplication(to, recruiterName, candidateName, jobTitle string) error {
	return s.record("new_application")
}

func (s *fakeEmailSender) SendApplicationStatus(to, candidateName, jobTitle, companyName, status string) error {
	return s.record("application_status")
}

func (s *fakeEmailSender) delivered() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.sent...)
}
