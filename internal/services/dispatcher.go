package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"

	"jobportal_backend/internal/logger"
	"jobportal_backend/internal/models"
	"jobportal_backend/internal/pkg/email"
	"jobportal_backend/internal/repositories"
	"jobportal_backend/internal/services/dto"
)

// Broadcaster pushes a payload to every open connection of a user.
// The websocket manager implements it; tests substitute fakes.
type Broadcaster interface {
	SendToUser(userID string, message any)
}

// realtimePush is the envelope sent over the websocket.
type realtimePush struct {
	Type string    `json:"type"`
	Data dto.Event `json:"data"`
}

// Dispatcher delivers notifications: it persists a row, pushes over
// the websocket, and sends an email. Producers never block and never
// see delivery errors.
type Dispatcher struct {
	events chan dto.Event

	notificationRepo repositories.NotificationRepository
	userRepo         repositories.UserRepository
	broadcaster      Broadcaster
	emailSender      email.Sender
}

func NewDispatcher(
	queueSize int,
	notificationRepo repositories.NotificationRepository,
	userRepo repositories.UserRepository,
	broadcaster Broadcaster,
	emailSender email.Sender,
) *Dispatcher {
	if queueSize <= 0 {
		queueSize = 256
	}
	return &Dispatcher{
		events:           make(chan dto.Event, queueSize),
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
		broadcaster:      broadcaster,
		emailSender:      emailSender,
	}
}

// Notify enqueues an event without blocking the caller. When the queue
// is full the event is dropped and logged; business operations are
// never held up by notification delivery.
func (d *Dispatcher) Notify(event dto.Event) {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now()
	}

	select {
	case d.events <- event:
	default:
		logger.GetLogger().Warn("notification queue full, dropping event",
			"type", event.Type, "recipient_id", event.RecipientID)
	}
}

// Run consumes the queue until the context is cancelled. Call it in
// its own goroutine.
func (d *Dispatcher) Run(ctx context.Context) {
	log := logger.GetLogger()
	log.Info("notification dispatcher started", "queue_cap", cap(d.events))

	for {
		select {
		case <-ctx.Done():
			log.Info("notification dispatcher stopped")
			return
		case event := <-d.events:
			d.process(event)
		}
	}
}

// process fans one event out to all channels. Every failure is logged
// and swallowed: a missed email must not take the push down with it.
func (d *Dispatcher) process(event dto.Event) {
	log := logger.GetLogger()

	notification, err := d.buildNotification(event)
	if err != nil {
		log.Error("failed to build notification", "type", event.Type, "error", err)
		return
	}

	if err := d.notificationRepo.Create(notification); err != nil {
		log.Error("failed to persist notification",
			"type", event.Type, "recipient_id", event.RecipientID, "error", err)
	}

	if d.broadcaster != nil {
		d.broadcaster.SendToUser(event.RecipientID, realtimePush{
			Type: event.Type,
			Data: event,
		})
	}

	if err := d.sendEmail(event); err != nil {
		log.Warn("failed to send notification email",
			"type", event.Type, "recipient_id", event.RecipientID, "error", err)
	}
}

func (d *Dispatcher) buildNotification(event dto.Event) (*models.Notification, error) {
	var title, message string

	switch event.Type {
	case models.NotificationTypeNewApplication:
		title = "New application received"
		message = fmt.Sprintf("%s applied for %s", event.CandidateName, event.JobTitle)
	case models.NotificationTypeStatusUpdate:
		title = "Application status updated"
		message = fmt.Sprintf("Your application for %s at %s is now %s",
			event.JobTitle, event.CompanyName, event.Status)
	case models.NotificationTypeWelcome:
		title = "Welcome to Job Portal"
		message = "Your account has been created"
	default:
		return nil, fmt.Errorf("unknown notification type %q", event.Type)
	}

	data, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal event data: %w", err)
	}

	return &models.Notification{
		UserID:  event.RecipientID,
		Type:    event.Type,
		Title:   title,
		Message: message,
		Data:    datatypes.JSON(data),
	}, nil
}

func (d *Dispatcher) sendEmail(event dto.Event) error {
	recipient, err := d.userRepo.FindByID(event.RecipientID)
	if err != nil {
		return fmt.Errorf("failed to load recipient: %w", err)
	}

	switch event.Type {
	case models.NotificationTypeNewApplication:
		return d.emailSender.SendNewApplication(
			recipient.Email, recipient.FullName(), event.CandidateName, event.JobTitle)
	case models.NotificationTypeStatusUpdate:
		return d.emailSender.SendApplicationStatus(
			recipient.Email, recipient.FullName(), event.JobTitle, event.CompanyName, event.Status)
	case models.NotificationTypeWelcome:
		return d.emailSender.SendWelcome(recipient.Email, recipient.FullName(), string(recipient.Role))
	}
	return nil
}
