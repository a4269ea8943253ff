package handlers

import (
	"jobportal_backend/internal/services"
	"jobportal_backend/internal/validator"
)

// AppHandlers holds every HTTP handler in the application.
type AppHandlers struct {
	AuthHandler         *AuthHandler
	UserHandler         *UserHandler
	JobHandler          *JobHandler
	ApplicationHandler  *ApplicationHandler
	NotificationHandler *NotificationHandler
}

func NewAppHandlers(container *services.ServiceContainer, v *validator.Validator) *AppHandlers {
	base := NewBaseHandler(v)

	return &AppHandlers{
		AuthHandler:         NewAuthHandler(base, container.AuthService),
		UserHandler:         NewUserHandler(base, container.UserService),
		JobHandler:          NewJobHandler(base, container.JobService),
		ApplicationHandler:  NewApplicationHandler(base, container.ApplicationService),
		NotificationHandler: NewNotificationHandler(base, container.NotificationService),
	}
}
