package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"jobportal_backend/internal/repositories"
	"jobportal_backend/internal/services/dto"
	"jobportal_backend/pkg/apperrors"
)

type NotificationService interface {
	List(userID string, query *dto.NotificationListQuery) (*dto.NotificationListResponse, error)
	UnreadCount(userID string) (*dto.UnreadCountResponse, error)
	MarkAsRead(ctx context.Context, userID, notificationID string) error
	MarkAllAsRead(ctx context.Context, userID string) error
}

type NotificationServiceImpl struct {
	notificationRepo repositories.NotificationRepository
}

func NewNotificationService(notificationRepo repositories.NotificationRepository) NotificationService {
	return &NotificationServiceImpl{notificationRepo: notificationRepo}
}

func (s *NotificationServiceImpl) List(userID string, query *dto.NotificationListQuery) (*dto.NotificationListResponse, error) {
	criteria := repositories.NotificationCriteria{
		Pagination: repositories.Pagination{
			Page:     query.Page,
			PageSize: query.Limit,
		},
		UnreadOnly: query.Unread,
		Type:       query.Type,
	}

	notifications, total, err := s.notificationRepo.ListByUser(userID, criteria)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	page, pageSize := criteria.Pagination.Normalized()
	return &dto.NotificationListResponse{
		Notifications: notifications,
		Total:         total,
		Page:          page,
		PageSize:      pageSize,
		TotalPages:    totalPages(total, pageSize),
	}, nil
}

func (s *NotificationServiceImpl) UnreadCount(userID string) (*dto.UnreadCountResponse, error) {
	count, err := s.notificationRepo.UnreadCount(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.UnreadCountResponse{Count: count}, nil
}

// MarkAsRead only touches notifications owned by the caller.
func (s *NotificationServiceImpl) MarkAsRead(ctx context.Context, userID, notificationID string) error {
	notification, err := s.notificationRepo.FindByID(notificationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewNotFoundError("notification not found")
		}
		return apperrors.InternalError(err)
	}

	if notification.UserID != userID {
		return apperrors.ErrInsufficientPermissions
	}

	if err := s.notificationRepo.MarkAsRead(notificationID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *NotificationServiceImpl) MarkAllAsRead(ctx context.Context, userID string) error {
	if err := s.notificationRepo.MarkAllAsRead(userID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}
