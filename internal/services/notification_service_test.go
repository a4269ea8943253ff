package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobportal_backend/internal/models"
	"jobportal_backend/internal/services/dto"
	"jobportal_backend/pkg/apperrors"
)

func seedNotifications(t *testing.T, repo *fakeNotificationRepo, userID string, n int) []string {
	t.Helper()
	ids := make([]string, 0, n)
	for i := 0; i < n; i++ {
		notification := &models.Notification{
			UserID:  userID,
			Type:    models.NotificationTypeStatusUpdate,
			Title:   "Application status updated",
			Message: "status changed",
		}
		require.NoError(t, repo.Create(notification))
		ids = append(ids, notification.ID)
	}
	return ids
}

func TestNotificationList_And_UnreadCount(t *testing.T) {
	t.Parallel()
	repo := newFakeNotificationRepo()
	service := NewNotificationService(repo)

	seedNotifications(t, repo, "user-1", 3)
	seedNotifications(t, repo, "user-2", 1)

	resp, err := service.List("user-1", &dto.NotificationListQuery{})
	require.NoError(t, err)
	assert.Equal(t, int64(3), resp.Total)

	count, err := service.UnreadCount("user-1")
	require.NoError(t, err)
	assert.Equal(t, int64(3), count.Count)
}

func TestMarkAsRead_OwnershipEnforced(t *testing.T) {
	t.Parallel()
	repo := newFakeNotificationRepo()
	service := NewNotificationService(repo)

	ids := seedNotifications(t, repo, "user-1", 1)

	err := service.MarkAsRead(context.Background(), "user-2", ids[0])
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrInsufficientPermissions))

	require.NoError(t, service.MarkAsRead(context.Background(), "user-1", ids[0]))

	count, err := service.UnreadCount("user-1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), count.Count)
}

func TestMarkAllAsRead(t *testing.T) {
	t.Parallel()
	repo := newFakeNotificationRepo()
	service := NewNotificationService(repo)

	seedNotifications(t, repo, "user-1", 4)
	require.NoError(t, service.MarkAllAsRead(context.Background(), "user-1"))

	count, err := service.UnreadCount("user-1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), count.Count)

	resp, err := service.List("user-1", &dto.NotificationListQuery{Unread: true})
	require.NoError(t, err)
	assert.Equal(t, int64(0), resp.Total)
}

func TestMarkAsRead_NotFound(t *testing.T) {
	t.Parallel()
	service := NewNotificationService(newFakeNotificationRepo())

	err := service.MarkAsRead(context.Background(), "user-1", "missing")
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.HTTPCode)
}
