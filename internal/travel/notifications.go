package travel

import (
	"context"
	"errors"

	"github.com/mmynk/travelbuddy/internal/apperr"
	"github.com/mmynk/travelbuddy/internal/models"
)

// Emit creates an unread notification for a user.
func (s *Service) Emit(ctx context.Context, userID int64, content string) (*models.Notification, error) {
	ts := s.now()
	n := &models.Notification{
		UserID:    userID,
		Status:    models.NotificationUnread,
		Content:   content,
		CreatedAt: ts,
		UpdatedAt: ts,
	}
	if err := s.store.CreateNotification(ctx, n); err != nil {
		return nil, apperr.Unexpected("create notification", err)
	}
	return n, nil
}

// emit is the fire-and-forget form used by membership transitions. A failure
// is logged and never undoes the caller's write.
func (s *Service) emit(ctx context.Context, userID int64, content string) {
	if _, err := s.Emit(ctx, userID, content); err != nil {
		s.logger.Warn("Failed to emit notification", "user_id", userID, "error", err, "cause", errorCause(err))
	}
}

// MarkRead marks a notification as read. Marking it again is a no-op.
func (s *Service) MarkRead(ctx context.Context, notificationID int64) (*models.Notification, error) {
	n, err := s.notificationByID(ctx, notificationID)
	if err != nil {
		return nil, err
	}
	return s.markRead(ctx, n)
}

// MarkReadAs is MarkRead on behalf of userID. Another user's notification
// is reported as not found.
func (s *Service) MarkReadAs(ctx context.Context, userID, notificationID int64) (*models.Notification, error) {
	n, err := s.notificationByID(ctx, notificationID)
	if err != nil {
		return nil, err
	}
	if n.UserID != userID {
		return nil, apperr.NotFound("notification", notificationID)
	}
	return s.markRead(ctx, n)
}

func (s *Service) notificationByID(ctx context.Context, id int64) (*models.Notification, error) {
	n, err := s.store.GetNotification(ctx, id)
	if err != nil {
		return nil, apperr.Unexpected("load notification", err)
	}
	if n == nil {
		return nil, apperr.NotFound("notification", id)
	}
	return n, nil
}

func (s *Service) markRead(ctx context.Context, n *models.Notification) (*models.Notification, error) {
	if n.Status == models.NotificationRead {
		return n, nil
	}

	n.Status = models.NotificationRead
	n.UpdatedAt = s.now()
	if err := s.store.UpdateNotificationStatus(ctx, n.ID, n.Status, n.UpdatedAt); err != nil {
		return nil, apperr.Unexpected("mark notification read", err)
	}
	return n, nil
}

// ListNotifications returns a user's notifications, newest first.
func (s *Service) ListNotifications(ctx context.Context, userID int64) ([]*models.Notification, error) {
	if _, err := s.userByID(ctx, userID); err != nil {
		return nil, err
	}
	list, err := s.store.ListNotificationsByUser(ctx, userID)
	if err != nil {
		return nil, apperr.Unexpected("list notifications", err)
	}
	return list, nil
}

// errorCause returns the underlying cause of an application error, if any.
func errorCause(err error) error {
	var e *apperr.Error
	if errors.As(err, &e) {
		return e.Err
	}
	return nil
}
