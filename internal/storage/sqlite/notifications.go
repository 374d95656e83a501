package sqlite

import (
	"context"
	"fmt"

	"github.com/mmynk/travelbuddy/internal/models"
)

// CreateNotification persists a new notification.
func (s *SQLiteStore) CreateNotification(ctx context.Context, n *models.Notification) error {
	n.CreatedAt = now(n.CreatedAt)
	n.UpdatedAt = now(n.UpdatedAt)
	if n.Status == "" {
		n.Status = models.NotificationUnread
	}

	res, err := s.db.NamedExecContext(ctx,
		`INSERT INTO notifications (user_id, status, content, created_at, updated_at)
		 VALUES (:user_id, :status, :content, :created_at, :updated_at)`,
		n,
	)
	if err != nil {
		return insertError("notification", err)
	}
	if n.ID, err = res.LastInsertId(); err != nil {
		return fmt.Errorf("failed to read notification id: %w", err)
	}
	return nil
}

// GetNotification retrieves a notification by ID.
func (s *SQLiteStore) GetNotification(ctx context.Context, id int64) (*models.Notification, error) {
	n := &models.Notification{}
	err := s.db.GetContext(ctx, n,
		"SELECT id, user_id, status, content, created_at, updated_at FROM notifications WHERE id = ?",
		id,
	)
	if noRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get notification: %w", err)
	}
	return n, nil
}

// ListNotificationsByUser returns a user's notifications, newest first.
func (s *SQLiteStore) ListNotificationsByUser(ctx context.Context, userID int64) ([]*models.Notification, error) {
	var notifications []*models.Notification
	err := s.db.SelectContext(ctx, &notifications,
		`SELECT id, user_id, status, content, created_at, updated_at
		 FROM notifications WHERE user_id = ? ORDER BY created_at DESC, id DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return notifications, nil
}

// UpdateNotificationStatus overwrites the status of a notification.
func (s *SQLiteStore) UpdateNotificationStatus(ctx context.Context, id int64, status string, updatedAt int64) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE notifications SET status = ?, updated_at = ? WHERE id = ?",
		status, now(updatedAt), id,
	)
	if err != nil {
		return fmt.Errorf("failed to update notification: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("notification not found: %d", id)
	}
	return nil
}
