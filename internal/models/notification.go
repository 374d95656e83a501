package models

// Notification statuses.
const (
	NotificationUnread = "unread"
	NotificationRead   = "read"
)

// Notification is a message for a user, created when one of their
// memberships changes.
type Notification struct {
	ID        int64  `db:"id"`
	UserID    int64  `db:"user_id"`
	Status    string `db:"status"`
	Content   string `db:"content"`
	CreatedAt int64  `db:"created_at"`
	UpdatedAt int64  `db:"updated_at"`
}
