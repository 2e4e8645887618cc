package entities

import "time"

// NotificationType is the kind of interaction that produced a notification
type NotificationType string

const (
	NotificationComment NotificationType = "comment"
	NotificationReview  NotificationType = "review"
)

// Notification informs a user that someone interacted with their bench or comment
type Notification struct {
	ID         string           `json:"id" db:"id"`
	UserID     string           `json:"user_id" db:"user_id"`
	Type       NotificationType `json:"type" db:"type"`
	BenchID    string           `json:"bench_id" db:"bench_id"`
	FromUserID *string          `json:"from_user_id" db:"from_user_id"`
	CommentID  *string          `json:"comment_id" db:"comment_id"`
	CreatedAt  time.Time        `json:"created_at" db:"created_at"`
	ReadAt     *time.Time       `json:"read_at" db:"read_at"`

	BenchTitle   *string `json:"bench_title" db:"-"`
	FromUserName *string `json:"from_user_name" db:"-"`
}
