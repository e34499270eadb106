package entity

import (
	"database/sql"
	"time"
)

// NotificationType classifies in-app notifications.
type NotificationType string

const (
	NotificationSelection        NotificationType = "selection"
	NotificationNotSelected      NotificationType = "not_selected"
	NotificationOrganizerMessage NotificationType = "organizer_message"
)

// Notification represents the notification table
type Notification struct {
	Id          string           `db:"id"`
	UserId      string           `db:"user_id"`
	EventId     sql.NullString   `db:"event_id"`
	Type        NotificationType `db:"type"`
	Title       string           `db:"title"`
	Message     string           `db:"message"`
	Email       sql.NullString   `db:"email"`
	Read        bool             `db:"is_read"`
	CreatedAt   time.Time        `db:"created_at"`
	EmailSentAt sql.NullTime     `db:"email_sent_at"`
	EmailError  sql.NullString   `db:"email_error"`
}

// NotificationInsert is a notification to be recorded. Email is set when the
// notification should also be delivered by e-mail.
type NotificationInsert struct {
	UserId  string           `valid:"required"`
	EventId sql.NullString   `valid:"-"`
	Type    NotificationType `valid:"required"`
	Title   string           `valid:"required"`
	Message string           `valid:"required"`
	Email   sql.NullString   `valid:"-"`
}
