package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jekabolt/lottery-manager/internal/dependency"
	"github.com/jekabolt/lottery-manager/internal/entity"
	gerr "github.com/jekabolt/lottery-manager/internal/errors"
)

type notificationStore struct {
	*MYSQLStore
}

// Notifications returns an object implementing notifications interface
func (ms *MYSQLStore) Notifications() dependency.Notifications {
	return &notificationStore{
		MYSQLStore: ms,
	}
}

// AddNotifications inserts all notifications in one transaction.
func (ms *notificationStore) AddNotifications(ctx context.Context, ns []entity.NotificationInsert) ([]entity.Notification, error) {
	out := make([]entity.Notification, 0, len(ns))
	if len(ns) == 0 {
		return out, nil
	}
	err := ms.Tx(ctx, func(ctx context.Context, rep dependency.Repository) error {
		out = out[:0]
		now := rep.Now()
		query := `
		INSERT INTO notification
			(id, user_id, event_id, type, title, message, email, is_read, created_at)
		VALUES
			(:id, :userId, :eventId, :type, :title, :message, :email, false, :createdAt)
		`
		for _, n := range ns {
			rec := entity.Notification{
				Id:        uuid.New().String(),
				UserId:    n.UserId,
				EventId:   n.EventId,
				Type:      n.Type,
				Title:     n.Title,
				Message:   n.Message,
				Email:     n.Email,
				CreatedAt: now,
			}
			err := ExecNamed(ctx, rep.DB(), query, map[string]any{
				"id":        rec.Id,
				"userId":    rec.UserId,
				"eventId":   rec.EventId,
				"type":      rec.Type,
				"title":     rec.Title,
				"message":   rec.Message,
				"email":     rec.Email,
				"createdAt": rec.CreatedAt,
			})
			if err != nil {
				return fmt.Errorf("failed to add notification: %w", err)
			}
			out = append(out, rec)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (ms *notificationStore) GetNotificationsForUser(ctx context.Context, userId string) ([]entity.Notification, error) {
	query := `SELECT * FROM notification WHERE user_id = :userId ORDER BY created_at DESC, id DESC`
	ns, err := QueryListNamed[entity.Notification](ctx, ms.DB(), query, map[string]any{
		"userId": userId,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get notifications: %w", err)
	}
	return ns, nil
}

func (ms *notificationStore) MarkRead(ctx context.Context, id string) error {
	return ms.updateNotification(ctx, `UPDATE notification SET is_read = true WHERE id = :id`, map[string]any{
		"id": id,
	})
}

// GetUnsentEmails returns notifications with an e-mail address that has not
// been delivered yet, oldest first. Previously failed deliveries are included.
func (ms *notificationStore) GetUnsentEmails(ctx context.Context, limit int) ([]entity.Notification, error) {
	query := `SELECT * FROM notification WHERE email IS NOT NULL AND email_sent_at IS NULL ORDER BY created_at, id LIMIT :limit`
	ns, err := QueryListNamed[entity.Notification](ctx, ms.DB(), query, map[string]any{
		"limit": limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get unsent emails: %w", err)
	}
	return ns, nil
}

func (ms *notificationStore) MarkEmailSent(ctx context.Context, id string, sentAt time.Time) error {
	return ms.updateNotification(ctx, `UPDATE notification SET email_sent_at = :sentAt, email_error = NULL WHERE id = :id`, map[string]any{
		"id":     id,
		"sentAt": sql.NullTime{Time: sentAt, Valid: true},
	})
}

func (ms *notificationStore) AddEmailError(ctx context.Context, id string, errMsg string) error {
	return ms.updateNotification(ctx, `UPDATE notification SET email_error = :err WHERE id = :id`, map[string]any{
		"id":  id,
		"err": errMsg,
	})
}

// updateNotification runs a single row update. MySQL reports zero affected
// rows for an update that changes nothing, so existence is checked separately.
func (ms *notificationStore) updateNotification(ctx context.Context, query string, params map[string]any) error {
	n, err := ExecNamedAffected(ctx, ms.DB(), query, params)
	if err != nil {
		return fmt.Errorf("failed to update notification: %w", err)
	}
	if n > 0 {
		return nil
	}
	count, err := QueryCountNamed(ctx, ms.DB(), `SELECT COUNT(*) FROM notification WHERE id = :id`, map[string]any{
		"id": params["id"],
	})
	if err != nil {
		return fmt.Errorf("failed to check notification: %w", err)
	}
	if count == 0 {
		return fmt.Errorf("%w: %v", gerr.ErrNotificationNotFound, params["id"])
	}
	return nil
}
