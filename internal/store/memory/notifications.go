package memory

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/jekabolt/lottery-manager/internal/entity"
	gerr "github.com/jekabolt/lottery-manager/internal/errors"
)

func (s *Store) AddNotifications(ctx context.Context, ns []entity.NotificationInsert) ([]entity.Notification, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now().Round(0)
	out := make([]entity.Notification, 0, len(ns))
	for _, n := range ns {
		rec := &entity.Notification{
			Id:        uuid.New().String(),
			UserId:    n.UserId,
			EventId:   n.EventId,
			Type:      n.Type,
			Title:     n.Title,
			Message:   n.Message,
			Email:     n.Email,
			CreatedAt: now,
		}
		s.notifications[rec.Id] = rec
		out = append(out, *rec)
	}
	return out, nil
}

func (s *Store) GetNotificationsForUser(ctx context.Context, userId string) ([]entity.Notification, error) {
	return s.listNotifications(ctx, func(n *entity.Notification) bool {
		return n.UserId == userId
	}, 0, true)
}

func (s *Store) MarkRead(ctx context.Context, id string) error {
	return s.updateNotification(ctx, id, func(n *entity.Notification) {
		n.Read = true
	})
}

func (s *Store) GetUnsentEmails(ctx context.Context, limit int) ([]entity.Notification, error) {
	return s.listNotifications(ctx, func(n *entity.Notification) bool {
		return n.Email.Valid && !n.EmailSentAt.Valid
	}, limit, false)
}

func (s *Store) MarkEmailSent(ctx context.Context, id string, sentAt time.Time) error {
	return s.updateNotification(ctx, id, func(n *entity.Notification) {
		n.EmailSentAt = sql.NullTime{Time: sentAt, Valid: true}
		n.EmailError = sql.NullString{}
	})
}

func (s *Store) AddEmailError(ctx context.Context, id string, errMsg string) error {
	return s.updateNotification(ctx, id, func(n *entity.Notification) {
		n.EmailError = sql.NullString{String: errMsg, Valid: true}
	})
}

func (s *Store) updateNotification(ctx context.Context, id string, fn func(*entity.Notification)) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	n, ok := s.notifications[id]
	if !ok {
		return fmt.Errorf("%w: %s", gerr.ErrNotificationNotFound, id)
	}
	fn(n)
	return nil
}

func (s *Store) listNotifications(ctx context.Context, match func(*entity.Notification) bool, limit int, newestFirst bool) ([]entity.Notification, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entity.Notification, 0)
	for _, n := range s.notifications {
		if match(n) {
			out = append(out, *n)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].Id < out[j].Id
		}
		if newestFirst {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
