package notify

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jekabolt/lottery-manager/internal/deadline"
	"github.com/jekabolt/lottery-manager/internal/entity"
	gerr "github.com/jekabolt/lottery-manager/internal/errors"
)

const (
	SelectionTitle   = "You’ve been selected!"
	NotSelectedTitle = "Lottery result"

	deadlineLayout = "Jan 2, 2006 15:04 MST"
)

// NotifySelected records a selection notification for every winner of a draw.
// Winners with an e-mail address also get an e-mail queued.
func (n *Notifier) NotifySelected(ctx context.Context, winners []entity.WaitingPoolEntry) error {
	if len(winners) == 0 {
		return nil
	}
	now := n.now()
	ins := make([]entity.NotificationInsert, 0, len(winners))
	for i := range winners {
		w := &winners[i]
		ins = append(ins, entity.NotificationInsert{
			UserId:  w.EntrantId,
			EventId: sql.NullString{String: w.EventId, Valid: true},
			Type:    entity.NotificationSelection,
			Title:   SelectionTitle,
			Message: n.selectionMessage(w, now),
			Email:   emailOf(w),
		})
	}

	if _, err := n.notifications.AddNotifications(ctx, ins); err != nil {
		return gerr.StoreFailure("add selection notifications", err)
	}
	slog.Default().InfoContext(ctx, "selection notifications recorded",
		slog.String("event_id", winners[0].EventId),
		slog.Int("count", len(ins)),
	)
	return nil
}

func (n *Notifier) selectionMessage(w *entity.WaitingPoolEntry, now time.Time) string {
	d, err := deadline.ForEntry(w, n.windowHours)
	if err != nil {
		return fmt.Sprintf("You have been selected for event %s. Open the app to accept or decline.", w.EventId)
	}
	return fmt.Sprintf("You have been selected for event %s. Please accept or decline by %s (%s).",
		w.EventId,
		d.UTC().Format(deadlineLayout),
		deadline.EntryLabel(w, n.windowHours, now),
	)
}

// NotifyNotSelected tells every entrant still waiting in the event after a
// draw that they were not picked. Their entries stay in the waiting pool.
func (n *Notifier) NotifyNotSelected(ctx context.Context, eventId string, winners []entity.WaitingPoolEntry) error {
	if eventId == "" {
		return gerr.InvalidArgument("event id is required")
	}
	picked := make(map[string]struct{}, len(winners))
	for i := range winners {
		picked[winners[i].Id] = struct{}{}
	}

	waiting, err := n.pool.LoadByStatus(ctx, eventId, entity.StatusWaiting)
	if err != nil {
		return gerr.StoreFailure("load waiting entries", err)
	}

	ins := make([]entity.NotificationInsert, 0, len(waiting))
	for i := range waiting {
		if _, ok := picked[waiting[i].Id]; ok {
			continue
		}
		ins = append(ins, entity.NotificationInsert{
			UserId:  waiting[i].EntrantId,
			EventId: sql.NullString{String: eventId, Valid: true},
			Type:    entity.NotificationNotSelected,
			Title:   NotSelectedTitle,
			Message: fmt.Sprintf("You were not selected in the draw for event %s. You remain on the waiting list and may be selected if a spot opens up.", eventId),
			Email:   emailOf(&waiting[i]),
		})
	}
	if len(ins) == 0 {
		return nil
	}

	if _, err := n.notifications.AddNotifications(ctx, ins); err != nil {
		return gerr.StoreFailure("add not selected notifications", err)
	}
	slog.Default().InfoContext(ctx, "not selected notifications recorded",
		slog.String("event_id", eventId),
		slog.Int("count", len(ins)),
	)
	return nil
}

// NotifyEntrants sends an organizer message to every entry of an event in the
// given status and returns how many entrants were notified. An empty status
// addresses every entry of the event.
func (n *Notifier) NotifyEntrants(ctx context.Context, eventId string, status entity.EntryStatus, title string, message string) (int, error) {
	title, message = strings.TrimSpace(title), strings.TrimSpace(message)
	if eventId == "" {
		return 0, gerr.InvalidArgument("event id is required")
	}
	statuses := []entity.EntryStatus{status}
	if status == "" {
		statuses = entity.EntryStatuses
	} else if !status.Valid() {
		return 0, gerr.InvalidArgument("unknown status %q", status)
	}
	if title == "" || message == "" {
		return 0, gerr.InvalidArgument("title and message are required")
	}

	var entries []entity.WaitingPoolEntry
	for _, st := range statuses {
		es, err := n.pool.LoadByStatus(ctx, eventId, st)
		if err != nil {
			return 0, gerr.StoreFailure("load entries", err)
		}
		entries = append(entries, es...)
	}
	if len(entries) == 0 {
		return 0, nil
	}

	ins := make([]entity.NotificationInsert, 0, len(entries))
	for i := range entries {
		ins = append(ins, entity.NotificationInsert{
			UserId:  entries[i].EntrantId,
			EventId: sql.NullString{String: eventId, Valid: true},
			Type:    entity.NotificationOrganizerMessage,
			Title:   title,
			Message: message,
			Email:   emailOf(&entries[i]),
		})
	}
	if _, err := n.notifications.AddNotifications(ctx, ins); err != nil {
		return 0, gerr.StoreFailure("add organizer notifications", err)
	}

	slog.Default().InfoContext(ctx, "organizer message recorded",
		slog.String("event_id", eventId),
		slog.String("status", status.String()),
		slog.Int("count", len(ins)),
	)
	return len(ins), nil
}

// ForUser returns the notifications of a user, newest first.
func (n *Notifier) ForUser(ctx context.Context, userId string) ([]entity.Notification, error) {
	if strings.TrimSpace(userId) == "" {
		return nil, gerr.InvalidArgument("user id is required")
	}
	ns, err := n.notifications.GetNotificationsForUser(ctx, userId)
	if err != nil {
		return nil, gerr.StoreFailure("get notifications", err)
	}
	return ns, nil
}

func (n *Notifier) MarkRead(ctx context.Context, id string) error {
	return gerr.StoreFailure("mark notification read", n.notifications.MarkRead(ctx, id))
}

func emailOf(e *entity.WaitingPoolEntry) sql.NullString {
	if e.EntrantEmail == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: e.EntrantEmail, Valid: true}
}
