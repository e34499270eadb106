// Package lifecycle defines the legal status transitions of a waiting pool entry.
package lifecycle

import (
	"database/sql"
	"strings"
	"time"

	"github.com/jekabolt/lottery-manager/internal/entity"
	gerr "github.com/jekabolt/lottery-manager/internal/errors"
)

// Action is an operation that moves an entry between statuses.
type Action string

const (
	ActionDraw    Action = "draw"
	ActionCancel  Action = "cancel"
	ActionAccept  Action = "accept"
	ActionDecline Action = "decline"
	ActionExpire  Action = "expire"
	ActionEnroll  Action = "enroll"
)

type edge struct {
	from entity.EntryStatus
	to   entity.EntryStatus
}

var table = map[Action]edge{
	ActionDraw:    {from: entity.StatusWaiting, to: entity.StatusSelected},
	ActionCancel:  {from: entity.StatusWaiting, to: entity.StatusCancelled},
	ActionAccept:  {from: entity.StatusSelected, to: entity.StatusAccepted},
	ActionDecline: {from: entity.StatusSelected, to: entity.StatusDeclined},
	ActionExpire:  {from: entity.StatusSelected, to: entity.StatusDeclined},
	ActionEnroll:  {from: entity.StatusAccepted, to: entity.StatusEnrolled},
}

// ParseAction converts an action label into an Action.
func ParseAction(s string) (Action, bool) {
	a := Action(strings.ToLower(strings.TrimSpace(s)))
	_, ok := table[a]
	return a, ok
}

// Source returns the only status an action may be applied to.
func Source(a Action) (entity.EntryStatus, bool) {
	e, ok := table[a]
	return e.from, ok
}

// Target returns the status reached by applying a to an entry in from.
func Target(from entity.EntryStatus, a Action) (entity.EntryStatus, error) {
	e, ok := table[a]
	if !ok {
		return "", gerr.InvalidArgument("unknown action %q", a)
	}
	if e.from != from {
		return "", gerr.InvalidTransition("cannot %s an entry that is %s", a, from)
	}
	return e.to, nil
}

// Allowed reports whether a may be applied to an entry in from.
func Allowed(from entity.EntryStatus, a Action) bool {
	_, err := Target(from, a)
	return err == nil
}

// Params carries the inputs some actions need.
type Params struct {
	Now time.Time
	// ResponseWindowHours is stamped by ActionDraw.
	ResponseWindowHours int
	// Reason is required by ActionDecline.
	Reason string
}

// Transition validates a against the entry's current status and returns the
// update that performs it. The entry itself is left unchanged.
func Transition(e *entity.WaitingPoolEntry, a Action, p Params) (entity.EntryUpdate, error) {
	to, err := Target(e.Status, a)
	if err != nil {
		return entity.EntryUpdate{}, err
	}
	return update(a, to, p)
}

// DrawUpdate returns the update applied to every winner of a draw.
func DrawUpdate(now time.Time, windowHours int) (entity.EntryUpdate, error) {
	return update(ActionDraw, entity.StatusSelected, Params{Now: now, ResponseWindowHours: windowHours})
}

func update(a Action, to entity.EntryStatus, p Params) (entity.EntryUpdate, error) {
	if p.Now.IsZero() {
		return entity.EntryUpdate{}, gerr.InvalidArgument("transition time is required")
	}
	now := p.Now.Round(0)
	upd := entity.EntryUpdate{
		Status:    to,
		UpdatedAt: now,
	}

	switch a {
	case ActionDraw:
		if p.ResponseWindowHours < 0 {
			return entity.EntryUpdate{}, gerr.InvalidArgument("response window cannot be negative: %d", p.ResponseWindowHours)
		}
		if p.ResponseWindowHours > entity.MaxResponseWindowHours {
			return entity.EntryUpdate{}, gerr.InvalidArgument("response window exceeds %d hours: %d", entity.MaxResponseWindowHours, p.ResponseWindowHours)
		}
		upd.SelectedAt = sql.NullTime{Time: now, Valid: true}
		upd.ResponseWindowHours = sql.NullInt32{Int32: int32(p.ResponseWindowHours), Valid: true}
	case ActionAccept:
		upd.RespondedAt = sql.NullTime{Time: now, Valid: true}
	case ActionDecline:
		reason := strings.TrimSpace(p.Reason)
		if reason == "" {
			return entity.EntryUpdate{}, gerr.InvalidArgument("decline reason is required")
		}
		upd.RespondedAt = sql.NullTime{Time: now, Valid: true}
		upd.DeclineReason = sql.NullString{String: reason, Valid: true}
	case ActionExpire:
		upd.DeclineReason = sql.NullString{String: entity.DeclineReasonExpired, Valid: true}
	}

	return upd, nil
}
