package lottery

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jekabolt/lottery-manager/internal/deadline"
	"github.com/jekabolt/lottery-manager/internal/entity"
	gerr "github.com/jekabolt/lottery-manager/internal/errors"
	"github.com/jekabolt/lottery-manager/internal/lifecycle"
)

// Join adds an entrant to the waiting pool of an event. An entrant that
// already has an entry for the event, in any status, gets gerr.ErrAlreadyJoined.
func (e *Engine) Join(ctx context.Context, ins *entity.WaitingPoolEntryInsert) (*entity.WaitingPoolEntry, error) {
	if ins == nil {
		return nil, gerr.InvalidArgument("join request is required")
	}
	if err := ins.Validate(); err != nil {
		return nil, gerr.InvalidArgument("%v", err)
	}

	unlock := e.locks.lock(ins.EventId)
	defer unlock()

	existing, err := e.store.FindByEventAndEntrant(ctx, ins.EventId, ins.EntrantId)
	if err != nil {
		return nil, gerr.StoreFailure("find entry", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: entrant %s is %s in event %s", gerr.ErrAlreadyJoined, ins.EntrantId, existing.Status, ins.EventId)
	}

	entry, err := e.store.AddEntry(ctx, ins)
	if err != nil {
		return nil, gerr.StoreFailure("add entry", err)
	}
	slog.Default().InfoContext(ctx, "entrant joined waiting pool",
		slog.String("event_id", entry.EventId),
		slog.String("entrant_id", entry.EntrantId),
		slog.String("entry_id", entry.Id),
	)
	return entry, nil
}

// Cancel withdraws a waiting entry from the pool.
func (e *Engine) Cancel(ctx context.Context, entryId string) (*entity.WaitingPoolEntry, error) {
	return e.act(ctx, entryId, lifecycle.ActionCancel, "", nil)
}

// Accept confirms a selection. It fails once the response deadline has passed.
func (e *Engine) Accept(ctx context.Context, entryId string) (*entity.WaitingPoolEntry, error) {
	return e.act(ctx, entryId, lifecycle.ActionAccept, "", func(entry *entity.WaitingPoolEntry, now time.Time) error {
		if deadline.EntryExpired(entry, e.c.DefaultResponseWindowHours, now) {
			return gerr.InvalidTransition("response deadline of entry %s has passed", entry.Id)
		}
		return nil
	})
}

// Decline turns down a selection. A non-empty reason is required.
func (e *Engine) Decline(ctx context.Context, entryId string, reason string) (*entity.WaitingPoolEntry, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, gerr.InvalidArgument("decline reason is required")
	}
	return e.act(ctx, entryId, lifecycle.ActionDecline, reason, nil)
}

// Enroll completes the registration of an accepted entrant.
func (e *Engine) Enroll(ctx context.Context, entryId string) (*entity.WaitingPoolEntry, error) {
	return e.act(ctx, entryId, lifecycle.ActionEnroll, "", nil)
}

// Expire declines a selection whose response deadline has passed.
func (e *Engine) Expire(ctx context.Context, entryId string) (*entity.WaitingPoolEntry, error) {
	return e.act(ctx, entryId, lifecycle.ActionExpire, "", func(entry *entity.WaitingPoolEntry, now time.Time) error {
		if entry.Status == entity.StatusSelected && !deadline.EntryExpired(entry, e.c.DefaultResponseWindowHours, now) {
			return gerr.InvalidTransition("response deadline of entry %s has not passed", entry.Id)
		}
		return nil
	})
}

type guard func(entry *entity.WaitingPoolEntry, now time.Time) error

func (e *Engine) act(ctx context.Context, entryId string, a lifecycle.Action, reason string, check guard) (*entity.WaitingPoolEntry, error) {
	entryId = strings.TrimSpace(entryId)
	if entryId == "" {
		return nil, gerr.InvalidArgument("entry id is required")
	}

	entry, err := e.store.GetEntryById(ctx, entryId)
	if err != nil {
		return nil, gerr.StoreFailure("get entry", err)
	}

	unlock := e.locks.lock(entry.EventId)
	defer unlock()

	// re-read under the event lock
	entry, err = e.store.GetEntryById(ctx, entryId)
	if err != nil {
		return nil, gerr.StoreFailure("get entry", err)
	}

	now := e.now()
	if check != nil {
		if err := check(entry, now); err != nil {
			return nil, err
		}
	}

	from := entry.Status
	upd, err := lifecycle.Transition(entry, a, lifecycle.Params{Now: now, Reason: reason})
	if err != nil {
		return nil, err
	}
	if err := e.store.UpdateOne(ctx, entry.Id, from, upd); err != nil {
		return nil, gerr.StoreFailure("update entry", err)
	}
	entry.Apply(upd)

	slog.Default().InfoContext(ctx, "waiting pool entry transitioned",
		slog.String("event_id", entry.EventId),
		slog.String("entry_id", entry.Id),
		slog.String("action", string(a)),
		slog.String("from", from.String()),
		slog.String("to", entry.Status.String()),
	)
	return entry, nil
}

// Entry returns a single entry by id.
func (e *Engine) Entry(ctx context.Context, entryId string) (*entity.WaitingPoolEntry, error) {
	entry, err := e.store.GetEntryById(ctx, entryId)
	if err != nil {
		return nil, gerr.StoreFailure("get entry", err)
	}
	return entry, nil
}

// Entries returns the entries of an event in the given status.
func (e *Engine) Entries(ctx context.Context, eventId string, status entity.EntryStatus) ([]entity.WaitingPoolEntry, error) {
	if !status.Valid() {
		return nil, gerr.InvalidArgument("unknown status %q", status)
	}
	entries, err := e.store.LoadByStatus(ctx, eventId, status)
	if err != nil {
		return nil, gerr.StoreFailure("load entries", err)
	}
	return entries, nil
}

// EntrantEntries returns every waiting pool an entrant joined, newest first.
func (e *Engine) EntrantEntries(ctx context.Context, entrantId string) ([]entity.WaitingPoolEntry, error) {
	if strings.TrimSpace(entrantId) == "" {
		return nil, gerr.InvalidArgument("entrant id is required")
	}
	entries, err := e.store.ListByEntrant(ctx, entrantId)
	if err != nil {
		return nil, gerr.StoreFailure("list entrant entries", err)
	}
	return entries, nil
}

// Count returns the number of entries of an event in any status.
func (e *Engine) Count(ctx context.Context, eventId string) (int, error) {
	n, err := e.store.CountByEvent(ctx, eventId)
	if err != nil {
		return 0, gerr.StoreFailure("count entries", err)
	}
	return n, nil
}

// EntrantEntry returns the entry of an entrant in an event or gerr.ErrEntryNotFound.
func (e *Engine) EntrantEntry(ctx context.Context, eventId string, entrantId string) (*entity.WaitingPoolEntry, error) {
	entry, err := e.store.FindByEventAndEntrant(ctx, eventId, entrantId)
	if err != nil {
		return nil, gerr.StoreFailure("find entry", err)
	}
	if entry == nil {
		return nil, fmt.Errorf("%w: entrant %s in event %s", gerr.ErrEntryNotFound, entrantId, eventId)
	}
	return entry, nil
}

// EntrantStatus returns the status of an entrant in an event.
func (e *Engine) EntrantStatus(ctx context.Context, eventId string, entrantId string) (entity.EntryStatus, error) {
	entry, err := e.EntrantEntry(ctx, eventId, entrantId)
	if err != nil {
		return "", err
	}
	return entry.Status, nil
}

// Deadline describes the response deadline of a selected entry.
type Deadline struct {
	Deadline time.Time
	Label    string
	Expired  bool
}

// EntryDeadline returns the response deadline of an entry. Entries that were
// never selected have a zero Deadline and the "No deadline" label.
func (e *Engine) EntryDeadline(ctx context.Context, entryId string) (*entity.WaitingPoolEntry, Deadline, error) {
	entry, err := e.Entry(ctx, entryId)
	if err != nil {
		return nil, Deadline{}, err
	}
	now := e.now()
	d := Deadline{
		Label:   deadline.EntryLabel(entry, e.c.DefaultResponseWindowHours, now),
		Expired: deadline.EntryExpired(entry, e.c.DefaultResponseWindowHours, now),
	}
	if entry.SelectedAt.Valid {
		d.Deadline, err = deadline.ForEntry(entry, e.c.DefaultResponseWindowHours)
		if err != nil {
			return nil, Deadline{}, err
		}
	}
	return entry, d, nil
}
