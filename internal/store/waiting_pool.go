package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jekabolt/lottery-manager/internal/dependency"
	"github.com/jekabolt/lottery-manager/internal/entity"
	gerr "github.com/jekabolt/lottery-manager/internal/errors"
)

type waitingPoolStore struct {
	*MYSQLStore
}

// WaitingPool returns an object implementing the waiting pool interface
func (ms *MYSQLStore) WaitingPool() dependency.WaitingPool {
	return &waitingPoolStore{
		MYSQLStore: ms,
	}
}

func (ms *waitingPoolStore) AddEntry(ctx context.Context, ins *entity.WaitingPoolEntryInsert) (*entity.WaitingPoolEntry, error) {
	id := uuid.New().String()
	now := ms.Now()
	query := `
	INSERT INTO waiting_pool_entry
		(id, event_id, entrant_id, entrant_name, entrant_email, status, joined_at, updated_at, latitude, longitude)
	VALUES
		(:id, :eventId, :entrantId, :entrantName, :entrantEmail, :status, :joinedAt, :joinedAt, :latitude, :longitude)
	`
	err := ExecNamed(ctx, ms.DB(), query, map[string]any{
		"id":           id,
		"eventId":      ins.EventId,
		"entrantId":    ins.EntrantId,
		"entrantName":  ins.EntrantName,
		"entrantEmail": ins.EntrantEmail,
		"status":       entity.StatusWaiting,
		"joinedAt":     now,
		"latitude":     ins.Latitude,
		"longitude":    ins.Longitude,
	})
	if err != nil {
		if IsErrUniqueViolation(err) {
			return nil, fmt.Errorf("%w: entrant %s in event %s", gerr.ErrAlreadyJoined, ins.EntrantId, ins.EventId)
		}
		return nil, fmt.Errorf("failed to add waiting pool entry: %w", err)
	}

	return ms.GetEntryById(ctx, id)
}

func (ms *waitingPoolStore) GetEntryById(ctx context.Context, id string) (*entity.WaitingPoolEntry, error) {
	query := `SELECT * FROM waiting_pool_entry WHERE id = :id`
	e, err := QueryNamedOne[entity.WaitingPoolEntry](ctx, ms.DB(), query, map[string]any{
		"id": id,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", gerr.ErrEntryNotFound, id)
		}
		return nil, fmt.Errorf("failed to get waiting pool entry: %w", err)
	}
	return &e, nil
}

func (ms *waitingPoolStore) FindByEventAndEntrant(ctx context.Context, eventId string, entrantId string) (*entity.WaitingPoolEntry, error) {
	query := `SELECT * FROM waiting_pool_entry WHERE event_id = :eventId AND entrant_id = :entrantId`
	e, err := QueryNamedOne[entity.WaitingPoolEntry](ctx, ms.DB(), query, map[string]any{
		"eventId":   eventId,
		"entrantId": entrantId,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find waiting pool entry: %w", err)
	}
	return &e, nil
}

func (ms *waitingPoolStore) LoadByStatus(ctx context.Context, eventId string, status entity.EntryStatus) ([]entity.WaitingPoolEntry, error) {
	query := `SELECT * FROM waiting_pool_entry WHERE event_id = :eventId AND status = :status ORDER BY joined_at, id`
	entries, err := QueryListNamed[entity.WaitingPoolEntry](ctx, ms.DB(), query, map[string]any{
		"eventId": eventId,
		"status":  status,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load waiting pool: %w", err)
	}
	return entries, nil
}

func (ms *waitingPoolStore) ListByStatus(ctx context.Context, status entity.EntryStatus) ([]entity.WaitingPoolEntry, error) {
	query := `SELECT * FROM waiting_pool_entry WHERE status = :status ORDER BY joined_at, id`
	entries, err := QueryListNamed[entity.WaitingPoolEntry](ctx, ms.DB(), query, map[string]any{
		"status": status,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list entries by status: %w", err)
	}
	return entries, nil
}

func (ms *waitingPoolStore) ListByEntrant(ctx context.Context, entrantId string) ([]entity.WaitingPoolEntry, error) {
	query := `SELECT * FROM waiting_pool_entry WHERE entrant_id = :entrantId ORDER BY joined_at DESC, id DESC`
	entries, err := QueryListNamed[entity.WaitingPoolEntry](ctx, ms.DB(), query, map[string]any{
		"entrantId": entrantId,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list entrant entries: %w", err)
	}
	return entries, nil
}

func (ms *waitingPoolStore) CountByEvent(ctx context.Context, eventId string) (int, error) {
	query := `SELECT COUNT(*) FROM waiting_pool_entry WHERE event_id = :eventId`
	n, err := QueryCountNamed(ctx, ms.DB(), query, map[string]any{
		"eventId": eventId,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to count waiting pool: %w", err)
	}
	return n, nil
}

// BatchTransition locks the rows, checks that every id is still in status from
// and updates them in the same transaction.
func (ms *waitingPoolStore) BatchTransition(ctx context.Context, ids []string, from entity.EntryStatus, upd entity.EntryUpdate) error {
	if len(ids) == 0 {
		return nil
	}
	return ms.Tx(ctx, func(ctx context.Context, rep dependency.Repository) error {
		type row struct {
			Id     string             `db:"id"`
			Status entity.EntryStatus `db:"status"`
		}
		rows, err := QueryListNamed[row](ctx, rep.DB(), `SELECT id, status FROM waiting_pool_entry WHERE id IN (:ids) FOR UPDATE`, map[string]any{
			"ids": ids,
		})
		if err != nil {
			return fmt.Errorf("failed to lock entries: %w", err)
		}

		locked := make(map[string]entity.EntryStatus, len(rows))
		for _, r := range rows {
			locked[r.Id] = r.Status
		}
		seen := make(map[string]struct{}, len(ids))
		for _, id := range ids {
			st, ok := locked[id]
			if !ok {
				return fmt.Errorf("%w: entry %s not found", gerr.ErrConflict, id)
			}
			if st != from {
				return fmt.Errorf("%w: entry %s is %s, want %s", gerr.ErrConflict, id, st, from)
			}
			if _, dup := seen[id]; dup {
				return fmt.Errorf("%w: entry %s listed twice", gerr.ErrConflict, id)
			}
			seen[id] = struct{}{}
		}

		params := updateParams(upd, from)
		params["ids"] = ids
		n, err := ExecNamedAffected(ctx, rep.DB(), updateEntryQuery+` WHERE id IN (:ids) AND status = :from`, params)
		if err != nil {
			return fmt.Errorf("failed to update entries: %w", err)
		}
		if n != int64(len(ids)) {
			return fmt.Errorf("%w: updated %d of %d entries", gerr.ErrConflict, n, len(ids))
		}
		return nil
	})
}

func (ms *waitingPoolStore) UpdateOne(ctx context.Context, id string, from entity.EntryStatus, upd entity.EntryUpdate) error {
	params := updateParams(upd, from)
	params["id"] = id
	n, err := ExecNamedAffected(ctx, ms.DB(), updateEntryQuery+` WHERE id = :id AND status = :from`, params)
	if err != nil {
		return fmt.Errorf("failed to update entry: %w", err)
	}
	if n == 1 {
		return nil
	}

	current, err := ms.GetEntryById(ctx, id)
	if err != nil {
		return err
	}
	return fmt.Errorf("%w: entry %s is %s, want %s", gerr.ErrConflict, id, current.Status, from)
}

// optional columns keep their value when the update leaves them unset
const updateEntryQuery = `
	UPDATE waiting_pool_entry SET
		status = :status,
		updated_at = :updatedAt,
		selected_at = COALESCE(:selectedAt, selected_at),
		response_window_hours = COALESCE(:responseWindowHours, response_window_hours),
		responded_at = COALESCE(:respondedAt, responded_at),
		decline_reason = COALESCE(:declineReason, decline_reason)
	`

func updateParams(upd entity.EntryUpdate, from entity.EntryStatus) map[string]any {
	return map[string]any{
		"status":              upd.Status,
		"updatedAt":           upd.UpdatedAt,
		"selectedAt":          upd.SelectedAt,
		"responseWindowHours": upd.ResponseWindowHours,
		"respondedAt":         upd.RespondedAt,
		"declineReason":       upd.DeclineReason,
		"from":                from,
	}
}
