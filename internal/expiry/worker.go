package expiry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"log/slog"

	"github.com/jekabolt/lottery-manager/internal/deadline"
	"github.com/jekabolt/lottery-manager/internal/entity"
	gerr "github.com/jekabolt/lottery-manager/internal/errors"
)

// Result summarises one sweep.
type Result struct {
	Expired     int
	Replenished int
}

func (w *Worker) worker(ctx context.Context) {
	ticker := time.NewTicker(w.c.WorkerInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if _, err := w.Sweep(ctx); err != nil {
				slog.Default().ErrorContext(ctx, "can't expire overdue selections",
					slog.String("err", err.Error()),
				)
			}
		case <-ctx.Done():
			return
		}
	}
}

// Sweep expires every selection past its deadline. With auto replenish on,
// each event gets one new draw slot per expired entry.
func (w *Worker) Sweep(ctx context.Context) (Result, error) {
	var res Result
	selected, err := w.pool.ListByStatus(ctx, entity.StatusSelected)
	if err != nil {
		return res, fmt.Errorf("can't list selected entries: %w", err)
	}

	now := w.now()
	fallback := w.lottery.DefaultResponseWindowHours()
	expiredByEvent := map[string]int{}
	events := []string{}

	for i := range selected {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		entry := &selected[i]
		if !deadline.EntryExpired(entry, fallback, now) {
			continue
		}

		if _, err := w.lottery.Expire(ctx, entry.Id); err != nil {
			// answered between the listing and now
			if errors.Is(err, gerr.ErrInvalidTransition) || errors.Is(err, gerr.ErrConflict) {
				continue
			}
			slog.Default().ErrorContext(ctx, "can't expire selection",
				slog.String("err", err.Error()),
				slog.String("entry_id", entry.Id),
				slog.String("event_id", entry.EventId),
			)
			continue
		}
		slog.Default().InfoContext(ctx, "expired selection",
			slog.String("entry_id", entry.Id),
			slog.String("event_id", entry.EventId),
		)
		res.Expired++
		if _, ok := expiredByEvent[entry.EventId]; !ok {
			events = append(events, entry.EventId)
		}
		expiredByEvent[entry.EventId]++
	}

	if !w.c.AutoReplenish {
		return res, nil
	}

	for _, eventId := range events {
		winners, err := w.lottery.Replenish(ctx, entity.DrawRequest{
			EventId: eventId,
			Slots:   expiredByEvent[eventId],
		})
		if err != nil {
			slog.Default().ErrorContext(ctx, "can't replenish event",
				slog.String("err", err.Error()),
				slog.String("event_id", eventId),
			)
			continue
		}
		res.Replenished += len(winners)
		if w.notifier == nil || len(winners) == 0 {
			continue
		}
		if err := w.notifier.NotifySelected(ctx, winners); err != nil {
			slog.Default().ErrorContext(ctx, "can't notify replenished winners",
				slog.String("err", err.Error()),
				slog.String("event_id", eventId),
			)
		}
		if err := w.notifier.NotifyNotSelected(ctx, eventId, winners); err != nil {
			slog.Default().ErrorContext(ctx, "can't notify entrants left waiting",
				slog.String("err", err.Error()),
				slog.String("event_id", eventId),
			)
		}
	}
	return res, nil
}
