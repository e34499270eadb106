package lottery

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"strings"

	"github.com/jekabolt/lottery-manager/internal/entity"
	gerr "github.com/jekabolt/lottery-manager/internal/errors"
	"github.com/jekabolt/lottery-manager/internal/lifecycle"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Draw selects min(slots, pool size) entries uniformly at random from the
// waiting pool of an event and marks them selected in one batch write.
// An empty pool yields no winners and no error.
func (e *Engine) Draw(ctx context.Context, req entity.DrawRequest) ([]entity.WaitingPoolEntry, error) {
	return e.draw(ctx, "lottery.Draw", "lottery draw completed", req)
}

// Replenish draws again from the remaining waiting pool after selected
// entrants declined, cancelled or timed out. Entries that are no longer
// waiting are never eligible.
func (e *Engine) Replenish(ctx context.Context, req entity.DrawRequest) ([]entity.WaitingPoolEntry, error) {
	return e.draw(ctx, "lottery.Replenish", "lottery replenish completed", req)
}

func (e *Engine) draw(ctx context.Context, spanName string, logMsg string, req entity.DrawRequest) (winners []entity.WaitingPoolEntry, err error) {
	req.EventId = strings.TrimSpace(req.EventId)
	window := req.EffectiveWindowHours(e.c.DefaultResponseWindowHours)
	if err := validateDraw(req, window); err != nil {
		return nil, err
	}

	ctx, span := e.tracer.Start(ctx, spanName, trace.WithAttributes(
		attribute.String("event_id", req.EventId),
		attribute.Int("slots", req.Slots),
		attribute.Int("response_window_hours", window),
	))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	unlock := e.locks.lock(req.EventId)
	defer unlock()

	pool, err := e.store.LoadByStatus(ctx, req.EventId, entity.StatusWaiting)
	if err != nil {
		return nil, gerr.StoreFailure("load waiting pool", err)
	}
	span.SetAttributes(attribute.Int("pool_size", len(pool)))
	if len(pool) == 0 {
		slog.Default().InfoContext(ctx, logMsg,
			slog.String("event_id", req.EventId),
			slog.Int("pool_size", 0),
			slog.Int("winners", 0),
		)
		return []entity.WaitingPoolEntry{}, nil
	}

	hi, lo, err := e.seed()
	if err != nil {
		return nil, err
	}
	chosen := sample(pool, req.Slots, rand.New(rand.NewPCG(hi, lo)))

	upd, err := lifecycle.DrawUpdate(e.now(), window)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(chosen))
	for _, w := range chosen {
		ids = append(ids, w.Id)
	}
	if err := e.store.BatchTransition(ctx, ids, entity.StatusWaiting, upd); err != nil {
		return nil, gerr.StoreFailure("batch transition", err)
	}

	winners = make([]entity.WaitingPoolEntry, 0, len(chosen))
	for _, w := range chosen {
		w.Apply(upd)
		winners = append(winners, w)
	}

	slog.Default().InfoContext(ctx, logMsg,
		slog.String("event_id", req.EventId),
		slog.Int("pool_size", len(pool)),
		slog.Int("winners", len(winners)),
		slog.Int("response_window_hours", window),
	)
	return winners, nil
}

func validateDraw(req entity.DrawRequest, window int) error {
	if req.EventId == "" {
		return gerr.InvalidArgument("event id is required")
	}
	if req.Slots <= 0 {
		return gerr.InvalidArgument("slots must be positive, got %d", req.Slots)
	}
	if window < 0 {
		return gerr.InvalidArgument("response window cannot be negative: %d", window)
	}
	if window > entity.MaxResponseWindowHours {
		return gerr.InvalidArgument("response window exceeds %d hours: %d", entity.MaxResponseWindowHours, window)
	}
	return nil
}
