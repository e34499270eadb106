package notify

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"log/slog"

	gerr "github.com/jekabolt/lottery-manager/internal/errors"
	"golang.org/x/sync/errgroup"
)

// Start starts the e-mail delivery worker. Without a sender it does nothing.
func (n *Notifier) Start(ctx context.Context) error {
	if n.sender == nil {
		slog.Default().InfoContext(ctx, "e-mail sender not configured, delivery worker disabled")
		return nil
	}
	if n.ctx != nil && n.cancel != nil {
		return fmt.Errorf("notifier already started")
	}

	n.ctx, n.cancel = context.WithCancel(ctx)
	go n.worker(n.ctx)
	return nil
}

// Stop stops the worker gracefully
func (n *Notifier) Stop() error {
	if n.sender == nil {
		return nil
	}
	if n.cancel == nil {
		return fmt.Errorf("notifier already stopped or not started")
	}

	n.cancel()
	n.cancel = nil
	return nil
}

func (n *Notifier) worker(ctx context.Context) {
	ticker := time.NewTicker(n.c.WorkerInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if _, err := n.handleUnsent(ctx); err != nil {
				slog.Default().ErrorContext(ctx, "can't handle unsent e-mails",
					slog.String("err", err.Error()),
				)
			}
		case <-ctx.Done():
			return
		}
	}
}

// handleUnsent sends one batch of queued e-mails and returns how many were delivered.
func (n *Notifier) handleUnsent(ctx context.Context) (int, error) {
	unsent, err := n.notifications.GetUnsentEmails(ctx, n.c.BatchSize)
	if err != nil {
		return 0, fmt.Errorf("can't get unsent e-mails: %w", err)
	}

	var (
		sent    atomic.Int64
		limited atomic.Bool
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(n.c.Concurrency)

	for i := range unsent {
		rec := &unsent[i]
		if limited.Load() {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			msg, err := n.buildMail(rec)
			if err == nil {
				err = n.sender.Send(gctx, msg)
			}
			if err != nil {
				slog.Default().ErrorContext(gctx, "can't send e-mail",
					slog.String("err", err.Error()),
					slog.String("notification_id", rec.Id),
				)
				if errors.Is(err, gerr.ErrMailLimitReached) {
					limited.Store(true)
					return nil
				}
				if err := n.notifications.AddEmailError(gctx, rec.Id, err.Error()); err != nil {
					return fmt.Errorf("can't log error for notification %v: %w", rec.Id, err)
				}
				return nil
			}
			if err := n.notifications.MarkEmailSent(gctx, rec.Id, n.now()); err != nil {
				return fmt.Errorf("can't update sent status for notification %v: %w", rec.Id, err)
			}
			sent.Add(1)
			return nil
		})
	}

	err = g.Wait()
	return int(sent.Load()), err
}
