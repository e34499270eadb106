// Package expiry declines selections whose response deadline has passed and
// optionally draws replacements from the remaining waiting pool.
package expiry

import (
	"context"
	"fmt"
	"time"

	"github.com/jekabolt/lottery-manager/internal/dependency"
)

// Config holds configuration for the expiry worker.
type Config struct {
	WorkerInterval time.Duration `mapstructure:"worker_interval"`
	AutoReplenish  bool          `mapstructure:"auto_replenish"`
}

// DefaultConfig returns default configuration values.
func DefaultConfig() Config {
	return Config{
		WorkerInterval: 5 * time.Minute,
		AutoReplenish:  true,
	}
}

// Worker periodically expires overdue selections.
type Worker struct {
	pool     dependency.WaitingPool
	lottery  dependency.Lottery
	notifier dependency.Notifier
	c        *Config
	now      func() time.Time
	ctx      context.Context
	stop     context.CancelFunc
}

// New creates a new expiry worker. notifier may be nil.
func New(c *Config, pool dependency.WaitingPool, lottery dependency.Lottery, notifier dependency.Notifier) *Worker {
	if c == nil {
		dc := DefaultConfig()
		c = &dc
	}
	if c.WorkerInterval == 0 {
		c.WorkerInterval = 5 * time.Minute
	}
	return &Worker{
		pool:     pool,
		lottery:  lottery,
		notifier: notifier,
		c:        c,
		now:      time.Now,
	}
}

// Start starts the worker.
func (w *Worker) Start(ctx context.Context) error {
	if w.ctx != nil && w.stop != nil {
		return fmt.Errorf("expiry worker already started")
	}
	w.ctx, w.stop = context.WithCancel(ctx)
	go w.worker(w.ctx)
	return nil
}

// Stop stops the worker gracefully.
func (w *Worker) Stop() error {
	if w.stop == nil {
		return fmt.Errorf("expiry worker already stopped or not started")
	}
	w.stop()
	w.stop = nil
	return nil
}
