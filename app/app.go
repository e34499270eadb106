package app

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/jekabolt/lottery-manager/config"
	httpapi "github.com/jekabolt/lottery-manager/internal/api/http"
	"github.com/jekabolt/lottery-manager/internal/dependency"
	"github.com/jekabolt/lottery-manager/internal/expiry"
	"github.com/jekabolt/lottery-manager/internal/lottery"
	"github.com/jekabolt/lottery-manager/internal/notify"
	"github.com/jekabolt/lottery-manager/internal/ratelimit"
	"github.com/jekabolt/lottery-manager/internal/store"
	"github.com/jekabolt/lottery-manager/internal/store/memory"
	"github.com/jekabolt/lottery-manager/internal/telemetry"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 15 * time.Second

// backend is what the app needs from a store implementation.
type backend interface {
	WaitingPool() dependency.WaitingPool
	Notifications() dependency.Notifications
	Ping(ctx context.Context) error
	Close()
}

// memoryBackend adapts the in-memory store to backend.
type memoryBackend struct {
	*memory.Store
}

func (m memoryBackend) WaitingPool() dependency.WaitingPool { return m.Store }

func (m memoryBackend) Notifications() dependency.Notifications { return m.Store }

func (m memoryBackend) Close() {}

// App is the main application
type App struct {
	c         *config.Config
	db        backend
	engine    *lottery.Engine
	notifier  *notify.Notifier
	expiry    *expiry.Worker
	hs        *httpapi.Server
	telemetry func(context.Context) error
	done      chan struct{}
	stopOnce  sync.Once
}

// New returns a new instance of App
func New(c *config.Config) *App {
	return &App{
		c:    c,
		done: make(chan struct{}),
	}
}

// Start starts the app
func (a *App) Start(ctx context.Context) error {
	var err error
	slog.Default().InfoContext(ctx, "starting lottery manager", slog.String("store", a.c.Store))

	a.telemetry, err = telemetry.Setup(ctx, &a.c.Telemetry)
	if err != nil {
		slog.Default().ErrorContext(ctx, "couldn't set up telemetry", slog.String("err", err.Error()))
		return err
	}

	a.db, err = openStore(ctx, a.c)
	if err != nil {
		slog.Default().ErrorContext(ctx, "couldn't open store", slog.String("err", err.Error()))
		return err
	}

	a.engine = lottery.New(&a.c.Lottery, a.db.WaitingPool())

	var sender dependency.Sender
	if s := notify.NewSendGridSender(&a.c.Notifier); s != nil {
		sender = s
	} else {
		slog.Default().WarnContext(ctx, "sendgrid api key is not set, e-mail delivery is disabled")
	}
	a.notifier, err = notify.New(&a.c.Notifier, a.db.Notifications(), a.db.WaitingPool(), sender,
		notify.WithDefaultResponseWindow(a.engine.DefaultResponseWindowHours()),
	)
	if err != nil {
		slog.Default().ErrorContext(ctx, "failed create notifier", slog.String("err", err.Error()))
		return err
	}
	if err = a.notifier.Start(ctx); err != nil {
		slog.Default().ErrorContext(ctx, "failed start notifier", slog.String("err", err.Error()))
		return err
	}

	a.expiry = expiry.New(&a.c.Expiry, a.db.WaitingPool(), a.engine, a.notifier)
	if err = a.expiry.Start(ctx); err != nil {
		slog.Default().ErrorContext(ctx, "failed start expiry worker", slog.String("err", err.Error()))
		return err
	}

	// start API server
	a.hs = httpapi.New(&a.c.HTTP, a.engine, a.notifier, ratelimit.NewMultiKeyLimiter(&a.c.RateLimit), a.db)
	if err = a.hs.Start(ctx); err != nil {
		slog.Default().ErrorContext(ctx, "cannot start http server", slog.String("err", err.Error()))
		return err
	}

	go func() {
		<-a.hs.Done()
		a.closeDone()
	}()

	return nil
}

func openStore(ctx context.Context, c *config.Config) (backend, error) {
	switch c.Store {
	case config.StoreMySQL:
		db, err := store.New(ctx, c.DB)
		if err != nil {
			return nil, fmt.Errorf("couldn't connect to mysql: %w", err)
		}
		return db, nil
	case config.StoreMemory, "":
		return memoryBackend{memory.New()}, nil
	default:
		return nil, fmt.Errorf("unknown store %q", c.Store)
	}
}

// Stop stops the application and waits for all services to exit
func (a *App) Stop(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	g := errgroup.Group{}
	if a.hs != nil {
		g.Go(func() error { return a.hs.Stop(ctx) })
	}
	if a.expiry != nil {
		g.Go(a.expiry.Stop)
	}
	if a.notifier != nil {
		g.Go(a.notifier.Stop)
	}
	if err := g.Wait(); err != nil {
		slog.Default().ErrorContext(ctx, "error while stopping services", slog.String("err", err.Error()))
	}

	if a.telemetry != nil {
		if err := a.telemetry(ctx); err != nil {
			slog.Default().ErrorContext(ctx, "telemetry shutdown failed", slog.String("err", err.Error()))
		}
	}
	if a.db != nil {
		a.db.Close()
	}
	a.closeDone()
}

func (a *App) closeDone() {
	a.stopOnce.Do(func() { close(a.done) })
}

// Done returns a channel that is closed after the application has exited
func (a *App) Done() <-chan struct{} {
	return a.done
}
