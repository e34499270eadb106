// Package lottery runs draws against the waiting pool of an event and
// executes the lifecycle actions entrants and organizers take afterwards.
package lottery

import (
	"time"

	"github.com/jekabolt/lottery-manager/internal/dependency"
	"github.com/jekabolt/lottery-manager/internal/entity"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/jekabolt/lottery-manager/internal/lottery"

// Config holds engine defaults.
type Config struct {
	DefaultResponseWindowHours int `mapstructure:"default_response_window_hours"`
}

// DefaultConfig returns default configuration values.
func DefaultConfig() Config {
	return Config{
		DefaultResponseWindowHours: entity.DefaultResponseWindowHours,
	}
}

// Engine draws winners and moves entries through their lifecycle.
type Engine struct {
	store  dependency.WaitingPool
	c      *Config
	locks  *eventLocks
	now    func() time.Time
	seed   SeedFunc
	tracer trace.Tracer
}

// Option customises an Engine.
type Option func(*Engine)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithSeed replaces the seed source of the per-draw generator.
func WithSeed(seed SeedFunc) Option {
	return func(e *Engine) { e.seed = seed }
}

// New creates an engine over the given waiting pool store.
func New(c *Config, store dependency.WaitingPool, opts ...Option) *Engine {
	if c == nil {
		dc := DefaultConfig()
		c = &dc
	}
	if c.DefaultResponseWindowHours <= 0 || c.DefaultResponseWindowHours > entity.MaxResponseWindowHours {
		c.DefaultResponseWindowHours = entity.DefaultResponseWindowHours
	}
	e := &Engine{
		store:  store,
		c:      c,
		locks:  newEventLocks(),
		now:    time.Now,
		seed:   CryptoSeed,
		tracer: otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// DefaultResponseWindowHours is the window used when neither a draw nor its event sets one.
func (e *Engine) DefaultResponseWindowHours() int {
	return e.c.DefaultResponseWindowHours
}
