package ratelimit

import (
	"fmt"
	"sync"
	"time"
)

// Config sets the per-client limits of the HTTP API.
type Config struct {
	Window            time.Duration `mapstructure:"window"`
	RequestsPerWindow int           `mapstructure:"requests_per_window"`
	JoinsPerWindow    int           `mapstructure:"joins_per_window"`
	DrawsPerWindow    int           `mapstructure:"draws_per_window"`
}

// DefaultConfig returns default configuration values.
func DefaultConfig() Config {
	return Config{
		Window:            time.Minute,
		RequestsPerWindow: 300,
		JoinsPerWindow:    20,
		DrawsPerWindow:    10,
	}
}

// Limiter implements a simple in-memory fixed window rate limiter
type Limiter struct {
	mu       sync.RWMutex
	counters map[string]*counter
	window   time.Duration
	max      int
	now      func() time.Time
	stop     chan struct{}
	once     sync.Once
}

type counter struct {
	count     int
	expiresAt time.Time
}

// NewLimiter creates a new rate limiter with the specified window and max requests
func NewLimiter(window time.Duration, max int) *Limiter {
	l := &Limiter{
		counters: make(map[string]*counter),
		window:   window,
		max:      max,
		now:      time.Now,
		stop:     make(chan struct{}),
	}
	go l.cleanup()
	return l
}

// Allow checks if a request for the given key is allowed
func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	c, exists := l.counters[key]

	if !exists || now.After(c.expiresAt) {
		l.counters[key] = &counter{
			count:     1,
			expiresAt: now.Add(l.window),
		}
		return true
	}

	if c.count >= l.max {
		return false
	}

	c.count++
	return true
}

// GetRemaining returns the number of remaining requests for the given key
func (l *Limiter) GetRemaining(key string) int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	c, exists := l.counters[key]
	if !exists || l.now().After(c.expiresAt) {
		return l.max
	}

	remaining := l.max - c.count
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Close stops the cleanup goroutine.
func (l *Limiter) Close() {
	l.once.Do(func() { close(l.stop) })
}

// cleanup periodically removes expired counters
func (l *Limiter) cleanup() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			l.mu.Lock()
			now := l.now()
			for key, c := range l.counters {
				if now.After(c.expiresAt) {
					delete(l.counters, key)
				}
			}
			l.mu.Unlock()
		case <-l.stop:
			return
		}
	}
}

const (
	ipRequest   = "ip_request"
	ipJoin      = "ip_join"
	entrantJoin = "entrant_join"
	ipDraw      = "ip_draw"
)

// MultiKeyLimiter manages multiple rate limiters for different types of operations
type MultiKeyLimiter struct {
	limiters map[string]*Limiter
}

// NewMultiKeyLimiter creates a limiter from config. Zero limits fall back to defaults.
func NewMultiKeyLimiter(c *Config) *MultiKeyLimiter {
	dc := DefaultConfig()
	if c == nil {
		c = &dc
	}
	window := c.Window
	if window <= 0 {
		window = dc.Window
	}
	return &MultiKeyLimiter{
		limiters: map[string]*Limiter{
			ipRequest:   NewLimiter(window, orDefault(c.RequestsPerWindow, dc.RequestsPerWindow)),
			ipJoin:      NewLimiter(window, orDefault(c.JoinsPerWindow, dc.JoinsPerWindow)),
			entrantJoin: NewLimiter(window, orDefault(c.JoinsPerWindow, dc.JoinsPerWindow)),
			ipDraw:      NewLimiter(window, orDefault(c.DrawsPerWindow, dc.DrawsPerWindow)),
		},
	}
}

func orDefault(v, d int) int {
	if v <= 0 {
		return d
	}
	return v
}

// CheckRequest verifies that the client IP is below the overall request limit.
func (m *MultiKeyLimiter) CheckRequest(ip string) error {
	if !m.limiters[ipRequest].Allow(ip) {
		return fmt.Errorf("too many requests, please slow down")
	}
	return nil
}

// CheckJoin verifies if a waiting pool join is allowed from the given IP and entrant
func (m *MultiKeyLimiter) CheckJoin(ip, entrantId string) error {
	if !m.limiters[ipJoin].Allow(ip) {
		return fmt.Errorf("too many joins from this IP address, please try again later")
	}
	if entrantId != "" && !m.limiters[entrantJoin].Allow(entrantId) {
		return fmt.Errorf("too many joins for this entrant, please try again later")
	}
	return nil
}

// CheckDraw verifies if a draw or replenish can be run from the given IP
func (m *MultiKeyLimiter) CheckDraw(ip string) error {
	if !m.limiters[ipDraw].Allow(ip) {
		return fmt.Errorf("too many draws from this IP address, please try again later")
	}
	return nil
}

// Close stops every limiter.
func (m *MultiKeyLimiter) Close() {
	for _, l := range m.limiters {
		l.Close()
	}
}
