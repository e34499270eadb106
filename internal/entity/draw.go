package entity

import (
	"math"
	"time"
)

const (
	// DefaultResponseWindowHours applies when neither the draw nor the event supplies a window.
	DefaultResponseWindowHours = 48
	// MaxResponseWindowHours is the longest window a time.Duration can represent.
	MaxResponseWindowHours = int(math.MaxInt64 / int64(time.Hour))
)

// DrawRequest describes a single draw against the waiting pool of an event.
type DrawRequest struct {
	EventId string
	Slots   int
	// ResponseWindowHours overrides the event default for this draw only.
	ResponseWindowHours *int
	// DefaultResponseWindowHours is the event-level fallback window.
	DefaultResponseWindowHours *int
}

// EffectiveWindowHours resolves the response window: override, then event default, then fallback.
func (r DrawRequest) EffectiveWindowHours(fallback int) int {
	switch {
	case r.ResponseWindowHours != nil:
		return *r.ResponseWindowHours
	case r.DefaultResponseWindowHours != nil:
		return *r.DefaultResponseWindowHours
	default:
		return fallback
	}
}
