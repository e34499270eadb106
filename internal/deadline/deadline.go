// Package deadline computes response deadlines for selected entrants.
//
// All functions are pure. Times are reduced to their wall clock reading before
// any arithmetic, so a monotonic reading carried by time.Now never skews the
// comparison after the host clock has been adjusted.
package deadline

import (
	"fmt"
	"time"

	"github.com/jekabolt/lottery-manager/internal/entity"
	gerr "github.com/jekabolt/lottery-manager/internal/errors"
)

const (
	LabelPassed     = "Deadline passed"
	LabelNoDeadline = "No deadline"
)

// Compute returns selectedAt plus windowHours hours.
func Compute(selectedAt time.Time, windowHours int) (time.Time, error) {
	if selectedAt.IsZero() {
		return time.Time{}, gerr.InvalidArgument("selected at is required")
	}
	if windowHours < 0 {
		return time.Time{}, gerr.InvalidArgument("response window cannot be negative: %d", windowHours)
	}
	if windowHours > entity.MaxResponseWindowHours {
		return time.Time{}, gerr.InvalidArgument("response window exceeds %d hours: %d", entity.MaxResponseWindowHours, windowHours)
	}
	return selectedAt.Round(0).Add(time.Duration(windowHours) * time.Hour), nil
}

// IsExpired reports whether now is strictly after the deadline.
// An absent selection time or an invalid window has no deadline and never expires.
func IsExpired(selectedAt time.Time, windowHours int, now time.Time) bool {
	d, err := Compute(selectedAt, windowHours)
	if err != nil {
		return false
	}
	return now.Round(0).After(d)
}

// RemainingLabel renders the time left until the deadline.
func RemainingLabel(selectedAt time.Time, windowHours int, now time.Time) string {
	d, err := Compute(selectedAt, windowHours)
	if err != nil {
		return LabelNoDeadline
	}
	now = now.Round(0)
	if now.After(d) {
		return LabelPassed
	}
	remaining := d.Sub(now)
	hours := int64(remaining / time.Hour)
	minutes := int64((remaining % time.Hour) / time.Minute)
	if hours > 0 {
		return fmt.Sprintf("%dh %02dm remaining", hours, minutes)
	}
	return fmt.Sprintf("%d minutes remaining", minutes)
}

// WindowHours returns the response window stored on the entry, or fallback when unset.
func WindowHours(e *entity.WaitingPoolEntry, fallback int) int {
	if e.ResponseWindowHours.Valid {
		return int(e.ResponseWindowHours.Int32)
	}
	return fallback
}

// ForEntry computes the deadline of the entry's current selection.
func ForEntry(e *entity.WaitingPoolEntry, fallback int) (time.Time, error) {
	if !e.SelectedAt.Valid {
		return time.Time{}, gerr.InvalidArgument("entry %s has not been selected", e.Id)
	}
	return Compute(e.SelectedAt.Time, WindowHours(e, fallback))
}

// EntryExpired reports whether the entry's selection deadline has passed at now.
func EntryExpired(e *entity.WaitingPoolEntry, fallback int, now time.Time) bool {
	if !e.SelectedAt.Valid {
		return false
	}
	return IsExpired(e.SelectedAt.Time, WindowHours(e, fallback), now)
}

// EntryLabel renders the remaining time of the entry's selection.
func EntryLabel(e *entity.WaitingPoolEntry, fallback int, now time.Time) string {
	if !e.SelectedAt.Valid {
		return LabelNoDeadline
	}
	return RemainingLabel(e.SelectedAt.Time, WindowHours(e, fallback), now)
}
