package entity

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/asaskevich/govalidator"
)

// EntryStatus is the lifecycle status of a waiting pool entry.
type EntryStatus string

const (
	StatusWaiting   EntryStatus = "waiting"
	StatusSelected  EntryStatus = "selected"
	StatusAccepted  EntryStatus = "accepted"
	StatusDeclined  EntryStatus = "declined"
	StatusCancelled EntryStatus = "cancelled"
	StatusEnrolled  EntryStatus = "enrolled"
)

// EntryStatuses lists every status in lifecycle order.
var EntryStatuses = []EntryStatus{
	StatusWaiting,
	StatusSelected,
	StatusAccepted,
	StatusDeclined,
	StatusCancelled,
	StatusEnrolled,
}

// ParseEntryStatus converts a status label into an EntryStatus.
func ParseEntryStatus(s string) (EntryStatus, bool) {
	st := EntryStatus(strings.ToLower(strings.TrimSpace(s)))
	return st, st.Valid()
}

// Valid reports whether s is one of the known statuses.
func (s EntryStatus) Valid() bool {
	for _, st := range EntryStatuses {
		if s == st {
			return true
		}
	}
	return false
}

// Terminal reports whether no further transition may leave s.
func (s EntryStatus) Terminal() bool {
	return s == StatusDeclined || s == StatusCancelled || s == StatusEnrolled
}

func (s EntryStatus) String() string { return string(s) }

// DeclineReasonExpired is written when a selection lapses without a response.
const DeclineReasonExpired = "expired"

// WaitingPoolEntry represents the waiting_pool_entry table
type WaitingPoolEntry struct {
	Id                  string          `db:"id"`
	EventId             string          `db:"event_id"`
	EntrantId           string          `db:"entrant_id"`
	EntrantName         string          `db:"entrant_name"`
	EntrantEmail        string          `db:"entrant_email"`
	Status              EntryStatus     `db:"status"`
	JoinedAt            time.Time       `db:"joined_at"`
	UpdatedAt           time.Time       `db:"updated_at"`
	SelectedAt          sql.NullTime    `db:"selected_at"`
	RespondedAt         sql.NullTime    `db:"responded_at"`
	ResponseWindowHours sql.NullInt32   `db:"response_window_hours"`
	DeclineReason       sql.NullString  `db:"decline_reason"`
	Latitude            sql.NullFloat64 `db:"latitude"`
	Longitude           sql.NullFloat64 `db:"longitude"`
}

// Apply writes the fields of upd onto the entry. Optional fields are only set, never cleared.
func (e *WaitingPoolEntry) Apply(upd EntryUpdate) {
	e.Status = upd.Status
	e.UpdatedAt = upd.UpdatedAt
	if upd.SelectedAt.Valid {
		e.SelectedAt = upd.SelectedAt
	}
	if upd.ResponseWindowHours.Valid {
		e.ResponseWindowHours = upd.ResponseWindowHours
	}
	if upd.RespondedAt.Valid {
		e.RespondedAt = upd.RespondedAt
	}
	if upd.DeclineReason.Valid {
		e.DeclineReason = upd.DeclineReason
	}
}

// WaitingPoolEntryInsert is a request to join the waiting pool of an event.
type WaitingPoolEntryInsert struct {
	EventId      string          `valid:"required"`
	EntrantId    string          `valid:"required"`
	EntrantName  string          `valid:"-"`
	EntrantEmail string          `valid:"email"`
	Latitude     sql.NullFloat64 `valid:"-"`
	Longitude    sql.NullFloat64 `valid:"-"`
}

// Validate validates the WaitingPoolEntryInsert struct
func (ins *WaitingPoolEntryInsert) Validate() error {
	ins.EventId = strings.TrimSpace(ins.EventId)
	ins.EntrantId = strings.TrimSpace(ins.EntrantId)
	ins.EntrantName = strings.TrimSpace(ins.EntrantName)
	ins.EntrantEmail = strings.TrimSpace(ins.EntrantEmail)
	_, err := govalidator.ValidateStruct(ins)
	if err != nil {
		return err
	}
	if ins.Latitude.Valid != ins.Longitude.Valid {
		return fmt.Errorf("latitude and longitude must be set together")
	}
	return nil
}

// EntryUpdate is the set of fields written by a single status transition.
type EntryUpdate struct {
	Status              EntryStatus
	UpdatedAt           time.Time
	SelectedAt          sql.NullTime
	ResponseWindowHours sql.NullInt32
	RespondedAt         sql.NullTime
	DeclineReason       sql.NullString
}
