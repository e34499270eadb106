package httpapi

import (
	"database/sql"
	"time"

	"github.com/jekabolt/lottery-manager/internal/entity"
	"github.com/jekabolt/lottery-manager/internal/form"
	"github.com/jekabolt/lottery-manager/internal/lottery"
)

func joinInsert(eventId string, f *form.JoinRequest) *entity.WaitingPoolEntryInsert {
	return &entity.WaitingPoolEntryInsert{
		EventId:      eventId,
		EntrantId:    f.EntrantId,
		EntrantName:  f.EntrantName,
		EntrantEmail: f.EntrantEmail,
		Latitude:     nullFloat(f.Latitude),
		Longitude:    nullFloat(f.Longitude),
	}
}

func drawRequest(eventId string, f *form.DrawRequest) entity.DrawRequest {
	return entity.DrawRequest{
		EventId:                    eventId,
		Slots:                      f.Slots,
		ResponseWindowHours:        f.ResponseWindowHours,
		DefaultResponseWindowHours: f.DefaultResponseWindowHours,
	}
}

type entryResponse struct {
	Id                  string     `json:"id"`
	EventId             string     `json:"event_id"`
	EntrantId           string     `json:"entrant_id"`
	EntrantName         string     `json:"entrant_name,omitempty"`
	EntrantEmail        string     `json:"entrant_email,omitempty"`
	Status              string     `json:"status"`
	JoinedAt            time.Time  `json:"joined_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
	SelectedAt          *time.Time `json:"selected_at,omitempty"`
	RespondedAt         *time.Time `json:"responded_at,omitempty"`
	ResponseWindowHours *int32     `json:"response_window_hours,omitempty"`
	DeclineReason       string     `json:"decline_reason,omitempty"`
	Latitude            *float64   `json:"latitude,omitempty"`
	Longitude           *float64   `json:"longitude,omitempty"`
}

func convertEntry(e *entity.WaitingPoolEntry) entryResponse {
	er := entryResponse{
		Id:            e.Id,
		EventId:       e.EventId,
		EntrantId:     e.EntrantId,
		EntrantName:   e.EntrantName,
		EntrantEmail:  e.EntrantEmail,
		Status:        e.Status.String(),
		JoinedAt:      e.JoinedAt,
		UpdatedAt:     e.UpdatedAt,
		DeclineReason: e.DeclineReason.String,
	}
	if e.SelectedAt.Valid {
		er.SelectedAt = &e.SelectedAt.Time
	}
	if e.RespondedAt.Valid {
		er.RespondedAt = &e.RespondedAt.Time
	}
	if e.ResponseWindowHours.Valid {
		er.ResponseWindowHours = &e.ResponseWindowHours.Int32
	}
	if e.Latitude.Valid {
		er.Latitude = &e.Latitude.Float64
	}
	if e.Longitude.Valid {
		er.Longitude = &e.Longitude.Float64
	}
	return er
}

func convertEntries(es []entity.WaitingPoolEntry) []entryResponse {
	out := make([]entryResponse, 0, len(es))
	for i := range es {
		out = append(out, convertEntry(&es[i]))
	}
	return out
}

type deadlineResponse struct {
	EntryId  string     `json:"entry_id"`
	Status   string     `json:"status"`
	Deadline *time.Time `json:"deadline,omitempty"`
	Label    string     `json:"label"`
	Expired  bool       `json:"expired"`
}

func convertDeadline(e *entity.WaitingPoolEntry, d lottery.Deadline) deadlineResponse {
	dr := deadlineResponse{
		EntryId: e.Id,
		Status:  e.Status.String(),
		Label:   d.Label,
		Expired: d.Expired,
	}
	if !d.Deadline.IsZero() {
		dr.Deadline = &d.Deadline
	}
	return dr
}

type notificationResponse struct {
	Id        string    `json:"id"`
	UserId    string    `json:"user_id"`
	EventId   string    `json:"event_id,omitempty"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

func convertNotifications(ns []entity.Notification) []notificationResponse {
	out := make([]notificationResponse, 0, len(ns))
	for _, n := range ns {
		out = append(out, notificationResponse{
			Id:        n.Id,
			UserId:    n.UserId,
			EventId:   n.EventId.String,
			Type:      string(n.Type),
			Title:     n.Title,
			Message:   n.Message,
			Read:      n.Read,
			CreatedAt: n.CreatedAt,
		})
	}
	return out
}

func nullFloat(f *float64) sql.NullFloat64 {
	if f == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *f, Valid: true}
}
