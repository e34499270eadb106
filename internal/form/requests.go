package form

import (
	v "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/jekabolt/lottery-manager/internal/entity"
)

// JoinRequest is the body of a waiting pool join.
type JoinRequest struct {
	EntrantId    string   `json:"entrant_id"`
	EntrantName  string   `json:"entrant_name"`
	EntrantEmail string   `json:"entrant_email"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
}

func (f *JoinRequest) Validate() error {
	return ValidateStruct(f,
		v.Field(&f.EntrantId, v.Required, v.Length(1, 128)),
		v.Field(&f.EntrantName, v.Length(0, 255)),
		v.Field(&f.EntrantEmail, v.Length(0, 255), is.EmailFormat),
		v.Field(&f.Latitude, v.When(f.Longitude != nil, v.NotNil), v.Min(-90.0), v.Max(90.0)),
		v.Field(&f.Longitude, v.When(f.Latitude != nil, v.NotNil), v.Min(-180.0), v.Max(180.0)),
	)
}

// DrawRequest is the body of a draw or a replenishment.
type DrawRequest struct {
	Slots                      int  `json:"slots"`
	ResponseWindowHours        *int `json:"response_window_hours"`
	DefaultResponseWindowHours *int `json:"default_response_window_hours"`
}

func (f *DrawRequest) Validate() error {
	return ValidateStruct(f,
		v.Field(&f.Slots, v.Required, v.Min(1)),
		v.Field(&f.ResponseWindowHours, v.Min(0), v.Max(entity.MaxResponseWindowHours)),
		v.Field(&f.DefaultResponseWindowHours, v.Min(0), v.Max(entity.MaxResponseWindowHours)),
	)
}

// DeclineRequest is the body of a decline.
type DeclineRequest struct {
	Reason string `json:"reason"`
}

func (f *DeclineRequest) Validate() error {
	return ValidateStruct(f,
		v.Field(&f.Reason, v.Required, v.Length(1, 500)),
	)
}

// NotifyRequest is an organizer message to the entrants of an event. An empty
// status addresses every entrant.
type NotifyRequest struct {
	Status  string `json:"status"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

func (f *NotifyRequest) Validate() error {
	statuses := make([]interface{}, 0, len(entity.EntryStatuses))
	for _, st := range entity.EntryStatuses {
		statuses = append(statuses, st.String())
	}
	return ValidateStruct(f,
		v.Field(&f.Status, v.In(statuses...)),
		v.Field(&f.Title, v.Required, v.Length(1, 200)),
		v.Field(&f.Message, v.Required, v.Length(1, 2000)),
	)
}
