package domain

import "errors"

// NotifyStatus represents the lifecycle state of an incident report.
type NotifyStatus string

const (
	StatusPending   NotifyStatus = "pending"
	StatusConfirmed NotifyStatus = "confirmed"
	StatusCancelled NotifyStatus = "cancelled"
)

// validTransitions defines the allowed state machine transitions. A report
// starts pending; confirmed and cancelled are both absorbing terminal states.
var validTransitions = map[NotifyStatus][]NotifyStatus{
	StatusPending: {StatusConfirmed, StatusCancelled},
}

var ErrInvalidTransition = errors.New("invalid status transition")
var ErrValidation = errors.New("validation failed")

// CanTransitionTo reports whether a transition from the current status to next is valid.
func (s NotifyStatus) CanTransitionTo(next NotifyStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Notify is a citizen-submitted record of a local incident. ClientName and
// EventName are denormalized snapshots taken at creation time; Date, Time and
// CEP are stored as the resident typed them, not validated as calendar or
// postal types.
type Notify struct {
	ID          string       `json:"id"`
	ClientID    string       `json:"clientId"`
	ClientName  string       `json:"clientName"`
	EventID     string       `json:"eventId"`
	EventName   string       `json:"eventName"`
	Date        string       `json:"date"`
	Time        string       `json:"time"`
	CEP         string       `json:"cep"`
	Description string       `json:"description"`
	Status      NotifyStatus `json:"status"`
}
