package events

import "time"

// Event type codes published on the bus. The notification registry keys off
// these codes.
const (
	TypeMemberJoined        = "MEMBER_JOINED"
	TypeMembershipCancelled = "MEMBERSHIP_CANCELLED"
	TypePaymentConfirmed    = "PAYMENT_CONFIRMED"
	TypePaymentFailed       = "PAYMENT_FAILED"
	TypeGroupActivated      = "GROUP_ACTIVATED"
	TypeComplaintOpened     = "COMPLAINT_OPENED"
	TypeComplaintClosed     = "COMPLAINT_CLOSED"
	TypeWalletCredited      = "WALLET_CREDITED"
)

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "MEMBER_JOINED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent is the plain implementation used by publishers.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}
