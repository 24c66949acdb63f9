package entity

import (
	"time"

	"github.com/google/uuid"
)

type MembershipStatus string

const (
	MembershipStatusActive MembershipStatus = "active"
	// MembershipStatusCancellationRequested: the member picked a reason but
	// has not confirmed. Nothing durable happened yet.
	MembershipStatusCancellationRequested MembershipStatus = "cancellation_requested"
	// MembershipStatusCancelled is terminal.
	MembershipStatusCancelled MembershipStatus = "cancelled"
)

// Membership is a user's paid slot in a group. Created on confirmed payment,
// ended (soft, via status) by the cancellation flow.
type Membership struct {
	Id       uuid.UUID
	UserId   uuid.UUID
	GroupId  uuid.UUID
	JoinedAt time.Time
	Status   MembershipStatus
	// PendingReason is the reason recorded on cancellation request, consumed
	// by the confirm step.
	PendingReason *CancellationReason
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Group Group
}
