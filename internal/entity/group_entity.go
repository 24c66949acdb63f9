package entity

import (
	"time"

	"github.com/google/uuid"
)

type GroupStatus string

const (
	// GroupStatusWaitingSubscription: the admin has not yet activated the
	// underlying subscription, members are not charged.
	GroupStatusWaitingSubscription GroupStatus = "waiting_subscription"
	// GroupStatusQueue: full subscription, applicants wait for a slot.
	GroupStatusQueue GroupStatus = "queue"
	// GroupStatusActiveWithSlots: active and accepting members.
	GroupStatusActiveWithSlots GroupStatus = "active_with_slots"
)

// Group is a shared-subscription circle. Invariant: CurrentMembers never
// exceeds MaxMembers; membership writes go through the unit of work that
// also adjusts the counter.
type Group struct {
	Id                uuid.UUID
	AdminId           uuid.UUID
	ServiceId         uuid.UUID
	Name              string
	Description       string
	PricePerSlotCents int64
	MaxMembers        int
	CurrentMembers    int
	Status            GroupStatus
	// CredentialsEncrypted holds the gateway-tokenized access secret.
	CredentialsEncrypted *string
	Approved             bool
	CreatedAt            time.Time
	UpdatedAt            time.Time

	Service StreamingService
}

// HasOpenSlot reports whether a new member fits.
func (g *Group) HasOpenSlot() bool {
	return g.CurrentMembers < g.MaxMembers
}
