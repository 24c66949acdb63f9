package dto

import (
	"time"

	"github.com/google/uuid"
)

type RequestCancellationRequest struct {
	Reason string `json:"reason" validate:"required,oneof=problems_group no_longer_use money_tight too_long admin_communication other"`
}

// CancellationPreviewResponse is returned when a member asks to cancel.
// Nothing is final until the confirm call lands.
type CancellationPreviewResponse struct {
	MembershipId     uuid.UUID `json:"membership_id"`
	Reason           string    `json:"reason"`
	DaysMember       int       `json:"days_member"`
	DaysRemaining    int       `json:"days_remaining"`
	RefundCents      int64     `json:"refund_cents"`
	FeeCents         int64     `json:"fee_cents"`
	FinalRefundCents int64     `json:"final_refund_cents"`
	RestrictionDays  int       `json:"restriction_days"`
	RestrictedUntil  time.Time `json:"restricted_until"`
}

type CancellationRecordResponse struct {
	Id               uuid.UUID `json:"id"`
	MembershipId     uuid.UUID `json:"membership_id"`
	GroupId          uuid.UUID `json:"group_id"`
	Reason           string    `json:"reason"`
	DaysMember       int       `json:"days_member"`
	RefundCents      int64     `json:"refund_cents"`
	FeeCents         int64     `json:"fee_cents"`
	FinalRefundCents int64     `json:"final_refund_cents"`
	RestrictedUntil  time.Time `json:"restricted_until"`
	CancelledAt      time.Time `json:"cancelled_at"`
}
