package entity

import (
	"time"

	"github.com/google/uuid"
)

// CancellationReason is the member's stated motive for leaving.
type CancellationReason string

const (
	ReasonProblemsGroup      CancellationReason = "problems_group"
	ReasonNoLongerUse        CancellationReason = "no_longer_use"
	ReasonMoneyTight         CancellationReason = "money_tight"
	ReasonTooLong            CancellationReason = "too_long"
	ReasonAdminCommunication CancellationReason = "admin_communication"
	ReasonOther              CancellationReason = "other"
)

// ValidCancellationReason reports whether code is a known reason.
func ValidCancellationReason(code CancellationReason) bool {
	switch code {
	case ReasonProblemsGroup, ReasonNoLongerUse, ReasonMoneyTight,
		ReasonTooLong, ReasonAdminCommunication, ReasonOther:
		return true
	}
	return false
}

// CancellationRecord is the immutable audit row produced exactly once per
// terminated membership. The unique index on MembershipId is the idempotency
// guard against duplicate confirmations.
type CancellationRecord struct {
	Id                 uuid.UUID
	MembershipId       uuid.UUID
	UserId             uuid.UUID
	GroupId            uuid.UUID
	Reason             CancellationReason
	DaysMember         int
	RefundAmountCents  int64
	ProcessingFeeCents int64
	FinalRefundCents   int64
	RestrictionDays    int
	RestrictionUntil   time.Time
	CreatedAt          time.Time
}
