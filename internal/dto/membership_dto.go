package dto

import (
	"time"

	"github.com/google/uuid"
)

type JoinGroupRequest struct {
	GroupId       uuid.UUID `json:"group_id" validate:"required"`
	PaymentMethod string    `json:"payment_method" validate:"required,oneof=pix credit_card"`
}

type MembershipResponse struct {
	Id            uuid.UUID      `json:"id"`
	GroupId       uuid.UUID      `json:"group_id"`
	Status        string         `json:"status"`
	PendingReason *string        `json:"pending_reason,omitempty"`
	JoinedAt      time.Time      `json:"joined_at"`
	Group         *GroupResponse `json:"group,omitempty"`
}
