package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateGroupRequest struct {
	ServiceId        uuid.UUID `json:"service_id" validate:"required"`
	Name             string    `json:"name" validate:"required,min=3,max=120"`
	Description      string    `json:"description" validate:"max=500"`
	TotalSlots       int       `json:"total_slots" validate:"required,min=2,max=10"`
	PricePerSlotCents int64    `json:"price_per_slot_cents" validate:"required,min=100"`
	AccessCredential string    `json:"access_credential" validate:"required"`
}

type GroupResponse struct {
	Id                uuid.UUID        `json:"id"`
	Name              string           `json:"name"`
	Description       string           `json:"description"`
	Status            string           `json:"status"`
	Approved          bool             `json:"approved"`
	TotalSlots        int              `json:"total_slots"`
	CurrentMembers    int              `json:"current_members"`
	OpenSlots         int              `json:"open_slots"`
	PricePerSlotCents int64            `json:"price_per_slot_cents"`
	Service           *ServiceResponse `json:"service,omitempty"`
	CreatedAt         time.Time        `json:"created_at"`
}

type ServiceResponse struct {
	Id                uuid.UUID `json:"id"`
	Name              string    `json:"name"`
	Slug              string    `json:"slug"`
	MonthlyPriceCents int64     `json:"monthly_price_cents"`
	MaxSlots          int       `json:"max_slots"`
}

type ListGroupsRequest struct {
	ServiceSlug string `query:"service"`
	Page        int    `query:"page"`
	PageSize    int    `query:"page_size"`
}

type ApproveGroupRequest struct {
	Approved bool `json:"approved"`
}
