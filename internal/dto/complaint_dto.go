package dto

import (
	"time"

	"github.com/google/uuid"
)

type OpenComplaintRequest struct {
	GroupId     uuid.UUID `json:"group_id" validate:"required"`
	Subject     string    `json:"subject" validate:"required,min=3,max=120"`
	Description string    `json:"description" validate:"required,min=10,max=2000"`
}

type ComplaintResponse struct {
	Id          uuid.UUID  `json:"id"`
	GroupId     uuid.UUID  `json:"group_id"`
	Subject     string     `json:"subject"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	Resolution  *string    `json:"resolution,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	ClosedAt    *time.Time `json:"closed_at,omitempty"`
}

type CloseComplaintRequest struct {
	Resolution string `json:"resolution" validate:"required,min=3,max=500"`
}
