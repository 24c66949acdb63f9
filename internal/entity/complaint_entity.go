package entity

import (
	"time"

	"github.com/google/uuid"
)

type ComplaintStatus string

const (
	ComplaintStatusOpen   ComplaintStatus = "open"
	ComplaintStatusClosed ComplaintStatus = "closed"
)

// Complaint is a member's grievance against a group. At most one open
// complaint per user/group pair; cancelling the membership closes it.
type Complaint struct {
	Id          uuid.UUID
	UserId      uuid.UUID
	GroupId     uuid.UUID
	Subject     string
	Description string
	Status      ComplaintStatus
	Resolution  *string
	ClosedAt    *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
