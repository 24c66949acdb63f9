package model

import (
	"time"

	"github.com/google/uuid"
)

// CancellationRecord is append-only. The unique index on membership_id
// rejects a second confirmation of the same membership at the store level.
type CancellationRecord struct {
	Id                 uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	MembershipId       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	UserId             uuid.UUID `gorm:"type:uuid;not null;index"`
	GroupId            uuid.UUID `gorm:"type:uuid;not null;index"`
	Reason             string    `gorm:"type:varchar(50);not null"`
	DaysMember         int       `gorm:"not null"`
	RefundAmountCents  int64     `gorm:"not null"`
	ProcessingFeeCents int64     `gorm:"not null"`
	FinalRefundCents   int64     `gorm:"not null"`
	RestrictionDays    int       `gorm:"not null"`
	RestrictionUntil   time.Time `gorm:"not null"`
	CreatedAt          time.Time `gorm:"autoCreateTime"`

	// Relations
	Membership Membership `gorm:"foreignKey:MembershipId"`
	User       User       `gorm:"foreignKey:UserId"`
	Group      Group      `gorm:"foreignKey:GroupId"`
}

func (CancellationRecord) TableName() string {
	return "cancellation_records"
}
