package model

import (
	"time"

	"github.com/google/uuid"
)

type Membership struct {
	Id            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId        uuid.UUID `gorm:"type:uuid;not null;index:idx_memberships_user_group,priority:1"`
	GroupId       uuid.UUID `gorm:"type:uuid;not null;index:idx_memberships_user_group,priority:2"`
	JoinedAt      time.Time `gorm:"not null"`
	Status        string    `gorm:"type:varchar(30);not null;default:'active';index"`
	PendingReason *string   `gorm:"type:varchar(50)"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime"`

	// Relations
	User  User  `gorm:"foreignKey:UserId"`
	Group Group `gorm:"foreignKey:GroupId"`
}

func (Membership) TableName() string {
	return "memberships"
}
