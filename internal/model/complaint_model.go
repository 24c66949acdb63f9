package model

import (
	"time"

	"github.com/google/uuid"
)

type Complaint struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId      uuid.UUID `gorm:"type:uuid;not null;index:idx_complaints_user_group,priority:1"`
	GroupId     uuid.UUID `gorm:"type:uuid;not null;index:idx_complaints_user_group,priority:2"`
	Subject     string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	Status      string    `gorm:"type:varchar(20);not null;default:'open';index"`
	Resolution  *string   `gorm:"type:text"`
	ClosedAt    *time.Time
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`

	// Relations
	User  User  `gorm:"foreignKey:UserId"`
	Group Group `gorm:"foreignKey:GroupId"`
}

func (Complaint) TableName() string {
	return "complaints"
}
