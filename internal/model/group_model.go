package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Group struct {
	Id                   uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	AdminId              uuid.UUID `gorm:"type:uuid;not null;index"`
	ServiceId            uuid.UUID `gorm:"type:uuid;not null;index"`
	Name                 string    `gorm:"type:varchar(255);not null"`
	Description          string    `gorm:"type:text"`
	PricePerSlotCents    int64     `gorm:"not null"`
	MaxMembers           int       `gorm:"not null"`
	CurrentMembers       int       `gorm:"not null;default:0"`
	Status               string    `gorm:"type:varchar(30);not null;default:'waiting_subscription';index"`
	CredentialsEncrypted *string   `gorm:"type:text"`
	Approved             bool      `gorm:"default:false;index"`
	CreatedAt            time.Time `gorm:"autoCreateTime"`
	UpdatedAt            time.Time `gorm:"autoUpdateTime"`
	DeletedAt            gorm.DeletedAt `gorm:"index"`

	// Relations
	Admin   User             `gorm:"foreignKey:AdminId"`
	Service StreamingService `gorm:"foreignKey:ServiceId"`
}

func (Group) TableName() string {
	return "groups"
}
