package model

import (
	"time"

	"github.com/google/uuid"
)

type Order struct {
	Id                   uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId               uuid.UUID  `gorm:"type:uuid;not null;index"`
	GroupId              *uuid.UUID `gorm:"type:uuid;index"`
	Method               string     `gorm:"type:varchar(20);not null"`
	Purpose              string     `gorm:"type:varchar(20);not null"`
	AmountCents          int64      `gorm:"not null"`
	Status               string     `gorm:"type:varchar(20);not null;default:'pending';index"`
	GatewayTransactionId *string    `gorm:"type:varchar(255)"`
	SnapToken            *string    `gorm:"type:varchar(255)"`
	QRCodeURL            *string    `gorm:"type:text"`
	PaidAt               *time.Time
	CreatedAt            time.Time `gorm:"autoCreateTime"`
	UpdatedAt            time.Time `gorm:"autoUpdateTime"`

	// Relations
	User  User   `gorm:"foreignKey:UserId"`
	Group *Group `gorm:"foreignKey:GroupId"`
}

func (Order) TableName() string {
	return "orders"
}
