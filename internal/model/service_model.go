package model

import (
	"time"

	"github.com/google/uuid"
)

type StreamingService struct {
	Id                  uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name                string    `gorm:"type:varchar(255);not null"`
	Slug                string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Category            string    `gorm:"type:varchar(100)"`
	MaxSlots            int       `gorm:"not null;default:4"`
	SuggestedPriceCents int64     `gorm:"not null;default:0"`
	LogoURL             string    `gorm:"type:text"`
	IsActive            bool      `gorm:"default:true"`
	SortOrder           int       `gorm:"default:0"`
	CreatedAt           time.Time `gorm:"autoCreateTime"`
	UpdatedAt           time.Time `gorm:"autoUpdateTime"`
}

func (StreamingService) TableName() string {
	return "streaming_services"
}
