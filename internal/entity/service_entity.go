package entity

import (
	"github.com/google/uuid"
)

// StreamingService is a catalog row for a subscription that can be shared
// (streaming, software, courses). Seeded by cmd/seed, managed by admins.
type StreamingService struct {
	Id                  uuid.UUID
	Name                string
	Slug                string
	Category            string
	MaxSlots            int
	SuggestedPriceCents int64
	LogoURL             string
	IsActive            bool
	SortOrder           int
}
