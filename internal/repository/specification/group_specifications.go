package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByEmail filters users by email.
type ByEmail struct {
	Email string
}

func (s ByEmail) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("email = ?", s.Email)
}

// PublicGroups selects approved groups that are visible in the catalog.
type PublicGroups struct{}

func (s PublicGroups) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("approved = ?", true).
		Where("status IN ?", []string{"active_with_slots", "queue"})
}

// GroupAdministeredBy filters groups by their admin.
type GroupAdministeredBy struct {
	AdminID uuid.UUID
}

func (s GroupAdministeredBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("admin_id = ?", s.AdminID)
}

// MembershipOf selects the membership rows of a user in a group.
type MembershipOf struct {
	UserID  uuid.UUID
	GroupID uuid.UUID
}

func (s MembershipOf) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ? AND group_id = ?", s.UserID, s.GroupID)
}
