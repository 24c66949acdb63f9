package entity

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string
type UserStatus string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"

	UserStatusPending   UserStatus = "pending"
	UserStatusActive    UserStatus = "active"
	UserStatusSuspended UserStatus = "suspended"
)

type User struct {
	Id            uuid.UUID
	Email         string
	FullName      string
	CPF           string
	PasswordHash  *string
	Role          UserRole
	Status        UserStatus
	EmailVerified bool
	// RestrictedUntil blocks joining new groups until the given date.
	// Set by the cancellation flow, cleared implicitly once passed.
	RestrictedUntil *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsRestricted reports whether the user is inside a participation
// restriction window.
func (u *User) IsRestricted(now time.Time) bool {
	return u.RestrictedUntil != nil && now.Before(*u.RestrictedUntil)
}
