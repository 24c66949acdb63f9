package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidCancellationReason(t *testing.T) {
	valid := []CancellationReason{
		ReasonProblemsGroup,
		ReasonNoLongerUse,
		ReasonMoneyTight,
		ReasonTooLong,
		ReasonAdminCommunication,
		ReasonOther,
	}
	for _, r := range valid {
		assert.True(t, ValidCancellationReason(r), "expected %q to be valid", r)
	}

	invalid := []CancellationReason{"", "whatever", "MONEY_TIGHT", "problems-group"}
	for _, r := range invalid {
		assert.False(t, ValidCancellationReason(r), "expected %q to be invalid", r)
	}
}

func TestUserIsRestricted(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	u := &User{}
	assert.False(t, u.IsRestricted(now), "nil restriction means unrestricted")

	future := now.Add(24 * time.Hour)
	u.RestrictedUntil = &future
	assert.True(t, u.IsRestricted(now))

	past := now.Add(-time.Minute)
	u.RestrictedUntil = &past
	assert.False(t, u.IsRestricted(now), "expired restriction no longer applies")
}

func TestGroupHasOpenSlot(t *testing.T) {
	g := &Group{MaxMembers: 4, CurrentMembers: 3}
	assert.True(t, g.HasOpenSlot())

	g.CurrentMembers = 4
	assert.False(t, g.HasOpenSlot())
}

func TestOrderTerminal(t *testing.T) {
	cases := map[OrderStatus]bool{
		OrderStatusPending: false,
		OrderStatusPaid:    true,
		OrderStatusFailed:  true,
		OrderStatusExpired: true,
	}
	for status, want := range cases {
		o := &Order{Status: status}
		assert.Equal(t, want, o.Terminal(), "status %q", status)
	}
}
