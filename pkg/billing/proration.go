package billing

import (
	"math"
	"time"
)

// DaysInCycle is the fixed billing cycle length used for proration.
// The business rule divides by a flat 30 regardless of the calendar month.
const DaysInCycle = 30

// Proration is the result of splitting a billing cycle at a point in time.
type Proration struct {
	DaysMember    int
	DaysRemaining int
	RefundCents   int64
}

// Prorate computes how much of the current cycle a member has left and the
// matching refund, in integer cents. joinedAt must not be after now; a member
// past the full cycle gets nothing back.
func Prorate(joinedAt, now time.Time, monthlyPriceCents int64) Proration {
	daysMember := int(math.Ceil(now.Sub(joinedAt).Hours() / 24))
	if daysMember < 0 {
		daysMember = 0
	}

	daysRemaining := DaysInCycle - daysMember
	if daysRemaining < 0 {
		daysRemaining = 0
	}

	refund := int64(math.Round(float64(monthlyPriceCents) * float64(daysRemaining) / DaysInCycle))

	return Proration{
		DaysMember:    daysMember,
		DaysRemaining: daysRemaining,
		RefundCents:   refund,
	}
}
