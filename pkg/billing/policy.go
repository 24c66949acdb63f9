package billing

import (
	"math"
	"time"
)

const (
	// ProcessingFeeRate is the percentage withheld from every refund.
	ProcessingFeeRate = 0.05

	// FeeCapCents caps the processing fee at R$2,50. One legacy flow applied
	// an uncapped 5%; the capped variant is the one kept.
	FeeCapCents int64 = 250

	// EarlyExitDays marks a cancellation as "early": members leaving within
	// their first days get the longer restriction.
	EarlyExitDays = 5

	// RestrictionDaysDefault and RestrictionDaysEarly are the cooldowns (in
	// calendar days) before the user may join a new group.
	RestrictionDaysDefault = 15
	RestrictionDaysEarly   = 30
)

// Outcome is the financial and policy result of a cancellation.
type Outcome struct {
	RefundCents      int64
	FeeCents         int64
	FinalRefundCents int64
	RestrictionDays  int
	RestrictionUntil time.Time
}

// ApplyPolicy deducts the processing fee from a prorated refund and decides
// the participation restriction. Total over its numeric domain; no side effects.
func ApplyPolicy(p Proration, now time.Time) Outcome {
	fee := int64(math.Round(float64(p.RefundCents) * ProcessingFeeRate))
	if fee > FeeCapCents {
		fee = FeeCapCents
	}

	final := p.RefundCents - fee
	if final < 0 {
		final = 0
	}

	days := RestrictionDaysDefault
	if p.DaysMember < EarlyExitDays {
		days = RestrictionDaysEarly
	}

	return Outcome{
		RefundCents:      p.RefundCents,
		FeeCents:         fee,
		FinalRefundCents: final,
		RestrictionDays:  days,
		RestrictionUntil: now.AddDate(0, 0, days),
	}
}
