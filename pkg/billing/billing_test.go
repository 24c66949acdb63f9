package billing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func daysAgo(d int) time.Time {
	return testNow.AddDate(0, 0, -d)
}

func TestProrate(t *testing.T) {
	tests := []struct {
		name              string
		joinedAt          time.Time
		priceCents        int64
		wantDaysMember    int
		wantDaysRemaining int
		wantRefund        int64
	}{
		{
			name:              "joined today",
			joinedAt:          testNow,
			priceCents:        3000,
			wantDaysMember:    0,
			wantDaysRemaining: 30,
			wantRefund:        3000,
		},
		{
			name:              "three days in",
			joinedAt:          daysAgo(3),
			priceCents:        3000,
			wantDaysMember:    3,
			wantDaysRemaining: 27,
			wantRefund:        2700,
		},
		{
			name:              "twenty days in",
			joinedAt:          daysAgo(20),
			priceCents:        1000,
			wantDaysMember:    20,
			wantDaysRemaining: 10,
			wantRefund:        333,
		},
		{
			name:              "full cycle elapsed",
			joinedAt:          daysAgo(30),
			priceCents:        3000,
			wantDaysMember:    30,
			wantDaysRemaining: 0,
			wantRefund:        0,
		},
		{
			name:              "past the cycle",
			joinedAt:          daysAgo(31),
			priceCents:        3000,
			wantDaysMember:    31,
			wantDaysRemaining: 0,
			wantRefund:        0,
		},
		{
			name:              "partial day rounds up",
			joinedAt:          testNow.Add(-36 * time.Hour),
			priceCents:        3000,
			wantDaysMember:    2,
			wantDaysRemaining: 28,
			wantRefund:        2800,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Prorate(tt.joinedAt, testNow, tt.priceCents)
			assert.Equal(t, tt.wantDaysMember, got.DaysMember)
			assert.Equal(t, tt.wantDaysRemaining, got.DaysRemaining)
			assert.Equal(t, tt.wantRefund, got.RefundCents)
		})
	}
}

func TestProrate_RefundFormula(t *testing.T) {
	// For every day count under a full cycle the refund must track
	// price * remaining / 30 within a cent.
	const price = int64(2990)
	for d := 0; d < DaysInCycle; d++ {
		p := Prorate(daysAgo(d), testNow, price)
		expected := float64(price) * float64(DaysInCycle-d) / DaysInCycle
		assert.InDelta(t, expected, float64(p.RefundCents), 1, "daysMember=%d", d)
	}
}

func TestApplyPolicy_FeeBounds(t *testing.T) {
	for d := 0; d <= 40; d++ {
		p := Prorate(daysAgo(d), testNow, 5000)
		out := ApplyPolicy(p, testNow)

		assert.GreaterOrEqual(t, out.FinalRefundCents, int64(0), "daysMember=%d", d)
		assert.LessOrEqual(t, out.FinalRefundCents, out.RefundCents, "daysMember=%d", d)
		assert.LessOrEqual(t, out.FeeCents, FeeCapCents, "daysMember=%d", d)
		assert.LessOrEqual(t, out.FeeCents, out.RefundCents, "daysMember=%d", d)
	}
}

func TestApplyPolicy_RestrictionDays(t *testing.T) {
	for d := 0; d <= 40; d++ {
		p := Prorate(daysAgo(d), testNow, 5000)
		out := ApplyPolicy(p, testNow)

		want := RestrictionDaysDefault
		if d < EarlyExitDays {
			want = RestrictionDaysEarly
		}
		assert.Equal(t, want, out.RestrictionDays, "daysMember=%d", d)
		assert.Equal(t, testNow.AddDate(0, 0, want), out.RestrictionUntil, "daysMember=%d", d)
	}
}

func TestCancellationScenarios(t *testing.T) {
	tests := []struct {
		name            string
		daysMember      int
		priceCents      int64
		wantRefund      int64
		wantFee         int64
		wantFinal       int64
		wantRestriction int
	}{
		{
			name:            "early exit, R$30 group",
			daysMember:      3,
			priceCents:      3000,
			wantRefund:      2700,
			wantFee:         135,
			wantFinal:       2565,
			wantRestriction: 30,
		},
		{
			name:            "late exit, R$10 group",
			daysMember:      20,
			priceCents:      1000,
			wantRefund:      333,
			wantFee:         17,
			wantFinal:       316,
			wantRestriction: 15,
		},
		{
			name:            "past the cycle, nothing back",
			daysMember:      31,
			priceCents:      3000,
			wantRefund:      0,
			wantFee:         0,
			wantFinal:       0,
			wantRestriction: 15,
		},
		{
			name:            "expensive group hits the fee cap",
			daysMember:      1,
			priceCents:      30000,
			wantRefund:      29000,
			wantFee:         250,
			wantFinal:       28750,
			wantRestriction: 30,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Prorate(daysAgo(tt.daysMember), testNow, tt.priceCents)
			out := ApplyPolicy(p, testNow)

			assert.Equal(t, tt.daysMember, p.DaysMember)
			assert.Equal(t, tt.wantRefund, out.RefundCents)
			assert.Equal(t, tt.wantFee, out.FeeCents)
			assert.Equal(t, tt.wantFinal, out.FinalRefundCents)
			assert.Equal(t, tt.wantRestriction, out.RestrictionDays)
		})
	}
}
