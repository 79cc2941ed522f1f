// Package pricing holds the calendar and money arithmetic for the
// booking engine: day counts, range overlap, base cost, the
// deposit/balance split and late fees. Everything here is pure.
package pricing

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	depositRate = "0.30"
	balanceRate = "0.70"
	lateFeeRate = "1.5"
)

// RentalDays returns the number of chargeable days between pickup and
// returnDate. Partial days round up and a same-day rental still counts
// as one day.
func RentalDays(pickup, returnDate time.Time) int {
	diff := returnDate.Sub(pickup)
	days := int(diff / (24 * time.Hour))
	if diff%(24*time.Hour) > 0 {
		days++
	}
	if days < 1 {
		days = 1
	}
	return days
}

// RangesOverlap reports whether [startA, endA) and [startB, endB)
// intersect. Half-open semantics: a rental ending exactly when another
// begins does not overlap.
func RangesOverlap(startA, endA, startB, endB time.Time) bool {
	return startA.Before(endB) && endA.After(startB)
}

// BaseCost is rental days times the daily price, rounded to 2 decimals.
func BaseCost(pickup, returnDate time.Time, dailyPrice decimal.Decimal) decimal.Decimal {
	days := decimal.NewFromInt(int64(RentalDays(pickup, returnDate)))
	return dailyPrice.Mul(days).Round(2)
}

// DepositAmount is the 30% prepayment collected at booking.
func DepositAmount(total decimal.Decimal) decimal.Decimal {
	return total.Mul(decimal.RequireFromString(depositRate)).Round(2)
}

// BalanceAmount is the 70% due at pickup. Computed independently of
// DepositAmount, so the two may miss the total by up to a cent of
// rounding; callers accept that slack.
func BalanceAmount(total decimal.Decimal) decimal.Decimal {
	return total.Mul(decimal.RequireFromString(balanceRate)).Round(2)
}

// LateFee charges 1.5x the daily price per late day. Zero when the
// vehicle came back on or before the scheduled return.
func LateFee(scheduledReturn, actualReturn time.Time, dailyPrice decimal.Decimal) decimal.Decimal {
	if !actualReturn.After(scheduledReturn) {
		return decimal.Zero
	}
	lateDays := decimal.NewFromInt(int64(RentalDays(scheduledReturn, actualReturn)))
	return dailyPrice.Mul(lateDays).Mul(decimal.RequireFromString(lateFeeRate)).Round(2)
}
