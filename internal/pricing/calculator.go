// FILE: internal/pricing/calculator.go
package pricing

import (
	"math"
	"time"

	"hostel-mgmt-be/internal/constant"
)

const daysPerMonth = 30.44

// Quote is the money movement implied by swapping one yearly room price for
// another, pro-rated over the rest of the academic year.
type Quote struct {
	YearlyDifference   float64
	MonthlyCurrent     float64
	MonthlyRequested   float64
	RemainingMonths    int
	ProRatedDifference float64

	IsUpgrade   bool
	IsDowngrade bool

	UpgradePaymentRequired float64
	DowngradeWalletCredit  float64
}

// RemainingMonthsAt returns how many whole months are left in the academic
// year containing now. The result is always in [1, 12]: a change filed in the
// last month still carries one month of pro-ration.
func RemainingMonthsAt(now time.Time, startMonth int) int {
	start := time.Date(now.Year(), time.Month(startMonth), 1, 0, 0, 0, 0, now.Location())
	if int(now.Month()) < startMonth {
		start = time.Date(now.Year()-1, time.Month(startMonth), 1, 0, 0, 0, 0, now.Location())
	}

	elapsed := now.Sub(start).Hours() / 24 / daysPerMonth
	if elapsed < 0 {
		elapsed = 0
	}
	remaining := 12 - int(math.Ceil(elapsed))
	if remaining < 1 {
		return 1
	}
	if remaining > 12 {
		return 12
	}
	return remaining
}

// RemainingMonths uses the configured academic year start and the wall clock.
func RemainingMonths() int {
	return RemainingMonthsAt(time.Now(), constant.AcademicYearStartMonth)
}

// Calculate prices a room change. Prices are yearly per-student amounts. A
// positive difference is an upgrade the student pays for; a negative one is a
// downgrade credited to their wallet. Equal prices produce a zero quote with
// neither flag set.
func Calculate(currentPrice, requestedPrice float64, remainingMonths int) Quote {
	yearlyDiff := requestedPrice - currentPrice
	monthlyCurrent := currentPrice / 12
	monthlyRequested := requestedPrice / 12
	proRated := (monthlyRequested - monthlyCurrent) * float64(remainingMonths)

	q := Quote{
		YearlyDifference:   yearlyDiff,
		MonthlyCurrent:     monthlyCurrent,
		MonthlyRequested:   monthlyRequested,
		RemainingMonths:    remainingMonths,
		ProRatedDifference: proRated,
		IsUpgrade:          yearlyDiff > 0,
		IsDowngrade:        yearlyDiff < 0,
	}
	if q.IsUpgrade {
		q.UpgradePaymentRequired = proRated
	}
	if q.IsDowngrade {
		q.DowngradeWalletCredit = math.Abs(proRated)
	}
	return q
}

// AdjustUpgradeForPaid reduces an upgrade payment by what the student already
// paid toward the current room. A fully paid current room leaves only the
// flat yearly difference; a partially paid one owes the unpaid remainder plus
// the pro-rated difference. Never negative.
func AdjustUpgradeForPaid(q Quote, currentPrice float64, alreadyPaid float64) float64 {
	if !q.IsUpgrade || alreadyPaid <= 0 {
		return q.UpgradePaymentRequired
	}

	var adjusted float64
	if alreadyPaid >= currentPrice {
		adjusted = q.YearlyDifference
	} else {
		adjusted = (currentPrice - alreadyPaid) + q.ProRatedDifference
	}
	if adjusted < 0 {
		return 0
	}
	return adjusted
}
