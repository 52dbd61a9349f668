package pricing

import (
	"math"
	"testing"
	"time"

	"hostel-mgmt-be/internal/constant"
)

func TestCalculateUpgrade(t *testing.T) {
	q := Calculate(100000, 130000, 6)

	if q.YearlyDifference != 30000 {
		t.Errorf("YearlyDifference = %v, want 30000", q.YearlyDifference)
	}
	if !q.IsUpgrade || q.IsDowngrade {
		t.Errorf("direction flags wrong: upgrade=%v downgrade=%v", q.IsUpgrade, q.IsDowngrade)
	}
	if math.Abs(q.UpgradePaymentRequired-15000) > 1e-9 {
		t.Errorf("UpgradePaymentRequired = %v, want 15000", q.UpgradePaymentRequired)
	}
	if q.DowngradeWalletCredit != 0 {
		t.Errorf("DowngradeWalletCredit = %v, want 0", q.DowngradeWalletCredit)
	}
}

func TestCalculateDowngrade(t *testing.T) {
	q := Calculate(130000, 100000, 6)

	if q.YearlyDifference != -30000 {
		t.Errorf("YearlyDifference = %v, want -30000", q.YearlyDifference)
	}
	if q.IsUpgrade || !q.IsDowngrade {
		t.Errorf("direction flags wrong: upgrade=%v downgrade=%v", q.IsUpgrade, q.IsDowngrade)
	}
	if math.Abs(q.DowngradeWalletCredit-15000) > 1e-9 {
		t.Errorf("DowngradeWalletCredit = %v, want 15000", q.DowngradeWalletCredit)
	}
	if q.UpgradePaymentRequired != 0 {
		t.Errorf("UpgradePaymentRequired = %v, want 0", q.UpgradePaymentRequired)
	}
}

func TestCalculateSignInvariant(t *testing.T) {
	prices := []float64{50000, 80000, 100000, 130000, 200000}
	for _, current := range prices {
		for _, requested := range prices {
			q := Calculate(current, requested, 7)
			switch {
			case requested > current:
				if !q.IsUpgrade || q.DowngradeWalletCredit != 0 {
					t.Errorf("Calculate(%v, %v): want pure upgrade", current, requested)
				}
			case requested < current:
				if !q.IsDowngrade || q.UpgradePaymentRequired != 0 {
					t.Errorf("Calculate(%v, %v): want pure downgrade", current, requested)
				}
			default:
				if q.IsUpgrade || q.IsDowngrade || q.UpgradePaymentRequired != 0 || q.DowngradeWalletCredit != 0 {
					t.Errorf("Calculate(%v, %v): want zero quote", current, requested)
				}
			}
		}
	}
}

func TestRemainingMonthsBounds(t *testing.T) {
	// Walk a full year of dates; every result must be a month count a fee
	// can legally be pro-rated over.
	day := time.Date(2025, time.January, 15, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 365; i += 7 {
		got := RemainingMonthsAt(day.AddDate(0, 0, i), constant.AcademicYearStartMonth)
		if got < 1 || got > 12 {
			t.Errorf("RemainingMonthsAt(%v) = %d, want within [1, 12]", day.AddDate(0, 0, i), got)
		}
	}
}

func TestRemainingMonthsAtYearStart(t *testing.T) {
	// First day of the academic year: the whole year remains.
	start := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	if got := RemainingMonthsAt(start, 6); got != 12 {
		t.Errorf("RemainingMonthsAt(year start) = %d, want 12", got)
	}

	// Half a year in.
	mid := time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC)
	got := RemainingMonthsAt(mid, 6)
	if got < 5 || got > 7 {
		t.Errorf("RemainingMonthsAt(mid-year) = %d, want about 6", got)
	}

	// Just before the next academic year starts.
	late := time.Date(2026, time.May, 20, 0, 0, 0, 0, time.UTC)
	if got := RemainingMonthsAt(late, 6); got != 1 {
		t.Errorf("RemainingMonthsAt(year end) = %d, want floor of 1", got)
	}
}

func TestAdjustUpgradeForPaid(t *testing.T) {
	q := Calculate(100000, 130000, 6)

	tests := []struct {
		name        string
		alreadyPaid float64
		want        float64
	}{
		{"nothing paid keeps pro-rated amount", 0, 15000},
		{"fully paid pays flat yearly difference", 100000, 30000},
		{"overpaid still pays flat yearly difference", 120000, 30000},
		{"partially paid owes remainder plus pro-ration", 60000, 40000 + 15000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AdjustUpgradeForPaid(q, 100000, tt.alreadyPaid)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("AdjustUpgradeForPaid(paid=%v) = %v, want %v", tt.alreadyPaid, got, tt.want)
			}
		})
	}
}

func TestAdjustUpgradeForPaidNeverNegative(t *testing.T) {
	// Tiny upgrade, huge partial payment credit cannot flip the sign.
	q := Calculate(100000, 100001, 1)
	if got := AdjustUpgradeForPaid(q, 100000, 0); got < 0 {
		t.Errorf("adjusted payment went negative: %v", got)
	}
}

func TestAdjustUpgradeForPaidIgnoresDowngrades(t *testing.T) {
	q := Calculate(130000, 100000, 6)
	if got := AdjustUpgradeForPaid(q, 130000, 50000); got != 0 {
		t.Errorf("downgrade produced an upgrade payment: %v", got)
	}
}
