package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCotisationStatus(t *testing.T) {
	cases := []struct {
		name           string
		expected, paid int64
		oil, soap, sf  bool
		want           string
	}{
		{"fully paid", 5000, 5000, true, true, true, CotisationPaid},
		{"overpaid still paid", 5000, 6000, true, true, true, CotisationPaid},
		{"cash only", 5000, 5000, false, false, false, CotisationPartial},
		{"partial cash", 5000, 2000, false, false, false, CotisationPartial},
		{"in-kind only", 5000, 0, true, false, false, CotisationPartial},
		{"nothing", 5000, 0, false, false, false, CotisationUnpaid},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := CotisationStatus(tc.expected, tc.paid, tc.oil, tc.soap, tc.sf)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestLoanInterest(t *testing.T) {
	require.Equal(t, int64(5000), LoanInterest(100000, LoanInterestRatePercent))
	require.Equal(t, int64(0), LoanInterest(0, LoanInterestRatePercent))
	// truncated, never rounded up
	require.Equal(t, int64(52), LoanInterest(1050, LoanInterestRatePercent))
}

func TestNextDueDate(t *testing.T) {
	require.Equal(t, date(2024, time.May, 15), NextDueDate(date(2024, time.March, 15)))
	// month-end overflow follows calendar arithmetic
	require.Equal(t, date(2025, time.March, 3), NextDueDate(date(2024, time.December, 31)))
}

func TestLoanOverdue(t *testing.T) {
	due := date(2024, time.June, 1)

	require.True(t, LoanOverdue(due, date(2024, time.June, 2), LoanActive))
	require.True(t, LoanOverdue(due, date(2024, time.June, 2), LoanRenewed))
	require.False(t, LoanOverdue(due, date(2024, time.June, 1), LoanActive))
	require.False(t, LoanOverdue(due, date(2024, time.June, 2), LoanRepaid))
}

func TestLoanDueSoon(t *testing.T) {
	due := date(2024, time.June, 10)

	require.True(t, LoanDueSoon(due, date(2024, time.June, 4), LoanActive))
	require.True(t, LoanDueSoon(due, date(2024, time.June, 10), LoanActive))
	require.False(t, LoanDueSoon(due, date(2024, time.June, 2), LoanActive))
	require.False(t, LoanDueSoon(due, date(2024, time.June, 11), LoanActive), "overdue is not due soon")
	require.False(t, LoanDueSoon(due, date(2024, time.June, 4), LoanRepaid))
}

func TestDebtStatus(t *testing.T) {
	require.Equal(t, DebtInProgress, DebtStatus(50000, 0))
	require.Equal(t, DebtInProgress, DebtStatus(50000, 49999))
	require.Equal(t, DebtSettled, DebtStatus(50000, 50000))
	// overpayment is tolerated, not clamped
	require.Equal(t, DebtSettled, DebtStatus(50000, 60000))
}

func TestDebtDueSoonUsesThirtyDayWindow(t *testing.T) {
	due := date(2024, time.July, 1)

	require.True(t, DebtDueSoon(due, date(2024, time.June, 5), DebtInProgress))
	require.False(t, DebtDueSoon(due, date(2024, time.May, 30), DebtInProgress))
	require.False(t, DebtDueSoon(due, date(2024, time.June, 5), DebtSettled))
	require.True(t, DebtOverdue(due, date(2024, time.July, 2), DebtInProgress))
}

func TestRecoveryRate(t *testing.T) {
	entries := []PeriodTotals{
		{Expected: 5000, Paid: 5000},
		{Expected: 5000, Paid: 2500},
	}
	require.Equal(t, 75, RecoveryRate(entries))

	require.Equal(t, 0, RecoveryRate(nil))
	require.Equal(t, 100, RecoveryRate([]PeriodTotals{{Expected: 5000, Paid: 5000}}))
}
