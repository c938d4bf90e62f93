package domain

import (
	"time"

	"e2d-ledger/internal/pkg/money"
)

// The functions in this file are the status-derivation rules of the
// obligation ledger. They are pure: any time-relative label takes the
// reference day as an explicit parameter instead of reading the clock.

// CotisationStatus derives the display status of a monthly due from its
// cash amounts and the three in-kind flags. Paid requires the full cash
// amount and every flag; a single franc or a single flag makes it
// partial; untouched records are unpaid.
func CotisationStatus(expected, paid int64, oilPaid, soapPaid, sportFundPaid bool) string {
	if paid >= expected && oilPaid && soapPaid && sportFundPaid {
		return CotisationPaid
	}
	if paid > 0 || oilPaid || soapPaid || sportFundPaid {
		return CotisationPartial
	}
	return CotisationUnpaid
}

// LoanInterest computes the interest owed on a principal at a whole
// percentage rate. Integer FCFA arithmetic; remainders are truncated.
func LoanInterest(principal int64, ratePercent int64) int64 {
	return principal * ratePercent / 100
}

// NextDueDate returns the due date for a loan granted or renewed on the
// given day.
func NextDueDate(from time.Time) time.Time {
	return DateOnly(from).AddDate(0, LoanTermMonths, 0)
}

// LoanOpen reports whether a loan status still carries an outstanding
// obligation.
func LoanOpen(status string) bool {
	return status == LoanActive || status == LoanRenewed
}

// LoanOverdue reports whether an open loan's due date has passed.
func LoanOverdue(dueDate, today time.Time, status string) bool {
	return LoanOpen(status) && DateOnly(dueDate).Before(DateOnly(today))
}

// LoanDueSoon reports whether an open loan falls due within the 7-day
// warning window. An already-overdue loan is not "due soon".
func LoanDueSoon(dueDate, today time.Time, status string) bool {
	return LoanOpen(status) && dueSoon(dueDate, today, LoanDueSoonDays)
}

// DebtStatus derives a sovereign-fund debt's status from its amounts.
// Overpayment is not clamped: remaining may go negative and the debt is
// simply settled.
func DebtStatus(owed, paid int64) string {
	if owed-paid <= 0 {
		return DebtSettled
	}
	return DebtInProgress
}

// DebtOverdue reports whether an unsettled debt's due date has passed.
func DebtOverdue(dueDate, today time.Time, status string) bool {
	return status == DebtInProgress && DateOnly(dueDate).Before(DateOnly(today))
}

// DebtDueSoon reports whether an unsettled debt falls due within the
// 30-day warning window. The same window applies to the aid's own
// repayment date.
func DebtDueSoon(dueDate, today time.Time, status string) bool {
	return status == DebtInProgress && dueSoon(dueDate, today, DebtDueSoonDays)
}

func dueSoon(dueDate, today time.Time, windowDays int) bool {
	due := DateOnly(dueDate)
	now := DateOnly(today)
	if due.Before(now) {
		return false
	}
	return !due.After(now.AddDate(0, 0, windowDays))
}

// DateOnly strips the time-of-day component; the ledger compares
// calendar dates only.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// PeriodTotals carries a period's expected/paid cotisation amounts for
// in-memory aggregation.
type PeriodTotals struct {
	Expected int64
	Paid     int64
}

// RecoveryRate aggregates a period's cotisations into a whole-number
// recovery percentage (paid over expected).
func RecoveryRate(entries []PeriodTotals) int {
	var expected, paid int64
	for _, e := range entries {
		expected += e.Expected
		paid += e.Paid
	}
	return money.Percent(paid, expected)
}
