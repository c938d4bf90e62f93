package services

import (
	"context"
	"testing"
	"time"

	"e2d-ledger/internal/adapters/persistence/models"
	"e2d-ledger/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLoanFixture(t *testing.T) (*LoanService, *fakeLoanRepo, *models.Member) {
	t.Helper()
	memberRepo := newFakeMemberRepo()
	member := &models.Member{
		LastName:  "Mbarga",
		FirstName: "Paul",
		Email:     "paul@example.com",
		Status:    domain.MemberActive,
	}
	require.NoError(t, memberRepo.Create(context.Background(), member))

	loanRepo := newFakeLoanRepo()
	return NewLoanService(loanRepo, memberRepo), loanRepo, member
}

func TestLoanCreateFixesInterestAndDueDate(t *testing.T) {
	svc, _, member := newLoanFixture(t)

	loan, err := svc.Create(context.Background(), &CreateLoanInput{
		BorrowerID: member.ID,
		Principal:  100_000,
		GrantDate:  "2026-03-15",
	}, 1)
	require.NoError(t, err)

	assert.Equal(t, int64(5_000), loan.InterestAmount)
	assert.Equal(t, int64(domain.LoanInterestRatePercent), loan.InterestRate)
	assert.Equal(t, "2026-05-15", loan.DueDate.Format("2006-01-02"))
	assert.Equal(t, domain.LoanActive, loan.Status)
	assert.Equal(t, 0, loan.RenewalCount)
}

func TestLoanCreateRejectsUnknownBorrower(t *testing.T) {
	svc, _, _ := newLoanFixture(t)

	_, err := svc.Create(context.Background(), &CreateLoanInput{
		BorrowerID: 999,
		Principal:  50_000,
	}, 1)
	assert.ErrorIs(t, err, ErrMemberNotFound)
}

func TestLoanCreateRejectsNonPositivePrincipal(t *testing.T) {
	svc, _, member := newLoanFixture(t)

	_, err := svc.Create(context.Background(), &CreateLoanInput{
		BorrowerID: member.ID,
		Principal:  0,
	}, 1)
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestLoanRenewKeepsInterestFrozen(t *testing.T) {
	svc, _, member := newLoanFixture(t)

	loan, err := svc.Create(context.Background(), &CreateLoanInput{
		BorrowerID: member.ID,
		Principal:  200_000,
		GrantDate:  "2026-01-10",
	}, 1)
	require.NoError(t, err)
	interestAtGrant := loan.InterestAmount

	renewed, err := svc.Renew(context.Background(), loan.ID)
	require.NoError(t, err)

	assert.Equal(t, domain.LoanRenewed, renewed.Status)
	assert.Equal(t, 1, renewed.RenewalCount)
	assert.Equal(t, interestAtGrant, renewed.InterestAmount)

	wantDue := domain.NextDueDate(time.Now())
	assert.True(t, renewed.DueDate.Equal(wantDue), "due date should move two months out from today")

	// A second renewal still does not touch the interest.
	renewed, err = svc.Renew(context.Background(), loan.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, renewed.RenewalCount)
	assert.Equal(t, interestAtGrant, renewed.InterestAmount)
}

func TestLoanRepayClosesLoan(t *testing.T) {
	svc, _, member := newLoanFixture(t)

	loan, err := svc.Create(context.Background(), &CreateLoanInput{
		BorrowerID: member.ID,
		Principal:  80_000,
	}, 1)
	require.NoError(t, err)

	repaid, err := svc.Repay(context.Background(), loan.ID, "2026-04-01")
	require.NoError(t, err)
	assert.Equal(t, domain.LoanRepaid, repaid.Status)
	require.NotNil(t, repaid.RepaymentDate)
	assert.Equal(t, "2026-04-01", repaid.RepaymentDate.Format("2006-01-02"))

	// Closed loans cannot be repaid or renewed again.
	_, err = svc.Repay(context.Background(), loan.ID, "")
	assert.ErrorIs(t, err, ErrLoanNotOpen)
	_, err = svc.Renew(context.Background(), loan.ID)
	assert.ErrorIs(t, err, ErrLoanNotOpen)
}

func TestLoanAlertsPartitionsOpenLoans(t *testing.T) {
	svc, loanRepo, member := newLoanFixture(t)

	today := domain.DateOnly(time.Now())
	mkLoan := func(due time.Time, status string) {
		require.NoError(t, loanRepo.Create(context.Background(), &models.Loan{
			BorrowerID: member.ID,
			Principal:  10_000,
			DueDate:    due,
			Status:     status,
		}))
	}

	mkLoan(today.AddDate(0, 0, -1), domain.LoanActive)  // overdue
	mkLoan(today.AddDate(0, 0, 3), domain.LoanActive)   // due soon
	mkLoan(today.AddDate(0, 0, 30), domain.LoanActive)  // neither
	mkLoan(today.AddDate(0, 0, -10), domain.LoanRepaid) // closed, ignored

	alerts, err := svc.Alerts(context.Background())
	require.NoError(t, err)
	assert.Len(t, alerts.Overdue, 1)
	assert.Len(t, alerts.DueSoon, 1)
}
