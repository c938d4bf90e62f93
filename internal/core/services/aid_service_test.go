package services

import (
	"context"
	"testing"

	"e2d-ledger/internal/adapters/persistence/models"
	"e2d-ledger/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAidFixture(t *testing.T) (*AidService, *fakeDebtRepo, *models.Member, *models.AidType) {
	t.Helper()
	memberRepo := newFakeMemberRepo()
	member := &models.Member{
		LastName:  "Abena",
		FirstName: "Sophie",
		Email:     "sophie@example.com",
		Status:    domain.MemberActive,
	}
	require.NoError(t, memberRepo.Create(context.Background(), member))

	typeRepo := newFakeAidTypeRepo()
	aidType := &models.AidType{
		Name:          "Maladie",
		DefaultAmount: 50_000,
		DelayMonths:   6,
		IsActive:      true,
	}
	require.NoError(t, typeRepo.Create(context.Background(), aidType))

	debtRepo := newFakeDebtRepo()
	svc := NewAidService(newFakeAidRepo(), typeRepo, debtRepo, memberRepo)
	return svc, debtRepo, member, aidType
}

func TestAidCreateWithDebt(t *testing.T) {
	svc, _, member, aidType := newAidFixture(t)

	aid, warning, err := svc.Create(context.Background(), &CreateAidInput{
		BeneficiaryID: member.ID,
		TypeID:        aidType.ID,
		GrantDate:     "2026-02-01",
		CreateDebt:    true,
	}, 1)
	require.NoError(t, err)
	assert.Empty(t, warning)

	// Amount falls back to the type default; the deadline follows the
	// type's delay.
	assert.Equal(t, int64(50_000), aid.Amount)
	assert.Equal(t, "2026-08-01", aid.RepaymentDueDate.Format("2006-01-02"))

	debt, err := svc.GetDebtByAid(context.Background(), aid.ID)
	require.NoError(t, err)
	assert.Equal(t, aid.Amount, debt.OwedAmount)
	assert.Equal(t, aid.Amount, debt.RemainingAmount)
	assert.Equal(t, domain.DebtInProgress, debt.Status)
	assert.True(t, debt.DueDate.Equal(aid.RepaymentDueDate))
}

func TestAidSurvivesDebtCreationFailure(t *testing.T) {
	svc, debtRepo, member, aidType := newAidFixture(t)
	debtRepo.createErr = errStoreDown

	aid, warning, err := svc.Create(context.Background(), &CreateAidInput{
		BeneficiaryID: member.ID,
		TypeID:        aidType.ID,
		CreateDebt:    true,
	}, 1)
	require.NoError(t, err)

	// The aid stands; the debt failure surfaces as a warning only.
	assert.NotZero(t, aid.ID)
	assert.NotEmpty(t, warning)

	_, err = svc.GetDebtByAid(context.Background(), aid.ID)
	assert.ErrorIs(t, err, ErrDebtNotFound)
}

func TestAidAndDebtSettleIndependently(t *testing.T) {
	svc, _, member, aidType := newAidFixture(t)

	aid, _, err := svc.Create(context.Background(), &CreateAidInput{
		BeneficiaryID: member.ID,
		TypeID:        aidType.ID,
		CreateDebt:    true,
	}, 1)
	require.NoError(t, err)

	// Marking the aid repaid leaves the debt outstanding.
	_, err = svc.MarkRepaid(context.Background(), aid.ID)
	require.NoError(t, err)

	debt, err := svc.GetDebtByAid(context.Background(), aid.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.DebtInProgress, debt.Status)

	// Settling the debt leaves a fresh aid untouched the other way.
	aid2, _, err := svc.Create(context.Background(), &CreateAidInput{
		BeneficiaryID: member.ID,
		TypeID:        aidType.ID,
		CreateDebt:    true,
	}, 1)
	require.NoError(t, err)
	debt2, err := svc.GetDebtByAid(context.Background(), aid2.ID)
	require.NoError(t, err)

	_, err = svc.RecordDebtPayment(context.Background(), debt2.ID, &DebtPaymentInput{Amount: debt2.OwedAmount})
	require.NoError(t, err)

	gotAid, err := svc.GetByID(context.Background(), aid2.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.AidGranted, gotAid.Status)
}

func TestDebtAmortization(t *testing.T) {
	svc, _, member, aidType := newAidFixture(t)

	aid, _, err := svc.Create(context.Background(), &CreateAidInput{
		BeneficiaryID: member.ID,
		TypeID:        aidType.ID,
		Amount:        60_000,
		CreateDebt:    true,
	}, 1)
	require.NoError(t, err)
	debt, err := svc.GetDebtByAid(context.Background(), aid.ID)
	require.NoError(t, err)

	debt, err = svc.RecordDebtPayment(context.Background(), debt.ID, &DebtPaymentInput{Amount: 20_000})
	require.NoError(t, err)
	assert.Equal(t, int64(40_000), debt.RemainingAmount)
	assert.Equal(t, domain.DebtInProgress, debt.Status)

	// Overpayment is not clamped: remaining goes negative, debt settles.
	debt, err = svc.RecordDebtPayment(context.Background(), debt.ID, &DebtPaymentInput{Amount: 50_000})
	require.NoError(t, err)
	assert.Equal(t, int64(-10_000), debt.RemainingAmount)
	assert.Equal(t, domain.DebtSettled, debt.Status)

	// A settled debt takes no further payments.
	_, err = svc.RecordDebtPayment(context.Background(), debt.ID, &DebtPaymentInput{Amount: 1_000})
	assert.ErrorIs(t, err, ErrDebtSettled)
}

func TestAidCreateRejectsInactiveType(t *testing.T) {
	svc, _, member, aidType := newAidFixture(t)
	aidType.IsActive = false

	_, _, err := svc.Create(context.Background(), &CreateAidInput{
		BeneficiaryID: member.ID,
		TypeID:        aidType.ID,
	}, 1)
	assert.ErrorIs(t, err, ErrAidTypeInactive)
}
