package services

import (
	"context"
	"testing"

	"e2d-ledger/internal/adapters/persistence/models"
	"e2d-ledger/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSanctionFixture(t *testing.T) (*SanctionService, *models.Member, *models.SanctionType) {
	t.Helper()
	memberRepo := newFakeMemberRepo()
	member := &models.Member{
		LastName:  "Fouda",
		FirstName: "Alain",
		Email:     "alain@example.com",
		Status:    domain.MemberActive,
	}
	require.NoError(t, memberRepo.Create(context.Background(), member))

	typeRepo := newFakeSanctionTypeRepo()
	sanctionType := &models.SanctionType{
		Name:          "Retard reunion",
		Category:      domain.CategoryMeeting,
		DefaultAmount: 1_000,
		IsActive:      true,
	}
	require.NoError(t, typeRepo.Create(context.Background(), sanctionType))

	svc := NewSanctionService(newFakeSanctionRepo(), typeRepo, memberRepo)
	return svc, member, sanctionType
}

func TestSanctionCreateUsesTypeDefaultAmount(t *testing.T) {
	svc, member, sanctionType := newSanctionFixture(t)

	sanction, err := svc.Create(context.Background(), &CreateSanctionInput{
		MemberID: member.ID,
		TypeID:   sanctionType.ID,
	}, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1_000), sanction.Amount)
	assert.Equal(t, domain.SanctionUnpaid, sanction.Status)
	assert.False(t, sanction.Automatic)

	// An explicit amount wins over the default.
	sanction, err = svc.Create(context.Background(), &CreateSanctionInput{
		MemberID: member.ID,
		TypeID:   sanctionType.ID,
		Amount:   2_500,
	}, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2_500), sanction.Amount)
}

func TestSanctionCreateRejectsInactiveType(t *testing.T) {
	svc, member, sanctionType := newSanctionFixture(t)
	sanctionType.IsActive = false

	_, err := svc.Create(context.Background(), &CreateSanctionInput{
		MemberID: member.ID,
		TypeID:   sanctionType.ID,
	}, 1)
	assert.ErrorIs(t, err, ErrSanctionTypeInactive)
}

func TestSanctionPayUnpayCycle(t *testing.T) {
	svc, member, sanctionType := newSanctionFixture(t)

	sanction, err := svc.Create(context.Background(), &CreateSanctionInput{
		MemberID: member.ID,
		TypeID:   sanctionType.ID,
	}, 1)
	require.NoError(t, err)

	paid, err := svc.Pay(context.Background(), sanction.ID, "2026-03-01")
	require.NoError(t, err)
	assert.Equal(t, domain.SanctionPaid, paid.Status)
	require.NotNil(t, paid.PaymentDate)

	// Paying twice is an error.
	_, err = svc.Pay(context.Background(), sanction.ID, "")
	assert.ErrorIs(t, err, ErrSanctionNotUnpaid)

	// Unpay clears the payment date again.
	unpaid, err := svc.Unpay(context.Background(), sanction.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.SanctionUnpaid, unpaid.Status)
	assert.Nil(t, unpaid.PaymentDate)
}

func TestSanctionCancel(t *testing.T) {
	svc, member, sanctionType := newSanctionFixture(t)

	sanction, err := svc.Create(context.Background(), &CreateSanctionInput{
		MemberID: member.ID,
		TypeID:   sanctionType.ID,
	}, 1)
	require.NoError(t, err)

	cancelled, err := svc.Cancel(context.Background(), sanction.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.SanctionCancelled, cancelled.Status)

	_, err = svc.Cancel(context.Background(), sanction.ID)
	assert.ErrorIs(t, err, ErrSanctionCancelled)

	// Cancelled sanctions cannot be paid.
	_, err = svc.Pay(context.Background(), sanction.ID, "")
	assert.ErrorIs(t, err, ErrSanctionNotUnpaid)
}
