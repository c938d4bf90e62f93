package services

import (
	"context"
	"testing"

	"e2d-ledger/internal/adapters/persistence/models"
	"e2d-ledger/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMemberFixture(t *testing.T) (*MemberService, *fakeMemberRepo, *fakeSanctionRepo) {
	t.Helper()
	memberRepo := newFakeMemberRepo()
	sanctionRepo := newFakeSanctionRepo()
	settings := NewSettingsService(newFakeSettingRepo())
	return NewMemberService(memberRepo, sanctionRepo, settings), memberRepo, sanctionRepo
}

func TestMemberCreateDefaultsToActive(t *testing.T) {
	svc, _, _ := newMemberFixture(t)

	member, err := svc.Create(context.Background(), &CreateMemberInput{
		LastName:   "Tchoua",
		FirstName:  "Rose",
		Email:      "rose@example.com",
		MonthlyDue: 10_000,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.MemberActive, member.Status)
	assert.NotZero(t, member.ID)
}

func TestMemberChangeStatusAppendsHistory(t *testing.T) {
	svc, memberRepo, _ := newMemberFixture(t)

	member, err := svc.Create(context.Background(), &CreateMemberInput{
		LastName:  "Tchoua",
		FirstName: "Rose",
		Email:     "rose@example.com",
	})
	require.NoError(t, err)

	updated, err := svc.ChangeStatus(context.Background(), member.ID, &ChangeStatusInput{
		NewStatus: domain.MemberSuspended,
		Reason:    "sanctions impayees",
	}, 42)
	require.NoError(t, err)
	assert.Equal(t, domain.MemberSuspended, updated.Status)

	history, err := svc.GetStatusHistory(context.Background(), member.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, domain.MemberActive, history[0].OldStatus)
	assert.Equal(t, domain.MemberSuspended, history[0].NewStatus)
	assert.Equal(t, uint(42), history[0].ChangedBy)

	// A failed transition leaves no trace in either table.
	memberRepo.changeStatusErr = errStoreDown
	_, err = svc.ChangeStatus(context.Background(), member.ID, &ChangeStatusInput{
		NewStatus: domain.MemberActive,
	}, 42)
	require.Error(t, err)
	history, err = svc.GetStatusHistory(context.Background(), member.ID)
	require.NoError(t, err)
	assert.Len(t, history, 1)
}

func TestMemberChangeStatusRejectsNoop(t *testing.T) {
	svc, _, _ := newMemberFixture(t)

	member, err := svc.Create(context.Background(), &CreateMemberInput{
		LastName:  "Tchoua",
		FirstName: "Rose",
		Email:     "rose@example.com",
	})
	require.NoError(t, err)

	_, err = svc.ChangeStatus(context.Background(), member.ID, &ChangeStatusInput{
		NewStatus: domain.MemberActive,
	}, 1)
	assert.ErrorIs(t, err, ErrSameStatus)
}

func TestMemberUpdateDoesNotTouchStatus(t *testing.T) {
	svc, _, _ := newMemberFixture(t)

	member, err := svc.Create(context.Background(), &CreateMemberInput{
		LastName:   "Tchoua",
		FirstName:  "Rose",
		Email:      "rose@example.com",
		MonthlyDue: 10_000,
	})
	require.NoError(t, err)

	newDue := int64(15_000)
	updated, err := svc.Update(context.Background(), member.ID, &UpdateMemberInput{
		MonthlyDue: &newDue,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(15_000), updated.MonthlyDue)
	assert.Equal(t, domain.MemberActive, updated.Status)
}

func TestSuspensionCandidates(t *testing.T) {
	svc, memberRepo, sanctionRepo := newMemberFixture(t)

	flagged, err := svc.Create(context.Background(), &CreateMemberInput{
		LastName:  "Fouda",
		FirstName: "Alain",
		Email:     "alain@example.com",
	})
	require.NoError(t, err)
	clean, err := svc.Create(context.Background(), &CreateMemberInput{
		LastName:  "Nkolo",
		FirstName: "Marie",
		Email:     "marie@example.com",
	})
	require.NoError(t, err)

	// Three unpaid sanctions reach the default threshold; paid and
	// cancelled ones never count.
	for i := 0; i < 3; i++ {
		require.NoError(t, sanctionRepo.Create(context.Background(), &models.Sanction{
			MemberID: flagged.ID,
			Status:   domain.SanctionUnpaid,
		}))
	}
	require.NoError(t, sanctionRepo.Create(context.Background(), &models.Sanction{
		MemberID: clean.ID,
		Status:   domain.SanctionPaid,
	}))
	require.NoError(t, sanctionRepo.Create(context.Background(), &models.Sanction{
		MemberID: clean.ID,
		Status:   domain.SanctionCancelled,
	}))

	candidates, err := svc.SuspensionCandidates(context.Background())
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, flagged.ID, candidates[0].Member.ID)
	assert.Equal(t, int64(3), candidates[0].UnpaidCount)

	// An already-suspended member drops off the list.
	flagged.Status = domain.MemberSuspended
	require.NoError(t, memberRepo.Update(context.Background(), flagged))

	candidates, err = svc.SuspensionCandidates(context.Background())
	require.NoError(t, err)
	assert.Empty(t, candidates)
}
