package services

import (
	"context"
	"testing"

	"e2d-ledger/internal/adapters/persistence/models"
	"e2d-ledger/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCotisationFixture(t *testing.T) (*CotisationService, *fakeMemberRepo, *models.Member) {
	t.Helper()
	memberRepo := newFakeMemberRepo()
	member := &models.Member{
		LastName:   "Nkolo",
		FirstName:  "Marie",
		Email:      "marie@example.com",
		Status:     domain.MemberActive,
		MonthlyDue: 10_000,
	}
	require.NoError(t, memberRepo.Create(context.Background(), member))

	settings := NewSettingsService(newFakeSettingRepo())
	svc := NewCotisationService(newFakeCotisationRepo(), memberRepo, settings)
	return svc, memberRepo, member
}

func TestCotisationCreateSnapshotsExpectedAmount(t *testing.T) {
	svc, memberRepo, member := newCotisationFixture(t)

	cotisation, err := svc.Create(context.Background(), &CreateCotisationInput{
		MemberID:      member.ID,
		Month:         3,
		Year:          2026,
		PaidAmount:    10_000,
		OilPaid:       true,
		SoapPaid:      true,
		SportFundPaid: true,
	}, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(10_000), cotisation.ExpectedAmount)
	assert.Equal(t, domain.CotisationPaid, cotisation.Status())

	// Raising the member's monthly due must not touch recorded months.
	member.MonthlyDue = 15_000
	require.NoError(t, memberRepo.Update(context.Background(), member))

	got, err := svc.GetByID(context.Background(), cotisation.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(10_000), got.ExpectedAmount)
}

func TestCotisationCreateRejectsDuplicatePeriod(t *testing.T) {
	svc, _, member := newCotisationFixture(t)

	input := &CreateCotisationInput{
		MemberID:   member.ID,
		Month:      4,
		Year:       2026,
		PaidAmount: 10_000,
	}
	_, err := svc.Create(context.Background(), input, 1)
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), input, 1)
	assert.ErrorIs(t, err, ErrCotisationExists)
}

func TestCotisationUnderpaymentNeedsConfirmation(t *testing.T) {
	svc, _, member := newCotisationFixture(t)

	input := &CreateCotisationInput{
		MemberID:   member.ID,
		Month:      5,
		Year:       2026,
		PaidAmount: 4_000,
	}
	_, err := svc.Create(context.Background(), input, 1)
	assert.ErrorIs(t, err, ErrPartialNotAccepted)

	// The same entry goes through once the treasurer confirms it.
	input.ConfirmPartial = true
	cotisation, err := svc.Create(context.Background(), input, 1)
	require.NoError(t, err)
	assert.Equal(t, domain.CotisationPartial, cotisation.Status())
}

func TestCotisationStatusNeedsEveryFlag(t *testing.T) {
	svc, _, member := newCotisationFixture(t)

	cotisation, err := svc.Create(context.Background(), &CreateCotisationInput{
		MemberID:   member.ID,
		Month:      6,
		Year:       2026,
		PaidAmount: 10_000,
		OilPaid:    true,
		SoapPaid:   true,
		// sport fund flag missing
	}, 1)
	require.NoError(t, err)
	assert.Equal(t, domain.CotisationPartial, cotisation.Status())
}

func TestCotisationPeriodSummary(t *testing.T) {
	svc, memberRepo, member := newCotisationFixture(t)

	other := &models.Member{
		LastName:   "Essomba",
		FirstName:  "Jean",
		Email:      "jean@example.com",
		Status:     domain.MemberActive,
		MonthlyDue: 10_000,
	}
	require.NoError(t, memberRepo.Create(context.Background(), other))
	// An inactive member should not show up as missing.
	inactive := &models.Member{
		LastName:  "Owona",
		FirstName: "Luc",
		Email:     "luc@example.com",
		Status:    domain.MemberInactive,
	}
	require.NoError(t, memberRepo.Create(context.Background(), inactive))

	_, err := svc.Create(context.Background(), &CreateCotisationInput{
		MemberID:       member.ID,
		Month:          7,
		Year:           2026,
		PaidAmount:     5_000,
		ConfirmPartial: true,
	}, 1)
	require.NoError(t, err)

	summary, err := svc.GetPeriod(context.Background(), 7, 2026)
	require.NoError(t, err)

	assert.Equal(t, 2, summary.MemberCount)
	assert.Equal(t, int64(10_000), summary.ExpectedTotal)
	assert.Equal(t, int64(5_000), summary.PaidTotal)
	assert.Equal(t, 50, summary.RecoveryRate)
	assert.Equal(t, 1, summary.Partial)
	require.Len(t, summary.Missing, 1)
	assert.Equal(t, other.ID, summary.Missing[0].ID)
}
