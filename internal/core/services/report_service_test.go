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

type reportFixture struct {
	svc  *ReportService
	host *models.Member
}

func newReportFixture(t *testing.T) *reportFixture {
	t.Helper()
	memberRepo := newFakeMemberRepo()
	host := &models.Member{
		LastName:  "Tchoupo",
		FirstName: "Martin",
		Email:     "martin@example.com",
		Status:    domain.MemberActive,
	}
	require.NoError(t, memberRepo.Create(context.Background(), host))

	svc := NewReportService(newFakeReportRepo(), memberRepo)
	return &reportFixture{svc: svc, host: host}
}

func TestCreateReportNumbersAgenda(t *testing.T) {
	f := newReportFixture(t)
	ctx := context.Background()

	report, err := f.svc.Create(ctx, &ReportInput{
		MeetingDate: "2026-03-07",
		Venue:       "Chez Martin",
		HostID:      f.host.ID,
		AgendaItems: []AgendaItemInput{
			{Subject: "Bilan cotisations", Resolution: "Adopte"},
			{Subject: "Tournoi Phoenix"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.March, 7, 0, 0, 0, 0, time.UTC), report.MeetingDate)
	require.Len(t, report.AgendaItems, 2)
	assert.Equal(t, 1, report.AgendaItems[0].Position)
	assert.Equal(t, 2, report.AgendaItems[1].Position)
	assert.Equal(t, report.ID, report.AgendaItems[0].ReportID)
}

func TestCreateReportRejectsBadInput(t *testing.T) {
	f := newReportFixture(t)
	ctx := context.Background()

	_, err := f.svc.Create(ctx, &ReportInput{MeetingDate: "07/03/2026", HostID: f.host.ID})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.svc.Create(ctx, &ReportInput{MeetingDate: "2026-03-07", HostID: 999})
	assert.ErrorIs(t, err, ErrMemberNotFound)
}

func TestUpdateReplacesAgendaWholesale(t *testing.T) {
	f := newReportFixture(t)
	ctx := context.Background()

	report, err := f.svc.Create(ctx, &ReportInput{
		MeetingDate: "2026-03-07",
		HostID:      f.host.ID,
		AgendaItems: []AgendaItemInput{
			{Subject: "Premier point"},
			{Subject: "Deuxieme point"},
			{Subject: "Troisieme point"},
		},
	})
	require.NoError(t, err)

	updated, err := f.svc.Update(ctx, report.ID, &ReportInput{
		MeetingDate: "2026-03-14",
		Venue:       "Foyer E2D",
		HostID:      f.host.ID,
		AgendaItems: []AgendaItemInput{
			{Subject: "Ordre du jour unique", Resolution: "Reporte"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, report.ID, updated.ID)
	assert.Equal(t, "Foyer E2D", updated.Venue)
	require.Len(t, updated.AgendaItems, 1)
	assert.Equal(t, "Ordre du jour unique", updated.AgendaItems[0].Subject)
	assert.Equal(t, 1, updated.AgendaItems[0].Position)
	assert.Equal(t, report.ID, updated.AgendaItems[0].ReportID)

	_, err = f.svc.Update(ctx, 999, &ReportInput{MeetingDate: "2026-03-14", HostID: f.host.ID})
	assert.ErrorIs(t, err, ErrReportNotFound)
}

func TestDeleteReport(t *testing.T) {
	f := newReportFixture(t)
	ctx := context.Background()

	report, err := f.svc.Create(ctx, &ReportInput{MeetingDate: "2026-03-07", HostID: f.host.ID})
	require.NoError(t, err)

	require.NoError(t, f.svc.Delete(ctx, report.ID))
	_, err = f.svc.GetByID(ctx, report.ID)
	assert.ErrorIs(t, err, ErrReportNotFound)

	assert.ErrorIs(t, f.svc.Delete(ctx, 999), ErrReportNotFound)
}
