package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"e2d-ledger/internal/adapters/persistence/models"
	"e2d-ledger/internal/core/domain"
	"e2d-ledger/internal/core/services"
	"e2d-ledger/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// stubLoanRepo serves a fixed set of loans.
type stubLoanRepo struct {
	loans map[uint]*models.Loan
}

func (s *stubLoanRepo) Create(_ context.Context, loan *models.Loan) error { return nil }

func (s *stubLoanRepo) GetByID(_ context.Context, id uint) (*models.Loan, error) {
	loan, ok := s.loans[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return loan, nil
}

func (s *stubLoanRepo) GetByMember(_ context.Context, memberID uint) ([]*models.Loan, error) {
	var out []*models.Loan
	for _, l := range s.loans {
		if l.BorrowerID == memberID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (s *stubLoanRepo) List(_ context.Context, status string, _, _ int) ([]*models.Loan, int64, error) {
	var out []*models.Loan
	for _, l := range s.loans {
		if status == "" || l.Status == status {
			out = append(out, l)
		}
	}
	return out, int64(len(out)), nil
}

func (s *stubLoanRepo) ListOpen(_ context.Context) ([]*models.Loan, error) {
	var out []*models.Loan
	for _, l := range s.loans {
		if domain.LoanOpen(l.Status) {
			out = append(out, l)
		}
	}
	return out, nil
}

func (s *stubLoanRepo) Update(_ context.Context, loan *models.Loan) error { return nil }

func newLoanTestApp(repo *stubLoanRepo) *fiber.App {
	handler := NewLoanHandler(services.NewLoanService(repo, nil))
	app := fiber.New()
	app.Get("/prets/alerts", handler.Alerts)
	app.Get("/prets/:id", handler.Get)
	return app
}

func decodeData(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	var envelope response.Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	data, ok := envelope.Data.(map[string]interface{})
	require.True(t, ok, "data should be an object")
	return data
}

func TestLoanDetailCarriesDerivedLabels(t *testing.T) {
	today := domain.DateOnly(time.Now())
	repo := &stubLoanRepo{loans: map[uint]*models.Loan{
		1: {
			ID:             1,
			BorrowerID:     7,
			Principal:      100_000,
			InterestRate:   5,
			InterestAmount: 5_000,
			GrantDate:      today.AddDate(0, -2, -10),
			DueDate:        today.AddDate(0, 0, -10),
			Status:         domain.LoanActive,
			Borrower:       &models.Member{FirstName: "Alice", LastName: "Kamdem"},
		},
	}}
	app := newLoanTestApp(repo)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/prets/1", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	data := decodeData(t, resp)
	assert.Equal(t, domain.LoanActive, data["statut"])
	assert.Equal(t, true, data["en_retard"])
	assert.Equal(t, false, data["echeance_proche"])
	assert.Equal(t, float64(105_000), data["total_a_rembourser"])
	assert.Equal(t, "Alice Kamdem", data["emprunteur"])
}

func TestLoanAlertsReturnLabelledBuckets(t *testing.T) {
	today := domain.DateOnly(time.Now())
	repo := &stubLoanRepo{loans: map[uint]*models.Loan{
		1: {
			ID:         1,
			BorrowerID: 7,
			Principal:  50_000,
			DueDate:    today.AddDate(0, 0, -3),
			Status:     domain.LoanActive,
		},
		2: {
			ID:         2,
			BorrowerID: 8,
			Principal:  80_000,
			DueDate:    today.AddDate(0, 0, 3),
			Status:     domain.LoanActive,
		},
	}}
	app := newLoanTestApp(repo)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/prets/alerts", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	data := decodeData(t, resp)

	overdue, ok := data["en_retard"].([]interface{})
	require.True(t, ok)
	require.Len(t, overdue, 1)
	entry := overdue[0].(map[string]interface{})
	assert.Equal(t, float64(1), entry["id"])
	assert.Equal(t, true, entry["en_retard"])

	dueSoon, ok := data["echeance_proche"].([]interface{})
	require.True(t, ok)
	require.Len(t, dueSoon, 1)
	entry = dueSoon[0].(map[string]interface{})
	assert.Equal(t, float64(2), entry["id"])
	assert.Equal(t, true, entry["echeance_proche"])
}

func TestResponseMappingDerivesStatuses(t *testing.T) {
	cotisations := cotisationResponses([]*models.Cotisation{
		{ID: 1, MemberID: 2, ExpectedAmount: 10_000, PaidAmount: 4_000},
	})
	require.Len(t, cotisations, 1)
	assert.Equal(t, domain.CotisationPartial, cotisations[0].Status)

	sanctions := sanctionResponses([]*models.Sanction{
		{
			ID:       1,
			MemberID: 2,
			TypeID:   3,
			Amount:   5_000,
			Status:   domain.SanctionUnpaid,
			Type:     &models.SanctionType{ID: 3, Name: "Carton rouge", Category: domain.CategoryDiscipline},
		},
	})
	require.Len(t, sanctions, 1)
	assert.Equal(t, "Carton rouge", sanctions[0].TypeName)
	assert.Equal(t, domain.CategoryDiscipline, sanctions[0].Category)

	today := domain.DateOnly(time.Now())
	debts := debtResponses([]*models.SovereignDebt{
		{
			ID:              1,
			DebtorID:        2,
			OwedAmount:      60_000,
			PaidAmount:      10_000,
			RemainingAmount: 50_000,
			DueDate:         today.AddDate(0, 0, -1),
			Status:          domain.DebtInProgress,
		},
	}, today)
	require.Len(t, debts, 1)
	assert.True(t, debts[0].Overdue)
	assert.False(t, debts[0].DueSoon)
}
