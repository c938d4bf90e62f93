package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"e2d-ledger/internal/adapters/persistence/models"
	"e2d-ledger/internal/adapters/persistence/repositories"
	"e2d-ledger/internal/core/domain"
	"e2d-ledger/internal/pkg/money"

	"gorm.io/gorm"
)

// Cotisation service errors
var (
	ErrCotisationNotFound = errors.New("cotisation not found")
	ErrCotisationExists   = errors.New("cotisation already recorded for this member and period")
	ErrInvalidPeriod      = errors.New("invalid month or year")
	ErrPartialNotAccepted = errors.New("paid amount is below the expected amount")
)

// CotisationService records and summarizes monthly dues.
type CotisationService struct {
	cotisationRepo repositories.CotisationRepository
	memberRepo     repositories.MemberRepository
	settings       *SettingsService
}

// NewCotisationService creates a new cotisation service.
func NewCotisationService(
	cotisationRepo repositories.CotisationRepository,
	memberRepo repositories.MemberRepository,
	settings *SettingsService,
) *CotisationService {
	return &CotisationService{
		cotisationRepo: cotisationRepo,
		memberRepo:     memberRepo,
		settings:       settings,
	}
}

// CreateCotisationInput represents a monthly-due entry. ConfirmPartial
// acknowledges an underpaid amount: without it an underpayment is
// rejected with a warning so the treasurer can re-check the figure.
type CreateCotisationInput struct {
	MemberID       uint   `json:"membre_id" validate:"required"`
	Month          int    `json:"mois" validate:"required,min=1,max=12"`
	Year           int    `json:"annee" validate:"required,min=2000,max=2100"`
	PaidAmount     int64  `json:"montant_paye" validate:"gte=0"`
	OilPaid        bool   `json:"huile_paye"`
	SoapPaid       bool   `json:"savon_paye"`
	SportFundPaid  bool   `json:"fond_sport_paye"`
	PaymentDate    string `json:"date_paiement,omitempty"`
	ConfirmPartial bool   `json:"confirm_partial"`
}

// UpdateCotisationInput adjusts an existing entry's payment fields.
type UpdateCotisationInput struct {
	PaidAmount    *int64 `json:"montant_paye,omitempty"`
	OilPaid       *bool  `json:"huile_paye,omitempty"`
	SoapPaid      *bool  `json:"savon_paye,omitempty"`
	SportFundPaid *bool  `json:"fond_sport_paye,omitempty"`
	PaymentDate   string `json:"date_paiement,omitempty"`
}

// PartialWarning formats the message returned alongside
// ErrPartialNotAccepted.
func PartialWarning(expected, paid int64) string {
	return fmt.Sprintf("montant paye %s inferieur au montant attendu %s",
		money.FormatFCFA(paid), money.FormatFCFA(expected))
}

// Create records a cotisation. The expected amount is snapshotted from
// the member's profile at entry time; later profile edits never touch
// recorded months.
func (s *CotisationService) Create(ctx context.Context, input *CreateCotisationInput, actorID uint) (*models.Cotisation, error) {
	if input.Month < 1 || input.Month > 12 {
		return nil, ErrInvalidPeriod
	}

	member, err := s.memberRepo.GetByID(ctx, input.MemberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}

	exists, err := s.cotisationRepo.ExistsForPeriod(ctx, input.MemberID, input.Month, input.Year)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrCotisationExists
	}

	if input.PaidAmount < member.MonthlyDue && !input.ConfirmPartial {
		return nil, ErrPartialNotAccepted
	}

	var paymentDate *time.Time
	if input.PaymentDate != "" {
		parsed, err := time.Parse("2006-01-02", input.PaymentDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		paymentDate = &parsed
	} else if input.PaidAmount > 0 {
		today := domain.DateOnly(time.Now())
		paymentDate = &today
	}

	cotisation := &models.Cotisation{
		MemberID:        input.MemberID,
		Month:           input.Month,
		Year:            input.Year,
		ExpectedAmount:  member.MonthlyDue,
		PaidAmount:      input.PaidAmount,
		OilPaid:         input.OilPaid,
		SoapPaid:        input.SoapPaid,
		SportFundPaid:   input.SportFundPaid,
		SportFundAmount: s.settings.IntValue(ctx, "montant_fond_sport_mensuel", 0),
		PaymentDate:     paymentDate,
		EnteredBy:       actorID,
	}

	if err := s.cotisationRepo.Create(ctx, cotisation); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrCotisationExists
		}
		return nil, err
	}
	return cotisation, nil
}

// GetByID gets a cotisation by ID.
func (s *CotisationService) GetByID(ctx context.Context, id uint) (*models.Cotisation, error) {
	cotisation, err := s.cotisationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCotisationNotFound
		}
		return nil, err
	}
	return cotisation, nil
}

// GetByMember lists a member's cotisations, newest period first.
func (s *CotisationService) GetByMember(ctx context.Context, memberID uint) ([]*models.Cotisation, error) {
	if _, err := s.memberRepo.GetByID(ctx, memberID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}
	return s.cotisationRepo.GetByMember(ctx, memberID)
}

// Update adjusts a recorded cotisation's payment fields. The expected
// amount stays frozen at its entry-time snapshot.
func (s *CotisationService) Update(ctx context.Context, id uint, input *UpdateCotisationInput) (*models.Cotisation, error) {
	cotisation, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.PaidAmount != nil {
		cotisation.PaidAmount = *input.PaidAmount
	}
	if input.OilPaid != nil {
		cotisation.OilPaid = *input.OilPaid
	}
	if input.SoapPaid != nil {
		cotisation.SoapPaid = *input.SoapPaid
	}
	if input.SportFundPaid != nil {
		cotisation.SportFundPaid = *input.SportFundPaid
	}
	if input.PaymentDate != "" {
		parsed, err := time.Parse("2006-01-02", input.PaymentDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		cotisation.PaymentDate = &parsed
	}

	if err := s.cotisationRepo.Update(ctx, cotisation); err != nil {
		return nil, err
	}
	return cotisation, nil
}

// PeriodSummary aggregates a month's collection effort.
type PeriodSummary struct {
	Month         int                          `json:"mois"`
	Year          int                          `json:"annee"`
	MemberCount   int                          `json:"nombre_membres"`
	ExpectedTotal int64                        `json:"total_attendu"`
	PaidTotal     int64                        `json:"total_paye"`
	RecoveryRate  int                          `json:"taux_recouvrement"`
	Paid          int                          `json:"payes"`
	Partial       int                          `json:"partiels"`
	Unpaid        int                          `json:"impayes"`
	Missing       []*models.Member             `json:"membres_sans_saisie,omitempty"`
	Entries       []*models.CotisationResponse `json:"cotisations"`
}

// GetPeriod returns every entry of a period plus its summary. Active
// members with no entry at all are listed separately: an unrecorded
// month is not the same thing as a recorded zero.
func (s *CotisationService) GetPeriod(ctx context.Context, month, year int) (*PeriodSummary, error) {
	if month < 1 || month > 12 {
		return nil, ErrInvalidPeriod
	}

	entries, err := s.cotisationRepo.GetByPeriod(ctx, month, year)
	if err != nil {
		return nil, err
	}

	summary := &PeriodSummary{
		Month: month,
		Year:  year,
	}

	recorded := make(map[uint]bool, len(entries))
	totals := make([]domain.PeriodTotals, 0, len(entries))
	for _, c := range entries {
		summary.Entries = append(summary.Entries, c.ToResponse())
		recorded[c.MemberID] = true
		totals = append(totals, domain.PeriodTotals{Expected: c.ExpectedAmount, Paid: c.PaidAmount})
		summary.ExpectedTotal += c.ExpectedAmount
		summary.PaidTotal += c.PaidAmount
		switch c.Status() {
		case domain.CotisationPaid:
			summary.Paid++
		case domain.CotisationPartial:
			summary.Partial++
		default:
			summary.Unpaid++
		}
	}
	summary.RecoveryRate = domain.RecoveryRate(totals)

	active, err := s.memberRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	summary.MemberCount = len(active)
	for _, m := range active {
		if !recorded[m.ID] {
			summary.Missing = append(summary.Missing, m)
		}
	}
	return summary, nil
}
