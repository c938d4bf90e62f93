package services

import (
	"context"
	"errors"
	"time"

	"e2d-ledger/internal/adapters/persistence/models"
	"e2d-ledger/internal/adapters/persistence/repositories"
	"e2d-ledger/internal/core/domain"

	"gorm.io/gorm"
)

// Loan service errors
var (
	ErrLoanNotFound  = errors.New("loan not found")
	ErrLoanNotOpen   = errors.New("loan is not open")
	ErrInvalidAmount = errors.New("amount must be positive")
)

// LoanService manages member loans: grant, repayment, renewal.
type LoanService struct {
	loanRepo   repositories.LoanRepository
	memberRepo repositories.MemberRepository
}

// NewLoanService creates a new loan service.
func NewLoanService(loanRepo repositories.LoanRepository, memberRepo repositories.MemberRepository) *LoanService {
	return &LoanService{loanRepo: loanRepo, memberRepo: memberRepo}
}

// CreateLoanInput represents a loan grant.
type CreateLoanInput struct {
	BorrowerID  uint   `json:"emprunteur_id" validate:"required"`
	Principal   int64  `json:"montant_principal" validate:"required,gt=0"`
	GrantDate   string `json:"date_pret,omitempty"`
	DocumentURL string `json:"document_url,omitempty"`
}

// Create grants a loan. Interest is fixed at grant time from the
// current rate and never recomputed, renewals included.
func (s *LoanService) Create(ctx context.Context, input *CreateLoanInput, actorID uint) (*models.Loan, error) {
	if input.Principal <= 0 {
		return nil, ErrInvalidAmount
	}

	if _, err := s.memberRepo.GetByID(ctx, input.BorrowerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}

	grantDate := domain.DateOnly(time.Now())
	if input.GrantDate != "" {
		parsed, err := time.Parse("2006-01-02", input.GrantDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		grantDate = parsed
	}

	loan := &models.Loan{
		BorrowerID:     input.BorrowerID,
		Principal:      input.Principal,
		InterestRate:   domain.LoanInterestRatePercent,
		InterestAmount: domain.LoanInterest(input.Principal, domain.LoanInterestRatePercent),
		GrantDate:      grantDate,
		DueDate:        domain.NextDueDate(grantDate),
		Status:         domain.LoanActive,
		DocumentURL:    input.DocumentURL,
		GrantedBy:      actorID,
	}

	if err := s.loanRepo.Create(ctx, loan); err != nil {
		return nil, err
	}
	return loan, nil
}

// GetByID gets a loan by ID.
func (s *LoanService) GetByID(ctx context.Context, id uint) (*models.Loan, error) {
	loan, err := s.loanRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLoanNotFound
		}
		return nil, err
	}
	return loan, nil
}

// List lists loans, optionally filtered by status.
func (s *LoanService) List(ctx context.Context, status string, offset, limit int) ([]*models.Loan, int64, error) {
	return s.loanRepo.List(ctx, status, offset, limit)
}

// GetByMember lists a member's loans.
func (s *LoanService) GetByMember(ctx context.Context, memberID uint) ([]*models.Loan, error) {
	if _, err := s.memberRepo.GetByID(ctx, memberID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}
	return s.loanRepo.GetByMember(ctx, memberID)
}

// Repay closes an open loan, stamping the repayment date. The amount
// collected is principal plus the interest fixed at grant.
func (s *LoanService) Repay(ctx context.Context, id uint, repaymentDate string) (*models.Loan, error) {
	loan, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !domain.LoanOpen(loan.Status) {
		return nil, ErrLoanNotOpen
	}

	date := domain.DateOnly(time.Now())
	if repaymentDate != "" {
		parsed, err := time.Parse("2006-01-02", repaymentDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		date = parsed
	}

	loan.Status = domain.LoanRepaid
	loan.RepaymentDate = &date

	if err := s.loanRepo.Update(ctx, loan); err != nil {
		return nil, err
	}
	return loan, nil
}

// Renew pushes an open loan's due date two months out from today and
// increments the renewal counter. The interest amount does not move.
func (s *LoanService) Renew(ctx context.Context, id uint) (*models.Loan, error) {
	loan, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !domain.LoanOpen(loan.Status) {
		return nil, ErrLoanNotOpen
	}

	loan.Status = domain.LoanRenewed
	loan.DueDate = domain.NextDueDate(time.Now())
	loan.RenewalCount++

	if err := s.loanRepo.Update(ctx, loan); err != nil {
		return nil, err
	}
	return loan, nil
}

// DueAlerts partitions open loans into overdue and due-soon buckets.
type DueAlerts struct {
	Overdue []*models.Loan `json:"en_retard"`
	DueSoon []*models.Loan `json:"echeance_proche"`
}

// Alerts scans open loans against today's date. Nothing is stored:
// the same loan can leave the overdue bucket by being renewed.
func (s *LoanService) Alerts(ctx context.Context) (*DueAlerts, error) {
	open, err := s.loanRepo.ListOpen(ctx)
	if err != nil {
		return nil, err
	}

	today := time.Now()
	alerts := &DueAlerts{}
	for _, loan := range open {
		switch {
		case domain.LoanOverdue(loan.DueDate, today, loan.Status):
			alerts.Overdue = append(alerts.Overdue, loan)
		case domain.LoanDueSoon(loan.DueDate, today, loan.Status):
			alerts.DueSoon = append(alerts.DueSoon, loan)
		}
	}
	return alerts, nil
}
