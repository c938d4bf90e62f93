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

// Savings service errors
var (
	ErrDepositNotFound   = errors.New("savings deposit not found")
	ErrDepositNotActive  = errors.New("savings deposit is not active")
	ErrCaisseDueNotFound = errors.New("caisse due not found")
	ErrCaisseDuePaid     = errors.New("caisse due is already paid")
)

// SavingsService manages savings deposits and the yearly caisse fund.
type SavingsService struct {
	savingsRepo repositories.SavingsRepository
	caisseRepo  repositories.CaisseRepository
	memberRepo  repositories.MemberRepository
}

// NewSavingsService creates a new savings service.
func NewSavingsService(
	savingsRepo repositories.SavingsRepository,
	caisseRepo repositories.CaisseRepository,
	memberRepo repositories.MemberRepository,
) *SavingsService {
	return &SavingsService{
		savingsRepo: savingsRepo,
		caisseRepo:  caisseRepo,
		memberRepo:  memberRepo,
	}
}

// CreateDepositInput represents a savings deposit.
type CreateDepositInput struct {
	MemberID    uint   `json:"membre_id" validate:"required"`
	Amount      int64  `json:"montant" validate:"required,gt=0"`
	DepositDate string `json:"date_depot,omitempty"`
	Exercise    int    `json:"exercice" validate:"required,min=2000,max=2100"`
}

// RepayDepositInput closes a deposit at exercise end.
type RepayDepositInput struct {
	RepaymentDate    string `json:"date_remboursement,omitempty"`
	InterestReceived int64  `json:"interets_recus" validate:"gte=0"`
}

// CreateCaisseDueInput opens a member's yearly caisse obligation.
type CreateCaisseDueInput struct {
	MemberID uint  `json:"membre_id" validate:"required"`
	Amount   int64 `json:"montant" validate:"required,gt=0"`
	Exercise int   `json:"exercice" validate:"required,min=2000,max=2100"`
}

// Deposit records a savings deposit for an exercise.
func (s *SavingsService) Deposit(ctx context.Context, input *CreateDepositInput) (*models.SavingsDeposit, error) {
	if _, err := s.memberRepo.GetByID(ctx, input.MemberID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}

	depositDate := domain.DateOnly(time.Now())
	if input.DepositDate != "" {
		parsed, err := time.Parse("2006-01-02", input.DepositDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		depositDate = parsed
	}

	deposit := &models.SavingsDeposit{
		MemberID:    input.MemberID,
		Amount:      input.Amount,
		DepositDate: depositDate,
		Exercise:    input.Exercise,
		Status:      domain.SavingActive,
	}
	if err := s.savingsRepo.Create(ctx, deposit); err != nil {
		return nil, err
	}
	return deposit, nil
}

// GetDeposit gets a deposit by ID.
func (s *SavingsService) GetDeposit(ctx context.Context, id uint) (*models.SavingsDeposit, error) {
	deposit, err := s.savingsRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDepositNotFound
		}
		return nil, err
	}
	return deposit, nil
}

// ListDeposits lists an exercise's deposits.
func (s *SavingsService) ListDeposits(ctx context.Context, exercise int) ([]*models.SavingsDeposit, error) {
	return s.savingsRepo.GetByExercise(ctx, exercise)
}

// GetDepositsByMember lists a member's deposits.
func (s *SavingsService) GetDepositsByMember(ctx context.Context, memberID uint) ([]*models.SavingsDeposit, error) {
	if _, err := s.memberRepo.GetByID(ctx, memberID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}
	return s.savingsRepo.GetByMember(ctx, memberID)
}

// RepayDeposit closes an active deposit, recording the repayment date
// and the interest the saver received.
func (s *SavingsService) RepayDeposit(ctx context.Context, id uint, input *RepayDepositInput) (*models.SavingsDeposit, error) {
	deposit, err := s.GetDeposit(ctx, id)
	if err != nil {
		return nil, err
	}
	if deposit.Status != domain.SavingActive {
		return nil, ErrDepositNotActive
	}

	date := domain.DateOnly(time.Now())
	if input.RepaymentDate != "" {
		parsed, err := time.Parse("2006-01-02", input.RepaymentDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		date = parsed
	}

	deposit.Status = domain.SavingRepaid
	deposit.RepaymentDate = &date
	deposit.InterestReceived = input.InterestReceived

	if err := s.savingsRepo.Update(ctx, deposit); err != nil {
		return nil, err
	}
	return deposit, nil
}

// InterestShare computes a saver's share of the exercise's loan
// interest. The distribution formula is still being debated by the
// bureau; until it is voted the share is zero and the treasurer enters
// interest by hand at repayment.
func (s *SavingsService) InterestShare(ctx context.Context, depositID uint) (int64, error) {
	if _, err := s.GetDeposit(ctx, depositID); err != nil {
		return 0, err
	}
	return 0, nil
}

// CreateCaisseDue opens a member's caisse obligation for an exercise.
func (s *SavingsService) CreateCaisseDue(ctx context.Context, input *CreateCaisseDueInput) (*models.CaisseFund, error) {
	if _, err := s.memberRepo.GetByID(ctx, input.MemberID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}

	due := &models.CaisseFund{
		MemberID: input.MemberID,
		Amount:   input.Amount,
		Exercise: input.Exercise,
		Status:   domain.CaisseDue,
	}
	if err := s.caisseRepo.Create(ctx, due); err != nil {
		return nil, err
	}
	return due, nil
}

// PayCaisseDue marks a caisse obligation paid.
func (s *SavingsService) PayCaisseDue(ctx context.Context, id uint, paymentDate string) (*models.CaisseFund, error) {
	due, err := s.caisseRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCaisseDueNotFound
		}
		return nil, err
	}
	if due.Status == domain.CaissePaid {
		return nil, ErrCaisseDuePaid
	}

	date := domain.DateOnly(time.Now())
	if paymentDate != "" {
		parsed, err := time.Parse("2006-01-02", paymentDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		date = parsed
	}

	due.Status = domain.CaissePaid
	due.PaymentDate = &date

	if err := s.caisseRepo.Update(ctx, due); err != nil {
		return nil, err
	}
	return due, nil
}

// CaisseExerciseSummary aggregates an exercise's caisse collection.
type CaisseExerciseSummary struct {
	Exercise  int                  `json:"exercice"`
	PaidTotal int64                `json:"total_collecte"`
	Dues      []*models.CaisseFund `json:"obligations"`
}

// CaisseSummary lists an exercise's caisse dues with the collected
// total.
func (s *SavingsService) CaisseSummary(ctx context.Context, exercise int) (*CaisseExerciseSummary, error) {
	dues, err := s.caisseRepo.GetByExercise(ctx, exercise)
	if err != nil {
		return nil, err
	}
	total, err := s.caisseRepo.SumPaid(ctx, exercise)
	if err != nil {
		return nil, err
	}
	return &CaisseExerciseSummary{Exercise: exercise, PaidTotal: total, Dues: dues}, nil
}
