package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"e2d-ledger/internal/adapters/persistence/models"
	"e2d-ledger/internal/adapters/persistence/repositories"
	"e2d-ledger/internal/core/domain"

	"gorm.io/gorm"
)

// Aid service errors
var (
	ErrAidNotFound     = errors.New("social aid not found")
	ErrAidTypeNotFound = errors.New("aid type not found")
	ErrAidTypeInactive = errors.New("aid type is inactive")
	ErrAidAlreadyDone  = errors.New("social aid is already marked repaid")
	ErrDebtNotFound    = errors.New("sovereign-fund debt not found")
	ErrDebtSettled     = errors.New("sovereign-fund debt is already settled")
)

// AidService manages social aids and the sovereign-fund debts they
// spawn. The two records are deliberately independent once created:
// marking the aid repaid does not settle the debt, and settling the
// debt does not mark the aid repaid.
type AidService struct {
	aidRepo    repositories.AidRepository
	typeRepo   repositories.AidTypeRepository
	debtRepo   repositories.DebtRepository
	memberRepo repositories.MemberRepository
}

// NewAidService creates a new aid service.
func NewAidService(
	aidRepo repositories.AidRepository,
	typeRepo repositories.AidTypeRepository,
	debtRepo repositories.DebtRepository,
	memberRepo repositories.MemberRepository,
) *AidService {
	return &AidService{
		aidRepo:    aidRepo,
		typeRepo:   typeRepo,
		debtRepo:   debtRepo,
		memberRepo: memberRepo,
	}
}

// CreateAidInput represents a social-aid grant. Amount zero means "use
// the type's default amount". CreateDebt additionally opens a
// sovereign-fund debt for the same amount.
type CreateAidInput struct {
	BeneficiaryID    uint   `json:"beneficiaire_id" validate:"required"`
	TypeID           uint   `json:"type_aide_id" validate:"required"`
	Amount           int64  `json:"montant" validate:"gte=0"`
	GrantDate        string `json:"date_aide,omitempty"`
	JustificationURL string `json:"justificatif,omitempty"`
	CreateDebt       bool   `json:"creer_dette"`
}

// AidTypeInput represents an aid-type catalog entry.
type AidTypeInput struct {
	Name          string `json:"nom" validate:"required,max=100"`
	Description   string `json:"description,omitempty"`
	DefaultAmount int64  `json:"montant_defaut" validate:"gte=0"`
	DelayMonths   int    `json:"delai_remboursement_mois" validate:"gte=0"`
}

// DebtPaymentInput represents a partial or full debt repayment.
type DebtPaymentInput struct {
	Amount int64 `json:"montant" validate:"required,gt=0"`
}

// Create grants a social aid and, when asked, opens the matching
// sovereign-fund debt. The two writes are separate: if the debt write
// fails the aid stands and the failure comes back as a warning for the
// treasurer to retry, not as an error that would undo the grant.
func (s *AidService) Create(ctx context.Context, input *CreateAidInput, actorID uint) (*models.SocialAid, string, error) {
	if _, err := s.memberRepo.GetByID(ctx, input.BeneficiaryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrMemberNotFound
		}
		return nil, "", err
	}

	aidType, err := s.typeRepo.GetByID(ctx, input.TypeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrAidTypeNotFound
		}
		return nil, "", err
	}
	if !aidType.IsActive {
		return nil, "", ErrAidTypeInactive
	}

	amount := input.Amount
	if amount == 0 {
		amount = aidType.DefaultAmount
	}
	if amount <= 0 {
		return nil, "", ErrInvalidAmount
	}

	grantDate := domain.DateOnly(time.Now())
	if input.GrantDate != "" {
		parsed, err := time.Parse("2006-01-02", input.GrantDate)
		if err != nil {
			return nil, "", domain.ErrInvalidInput
		}
		grantDate = parsed
	}

	aid := &models.SocialAid{
		BeneficiaryID:    input.BeneficiaryID,
		TypeID:           input.TypeID,
		Amount:           amount,
		GrantDate:        grantDate,
		RepaymentDueDate: grantDate.AddDate(0, aidType.DelayMonths, 0),
		JustificationURL: input.JustificationURL,
		Status:           domain.AidGranted,
		GrantedBy:        actorID,
	}
	if err := s.aidRepo.Create(ctx, aid); err != nil {
		return nil, "", err
	}

	var warning string
	if input.CreateDebt {
		debt := &models.SovereignDebt{
			DebtorID:        input.BeneficiaryID,
			AidID:           aid.ID,
			OwedAmount:      amount,
			RemainingAmount: amount,
			DueDate:         aid.RepaymentDueDate,
			Status:          domain.DebtInProgress,
		}
		if err := s.debtRepo.Create(ctx, debt); err != nil {
			warning = fmt.Sprintf("aide enregistree mais la dette fond souverain n'a pas pu etre creee: %v", err)
		}
	}
	return aid, warning, nil
}

// GetByID gets a social aid by ID.
func (s *AidService) GetByID(ctx context.Context, id uint) (*models.SocialAid, error) {
	aid, err := s.aidRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAidNotFound
		}
		return nil, err
	}
	return aid, nil
}

// List lists social aids, optionally filtered by status.
func (s *AidService) List(ctx context.Context, status string, offset, limit int) ([]*models.SocialAid, int64, error) {
	return s.aidRepo.List(ctx, status, offset, limit)
}

// GetByMember lists a member's social aids.
func (s *AidService) GetByMember(ctx context.Context, memberID uint) ([]*models.SocialAid, error) {
	if _, err := s.memberRepo.GetByID(ctx, memberID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}
	return s.aidRepo.GetByMember(ctx, memberID)
}

// MarkRepaid flags an aid as repaid. Any linked debt is untouched.
func (s *AidService) MarkRepaid(ctx context.Context, id uint) (*models.SocialAid, error) {
	aid, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if aid.Status == domain.AidRepaid {
		return nil, ErrAidAlreadyDone
	}

	aid.Status = domain.AidRepaid
	if err := s.aidRepo.Update(ctx, aid); err != nil {
		return nil, err
	}
	return aid, nil
}

// GetDebt gets a sovereign-fund debt by ID.
func (s *AidService) GetDebt(ctx context.Context, id uint) (*models.SovereignDebt, error) {
	debt, err := s.debtRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDebtNotFound
		}
		return nil, err
	}
	return debt, nil
}

// GetDebtByAid gets the debt linked to an aid, if one was created.
func (s *AidService) GetDebtByAid(ctx context.Context, aidID uint) (*models.SovereignDebt, error) {
	debt, err := s.debtRepo.GetByAid(ctx, aidID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDebtNotFound
		}
		return nil, err
	}
	return debt, nil
}

// ListDebts lists sovereign-fund debts, optionally filtered by status.
func (s *AidService) ListDebts(ctx context.Context, status string, offset, limit int) ([]*models.SovereignDebt, int64, error) {
	return s.debtRepo.List(ctx, status, offset, limit)
}

// GetDebtsByMember lists a member's sovereign-fund debts.
func (s *AidService) GetDebtsByMember(ctx context.Context, memberID uint) ([]*models.SovereignDebt, error) {
	if _, err := s.memberRepo.GetByID(ctx, memberID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}
	return s.debtRepo.GetByMember(ctx, memberID)
}

// RecordDebtPayment applies a payment against a debt. Payments are not
// clamped: paying more than remains simply drives remaining negative
// and the debt is settled either way once remaining reaches zero.
func (s *AidService) RecordDebtPayment(ctx context.Context, id uint, input *DebtPaymentInput) (*models.SovereignDebt, error) {
	if input.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	debt, err := s.GetDebt(ctx, id)
	if err != nil {
		return nil, err
	}
	if debt.Status == domain.DebtSettled {
		return nil, ErrDebtSettled
	}

	debt.PaidAmount += input.Amount
	debt.RemainingAmount = debt.OwedAmount - debt.PaidAmount
	debt.Status = domain.DebtStatus(debt.OwedAmount, debt.PaidAmount)

	if err := s.debtRepo.Update(ctx, debt); err != nil {
		return nil, err
	}
	return debt, nil
}

// DebtAlerts partitions outstanding debts into overdue and due-soon.
type DebtAlerts struct {
	Overdue []*models.SovereignDebt `json:"en_retard"`
	DueSoon []*models.SovereignDebt `json:"echeance_proche"`
}

// DebtAlertsNow scans outstanding debts against today's date.
func (s *AidService) DebtAlertsNow(ctx context.Context) (*DebtAlerts, error) {
	outstanding, err := s.debtRepo.ListOutstanding(ctx)
	if err != nil {
		return nil, err
	}

	today := time.Now()
	alerts := &DebtAlerts{}
	for _, debt := range outstanding {
		switch {
		case domain.DebtOverdue(debt.DueDate, today, debt.Status):
			alerts.Overdue = append(alerts.Overdue, debt)
		case domain.DebtDueSoon(debt.DueDate, today, debt.Status):
			alerts.DueSoon = append(alerts.DueSoon, debt)
		}
	}
	return alerts, nil
}

// ListAidTypes returns the aid-type catalog.
func (s *AidService) ListAidTypes(ctx context.Context) ([]*models.AidType, error) {
	return s.typeRepo.List(ctx)
}

// CreateAidType adds a catalog entry.
func (s *AidService) CreateAidType(ctx context.Context, input *AidTypeInput) (*models.AidType, error) {
	t := &models.AidType{
		Name:          input.Name,
		Description:   input.Description,
		DefaultAmount: input.DefaultAmount,
		DelayMonths:   input.DelayMonths,
		IsActive:      true,
	}
	if err := s.typeRepo.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// UpdateAidType edits a catalog entry. Granted aids keep the amounts
// and due dates they were created with.
func (s *AidService) UpdateAidType(ctx context.Context, id uint, input *AidTypeInput, active bool) (*models.AidType, error) {
	t, err := s.typeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAidTypeNotFound
		}
		return nil, err
	}

	t.Name = input.Name
	t.Description = input.Description
	t.DefaultAmount = input.DefaultAmount
	t.DelayMonths = input.DelayMonths
	t.IsActive = active

	if err := s.typeRepo.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}
