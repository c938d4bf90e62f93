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

// Sanction service errors
var (
	ErrSanctionNotFound     = errors.New("sanction not found")
	ErrSanctionTypeNotFound = errors.New("sanction type not found")
	ErrSanctionTypeInactive = errors.New("sanction type is inactive")
	ErrSanctionNotUnpaid    = errors.New("sanction is not unpaid")
	ErrSanctionNotPaid      = errors.New("sanction is not paid")
	ErrSanctionCancelled    = errors.New("sanction is cancelled")
)

// SanctionService manages fines and the sanction-type catalog.
type SanctionService struct {
	sanctionRepo repositories.SanctionRepository
	typeRepo     repositories.SanctionTypeRepository
	memberRepo   repositories.MemberRepository
}

// NewSanctionService creates a new sanction service.
func NewSanctionService(
	sanctionRepo repositories.SanctionRepository,
	typeRepo repositories.SanctionTypeRepository,
	memberRepo repositories.MemberRepository,
) *SanctionService {
	return &SanctionService{
		sanctionRepo: sanctionRepo,
		typeRepo:     typeRepo,
		memberRepo:   memberRepo,
	}
}

// CreateSanctionInput represents a fine entry. Amount zero means "use
// the type's default amount".
type CreateSanctionInput struct {
	MemberID uint   `json:"membre_id" validate:"required"`
	TypeID   uint   `json:"type_sanction_id" validate:"required"`
	Amount   int64  `json:"montant" validate:"gte=0"`
	Reason   string `json:"motif,omitempty"`
	Date     string `json:"date_sanction,omitempty"`
}

// SanctionTypeInput represents a catalog entry.
type SanctionTypeInput struct {
	Name          string `json:"nom" validate:"required,max=100"`
	Category      string `json:"categorie" validate:"required,oneof=reunion sport_e2d sport_phoenix disciplinaire"`
	Description   string `json:"description,omitempty"`
	DefaultAmount int64  `json:"montant_defaut" validate:"gte=0"`
}

// Create records a fine against a member.
func (s *SanctionService) Create(ctx context.Context, input *CreateSanctionInput, actorID uint) (*models.Sanction, error) {
	if _, err := s.memberRepo.GetByID(ctx, input.MemberID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}

	sanctionType, err := s.typeRepo.GetByID(ctx, input.TypeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSanctionTypeNotFound
		}
		return nil, err
	}
	if !sanctionType.IsActive {
		return nil, ErrSanctionTypeInactive
	}

	amount := input.Amount
	if amount == 0 {
		amount = sanctionType.DefaultAmount
	}

	date := domain.DateOnly(time.Now())
	if input.Date != "" {
		parsed, err := time.Parse("2006-01-02", input.Date)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		date = parsed
	}

	sanction := &models.Sanction{
		MemberID:  input.MemberID,
		TypeID:    input.TypeID,
		Amount:    amount,
		Reason:    input.Reason,
		Date:      date,
		Status:    domain.SanctionUnpaid,
		EnteredBy: actorID,
	}

	if err := s.sanctionRepo.Create(ctx, sanction); err != nil {
		return nil, err
	}
	return sanction, nil
}

// CreateAutomatic records a fine generated by another module, such as
// a red card recorded in a sport match.
func (s *SanctionService) CreateAutomatic(ctx context.Context, memberID, typeID uint, reason string, actorID uint) (*models.Sanction, error) {
	sanctionType, err := s.typeRepo.GetByID(ctx, typeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSanctionTypeNotFound
		}
		return nil, err
	}

	sanction := &models.Sanction{
		MemberID:  memberID,
		TypeID:    typeID,
		Amount:    sanctionType.DefaultAmount,
		Reason:    reason,
		Date:      domain.DateOnly(time.Now()),
		Status:    domain.SanctionUnpaid,
		Automatic: true,
		EnteredBy: actorID,
	}

	if err := s.sanctionRepo.Create(ctx, sanction); err != nil {
		return nil, err
	}
	return sanction, nil
}

// GetByID gets a sanction by ID.
func (s *SanctionService) GetByID(ctx context.Context, id uint) (*models.Sanction, error) {
	sanction, err := s.sanctionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSanctionNotFound
		}
		return nil, err
	}
	return sanction, nil
}

// List lists sanctions with optional status and category filters.
func (s *SanctionService) List(ctx context.Context, status, category string, offset, limit int) ([]*models.Sanction, int64, error) {
	return s.sanctionRepo.List(ctx, status, category, offset, limit)
}

// GetByMember lists a member's sanctions.
func (s *SanctionService) GetByMember(ctx context.Context, memberID uint) ([]*models.Sanction, error) {
	if _, err := s.memberRepo.GetByID(ctx, memberID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}
	return s.sanctionRepo.GetByMember(ctx, memberID)
}

// Pay marks an unpaid sanction paid and stamps the payment date.
func (s *SanctionService) Pay(ctx context.Context, id uint, paymentDate string) (*models.Sanction, error) {
	sanction, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sanction.Status != domain.SanctionUnpaid {
		return nil, ErrSanctionNotUnpaid
	}

	date := domain.DateOnly(time.Now())
	if paymentDate != "" {
		parsed, err := time.Parse("2006-01-02", paymentDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		date = parsed
	}

	sanction.Status = domain.SanctionPaid
	sanction.PaymentDate = &date

	if err := s.sanctionRepo.Update(ctx, sanction); err != nil {
		return nil, err
	}
	return sanction, nil
}

// Unpay reverts a paid sanction back to unpaid and clears its payment
// date, for correcting an entry mistake.
func (s *SanctionService) Unpay(ctx context.Context, id uint) (*models.Sanction, error) {
	sanction, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sanction.Status != domain.SanctionPaid {
		return nil, ErrSanctionNotPaid
	}

	sanction.Status = domain.SanctionUnpaid
	sanction.PaymentDate = nil

	if err := s.sanctionRepo.Update(ctx, sanction); err != nil {
		return nil, err
	}
	return sanction, nil
}

// Cancel voids a sanction. Cancelled sanctions never count toward the
// suspension threshold.
func (s *SanctionService) Cancel(ctx context.Context, id uint) (*models.Sanction, error) {
	sanction, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sanction.Status == domain.SanctionCancelled {
		return nil, ErrSanctionCancelled
	}

	sanction.Status = domain.SanctionCancelled
	sanction.PaymentDate = nil

	if err := s.sanctionRepo.Update(ctx, sanction); err != nil {
		return nil, err
	}
	return sanction, nil
}

// ListTypes returns the catalog, optionally filtered by category.
func (s *SanctionService) ListTypes(ctx context.Context, category string) ([]*models.SanctionType, error) {
	if category != "" {
		return s.typeRepo.ListByCategory(ctx, category)
	}
	return s.typeRepo.List(ctx)
}

// CreateType adds a catalog entry.
func (s *SanctionService) CreateType(ctx context.Context, input *SanctionTypeInput) (*models.SanctionType, error) {
	t := &models.SanctionType{
		Name:          input.Name,
		Category:      input.Category,
		Description:   input.Description,
		DefaultAmount: input.DefaultAmount,
		IsActive:      true,
	}
	if err := s.typeRepo.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// UpdateType edits a catalog entry. Existing sanctions keep the
// amounts they were recorded with.
func (s *SanctionService) UpdateType(ctx context.Context, id uint, input *SanctionTypeInput, active bool) (*models.SanctionType, error) {
	t, err := s.typeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSanctionTypeNotFound
		}
		return nil, err
	}

	t.Name = input.Name
	t.Category = input.Category
	t.Description = input.Description
	t.DefaultAmount = input.DefaultAmount
	t.IsActive = active

	if err := s.typeRepo.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}
