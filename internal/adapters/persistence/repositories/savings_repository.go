package repositories

import (
	"context"

	"e2d-ledger/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// savingsRepository implements SavingsRepository.
type savingsRepository struct {
	db *gorm.DB
}

// NewSavingsRepository creates a new savings repository.
func NewSavingsRepository(db *gorm.DB) SavingsRepository {
	return &savingsRepository{db: db}
}

// Create creates a new deposit.
func (r *savingsRepository) Create(ctx context.Context, deposit *models.SavingsDeposit) error {
	return r.db.WithContext(ctx).Create(deposit).Error
}

// GetByID gets a deposit by ID with its member.
func (r *savingsRepository) GetByID(ctx context.Context, id uint) (*models.SavingsDeposit, error) {
	var deposit models.SavingsDeposit
	err := r.db.WithContext(ctx).
		Preload("Member").
		First(&deposit, id).Error
	if err != nil {
		return nil, err
	}
	return &deposit, nil
}

// GetByExercise gets every deposit of an exercise year.
func (r *savingsRepository) GetByExercise(ctx context.Context, exercise int) ([]*models.SavingsDeposit, error) {
	var deposits []*models.SavingsDeposit
	err := r.db.WithContext(ctx).
		Preload("Member").
		Where("exercice = ?", exercise).
		Order("date_depot DESC").
		Find(&deposits).Error
	return deposits, err
}

// GetByMember gets a member's deposits, newest first.
func (r *savingsRepository) GetByMember(ctx context.Context, memberID uint) ([]*models.SavingsDeposit, error) {
	var deposits []*models.SavingsDeposit
	err := r.db.WithContext(ctx).
		Where("membre_id = ?", memberID).
		Order("date_depot DESC").
		Find(&deposits).Error
	return deposits, err
}

// Update updates a deposit.
func (r *savingsRepository) Update(ctx context.Context, deposit *models.SavingsDeposit) error {
	return r.db.WithContext(ctx).Save(deposit).Error
}

// caisseRepository implements CaisseRepository.
type caisseRepository struct {
	db *gorm.DB
}

// NewCaisseRepository creates a new caisse-fund repository.
func NewCaisseRepository(db *gorm.DB) CaisseRepository {
	return &caisseRepository{db: db}
}

// Create creates a caisse-fund due.
func (r *caisseRepository) Create(ctx context.Context, due *models.CaisseFund) error {
	return r.db.WithContext(ctx).Create(due).Error
}

// GetByID gets a caisse-fund due by ID.
func (r *caisseRepository) GetByID(ctx context.Context, id uint) (*models.CaisseFund, error) {
	var due models.CaisseFund
	err := r.db.WithContext(ctx).
		Preload("Member").
		First(&due, id).Error
	if err != nil {
		return nil, err
	}
	return &due, nil
}

// GetByExercise gets every caisse-fund due of an exercise year.
func (r *caisseRepository) GetByExercise(ctx context.Context, exercise int) ([]*models.CaisseFund, error) {
	var dues []*models.CaisseFund
	err := r.db.WithContext(ctx).
		Preload("Member").
		Where("exercice = ?", exercise).
		Order("created_at DESC").
		Find(&dues).Error
	return dues, err
}

// SumPaid sums paid caisse-fund amounts for an exercise.
func (r *caisseRepository) SumPaid(ctx context.Context, exercise int) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&models.CaisseFund{}).
		Where("exercice = ? AND statut = ?", exercise, "paye").
		Select("COALESCE(SUM(montant), 0)").
		Scan(&total).Error
	return total, err
}

// Update updates a caisse-fund due.
func (r *caisseRepository) Update(ctx context.Context, due *models.CaisseFund) error {
	return r.db.WithContext(ctx).Save(due).Error
}
