package repositories

import (
	"context"

	"e2d-ledger/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// aidRepository implements AidRepository.
type aidRepository struct {
	db *gorm.DB
}

// NewAidRepository creates a new social-aid repository.
func NewAidRepository(db *gorm.DB) AidRepository {
	return &aidRepository{db: db}
}

// Create creates a new aid grant.
func (r *aidRepository) Create(ctx context.Context, aid *models.SocialAid) error {
	return r.db.WithContext(ctx).Create(aid).Error
}

// GetByID gets an aid by ID with its beneficiary and type.
func (r *aidRepository) GetByID(ctx context.Context, id uint) (*models.SocialAid, error) {
	var aid models.SocialAid
	err := r.db.WithContext(ctx).
		Preload("Beneficiary").
		Preload("Type").
		First(&aid, id).Error
	if err != nil {
		return nil, err
	}
	return &aid, nil
}

// GetByMember gets a member's aids, newest first.
func (r *aidRepository) GetByMember(ctx context.Context, memberID uint) ([]*models.SocialAid, error) {
	var aids []*models.SocialAid
	err := r.db.WithContext(ctx).
		Preload("Type").
		Where("beneficiaire_id = ?", memberID).
		Order("date_aide DESC").
		Find(&aids).Error
	return aids, err
}

// List lists aids, optionally filtered by status, paginated.
func (r *aidRepository) List(ctx context.Context, status string, offset, limit int) ([]*models.SocialAid, int64, error) {
	var aids []*models.SocialAid
	var total int64

	query := r.db.WithContext(ctx).Model(&models.SocialAid{})
	if status != "" {
		query = query.Where("statut = ?", status)
	}
	query.Count(&total)

	err := query.
		Preload("Beneficiary").
		Preload("Type").
		Order("date_aide DESC").
		Offset(offset).
		Limit(limit).
		Find(&aids).Error

	return aids, total, err
}

// Update updates an aid.
func (r *aidRepository) Update(ctx context.Context, aid *models.SocialAid) error {
	return r.db.WithContext(ctx).Save(aid).Error
}

// aidTypeRepository implements AidTypeRepository.
type aidTypeRepository struct {
	db *gorm.DB
}

// NewAidTypeRepository creates a new aid-type repository.
func NewAidTypeRepository(db *gorm.DB) AidTypeRepository {
	return &aidTypeRepository{db: db}
}

// GetByID gets an aid type by ID.
func (r *aidTypeRepository) GetByID(ctx context.Context, id uint) (*models.AidType, error) {
	var t models.AidType
	err := r.db.WithContext(ctx).First(&t, id).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// List lists active aid types.
func (r *aidTypeRepository) List(ctx context.Context) ([]*models.AidType, error) {
	var types []*models.AidType
	err := r.db.WithContext(ctx).
		Where("actif = ?", true).
		Order("nom ASC").
		Find(&types).Error
	return types, err
}

// Create creates an aid type.
func (r *aidTypeRepository) Create(ctx context.Context, t *models.AidType) error {
	return r.db.WithContext(ctx).Create(t).Error
}

// Update updates an aid type.
func (r *aidTypeRepository) Update(ctx context.Context, t *models.AidType) error {
	return r.db.WithContext(ctx).Save(t).Error
}

// debtRepository implements DebtRepository.
type debtRepository struct {
	db *gorm.DB
}

// NewDebtRepository creates a new sovereign-fund debt repository.
func NewDebtRepository(db *gorm.DB) DebtRepository {
	return &debtRepository{db: db}
}

// Create creates a new debt.
func (r *debtRepository) Create(ctx context.Context, debt *models.SovereignDebt) error {
	return r.db.WithContext(ctx).Create(debt).Error
}

// GetByID gets a debt by ID with its debtor.
func (r *debtRepository) GetByID(ctx context.Context, id uint) (*models.SovereignDebt, error) {
	var debt models.SovereignDebt
	err := r.db.WithContext(ctx).
		Preload("Debtor").
		First(&debt, id).Error
	if err != nil {
		return nil, err
	}
	return &debt, nil
}

// GetByAid gets the debt spawned by an aid grant, if any.
func (r *debtRepository) GetByAid(ctx context.Context, aidID uint) (*models.SovereignDebt, error) {
	var debt models.SovereignDebt
	err := r.db.WithContext(ctx).
		Where("aide_sociale_id = ?", aidID).
		First(&debt).Error
	if err != nil {
		return nil, err
	}
	return &debt, nil
}

// GetByMember gets a member's debts, newest first.
func (r *debtRepository) GetByMember(ctx context.Context, memberID uint) ([]*models.SovereignDebt, error) {
	var debts []*models.SovereignDebt
	err := r.db.WithContext(ctx).
		Where("membre_id = ?", memberID).
		Order("created_at DESC").
		Find(&debts).Error
	return debts, err
}

// List lists debts, optionally filtered by status, paginated.
func (r *debtRepository) List(ctx context.Context, status string, offset, limit int) ([]*models.SovereignDebt, int64, error) {
	var debts []*models.SovereignDebt
	var total int64

	query := r.db.WithContext(ctx).Model(&models.SovereignDebt{})
	if status != "" {
		query = query.Where("statut = ?", status)
	}
	query.Count(&total)

	err := query.
		Preload("Debtor").
		Order("date_echeance ASC").
		Offset(offset).
		Limit(limit).
		Find(&debts).Error

	return debts, total, err
}

// ListOutstanding lists debts still in progress.
func (r *debtRepository) ListOutstanding(ctx context.Context) ([]*models.SovereignDebt, error) {
	var debts []*models.SovereignDebt
	err := r.db.WithContext(ctx).
		Preload("Debtor").
		Where("statut = ?", "en_cours").
		Order("date_echeance ASC").
		Find(&debts).Error
	return debts, err
}

// Update updates a debt.
func (r *debtRepository) Update(ctx context.Context, debt *models.SovereignDebt) error {
	return r.db.WithContext(ctx).Save(debt).Error
}
