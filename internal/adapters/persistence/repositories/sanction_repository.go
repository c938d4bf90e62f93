package repositories

import (
	"context"

	"e2d-ledger/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// sanctionRepository implements SanctionRepository.
type sanctionRepository struct {
	db *gorm.DB
}

// NewSanctionRepository creates a new sanction repository.
func NewSanctionRepository(db *gorm.DB) SanctionRepository {
	return &sanctionRepository{db: db}
}

// Create creates a new sanction.
func (r *sanctionRepository) Create(ctx context.Context, sanction *models.Sanction) error {
	return r.db.WithContext(ctx).Create(sanction).Error
}

// GetByID gets a sanction by ID with its member and type.
func (r *sanctionRepository) GetByID(ctx context.Context, id uint) (*models.Sanction, error) {
	var sanction models.Sanction
	err := r.db.WithContext(ctx).
		Preload("Member").
		Preload("Type").
		First(&sanction, id).Error
	if err != nil {
		return nil, err
	}
	return &sanction, nil
}

// GetByMember gets a member's sanctions, newest first.
func (r *sanctionRepository) GetByMember(ctx context.Context, memberID uint) ([]*models.Sanction, error) {
	var sanctions []*models.Sanction
	err := r.db.WithContext(ctx).
		Preload("Type").
		Where("membre_id = ?", memberID).
		Order("date_sanction DESC").
		Find(&sanctions).Error
	return sanctions, err
}

// List lists sanctions filtered by status and/or type category.
func (r *sanctionRepository) List(ctx context.Context, status, category string, offset, limit int) ([]*models.Sanction, int64, error) {
	var sanctions []*models.Sanction
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Sanction{})
	if status != "" {
		query = query.Where("statut = ?", status)
	}
	if category != "" {
		query = query.
			Joins("JOIN types_sanctions ON sanctions.type_sanction_id = types_sanctions.id").
			Where("types_sanctions.categorie = ?", category)
	}
	query.Count(&total)

	err := query.
		Preload("Member").
		Preload("Type").
		Order("date_sanction DESC").
		Offset(offset).
		Limit(limit).
		Find(&sanctions).Error

	return sanctions, total, err
}

// ListUnpaid lists every unpaid sanction.
func (r *sanctionRepository) ListUnpaid(ctx context.Context) ([]*models.Sanction, error) {
	var sanctions []*models.Sanction
	err := r.db.WithContext(ctx).
		Preload("Member").
		Preload("Type").
		Where("statut = ?", "impayee").
		Order("date_sanction DESC").
		Find(&sanctions).Error
	return sanctions, err
}

// CountUnpaidByMember returns unpaid-sanction counts keyed by member,
// used for suspension-threshold flagging.
func (r *sanctionRepository) CountUnpaidByMember(ctx context.Context) (map[uint]int64, error) {
	type row struct {
		MemberID uint  `gorm:"column:membre_id"`
		Count    int64 `gorm:"column:count"`
	}

	var rows []row
	err := r.db.WithContext(ctx).
		Model(&models.Sanction{}).
		Select("membre_id, COUNT(*) as count").
		Where("statut = ?", "impayee").
		Group("membre_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[uint]int64, len(rows))
	for _, r := range rows {
		counts[r.MemberID] = r.Count
	}
	return counts, nil
}

// Update updates a sanction.
func (r *sanctionRepository) Update(ctx context.Context, sanction *models.Sanction) error {
	return r.db.WithContext(ctx).Save(sanction).Error
}

// sanctionTypeRepository implements SanctionTypeRepository.
type sanctionTypeRepository struct {
	db *gorm.DB
}

// NewSanctionTypeRepository creates a new sanction-type repository.
func NewSanctionTypeRepository(db *gorm.DB) SanctionTypeRepository {
	return &sanctionTypeRepository{db: db}
}

// GetByID gets a sanction type by ID.
func (r *sanctionTypeRepository) GetByID(ctx context.Context, id uint) (*models.SanctionType, error) {
	var t models.SanctionType
	err := r.db.WithContext(ctx).First(&t, id).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// List lists active sanction types ordered by category then name.
func (r *sanctionTypeRepository) List(ctx context.Context) ([]*models.SanctionType, error) {
	var types []*models.SanctionType
	err := r.db.WithContext(ctx).
		Where("actif = ?", true).
		Order("categorie ASC, nom ASC").
		Find(&types).Error
	return types, err
}

// ListByCategory lists active sanction types of one category.
func (r *sanctionTypeRepository) ListByCategory(ctx context.Context, category string) ([]*models.SanctionType, error) {
	var types []*models.SanctionType
	err := r.db.WithContext(ctx).
		Where("categorie = ? AND actif = ?", category, true).
		Order("nom ASC").
		Find(&types).Error
	return types, err
}

// Create creates a sanction type.
func (r *sanctionTypeRepository) Create(ctx context.Context, t *models.SanctionType) error {
	return r.db.WithContext(ctx).Create(t).Error
}

// Update updates a sanction type.
func (r *sanctionTypeRepository) Update(ctx context.Context, t *models.SanctionType) error {
	return r.db.WithContext(ctx).Save(t).Error
}
