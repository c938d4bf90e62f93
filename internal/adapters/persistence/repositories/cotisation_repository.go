package repositories

import (
	"context"

	"e2d-ledger/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// cotisationRepository implements CotisationRepository.
type cotisationRepository struct {
	db *gorm.DB
}

// NewCotisationRepository creates a new cotisation repository.
func NewCotisationRepository(db *gorm.DB) CotisationRepository {
	return &cotisationRepository{db: db}
}

// Create creates a new cotisation.
func (r *cotisationRepository) Create(ctx context.Context, cotisation *models.Cotisation) error {
	return r.db.WithContext(ctx).Create(cotisation).Error
}

// GetByID gets a cotisation by ID with its member.
func (r *cotisationRepository) GetByID(ctx context.Context, id uint) (*models.Cotisation, error) {
	var cotisation models.Cotisation
	err := r.db.WithContext(ctx).
		Preload("Member").
		First(&cotisation, id).Error
	if err != nil {
		return nil, err
	}
	return &cotisation, nil
}

// GetByPeriod gets every cotisation of a (month, year) period.
func (r *cotisationRepository) GetByPeriod(ctx context.Context, month, year int) ([]*models.Cotisation, error) {
	var cotisations []*models.Cotisation
	err := r.db.WithContext(ctx).
		Preload("Member").
		Where("mois = ? AND annee = ?", month, year).
		Order("created_at DESC").
		Find(&cotisations).Error
	return cotisations, err
}

// GetByMember gets a member's cotisations, newest period first.
func (r *cotisationRepository) GetByMember(ctx context.Context, memberID uint) ([]*models.Cotisation, error) {
	var cotisations []*models.Cotisation
	err := r.db.WithContext(ctx).
		Where("membre_id = ?", memberID).
		Order("annee DESC, mois DESC").
		Find(&cotisations).Error
	return cotisations, err
}

// ExistsForPeriod checks the one-record-per-member-per-period rule.
func (r *cotisationRepository) ExistsForPeriod(ctx context.Context, memberID uint, month, year int) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Cotisation{}).
		Where("membre_id = ? AND mois = ? AND annee = ?", memberID, month, year).
		Count(&count).Error
	return count > 0, err
}

// Update updates a cotisation.
func (r *cotisationRepository) Update(ctx context.Context, cotisation *models.Cotisation) error {
	return r.db.WithContext(ctx).Save(cotisation).Error
}
