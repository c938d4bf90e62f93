package repositories

import (
	"context"

	"e2d-ledger/internal/adapters/persistence/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// settingRepository implements SettingRepository.
type settingRepository struct {
	db *gorm.DB
}

// NewSettingRepository creates a new setting repository.
func NewSettingRepository(db *gorm.DB) SettingRepository {
	return &settingRepository{db: db}
}

// GetByKey gets a setting row by its key.
func (r *settingRepository) GetByKey(ctx context.Context, key string) (*models.Setting, error) {
	var setting models.Setting
	err := r.db.WithContext(ctx).
		Where("cle = ?", key).
		First(&setting).Error
	if err != nil {
		return nil, err
	}
	return &setting, nil
}

// List lists every setting grouped by category.
func (r *settingRepository) List(ctx context.Context) ([]*models.Setting, error) {
	var settings []*models.Setting
	err := r.db.WithContext(ctx).
		Order("categorie ASC, cle ASC").
		Find(&settings).Error
	return settings, err
}

// Upsert inserts or updates a setting by key.
func (r *settingRepository) Upsert(ctx context.Context, setting *models.Setting) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "cle"}},
			DoUpdates: clause.AssignmentColumns([]string{"valeur", "type_valeur", "modifie_par", "updated_at"}),
		}).
		Create(setting).Error
}
