package repositories

import (
	"context"

	"e2d-ledger/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// memberRepository implements MemberRepository.
type memberRepository struct {
	db *gorm.DB
}

// NewMemberRepository creates a new member repository.
func NewMemberRepository(db *gorm.DB) MemberRepository {
	return &memberRepository{db: db}
}

// Create creates a new member.
func (r *memberRepository) Create(ctx context.Context, member *models.Member) error {
	return r.db.WithContext(ctx).Create(member).Error
}

// GetByID gets a member by ID.
func (r *memberRepository) GetByID(ctx context.Context, id uint) (*models.Member, error) {
	var member models.Member
	err := r.db.WithContext(ctx).First(&member, id).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// List lists members, optionally filtered by status, with pagination.
func (r *memberRepository) List(ctx context.Context, status string, offset, limit int) ([]*models.Member, int64, error) {
	var members []*models.Member
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Member{})
	if status != "" {
		query = query.Where("statut = ?", status)
	}
	query.Count(&total)

	query = query.Order("nom ASC, prenom ASC").Offset(offset)
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&members).Error

	return members, total, err
}

// ListActive lists every active member (used by selects and rollups).
func (r *memberRepository) ListActive(ctx context.Context) ([]*models.Member, error) {
	var members []*models.Member
	err := r.db.WithContext(ctx).
		Where("statut = ?", "actif").
		Order("nom ASC, prenom ASC").
		Find(&members).Error
	return members, err
}

// Update updates a member profile.
func (r *memberRepository) Update(ctx context.Context, member *models.Member) error {
	return r.db.WithContext(ctx).Save(member).Error
}

// Delete soft deletes a member. Nothing guards referential integrity
// here; callers are expected to know what they are doing.
func (r *memberRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Member{}, id).Error
}

// ChangeStatus appends the status-history row and updates the member
// inside a single transaction, so history and live status can never
// disagree.
func (r *memberRepository) ChangeStatus(ctx context.Context, member *models.Member, history *models.StatusHistory) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(history).Error; err != nil {
			return err
		}
		return tx.Model(&models.Member{}).
			Where("id = ?", member.ID).
			Update("statut", member.Status).Error
	})
}

// GetStatusHistory lists a member's status changes, newest first.
func (r *memberRepository) GetStatusHistory(ctx context.Context, memberID uint) ([]*models.StatusHistory, error) {
	var history []*models.StatusHistory
	err := r.db.WithContext(ctx).
		Preload("Actor").
		Where("membre_id = ?", memberID).
		Order("created_at DESC").
		Find(&history).Error
	return history, err
}
