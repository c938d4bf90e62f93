package repositories

import (
	"context"

	"e2d-ledger/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// sportRepository implements SportRepository.
type sportRepository struct {
	db *gorm.DB
}

// NewSportRepository creates a new sport repository.
func NewSportRepository(db *gorm.DB) SportRepository {
	return &sportRepository{db: db}
}

// ListActivities lists the sport activities.
func (r *sportRepository) ListActivities(ctx context.Context) ([]*models.SportActivity, error) {
	var activities []*models.SportActivity
	err := r.db.WithContext(ctx).Order("nom ASC").Find(&activities).Error
	return activities, err
}

// GetActivity gets an activity by ID.
func (r *sportRepository) GetActivity(ctx context.Context, id uint) (*models.SportActivity, error) {
	var activity models.SportActivity
	err := r.db.WithContext(ctx).First(&activity, id).Error
	if err != nil {
		return nil, err
	}
	return &activity, nil
}

// CreateParticipant registers a participant in an activity.
func (r *sportRepository) CreateParticipant(ctx context.Context, p *models.SportParticipant) error {
	return r.db.WithContext(ctx).Create(p).Error
}

// GetParticipant gets a participant with its member and activity.
func (r *sportRepository) GetParticipant(ctx context.Context, id uint) (*models.SportParticipant, error) {
	var p models.SportParticipant
	err := r.db.WithContext(ctx).
		Preload("Member").
		Preload("Activity").
		First(&p, id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ListParticipants lists an activity's participants.
func (r *sportRepository) ListParticipants(ctx context.Context, activityID uint) ([]*models.SportParticipant, error) {
	var participants []*models.SportParticipant
	err := r.db.WithContext(ctx).
		Preload("Member").
		Where("activite_id = ?", activityID).
		Order("date_adhesion DESC").
		Find(&participants).Error
	return participants, err
}

// CreateMatch records a match.
func (r *sportRepository) CreateMatch(ctx context.Context, m *models.SportMatch) error {
	return r.db.WithContext(ctx).Create(m).Error
}

// GetMatch gets a match by ID.
func (r *sportRepository) GetMatch(ctx context.Context, id uint) (*models.SportMatch, error) {
	var m models.SportMatch
	err := r.db.WithContext(ctx).First(&m, id).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// ListMatches lists an activity's matches, newest first.
func (r *sportRepository) ListMatches(ctx context.Context, activityID uint) ([]*models.SportMatch, error) {
	var matches []*models.SportMatch
	err := r.db.WithContext(ctx).
		Where("activite_id = ?", activityID).
		Order("date_match DESC").
		Find(&matches).Error
	return matches, err
}

// CreateStat records a participant's stats for a match.
func (r *sportRepository) CreateStat(ctx context.Context, s *models.PlayerStat) error {
	return r.db.WithContext(ctx).Create(s).Error
}

// ListStatsByMatch lists stats recorded for a match.
func (r *sportRepository) ListStatsByMatch(ctx context.Context, matchID uint) ([]*models.PlayerStat, error) {
	var stats []*models.PlayerStat
	err := r.db.WithContext(ctx).
		Preload("Participant").
		Where("match_id = ?", matchID).
		Find(&stats).Error
	return stats, err
}
