package repositories

import (
	"context"

	"e2d-ledger/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// reportRepository implements ReportRepository.
type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new meeting-report repository.
func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

// Create creates a report together with its agenda items.
func (r *reportRepository) Create(ctx context.Context, report *models.MeetingReport) error {
	return r.db.WithContext(ctx).Create(report).Error
}

// GetByID gets a report with its host and ordered agenda items.
func (r *reportRepository) GetByID(ctx context.Context, id uint) (*models.MeetingReport, error) {
	var report models.MeetingReport
	err := r.db.WithContext(ctx).
		Preload("Host").
		Preload("AgendaItems", func(db *gorm.DB) *gorm.DB {
			return db.Order("ordre ASC")
		}).
		First(&report, id).Error
	if err != nil {
		return nil, err
	}
	return &report, nil
}

// List lists reports, newest meeting first.
func (r *reportRepository) List(ctx context.Context, offset, limit int) ([]*models.MeetingReport, int64, error) {
	var reports []*models.MeetingReport
	var total int64

	r.db.WithContext(ctx).Model(&models.MeetingReport{}).Count(&total)

	err := r.db.WithContext(ctx).
		Preload("Host").
		Order("date_seance DESC").
		Offset(offset).
		Limit(limit).
		Find(&reports).Error

	return reports, total, err
}

// Update updates a report and replaces its agenda items.
func (r *reportRepository) Update(ctx context.Context, report *models.MeetingReport) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("rapport_id = ?", report.ID).Delete(&models.AgendaItem{}).Error; err != nil {
			return err
		}
		return tx.Save(report).Error
	})
}

// Delete soft deletes a report.
func (r *reportRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.MeetingReport{}, id).Error
}
