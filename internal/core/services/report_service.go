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

// Report service errors
var (
	ErrReportNotFound = errors.New("meeting report not found")
)

// ReportService manages meeting reports and their agenda items.
type ReportService struct {
	reportRepo repositories.ReportRepository
	memberRepo repositories.MemberRepository
}

// NewReportService creates a new report service.
func NewReportService(reportRepo repositories.ReportRepository, memberRepo repositories.MemberRepository) *ReportService {
	return &ReportService{reportRepo: reportRepo, memberRepo: memberRepo}
}

// AgendaItemInput represents one agenda point. Items are kept in the
// order given.
type AgendaItemInput struct {
	Subject    string `json:"sujet" validate:"required,max=200"`
	Resolution string `json:"resolution,omitempty"`
}

// ReportInput represents a meeting report write. On update the agenda
// items replace the existing ones wholesale.
type ReportInput struct {
	MeetingDate string            `json:"date_seance" validate:"required"`
	Venue       string            `json:"lieu,omitempty"`
	HostID      uint              `json:"hote_membre_id" validate:"required"`
	PdfURL      string            `json:"document_pdf_url,omitempty"`
	AgendaItems []AgendaItemInput `json:"points_ordre_jour" validate:"dive"`
}

func (s *ReportService) buildReport(ctx context.Context, input *ReportInput) (*models.MeetingReport, error) {
	meetingDate, err := time.Parse("2006-01-02", input.MeetingDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	if _, err := s.memberRepo.GetByID(ctx, input.HostID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}

	report := &models.MeetingReport{
		MeetingDate: meetingDate,
		Venue:       input.Venue,
		HostID:      input.HostID,
		PdfURL:      input.PdfURL,
	}
	for i, item := range input.AgendaItems {
		report.AgendaItems = append(report.AgendaItems, models.AgendaItem{
			Subject:    item.Subject,
			Resolution: item.Resolution,
			Position:   i + 1,
		})
	}
	return report, nil
}

// Create saves a meeting report with its agenda.
func (s *ReportService) Create(ctx context.Context, input *ReportInput) (*models.MeetingReport, error) {
	report, err := s.buildReport(ctx, input)
	if err != nil {
		return nil, err
	}
	if err := s.reportRepo.Create(ctx, report); err != nil {
		return nil, err
	}
	return report, nil
}

// GetByID gets a report with its agenda items and host.
func (s *ReportService) GetByID(ctx context.Context, id uint) (*models.MeetingReport, error) {
	report, err := s.reportRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReportNotFound
		}
		return nil, err
	}
	return report, nil
}

// List lists reports, newest meeting first.
func (s *ReportService) List(ctx context.Context, offset, limit int) ([]*models.MeetingReport, int64, error) {
	return s.reportRepo.List(ctx, offset, limit)
}

// Update rewrites a report; the agenda is replaced with the items
// given.
func (s *ReportService) Update(ctx context.Context, id uint, input *ReportInput) (*models.MeetingReport, error) {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	report, err := s.buildReport(ctx, input)
	if err != nil {
		return nil, err
	}
	report.ID = existing.ID
	for i := range report.AgendaItems {
		report.AgendaItems[i].ReportID = existing.ID
	}

	if err := s.reportRepo.Update(ctx, report); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

// Delete removes a report and its agenda items.
func (s *ReportService) Delete(ctx context.Context, id uint) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	return s.reportRepo.Delete(ctx, id)
}
