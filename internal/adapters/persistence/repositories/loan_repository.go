package repositories

import (
	"context"

	"e2d-ledger/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// loanRepository implements LoanRepository.
type loanRepository struct {
	db *gorm.DB
}

// NewLoanRepository creates a new loan repository.
func NewLoanRepository(db *gorm.DB) LoanRepository {
	return &loanRepository{db: db}
}

// Create creates a new loan.
func (r *loanRepository) Create(ctx context.Context, loan *models.Loan) error {
	return r.db.WithContext(ctx).Create(loan).Error
}

// GetByID gets a loan by ID with its borrower.
func (r *loanRepository) GetByID(ctx context.Context, id uint) (*models.Loan, error) {
	var loan models.Loan
	err := r.db.WithContext(ctx).
		Preload("Borrower").
		First(&loan, id).Error
	if err != nil {
		return nil, err
	}
	return &loan, nil
}

// GetByMember gets a member's loans, newest first.
func (r *loanRepository) GetByMember(ctx context.Context, memberID uint) ([]*models.Loan, error) {
	var loans []*models.Loan
	err := r.db.WithContext(ctx).
		Where("emprunteur_id = ?", memberID).
		Order("date_pret DESC").
		Find(&loans).Error
	return loans, err
}

// List lists loans, optionally filtered by stored status, paginated.
func (r *loanRepository) List(ctx context.Context, status string, offset, limit int) ([]*models.Loan, int64, error) {
	var loans []*models.Loan
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Loan{})
	if status != "" {
		query = query.Where("statut = ?", status)
	}
	query.Count(&total)

	err := query.
		Preload("Borrower").
		Order("date_pret DESC").
		Offset(offset).
		Limit(limit).
		Find(&loans).Error

	return loans, total, err
}

// ListOpen lists loans still carrying an obligation (active or renewed).
func (r *loanRepository) ListOpen(ctx context.Context) ([]*models.Loan, error) {
	var loans []*models.Loan
	err := r.db.WithContext(ctx).
		Preload("Borrower").
		Where("statut IN ?", []string{"en_cours", "reconduit"}).
		Order("date_echeance ASC").
		Find(&loans).Error
	return loans, err
}

// Update updates a loan.
func (r *loanRepository) Update(ctx context.Context, loan *models.Loan) error {
	return r.db.WithContext(ctx).Save(loan).Error
}
