package repositories

import (
	"context"

	"e2d-ledger/internal/adapters/persistence/models"
)

// UserRepository defines the staff-account repository interface.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	List(ctx context.Context, offset, limit int) ([]*models.User, int64, error)
}

// RefreshTokenRepository defines the refresh-token repository interface.
type RefreshTokenRepository interface {
	Create(ctx context.Context, token *models.RefreshToken) error
	GetByTokenHash(ctx context.Context, tokenHash string) (*models.RefreshToken, error)
	RevokeByTokenHash(ctx context.Context, tokenHash string) error
	RevokeAllByUserID(ctx context.Context, userID uint) error
	DeleteExpired(ctx context.Context) error
}

// MemberRepository defines the member repository interface.
// ChangeStatus persists the history row and the member update as one
// transaction: the two must reflect a single logical event together.
// List with a non-positive limit returns every row.
type MemberRepository interface {
	Create(ctx context.Context, member *models.Member) error
	GetByID(ctx context.Context, id uint) (*models.Member, error)
	List(ctx context.Context, status string, offset, limit int) ([]*models.Member, int64, error)
	ListActive(ctx context.Context) ([]*models.Member, error)
	Update(ctx context.Context, member *models.Member) error
	Delete(ctx context.Context, id uint) error
	ChangeStatus(ctx context.Context, member *models.Member, history *models.StatusHistory) error
	GetStatusHistory(ctx context.Context, memberID uint) ([]*models.StatusHistory, error)
}

// CotisationRepository defines the cotisation repository interface.
type CotisationRepository interface {
	Create(ctx context.Context, cotisation *models.Cotisation) error
	GetByID(ctx context.Context, id uint) (*models.Cotisation, error)
	GetByPeriod(ctx context.Context, month, year int) ([]*models.Cotisation, error)
	GetByMember(ctx context.Context, memberID uint) ([]*models.Cotisation, error)
	ExistsForPeriod(ctx context.Context, memberID uint, month, year int) (bool, error)
	Update(ctx context.Context, cotisation *models.Cotisation) error
}

// LoanRepository defines the loan repository interface.
type LoanRepository interface {
	Create(ctx context.Context, loan *models.Loan) error
	GetByID(ctx context.Context, id uint) (*models.Loan, error)
	GetByMember(ctx context.Context, memberID uint) ([]*models.Loan, error)
	List(ctx context.Context, status string, offset, limit int) ([]*models.Loan, int64, error)
	ListOpen(ctx context.Context) ([]*models.Loan, error)
	Update(ctx context.Context, loan *models.Loan) error
}

// SanctionRepository defines the sanction repository interface.
type SanctionRepository interface {
	Create(ctx context.Context, sanction *models.Sanction) error
	GetByID(ctx context.Context, id uint) (*models.Sanction, error)
	GetByMember(ctx context.Context, memberID uint) ([]*models.Sanction, error)
	List(ctx context.Context, status, category string, offset, limit int) ([]*models.Sanction, int64, error)
	ListUnpaid(ctx context.Context) ([]*models.Sanction, error)
	CountUnpaidByMember(ctx context.Context) (map[uint]int64, error)
	Update(ctx context.Context, sanction *models.Sanction) error
}

// SanctionTypeRepository defines the sanction-type catalog interface.
type SanctionTypeRepository interface {
	GetByID(ctx context.Context, id uint) (*models.SanctionType, error)
	List(ctx context.Context) ([]*models.SanctionType, error)
	ListByCategory(ctx context.Context, category string) ([]*models.SanctionType, error)
	Create(ctx context.Context, t *models.SanctionType) error
	Update(ctx context.Context, t *models.SanctionType) error
}

// AidRepository defines the social-aid repository interface.
type AidRepository interface {
	Create(ctx context.Context, aid *models.SocialAid) error
	GetByID(ctx context.Context, id uint) (*models.SocialAid, error)
	GetByMember(ctx context.Context, memberID uint) ([]*models.SocialAid, error)
	List(ctx context.Context, status string, offset, limit int) ([]*models.SocialAid, int64, error)
	Update(ctx context.Context, aid *models.SocialAid) error
}

// AidTypeRepository defines the aid-type catalog interface.
type AidTypeRepository interface {
	GetByID(ctx context.Context, id uint) (*models.AidType, error)
	List(ctx context.Context) ([]*models.AidType, error)
	Create(ctx context.Context, t *models.AidType) error
	Update(ctx context.Context, t *models.AidType) error
}

// DebtRepository defines the sovereign-fund debt repository interface.
type DebtRepository interface {
	Create(ctx context.Context, debt *models.SovereignDebt) error
	GetByID(ctx context.Context, id uint) (*models.SovereignDebt, error)
	GetByAid(ctx context.Context, aidID uint) (*models.SovereignDebt, error)
	GetByMember(ctx context.Context, memberID uint) ([]*models.SovereignDebt, error)
	List(ctx context.Context, status string, offset, limit int) ([]*models.SovereignDebt, int64, error)
	ListOutstanding(ctx context.Context) ([]*models.SovereignDebt, error)
	Update(ctx context.Context, debt *models.SovereignDebt) error
}

// SavingsRepository defines the savings-deposit repository interface.
type SavingsRepository interface {
	Create(ctx context.Context, deposit *models.SavingsDeposit) error
	GetByID(ctx context.Context, id uint) (*models.SavingsDeposit, error)
	GetByExercise(ctx context.Context, exercise int) ([]*models.SavingsDeposit, error)
	GetByMember(ctx context.Context, memberID uint) ([]*models.SavingsDeposit, error)
	Update(ctx context.Context, deposit *models.SavingsDeposit) error
}

// CaisseRepository defines the caisse-fund repository interface.
type CaisseRepository interface {
	Create(ctx context.Context, due *models.CaisseFund) error
	GetByID(ctx context.Context, id uint) (*models.CaisseFund, error)
	GetByExercise(ctx context.Context, exercise int) ([]*models.CaisseFund, error)
	SumPaid(ctx context.Context, exercise int) (int64, error)
	Update(ctx context.Context, due *models.CaisseFund) error
}

// ReportRepository defines the meeting-report repository interface.
type ReportRepository interface {
	Create(ctx context.Context, report *models.MeetingReport) error
	GetByID(ctx context.Context, id uint) (*models.MeetingReport, error)
	List(ctx context.Context, offset, limit int) ([]*models.MeetingReport, int64, error)
	Update(ctx context.Context, report *models.MeetingReport) error
	Delete(ctx context.Context, id uint) error
}

// SettingRepository defines the configuration key/value interface.
type SettingRepository interface {
	GetByKey(ctx context.Context, key string) (*models.Setting, error)
	List(ctx context.Context) ([]*models.Setting, error)
	Upsert(ctx context.Context, setting *models.Setting) error
}

// SportRepository defines the sport-module repository interface.
type SportRepository interface {
	ListActivities(ctx context.Context) ([]*models.SportActivity, error)
	GetActivity(ctx context.Context, id uint) (*models.SportActivity, error)
	CreateParticipant(ctx context.Context, p *models.SportParticipant) error
	GetParticipant(ctx context.Context, id uint) (*models.SportParticipant, error)
	ListParticipants(ctx context.Context, activityID uint) ([]*models.SportParticipant, error)
	CreateMatch(ctx context.Context, m *models.SportMatch) error
	GetMatch(ctx context.Context, id uint) (*models.SportMatch, error)
	ListMatches(ctx context.Context, activityID uint) ([]*models.SportMatch, error)
	CreateStat(ctx context.Context, s *models.PlayerStat) error
	ListStatsByMatch(ctx context.Context, matchID uint) ([]*models.PlayerStat, error)
}
