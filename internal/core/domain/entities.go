package domain

// Role represents a user role in the system
type Role string

const (
	RoleMember    Role = "MEMBRE"
	RoleTreasurer Role = "TRESORIER"
	RoleAdmin     Role = "ADMIN"
)

// Member statuses. Status values follow the association's French
// vocabulary; they are stored and exchanged as-is.
const (
	MemberActive    = "actif"
	MemberInactive  = "inactif"
	MemberSuspended = "suspendu"
)

// Cotisation statuses are never stored: they are derived from the
// amounts and the in-kind flags (see CotisationStatus).
const (
	CotisationPaid    = "paye"
	CotisationPartial = "partiel"
	CotisationUnpaid  = "impaye"
)

// Loan statuses. "en_retard" is deliberately absent: overdue is a
// read-time label (LoanOverdue), not a state a transition produces.
const (
	LoanActive  = "en_cours"
	LoanRepaid  = "rembourse"
	LoanRenewed = "reconduit"
)

// Sanction statuses
const (
	SanctionUnpaid    = "impayee"
	SanctionPaid      = "payee"
	SanctionCancelled = "annulee"
)

// Sanction categories
const (
	CategoryMeeting      = "reunion"
	CategorySportE2D     = "sport_e2d"
	CategorySportPhoenix = "sport_phoenix"
	CategoryDiscipline   = "disciplinaire"
)

// Social aid statuses
const (
	AidGranted = "accordee"
	AidRepaid  = "remboursee"
)

// Sovereign-fund debt statuses
const (
	DebtInProgress = "en_cours"
	DebtSettled    = "soldee"
)

// Savings deposit statuses
const (
	SavingActive = "active"
	SavingRepaid = "remboursee"
)

// Caisse fund statuses
const (
	CaisseDue  = "du"
	CaissePaid = "paye"
)

// Sport activity kinds
const (
	SportE2D     = "e2d"
	SportPhoenix = "phoenix"
)

// Loan terms fixed by the association's bylaws.
const (
	// LoanInterestRatePercent is the flat rate applied once at grant time.
	LoanInterestRatePercent = 5
	// LoanTermMonths separates the grant (or renewal) date from the due date.
	LoanTermMonths = 2
)

// Due-date warning windows, in days.
const (
	LoanDueSoonDays = 7
	DebtDueSoonDays = 30
)
