package models

import (
	"time"

	"gorm.io/gorm"

	"e2d-ledger/internal/core/domain"
)

// ============================================================
// Auth tables
// ============================================================

// User represents the users table (staff accounts able to sign in).
type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Email     string         `gorm:"uniqueIndex;size:100;not null" json:"email"`
	FullName  string         `gorm:"size:100;not null" json:"full_name"`
	Password  string         `gorm:"size:255;not null" json:"-"`
	Role      string         `gorm:"size:20;default:'MEMBRE'" json:"role"`
	IsActive  bool           `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string {
	return "users"
}

// UserResponse DTO
type UserResponse struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

func (u *User) ToResponse() *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		FullName:  u.FullName,
		Role:      u.Role,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}

// RefreshToken represents the refresh_tokens table.
type RefreshToken struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	UserID    uint       `gorm:"index;not null" json:"user_id"`
	TokenHash string     `gorm:"size:255;not null;index" json:"-"`
	ExpiresAt time.Time  `gorm:"not null" json:"expires_at"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	RevokedAt *time.Time `gorm:"index" json:"revoked_at"`
	User      User       `gorm:"foreignKey:UserID" json:"-"`
}

func (RefreshToken) TableName() string {
	return "refresh_tokens"
}

func (rt *RefreshToken) IsRevoked() bool {
	return rt.RevokedAt != nil
}

func (rt *RefreshToken) IsExpired() bool {
	return time.Now().After(rt.ExpiresAt)
}

// ============================================================
// Members
// ============================================================

// Member represents the membres table.
type Member struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	LastName   string         `gorm:"size:100;not null" json:"nom"`
	FirstName  string         `gorm:"size:100;not null" json:"prenom"`
	Email      string         `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Phone      string         `gorm:"size:30" json:"telephone"`
	PhotoURL   string         `gorm:"size:500" json:"photo_url"`
	Status     string         `gorm:"size:20;not null;default:'actif';index" json:"statut"`
	MonthlyDue int64          `gorm:"not null;default:0" json:"montant_cotisation_mensuelle"`
	JoinDate   time.Time      `gorm:"type:date;not null" json:"date_adhesion"`
	CreatedAt  time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Member) TableName() string {
	return "membres"
}

// FullName returns "Prenom Nom" for display and log lines.
func (m *Member) FullName() string {
	return m.FirstName + " " + m.LastName
}

// StatusHistory represents the statuts_membres table. One row is
// appended per status change, in the same transaction as the change.
type StatusHistory struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	MemberID  uint      `gorm:"not null;index" json:"membre_id"`
	OldStatus string    `gorm:"size:20;not null" json:"ancien_statut"`
	NewStatus string    `gorm:"size:20;not null" json:"nouveau_statut"`
	Reason    string    `gorm:"type:text" json:"motif"`
	ChangedBy uint      `gorm:"not null" json:"modifie_par"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"date_changement"`

	Member *Member `gorm:"foreignKey:MemberID" json:"member,omitempty"`
	Actor  *User   `gorm:"foreignKey:ChangedBy" json:"actor,omitempty"`
}

func (StatusHistory) TableName() string {
	return "statuts_membres"
}

// ============================================================
// Cotisations
// ============================================================

// Cotisation represents the cotisations table. At most one record per
// (member, month, year) by convention; a unique index backs it.
type Cotisation struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	MemberID        uint       `gorm:"not null;index;uniqueIndex:idx_cotisation_period" json:"membre_id"`
	Month           int        `gorm:"not null;uniqueIndex:idx_cotisation_period" json:"mois"`
	Year            int        `gorm:"not null;uniqueIndex:idx_cotisation_period;index" json:"annee"`
	ExpectedAmount  int64      `gorm:"not null" json:"montant_attendu"`
	PaidAmount      int64      `gorm:"not null;default:0" json:"montant_paye"`
	OilPaid         bool       `gorm:"default:false" json:"huile_paye"`
	SoapPaid        bool       `gorm:"default:false" json:"savon_paye"`
	SportFundPaid   bool       `gorm:"default:false" json:"fond_sport_paye"`
	SportFundAmount int64      `gorm:"not null;default:0" json:"montant_fond_sport"`
	PaymentDate     *time.Time `gorm:"type:date" json:"date_paiement"`
	EnteredBy       uint       `gorm:"not null" json:"saisi_par"`
	CreatedAt       time.Time  `gorm:"autoCreateTime" json:"created_at"`

	Member *Member `gorm:"foreignKey:MemberID" json:"member,omitempty"`
}

func (Cotisation) TableName() string {
	return "cotisations"
}

// Status derives the display status; it is never stored.
func (c *Cotisation) Status() string {
	return domain.CotisationStatus(c.ExpectedAmount, c.PaidAmount, c.OilPaid, c.SoapPaid, c.SportFundPaid)
}

// CotisationResponse DTO
type CotisationResponse struct {
	ID              uint       `json:"id"`
	MemberID        uint       `json:"membre_id"`
	MemberName      string     `json:"membre,omitempty"`
	Month           int        `json:"mois"`
	Year            int        `json:"annee"`
	ExpectedAmount  int64      `json:"montant_attendu"`
	PaidAmount      int64      `json:"montant_paye"`
	OilPaid         bool       `json:"huile_paye"`
	SoapPaid        bool       `json:"savon_paye"`
	SportFundPaid   bool       `json:"fond_sport_paye"`
	SportFundAmount int64      `json:"montant_fond_sport"`
	PaymentDate     *time.Time `json:"date_paiement"`
	Status          string     `json:"statut"`
	CreatedAt       time.Time  `json:"created_at"`
}

func (c *Cotisation) ToResponse() *CotisationResponse {
	resp := &CotisationResponse{
		ID:              c.ID,
		MemberID:        c.MemberID,
		Month:           c.Month,
		Year:            c.Year,
		ExpectedAmount:  c.ExpectedAmount,
		PaidAmount:      c.PaidAmount,
		OilPaid:         c.OilPaid,
		SoapPaid:        c.SoapPaid,
		SportFundPaid:   c.SportFundPaid,
		SportFundAmount: c.SportFundAmount,
		PaymentDate:     c.PaymentDate,
		Status:          c.Status(),
		CreatedAt:       c.CreatedAt,
	}
	if c.Member != nil {
		resp.MemberName = c.Member.FullName()
	}
	return resp
}

// ============================================================
// Loans (prêts)
// ============================================================

// Loan represents the prets table.
type Loan struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	BorrowerID     uint           `gorm:"not null;index" json:"emprunteur_id"`
	Principal      int64          `gorm:"not null" json:"montant_principal"`
	InterestRate   int64          `gorm:"not null" json:"taux_interet"`
	InterestAmount int64          `gorm:"not null" json:"montant_interet"`
	GrantDate      time.Time      `gorm:"type:date;not null" json:"date_pret"`
	DueDate        time.Time      `gorm:"type:date;not null;index" json:"date_echeance"`
	RepaymentDate  *time.Time     `gorm:"type:date" json:"date_remboursement"`
	Status         string         `gorm:"size:20;not null;default:'en_cours';index" json:"statut"`
	RenewalCount   int            `gorm:"not null;default:0" json:"nombre_reconductions"`
	DocumentURL    string         `gorm:"size:500" json:"document_url"`
	GrantedBy      uint           `gorm:"not null" json:"accorde_par"`
	CreatedAt      time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`

	Borrower *Member `gorm:"foreignKey:BorrowerID" json:"borrower,omitempty"`
}

func (Loan) TableName() string {
	return "prets"
}

// LoanResponse DTO. Overdue and DueSoon are derived labels.
type LoanResponse struct {
	ID             uint       `json:"id"`
	BorrowerID     uint       `json:"emprunteur_id"`
	BorrowerName   string     `json:"emprunteur,omitempty"`
	Principal      int64      `json:"montant_principal"`
	InterestRate   int64      `json:"taux_interet"`
	InterestAmount int64      `json:"montant_interet"`
	TotalDue       int64      `json:"total_a_rembourser"`
	GrantDate      time.Time  `json:"date_pret"`
	DueDate        time.Time  `json:"date_echeance"`
	RepaymentDate  *time.Time `json:"date_remboursement"`
	Status         string     `json:"statut"`
	RenewalCount   int        `json:"nombre_reconductions"`
	DocumentURL    string     `json:"document_url,omitempty"`
	Overdue        bool       `json:"en_retard"`
	DueSoon        bool       `json:"echeance_proche"`
	CreatedAt      time.Time  `json:"created_at"`
}

// ToResponse builds the DTO relative to the given day.
func (l *Loan) ToResponse(today time.Time) *LoanResponse {
	resp := &LoanResponse{
		ID:             l.ID,
		BorrowerID:     l.BorrowerID,
		Principal:      l.Principal,
		InterestRate:   l.InterestRate,
		InterestAmount: l.InterestAmount,
		TotalDue:       l.Principal + l.InterestAmount,
		GrantDate:      l.GrantDate,
		DueDate:        l.DueDate,
		RepaymentDate:  l.RepaymentDate,
		Status:         l.Status,
		RenewalCount:   l.RenewalCount,
		DocumentURL:    l.DocumentURL,
		Overdue:        domain.LoanOverdue(l.DueDate, today, l.Status),
		DueSoon:        domain.LoanDueSoon(l.DueDate, today, l.Status),
		CreatedAt:      l.CreatedAt,
	}
	if l.Borrower != nil {
		resp.BorrowerName = l.Borrower.FullName()
	}
	return resp
}

// ============================================================
// Sanctions
// ============================================================

// SanctionType represents the types_sanctions master table.
type SanctionType struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	Name          string         `gorm:"size:100;not null" json:"nom"`
	Category      string         `gorm:"size:30;not null;index" json:"categorie"`
	Description   string         `gorm:"type:text" json:"description"`
	DefaultAmount int64          `gorm:"not null;default:0" json:"montant_defaut"`
	IsActive      bool           `gorm:"default:true" json:"actif"`
	CreatedAt     time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

func (SanctionType) TableName() string {
	return "types_sanctions"
}

// Sanction represents the sanctions table.
type Sanction struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	MemberID    uint           `gorm:"not null;index" json:"membre_id"`
	TypeID      uint           `gorm:"not null" json:"type_sanction_id"`
	Amount      int64          `gorm:"not null" json:"montant"`
	Reason      string         `gorm:"type:text" json:"motif"`
	Date        time.Time      `gorm:"type:date;not null" json:"date_sanction"`
	Status      string         `gorm:"size:20;not null;default:'impayee';index" json:"statut"`
	PaymentDate *time.Time     `gorm:"type:date" json:"date_paiement"`
	Automatic   bool           `gorm:"default:false" json:"automatique"`
	EnteredBy   uint           `gorm:"not null" json:"saisi_par"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	Member *Member       `gorm:"foreignKey:MemberID" json:"member,omitempty"`
	Type   *SanctionType `gorm:"foreignKey:TypeID" json:"type,omitempty"`
}

func (Sanction) TableName() string {
	return "sanctions"
}

// SanctionResponse DTO
type SanctionResponse struct {
	ID          uint       `json:"id"`
	MemberID    uint       `json:"membre_id"`
	MemberName  string     `json:"membre,omitempty"`
	TypeID      uint       `json:"type_sanction_id"`
	TypeName    string     `json:"type,omitempty"`
	Category    string     `json:"categorie,omitempty"`
	Amount      int64      `json:"montant"`
	Reason      string     `json:"motif,omitempty"`
	Date        time.Time  `json:"date_sanction"`
	Status      string     `json:"statut"`
	PaymentDate *time.Time `json:"date_paiement"`
	Automatic   bool       `json:"automatique"`
}

func (s *Sanction) ToResponse() *SanctionResponse {
	resp := &SanctionResponse{
		ID:          s.ID,
		MemberID:    s.MemberID,
		TypeID:      s.TypeID,
		Amount:      s.Amount,
		Reason:      s.Reason,
		Date:        s.Date,
		Status:      s.Status,
		PaymentDate: s.PaymentDate,
		Automatic:   s.Automatic,
	}
	if s.Member != nil {
		resp.MemberName = s.Member.FullName()
	}
	if s.Type != nil {
		resp.TypeName = s.Type.Name
		resp.Category = s.Type.Category
	}
	return resp
}

// ============================================================
// Social aids & sovereign-fund debts
// ============================================================

// AidType represents the types_aides master table.
type AidType struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	Name          string         `gorm:"size:100;not null" json:"nom"`
	Description   string         `gorm:"type:text" json:"description"`
	DefaultAmount int64          `gorm:"not null;default:0" json:"montant_defaut"`
	DelayMonths   int            `gorm:"not null;default:0" json:"delai_remboursement_mois"`
	IsActive      bool           `gorm:"default:true" json:"actif"`
	CreatedAt     time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

func (AidType) TableName() string {
	return "types_aides"
}

// SocialAid represents the aides_sociales table.
type SocialAid struct {
	ID               uint           `gorm:"primaryKey" json:"id"`
	BeneficiaryID    uint           `gorm:"not null;index" json:"beneficiaire_id"`
	TypeID           uint           `gorm:"not null" json:"type_aide_id"`
	Amount           int64          `gorm:"not null" json:"montant"`
	GrantDate        time.Time      `gorm:"type:date;not null" json:"date_aide"`
	RepaymentDueDate time.Time      `gorm:"type:date;not null" json:"date_limite_remboursement"`
	JustificationURL string         `gorm:"size:500" json:"justificatif"`
	Status           string         `gorm:"size:20;not null;default:'accordee';index" json:"statut"`
	GrantedBy        uint           `gorm:"not null" json:"accorde_par"`
	CreatedAt        time.Time      `gorm:"autoCreateTime" json:"created_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`

	Beneficiary *Member  `gorm:"foreignKey:BeneficiaryID" json:"beneficiary,omitempty"`
	Type        *AidType `gorm:"foreignKey:TypeID" json:"type,omitempty"`
}

func (SocialAid) TableName() string {
	return "aides_sociales"
}

// SocialAidResponse DTO
type SocialAidResponse struct {
	ID               uint      `json:"id"`
	BeneficiaryID    uint      `json:"beneficiaire_id"`
	BeneficiaryName  string    `json:"beneficiaire,omitempty"`
	TypeID           uint      `json:"type_aide_id"`
	TypeName         string    `json:"type,omitempty"`
	Amount           int64     `json:"montant"`
	GrantDate        time.Time `json:"date_aide"`
	RepaymentDueDate time.Time `json:"date_limite_remboursement"`
	JustificationURL string    `json:"justificatif,omitempty"`
	Status           string    `json:"statut"`
	CreatedAt        time.Time `json:"created_at"`
}

func (a *SocialAid) ToResponse() *SocialAidResponse {
	resp := &SocialAidResponse{
		ID:               a.ID,
		BeneficiaryID:    a.BeneficiaryID,
		TypeID:           a.TypeID,
		Amount:           a.Amount,
		GrantDate:        a.GrantDate,
		RepaymentDueDate: a.RepaymentDueDate,
		JustificationURL: a.JustificationURL,
		Status:           a.Status,
		CreatedAt:        a.CreatedAt,
	}
	if a.Beneficiary != nil {
		resp.BeneficiaryName = a.Beneficiary.FullName()
	}
	if a.Type != nil {
		resp.TypeName = a.Type.Name
	}
	return resp
}

// SovereignDebt represents the dettes_fond_souverain table. The debt
// lives independently of the aid that spawned it: settling one never
// touches the other.
type SovereignDebt struct {
	ID              uint           `gorm:"primaryKey" json:"id"`
	DebtorID        uint           `gorm:"not null;index" json:"membre_id"`
	AidID           uint           `gorm:"not null;index" json:"aide_sociale_id"`
	OwedAmount      int64          `gorm:"not null" json:"montant_dette"`
	PaidAmount      int64          `gorm:"not null;default:0" json:"montant_paye"`
	RemainingAmount int64          `gorm:"not null" json:"montant_restant"`
	DueDate         time.Time      `gorm:"type:date;not null;index" json:"date_echeance"`
	Status          string         `gorm:"size:20;not null;default:'en_cours';index" json:"statut"`
	CreatedAt       time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`

	Debtor *Member `gorm:"foreignKey:DebtorID" json:"debtor,omitempty"`
}

func (SovereignDebt) TableName() string {
	return "dettes_fond_souverain"
}

// SovereignDebtResponse DTO
type SovereignDebtResponse struct {
	ID              uint      `json:"id"`
	DebtorID        uint      `json:"membre_id"`
	DebtorName      string    `json:"membre,omitempty"`
	AidID           uint      `json:"aide_sociale_id"`
	OwedAmount      int64     `json:"montant_dette"`
	PaidAmount      int64     `json:"montant_paye"`
	RemainingAmount int64     `json:"montant_restant"`
	DueDate         time.Time `json:"date_echeance"`
	Status          string    `json:"statut"`
	Overdue         bool      `json:"en_retard"`
	DueSoon         bool      `json:"echeance_proche"`
}

func (d *SovereignDebt) ToResponse(today time.Time) *SovereignDebtResponse {
	resp := &SovereignDebtResponse{
		ID:              d.ID,
		DebtorID:        d.DebtorID,
		AidID:           d.AidID,
		OwedAmount:      d.OwedAmount,
		PaidAmount:      d.PaidAmount,
		RemainingAmount: d.RemainingAmount,
		DueDate:         d.DueDate,
		Status:          d.Status,
		Overdue:         domain.DebtOverdue(d.DueDate, today, d.Status),
		DueSoon:         domain.DebtDueSoon(d.DueDate, today, d.Status),
	}
	if d.Debtor != nil {
		resp.DebtorName = d.Debtor.FullName()
	}
	return resp
}

// ============================================================
// Savings & caisse fund
// ============================================================

// SavingsDeposit represents the epargnes table.
type SavingsDeposit struct {
	ID               uint           `gorm:"primaryKey" json:"id"`
	MemberID         uint           `gorm:"not null;index" json:"membre_id"`
	Amount           int64          `gorm:"not null" json:"montant"`
	DepositDate      time.Time      `gorm:"type:date;not null" json:"date_depot"`
	Exercise         int            `gorm:"not null;index" json:"exercice"`
	Status           string         `gorm:"size:20;not null;default:'active';index" json:"statut"`
	RepaymentDate    *time.Time     `gorm:"type:date" json:"date_remboursement"`
	InterestReceived int64          `gorm:"not null;default:0" json:"interets_recus"`
	CreatedAt        time.Time      `gorm:"autoCreateTime" json:"created_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`

	Member *Member `gorm:"foreignKey:MemberID" json:"member,omitempty"`
}

func (SavingsDeposit) TableName() string {
	return "epargnes"
}

// CaisseFund represents the fonds_caisse table (yearly caisse dues).
type CaisseFund struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	MemberID    uint       `gorm:"not null;index" json:"membre_id"`
	Amount      int64      `gorm:"not null" json:"montant"`
	Exercise    int        `gorm:"not null;index" json:"exercice"`
	Status      string     `gorm:"size:20;not null;default:'du'" json:"statut"`
	PaymentDate *time.Time `gorm:"type:date" json:"date_paiement"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`

	Member *Member `gorm:"foreignKey:MemberID" json:"member,omitempty"`
}

func (CaisseFund) TableName() string {
	return "fonds_caisse"
}

// ============================================================
// Configuration
// ============================================================

// Setting represents the configurations table: typed key/value pairs.
type Setting struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Key         string    `gorm:"column:cle;uniqueIndex;size:100;not null" json:"cle"`
	Value       string    `gorm:"column:valeur;type:text;not null" json:"valeur"`
	ValueType   string    `gorm:"column:type_valeur;size:10;not null;default:'text'" json:"type_valeur"`
	Category    string    `gorm:"column:categorie;size:30;not null;default:'general'" json:"categorie"`
	Description string    `gorm:"type:text" json:"description"`
	Modifiable  bool      `gorm:"default:true" json:"modifiable"`
	ModifiedBy  *uint     `json:"modifie_par"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Setting) TableName() string {
	return "configurations"
}

// Setting value types
const (
	SettingText    = "text"
	SettingNumber  = "number"
	SettingBoolean = "boolean"
	SettingJSON    = "json"
)

// ============================================================
// Meeting reports
// ============================================================

// MeetingReport represents the rapports_seances table.
type MeetingReport struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	MeetingDate time.Time      `gorm:"type:date;not null;index" json:"date_seance"`
	Venue       string         `gorm:"size:200" json:"lieu"`
	HostID      uint           `gorm:"not null" json:"hote_membre_id"`
	PdfURL      string         `gorm:"size:500" json:"document_pdf_url"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	Host        *Member      `gorm:"foreignKey:HostID" json:"host,omitempty"`
	AgendaItems []AgendaItem `gorm:"foreignKey:ReportID" json:"points_ordre_jour,omitempty"`
}

func (MeetingReport) TableName() string {
	return "rapports_seances"
}

// AgendaItem represents the points_ordre_jour table.
type AgendaItem struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	ReportID   uint   `gorm:"not null;index" json:"rapport_id"`
	Subject    string `gorm:"size:200;not null" json:"sujet"`
	Resolution string `gorm:"type:text" json:"resolution"`
	Position   int    `gorm:"not null;default:0" json:"ordre"`
}

func (AgendaItem) TableName() string {
	return "points_ordre_jour"
}

// ============================================================
// Auto migration
// ============================================================

// AutoMigrate creates or updates every table of the ledger.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		// Auth
		&User{},
		&RefreshToken{},
		// Members
		&Member{},
		&StatusHistory{},
		// Obligations
		&Cotisation{},
		&Loan{},
		&SanctionType{},
		&Sanction{},
		&AidType{},
		&SocialAid{},
		&SovereignDebt{},
		&SavingsDeposit{},
		&CaisseFund{},
		// Configuration & reports
		&Setting{},
		&MeetingReport{},
		&AgendaItem{},
		// Sport
		&SportActivity{},
		&SportParticipant{},
		&SportMatch{},
		&PlayerStat{},
	)
}
