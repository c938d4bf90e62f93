package services

import (
	"context"
	"time"

	"e2d-ledger/internal/adapters/persistence/repositories"
	"e2d-ledger/internal/core/domain"
)

// DashboardService aggregates the ledger into the bureau's overview
// figures. Everything here is read-only and derived at request time.
type DashboardService struct {
	memberRepo   repositories.MemberRepository
	sanctionRepo repositories.SanctionRepository
	cotisations  *CotisationService
	loans        *LoanService
	aids         *AidService
	savings      *SavingsService
	members      *MemberService
}

// NewDashboardService creates a new dashboard service.
func NewDashboardService(
	memberRepo repositories.MemberRepository,
	sanctionRepo repositories.SanctionRepository,
	cotisations *CotisationService,
	loans *LoanService,
	aids *AidService,
	savings *SavingsService,
	members *MemberService,
) *DashboardService {
	return &DashboardService{
		memberRepo:   memberRepo,
		sanctionRepo: sanctionRepo,
		cotisations:  cotisations,
		loans:        loans,
		aids:         aids,
		savings:      savings,
		members:      members,
	}
}

// MemberStats counts members per status.
type MemberStats struct {
	Total     int64 `json:"total"`
	Active    int64 `json:"actifs"`
	Inactive  int64 `json:"inactifs"`
	Suspended int64 `json:"suspendus"`
}

// LoanStats summarizes the open loan book.
type LoanStats struct {
	OpenCount        int   `json:"en_cours"`
	OverdueCount     int   `json:"en_retard"`
	DueSoonCount     int   `json:"echeance_proche"`
	OutstandingSum   int64 `json:"encours_total"`
	ExpectedInterest int64 `json:"interets_attendus"`
}

// SanctionStats summarizes unpaid sanctions.
type SanctionStats struct {
	UnpaidCount int64 `json:"impayees"`
	UnpaidSum   int64 `json:"montant_impaye"`
}

// DebtStats summarizes outstanding sovereign-fund debts.
type DebtStats struct {
	OutstandingCount int   `json:"en_cours"`
	OverdueCount     int   `json:"en_retard"`
	DueSoonCount     int   `json:"echeance_proche"`
	RemainingSum     int64 `json:"restant_total"`
}

// SavingsStats summarizes the exercise's savings and caisse fund.
type SavingsStats struct {
	Exercise     int   `json:"exercice"`
	DepositCount int   `json:"nombre_depots"`
	DepositSum   int64 `json:"total_epargne"`
	CaisseSum    int64 `json:"total_caisse"`
}

// Overview is the dashboard payload.
type Overview struct {
	Members              MemberStats    `json:"membres"`
	CurrentPeriod        *PeriodSummary `json:"cotisations_mois"`
	Loans                LoanStats      `json:"prets"`
	Sanctions            SanctionStats  `json:"sanctions"`
	Debts                DebtStats      `json:"dettes"`
	Savings              SavingsStats   `json:"epargne"`
	SuspensionCandidates int            `json:"candidats_suspension"`
}

// GetOverview assembles the dashboard for the current month and
// exercise.
func (s *DashboardService) GetOverview(ctx context.Context) (*Overview, error) {
	now := time.Now()
	overview := &Overview{}

	members, _, err := s.memberRepo.List(ctx, "", 0, 0)
	if err != nil {
		return nil, err
	}
	for _, m := range members {
		overview.Members.Total++
		switch m.Status {
		case domain.MemberActive:
			overview.Members.Active++
		case domain.MemberInactive:
			overview.Members.Inactive++
		case domain.MemberSuspended:
			overview.Members.Suspended++
		}
	}

	period, err := s.cotisations.GetPeriod(ctx, int(now.Month()), now.Year())
	if err != nil {
		return nil, err
	}
	overview.CurrentPeriod = period

	if err := s.fillLoanStats(ctx, now, &overview.Loans); err != nil {
		return nil, err
	}
	if err := s.fillSanctionStats(ctx, &overview.Sanctions); err != nil {
		return nil, err
	}
	if err := s.fillDebtStats(ctx, now, &overview.Debts); err != nil {
		return nil, err
	}
	if err := s.fillSavingsStats(ctx, now.Year(), &overview.Savings); err != nil {
		return nil, err
	}

	candidates, err := s.members.SuspensionCandidates(ctx)
	if err != nil {
		return nil, err
	}
	overview.SuspensionCandidates = len(candidates)

	return overview, nil
}

func (s *DashboardService) fillLoanStats(ctx context.Context, now time.Time, stats *LoanStats) error {
	open, err := s.loans.loanRepo.ListOpen(ctx)
	if err != nil {
		return err
	}
	for _, loan := range open {
		stats.OpenCount++
		stats.OutstandingSum += loan.Principal
		stats.ExpectedInterest += loan.InterestAmount
		switch {
		case domain.LoanOverdue(loan.DueDate, now, loan.Status):
			stats.OverdueCount++
		case domain.LoanDueSoon(loan.DueDate, now, loan.Status):
			stats.DueSoonCount++
		}
	}
	return nil
}

func (s *DashboardService) fillSanctionStats(ctx context.Context, stats *SanctionStats) error {
	unpaid, err := s.sanctionRepo.ListUnpaid(ctx)
	if err != nil {
		return err
	}
	for _, sanction := range unpaid {
		stats.UnpaidCount++
		stats.UnpaidSum += sanction.Amount
	}
	return nil
}

func (s *DashboardService) fillDebtStats(ctx context.Context, now time.Time, stats *DebtStats) error {
	outstanding, err := s.aids.debtRepo.ListOutstanding(ctx)
	if err != nil {
		return err
	}
	for _, debt := range outstanding {
		stats.OutstandingCount++
		stats.RemainingSum += debt.RemainingAmount
		switch {
		case domain.DebtOverdue(debt.DueDate, now, debt.Status):
			stats.OverdueCount++
		case domain.DebtDueSoon(debt.DueDate, now, debt.Status):
			stats.DueSoonCount++
		}
	}
	return nil
}

func (s *DashboardService) fillSavingsStats(ctx context.Context, exercise int, stats *SavingsStats) error {
	stats.Exercise = exercise

	deposits, err := s.savings.savingsRepo.GetByExercise(ctx, exercise)
	if err != nil {
		return err
	}
	for _, d := range deposits {
		stats.DepositCount++
		stats.DepositSum += d.Amount
	}

	caisse, err := s.savings.caisseRepo.SumPaid(ctx, exercise)
	if err != nil {
		return err
	}
	stats.CaisseSum = caisse
	return nil
}
