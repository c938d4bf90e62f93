package services

import (
	"context"
	"errors"
	"sort"

	"e2d-ledger/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// In-memory repository fakes. Every fake keeps rows in a map keyed by
// ID and hands out sequential IDs, close enough to the real store for
// service-level behavior.

type fakeMemberRepo struct {
	members map[uint]*models.Member
	history []*models.StatusHistory
	nextID  uint

	changeStatusErr error
}

func newFakeMemberRepo() *fakeMemberRepo {
	return &fakeMemberRepo{members: make(map[uint]*models.Member), nextID: 1}
}

func (f *fakeMemberRepo) Create(_ context.Context, member *models.Member) error {
	member.ID = f.nextID
	f.nextID++
	f.members[member.ID] = member
	return nil
}

func (f *fakeMemberRepo) GetByID(_ context.Context, id uint) (*models.Member, error) {
	member, ok := f.members[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return member, nil
}

func (f *fakeMemberRepo) List(_ context.Context, status string, _, _ int) ([]*models.Member, int64, error) {
	var out []*models.Member
	for _, m := range f.members {
		if status == "" || m.Status == status {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, int64(len(out)), nil
}

func (f *fakeMemberRepo) ListActive(ctx context.Context) ([]*models.Member, error) {
	active, _, err := f.List(ctx, "actif", 0, 0)
	return active, err
}

func (f *fakeMemberRepo) Update(_ context.Context, member *models.Member) error {
	if _, ok := f.members[member.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	f.members[member.ID] = member
	return nil
}

func (f *fakeMemberRepo) Delete(_ context.Context, id uint) error {
	delete(f.members, id)
	return nil
}

func (f *fakeMemberRepo) ChangeStatus(_ context.Context, member *models.Member, history *models.StatusHistory) error {
	if f.changeStatusErr != nil {
		return f.changeStatusErr
	}
	f.members[member.ID] = member
	f.history = append(f.history, history)
	return nil
}

func (f *fakeMemberRepo) GetStatusHistory(_ context.Context, memberID uint) ([]*models.StatusHistory, error) {
	var out []*models.StatusHistory
	for _, h := range f.history {
		if h.MemberID == memberID {
			out = append(out, h)
		}
	}
	return out, nil
}

type fakeCotisationRepo struct {
	cotisations map[uint]*models.Cotisation
	nextID      uint
}

func newFakeCotisationRepo() *fakeCotisationRepo {
	return &fakeCotisationRepo{cotisations: make(map[uint]*models.Cotisation), nextID: 1}
}

func (f *fakeCotisationRepo) Create(_ context.Context, c *models.Cotisation) error {
	c.ID = f.nextID
	f.nextID++
	f.cotisations[c.ID] = c
	return nil
}

func (f *fakeCotisationRepo) GetByID(_ context.Context, id uint) (*models.Cotisation, error) {
	c, ok := f.cotisations[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (f *fakeCotisationRepo) GetByPeriod(_ context.Context, month, year int) ([]*models.Cotisation, error) {
	var out []*models.Cotisation
	for _, c := range f.cotisations {
		if c.Month == month && c.Year == year {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeCotisationRepo) GetByMember(_ context.Context, memberID uint) ([]*models.Cotisation, error) {
	var out []*models.Cotisation
	for _, c := range f.cotisations {
		if c.MemberID == memberID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCotisationRepo) ExistsForPeriod(_ context.Context, memberID uint, month, year int) (bool, error) {
	for _, c := range f.cotisations {
		if c.MemberID == memberID && c.Month == month && c.Year == year {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeCotisationRepo) Update(_ context.Context, c *models.Cotisation) error {
	f.cotisations[c.ID] = c
	return nil
}

type fakeLoanRepo struct {
	loans  map[uint]*models.Loan
	nextID uint
}

func newFakeLoanRepo() *fakeLoanRepo {
	return &fakeLoanRepo{loans: make(map[uint]*models.Loan), nextID: 1}
}

func (f *fakeLoanRepo) Create(_ context.Context, loan *models.Loan) error {
	loan.ID = f.nextID
	f.nextID++
	f.loans[loan.ID] = loan
	return nil
}

func (f *fakeLoanRepo) GetByID(_ context.Context, id uint) (*models.Loan, error) {
	loan, ok := f.loans[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return loan, nil
}

func (f *fakeLoanRepo) GetByMember(_ context.Context, memberID uint) ([]*models.Loan, error) {
	var out []*models.Loan
	for _, l := range f.loans {
		if l.BorrowerID == memberID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeLoanRepo) List(_ context.Context, status string, _, _ int) ([]*models.Loan, int64, error) {
	var out []*models.Loan
	for _, l := range f.loans {
		if status == "" || l.Status == status {
			out = append(out, l)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeLoanRepo) ListOpen(_ context.Context) ([]*models.Loan, error) {
	var out []*models.Loan
	for _, l := range f.loans {
		if l.Status == "en_cours" || l.Status == "reconduit" {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeLoanRepo) Update(_ context.Context, loan *models.Loan) error {
	f.loans[loan.ID] = loan
	return nil
}

type fakeSanctionRepo struct {
	sanctions map[uint]*models.Sanction
	nextID    uint
}

func newFakeSanctionRepo() *fakeSanctionRepo {
	return &fakeSanctionRepo{sanctions: make(map[uint]*models.Sanction), nextID: 1}
}

func (f *fakeSanctionRepo) Create(_ context.Context, s *models.Sanction) error {
	s.ID = f.nextID
	f.nextID++
	f.sanctions[s.ID] = s
	return nil
}

func (f *fakeSanctionRepo) GetByID(_ context.Context, id uint) (*models.Sanction, error) {
	s, ok := f.sanctions[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return s, nil
}

func (f *fakeSanctionRepo) GetByMember(_ context.Context, memberID uint) ([]*models.Sanction, error) {
	var out []*models.Sanction
	for _, s := range f.sanctions {
		if s.MemberID == memberID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSanctionRepo) List(_ context.Context, status, _ string, _, _ int) ([]*models.Sanction, int64, error) {
	var out []*models.Sanction
	for _, s := range f.sanctions {
		if status == "" || s.Status == status {
			out = append(out, s)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeSanctionRepo) ListUnpaid(ctx context.Context) ([]*models.Sanction, error) {
	unpaid, _, err := f.List(ctx, "impayee", "", 0, 0)
	return unpaid, err
}

func (f *fakeSanctionRepo) CountUnpaidByMember(_ context.Context) (map[uint]int64, error) {
	counts := make(map[uint]int64)
	for _, s := range f.sanctions {
		if s.Status == "impayee" {
			counts[s.MemberID]++
		}
	}
	return counts, nil
}

func (f *fakeSanctionRepo) Update(_ context.Context, s *models.Sanction) error {
	f.sanctions[s.ID] = s
	return nil
}

type fakeSanctionTypeRepo struct {
	types  map[uint]*models.SanctionType
	nextID uint
}

func newFakeSanctionTypeRepo() *fakeSanctionTypeRepo {
	return &fakeSanctionTypeRepo{types: make(map[uint]*models.SanctionType), nextID: 1}
}

func (f *fakeSanctionTypeRepo) GetByID(_ context.Context, id uint) (*models.SanctionType, error) {
	t, ok := f.types[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return t, nil
}

func (f *fakeSanctionTypeRepo) List(_ context.Context) ([]*models.SanctionType, error) {
	var out []*models.SanctionType
	for _, t := range f.types {
		out = append(out, t)
	}
	return out, nil
}

func (f *fakeSanctionTypeRepo) ListByCategory(_ context.Context, category string) ([]*models.SanctionType, error) {
	var out []*models.SanctionType
	for _, t := range f.types {
		if t.Category == category {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeSanctionTypeRepo) Create(_ context.Context, t *models.SanctionType) error {
	t.ID = f.nextID
	f.nextID++
	f.types[t.ID] = t
	return nil
}

func (f *fakeSanctionTypeRepo) Update(_ context.Context, t *models.SanctionType) error {
	f.types[t.ID] = t
	return nil
}

type fakeAidRepo struct {
	aids   map[uint]*models.SocialAid
	nextID uint
}

func newFakeAidRepo() *fakeAidRepo {
	return &fakeAidRepo{aids: make(map[uint]*models.SocialAid), nextID: 1}
}

func (f *fakeAidRepo) Create(_ context.Context, aid *models.SocialAid) error {
	aid.ID = f.nextID
	f.nextID++
	f.aids[aid.ID] = aid
	return nil
}

func (f *fakeAidRepo) GetByID(_ context.Context, id uint) (*models.SocialAid, error) {
	aid, ok := f.aids[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return aid, nil
}

func (f *fakeAidRepo) GetByMember(_ context.Context, memberID uint) ([]*models.SocialAid, error) {
	var out []*models.SocialAid
	for _, a := range f.aids {
		if a.BeneficiaryID == memberID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAidRepo) List(_ context.Context, status string, _, _ int) ([]*models.SocialAid, int64, error) {
	var out []*models.SocialAid
	for _, a := range f.aids {
		if status == "" || a.Status == status {
			out = append(out, a)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeAidRepo) Update(_ context.Context, aid *models.SocialAid) error {
	f.aids[aid.ID] = aid
	return nil
}

type fakeAidTypeRepo struct {
	types  map[uint]*models.AidType
	nextID uint
}

func newFakeAidTypeRepo() *fakeAidTypeRepo {
	return &fakeAidTypeRepo{types: make(map[uint]*models.AidType), nextID: 1}
}

func (f *fakeAidTypeRepo) GetByID(_ context.Context, id uint) (*models.AidType, error) {
	t, ok := f.types[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return t, nil
}

func (f *fakeAidTypeRepo) List(_ context.Context) ([]*models.AidType, error) {
	var out []*models.AidType
	for _, t := range f.types {
		out = append(out, t)
	}
	return out, nil
}

func (f *fakeAidTypeRepo) Create(_ context.Context, t *models.AidType) error {
	t.ID = f.nextID
	f.nextID++
	f.types[t.ID] = t
	return nil
}

func (f *fakeAidTypeRepo) Update(_ context.Context, t *models.AidType) error {
	f.types[t.ID] = t
	return nil
}

type fakeDebtRepo struct {
	debts  map[uint]*models.SovereignDebt
	nextID uint

	createErr error
}

func newFakeDebtRepo() *fakeDebtRepo {
	return &fakeDebtRepo{debts: make(map[uint]*models.SovereignDebt), nextID: 1}
}

func (f *fakeDebtRepo) Create(_ context.Context, debt *models.SovereignDebt) error {
	if f.createErr != nil {
		return f.createErr
	}
	debt.ID = f.nextID
	f.nextID++
	f.debts[debt.ID] = debt
	return nil
}

func (f *fakeDebtRepo) GetByID(_ context.Context, id uint) (*models.SovereignDebt, error) {
	debt, ok := f.debts[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return debt, nil
}

func (f *fakeDebtRepo) GetByAid(_ context.Context, aidID uint) (*models.SovereignDebt, error) {
	for _, d := range f.debts {
		if d.AidID == aidID {
			return d, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeDebtRepo) GetByMember(_ context.Context, memberID uint) ([]*models.SovereignDebt, error) {
	var out []*models.SovereignDebt
	for _, d := range f.debts {
		if d.DebtorID == memberID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeDebtRepo) List(_ context.Context, status string, _, _ int) ([]*models.SovereignDebt, int64, error) {
	var out []*models.SovereignDebt
	for _, d := range f.debts {
		if status == "" || d.Status == status {
			out = append(out, d)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeDebtRepo) ListOutstanding(ctx context.Context) ([]*models.SovereignDebt, error) {
	outstanding, _, err := f.List(ctx, "en_cours", 0, 0)
	return outstanding, err
}

func (f *fakeDebtRepo) Update(_ context.Context, debt *models.SovereignDebt) error {
	f.debts[debt.ID] = debt
	return nil
}

type fakeSettingRepo struct {
	settings map[string]*models.Setting
}

func newFakeSettingRepo() *fakeSettingRepo {
	return &fakeSettingRepo{settings: make(map[string]*models.Setting)}
}

func (f *fakeSettingRepo) GetByKey(_ context.Context, key string) (*models.Setting, error) {
	s, ok := f.settings[key]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return s, nil
}

func (f *fakeSettingRepo) List(_ context.Context) ([]*models.Setting, error) {
	var out []*models.Setting
	for _, s := range f.settings {
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeSettingRepo) Upsert(_ context.Context, setting *models.Setting) error {
	f.settings[setting.Key] = setting
	return nil
}

type fakeSportRepo struct {
	activities   map[uint]*models.SportActivity
	participants map[uint]*models.SportParticipant
	matches      map[uint]*models.SportMatch
	stats        map[uint]*models.PlayerStat
	nextID       uint
}

func newFakeSportRepo() *fakeSportRepo {
	return &fakeSportRepo{
		activities:   make(map[uint]*models.SportActivity),
		participants: make(map[uint]*models.SportParticipant),
		matches:      make(map[uint]*models.SportMatch),
		stats:        make(map[uint]*models.PlayerStat),
		nextID:       1,
	}
}

func (f *fakeSportRepo) id() uint {
	id := f.nextID
	f.nextID++
	return id
}

func (f *fakeSportRepo) ListActivities(_ context.Context) ([]*models.SportActivity, error) {
	var out []*models.SportActivity
	for _, a := range f.activities {
		out = append(out, a)
	}
	return out, nil
}

func (f *fakeSportRepo) GetActivity(_ context.Context, id uint) (*models.SportActivity, error) {
	a, ok := f.activities[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return a, nil
}

func (f *fakeSportRepo) CreateParticipant(_ context.Context, p *models.SportParticipant) error {
	p.ID = f.id()
	f.participants[p.ID] = p
	return nil
}

func (f *fakeSportRepo) GetParticipant(_ context.Context, id uint) (*models.SportParticipant, error) {
	p, ok := f.participants[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (f *fakeSportRepo) ListParticipants(_ context.Context, activityID uint) ([]*models.SportParticipant, error) {
	var out []*models.SportParticipant
	for _, p := range f.participants {
		if p.ActivityID == activityID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeSportRepo) CreateMatch(_ context.Context, m *models.SportMatch) error {
	m.ID = f.id()
	f.matches[m.ID] = m
	return nil
}

func (f *fakeSportRepo) GetMatch(_ context.Context, id uint) (*models.SportMatch, error) {
	m, ok := f.matches[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return m, nil
}

func (f *fakeSportRepo) ListMatches(_ context.Context, activityID uint) ([]*models.SportMatch, error) {
	var out []*models.SportMatch
	for _, m := range f.matches {
		if m.ActivityID == activityID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeSportRepo) CreateStat(_ context.Context, s *models.PlayerStat) error {
	s.ID = f.id()
	f.stats[s.ID] = s
	return nil
}

func (f *fakeSportRepo) ListStatsByMatch(_ context.Context, matchID uint) ([]*models.PlayerStat, error) {
	var out []*models.PlayerStat
	for _, s := range f.stats {
		if s.MatchID == matchID {
			out = append(out, s)
		}
	}
	return out, nil
}

var errStoreDown = errors.New("store unavailable")

type fakeSavingsRepo struct {
	deposits map[uint]*models.SavingsDeposit
	nextID   uint

	updateErr error
}

func newFakeSavingsRepo() *fakeSavingsRepo {
	return &fakeSavingsRepo{deposits: make(map[uint]*models.SavingsDeposit), nextID: 1}
}

func (f *fakeSavingsRepo) Create(_ context.Context, deposit *models.SavingsDeposit) error {
	deposit.ID = f.nextID
	f.nextID++
	f.deposits[deposit.ID] = deposit
	return nil
}

func (f *fakeSavingsRepo) GetByID(_ context.Context, id uint) (*models.SavingsDeposit, error) {
	deposit, ok := f.deposits[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return deposit, nil
}

func (f *fakeSavingsRepo) GetByExercise(_ context.Context, exercise int) ([]*models.SavingsDeposit, error) {
	var out []*models.SavingsDeposit
	for _, d := range f.deposits {
		if d.Exercise == exercise {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeSavingsRepo) GetByMember(_ context.Context, memberID uint) ([]*models.SavingsDeposit, error) {
	var out []*models.SavingsDeposit
	for _, d := range f.deposits {
		if d.MemberID == memberID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeSavingsRepo) Update(_ context.Context, deposit *models.SavingsDeposit) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.deposits[deposit.ID] = deposit
	return nil
}

type fakeCaisseRepo struct {
	dues   map[uint]*models.CaisseFund
	nextID uint
}

func newFakeCaisseRepo() *fakeCaisseRepo {
	return &fakeCaisseRepo{dues: make(map[uint]*models.CaisseFund), nextID: 1}
}

func (f *fakeCaisseRepo) Create(_ context.Context, due *models.CaisseFund) error {
	due.ID = f.nextID
	f.nextID++
	f.dues[due.ID] = due
	return nil
}

func (f *fakeCaisseRepo) GetByID(_ context.Context, id uint) (*models.CaisseFund, error) {
	due, ok := f.dues[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return due, nil
}

func (f *fakeCaisseRepo) GetByExercise(_ context.Context, exercise int) ([]*models.CaisseFund, error) {
	var out []*models.CaisseFund
	for _, d := range f.dues {
		if d.Exercise == exercise {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeCaisseRepo) SumPaid(_ context.Context, exercise int) (int64, error) {
	var total int64
	for _, d := range f.dues {
		if d.Exercise == exercise && d.Status == "paye" {
			total += d.Amount
		}
	}
	return total, nil
}

func (f *fakeCaisseRepo) Update(_ context.Context, due *models.CaisseFund) error {
	f.dues[due.ID] = due
	return nil
}

type fakeReportRepo struct {
	reports map[uint]*models.MeetingReport
	nextID  uint
}

func newFakeReportRepo() *fakeReportRepo {
	return &fakeReportRepo{reports: make(map[uint]*models.MeetingReport), nextID: 1}
}

func (f *fakeReportRepo) Create(_ context.Context, report *models.MeetingReport) error {
	report.ID = f.nextID
	f.nextID++
	for i := range report.AgendaItems {
		report.AgendaItems[i].ReportID = report.ID
	}
	f.reports[report.ID] = report
	return nil
}

func (f *fakeReportRepo) GetByID(_ context.Context, id uint) (*models.MeetingReport, error) {
	report, ok := f.reports[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return report, nil
}

func (f *fakeReportRepo) List(_ context.Context, _, _ int) ([]*models.MeetingReport, int64, error) {
	var out []*models.MeetingReport
	for _, r := range f.reports {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].MeetingDate.After(out[j].MeetingDate) })
	return out, int64(len(out)), nil
}

func (f *fakeReportRepo) Update(_ context.Context, report *models.MeetingReport) error {
	if _, ok := f.reports[report.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	f.reports[report.ID] = report
	return nil
}

func (f *fakeReportRepo) Delete(_ context.Context, id uint) error {
	delete(f.reports, id)
	return nil
}
