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

// Member service errors
var (
	ErrMemberNotFound = errors.New("member not found")
	ErrEmailTaken     = errors.New("email already used by another member")
	ErrSameStatus     = errors.New("member already has this status")
	ErrUnknownStatus  = errors.New("unknown member status")
)

// DefaultSuspensionThreshold applies when the configuration store has
// no seuil_sanctions_suspension entry.
const DefaultSuspensionThreshold = 3

// MemberService handles member profiles and status changes.
type MemberService struct {
	memberRepo   repositories.MemberRepository
	sanctionRepo repositories.SanctionRepository
	settings     *SettingsService
}

// NewMemberService creates a new member service.
func NewMemberService(
	memberRepo repositories.MemberRepository,
	sanctionRepo repositories.SanctionRepository,
	settings *SettingsService,
) *MemberService {
	return &MemberService{
		memberRepo:   memberRepo,
		sanctionRepo: sanctionRepo,
		settings:     settings,
	}
}

// CreateMemberInput represents member creation input.
type CreateMemberInput struct {
	LastName   string `json:"nom" validate:"required,max=100"`
	FirstName  string `json:"prenom" validate:"required,max=100"`
	Email      string `json:"email" validate:"required,email"`
	Phone      string `json:"telephone,omitempty"`
	PhotoURL   string `json:"photo_url,omitempty"`
	MonthlyDue int64  `json:"montant_cotisation_mensuelle" validate:"gte=0"`
	JoinDate   string `json:"date_adhesion,omitempty"`
}

// UpdateMemberInput represents profile-edit input; nil fields are left
// untouched. Status is not editable here: ChangeStatus owns it.
type UpdateMemberInput struct {
	LastName   *string `json:"nom,omitempty"`
	FirstName  *string `json:"prenom,omitempty"`
	Email      *string `json:"email,omitempty"`
	Phone      *string `json:"telephone,omitempty"`
	PhotoURL   *string `json:"photo_url,omitempty"`
	MonthlyDue *int64  `json:"montant_cotisation_mensuelle,omitempty"`
}

// ChangeStatusInput represents a member status change.
type ChangeStatusInput struct {
	NewStatus string `json:"statut" validate:"required,oneof=actif inactif suspendu"`
	Reason    string `json:"motif,omitempty"`
}

// Create creates a new member.
func (s *MemberService) Create(ctx context.Context, input *CreateMemberInput) (*models.Member, error) {
	joinDate := domain.DateOnly(time.Now())
	if input.JoinDate != "" {
		parsed, err := time.Parse("2006-01-02", input.JoinDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		joinDate = parsed
	}

	member := &models.Member{
		LastName:   input.LastName,
		FirstName:  input.FirstName,
		Email:      input.Email,
		Phone:      input.Phone,
		PhotoURL:   input.PhotoURL,
		Status:     domain.MemberActive,
		MonthlyDue: input.MonthlyDue,
		JoinDate:   joinDate,
	}

	if err := s.memberRepo.Create(ctx, member); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return member, nil
}

// GetByID gets a member by ID.
func (s *MemberService) GetByID(ctx context.Context, id uint) (*models.Member, error) {
	member, err := s.memberRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}
	return member, nil
}

// List lists members, optionally filtered by status.
func (s *MemberService) List(ctx context.Context, status string, offset, limit int) ([]*models.Member, int64, error) {
	return s.memberRepo.List(ctx, status, offset, limit)
}

// ListActive lists active members.
func (s *MemberService) ListActive(ctx context.Context) ([]*models.Member, error) {
	return s.memberRepo.ListActive(ctx)
}

// Update applies a profile edit.
func (s *MemberService) Update(ctx context.Context, id uint, input *UpdateMemberInput) (*models.Member, error) {
	member, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.LastName != nil {
		member.LastName = *input.LastName
	}
	if input.FirstName != nil {
		member.FirstName = *input.FirstName
	}
	if input.Email != nil {
		member.Email = *input.Email
	}
	if input.Phone != nil {
		member.Phone = *input.Phone
	}
	if input.PhotoURL != nil {
		member.PhotoURL = *input.PhotoURL
	}
	if input.MonthlyDue != nil {
		member.MonthlyDue = *input.MonthlyDue
	}

	if err := s.memberRepo.Update(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

// Delete removes a member. No referential check guards this; existing
// obligations keep pointing at the soft-deleted row.
func (s *MemberService) Delete(ctx context.Context, id uint) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	return s.memberRepo.Delete(ctx, id)
}

// ChangeStatus transitions a member's status, appending the history
// row and updating the member atomically.
func (s *MemberService) ChangeStatus(ctx context.Context, id uint, input *ChangeStatusInput, actorID uint) (*models.Member, error) {
	switch input.NewStatus {
	case domain.MemberActive, domain.MemberInactive, domain.MemberSuspended:
	default:
		return nil, ErrUnknownStatus
	}

	member, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if member.Status == input.NewStatus {
		return nil, ErrSameStatus
	}

	history := &models.StatusHistory{
		MemberID:  member.ID,
		OldStatus: member.Status,
		NewStatus: input.NewStatus,
		Reason:    input.Reason,
		ChangedBy: actorID,
	}
	member.Status = input.NewStatus

	if err := s.memberRepo.ChangeStatus(ctx, member, history); err != nil {
		return nil, err
	}
	return member, nil
}

// GetStatusHistory lists a member's status changes.
func (s *MemberService) GetStatusHistory(ctx context.Context, id uint) ([]*models.StatusHistory, error) {
	if _, err := s.GetByID(ctx, id); err != nil {
		return nil, err
	}
	return s.memberRepo.GetStatusHistory(ctx, id)
}

// SuspensionCandidate pairs a member with their unpaid-sanction count.
type SuspensionCandidate struct {
	Member      *models.Member `json:"member"`
	UnpaidCount int64          `json:"sanctions_impayees"`
	Threshold   int64          `json:"seuil"`
}

// SuspensionCandidates lists active members whose unpaid sanctions
// reach the configured threshold. The list is informational only; no
// suspension happens automatically.
func (s *MemberService) SuspensionCandidates(ctx context.Context) ([]*SuspensionCandidate, error) {
	threshold := s.settings.IntValue(ctx, "seuil_sanctions_suspension", DefaultSuspensionThreshold)

	counts, err := s.sanctionRepo.CountUnpaidByMember(ctx)
	if err != nil {
		return nil, err
	}

	members, err := s.memberRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	var candidates []*SuspensionCandidate
	for _, m := range members {
		if counts[m.ID] >= threshold {
			candidates = append(candidates, &SuspensionCandidate{
				Member:      m,
				UnpaidCount: counts[m.ID],
				Threshold:   threshold,
			})
		}
	}
	return candidates, nil
}
