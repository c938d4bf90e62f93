package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"e2d-ledger/internal/adapters/persistence/models"
	"e2d-ledger/internal/adapters/persistence/repositories"
	"e2d-ledger/internal/core/domain"

	"gorm.io/gorm"
)

// Sport service errors
var (
	ErrActivityNotFound    = errors.New("sport activity not found")
	ErrParticipantNotFound = errors.New("sport participant not found")
	ErrMatchNotFound       = errors.New("sport match not found")
	ErrExternalNeedsName   = errors.New("external participant needs a first and last name")
	ErrExternalNotAllowed  = errors.New("external participants are only accepted in the phoenix club")
)

// RedCardSanctionTypeKey is the configuration key holding the ID of
// the sanction type applied on a red card.
const RedCardSanctionTypeKey = "type_sanction_carton_rouge"

// SportService manages the two sport clubs: rosters, matches, player
// statistics. A red card recorded for a member participant raises an
// automatic disciplinary sanction.
type SportService struct {
	sportRepo  repositories.SportRepository
	memberRepo repositories.MemberRepository
	sanctions  *SanctionService
	settings   *SettingsService
}

// NewSportService creates a new sport service.
func NewSportService(
	sportRepo repositories.SportRepository,
	memberRepo repositories.MemberRepository,
	sanctions *SanctionService,
	settings *SettingsService,
) *SportService {
	return &SportService{
		sportRepo:  sportRepo,
		memberRepo: memberRepo,
		sanctions:  sanctions,
		settings:   settings,
	}
}

// RegisterParticipantInput enrolls a player in an activity. MemberID
// nil means an external adherent, identified by the name fields.
type RegisterParticipantInput struct {
	ActivityID uint   `json:"activite_id" validate:"required"`
	MemberID   *uint  `json:"membre_id,omitempty"`
	LastName   string `json:"nom,omitempty"`
	FirstName  string `json:"prenom,omitempty"`
	Phone      string `json:"telephone,omitempty"`
	JoinDate   string `json:"date_adhesion,omitempty"`
}

// CreateMatchInput records a match result.
type CreateMatchInput struct {
	ActivityID    uint   `json:"activite_id" validate:"required"`
	MatchDate     string `json:"date_match" validate:"required"`
	Opponent      string `json:"adversaire" validate:"required,max=100"`
	HomeScore     int    `json:"score_e2d" validate:"gte=0"`
	OpponentScore int    `json:"score_adversaire" validate:"gte=0"`
	Venue         string `json:"lieu,omitempty"`
}

// RecordStatInput records a player's line for a match.
type RecordStatInput struct {
	ParticipantID uint `json:"participant_id" validate:"required"`
	MatchID       uint `json:"match_id" validate:"required"`
	Goals         int  `json:"buts" validate:"gte=0"`
	Assists       int  `json:"passes_decisives" validate:"gte=0"`
	YellowCards   int  `json:"cartons_jaunes" validate:"gte=0"`
	RedCards      int  `json:"cartons_rouges" validate:"gte=0"`
}

// ListActivities returns the sport activities.
func (s *SportService) ListActivities(ctx context.Context) ([]*models.SportActivity, error) {
	return s.sportRepo.ListActivities(ctx)
}

// RegisterParticipant enrolls a player. Members can join either club;
// external adherents are accepted in Phoenix only.
func (s *SportService) RegisterParticipant(ctx context.Context, input *RegisterParticipantInput) (*models.SportParticipant, error) {
	activity, err := s.sportRepo.GetActivity(ctx, input.ActivityID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrActivityNotFound
		}
		return nil, err
	}

	participant := &models.SportParticipant{
		ActivityID: activity.ID,
		JoinDate:   domain.DateOnly(time.Now()),
		Status:     domain.MemberActive,
	}
	if input.JoinDate != "" {
		parsed, err := time.Parse("2006-01-02", input.JoinDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		participant.JoinDate = parsed
	}

	if input.MemberID != nil {
		member, err := s.memberRepo.GetByID(ctx, *input.MemberID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrMemberNotFound
			}
			return nil, err
		}
		participant.MemberID = &member.ID
	} else {
		if activity.Kind != domain.SportPhoenix {
			return nil, ErrExternalNotAllowed
		}
		if input.FirstName == "" || input.LastName == "" {
			return nil, ErrExternalNeedsName
		}
		participant.LastName = input.LastName
		participant.FirstName = input.FirstName
		participant.Phone = input.Phone
	}

	if err := s.sportRepo.CreateParticipant(ctx, participant); err != nil {
		return nil, err
	}
	return participant, nil
}

// ListParticipants lists an activity's roster.
func (s *SportService) ListParticipants(ctx context.Context, activityID uint) ([]*models.SportParticipant, error) {
	if _, err := s.sportRepo.GetActivity(ctx, activityID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrActivityNotFound
		}
		return nil, err
	}
	return s.sportRepo.ListParticipants(ctx, activityID)
}

// CreateMatch records a match result.
func (s *SportService) CreateMatch(ctx context.Context, input *CreateMatchInput) (*models.SportMatch, error) {
	if _, err := s.sportRepo.GetActivity(ctx, input.ActivityID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrActivityNotFound
		}
		return nil, err
	}

	matchDate, err := time.Parse("2006-01-02", input.MatchDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	match := &models.SportMatch{
		ActivityID:    input.ActivityID,
		MatchDate:     matchDate,
		Opponent:      input.Opponent,
		HomeScore:     input.HomeScore,
		OpponentScore: input.OpponentScore,
		Venue:         input.Venue,
	}
	if err := s.sportRepo.CreateMatch(ctx, match); err != nil {
		return nil, err
	}
	return match, nil
}

// ListMatches lists an activity's matches.
func (s *SportService) ListMatches(ctx context.Context, activityID uint) ([]*models.SportMatch, error) {
	return s.sportRepo.ListMatches(ctx, activityID)
}

// GetMatchStats lists the player lines of a match.
func (s *SportService) GetMatchStats(ctx context.Context, matchID uint) ([]*models.PlayerStat, error) {
	if _, err := s.sportRepo.GetMatch(ctx, matchID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, err
	}
	return s.sportRepo.ListStatsByMatch(ctx, matchID)
}

// RecordStat saves a player's match line. A red card on a member
// participant raises an automatic sanction; failure to raise it never
// fails the stat entry and comes back as a warning instead. External
// adherents are outside the sanction ledger entirely.
func (s *SportService) RecordStat(ctx context.Context, input *RecordStatInput, actorID uint) (*models.PlayerStat, string, error) {
	participant, err := s.sportRepo.GetParticipant(ctx, input.ParticipantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrParticipantNotFound
		}
		return nil, "", err
	}
	match, err := s.sportRepo.GetMatch(ctx, input.MatchID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrMatchNotFound
		}
		return nil, "", err
	}

	stat := &models.PlayerStat{
		ParticipantID: input.ParticipantID,
		MatchID:       input.MatchID,
		Goals:         input.Goals,
		Assists:       input.Assists,
		YellowCards:   input.YellowCards,
		RedCards:      input.RedCards,
	}
	if err := s.sportRepo.CreateStat(ctx, stat); err != nil {
		return nil, "", err
	}

	var warning string
	if input.RedCards > 0 && participant.MemberID != nil {
		typeID := s.settings.IntValue(ctx, RedCardSanctionTypeKey, 0)
		if typeID == 0 {
			warning = "carton rouge enregistre mais aucun type de sanction n'est configure"
		} else {
			reason := fmt.Sprintf("carton rouge, match du %s contre %s",
				match.MatchDate.Format("2006-01-02"), match.Opponent)
			if _, err := s.sanctions.CreateAutomatic(ctx, *participant.MemberID, uint(typeID), reason, actorID); err != nil {
				warning = fmt.Sprintf("carton rouge enregistre mais la sanction automatique a echoue: %v", err)
			}
		}
	}
	return stat, warning, nil
}
