package models

import (
	"time"

	"gorm.io/gorm"
)

// SportActivity represents the activites_sport table. Two activities
// exist in practice: the E2D club and the external Phoenix club.
type SportActivity struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Kind        string    `gorm:"size:20;not null;uniqueIndex" json:"type"`
	Name        string    `gorm:"size:100;not null" json:"nom"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (SportActivity) TableName() string {
	return "activites_sport"
}

// SportParticipant represents the participants_sport table. Phoenix
// accepts external adherents, in which case MemberID is nil and the
// name fields carry the identity instead.
type SportParticipant struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	ActivityID uint           `gorm:"not null;index" json:"activite_id"`
	MemberID   *uint          `gorm:"index" json:"membre_id"`
	LastName   string         `gorm:"size:100" json:"nom"`
	FirstName  string         `gorm:"size:100" json:"prenom"`
	Phone      string         `gorm:"size:30" json:"telephone"`
	JoinDate   time.Time      `gorm:"type:date;not null" json:"date_adhesion"`
	Status     string         `gorm:"size:20;not null;default:'actif'" json:"statut"`
	CreatedAt  time.Time      `gorm:"autoCreateTime" json:"created_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`

	Activity *SportActivity `gorm:"foreignKey:ActivityID" json:"activity,omitempty"`
	Member   *Member        `gorm:"foreignKey:MemberID" json:"member,omitempty"`
}

func (SportParticipant) TableName() string {
	return "participants_sport"
}

// DisplayName returns the member's name for internal participants and
// the locally recorded one for external adherents.
func (p *SportParticipant) DisplayName() string {
	if p.Member != nil {
		return p.Member.FullName()
	}
	return p.FirstName + " " + p.LastName
}

// SportMatch represents the matchs table.
type SportMatch struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	ActivityID    uint      `gorm:"not null;index" json:"activite_id"`
	MatchDate     time.Time `gorm:"type:date;not null" json:"date_match"`
	Opponent      string    `gorm:"size:100;not null" json:"adversaire"`
	HomeScore     int       `gorm:"not null;default:0" json:"score_e2d"`
	OpponentScore int       `gorm:"not null;default:0" json:"score_adversaire"`
	Venue         string    `gorm:"size:200" json:"lieu"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`

	Activity *SportActivity `gorm:"foreignKey:ActivityID" json:"activity,omitempty"`
}

func (SportMatch) TableName() string {
	return "matchs"
}

// PlayerStat represents the statistiques_sport table: one row per
// participant per match. A red card recorded here triggers an
// automatic disciplinary sanction for member participants.
type PlayerStat struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	ParticipantID uint      `gorm:"not null;index" json:"participant_id"`
	MatchID       uint      `gorm:"not null;index" json:"match_id"`
	Goals         int       `gorm:"not null;default:0" json:"buts"`
	Assists       int       `gorm:"not null;default:0" json:"passes_decisives"`
	YellowCards   int       `gorm:"not null;default:0" json:"cartons_jaunes"`
	RedCards      int       `gorm:"not null;default:0" json:"cartons_rouges"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`

	Participant *SportParticipant `gorm:"foreignKey:ParticipantID" json:"participant,omitempty"`
	Match       *SportMatch       `gorm:"foreignKey:MatchID" json:"match,omitempty"`
}

func (PlayerStat) TableName() string {
	return "statistiques_sport"
}
