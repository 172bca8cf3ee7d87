package match

import (
	"time"

	"github.com/picklepro/api/internal/models"
)

type MatchType string

const (
	MatchTypeSingles MatchType = "SINGLES"
	MatchTypeDoubles MatchType = "DOUBLES"
)

// Match is a recorded game result. Team rosters hold player ids; the match
// type constrains expected team size but cardinality is not enforced here.
// Rosters and scores are immutable once created: they feed exactly one
// rating computation and are never re-rated.
type Match struct {
	ID          string             `gorm:"primaryKey" json:"id"`
	Date        time.Time          `gorm:"not null" json:"date" binding:"required"`
	Type        MatchType          `gorm:"type:VARCHAR(10);not null" json:"type" binding:"required,oneof=SINGLES DOUBLES"`
	TeamA       models.StringSlice `gorm:"type:jsonb" json:"team_a" binding:"required"`
	TeamB       models.StringSlice `gorm:"type:jsonb" json:"team_b" binding:"required"`
	ScoreA      int                `json:"score_a" binding:"gte=0"`
	ScoreB      int                `json:"score_b" binding:"gte=0"`
	VenueID     string             `gorm:"index" json:"venue_id"`
	CourtNumber *int               `json:"court_number"`
	Notes       string             `json:"notes"`
	GroupID     string             `gorm:"index" json:"group_id"`
	UserID      string             `gorm:"index" json:"user_id"` // creator
	CreatedAt   time.Time          `json:"created_at"`
}

// MatchResponse is the rendered match with team-member ids resolved to
// display names.
type MatchResponse struct {
	ID          string    `json:"id"`
	Date        time.Time `json:"date"`
	Type        MatchType `json:"type"`
	TeamANames  []string  `json:"team_a_names"`
	TeamBNames  []string  `json:"team_b_names"`
	ScoreA      int       `json:"score_a"`
	ScoreB      int       `json:"score_b"`
	Notes       string    `json:"notes"`
	VenueID     string    `json:"venue_id"`
	CourtNumber *int      `json:"court_number"`
	UserID      string    `json:"user_id"`
	GroupID     string    `json:"group_id"`
}
