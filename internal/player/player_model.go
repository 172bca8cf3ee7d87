package player

import (
	"time"

	"github.com/picklepro/api/internal/models"
	"github.com/picklepro/api/internal/user"
)

// Player is a registered participant. A player may exist without a linked
// user account (registered on someone's behalf); UserID is set once the
// player signs in with a matching email.
type Player struct {
	ID            string             `gorm:"primaryKey" json:"id"`
	Name          string             `gorm:"not null" json:"name" binding:"required"`
	Email         string             `gorm:"index" json:"email"`
	ContactNumber string             `json:"contact_number"`
	SocialMedia   models.SocialMedia `gorm:"type:jsonb" json:"social_media"`
	// Rating is nil until the player has participated in a rated match;
	// every reader substitutes 1200.0 for nil.
	Rating      *float64     `json:"rating"`
	Memberships user.RoleMap `gorm:"type:jsonb" json:"memberships"`
	UserID      string       `gorm:"index" json:"user_id"`
	JoinedDate  time.Time    `json:"joined_date"`
}
