package group

import "time"

// Group is a named community of players; per-group roles on user and player
// records are keyed by the group's id.
type Group struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null;uniqueIndex" json:"name" binding:"required"`
	CreatedAt time.Time `json:"created_at"`
}
