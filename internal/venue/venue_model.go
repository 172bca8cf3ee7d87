package venue

import "time"

// UnknownVenueID is stamped onto matches whose venue was deleted.
const UnknownVenueID = "UNKNOWN"

// Venue is a playing location. Mutation is ownership-sensitive: creator,
// group admin of the venue's group, or system admin.
type Venue struct {
	ID              string    `gorm:"primaryKey" json:"id"`
	Name            string    `gorm:"not null" json:"name" binding:"required"`
	Location        string    `json:"location"`
	CourtCount      int       `json:"court_count" binding:"gte=0"`
	CreatedByUserID string    `gorm:"index" json:"created_by_user_id"`
	GroupID         string    `gorm:"index" json:"group_id"`
	CreatedAt       time.Time `json:"created_at"`
}
