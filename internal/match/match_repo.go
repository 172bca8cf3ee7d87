package match

import (
	"errors"

	"gorm.io/gorm"
)

var ErrMatchNotFound = errors.New("match not found")

// MatchRepository defines all database operations for match records.
type MatchRepository interface {
	Save(m *Match) error
	FindByID(id string) (*Match, error)
	FindAll() ([]Match, error)
	FindByVenueID(venueID string) ([]Match, error)
	DeleteByID(id string) error
}

type matchRepository struct {
	db *gorm.DB
}

// NewMatchRepository creates a new match repository.
func NewMatchRepository(db *gorm.DB) MatchRepository {
	return &matchRepository{db: db}
}

func (r *matchRepository) Save(m *Match) error {
	return r.db.Save(m).Error
}

func (r *matchRepository) FindByID(id string) (*Match, error) {
	var m Match
	if err := r.db.First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (r *matchRepository) FindAll() ([]Match, error) {
	var matches []Match
	if err := r.db.Order("date desc").Find(&matches).Error; err != nil {
		return nil, err
	}
	return matches, nil
}

func (r *matchRepository) FindByVenueID(venueID string) ([]Match, error) {
	var matches []Match
	if err := r.db.Where("venue_id = ?", venueID).Find(&matches).Error; err != nil {
		return nil, err
	}
	return matches, nil
}

func (r *matchRepository) DeleteByID(id string) error {
	return r.db.Delete(&Match{}, "id = ?", id).Error
}
