package venue

import (
	"errors"

	"gorm.io/gorm"
)

var ErrVenueNotFound = errors.New("venue not found")

// VenueRepository defines all database operations for venue records.
type VenueRepository interface {
	FindAll() ([]Venue, error)
	FindByID(id string) (*Venue, error)
	Save(v *Venue) error
	DeleteByID(id string) error
}

type venueRepository struct {
	db *gorm.DB
}

// NewVenueRepository creates a new venue repository.
func NewVenueRepository(db *gorm.DB) VenueRepository {
	return &venueRepository{db: db}
}

func (r *venueRepository) FindAll() ([]Venue, error) {
	var venues []Venue
	if err := r.db.Order("name asc").Find(&venues).Error; err != nil {
		return nil, err
	}
	return venues, nil
}

func (r *venueRepository) FindByID(id string) (*Venue, error) {
	var v Venue
	if err := r.db.First(&v, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVenueNotFound
		}
		return nil, err
	}
	return &v, nil
}

func (r *venueRepository) Save(v *Venue) error {
	return r.db.Save(v).Error
}

func (r *venueRepository) DeleteByID(id string) error {
	return r.db.Delete(&Venue{}, "id = ?", id).Error
}
