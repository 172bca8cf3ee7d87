package venue

import (
	"errors"

	"github.com/google/uuid"

	"github.com/picklepro/api/internal/authz"
	"github.com/picklepro/api/internal/match"
	"github.com/picklepro/api/internal/user"
)

var ErrNotAuthorized = errors.New("you can only manage venues you created or manage as a Group Admin")

// VenueService manages venues and the ownership rules around them.
type VenueService struct {
	venues  VenueRepository
	matches match.MatchRepository
}

// NewVenueService creates a new venue service.
func NewVenueService(venues VenueRepository, matches match.MatchRepository) *VenueService {
	return &VenueService{venues: venues, matches: matches}
}

func (s *VenueService) GetAllVenues() ([]Venue, error) {
	return s.venues.FindAll()
}

func (s *VenueService) GetVenue(id string) (*Venue, error) {
	return s.venues.FindByID(id)
}

// CreateVenue stamps creator and group on the new venue. Creation is open
// to any authenticated actor.
func (s *VenueService) CreateVenue(v *Venue, actorID, groupID string) (*Venue, error) {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	v.CreatedByUserID = actorID
	v.GroupID = groupID
	if err := s.venues.Save(v); err != nil {
		return nil, err
	}
	return v, nil
}

// UpdateVenue edits the venue's mutable fields after the ownership check.
func (s *VenueService) UpdateVenue(id string, v *Venue, actor *user.User) (*Venue, error) {
	existing, err := s.venues.FindByID(id)
	if err != nil {
		return nil, err
	}

	if !authz.CanManage(actor, existing.CreatedByUserID, existing.GroupID) {
		return nil, ErrNotAuthorized
	}

	existing.Name = v.Name
	existing.Location = v.Location
	existing.CourtCount = v.CourtCount
	if err := s.venues.Save(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// DeleteVenue removes a venue after the ownership check. Matches that
// reference it are re-pointed at UnknownVenueID first so they keep
// rendering; their rosters, scores and rating effects are untouched.
func (s *VenueService) DeleteVenue(id string, actor *user.User) error {
	existing, err := s.venues.FindByID(id)
	if err != nil {
		return err
	}

	if !authz.CanManage(actor, existing.CreatedByUserID, existing.GroupID) {
		return ErrNotAuthorized
	}

	referencing, err := s.matches.FindByVenueID(id)
	if err != nil {
		return err
	}
	for i := range referencing {
		referencing[i].VenueID = UnknownVenueID
		if err := s.matches.Save(&referencing[i]); err != nil {
			return err
		}
	}

	return s.venues.DeleteByID(id)
}
