package match

import (
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/picklepro/api/internal/authz"
	"github.com/picklepro/api/internal/player"
	"github.com/picklepro/api/internal/rating"
	"github.com/picklepro/api/internal/user"
)

var (
	ErrNotAuthorized = errors.New("you cannot delete this match")
	// ErrRatingUpdateFailed marks the degraded outcome where the match was
	// persisted but the rating batch save did not complete. The engine does
	// not retry; the inconsistency is surfaced to the caller and logged.
	ErrRatingUpdateFailed = errors.New("match recorded but rating update failed")
)

// RatingUpdater is the rating-engine contract the orchestration depends on.
type RatingUpdater interface {
	UpdateRatings(res rating.Result) error
}

// MatchService orchestrates match submission and deletion around the rating
// engine and the authorization rules.
type MatchService struct {
	matches MatchRepository
	players player.PlayerRepository
	engine  RatingUpdater
}

// NewMatchService creates a new match service.
func NewMatchService(matches MatchRepository, players player.PlayerRepository, engine RatingUpdater) *MatchService {
	return &MatchService{
		matches: matches,
		players: players,
		engine:  engine,
	}
}

// CreateMatch persists the submitted match and invokes the rating engine
// exactly once on the persisted record. The engine runs synchronously; the
// caller blocks until ratings are applied or the failure is known.
//
// When the rating save fails the match record stays persisted and the error
// wraps ErrRatingUpdateFailed, alongside the rendered response, so the route
// layer can report the degraded outcome instead of hiding it.
func (s *MatchService) CreateMatch(m *Match, actorID string) (*MatchResponse, error) {
	m.ID = uuid.NewString()
	m.UserID = actorID

	if err := s.matches.Save(m); err != nil {
		return nil, fmt.Errorf("failed to save match: %w", err)
	}

	if err := s.engine.UpdateRatings(rating.Result{
		TeamA:  m.TeamA,
		TeamB:  m.TeamB,
		ScoreA: m.ScoreA,
		ScoreB: m.ScoreB,
	}); err != nil {
		log.Printf("match %s: %v: %v", m.ID, ErrRatingUpdateFailed, err)
		return s.toResponse(m), fmt.Errorf("%w: %v", ErrRatingUpdateFailed, err)
	}

	return s.toResponse(m), nil
}

// DeleteMatch removes a match after authorization. The rating effect of the
// match is NOT reverted; deleting a rated match leaves its rating deltas
// permanently applied.
func (s *MatchService) DeleteMatch(matchID string, actor *user.User) error {
	m, err := s.matches.FindByID(matchID)
	if err != nil {
		return err
	}

	if !authz.CanManage(actor, m.UserID, m.GroupID) {
		return ErrNotAuthorized
	}

	return s.matches.DeleteByID(matchID)
}

// GetAllMatches returns every match with team-member names resolved.
func (s *MatchService) GetAllMatches() ([]MatchResponse, error) {
	matches, err := s.matches.FindAll()
	if err != nil {
		return nil, err
	}

	out := make([]MatchResponse, 0, len(matches))
	for i := range matches {
		out = append(out, *s.toResponse(&matches[i]))
	}
	return out, nil
}

// GetMatch returns one match with team-member names resolved.
func (s *MatchService) GetMatch(matchID string) (*MatchResponse, error) {
	m, err := s.matches.FindByID(matchID)
	if err != nil {
		return nil, err
	}
	return s.toResponse(m), nil
}

// toResponse resolves roster ids to display names via one batch lookup. An
// id with no matching player falls back to the raw id string; name
// resolution never fails the request.
func (s *MatchService) toResponse(m *Match) *MatchResponse {
	allIDs := make([]string, 0, len(m.TeamA)+len(m.TeamB))
	allIDs = append(allIDs, m.TeamA...)
	allIDs = append(allIDs, m.TeamB...)

	idToName := make(map[string]string, len(allIDs))
	if len(allIDs) > 0 {
		players, err := s.players.FindByIDs(allIDs)
		if err != nil {
			log.Printf("match %s: could not resolve player names: %v", m.ID, err)
		}
		for _, p := range players {
			idToName[p.ID] = p.Name
		}
	}

	resolve := func(ids []string) []string {
		names := make([]string, len(ids))
		for i, id := range ids {
			if name, ok := idToName[id]; ok {
				names[i] = name
			} else {
				names[i] = id
			}
		}
		return names
	}

	return &MatchResponse{
		ID:          m.ID,
		Date:        m.Date,
		Type:        m.Type,
		TeamANames:  resolve(m.TeamA),
		TeamBNames:  resolve(m.TeamB),
		ScoreA:      m.ScoreA,
		ScoreB:      m.ScoreB,
		Notes:       m.Notes,
		VenueID:     m.VenueID,
		CourtNumber: m.CourtNumber,
		UserID:      m.UserID,
		GroupID:     m.GroupID,
	}
}
