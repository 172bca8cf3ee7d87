package rating

import (
	"math"

	"github.com/picklepro/api/internal/player"
)

const (
	// KFactor controls how much a single match can swing a rating.
	KFactor = 32.0
	// DefaultRating is substituted wherever a player has no recorded rating.
	DefaultRating = 1200.0
)

// Result carries the only match fields the engine consumes.
type Result struct {
	TeamA  []string
	TeamB  []string
	ScoreA int
	ScoreB int
}

// Engine recomputes player ratings from a match outcome using a team-average
// Elo adjustment: one delta per match, applied with positive sign to every
// winner and negative sign to every loser.
//
// The computation is not idempotent; callers must invoke it at most once per
// match.
type Engine struct {
	players player.PlayerRepository
}

// NewEngine creates a rating engine over the given player repository.
func NewEngine(players player.PlayerRepository) *Engine {
	return &Engine{players: players}
}

// UpdateRatings applies the rating adjustment for one match outcome.
//
// Matches with an empty roster on either side, or whose rosters resolve to no
// known players, are skipped without error. Unknown player ids within a
// roster are dropped, not errored. The whole read-modify-write runs in one
// serializable transaction so concurrent matches over overlapping rosters
// cannot lose updates.
func (e *Engine) UpdateRatings(res Result) error {
	if len(res.TeamA) == 0 || len(res.TeamB) == 0 {
		return nil // Cannot rate without players
	}

	return e.players.Transact(func(repo player.PlayerRepository) error {
		teamA, err := repo.FindByIDs(res.TeamA)
		if err != nil {
			return err
		}
		teamB, err := repo.FindByIDs(res.TeamB)
		if err != nil {
			return err
		}

		if len(teamA) == 0 || len(teamB) == 0 {
			return nil
		}

		avgA := averageRating(teamA)
		avgB := averageRating(teamB)

		expectedA := expectedScore(avgA, avgB)

		// A tie counts as a team-A loss. Historical rating trajectories
		// depend on this, so it stays until product says otherwise.
		actualA := 0.0
		if res.ScoreA > res.ScoreB {
			actualA = 1.0
		}

		delta := KFactor * (actualA - expectedA)

		updated := make([]*player.Player, 0, len(teamA)+len(teamB))
		updated = append(updated, applyDelta(teamA, delta)...)
		updated = append(updated, applyDelta(teamB, -delta)...)

		return repo.SaveAll(updated)
	})
}

// expectedScore is the Elo win probability for a player/team rated ratingA
// against one rated ratingB.
func expectedScore(ratingA, ratingB float64) float64 {
	return 1.0 / (1.0 + math.Pow(10, (ratingB-ratingA)/400.0))
}

// averageRating is the arithmetic mean of the team's ratings, reading an
// unrated player as DefaultRating. An empty team averages to DefaultRating
// rather than dividing by zero.
func averageRating(team []player.Player) float64 {
	if len(team) == 0 {
		return DefaultRating
	}
	sum := 0.0
	for _, p := range team {
		sum += ratingOrDefault(p.Rating)
	}
	return sum / float64(len(team))
}

// applyDelta shifts every team member's rating by the same delta, regardless
// of their individual pre-match rating.
func applyDelta(team []player.Player, delta float64) []*player.Player {
	updated := make([]*player.Player, len(team))
	for i := range team {
		next := ratingOrDefault(team[i].Rating) + delta
		team[i].Rating = &next
		updated[i] = &team[i]
	}
	return updated
}

func ratingOrDefault(r *float64) float64 {
	if r == nil {
		return DefaultRating
	}
	return *r
}
