package match

import (
	"errors"
	"testing"
	"time"

	"github.com/picklepro/api/internal/player"
	"github.com/picklepro/api/internal/rating"
	"github.com/picklepro/api/internal/user"
)

type fakeMatchRepo struct {
	matches map[string]*Match
}

func newFakeMatchRepo(matches ...*Match) *fakeMatchRepo {
	f := &fakeMatchRepo{matches: make(map[string]*Match)}
	for _, m := range matches {
		f.matches[m.ID] = m
	}
	return f
}

func (f *fakeMatchRepo) Save(m *Match) error {
	f.matches[m.ID] = m
	return nil
}

func (f *fakeMatchRepo) FindByID(id string) (*Match, error) {
	m, ok := f.matches[id]
	if !ok {
		return nil, ErrMatchNotFound
	}
	return m, nil
}

func (f *fakeMatchRepo) FindAll() ([]Match, error) {
	var out []Match
	for _, m := range f.matches {
		out = append(out, *m)
	}
	return out, nil
}

func (f *fakeMatchRepo) FindByVenueID(venueID string) ([]Match, error) {
	var out []Match
	for _, m := range f.matches {
		if m.VenueID == venueID {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (f *fakeMatchRepo) DeleteByID(id string) error {
	delete(f.matches, id)
	return nil
}

type fakePlayerRepo struct {
	players map[string]*player.Player
}

func newFakePlayerRepo(players ...*player.Player) *fakePlayerRepo {
	f := &fakePlayerRepo{players: make(map[string]*player.Player)}
	for _, p := range players {
		f.players[p.ID] = p
	}
	return f
}

func (f *fakePlayerRepo) FindByID(id string) (*player.Player, error) {
	p, ok := f.players[id]
	if !ok {
		return nil, player.ErrPlayerNotFound
	}
	return p, nil
}

func (f *fakePlayerRepo) FindByIDs(ids []string) ([]player.Player, error) {
	var out []player.Player
	for _, id := range ids {
		if p, ok := f.players[id]; ok {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakePlayerRepo) FindByEmail(email string) (*player.Player, error) {
	return nil, player.ErrPlayerNotFound
}

func (f *fakePlayerRepo) FindAll() ([]player.Player, error) { return nil, nil }

func (f *fakePlayerRepo) Save(p *player.Player) error {
	f.players[p.ID] = p
	return nil
}

func (f *fakePlayerRepo) SaveAll(players []*player.Player) error {
	for _, p := range players {
		f.players[p.ID] = p
	}
	return nil
}

func (f *fakePlayerRepo) DeleteByIDAndUserID(id, userID string) error { return nil }

func (f *fakePlayerRepo) Transact(fn func(repo player.PlayerRepository) error) error {
	return fn(f)
}

type fakeEngine struct {
	calls []rating.Result
	err   error
}

func (f *fakeEngine) UpdateRatings(res rating.Result) error {
	f.calls = append(f.calls, res)
	return f.err
}

func actorWith(id string, role user.SystemRole, memberships user.RoleMap) *user.User {
	return &user.User{ID: id, SystemRole: role, Memberships: memberships}
}

func TestCreateMatchInvokesEngineOnce(t *testing.T) {
	matches := newFakeMatchRepo()
	players := newFakePlayerRepo(
		&player.Player{ID: "p1", Name: "Alice"},
		&player.Player{ID: "p2", Name: "Bob"},
	)
	engine := &fakeEngine{}
	service := NewMatchService(matches, players, engine)

	m := &Match{
		Date:   time.Now(),
		Type:   MatchTypeSingles,
		TeamA:  []string{"p1"},
		TeamB:  []string{"p2", "p-unknown"},
		ScoreA: 11,
		ScoreB: 7,
	}

	resp, err := service.CreateMatch(m, "actor-1")
	if err != nil {
		t.Fatal(err)
	}

	if len(engine.calls) != 1 {
		t.Fatalf("expected exactly one rating invocation, got %d", len(engine.calls))
	}
	call := engine.calls[0]
	if call.ScoreA != 11 || call.ScoreB != 7 || len(call.TeamA) != 1 || len(call.TeamB) != 2 {
		t.Errorf("engine received wrong result: %+v", call)
	}

	if m.ID == "" {
		t.Error("match was not assigned an id")
	}
	if m.UserID != "actor-1" {
		t.Errorf("creator not stamped: %q", m.UserID)
	}
	if _, ok := matches.matches[m.ID]; !ok {
		t.Error("match was not persisted")
	}

	if resp.TeamANames[0] != "Alice" {
		t.Errorf("expected resolved name Alice, got %q", resp.TeamANames[0])
	}
	if resp.TeamBNames[0] != "Bob" {
		t.Errorf("expected resolved name Bob, got %q", resp.TeamBNames[0])
	}
	// Unresolvable ids degrade to the raw id instead of failing the request.
	if resp.TeamBNames[1] != "p-unknown" {
		t.Errorf("expected raw id fallback, got %q", resp.TeamBNames[1])
	}
}

func TestCreateMatchRatingFailureSurfaced(t *testing.T) {
	matches := newFakeMatchRepo()
	players := newFakePlayerRepo()
	engine := &fakeEngine{err: errors.New("db down")}
	service := NewMatchService(matches, players, engine)

	m := &Match{
		Date:   time.Now(),
		Type:   MatchTypeDoubles,
		TeamA:  []string{"p1", "p2"},
		TeamB:  []string{"p3", "p4"},
		ScoreA: 11,
		ScoreB: 3,
	}

	resp, err := service.CreateMatch(m, "actor-1")
	if !errors.Is(err, ErrRatingUpdateFailed) {
		t.Fatalf("expected ErrRatingUpdateFailed, got %v", err)
	}
	// The match stays persisted even though ratings were never applied.
	if _, ok := matches.matches[m.ID]; !ok {
		t.Error("match must remain persisted after a rating failure")
	}
	if resp == nil {
		t.Error("degraded create should still render the match")
	}
}

func TestDeleteMatchAuthorization(t *testing.T) {
	engine := &fakeEngine{}

	cases := []struct {
		name       string
		actor      *user.User
		match      *Match
		authorized bool
	}{
		{
			"system admin deletes anything",
			actorWith("u1", user.SystemRoleAdmin, nil),
			&Match{ID: "m1", UserID: "someone-else"},
			true,
		},
		{
			"creator deletes own match",
			actorWith("u1", user.SystemRoleUser, nil),
			&Match{ID: "m1", UserID: "u1"},
			true,
		},
		{
			"group admin deletes another user's match in their group",
			actorWith("u1", user.SystemRoleUser, user.RoleMap{"group-x": user.GroupRoleGroupAdmin}),
			&Match{ID: "m1", UserID: "someone-else", GroupID: "group-x"},
			true,
		},
		{
			"group admin cannot delete a match in a different group",
			actorWith("u1", user.SystemRoleUser, user.RoleMap{"group-x": user.GroupRoleGroupAdmin}),
			&Match{ID: "m1", UserID: "someone-else", GroupID: "group-y"},
			false,
		},
		{
			"group admin cannot delete an ungrouped match",
			actorWith("u1", user.SystemRoleUser, user.RoleMap{"group-x": user.GroupRoleGroupAdmin}),
			&Match{ID: "m1", UserID: "someone-else"},
			false,
		},
		{
			"plain member cannot delete",
			actorWith("u1", user.SystemRoleUser, user.RoleMap{"group-x": user.GroupRoleMember}),
			&Match{ID: "m1", UserID: "someone-else", GroupID: "group-x"},
			false,
		},
	}

	for _, c := range cases {
		matches := newFakeMatchRepo(c.match)
		service := NewMatchService(matches, newFakePlayerRepo(), engine)

		err := service.DeleteMatch(c.match.ID, c.actor)
		if c.authorized {
			if err != nil {
				t.Errorf("%s: expected success, got %v", c.name, err)
			}
			if _, ok := matches.matches[c.match.ID]; ok {
				t.Errorf("%s: match not deleted", c.name)
			}
		} else {
			if !errors.Is(err, ErrNotAuthorized) {
				t.Errorf("%s: expected ErrNotAuthorized, got %v", c.name, err)
			}
			if _, ok := matches.matches[c.match.ID]; !ok {
				t.Errorf("%s: unauthorized delete must not remove the match", c.name)
			}
		}
	}

	// Deletion never re-runs or reverts ratings, authorized or not.
	if len(engine.calls) != 0 {
		t.Errorf("delete must never touch the rating engine, got %d calls", len(engine.calls))
	}
}

func TestDeleteMatchNotFound(t *testing.T) {
	service := NewMatchService(newFakeMatchRepo(), newFakePlayerRepo(), &fakeEngine{})
	err := service.DeleteMatch("missing", actorWith("u1", user.SystemRoleAdmin, nil))
	if !errors.Is(err, ErrMatchNotFound) {
		t.Errorf("expected ErrMatchNotFound, got %v", err)
	}
}
