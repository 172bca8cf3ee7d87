package player

import (
	"errors"
	"testing"

	"github.com/picklepro/api/internal/user"
)

type fakePlayerStore struct {
	players map[string]*Player
}

func newFakePlayerStore(players ...*Player) *fakePlayerStore {
	f := &fakePlayerStore{players: make(map[string]*Player)}
	for _, p := range players {
		f.players[p.ID] = p
	}
	return f
}

func (f *fakePlayerStore) FindByID(id string) (*Player, error) {
	p, ok := f.players[id]
	if !ok {
		return nil, ErrPlayerNotFound
	}
	return p, nil
}

func (f *fakePlayerStore) FindByIDs(ids []string) ([]Player, error) {
	var out []Player
	for _, id := range ids {
		if p, ok := f.players[id]; ok {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakePlayerStore) FindByEmail(email string) (*Player, error) {
	for _, p := range f.players {
		if p.Email != "" && p.Email == email {
			return p, nil
		}
	}
	return nil, ErrPlayerNotFound
}

func (f *fakePlayerStore) FindAll() ([]Player, error) {
	var out []Player
	for _, p := range f.players {
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakePlayerStore) Save(p *Player) error {
	f.players[p.ID] = p
	return nil
}

func (f *fakePlayerStore) SaveAll(players []*Player) error {
	for _, p := range players {
		f.players[p.ID] = p
	}
	return nil
}

func (f *fakePlayerStore) DeleteByIDAndUserID(id, userID string) error {
	if p, ok := f.players[id]; ok && p.UserID == userID {
		delete(f.players, id)
	}
	return nil
}

func (f *fakePlayerStore) Transact(fn func(repo PlayerRepository) error) error {
	return fn(f)
}

type fakeUserStore struct {
	users map[string]*user.User
}

func newFakeUserStore(users ...*user.User) *fakeUserStore {
	f := &fakeUserStore{users: make(map[string]*user.User)}
	for _, u := range users {
		f.users[u.ID] = u
	}
	return f
}

func (f *fakeUserStore) FindByID(id string) (*user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserStore) FindByEmail(email string) (*user.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, user.ErrUserNotFound
}

func (f *fakeUserStore) FindByGoogleID(googleID string) (*user.User, error) {
	for _, u := range f.users {
		if u.GoogleID == googleID {
			return u, nil
		}
	}
	return nil, user.ErrUserNotFound
}

func (f *fakeUserStore) Save(u *user.User) error {
	f.users[u.ID] = u
	return nil
}

func groupAdmin(groupID string) *user.User {
	return &user.User{
		ID:          "admin-1",
		SystemRole:  user.SystemRoleUser,
		Memberships: user.RoleMap{groupID: user.GroupRoleGroupAdmin},
	}
}

func TestCreatePlayerDuplicateEmail(t *testing.T) {
	store := newFakePlayerStore(&Player{ID: "p1", Name: "Alice", Email: "alice@example.com"})
	service := NewPlayerService(store, newFakeUserStore())

	_, err := service.CreatePlayer(&Player{Name: "Alice 2", Email: "alice@example.com"}, groupAdmin("g"), "", "")
	if !errors.Is(err, ErrPlayerEmailTaken) {
		t.Errorf("expected ErrPlayerEmailTaken, got %v", err)
	}
}

func TestCreatePlayerIntoGroupRequiresGroupAdmin(t *testing.T) {
	service := NewPlayerService(newFakePlayerStore(), newFakeUserStore())

	plain := &user.User{ID: "u1", SystemRole: user.SystemRoleUser}
	_, err := service.CreatePlayer(&Player{Name: "Bob"}, plain, "group-x", user.GroupRoleMember)
	if !errors.Is(err, ErrNotGroupAdmin) {
		t.Errorf("expected ErrNotGroupAdmin, got %v", err)
	}
}

func TestCreatePlayerWithInitialMembership(t *testing.T) {
	store := newFakePlayerStore()
	service := NewPlayerService(store, newFakeUserStore())

	created, err := service.CreatePlayer(&Player{Name: "Bob"}, groupAdmin("group-x"), "group-x", user.GroupRoleMember)
	if err != nil {
		t.Fatal(err)
	}
	if created.ID == "" {
		t.Error("player was not assigned an id")
	}
	if created.JoinedDate.IsZero() {
		t.Error("joined date not stamped")
	}
	if created.Memberships["group-x"] != user.GroupRoleMember {
		t.Errorf("initial membership not applied: %+v", created.Memberships)
	}
	if created.Rating != nil {
		t.Error("registration must not assign a rating; only the rating engine writes it")
	}
}

func TestAddToGroupSyncsLinkedUser(t *testing.T) {
	linked := &user.User{ID: "u9", Email: "carol@example.com"}
	users := newFakeUserStore(linked)
	store := newFakePlayerStore(&Player{ID: "p1", Name: "Carol", Email: "carol@example.com"})
	service := NewPlayerService(store, users)

	if err := service.AddToGroup("p1", "group-x", user.GroupRoleGroupAdmin, groupAdmin("group-x")); err != nil {
		t.Fatal(err)
	}

	// The player was linked by email and the membership copied over.
	if store.players["p1"].UserID != "u9" {
		t.Errorf("player not linked to user: %q", store.players["p1"].UserID)
	}
	if linked.Memberships["group-x"] != user.GroupRoleGroupAdmin {
		t.Errorf("membership not synced to user: %+v", linked.Memberships)
	}
}

func TestRemoveFromGroup(t *testing.T) {
	store := newFakePlayerStore(&Player{
		ID:          "p1",
		Name:        "Dan",
		Memberships: user.RoleMap{"group-x": user.GroupRoleMember},
	})
	service := NewPlayerService(store, newFakeUserStore())

	if err := service.RemoveFromGroup("p1", "group-x", groupAdmin("group-x")); err != nil {
		t.Fatal(err)
	}
	if _, ok := store.players["p1"].Memberships["group-x"]; ok {
		t.Error("membership was not removed")
	}

	err := service.RemoveFromGroup("p1", "group-y", groupAdmin("group-x"))
	if !errors.Is(err, ErrNotGroupAdmin) {
		t.Errorf("expected ErrNotGroupAdmin for foreign group, got %v", err)
	}
}

func TestUpdatePlayerOwnership(t *testing.T) {
	store := newFakePlayerStore(&Player{ID: "p1", Name: "Eve", Email: "eve@example.com"})
	service := NewPlayerService(store, newFakeUserStore())

	stranger := &user.User{ID: "u2", Email: "other@example.com"}
	if _, err := service.UpdatePlayer("p1", &Player{Name: "X"}, stranger); !errors.Is(err, ErrNotProfileOwner) {
		t.Errorf("expected ErrNotProfileOwner, got %v", err)
	}

	owner := &user.User{ID: "u3", Email: "eve@example.com"}
	updated, err := service.UpdatePlayer("p1", &Player{Name: "Eve Adams", Email: "new@example.com"}, owner)
	if err != nil {
		t.Fatal(err)
	}
	if updated.Name != "Eve Adams" {
		t.Errorf("name not updated: %q", updated.Name)
	}
	// Only a system admin may change the email.
	if updated.Email != "eve@example.com" {
		t.Errorf("owner must not change email, got %q", updated.Email)
	}

	admin := &user.User{ID: "u4", SystemRole: user.SystemRoleAdmin}
	updated, err = service.UpdatePlayer("p1", &Player{Name: "Eve Adams", Email: "new@example.com"}, admin)
	if err != nil {
		t.Fatal(err)
	}
	if updated.Email != "new@example.com" {
		t.Errorf("admin email update not applied, got %q", updated.Email)
	}
}
