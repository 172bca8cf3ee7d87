package player

import (
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/picklepro/api/internal/authz"
	"github.com/picklepro/api/internal/user"
)

var (
	ErrPlayerEmailTaken = errors.New("player with this email already exists")
	ErrNotGroupAdmin    = errors.New("you must be a Group Admin to perform this action")
	ErrNotProfileOwner  = errors.New("you can only update your own player profile")
)

// PlayerService manages the player directory: registration, profile updates
// and group memberships. Rating mutation is exclusively the rating engine's
// concern; this service never touches the rating field.
type PlayerService struct {
	players PlayerRepository
	users   user.UserRepository
}

// NewPlayerService creates a new player service.
func NewPlayerService(players PlayerRepository, users user.UserRepository) *PlayerService {
	return &PlayerService{players: players, users: users}
}

func (s *PlayerService) GetAllPlayers() ([]Player, error) {
	return s.players.FindAll()
}

func (s *PlayerService) FindByEmail(email string) (*Player, error) {
	return s.players.FindByEmail(email)
}

// CreatePlayer registers a new player, optionally placing them into a group
// with an initial role. Placing into a group requires the actor to be that
// group's admin (or system ADMIN). Player emails are unique system-wide.
func (s *PlayerService) CreatePlayer(p *Player, actor *user.User, groupID string, role user.GroupRole) (*Player, error) {
	if p.Email != "" {
		if _, err := s.players.FindByEmail(p.Email); err == nil {
			return nil, ErrPlayerEmailTaken
		} else if !errors.Is(err, ErrPlayerNotFound) {
			return nil, err
		}
	}

	if groupID != "" && !authz.CanAdministerGroup(actor, groupID) {
		return nil, ErrNotGroupAdmin
	}

	p.ID = uuid.NewString()
	p.JoinedDate = time.Now()
	// Players are not bound to the creating user; only sign-in with a
	// matching email links a player to a user account.

	if groupID != "" && role != "" {
		if p.Memberships == nil {
			p.Memberships = user.RoleMap{}
		}
		p.Memberships[groupID] = role
	}

	if err := s.players.Save(p); err != nil {
		return nil, err
	}
	s.syncRolesToUser(p)
	return p, nil
}

// AddToGroup grants the player a role in a group. Requires group-admin
// rights for that group.
func (s *PlayerService) AddToGroup(playerID, groupID string, role user.GroupRole, actor *user.User) error {
	if !authz.CanAdministerGroup(actor, groupID) {
		return ErrNotGroupAdmin
	}

	p, err := s.players.FindByID(playerID)
	if err != nil {
		return err
	}

	if p.Memberships == nil {
		p.Memberships = user.RoleMap{}
	}
	p.Memberships[groupID] = role
	if err := s.players.Save(p); err != nil {
		return err
	}
	s.syncRolesToUser(p)
	return nil
}

// RemoveFromGroup revokes the player's membership in a group. Requires
// group-admin rights for that group.
func (s *PlayerService) RemoveFromGroup(playerID, groupID string, actor *user.User) error {
	if !authz.CanAdministerGroup(actor, groupID) {
		return ErrNotGroupAdmin
	}

	p, err := s.players.FindByID(playerID)
	if err != nil {
		return err
	}

	if p.Memberships != nil {
		delete(p.Memberships, groupID)
		if err := s.players.Save(p); err != nil {
			return err
		}
		s.syncRolesToUser(p)
	}
	return nil
}

// UpdatePlayer edits profile fields. Allowed for system ADMIN or the player
// themselves (matched by email). Only an admin may change the email.
func (s *PlayerService) UpdatePlayer(id string, updated *Player, actor *user.User) (*Player, error) {
	existing, err := s.players.FindByID(id)
	if err != nil {
		return nil, err
	}

	isAdmin := actor != nil && actor.IsAdmin()
	isOwner := existing.Email != "" && actor != nil && existing.Email == actor.Email

	if !isAdmin && !isOwner {
		return nil, ErrNotProfileOwner
	}

	existing.Name = updated.Name
	existing.ContactNumber = updated.ContactNumber
	existing.SocialMedia = updated.SocialMedia
	if isAdmin && updated.Email != "" {
		existing.Email = updated.Email
	}

	if err := s.players.Save(existing); err != nil {
		return nil, err
	}
	s.syncRolesToUser(existing)
	return existing, nil
}

// DeletePlayer removes a player registered by the given user.
func (s *PlayerService) DeletePlayer(playerID, userID string) error {
	return s.players.DeleteByIDAndUserID(playerID, userID)
}

// syncRolesToUser copies the player's group memberships onto the linked user
// record so authorization (which reads the user) reflects directory changes.
// Players without a linked account are matched by email and linked lazily.
// Sync is best-effort: a failure is logged, not surfaced, since the player
// write already committed.
func (s *PlayerService) syncRolesToUser(p *Player) {
	var u *user.User
	var err error

	if p.UserID != "" {
		if u, err = s.users.FindByID(p.UserID); err != nil && !errors.Is(err, user.ErrUserNotFound) {
			log.Printf("player %s: role sync lookup failed: %v", p.ID, err)
			return
		}
	}

	if u == nil && p.Email != "" {
		if u, err = s.users.FindByEmail(p.Email); err != nil {
			if !errors.Is(err, user.ErrUserNotFound) {
				log.Printf("player %s: role sync lookup failed: %v", p.ID, err)
			}
			return
		}
		p.UserID = u.ID
		if err := s.players.Save(p); err != nil {
			log.Printf("player %s: could not persist user link: %v", p.ID, err)
		}
	}

	if u == nil {
		return
	}

	if !roleMapsEqual(p.Memberships, u.Memberships) {
		u.Memberships = user.RoleMap{}
		for groupID, role := range p.Memberships {
			u.Memberships[groupID] = role
		}
		if err := s.users.Save(u); err != nil {
			log.Printf("player %s: role sync save failed: %v", p.ID, err)
		}
	}
}

func roleMapsEqual(a, b user.RoleMap) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if b[k] != v {
			return false
		}
	}
	return true
}
