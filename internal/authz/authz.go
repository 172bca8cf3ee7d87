// Package authz holds the role/ownership predicates gating match and venue
// mutation. Predicates are pure functions over the actor's already-loaded
// record; there is no ambient role lookup and no caching of decisions.
package authz

import "github.com/picklepro/api/internal/user"

// CanCreateMatch reports whether the actor may record a new match. Creation
// is open to any authenticated actor; route-level policy may restrict
// further.
func CanCreateMatch(actor *user.User) bool {
	return actor != nil
}

// CanManage reports whether the actor may mutate or delete an
// ownership-sensitive record (a match or a venue). Authorized when any of
// the following holds:
//
//   - the actor carries the system ADMIN role;
//   - the actor is the recorded creator of the entity;
//   - the entity belongs to a group and the actor is a GROUP_ADMIN of it.
//
// The result is all-or-nothing; callers must not apply partial effects on a
// false return.
func CanManage(actor *user.User, createdByUserID, groupID string) bool {
	if actor == nil {
		return false
	}
	if actor.IsAdmin() {
		return true
	}
	if createdByUserID != "" && createdByUserID == actor.ID {
		return true
	}
	if groupID != "" && actor.IsGroupAdmin(groupID) {
		return true
	}
	return false
}

// CanAdministerGroup reports whether the actor may manage the given group's
// membership and players: system ADMIN or GROUP_ADMIN of that group.
func CanAdministerGroup(actor *user.User, groupID string) bool {
	if actor == nil {
		return false
	}
	return actor.IsAdmin() || actor.IsGroupAdmin(groupID)
}
