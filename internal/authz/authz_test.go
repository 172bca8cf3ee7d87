package authz

import (
	"testing"

	"github.com/picklepro/api/internal/user"
)

func member(role user.SystemRole, memberships user.RoleMap) *user.User {
	return &user.User{ID: "actor-1", SystemRole: role, Memberships: memberships}
}

func TestCanManage(t *testing.T) {
	groupAdminX := member(user.SystemRoleUser, user.RoleMap{"group-x": user.GroupRoleGroupAdmin})

	cases := []struct {
		name      string
		actor     *user.User
		createdBy string
		groupID   string
		expected  bool
	}{
		{"nil actor", nil, "actor-1", "group-x", false},
		{"system admin, unrelated record", member(user.SystemRoleAdmin, nil), "someone-else", "", true},
		{"creator", member(user.SystemRoleUser, nil), "actor-1", "", true},
		{"group admin of record's group", groupAdminX, "someone-else", "group-x", true},
		{"group admin of a different group", groupAdminX, "someone-else", "group-y", false},
		{"group admin, record without group", groupAdminX, "someone-else", "", false},
		{"plain member of record's group", member(user.SystemRoleUser, user.RoleMap{"group-x": user.GroupRoleMember}), "someone-else", "group-x", false},
		{"no relationship at all", member(user.SystemRoleUser, nil), "someone-else", "group-x", false},
		{"creator id empty on record", member(user.SystemRoleUser, nil), "", "", false},
	}

	for _, c := range cases {
		if got := CanManage(c.actor, c.createdBy, c.groupID); got != c.expected {
			t.Errorf("%s: expected %v, got %v", c.name, c.expected, got)
		}
	}
}

func TestCanCreateMatch(t *testing.T) {
	if CanCreateMatch(nil) {
		t.Error("unauthenticated actor must not create matches")
	}
	if !CanCreateMatch(member(user.SystemRoleUser, nil)) {
		t.Error("any authenticated actor may create matches")
	}
}

func TestCanAdministerGroup(t *testing.T) {
	cases := []struct {
		name     string
		actor    *user.User
		groupID  string
		expected bool
	}{
		{"nil actor", nil, "g", false},
		{"system admin", member(user.SystemRoleAdmin, nil), "g", true},
		{"group admin", member(user.SystemRoleUser, user.RoleMap{"g": user.GroupRoleGroupAdmin}), "g", true},
		{"plain member", member(user.SystemRoleUser, user.RoleMap{"g": user.GroupRoleMember}), "g", false},
		{"admin of another group", member(user.SystemRoleUser, user.RoleMap{"other": user.GroupRoleGroupAdmin}), "g", false},
	}

	for _, c := range cases {
		if got := CanAdministerGroup(c.actor, c.groupID); got != c.expected {
			t.Errorf("%s: expected %v, got %v", c.name, c.expected, got)
		}
	}
}
