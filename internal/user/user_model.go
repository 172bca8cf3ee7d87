package user

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// SystemRole is the application-wide role carried by every user.
type SystemRole string

const (
	SystemRoleAdmin SystemRole = "ADMIN"
	SystemRoleUser  SystemRole = "USER"
)

// GroupRole is a per-group role, looked up by group id.
type GroupRole string

const (
	GroupRoleMember     GroupRole = "MEMBER"
	GroupRoleGroupAdmin GroupRole = "GROUP_ADMIN"
)

// RoleMap is the JSONB column mapping group id -> role. A user or player
// holds at most one role per group.
type RoleMap map[string]GroupRole

func (m RoleMap) Value() (driver.Value, error) {
	if m == nil {
		return json.Marshal(map[string]GroupRole{})
	}
	return json.Marshal(m)
}

// Scan unmarshals a JSONB column into the map.
func (m *RoleMap) Scan(src interface{}) error {
	if src == nil {
		*m = nil
		return nil
	}
	b, ok := src.([]byte)
	if !ok {
		return fmt.Errorf("RoleMap: expected []byte, got %T", src)
	}
	return json.Unmarshal(b, m)
}

type User struct {
	ID          string     `gorm:"primaryKey" json:"id"`
	Name        string     `json:"name"`
	Email       string     `gorm:"uniqueIndex" json:"email"`
	Picture     string     `json:"picture"`
	GoogleID    string     `gorm:"index" json:"-"`
	SystemRole  SystemRole `gorm:"type:VARCHAR(20);default:'USER'" json:"system_role"`
	Memberships RoleMap    `gorm:"type:jsonb" json:"memberships"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// IsAdmin reports whether the user holds the system ADMIN role.
func (u *User) IsAdmin() bool {
	return u.SystemRole == SystemRoleAdmin
}

// GroupRoleFor returns the user's role in the given group, if any.
func (u *User) GroupRoleFor(groupID string) (GroupRole, bool) {
	if u.Memberships == nil {
		return "", false
	}
	role, ok := u.Memberships[groupID]
	return role, ok
}

// IsGroupAdmin reports whether the user is a GROUP_ADMIN of the given group.
func (u *User) IsGroupAdmin(groupID string) bool {
	role, ok := u.GroupRoleFor(groupID)
	return ok && role == GroupRoleGroupAdmin
}
