package models

import "strings"

// Role selects which enchant guide variant is used for a gear guide
type Role string

const (
	RoleTank   Role = "tank"
	RoleDPS    Role = "dps"
	RoleHealer Role = "healer"
)

// DefaultRole is used when a caller does not name a role
const DefaultRole = RoleDPS

// ParseRole validates a role name case-insensitively. An empty string
// yields DefaultRole.
func ParseRole(s string) (Role, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return DefaultRole, true
	}
	switch r := Role(s); r {
	case RoleTank, RoleDPS, RoleHealer:
		return r, true
	}
	return "", false
}
