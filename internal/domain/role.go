package domain

import (
	"fmt"
	"strings"
)

// Role distinguishes administrative accounts from member accounts.
type Role string

const (
	RoleAdmin  Role = "ADMIN"
	RoleMember Role = "MEMBER"
)

// ParseRole resolves a role string case-insensitively.
func ParseRole(s string) (Role, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case string(RoleAdmin):
		return RoleAdmin, nil
	case string(RoleMember):
		return RoleMember, nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

// Lower returns the wire form used in auth responses ("admin"/"member").
func (r Role) Lower() string { return strings.ToLower(string(r)) }
