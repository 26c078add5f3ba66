package model

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// OrgRole is the caller's role inside the organization, as asserted by the identity provider.
type OrgRole string

const (
	RoleAdmin  OrgRole = "admin"
	RoleMember OrgRole = "member"
)

// ParseOrgRole accepts both the bare role and the identity provider's "org:" prefixed form.
func ParseOrgRole(v string) (OrgRole, error) {
	switch OrgRole(strings.TrimPrefix(v, "org:")) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleMember:
		return RoleMember, nil
	default:
		return "", fmt.Errorf("unknown organization role %q", v)
	}
}

func (r OrgRole) IsAdmin() bool {
	return r == RoleAdmin
}

// Caller identifies who is performing an operation. The values are trusted as already verified.
type Caller struct {
	UserID         uuid.UUID
	OrganizationID string
	Role           OrgRole
}
