// Package identity defines the shape of the authenticated actor as consumed
// from the external identity subsystem. The core only reads this data; it
// never creates, stores, or mutates accounts.
package identity

import "github.com/mnsternik/issue-manager/internal/shared/constants"

// Viewer is the authenticated actor performing an operation. The id is an
// opaque string owned by the identity subsystem. TeamID is nil for viewers
// without a team affiliation.
type Viewer struct {
	ID          string
	DisplayName string
	TeamID      *uint
	Roles       []string
}

// HasRole reports whether the viewer holds the given role name.
func (v *Viewer) HasRole(role string) bool {
	if v == nil {
		return false
	}
	for _, r := range v.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// IsAdmin reports whether the viewer holds the Admin role.
func (v *Viewer) IsAdmin() bool {
	return v.HasRole(constants.RoleAdmin)
}

// BelongsToTeam reports whether the viewer is affiliated with the given team.
func (v *Viewer) BelongsToTeam(teamID uint) bool {
	if v == nil || v.TeamID == nil {
		return false
	}
	return *v.TeamID == teamID
}
