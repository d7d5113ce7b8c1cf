package request

import (
	"github.com/mnsternik/issue-manager/internal/domain/identity"
)

// Permissions are the per-viewer action flags computed for a single request.
// They are derived on every read and never stored.
type Permissions struct {
	AllowAssign bool
	AllowEdit   bool
}

// ComputePermissions evaluates what the viewer may do with the request.
//
// Editing is reserved for the current assignee. Assignment is open to any
// authenticated user on the request's team, to anyone while the request has
// no team yet, and to admins regardless of team, except that the current
// assignee cannot re-assign the request to themselves.
func ComputePermissions(r *Request, viewer *identity.Viewer) Permissions {
	if viewer == nil {
		return Permissions{}
	}

	allowEdit := r.assignedUserID != nil && *r.assignedUserID == viewer.ID

	alreadyAssignedToViewer := allowEdit
	sameTeam := r.assignedTeamID != nil && viewer.BelongsToTeam(*r.assignedTeamID)
	noTeam := r.assignedTeamID == nil

	allowAssign := !alreadyAssignedToViewer && (sameTeam || noTeam || viewer.IsAdmin())

	return Permissions{
		AllowAssign: allowAssign,
		AllowEdit:   allowEdit,
	}
}
