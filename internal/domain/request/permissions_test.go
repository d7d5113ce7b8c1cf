package request

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mnsternik/issue-manager/internal/domain/identity"
	"github.com/mnsternik/issue-manager/internal/shared/constants"
)

func viewerWith(id string, teamID *uint, roles ...string) *identity.Viewer {
	return &identity.Viewer{ID: id, DisplayName: "Test Viewer", TeamID: teamID, Roles: roles}
}

func TestComputePermissions_AnonymousViewer(t *testing.T) {
	r := reconstructedRequest(t, strPtr("u2"), uintPtr(4))

	perms := ComputePermissions(r, nil)

	assert.False(t, perms.AllowAssign)
	assert.False(t, perms.AllowEdit)
}

func TestComputePermissions_AllowEdit(t *testing.T) {
	tests := []struct {
		name           string
		assignedUserID *string
		viewerID       string
		want           bool
	}{
		{name: "viewer is assignee", assignedUserID: strPtr("u2"), viewerID: "u2", want: true},
		{name: "viewer is not assignee", assignedUserID: strPtr("u2"), viewerID: "u3", want: false},
		{name: "unassigned request", assignedUserID: nil, viewerID: "u2", want: false},
		{name: "author without assignment cannot edit", assignedUserID: nil, viewerID: "u1", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := reconstructedRequest(t, tt.assignedUserID, uintPtr(4))
			perms := ComputePermissions(r, viewerWith(tt.viewerID, uintPtr(4)))
			assert.Equal(t, tt.want, perms.AllowEdit)
		})
	}
}

func TestComputePermissions_AllowAssign(t *testing.T) {
	tests := []struct {
		name           string
		assignedUserID *string
		assignedTeamID *uint
		viewerID       string
		viewerTeamID   *uint
		viewerRoles    []string
		want           bool
	}{
		{
			name:           "same team",
			assignedUserID: strPtr("u2"), assignedTeamID: uintPtr(4),
			viewerID: "u3", viewerTeamID: uintPtr(4),
			want: true,
		},
		{
			name:           "different team",
			assignedUserID: strPtr("u2"), assignedTeamID: uintPtr(4),
			viewerID: "u3", viewerTeamID: uintPtr(5),
			want: false,
		},
		{
			name:           "no assigned team is open to anyone",
			assignedUserID: nil, assignedTeamID: nil,
			viewerID: "u3", viewerTeamID: uintPtr(5),
			want: true,
		},
		{
			name:           "no assigned team, viewer without team",
			assignedUserID: nil, assignedTeamID: nil,
			viewerID: "u3", viewerTeamID: nil,
			want: true,
		},
		{
			name:           "admin crosses team boundaries",
			assignedUserID: strPtr("u2"), assignedTeamID: uintPtr(4),
			viewerID: "u3", viewerTeamID: uintPtr(5), viewerRoles: []string{constants.RoleAdmin},
			want: true,
		},
		{
			name:           "current assignee cannot reassign to self",
			assignedUserID: strPtr("u2"), assignedTeamID: uintPtr(4),
			viewerID: "u2", viewerTeamID: uintPtr(4),
			want: false,
		},
		{
			name:           "admin assignee still cannot reassign to self",
			assignedUserID: strPtr("u2"), assignedTeamID: uintPtr(4),
			viewerID: "u2", viewerTeamID: uintPtr(4), viewerRoles: []string{constants.RoleAdmin},
			want: false,
		},
		{
			name:           "viewer without team against teamed request",
			assignedUserID: strPtr("u2"), assignedTeamID: uintPtr(4),
			viewerID: "u3", viewerTeamID: nil,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := reconstructedRequest(t, tt.assignedUserID, tt.assignedTeamID)
			perms := ComputePermissions(r, viewerWith(tt.viewerID, tt.viewerTeamID, tt.viewerRoles...))
			assert.Equal(t, tt.want, perms.AllowAssign)
		})
	}
}
