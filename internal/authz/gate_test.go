package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"taskhive.com/taskhive/internal/constants"
)

func identity(id string, role constants.Role) Identity {
	return Identity{UserID: id, Role: role}
}

func TestAuthorize(t *testing.T) {
	creator := identity("u-creator", constants.RoleEmployee)
	assignee := identity("u-assignee", constants.RoleEmployee)
	member := identity("u-member", constants.RoleEmployee)
	outsider := identity("u-outsider", constants.RoleEmployee)
	admin := identity("u-admin", constants.RoleAdmin)

	assigneeID := "u-assignee"
	taskSubject := func(isMember bool) Subject {
		return Subject{CreatorID: "u-creator", AssigneeID: &assigneeID, Member: isMember}
	}

	tests := []struct {
		name    string
		id      Identity
		res     Resource
		act     Action
		sub     Subject
		allowed bool
	}{
		{"anyone may create a project", outsider, ResourceProject, ActionCreate, Subject{}, true},
		{"creator reads own project", creator, ResourceProject, ActionRead, Subject{CreatorID: "u-creator"}, true},
		{"admin reads any project", admin, ResourceProject, ActionRead, Subject{CreatorID: "u-creator"}, true},
		{"outsider cannot read a project", outsider, ResourceProject, ActionRead, Subject{CreatorID: "u-creator"}, false},
		{"member cannot update a project", member, ResourceProject, ActionUpdate, Subject{CreatorID: "u-creator", Member: true}, false},
		{"admin cannot update another's project", admin, ResourceProject, ActionUpdate, Subject{CreatorID: "u-creator"}, false},

		{"creator creates tasks", creator, ResourceTask, ActionCreate, Subject{CreatorID: "u-creator"}, true},
		{"admin cannot create tasks in foreign projects", admin, ResourceTask, ActionCreate, Subject{CreatorID: "u-creator"}, false},
		{"assignee changes status", assignee, ResourceTask, ActionUpdateStatus, taskSubject(true), true},
		{"creator cannot change status", creator, ResourceTask, ActionUpdateStatus, taskSubject(false), false},
		{"admin cannot change status", admin, ResourceTask, ActionUpdateStatus, taskSubject(false), false},
		{"creator edits details", creator, ResourceTask, ActionUpdateDetails, taskSubject(false), true},
		{"assignee cannot edit details", assignee, ResourceTask, ActionUpdateDetails, taskSubject(true), false},
		{"member reads tasks", member, ResourceTask, ActionRead, taskSubject(true), true},
		{"outsider cannot read tasks", outsider, ResourceTask, ActionRead, taskSubject(false), false},

		{"member moves cards", member, ResourceCard, ActionMove, Subject{CreatorID: "u-creator", Member: true}, true},
		{"creator moves cards without task membership", creator, ResourceCard, ActionMove, Subject{CreatorID: "u-creator"}, true},
		{"outsider cannot move cards", outsider, ResourceCard, ActionMove, Subject{CreatorID: "u-creator"}, false},
		{"admin cannot move cards", admin, ResourceCard, ActionMove, Subject{CreatorID: "u-creator"}, false},
		{"member cannot delete cards", member, ResourceCard, ActionDelete, Subject{CreatorID: "u-creator", Member: true}, false},

		{"member reads history", member, ResourceHistory, ActionRead, Subject{CreatorID: "u-creator", Member: true}, true},
		{"history has no write action", admin, ResourceHistory, ActionUpdate, Subject{}, false},

		{"self reads own account", member, ResourceUser, ActionRead, Subject{OwnerID: "u-member"}, true},
		{"peer cannot read account", member, ResourceUser, ActionRead, Subject{OwnerID: "u-outsider"}, false},
		{"admin reads any account", admin, ResourceUser, ActionRead, Subject{OwnerID: "u-member"}, true},
		{"admin lists the user directory", admin, ResourceUser, ActionList, Subject{}, true},
		{"employee cannot list the user directory", member, ResourceUser, ActionList, Subject{}, false},
		{"admin cannot update another's credentials", admin, ResourceUser, ActionUpdate, Subject{OwnerID: "u-member"}, false},

		{"admin awards achievements", admin, ResourceAchievement, ActionCreate, Subject{}, true},
		{"employee cannot award achievements", member, ResourceAchievement, ActionCreate, Subject{}, false},
		{"achievements are self-read only even for admins", admin, ResourceAchievement, ActionRead, Subject{OwnerID: "u-member"}, false},

		{"empty subject fails closed", outsider, ResourceTask, ActionRead, Subject{}, false},
		{"empty user id never matches empty creator", identity("", constants.RoleEmployee), ResourceProject, ActionUpdate, Subject{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Authorize(tt.id, tt.res, tt.act, tt.sub)
			if tt.allowed {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestAuthorize_CreatorCountsAsMember(t *testing.T) {
	creator := identity("u-creator", constants.RoleEmployee)
	sub := Subject{CreatorID: "u-creator", Member: false}

	assert.NoError(t, Authorize(creator, ResourceProject, ActionList, sub))
	assert.NoError(t, Authorize(creator, ResourceHistory, ActionRead, sub))
}
