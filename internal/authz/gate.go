// Package authz decides who may act on a resource. Every permission
// rule in the service lives in the table below; services load the
// relevant snapshot and call Authorize before touching storage.
package authz

import (
	"taskhive.com/taskhive/internal/constants"
	apperrors "taskhive.com/taskhive/internal/errors"
)

// Identity is the verified caller of the current request.
type Identity struct {
	UserID string
	Role   constants.Role
}

type Resource uint8

const (
	ResourceProject Resource = iota
	ResourceTask
	ResourceBoard
	ResourceColumn
	ResourceCard
	ResourceMilestone
	ResourceHistory
	ResourceUser
	ResourceAchievement
	ResourceNotification
)

type Action uint8

const (
	ActionCreate Action = iota
	ActionRead
	ActionUpdate
	ActionDelete
	// Task updates split into two disjoint actor classes: the assignee
	// may change status, the project creator everything else.
	ActionUpdateStatus
	ActionUpdateDetails
	// Card moves are open to any project member, unlike other kanban
	// mutations which stay creator-only.
	ActionMove
	// ActionList covers collection views whose grant differs from the
	// entity's own read rule: project-scoped views (members, tasks under
	// a project) are member-readable, the user directory is admin-only.
	ActionList
)

type Capability uint8

const (
	CapAnyone Capability = iota
	CapAdmin
	CapCreator
	CapAssignee
	CapMember
	CapSelf
)

// Subject is a snapshot of the target resource's relationships, resolved
// through its project chain (a card's column's board's project). Zero
// values never match anything, so a partially filled Subject fails
// closed.
type Subject struct {
	// CreatorID is the creator of the owning project (or of the project
	// itself when the resource is a project).
	CreatorID string
	// AssigneeID is the task's assignee, when the resource is a task.
	AssigneeID *string
	// Member reports whether the caller is referenced by at least one
	// task under the owning project. The project creator is treated as a
	// member regardless.
	Member bool
	// OwnerID is the user a user-scoped record belongs to (account,
	// achievement, notification).
	OwnerID string
}

// rules maps each (resource, action) pair to the capabilities that grant
// it, in the fixed evaluation order Admin, Creator, Assignee, Member,
// Self. A pair absent from the table denies everyone.
var rules = map[Resource]map[Action][]Capability{
	ResourceProject: {
		ActionCreate: {CapAnyone},
		ActionRead:   {CapAdmin, CapCreator},
		ActionList:   {CapAdmin, CapMember},
		ActionUpdate: {CapCreator},
		ActionDelete: {CapCreator},
	},
	ResourceTask: {
		ActionCreate:        {CapCreator},
		ActionRead:          {CapAdmin, CapCreator, CapMember},
		ActionUpdateStatus:  {CapAssignee},
		ActionUpdateDetails: {CapCreator},
		ActionDelete:        {CapCreator},
	},
	ResourceBoard: {
		ActionCreate: {CapCreator},
		ActionRead:   {CapAdmin, CapCreator, CapMember},
		ActionUpdate: {CapCreator},
		ActionDelete: {CapCreator},
	},
	ResourceColumn: {
		ActionCreate: {CapCreator},
		ActionRead:   {CapAdmin, CapCreator, CapMember},
		ActionUpdate: {CapCreator},
		ActionDelete: {CapCreator},
	},
	ResourceCard: {
		ActionCreate: {CapCreator},
		ActionRead:   {CapAdmin, CapCreator, CapMember},
		ActionMove:   {CapCreator, CapMember},
		ActionDelete: {CapCreator},
	},
	ResourceMilestone: {
		ActionCreate: {CapCreator},
		ActionRead:   {CapAdmin, CapCreator, CapMember},
		ActionUpdate: {CapCreator},
		ActionDelete: {CapCreator},
	},
	ResourceHistory: {
		ActionRead: {CapAdmin, CapCreator, CapMember},
	},
	ResourceUser: {
		ActionRead:   {CapAdmin, CapSelf},
		ActionList:   {CapAdmin},
		ActionUpdate: {CapSelf},
		ActionDelete: {CapAdmin, CapSelf},
	},
	ResourceAchievement: {
		ActionCreate: {CapAdmin},
		ActionRead:   {CapSelf},
	},
	ResourceNotification: {
		ActionCreate: {CapAnyone},
		ActionRead:   {CapSelf},
		ActionUpdate: {CapSelf},
		ActionDelete: {CapSelf},
	},
}

// Authorize returns nil when id holds any capability granting act on
// res, and the Forbidden exception otherwise. It is pure: no lookups, no
// side effects.
func Authorize(id Identity, res Resource, act Action, sub Subject) error {
	caps, ok := rules[res][act]
	if !ok {
		return apperrors.ErrForbidden
	}
	for _, c := range caps {
		if holds(id, c, sub) {
			return nil
		}
	}
	return apperrors.ErrForbidden
}

func holds(id Identity, c Capability, sub Subject) bool {
	switch c {
	case CapAnyone:
		return true
	case CapAdmin:
		return id.Role.IsAdmin()
	case CapCreator:
		return sub.CreatorID != "" && sub.CreatorID == id.UserID
	case CapAssignee:
		return sub.AssigneeID != nil && *sub.AssigneeID == id.UserID
	case CapMember:
		// The creator is always authorized, member or not.
		return sub.Member || (sub.CreatorID != "" && sub.CreatorID == id.UserID)
	case CapSelf:
		return sub.OwnerID != "" && sub.OwnerID == id.UserID
	default:
		return false
	}
}
