package authz

import "errors"

// Domain errors for setup-time misconfiguration. Authorization denials are
// never errors; they are delivered as failed Messages.
var (
	// ErrRoleAlreadyGrouped is returned when a role is directly assigned to a
	// second group. Moving a role goes through Group.AssignRole instead.
	ErrRoleAlreadyGrouped = errors.New("authz.role_already_grouped")

	// ErrCircularInheritance is returned when a group inheritance link would
	// create a cycle.
	ErrCircularInheritance = errors.New("authz.circular_inheritance")

	// ErrInheritanceTooDeep is returned when a group inheritance chain would
	// exceed MaxInheritanceDepth.
	ErrInheritanceTooDeep = errors.New("authz.inheritance_too_deep")

	// ErrInvalidKind is returned when a permission is constructed with an
	// unknown kind.
	ErrInvalidKind = errors.New("authz.invalid_kind")

	// ErrNilTarget is returned when a permission is constructed without a
	// target.
	ErrNilTarget = errors.New("authz.nil_target")

	// ErrDuplicateRole is returned when a role code is registered twice.
	ErrDuplicateRole = errors.New("authz.duplicate_role")

	// ErrDuplicateGroup is returned when a group code is registered twice.
	ErrDuplicateGroup = errors.New("authz.duplicate_group")
)
