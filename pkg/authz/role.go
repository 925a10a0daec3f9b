package authz

import "fmt"

// Role is a named subject archetype. It holds directly-assigned permissions
// and belongs to at most one Group at a time. The role does not own its
// group; membership is tracked on both sides.
type Role struct {
	code        string
	config      any
	group       *Group
	permissions []*Permission
}

// RoleOption configures a Role at construction.
type RoleOption func(*Role)

// WithConfig attaches opaque caller-defined configuration to the role.
func WithConfig(config any) RoleOption {
	return func(r *Role) { r.config = config }
}

// NewRole creates a role identified by code.
func NewRole(code string, opts ...RoleOption) *Role {
	r := &Role{code: code}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Code returns the role's identity code.
func (r *Role) Code() string { return r.code }

// Config returns the opaque configuration attached at construction, or nil.
func (r *Role) Config() any { return r.config }

// Group returns the group the role belongs to, or nil.
func (r *Role) Group() *Group { return r.group }

// AssignGroup attaches the role to a group. It fails if the role already
// belongs to a different group: direct assignment happens at most once, and
// moving a role between groups must go through Group.AssignRole, which
// detaches it from the previous group first.
func (r *Role) AssignGroup(g *Group) error {
	if r.group == g {
		return nil
	}
	if r.group != nil {
		return fmt.Errorf("%w: role %q already belongs to group %q", ErrRoleAlreadyGrouped, r.code, r.group.code)
	}
	g.attach(r)
	return nil
}

// Permissions returns every permission visible to the role: the group
// chain's permissions first (most distant ancestor leading), then the
// role's own, in registration order.
func (r *Role) Permissions() []*Permission {
	var out []*Permission
	if r.group != nil {
		out = append(out, r.group.Permissions()...)
	}
	return append(out, r.permissions...)
}

// PermissionsOf is Permissions filtered to one kind, same ordering.
func (r *Role) PermissionsOf(kind Kind) []*Permission {
	var out []*Permission
	if r.group != nil {
		out = append(out, r.group.PermissionsOf(kind)...)
	}
	for _, p := range r.permissions {
		if p.kind == kind {
			out = append(out, p)
		}
	}
	return out
}

// validationPermissions returns the permission objects CheckPermissions
// validates. Group rules already reach role-bound permissions through lazy
// folding in Permission.Rules, so group-bound objects must not act as
// independent gates next to them; only the role's own permissions of the
// kind are validated. A role with none of its own falls back to the group
// chain's.
func (r *Role) validationPermissions(kind Kind) []*Permission {
	var own []*Permission
	for _, p := range r.permissions {
		if p.kind == kind {
			own = append(own, p)
		}
	}
	if len(own) > 0 || r.group == nil {
		return own
	}
	return r.group.PermissionsOf(kind)
}

func (r *Role) register(p *Permission) {
	r.permissions = registerPermission(r.permissions, p)
}

func (r *Role) directRules(kind Kind) []Rule {
	var rules []Rule
	for _, p := range r.permissions {
		if p.kind == kind {
			rules = append(rules, p.rules...)
		}
	}
	return rules
}

func (r *Role) hierarchyParent() Target {
	if r.group == nil {
		return nil
	}
	return r.group
}

func (r *Role) sealedTarget() {}
