package authz

import (
	"fmt"
	"slices"
)

// MaxInheritanceDepth is the maximum allowed length of a group inheritance
// chain, guarding against excessive nesting.
const MaxInheritanceDepth = 10

// Group is a named collection of roles and permissions. A group may inherit
// permissions from one parent group; chains are walked transitively.
type Group struct {
	code        string
	parent      *Group
	roles       []*Role
	permissions []*Permission
}

// NewGroup creates a group identified by code. Inheritance is configured
// afterwards via InheritFrom so that cycle detection has an error to return.
func NewGroup(code string) *Group {
	return &Group{code: code}
}

// Code returns the group's identity code.
func (g *Group) Code() string { return g.code }

// Parent returns the group this group inherits from, or nil.
func (g *Group) Parent() *Group { return g.parent }

// Roles returns the group's member roles in attachment order.
func (g *Group) Roles() []*Role {
	return slices.Clone(g.roles)
}

// InheritFrom sets the group's parent. The link is rejected if it would
// close a cycle through the existing chain or push the chain past
// MaxInheritanceDepth. Passing nil clears inheritance.
func (g *Group) InheritFrom(parent *Group) error {
	if parent == nil {
		g.parent = nil
		return nil
	}

	depth := 0
	for ancestor := parent; ancestor != nil; ancestor = ancestor.parent {
		if ancestor == g {
			return fmt.Errorf("%w: group %q is an ancestor of %q", ErrCircularInheritance, g.code, parent.code)
		}
		if depth++; depth > MaxInheritanceDepth {
			return fmt.Errorf("%w: chain above group %q exceeds %d levels", ErrInheritanceTooDeep, g.code, MaxInheritanceDepth)
		}
	}

	g.parent = parent
	return nil
}

// AssignRole attaches a role to this group. A role already belonging to
// another group is detached there first; this is the only supported way to
// move a role between groups.
func (g *Group) AssignRole(r *Role) {
	if r.group == g {
		return
	}
	if r.group != nil {
		r.group.ExcludeRole(r)
	}
	g.attach(r)
}

// ExcludeRole removes a role from the group's member list and clears the
// role's back-reference. No-op if the role is not a member.
func (g *Group) ExcludeRole(r *Role) {
	before := len(g.roles)
	g.roles = slices.DeleteFunc(g.roles, func(member *Role) bool { return member == r })
	if len(g.roles) != before && r.group == g {
		r.group = nil
	}
}

func (g *Group) attach(r *Role) {
	r.group = g
	g.roles = append(g.roles, r)
}

// Permissions returns the group's visible permissions: the parent chain's
// first (most distant ancestor leading), then its own, in registration
// order.
func (g *Group) Permissions() []*Permission {
	var out []*Permission
	if g.parent != nil {
		out = append(out, g.parent.Permissions()...)
	}
	return append(out, g.permissions...)
}

// PermissionsOf is Permissions filtered to one kind, same ordering.
func (g *Group) PermissionsOf(kind Kind) []*Permission {
	var out []*Permission
	if g.parent != nil {
		out = append(out, g.parent.PermissionsOf(kind)...)
	}
	for _, p := range g.permissions {
		if p.kind == kind {
			out = append(out, p)
		}
	}
	return out
}

func (g *Group) register(p *Permission) {
	g.permissions = registerPermission(g.permissions, p)
}

func (g *Group) directRules(kind Kind) []Rule {
	var rules []Rule
	for _, p := range g.permissions {
		if p.kind == kind {
			rules = append(rules, p.rules...)
		}
	}
	return rules
}

func (g *Group) hierarchyParent() Target {
	if g.parent == nil {
		return nil
	}
	return g.parent
}

func (g *Group) sealedTarget() {}
