package authz

import (
	"fmt"
	"slices"
)

// Permission is a typed, ordered bundle of rules bound to exactly one Role
// or Group. Construction registers the permission on its target, so setup
// code usually only keeps the returned value to attach middleware or to
// query accessible items directly.
type Permission struct {
	kind        Kind
	target      Target
	rules       []Rule
	middlewares []Middleware
}

// PermissionOption configures a Permission at construction.
type PermissionOption func(*Permission)

// WithMiddleware attaches middleware hooks. Only navigation permissions
// invoke them; see Middleware.
func WithMiddleware(mw ...Middleware) PermissionOption {
	return func(p *Permission) {
		for _, m := range mw {
			if m != nil {
				p.middlewares = append(p.middlewares, m)
			}
		}
	}
}

// NewPermission creates a permission of the given kind bound to target and
// registers it on the target's permission list. Rules keep their declared
// order; it is load-bearing during evaluation.
func NewPermission(kind Kind, target Target, rules []Rule, opts ...PermissionOption) (*Permission, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidKind, kind)
	}
	if target == nil {
		return nil, fmt.Errorf("%w: permission kind %q", ErrNilTarget, kind)
	}

	p := &Permission{
		kind:   kind,
		target: target,
		rules:  slices.Clone(rules),
	}
	for _, opt := range opts {
		opt(p)
	}

	target.register(p)
	return p, nil
}

// Kind returns the permission's kind.
func (p *Permission) Kind() Kind { return p.kind }

// Target returns the Role or Group the permission is bound to.
func (p *Permission) Target() Target { return p.target }

// Use appends middleware hooks after construction.
func (p *Permission) Use(mw ...Middleware) {
	WithMiddleware(mw...)(p)
}

// Rules returns the effective rule set: rules inherited from the target's
// hierarchy chain (same kind, most distant ancestor first) followed by the
// permission's own rules. Combination happens here, at read time, so rules
// added to a parent after this permission was constructed are visible.
func (p *Permission) Rules() []Rule {
	inherited := inheritedRules(p.target.hierarchyParent(), p.kind)
	return append(inherited, p.rules...)
}

// Validate checks the action against the permission. It returns nil on
// success and a failed Message on denial; it never returns errors.
//
// The kind check always runs first. For navigation permissions, middleware
// hooks run after rule selection and before the empty-set check; they
// observe the check but do not alter the verdict.
func (p *Permission) Validate(action Action) *Message {
	if action.Kind != p.kind {
		return failedMessage(p.target, action,
			fmt.Sprintf("action kind %q does not match permission kind %q", action.Kind, p.kind))
	}

	if p.kind.listFamily() {
		if len(selectListRules(p.Rules(), action.Identifier)) == 0 {
			return failedMessage(p.target, action,
				fmt.Sprintf("no access permission for identifier %q", action.Identifier))
		}
		return nil
	}

	selected := selectRules(p.kind, p.Rules(), action.Identifier, action.Name)

	if p.kind == Navigation {
		for _, mw := range p.middlewares {
			mw(p, action)
		}
	}

	if len(selected) == 0 {
		return failedMessage(p.target, action,
			fmt.Sprintf("no access permission for identifier %q", action.Identifier))
	}
	return nil
}

// AccessibleItems computes which of the action's requested items the
// permission grants. Only meaningful for list-family kinds; other kinds and
// mismatched actions yield nil.
//
// For a group-bound permission the result is the accumulated list over the
// group's effective rules. For a role-bound permission the role-level list
// is additionally intersected with the union of the results of the group
// chain's same-kind permissions: an item counts only when role and group
// both allow it. A role without a group, or whose group chain holds no
// permissions of this kind, stands on its own list — an absent group grant
// is no constraint, not an empty one.
func (p *Permission) AccessibleItems(action Action) []string {
	if !p.kind.listFamily() || action.Kind != p.kind {
		return nil
	}

	level := accessibleItems(p.Rules(), action.Identifier, action.Items)

	role, ok := p.target.(*Role)
	if !ok || role.group == nil {
		return level
	}

	groupPerms := role.group.PermissionsOf(p.kind)
	if len(groupPerms) == 0 {
		return level
	}

	lists := make([][]string, 0, len(groupPerms))
	for _, gp := range groupPerms {
		lists = append(lists, accessibleItems(gp.Rules(), action.Identifier, action.Items))
	}
	return intersect(level, union(lists...))
}

// DefaultRoute returns the pattern of the first rule flagged Default.
// Navigation only; independent of matching.
func (p *Permission) DefaultRoute() (string, bool) {
	if p.kind != Navigation {
		return "", false
	}
	for _, r := range p.Rules() {
		if r.Default && r.Pattern != nil {
			return r.Pattern.String(), true
		}
	}
	return "", false
}
