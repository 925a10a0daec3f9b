package authz

// Target is what a Permission binds to: a *Role or a *Group. The interface
// is sealed by an unexported method so the variant set stays closed.
type Target interface {
	// Code returns the target's identity code.
	Code() string

	// register appends the permission to the target's list unless it is
	// already present.
	register(p *Permission)

	// directRules returns the rules of the target's own permissions of the
	// given kind, concatenated in registration order.
	directRules(kind Kind) []Rule

	// hierarchyParent returns the target's parent in the inheritance chain:
	// a role's group, or a group's parent group. Nil at the top.
	hierarchyParent() Target

	sealedTarget()
}

// inheritedRules walks the hierarchy chain upward from t and returns the
// concatenated rules of the given kind, most distant ancestor first.
func inheritedRules(t Target, kind Kind) []Rule {
	if t == nil {
		return nil
	}
	rules := inheritedRules(t.hierarchyParent(), kind)
	return append(rules, t.directRules(kind)...)
}

// registerPermission appends p to the permission list unless already present.
func registerPermission(list []*Permission, p *Permission) []*Permission {
	for _, existing := range list {
		if existing == p {
			return list
		}
	}
	return append(list, p)
}
