package authz

import (
	"slices"

	"github.com/accesskit/accesskit/pkg/match"
)

// Rule is one pattern-matching clause within a Permission. One generic
// shape serves all kinds; the payload fields that apply depend on the
// permission's kind and the rest are ignored.
type Rule struct {
	// Pattern identifies what the rule applies to: a route for navigation,
	// a component identifier for component, a list identifier for the list
	// family. A rule with a nil Pattern matches nothing.
	Pattern match.Matcher

	// Exclude negates the rule. During single-identifier evaluation a
	// matching exclude rule discards everything matched so far; during list
	// evaluation it subtracts only the items its List matches.
	Exclude bool

	// Default flags the navigation rule whose pattern is the default route.
	// Independent of matching.
	Default bool

	// Actions is the component-kind allow-list of action names (e.g. "view",
	// "edit"). A component rule only matches when it contains the requested
	// action.
	Actions []string

	// List scopes which items a list-family rule grants or subtracts.
	List match.Matcher
}

// matchesIdentifier reports whether the rule's pattern matches the request
// identifier, and for component rules whether the requested action is in
// the allow-list.
func (r Rule) matchesIdentifier(kind Kind, identifier, actionName string) bool {
	if r.Pattern == nil || !r.Pattern.Matches(identifier) {
		return false
	}
	if kind == Component && !slices.Contains(r.Actions, actionName) {
		return false
	}
	return true
}
