package authz

import "slices"

// selectRules performs the single-identifier evaluation pass for navigation
// and component permissions: one left-to-right scan over rules in declared
// order. A matching allow rule is appended to the accumulator; a matching
// exclude rule resets the accumulator to empty and is not itself added, so
// a later allow rule can still populate it. An empty result means denial.
func selectRules(kind Kind, rules []Rule, identifier, actionName string) []Rule {
	var matched []Rule
	for _, r := range rules {
		if !r.matchesIdentifier(kind, identifier, actionName) {
			continue
		}
		if r.Exclude {
			matched = matched[:0]
			continue
		}
		matched = append(matched, r)
	}
	return matched
}

// selectListRules is phase one of list evaluation: collect every rule whose
// pattern matches the identifier, order preserved. Pure filtering; exclude
// rules are kept for phase two, they do not reset anything here.
func selectListRules(rules []Rule, identifier string) []Rule {
	var selected []Rule
	for _, r := range rules {
		if r.Pattern != nil && r.Pattern.Matches(identifier) {
			selected = append(selected, r)
		}
	}
	return selected
}

// accessibleItems is phase two of list evaluation: for each selected rule,
// each requested item the rule's List matches is added to the result, or
// subtracted from it when the rule is an exclude. Subtraction is per item,
// not a reset. The result preserves first-added order without duplicates.
func accessibleItems(rules []Rule, identifier string, requested []string) []string {
	selected := selectListRules(rules, identifier)

	var accessible []string
	for _, r := range selected {
		for _, item := range requested {
			if r.List == nil || !r.List.Matches(item) {
				continue
			}
			if r.Exclude {
				accessible = slices.DeleteFunc(accessible, func(s string) bool { return s == item })
				continue
			}
			if !slices.Contains(accessible, item) {
				accessible = append(accessible, item)
			}
		}
	}
	return accessible
}

// union merges string lists eliminating duplicates, preserving first-seen
// order.
func union(lists ...[]string) []string {
	var merged []string
	for _, list := range lists {
		for _, item := range list {
			if !slices.Contains(merged, item) {
				merged = append(merged, item)
			}
		}
	}
	return merged
}

// intersect keeps the items of a that also appear in b, in a's order.
func intersect(a, b []string) []string {
	var common []string
	for _, item := range a {
		if slices.Contains(b, item) {
			common = append(common, item)
		}
	}
	return common
}
