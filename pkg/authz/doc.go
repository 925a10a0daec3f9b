// Package authz provides an in-process authorization engine: given a
// subject's role, a requested action, and a set of declarative rules, it
// decides allow or deny.
//
// Key concepts:
//
//   - Role: a named subject archetype holding permissions and optionally
//     belonging to one Group
//   - Group: a named collection of roles and permissions, optionally
//     inheriting from one parent group
//   - Permission: a typed, ordered bundle of rules bound to one Role or
//     Group at construction time
//   - Rule: one pattern-matching clause, optionally negated via Exclude
//   - Action: a single authorization request (role code, kind, parameters)
//   - Message: the structured success/failure result of a check
//
// Permissions come in five kinds. Navigation and Component gate a single
// identifier (a route or a component plus an action name). Menu, Dropdown
// and List gate a set of requested items behind an identifier and share one
// list evaluator.
//
// Rule order matters. For single-identifier kinds a matching Exclude rule
// discards everything matched so far; a later allow rule can still succeed.
// For list kinds an Exclude rule subtracts only the items it matches.
//
// Rule sets combine lazily across the hierarchy at read time: a role-bound
// permission sees its group's rules of the same kind (ancestors first)
// before its own, so rules added to a group after the permission was
// constructed are still honored.
//
// Basic usage:
//
//	admin := authz.NewRole("ADMIN")
//	_, err := authz.NewPermission(authz.Navigation, admin, []authz.Rule{
//	    {Pattern: match.Pattern("admin/*")},
//	    {Pattern: match.Pattern("system/*"), Exclude: true},
//	})
//	if err != nil {
//	    // setup misconfiguration
//	}
//
//	ac, err := authz.New([]*authz.Role{admin}, nil)
//	if err != nil {
//	    // duplicate codes
//	}
//
//	ac.CheckPermissions(authz.NewNavigationAction("ADMIN", "admin/password"), authz.Callbacks{
//	    OnSuccess: func() { /* proceed */ },
//	    OnFailure: func(m *authz.Message) { /* deny with m.Message */ },
//	})
//
// Denials are data results delivered through callbacks, never errors; only
// setup misconfiguration (duplicate codes, double group assignment,
// inheritance cycles, invalid patterns) is reported as an error.
//
// The engine performs no I/O. Roles, groups and permissions are expected to
// be assembled during a single-threaded setup phase; checks after that
// point are read-only and safe to run concurrently as long as no mutation
// happens alongside them.
package authz
