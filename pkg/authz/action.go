package authz

import "slices"

// Action is an ephemeral authorization request: which role is acting, what
// kind of permission applies, and the kind-specific parameters. Actions are
// created per check and discarded afterwards.
type Action struct {
	// RoleCode identifies the acting role.
	RoleCode string

	// Kind must match a permission's kind for it to be considered.
	Kind Kind

	// Identifier is the route (navigation), the component identifier
	// (component), or the list identifier (menu/dropdown/list).
	Identifier string

	// Name is the requested component action, e.g. "view" or "edit".
	// Component kind only.
	Name string

	// Items are the requested items to filter. List family only.
	Items []string
}

// NewNavigationAction builds a navigation request for a route.
func NewNavigationAction(roleCode, route string) Action {
	return Action{RoleCode: roleCode, Kind: Navigation, Identifier: route}
}

// NewComponentAction builds a component request for an identifier and an
// action name.
func NewComponentAction(roleCode, component, name string) Action {
	return Action{RoleCode: roleCode, Kind: Component, Identifier: component, Name: name}
}

// NewMenuAction builds a menu request for an identifier and requested items.
func NewMenuAction(roleCode, identifier string, items ...string) Action {
	return Action{RoleCode: roleCode, Kind: Menu, Identifier: identifier, Items: slices.Clone(items)}
}

// NewDropdownAction builds a dropdown request for an identifier and
// requested options.
func NewDropdownAction(roleCode, identifier string, items ...string) Action {
	return Action{RoleCode: roleCode, Kind: Dropdown, Identifier: identifier, Items: slices.Clone(items)}
}

// NewListAction builds a generic list request for an identifier and
// requested items.
func NewListAction(roleCode, identifier string, items ...string) Action {
	return Action{RoleCode: roleCode, Kind: List, Identifier: identifier, Items: slices.Clone(items)}
}
