package authz

// Kind identifies a permission family. An Action is only considered by
// permissions of the same kind.
type Kind string

const (
	// Navigation gates route identifiers.
	Navigation Kind = "navigation"
	// Component gates a component identifier plus an action name.
	Component Kind = "component"
	// Menu gates menu items behind a menu identifier.
	Menu Kind = "menu"
	// Dropdown gates dropdown options behind a dropdown identifier.
	Dropdown Kind = "dropdown"
	// List is the generic list-family kind for custom item collections.
	List Kind = "list"
)

// Valid reports whether k is one of the known permission kinds.
func (k Kind) Valid() bool {
	switch k {
	case Navigation, Component, Menu, Dropdown, List:
		return true
	}
	return false
}

// listFamily reports whether k uses the two-phase list evaluator.
// Menu and Dropdown are thin specializations of List.
func (k Kind) listFamily() bool {
	return k == Menu || k == Dropdown || k == List
}
