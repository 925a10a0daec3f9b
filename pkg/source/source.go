package source

import (
	"context"
	"slices"
)

// Definitions is the root of a declarative access-control configuration.
type Definitions struct {
	Groups []GroupDef `yaml:"groups,omitempty"`
	Roles  []RoleDef  `yaml:"roles,omitempty"`
}

// GroupDef declares one group. InheritFrom names another group defined in
// the same Definitions; declaration order does not matter.
type GroupDef struct {
	Code        string          `yaml:"code"`
	InheritFrom string          `yaml:"inheritFrom,omitempty"`
	Permissions []PermissionDef `yaml:"permissions,omitempty"`
}

// RoleDef declares one role, optionally a member of a declared group.
type RoleDef struct {
	Code        string          `yaml:"code"`
	Group       string          `yaml:"group,omitempty"`
	Permissions []PermissionDef `yaml:"permissions,omitempty"`
}

// PermissionDef declares one permission: a kind tag and its ordered rules.
type PermissionDef struct {
	Kind  string    `yaml:"kind"`
	Rules []RuleDef `yaml:"rules,omitempty"`
}

// RuleDef declares one rule. Pattern uses wildcard syntax; Regexp takes
// precedence when both are set. For list-family rules either List (an exact
// string set) or ListPattern scopes the items.
type RuleDef struct {
	Pattern     string   `yaml:"pattern,omitempty"`
	Regexp      string   `yaml:"regexp,omitempty"`
	Exclude     bool     `yaml:"exclude,omitempty"`
	Default     bool     `yaml:"default,omitempty"`
	Actions     []string `yaml:"actions,omitempty"`
	List        []string `yaml:"list,omitempty"`
	ListPattern string   `yaml:"listPattern,omitempty"`
}

// Source provides access-control definitions.
type Source interface {
	// Load returns the definitions to build from.
	Load(ctx context.Context) (Definitions, error)
}

// staticSource serves an in-memory copy of definitions.
type staticSource struct {
	defs Definitions
}

// NewStaticSource creates a Source serving the given definitions. The input
// is deep-copied so later mutation by the caller has no effect.
func NewStaticSource(defs Definitions) Source {
	return &staticSource{defs: copyDefinitions(defs)}
}

func (s *staticSource) Load(ctx context.Context) (Definitions, error) {
	return copyDefinitions(s.defs), nil
}

func copyDefinitions(defs Definitions) Definitions {
	out := Definitions{
		Groups: make([]GroupDef, len(defs.Groups)),
		Roles:  make([]RoleDef, len(defs.Roles)),
	}
	for i, g := range defs.Groups {
		g.Permissions = copyPermissionDefs(g.Permissions)
		out.Groups[i] = g
	}
	for i, r := range defs.Roles {
		r.Permissions = copyPermissionDefs(r.Permissions)
		out.Roles[i] = r
	}
	return out
}

func copyPermissionDefs(perms []PermissionDef) []PermissionDef {
	out := make([]PermissionDef, len(perms))
	for i, p := range perms {
		p.Rules = slices.Clone(p.Rules)
		for j, r := range p.Rules {
			r.Actions = slices.Clone(r.Actions)
			r.List = slices.Clone(r.List)
			p.Rules[j] = r
		}
		out[i] = p
	}
	return out
}
