package source

import (
	"context"
	"fmt"

	"github.com/accesskit/accesskit/pkg/authz"
	"github.com/accesskit/accesskit/pkg/match"
)

// Build loads definitions from src and assembles a ready AccessControl.
// Groups are created first and inheritance links resolved afterwards, so
// declaration order never matters. Every configuration problem is an error
// here; checks against the returned AccessControl never fail on setup
// issues.
func Build(ctx context.Context, src Source, opts ...authz.Option) (*authz.AccessControl, error) {
	defs, err := src.Load(ctx)
	if err != nil {
		return nil, err
	}

	groups := make(map[string]*authz.Group, len(defs.Groups))
	groupList := make([]*authz.Group, 0, len(defs.Groups))
	for _, def := range defs.Groups {
		g := authz.NewGroup(def.Code)
		groups[def.Code] = g
		groupList = append(groupList, g)
	}

	for _, def := range defs.Groups {
		if def.InheritFrom == "" {
			continue
		}
		parent, ok := groups[def.InheritFrom]
		if !ok {
			return nil, fmt.Errorf("%w: group %q inherits from %q", ErrUnknownGroup, def.Code, def.InheritFrom)
		}
		if err := groups[def.Code].InheritFrom(parent); err != nil {
			return nil, err
		}
	}

	roleList := make([]*authz.Role, 0, len(defs.Roles))
	for _, def := range defs.Roles {
		r := authz.NewRole(def.Code)
		if def.Group != "" {
			g, ok := groups[def.Group]
			if !ok {
				return nil, fmt.Errorf("%w: role %q references group %q", ErrUnknownGroup, def.Code, def.Group)
			}
			if err := r.AssignGroup(g); err != nil {
				return nil, err
			}
		}
		roleList = append(roleList, r)
	}

	for i, def := range defs.Groups {
		if err := buildPermissions(groupList[i], def.Permissions); err != nil {
			return nil, err
		}
	}
	for i, def := range defs.Roles {
		if err := buildPermissions(roleList[i], def.Permissions); err != nil {
			return nil, err
		}
	}

	return authz.New(roleList, groupList, opts...)
}

func buildPermissions(target authz.Target, defs []PermissionDef) error {
	for _, def := range defs {
		kind := authz.Kind(def.Kind)
		if !kind.Valid() {
			return fmt.Errorf("%w: %q on target %q", ErrUnknownKind, def.Kind, target.Code())
		}

		rules := make([]authz.Rule, 0, len(def.Rules))
		for _, rd := range def.Rules {
			rule, err := buildRule(rd)
			if err != nil {
				return fmt.Errorf("%w: target %q kind %q: %w", ErrInvalidRule, target.Code(), def.Kind, err)
			}
			rules = append(rules, rule)
		}

		if _, err := authz.NewPermission(kind, target, rules); err != nil {
			return err
		}
	}
	return nil
}

func buildRule(def RuleDef) (authz.Rule, error) {
	rule := authz.Rule{
		Exclude: def.Exclude,
		Default: def.Default,
		Actions: def.Actions,
	}

	switch {
	case def.Regexp != "":
		m, err := match.Regexp(def.Regexp)
		if err != nil {
			return authz.Rule{}, err
		}
		rule.Pattern = m
	case def.Pattern != "":
		rule.Pattern = match.Pattern(def.Pattern)
	default:
		return authz.Rule{}, fmt.Errorf("rule has neither pattern nor regexp")
	}

	switch {
	case def.ListPattern != "":
		rule.List = match.Pattern(def.ListPattern)
	case len(def.List) > 0:
		rule.List = match.Set(def.List...)
	}

	return rule, nil
}
