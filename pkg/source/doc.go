// Package source builds an authz.AccessControl from declarative role,
// group and permission definitions.
//
// Definitions are plain structs, so they can be written in code, decoded
// from YAML, or produced by any custom Source implementation. Build wires
// them together: groups first (inheritance links validated), then roles,
// then permissions bound to their targets.
//
//	defs := source.Definitions{
//	    Groups: []source.GroupDef{
//	        {Code: "STAFF", Permissions: []source.PermissionDef{{
//	            Kind:  "navigation",
//	            Rules: []source.RuleDef{{Pattern: "app/*"}},
//	        }}},
//	    },
//	    Roles: []source.RoleDef{
//	        {Code: "ADMIN", Group: "STAFF", Permissions: []source.PermissionDef{{
//	            Kind:  "navigation",
//	            Rules: []source.RuleDef{{Pattern: "admin/*"}},
//	        }}},
//	    },
//	}
//
//	ac, err := source.Build(ctx, source.NewStaticSource(defs))
//
// The equivalent YAML:
//
//	groups:
//	  - code: STAFF
//	    permissions:
//	      - kind: navigation
//	        rules:
//	          - pattern: app/*
//	roles:
//	  - code: ADMIN
//	    group: STAFF
//	    permissions:
//	      - kind: navigation
//	        rules:
//	          - pattern: admin/*
//
// All definition problems (unknown references, invalid kinds, bad regular
// expressions, inheritance cycles) surface as errors from Build, at setup
// time. Nothing is persisted anywhere; this is configuration loading, not
// storage.
package source
