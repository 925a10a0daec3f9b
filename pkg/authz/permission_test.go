package authz_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/accesskit/accesskit/pkg/authz"
	"github.com/accesskit/accesskit/pkg/match"
)

func TestNewPermission(t *testing.T) {
	t.Parallel()

	t.Run("registers itself on the target", func(t *testing.T) {
		t.Parallel()
		role := authz.NewRole("ADMIN")
		p, err := authz.NewPermission(authz.Navigation, role, []authz.Rule{
			{Pattern: match.Pattern("admin/*")},
		})
		require.NoError(t, err)
		require.Len(t, role.Permissions(), 1)
		assert.Same(t, p, role.Permissions()[0])
		assert.Same(t, role, p.Target())
	})

	t.Run("invalid kind", func(t *testing.T) {
		t.Parallel()
		_, err := authz.NewPermission(authz.Kind("banner"), authz.NewRole("X"), nil)
		assert.True(t, errors.Is(err, authz.ErrInvalidKind))
	})

	t.Run("nil target", func(t *testing.T) {
		t.Parallel()
		_, err := authz.NewPermission(authz.Navigation, nil, nil)
		assert.True(t, errors.Is(err, authz.ErrNilTarget))
	})
}

func TestValidate_KindMismatch(t *testing.T) {
	t.Parallel()

	role := authz.NewRole("ADMIN")
	p, err := authz.NewPermission(authz.Navigation, role, []authz.Rule{
		{Pattern: match.Pattern("*")},
	})
	require.NoError(t, err)

	msg := p.Validate(authz.NewComponentAction("ADMIN", "grid", "view"))
	require.True(t, msg.Failed())
	assert.Contains(t, msg.Message, "does not match permission kind")
	assert.Same(t, role, msg.Target)
	require.NotNil(t, msg.Action)
	assert.Equal(t, authz.Component, msg.Action.Kind)
}

func TestValidate_Navigation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		rules   []authz.Rule
		route   string
		allowed bool
	}{
		{
			name:    "matching allow rule",
			rules:   []authz.Rule{{Pattern: match.Pattern("admin/*")}},
			route:   "admin/password",
			allowed: true,
		},
		{
			name:    "no rule matches",
			rules:   []authz.Rule{{Pattern: match.Pattern("admin/*")}},
			route:   "reports/daily",
			allowed: false,
		},
		{
			name: "exclude rule denies",
			rules: []authz.Rule{
				{Pattern: match.Pattern("admin/*")},
				{Pattern: match.Pattern("system/*"), Exclude: true},
			},
			route:   "system/reset",
			allowed: false,
		},
		{
			name: "exclude resets prior allows",
			rules: []authz.Rule{
				{Pattern: match.Pattern("/a")},
				{Pattern: match.Pattern("/a"), Exclude: true},
			},
			route:   "/a",
			allowed: false,
		},
		{
			name: "allow after exclude wins",
			rules: []authz.Rule{
				{Pattern: match.Pattern("/a")},
				{Pattern: match.Pattern("/a"), Exclude: true},
				{Pattern: match.Pattern("/a")},
			},
			route:   "/a",
			allowed: true,
		},
		{
			name: "non-matching exclude leaves allows intact",
			rules: []authz.Rule{
				{Pattern: match.Pattern("/a")},
				{Pattern: match.Pattern("/b"), Exclude: true},
			},
			route:   "/a",
			allowed: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			role := authz.NewRole("ADMIN")
			p, err := authz.NewPermission(authz.Navigation, role, tt.rules)
			require.NoError(t, err)

			msg := p.Validate(authz.NewNavigationAction("ADMIN", tt.route))
			if tt.allowed {
				assert.Nil(t, msg)
			} else {
				require.True(t, msg.Failed())
				assert.Same(t, role, msg.Target)
			}
		})
	}
}

func TestValidate_Component(t *testing.T) {
	t.Parallel()

	role := authz.NewRole("EDITOR")
	_, err := authz.NewPermission(authz.Component, role, []authz.Rule{
		{Pattern: match.Exact("user-grid"), Actions: []string{"view"}},
		{Pattern: match.Exact("user-form"), Actions: []string{"view", "edit"}},
	})
	require.NoError(t, err)

	p := role.Permissions()[0]

	assert.Nil(t, p.Validate(authz.NewComponentAction("EDITOR", "user-grid", "view")))
	assert.True(t, p.Validate(authz.NewComponentAction("EDITOR", "user-grid", "edit")).Failed())
	assert.Nil(t, p.Validate(authz.NewComponentAction("EDITOR", "user-form", "edit")))
	assert.True(t, p.Validate(authz.NewComponentAction("EDITOR", "other", "view")).Failed())
}

func TestValidate_Idempotent(t *testing.T) {
	t.Parallel()

	role := authz.NewRole("ADMIN")
	p, err := authz.NewPermission(authz.Navigation, role, []authz.Rule{
		{Pattern: match.Pattern("admin/*")},
		{Pattern: match.Pattern("system/*"), Exclude: true},
	})
	require.NoError(t, err)

	allow := authz.NewNavigationAction("ADMIN", "admin/password")
	deny := authz.NewNavigationAction("ADMIN", "system/reset")

	for i := 0; i < 3; i++ {
		assert.Nil(t, p.Validate(allow))
		assert.True(t, p.Validate(deny).Failed())
	}
}

func TestRules_LazyCombination(t *testing.T) {
	t.Parallel()

	group := authz.NewGroup("STAFF")
	role := authz.NewRole("ADMIN")
	require.NoError(t, role.AssignGroup(group))

	p, err := authz.NewPermission(authz.Navigation, role, []authz.Rule{
		{Pattern: match.Pattern("admin/*")},
	})
	require.NoError(t, err)

	// The group gains a permission after p was constructed; p must see it.
	msg := p.Validate(authz.NewNavigationAction("ADMIN", "app/home"))
	require.True(t, msg.Failed())

	_, err = authz.NewPermission(authz.Navigation, group, []authz.Rule{
		{Pattern: match.Pattern("app/*")},
	})
	require.NoError(t, err)

	assert.Nil(t, p.Validate(authz.NewNavigationAction("ADMIN", "app/home")))
	require.Len(t, p.Rules(), 2)
	assert.Equal(t, "app/*", p.Rules()[0].Pattern.String(), "inherited rules come first")
}

func TestRules_GroupChainOrdering(t *testing.T) {
	t.Parallel()

	grand := authz.NewGroup("ORG")
	parent := authz.NewGroup("DEPT")
	require.NoError(t, parent.InheritFrom(grand))

	role := authz.NewRole("WORKER")
	require.NoError(t, role.AssignGroup(parent))

	_, err := authz.NewPermission(authz.Navigation, grand, []authz.Rule{{Pattern: match.Pattern("org/*")}})
	require.NoError(t, err)
	_, err = authz.NewPermission(authz.Navigation, parent, []authz.Rule{{Pattern: match.Pattern("dept/*")}})
	require.NoError(t, err)
	p, err := authz.NewPermission(authz.Navigation, role, []authz.Rule{{Pattern: match.Pattern("own/*")}})
	require.NoError(t, err)

	rules := p.Rules()
	require.Len(t, rules, 3)
	assert.Equal(t, "org/*", rules[0].Pattern.String())
	assert.Equal(t, "dept/*", rules[1].Pattern.String())
	assert.Equal(t, "own/*", rules[2].Pattern.String())
}

func TestDefaultRoute(t *testing.T) {
	t.Parallel()

	role := authz.NewRole("ADMIN")
	p, err := authz.NewPermission(authz.Navigation, role, []authz.Rule{
		{Pattern: match.Pattern("admin/*")},
		{Pattern: match.Exact("admin/dashboard"), Default: true},
		{Pattern: match.Exact("admin/settings"), Default: true},
	})
	require.NoError(t, err)

	route, ok := p.DefaultRoute()
	require.True(t, ok)
	assert.Equal(t, "admin/dashboard", route, "first default rule wins")

	other := authz.NewRole("OTHER")
	menu, err := authz.NewPermission(authz.Menu, other, []authz.Rule{
		{Pattern: match.Exact("main"), Default: true, List: match.Set("a")},
	})
	require.NoError(t, err)
	_, ok = menu.DefaultRoute()
	assert.False(t, ok, "default routes are navigation-only")
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	t.Run("runs on navigation checks without changing the verdict", func(t *testing.T) {
		t.Parallel()
		role := authz.NewRole("ADMIN")
		var seen []string
		p, err := authz.NewPermission(authz.Navigation, role,
			[]authz.Rule{{Pattern: match.Pattern("admin/*")}},
			authz.WithMiddleware(func(p *authz.Permission, a authz.Action) {
				seen = append(seen, a.Identifier)
			}),
		)
		require.NoError(t, err)

		assert.Nil(t, p.Validate(authz.NewNavigationAction("ADMIN", "admin/home")))
		assert.True(t, p.Validate(authz.NewNavigationAction("ADMIN", "denied/route")).Failed())
		assert.Equal(t, []string{"admin/home", "denied/route"}, seen,
			"middleware observes both allowed and denied checks")
	})

	t.Run("skipped on kind mismatch", func(t *testing.T) {
		t.Parallel()
		role := authz.NewRole("ADMIN")
		calls := 0
		p, err := authz.NewPermission(authz.Navigation, role,
			[]authz.Rule{{Pattern: match.Pattern("*")}},
			authz.WithMiddleware(func(*authz.Permission, authz.Action) { calls++ }),
		)
		require.NoError(t, err)

		p.Validate(authz.NewComponentAction("ADMIN", "grid", "view"))
		assert.Zero(t, calls, "kind check precedes middleware")
	})

	t.Run("Use appends after construction", func(t *testing.T) {
		t.Parallel()
		role := authz.NewRole("ADMIN")
		p, err := authz.NewPermission(authz.Navigation, role,
			[]authz.Rule{{Pattern: match.Pattern("*")}})
		require.NoError(t, err)

		calls := 0
		p.Use(func(*authz.Permission, authz.Action) { calls++ })
		p.Validate(authz.NewNavigationAction("ADMIN", "anywhere"))
		assert.Equal(t, 1, calls)
	})
}
