package authz

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/accesskit/accesskit/pkg/logger"
)

// AccessControl is the registry of roles and groups and the entry point for
// authorization checks. Instances are independent: nothing is process-wide,
// so several can coexist (e.g. one per tenant, or per test).
type AccessControl struct {
	roles  map[string]*Role
	groups map[string]*Group
	log    *slog.Logger
}

// Option configures an AccessControl.
type Option func(*AccessControl)

// WithLogger enables structured check logging: debug on success, warn on
// denial. Verdicts are unaffected.
func WithLogger(log *slog.Logger) Option {
	return func(ac *AccessControl) {
		if log != nil {
			ac.log = log
		}
	}
}

// New creates an AccessControl holding the given roles and groups. Codes
// must be unique per kind of entity.
func New(roles []*Role, groups []*Group, opts ...Option) (*AccessControl, error) {
	ac := &AccessControl{
		roles:  make(map[string]*Role, len(roles)),
		groups: make(map[string]*Group, len(groups)),
	}
	for _, opt := range opts {
		opt(ac)
	}

	for _, r := range roles {
		if err := ac.AddRole(r); err != nil {
			return nil, err
		}
	}
	for _, g := range groups {
		if err := ac.AddGroup(g); err != nil {
			return nil, err
		}
	}
	return ac, nil
}

// AddRole registers a role. Duplicate codes are rejected.
func (ac *AccessControl) AddRole(r *Role) error {
	if _, exists := ac.roles[r.code]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateRole, r.code)
	}
	ac.roles[r.code] = r
	return nil
}

// AddGroup registers a group. Duplicate codes are rejected.
func (ac *AccessControl) AddGroup(g *Group) error {
	if _, exists := ac.groups[g.code]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateGroup, g.code)
	}
	ac.groups[g.code] = g
	return nil
}

// RoleByCode looks up a registered role.
func (ac *AccessControl) RoleByCode(code string) (*Role, bool) {
	r, ok := ac.roles[code]
	return r, ok
}

// GroupByCode looks up a registered group.
func (ac *AccessControl) GroupByCode(code string) (*Group, bool) {
	g, ok := ac.groups[code]
	return g, ok
}

// Callbacks receives the outcome of CheckPermissions. Both fields are
// optional; nil callbacks are skipped. Invocation is synchronous, on the
// caller's goroutine.
type Callbacks struct {
	OnSuccess func()
	OnFailure func(*Message)
}

// CheckPermissions resolves the action's role, collects the permissions to
// validate and checks the action against each in order, short-circuiting
// on the first denial.
//
// Validated are the role's own permissions of the action's kind: each of
// them already folds the group chain's rules in at read time, so
// group-bound permission objects are not re-validated as independent
// gates. A role with no own permissions of the kind is checked against the
// group chain's instead.
//
// Failure cases, all delivered through OnFailure as Messages:
//   - unknown role code (Target is nil)
//   - no permission of the requested kind (Target is the role)
//   - the first failing Validate result
//
// When every permission validates, OnSuccess is invoked exactly once.
func (ac *AccessControl) CheckPermissions(action Action, cb Callbacks) {
	checkID := uuid.New()

	role, ok := ac.roles[action.RoleCode]
	if !ok {
		ac.fail(cb, &Message{
			Status:  StatusFailed,
			Message: fmt.Sprintf("role %q not found", action.RoleCode),
			Action:  &action,
			CheckID: checkID,
		})
		return
	}

	perms := role.validationPermissions(action.Kind)
	if len(perms) == 0 {
		msg := failedMessage(role, action,
			fmt.Sprintf("role %q has no %s permissions", action.RoleCode, action.Kind))
		msg.CheckID = checkID
		ac.fail(cb, msg)
		return
	}

	for _, p := range perms {
		if msg := p.Validate(action); msg.Failed() {
			msg.CheckID = checkID
			ac.fail(cb, msg)
			return
		}
	}

	if ac.log != nil {
		ac.log.Debug("access granted",
			logger.Role(action.RoleCode),
			logger.Check(checkID),
			logger.Status(string(StatusSuccess)),
			slog.String("kind", string(action.Kind)),
			slog.String("identifier", action.Identifier),
		)
	}
	if cb.OnSuccess != nil {
		cb.OnSuccess()
	}
}

func (ac *AccessControl) fail(cb Callbacks, msg *Message) {
	if ac.log != nil {
		attrs := []any{
			logger.Check(msg.CheckID),
			logger.Status(string(msg.Status)),
			slog.String("reason", msg.Message),
		}
		if msg.Action != nil {
			attrs = append(attrs,
				logger.Role(msg.Action.RoleCode),
				slog.String("kind", string(msg.Action.Kind)),
				slog.String("identifier", msg.Action.Identifier),
			)
		}
		ac.log.Warn("access denied", attrs...)
	}
	if cb.OnFailure != nil {
		cb.OnFailure(msg)
	}
}
