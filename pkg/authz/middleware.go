package authz

import (
	"log/slog"

	"github.com/accesskit/accesskit/pkg/logger"
)

// Middleware observes a navigation check. Hooks run during Validate, after
// the kind check and rule selection but before the verdict is settled. They
// may have side effects (auditing, metrics) but cannot alter the outcome.
type Middleware func(p *Permission, action Action)

// AuditMiddleware returns a Middleware that logs every navigation check it
// observes at info level.
func AuditMiddleware(log *slog.Logger) Middleware {
	return func(p *Permission, action Action) {
		if log == nil {
			return
		}
		log.Info("navigation check",
			logger.Role(action.RoleCode),
			slog.String("route", action.Identifier),
			slog.String("target", p.Target().Code()),
		)
	}
}
