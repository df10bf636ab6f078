package cli

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/epicevents/crm-system/internal/core/domain"
)

// SessionResolver resolves the acting user from the stored session.
// Implemented by service.AuthService.
type SessionResolver interface {
	CurrentUser(ctx context.Context) (*domain.User, error)
}

// AuthedRun is a command body that receives the resolved identity as an
// explicit parameter. Commands never reach for ambient session state.
type AuthedRun func(cmd *cobra.Command, args []string, actor *domain.User) error

// Guard is the role-level authorization check wrapping commands. Row-level
// ownership stays in the domain services, using the identity the guard
// hands over.
type Guard struct {
	sessions SessionResolver
}

func NewGuard(sessions SessionResolver) *Guard {
	return &Guard{sessions: sessions}
}

// RequireAuth wraps next so it only runs with a valid session, whatever the
// actor's department.
func (g *Guard) RequireAuth(next AuthedRun) func(*cobra.Command, []string) error {
	return g.RequireDepartment(next)
}

// RequireDepartment wraps next so it only runs when the actor is
// authenticated and belongs to one of the allowed departments. An empty
// allowed set means any authenticated user. The check happens before the
// command body, so a rejected invocation has zero side effects.
func (g *Guard) RequireDepartment(next AuthedRun, allowed ...domain.Department) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		actor, err := g.sessions.CurrentUser(cmd.Context())
		if err != nil {
			return err
		}
		if actor == nil {
			return domain.ErrNotAuthenticated
		}

		if len(allowed) > 0 && !slices.Contains(allowed, actor.Department) {
			names := make([]string, len(allowed))
			for i, d := range allowed {
				names[i] = string(d)
			}
			return fmt.Errorf("%w pour votre département (départements autorisés : %s, votre département : %s)",
				domain.ErrForbidden, strings.Join(names, ", "), actor.Department)
		}

		return next(cmd, args, actor)
	}
}
