package cli

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/epicevents/crm-system/internal/core/domain"
)

type stubSessions struct {
	user *domain.User
	err  error
}

func (s *stubSessions) CurrentUser(context.Context) (*domain.User, error) {
	return s.user, s.err
}

func runGuarded(t *testing.T, run func(*cobra.Command, []string) error) error {
	t.Helper()
	cmd := &cobra.Command{Use: "test"}
	cmd.SetContext(context.Background())
	return run(cmd, nil)
}

func TestGuardRequireAuthWithoutSession(t *testing.T) {
	guard := NewGuard(&stubSessions{})

	called := false
	err := runGuarded(t, guard.RequireAuth(func(*cobra.Command, []string, *domain.User) error {
		called = true
		return nil
	}))

	if !errors.Is(err, domain.ErrNotAuthenticated) {
		t.Fatalf("error = %v, want domain.ErrNotAuthenticated", err)
	}
	if called {
		t.Fatal("command body ran without a session")
	}
}

func TestGuardRequireAuthPassesActor(t *testing.T) {
	alice := &domain.User{ID: 7, Username: "alice", Department: domain.DepartmentCommercial}
	guard := NewGuard(&stubSessions{user: alice})

	var got *domain.User
	err := runGuarded(t, guard.RequireAuth(func(_ *cobra.Command, _ []string, actor *domain.User) error {
		got = actor
		return nil
	}))
	if err != nil {
		t.Fatalf("error = %v", err)
	}
	if got == nil || got.ID != 7 {
		t.Fatalf("actor = %+v, want user 7", got)
	}
}

func TestGuardRequireDepartmentAllowsMember(t *testing.T) {
	manager := &domain.User{ID: 2, Username: "manager", Department: domain.DepartmentGestion}
	guard := NewGuard(&stubSessions{user: manager})

	called := false
	err := runGuarded(t, guard.RequireDepartment(func(*cobra.Command, []string, *domain.User) error {
		called = true
		return nil
	}, domain.DepartmentGestion))
	if err != nil {
		t.Fatalf("error = %v", err)
	}
	if !called {
		t.Fatal("command body did not run for an allowed department")
	}
}

func TestGuardRequireDepartmentRejectsOthers(t *testing.T) {
	bob := &domain.User{ID: 3, Username: "bob", Department: domain.DepartmentSupport}
	guard := NewGuard(&stubSessions{user: bob})

	called := false
	err := runGuarded(t, guard.RequireDepartment(func(*cobra.Command, []string, *domain.User) error {
		called = true
		return nil
	}, domain.DepartmentCommercial, domain.DepartmentGestion))

	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("error = %v, want domain.ErrForbidden", err)
	}
	if called {
		t.Fatal("command body ran for a rejected department")
	}
	msg := err.Error()
	if !strings.Contains(msg, "COMMERCIAL, GESTION") || !strings.Contains(msg, "SUPPORT") {
		t.Fatalf("denial message = %q, want both the allowed and the actual department", msg)
	}
}

func TestGuardPropagatesResolverError(t *testing.T) {
	boom := errors.New("token file unreadable")
	guard := NewGuard(&stubSessions{err: boom})

	err := runGuarded(t, guard.RequireAuth(func(*cobra.Command, []string, *domain.User) error {
		return nil
	}))
	if !errors.Is(err, boom) {
		t.Fatalf("error = %v, want the resolver error", err)
	}
}
