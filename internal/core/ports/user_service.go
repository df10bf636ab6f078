package ports

import (
	"context"

	"github.com/epicevents/crm-system/internal/core/domain"
)

// CreateUserInput carries all data needed to create a user.
type CreateUserInput struct {
	Username   string
	Email      string
	Password   string
	FirstName  string
	LastName   string
	Phone      string
	Department domain.Department
}

// UpdateUserInput carries a partial update; nil fields are left unchanged.
// A non-nil Password is re-hashed before storage.
type UpdateUserInput struct {
	Email     *string
	Password  *string
	FirstName *string
	LastName  *string
	Phone     *string
}

// UserService defines use-case operations for user administration.
// Department-level access (GESTION only) is enforced by the CLI guard.
type UserService interface {
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
	Update(ctx context.Context, userID uint, input UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, userID uint) error
	Get(ctx context.Context, userID uint) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}
