package ports

import (
	"context"

	"github.com/epicevents/crm-system/internal/core/domain"
)

// CreateClientInput carries all data needed to create a client.
type CreateClientInput struct {
	FirstName   string
	LastName    string
	Email       string
	Phone       string
	CompanyName string
	// SalesContactID is optional for COMMERCIAL actors (defaults to the actor)
	// and mandatory for GESTION actors.
	SalesContactID *uint
}

// UpdateClientInput carries a partial update; nil fields are left unchanged.
type UpdateClientInput struct {
	FirstName   *string
	LastName    *string
	Email       *string
	Phone       *string
	CompanyName *string
}

// ClientService defines use-case operations for clients. Every mutating
// operation receives the acting user so row-level ownership can be enforced.
type ClientService interface {
	Create(ctx context.Context, actor *domain.User, input CreateClientInput) (*domain.Client, error)
	Update(ctx context.Context, actor *domain.User, clientID uint, input UpdateClientInput) (*domain.Client, error)
	Get(ctx context.Context, clientID uint) (*domain.Client, error)
	List(ctx context.Context) ([]*domain.Client, error)
	// ListMine returns the clients assigned to the acting user.
	ListMine(ctx context.Context, actor *domain.User) ([]*domain.Client, error)
}
