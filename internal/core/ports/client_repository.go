package ports

import (
	"context"

	"github.com/epicevents/crm-system/internal/core/domain"
)

// ClientRepository defines persistence operations for clients.
type ClientRepository interface {
	Create(ctx context.Context, client *domain.Client) (*domain.Client, error)
	// FindByID returns the client with its sales contact preloaded.
	FindByID(ctx context.Context, id uint) (*domain.Client, error)
	FindByEmail(ctx context.Context, email string) (*domain.Client, error)
	Update(ctx context.Context, client *domain.Client) (*domain.Client, error)
	List(ctx context.Context) ([]*domain.Client, error)
}
