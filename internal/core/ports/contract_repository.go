package ports

import (
	"context"

	"github.com/epicevents/crm-system/internal/core/domain"
)

// ContractFilter narrows contract listings. Zero value means no filter.
type ContractFilter struct {
	OnlySigned   bool
	OnlyUnsigned bool
	// OnlyUnpaid selects contracts with remaining_amount > 0.
	OnlyUnpaid bool
	ClientID   uint // non-zero = scope to one client
}

// ContractRepository defines persistence operations for contracts.
type ContractRepository interface {
	Create(ctx context.Context, contract *domain.Contract) (*domain.Contract, error)
	// FindByID returns the contract with its client (and the client's sales
	// contact) preloaded.
	FindByID(ctx context.Context, id uint) (*domain.Contract, error)
	Update(ctx context.Context, contract *domain.Contract) (*domain.Contract, error)
	List(ctx context.Context, filter ContractFilter) ([]*domain.Contract, error)
}
