package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/epicevents/crm-system/internal/core/domain"
)

// CreateContractInput carries all data needed to create a contract.
type CreateContractInput struct {
	ClientID        uint
	TotalAmount     decimal.Decimal
	RemainingAmount decimal.Decimal
	IsSigned        bool
}

// UpdateContractInput carries a partial update; nil fields are left unchanged.
type UpdateContractInput struct {
	TotalAmount     *decimal.Decimal
	RemainingAmount *decimal.Decimal
	IsSigned        *bool
}

// ContractService defines use-case operations for contracts.
type ContractService interface {
	Create(ctx context.Context, actor *domain.User, input CreateContractInput) (*domain.Contract, error)
	Update(ctx context.Context, actor *domain.User, contractID uint, input UpdateContractInput) (*domain.Contract, error)
	// Sign marks the contract as signed. Only the client's sales contact may
	// sign, and only once.
	Sign(ctx context.Context, actor *domain.User, contractID uint) (*domain.Contract, error)
	// RecordPayment subtracts amountPaid from the remaining amount.
	RecordPayment(ctx context.Context, actor *domain.User, contractID uint, amountPaid decimal.Decimal) (*domain.Contract, error)
	Get(ctx context.Context, contractID uint) (*domain.Contract, error)
	List(ctx context.Context, filter ContractFilter) ([]*domain.Contract, error)
}
