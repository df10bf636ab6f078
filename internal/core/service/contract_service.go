package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/epicevents/crm-system/internal/core/domain"
	"github.com/epicevents/crm-system/internal/core/ports"
)

// ContractService implements contract use cases. A contract's effective
// owner is its client's sales contact; signing and payments are reserved to
// that owner.
type ContractService struct {
	contracts ports.ContractRepository
	clients   ports.ClientRepository
	log       zerolog.Logger
}

func NewContractService(contracts ports.ContractRepository, clients ports.ClientRepository, log zerolog.Logger) *ContractService {
	return &ContractService{contracts: contracts, clients: clients, log: log}
}

// Create registers a new contract for an existing client. COMMERCIAL actors
// may only create contracts for their own clients.
func (s *ContractService) Create(ctx context.Context, actor *domain.User, input ports.CreateContractInput) (*domain.Contract, error) {
	client, err := s.clients.FindByID(ctx, input.ClientID)
	if err != nil {
		return nil, err
	}

	if actor.Department == domain.DepartmentCommercial && client.SalesContactID != actor.ID {
		s.log.Warn().Uint("client_id", client.ID).Uint("actor_id", actor.ID).Msg("contract creation denied")
		return nil, fmt.Errorf("%w: vous n'êtes pas autorisé à créer un contrat pour ce client", domain.ErrForbidden)
	}

	if err := domain.ValidateContractAmounts(input.TotalAmount, input.RemainingAmount); err != nil {
		return nil, err
	}

	contract := &domain.Contract{
		ClientID:        input.ClientID,
		TotalAmount:     input.TotalAmount,
		RemainingAmount: input.RemainingAmount,
		IsSigned:        input.IsSigned,
	}

	created, err := s.contracts.Create(ctx, contract)
	if err != nil {
		return nil, fmt.Errorf("create contract: %w", err)
	}

	s.log.Info().
		Uint("contract_id", created.ID).
		Uint("client_id", client.ID).
		Str("total_amount", created.TotalAmount.String()).
		Msg("contract created")

	return created, nil
}

// Update applies a partial update and re-validates the amount invariant on
// the resulting state. COMMERCIAL actors may only update contracts of their
// own clients.
func (s *ContractService) Update(ctx context.Context, actor *domain.User, contractID uint, input ports.UpdateContractInput) (*domain.Contract, error) {
	contract, client, err := s.findWithClient(ctx, contractID)
	if err != nil {
		return nil, err
	}

	if actor.Department == domain.DepartmentCommercial && client.SalesContactID != actor.ID {
		return nil, fmt.Errorf("%w: vous ne pouvez modifier que les contrats de vos propres clients", domain.ErrForbidden)
	}

	if input.TotalAmount != nil {
		contract.TotalAmount = *input.TotalAmount
	}
	if input.RemainingAmount != nil {
		contract.RemainingAmount = *input.RemainingAmount
	}
	if input.IsSigned != nil {
		contract.IsSigned = *input.IsSigned
	}

	if err := domain.ValidateContractAmounts(contract.TotalAmount, contract.RemainingAmount); err != nil {
		return nil, err
	}

	updated, err := s.contracts.Update(ctx, contract)
	if err != nil {
		return nil, fmt.Errorf("update contract: %w", err)
	}

	s.log.Info().Uint("contract_id", updated.ID).Msg("contract updated")
	return updated, nil
}

// Sign marks the contract as signed. Only the sales contact assigned to the
// contract's client may sign, and a contract signs at most once.
func (s *ContractService) Sign(ctx context.Context, actor *domain.User, contractID uint) (*domain.Contract, error) {
	contract, client, err := s.findWithClient(ctx, contractID)
	if err != nil {
		return nil, err
	}

	if contract.IsSigned {
		return nil, fmt.Errorf("%w: le contrat #%d est déjà signé", domain.ErrAlreadySigned, contractID)
	}

	if client.SalesContactID != actor.ID {
		s.log.Warn().Uint("contract_id", contractID).Uint("actor_id", actor.ID).Msg("contract signing denied")
		return nil, fmt.Errorf("%w: seul le commercial assigné au client peut signer ce contrat", domain.ErrForbidden)
	}

	contract.IsSigned = true
	signed, err := s.contracts.Update(ctx, contract)
	if err != nil {
		return nil, fmt.Errorf("sign contract: %w", err)
	}

	s.log.Info().Uint("contract_id", signed.ID).Uint("signed_by", actor.ID).Msg("contract signed")
	return signed, nil
}

// RecordPayment subtracts amountPaid from the contract's remaining amount.
// Only the assigned sales contact may record payments.
func (s *ContractService) RecordPayment(ctx context.Context, actor *domain.User, contractID uint, amountPaid decimal.Decimal) (*domain.Contract, error) {
	contract, client, err := s.findWithClient(ctx, contractID)
	if err != nil {
		return nil, err
	}

	if client.SalesContactID != actor.ID {
		return nil, fmt.Errorf("%w: vous n'êtes pas autorisé à modifier ce contrat", domain.ErrForbidden)
	}

	if err := domain.ValidatePayment(amountPaid, contract.RemainingAmount); err != nil {
		return nil, err
	}

	contract.RemainingAmount = contract.RemainingAmount.Sub(amountPaid)
	updated, err := s.contracts.Update(ctx, contract)
	if err != nil {
		return nil, fmt.Errorf("record payment: %w", err)
	}

	s.log.Info().
		Uint("contract_id", updated.ID).
		Str("amount_paid", amountPaid.String()).
		Str("remaining", updated.RemainingAmount.String()).
		Msg("payment recorded")

	return updated, nil
}

func (s *ContractService) Get(ctx context.Context, contractID uint) (*domain.Contract, error) {
	return s.contracts.FindByID(ctx, contractID)
}

func (s *ContractService) List(ctx context.Context, filter ports.ContractFilter) ([]*domain.Contract, error) {
	return s.contracts.List(ctx, filter)
}

// findWithClient loads the contract and resolves its client before any
// ownership comparison, so a dangling client reference surfaces as not-found
// rather than a misleading authorization failure.
func (s *ContractService) findWithClient(ctx context.Context, contractID uint) (*domain.Contract, *domain.Client, error) {
	contract, err := s.contracts.FindByID(ctx, contractID)
	if err != nil {
		return nil, nil, err
	}

	client := contract.Client
	if client == nil {
		client, err = s.clients.FindByID(ctx, contract.ClientID)
		if err != nil {
			return nil, nil, fmt.Errorf("resolve contract client: %w", err)
		}
	}
	return contract, client, nil
}
