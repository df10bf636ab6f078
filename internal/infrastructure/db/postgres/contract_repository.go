package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/epicevents/crm-system/internal/core/domain"
	"github.com/epicevents/crm-system/internal/core/ports"
)

type ContractRepository struct {
	db *gorm.DB
}

func NewContractRepository(db *gorm.DB) *ContractRepository {
	return &ContractRepository{db: db}
}

func (r *ContractRepository) Create(ctx context.Context, contract *domain.Contract) (*domain.Contract, error) {
	if err := r.db.WithContext(ctx).Create(contract).Error; err != nil {
		return nil, fmt.Errorf("insert contract: %w", err)
	}
	return contract, nil
}

func (r *ContractRepository) FindByID(ctx context.Context, id uint) (*domain.Contract, error) {
	var contract domain.Contract
	err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Client.SalesContact").
		First(&contract, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrContractNotFound
		}
		return nil, fmt.Errorf("find contract: %w", err)
	}
	return &contract, nil
}

func (r *ContractRepository) Update(ctx context.Context, contract *domain.Contract) (*domain.Contract, error) {
	if err := r.db.WithContext(ctx).Save(contract).Error; err != nil {
		return nil, fmt.Errorf("update contract: %w", err)
	}
	return contract, nil
}

func (r *ContractRepository) List(ctx context.Context, filter ports.ContractFilter) ([]*domain.Contract, error) {
	q := r.db.WithContext(ctx).Preload("Client")
	if filter.OnlySigned {
		q = q.Where("is_signed = ?", true)
	}
	if filter.OnlyUnsigned {
		q = q.Where("is_signed = ?", false)
	}
	if filter.OnlyUnpaid {
		q = q.Where("remaining_amount > 0")
	}
	if filter.ClientID != 0 {
		q = q.Where("client_id = ?", filter.ClientID)
	}

	var contracts []*domain.Contract
	if err := q.Order("id").Find(&contracts).Error; err != nil {
		return nil, fmt.Errorf("list contracts: %w", err)
	}
	return contracts, nil
}
