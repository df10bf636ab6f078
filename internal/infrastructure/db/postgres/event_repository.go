package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/epicevents/crm-system/internal/core/domain"
	"github.com/epicevents/crm-system/internal/core/ports"
)

type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) Create(ctx context.Context, event *domain.Event) (*domain.Event, error) {
	if err := r.db.WithContext(ctx).Create(event).Error; err != nil {
		return nil, fmt.Errorf("insert event: %w", err)
	}
	return event, nil
}

func (r *EventRepository) FindByID(ctx context.Context, id uint) (*domain.Event, error) {
	var event domain.Event
	err := r.db.WithContext(ctx).
		Preload("SupportContact").
		Preload("Contract").
		First(&event, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("find event: %w", err)
	}
	return &event, nil
}

func (r *EventRepository) Update(ctx context.Context, event *domain.Event) (*domain.Event, error) {
	if err := r.db.WithContext(ctx).Save(event).Error; err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}
	return event, nil
}

func (r *EventRepository) List(ctx context.Context, filter ports.EventFilter) ([]*domain.Event, error) {
	q := r.db.WithContext(ctx).Preload("SupportContact")
	if filter.OnlyUnassigned {
		q = q.Where("support_contact_id IS NULL")
	}
	if filter.SupportContactID != 0 {
		q = q.Where("support_contact_id = ?", filter.SupportContactID)
	}
	if filter.ContractID != 0 {
		q = q.Where("contract_id = ?", filter.ContractID)
	}

	var events []*domain.Event
	if err := q.Order("event_start").Find(&events).Error; err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}
