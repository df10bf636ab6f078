package ports

import (
	"context"

	"github.com/epicevents/crm-system/internal/core/domain"
)

// EventFilter narrows event listings. Zero value means no filter.
type EventFilter struct {
	OnlyUnassigned   bool
	SupportContactID uint // non-zero = scope to one support contact
	ContractID       uint // non-zero = scope to one contract
}

// EventRepository defines persistence operations for events.
type EventRepository interface {
	Create(ctx context.Context, event *domain.Event) (*domain.Event, error)
	// FindByID returns the event with its support contact preloaded.
	FindByID(ctx context.Context, id uint) (*domain.Event, error)
	Update(ctx context.Context, event *domain.Event) (*domain.Event, error)
	List(ctx context.Context, filter EventFilter) ([]*domain.Event, error)
}
