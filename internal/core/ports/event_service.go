package ports

import (
	"context"
	"time"

	"github.com/epicevents/crm-system/internal/core/domain"
)

// CreateEventInput carries all data needed to create an event.
type CreateEventInput struct {
	Name       string
	ContractID uint
	EventStart time.Time
	EventEnd   time.Time
	Location   string
	Attendees  int
	Notes      string
	// SupportContactID, when set, must reference a SUPPORT user.
	SupportContactID *uint
}

// UpdateEventInput carries a partial update; nil fields are left unchanged.
type UpdateEventInput struct {
	Name       *string
	EventStart *time.Time
	EventEnd   *time.Time
	Location   *string
	Attendees  *int
	Notes      *string
}

// EventService defines use-case operations for events.
type EventService interface {
	Create(ctx context.Context, actor *domain.User, input CreateEventInput) (*domain.Event, error)
	Update(ctx context.Context, actor *domain.User, eventID uint, input UpdateEventInput) (*domain.Event, error)
	// AssignSupport sets the event's support contact to a SUPPORT user.
	AssignSupport(ctx context.Context, actor *domain.User, eventID, supportContactID uint) (*domain.Event, error)
	Get(ctx context.Context, eventID uint) (*domain.Event, error)
	List(ctx context.Context, filter EventFilter) ([]*domain.Event, error)
	// ListMine returns the events assigned to the acting support user.
	ListMine(ctx context.Context, actor *domain.User) ([]*domain.Event, error)
}
