package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/epicevents/crm-system/internal/core/domain"
	"github.com/epicevents/crm-system/internal/core/ports"
)

// EventService implements event use cases. Events attach to signed contracts
// only; SUPPORT actors may only update events assigned to them.
type EventService struct {
	events    ports.EventRepository
	contracts ports.ContractRepository
	users     ports.UserRepository
	log       zerolog.Logger
	now       func() time.Time
}

func NewEventService(events ports.EventRepository, contracts ports.ContractRepository, users ports.UserRepository, log zerolog.Logger) *EventService {
	return &EventService{events: events, contracts: contracts, users: users, log: log, now: time.Now}
}

// Create registers a new event on a signed contract. COMMERCIAL actors may
// only create events for contracts of their own clients. The optional
// support contact must reference a SUPPORT user.
func (s *EventService) Create(ctx context.Context, actor *domain.User, input ports.CreateEventInput) (*domain.Event, error) {
	contract, err := s.contracts.FindByID(ctx, input.ContractID)
	if err != nil {
		return nil, err
	}

	if !contract.IsSigned {
		return nil, fmt.Errorf("%w: le contrat #%d n'est pas encore signé, seuls les contrats signés peuvent avoir des événements",
			domain.ErrContractNotSigned, input.ContractID)
	}

	if actor.Department == domain.DepartmentCommercial {
		if contract.Client == nil {
			return nil, fmt.Errorf("resolve contract client: %w", domain.ErrClientNotFound)
		}
		if contract.Client.SalesContactID != actor.ID {
			s.log.Warn().Uint("contract_id", contract.ID).Uint("actor_id", actor.ID).Msg("event creation denied")
			return nil, fmt.Errorf("%w: vous ne pouvez créer des événements que pour vos propres clients", domain.ErrForbidden)
		}
	}

	if err := domain.ValidateEventSchedule(input.EventStart, input.EventEnd, input.Attendees, s.now()); err != nil {
		return nil, err
	}

	if input.SupportContactID != nil {
		if err := s.checkSupportContact(ctx, *input.SupportContactID); err != nil {
			return nil, err
		}
	}

	event := &domain.Event{
		Name:             input.Name,
		ContractID:       input.ContractID,
		EventStart:       input.EventStart,
		EventEnd:         input.EventEnd,
		Location:         input.Location,
		Attendees:        input.Attendees,
		Notes:            input.Notes,
		SupportContactID: input.SupportContactID,
	}

	created, err := s.events.Create(ctx, event)
	if err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	s.log.Info().
		Uint("event_id", created.ID).
		Uint("contract_id", created.ContractID).
		Str("name", created.Name).
		Msg("event created")

	return created, nil
}

// Update applies a partial update. SUPPORT actors may only update events
// assigned to them; an unassigned event is never updatable by SUPPORT.
func (s *EventService) Update(ctx context.Context, actor *domain.User, eventID uint, input ports.UpdateEventInput) (*domain.Event, error) {
	event, err := s.events.FindByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	if actor.Department == domain.DepartmentSupport {
		if event.SupportContactID == nil || *event.SupportContactID != actor.ID {
			s.log.Warn().Uint("event_id", eventID).Uint("actor_id", actor.ID).Msg("event update denied")
			return nil, fmt.Errorf("%w: vous ne pouvez modifier que vos propres événements", domain.ErrForbidden)
		}
	}

	if input.Name != nil {
		event.Name = *input.Name
	}
	if input.EventStart != nil {
		event.EventStart = *input.EventStart
	}
	if input.EventEnd != nil {
		event.EventEnd = *input.EventEnd
	}
	if input.Location != nil {
		event.Location = *input.Location
	}
	if input.Attendees != nil {
		if err := domain.ValidateAttendees(*input.Attendees); err != nil {
			return nil, err
		}
		event.Attendees = *input.Attendees
	}
	if input.Notes != nil {
		event.Notes = *input.Notes
	}

	if !event.EventEnd.After(event.EventStart) {
		return nil, fmt.Errorf("%w: l'heure de fin de l'événement doit être postérieure à l'heure de début", domain.ErrValidation)
	}

	updated, err := s.events.Update(ctx, event)
	if err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}

	s.log.Info().Uint("event_id", updated.ID).Msg("event updated")
	return updated, nil
}

// AssignSupport sets the event's support contact. Department-level access
// (GESTION only) is enforced by the guard.
func (s *EventService) AssignSupport(ctx context.Context, actor *domain.User, eventID, supportContactID uint) (*domain.Event, error) {
	event, err := s.events.FindByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	if err := s.checkSupportContact(ctx, supportContactID); err != nil {
		return nil, err
	}

	event.SupportContactID = &supportContactID
	updated, err := s.events.Update(ctx, event)
	if err != nil {
		return nil, fmt.Errorf("assign support contact: %w", err)
	}

	s.log.Info().
		Uint("event_id", updated.ID).
		Uint("support_contact_id", supportContactID).
		Uint("assigned_by", actor.ID).
		Msg("support contact assigned")

	return updated, nil
}

func (s *EventService) checkSupportContact(ctx context.Context, id uint) error {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return fmt.Errorf("%w: utilisateur avec l'ID %d introuvable", domain.ErrUserNotFound, id)
		}
		return fmt.Errorf("resolve support contact: %w", err)
	}
	return domain.ValidateSupportUser(user)
}

func (s *EventService) Get(ctx context.Context, eventID uint) (*domain.Event, error) {
	return s.events.FindByID(ctx, eventID)
}

func (s *EventService) List(ctx context.Context, filter ports.EventFilter) ([]*domain.Event, error) {
	return s.events.List(ctx, filter)
}

// ListMine returns the events assigned to the acting support user.
func (s *EventService) ListMine(ctx context.Context, actor *domain.User) ([]*domain.Event, error) {
	return s.events.List(ctx, ports.EventFilter{SupportContactID: actor.ID})
}
