package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/epicevents/crm-system/internal/core/domain"
	"github.com/epicevents/crm-system/internal/core/ports"
)

// ClientService implements client use cases with row-level ownership checks.
// The guard has already verified the actor's department; this layer checks
// that COMMERCIAL actors only touch their own clients.
type ClientService struct {
	clients ports.ClientRepository
	users   ports.UserRepository
	log     zerolog.Logger
}

func NewClientService(clients ports.ClientRepository, users ports.UserRepository, log zerolog.Logger) *ClientService {
	return &ClientService{clients: clients, users: users, log: log}
}

// Create registers a new client. A COMMERCIAL actor may omit the sales
// contact, in which case the client is assigned to the actor; a GESTION
// actor must name one explicitly.
func (s *ClientService) Create(ctx context.Context, actor *domain.User, input ports.CreateClientInput) (*domain.Client, error) {
	salesContactID, err := s.resolveSalesContact(ctx, actor, input.SalesContactID)
	if err != nil {
		return nil, err
	}

	if existing, err := s.clients.FindByEmail(ctx, input.Email); err == nil && existing != nil {
		return nil, fmt.Errorf("%w: un client avec l'email %s existe déjà", domain.ErrClientExists, input.Email)
	} else if err != nil && !errors.Is(err, domain.ErrClientNotFound) {
		return nil, fmt.Errorf("create client: %w", err)
	}

	client := &domain.Client{
		FirstName:      input.FirstName,
		LastName:       input.LastName,
		Email:          input.Email,
		Phone:          input.Phone,
		CompanyName:    input.CompanyName,
		SalesContactID: salesContactID,
	}

	created, err := s.clients.Create(ctx, client)
	if err != nil {
		return nil, fmt.Errorf("create client: %w", err)
	}

	s.log.Info().
		Uint("client_id", created.ID).
		Uint("sales_contact_id", salesContactID).
		Str("company", created.CompanyName).
		Msg("client created")

	return created, nil
}

func (s *ClientService) resolveSalesContact(ctx context.Context, actor *domain.User, explicit *uint) (uint, error) {
	if explicit == nil {
		if actor.Department == domain.DepartmentCommercial {
			return actor.ID, nil
		}
		return 0, fmt.Errorf("%w: l'ID du commercial est requis", domain.ErrValidation)
	}

	contact, err := s.users.FindByID(ctx, *explicit)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return 0, fmt.Errorf("%w: commercial avec l'ID %d introuvable", domain.ErrUserNotFound, *explicit)
		}
		return 0, fmt.Errorf("resolve sales contact: %w", err)
	}
	if err := domain.ValidateSalesUser(contact); err != nil {
		return 0, err
	}
	return contact.ID, nil
}

// Update applies a partial update. COMMERCIAL actors may only update their
// own clients; GESTION may update any.
func (s *ClientService) Update(ctx context.Context, actor *domain.User, clientID uint, input ports.UpdateClientInput) (*domain.Client, error) {
	client, err := s.clients.FindByID(ctx, clientID)
	if err != nil {
		return nil, err
	}

	if actor.Department == domain.DepartmentCommercial && client.SalesContactID != actor.ID {
		s.log.Warn().Uint("client_id", clientID).Uint("actor_id", actor.ID).Msg("client update denied")
		return nil, fmt.Errorf("%w: vous ne pouvez modifier que vos propres clients", domain.ErrForbidden)
	}

	if input.FirstName != nil {
		if len(*input.FirstName) < 2 {
			return nil, fmt.Errorf("%w: le prénom doit avoir au moins 2 caractères", domain.ErrValidation)
		}
		client.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		if len(*input.LastName) < 2 {
			return nil, fmt.Errorf("%w: le nom doit avoir au moins 2 caractères", domain.ErrValidation)
		}
		client.LastName = *input.LastName
	}
	if input.Email != nil {
		client.Email = *input.Email
	}
	if input.Phone != nil {
		client.Phone = *input.Phone
	}
	if input.CompanyName != nil {
		client.CompanyName = *input.CompanyName
	}

	updated, err := s.clients.Update(ctx, client)
	if err != nil {
		return nil, fmt.Errorf("update client: %w", err)
	}

	s.log.Info().Uint("client_id", updated.ID).Msg("client updated")
	return updated, nil
}

func (s *ClientService) Get(ctx context.Context, clientID uint) (*domain.Client, error) {
	return s.clients.FindByID(ctx, clientID)
}

func (s *ClientService) List(ctx context.Context) ([]*domain.Client, error) {
	return s.clients.List(ctx)
}

// ListMine returns the clients whose sales contact is the actor.
func (s *ClientService) ListMine(ctx context.Context, actor *domain.User) ([]*domain.Client, error) {
	all, err := s.clients.List(ctx)
	if err != nil {
		return nil, err
	}
	mine := make([]*domain.Client, 0, len(all))
	for _, c := range all {
		if c.SalesContactID == actor.ID {
			mine = append(mine, c)
		}
	}
	return mine, nil
}
