package service

import (
	"context"

	"github.com/epicevents/crm-system/internal/core/domain"
	"github.com/epicevents/crm-system/internal/core/ports"
)

// In-memory stand-ins for the repository ports and the token store, shared
// by the service tests.

type stubUserRepo struct {
	users  map[uint]*domain.User
	nextID uint
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[uint]*domain.User), nextID: 1}
}

func (r *stubUserRepo) add(u *domain.User) *domain.User {
	if u.ID == 0 {
		u.ID = r.nextID
	}
	if u.ID >= r.nextID {
		r.nextID = u.ID + 1
	}
	clone := *u
	r.users[u.ID] = &clone
	return u
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == user.Username || u.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	return cloneUser(r.add(user)), nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id uint) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Update(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, ok := r.users[user.ID]; !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *user
	r.users[user.ID] = &clone
	return cloneUser(user), nil
}

func (r *stubUserRepo) Delete(_ context.Context, id uint) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *stubUserRepo) List(_ context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, cloneUser(u))
	}
	return out, nil
}

type stubClientRepo struct {
	clients map[uint]*domain.Client
	nextID  uint
}

func newStubClientRepo() *stubClientRepo {
	return &stubClientRepo{clients: make(map[uint]*domain.Client), nextID: 1}
}

func (r *stubClientRepo) add(c *domain.Client) *domain.Client {
	if c.ID == 0 {
		c.ID = r.nextID
	}
	if c.ID >= r.nextID {
		r.nextID = c.ID + 1
	}
	clone := *c
	r.clients[c.ID] = &clone
	return c
}

func cloneClient(c *domain.Client) *domain.Client {
	if c == nil {
		return nil
	}
	clone := *c
	return &clone
}

func (r *stubClientRepo) Create(_ context.Context, client *domain.Client) (*domain.Client, error) {
	return cloneClient(r.add(client)), nil
}

func (r *stubClientRepo) FindByID(_ context.Context, id uint) (*domain.Client, error) {
	c, ok := r.clients[id]
	if !ok {
		return nil, domain.ErrClientNotFound
	}
	return cloneClient(c), nil
}

func (r *stubClientRepo) FindByEmail(_ context.Context, email string) (*domain.Client, error) {
	for _, c := range r.clients {
		if c.Email == email {
			return cloneClient(c), nil
		}
	}
	return nil, domain.ErrClientNotFound
}

func (r *stubClientRepo) Update(_ context.Context, client *domain.Client) (*domain.Client, error) {
	if _, ok := r.clients[client.ID]; !ok {
		return nil, domain.ErrClientNotFound
	}
	clone := *client
	r.clients[client.ID] = &clone
	return cloneClient(client), nil
}

func (r *stubClientRepo) List(_ context.Context) ([]*domain.Client, error) {
	out := make([]*domain.Client, 0, len(r.clients))
	for _, c := range r.clients {
		out = append(out, cloneClient(c))
	}
	return out, nil
}

type stubContractRepo struct {
	contracts map[uint]*domain.Contract
	clients   *stubClientRepo
	nextID    uint
}

func newStubContractRepo(clients *stubClientRepo) *stubContractRepo {
	return &stubContractRepo{contracts: make(map[uint]*domain.Contract), clients: clients, nextID: 1}
}

func (r *stubContractRepo) add(c *domain.Contract) *domain.Contract {
	if c.ID == 0 {
		c.ID = r.nextID
	}
	if c.ID >= r.nextID {
		r.nextID = c.ID + 1
	}
	clone := *c
	clone.Client = nil
	r.contracts[c.ID] = &clone
	return c
}

func (r *stubContractRepo) Create(_ context.Context, contract *domain.Contract) (*domain.Contract, error) {
	r.add(contract)
	return contract, nil
}

// FindByID preloads the client, mirroring the gorm repository.
func (r *stubContractRepo) FindByID(_ context.Context, id uint) (*domain.Contract, error) {
	c, ok := r.contracts[id]
	if !ok {
		return nil, domain.ErrContractNotFound
	}
	clone := *c
	if r.clients != nil {
		if client, ok := r.clients.clients[c.ClientID]; ok {
			clone.Client = cloneClient(client)
		}
	}
	return &clone, nil
}

func (r *stubContractRepo) Update(_ context.Context, contract *domain.Contract) (*domain.Contract, error) {
	if _, ok := r.contracts[contract.ID]; !ok {
		return nil, domain.ErrContractNotFound
	}
	clone := *contract
	clone.Client = nil
	r.contracts[contract.ID] = &clone
	return contract, nil
}

func (r *stubContractRepo) List(_ context.Context, filter ports.ContractFilter) ([]*domain.Contract, error) {
	out := make([]*domain.Contract, 0, len(r.contracts))
	for _, c := range r.contracts {
		if filter.OnlySigned && !c.IsSigned {
			continue
		}
		if filter.OnlyUnsigned && c.IsSigned {
			continue
		}
		if filter.OnlyUnpaid && c.RemainingAmount.IsZero() {
			continue
		}
		if filter.ClientID != 0 && c.ClientID != filter.ClientID {
			continue
		}
		clone := *c
		out = append(out, &clone)
	}
	return out, nil
}

type stubEventRepo struct {
	events map[uint]*domain.Event
	nextID uint
}

func newStubEventRepo() *stubEventRepo {
	return &stubEventRepo{events: make(map[uint]*domain.Event), nextID: 1}
}

func (r *stubEventRepo) add(e *domain.Event) *domain.Event {
	if e.ID == 0 {
		e.ID = r.nextID
	}
	if e.ID >= r.nextID {
		r.nextID = e.ID + 1
	}
	clone := *e
	r.events[e.ID] = &clone
	return e
}

func (r *stubEventRepo) Create(_ context.Context, event *domain.Event) (*domain.Event, error) {
	r.add(event)
	return event, nil
}

func (r *stubEventRepo) FindByID(_ context.Context, id uint) (*domain.Event, error) {
	e, ok := r.events[id]
	if !ok {
		return nil, domain.ErrEventNotFound
	}
	clone := *e
	return &clone, nil
}

func (r *stubEventRepo) Update(_ context.Context, event *domain.Event) (*domain.Event, error) {
	if _, ok := r.events[event.ID]; !ok {
		return nil, domain.ErrEventNotFound
	}
	clone := *event
	r.events[event.ID] = &clone
	return event, nil
}

func (r *stubEventRepo) List(_ context.Context, filter ports.EventFilter) ([]*domain.Event, error) {
	out := make([]*domain.Event, 0, len(r.events))
	for _, e := range r.events {
		if filter.OnlyUnassigned && e.SupportContactID != nil {
			continue
		}
		if filter.SupportContactID != 0 && (e.SupportContactID == nil || *e.SupportContactID != filter.SupportContactID) {
			continue
		}
		if filter.ContractID != 0 && e.ContractID != filter.ContractID {
			continue
		}
		clone := *e
		out = append(out, &clone)
	}
	return out, nil
}

// memTokenStore implements TokenStore in memory.
type memTokenStore struct {
	token string
	saved bool
}

func (s *memTokenStore) Save(token string) error {
	s.token = token
	s.saved = true
	return nil
}

func (s *memTokenStore) Load() (string, error) {
	if !s.saved {
		return "", nil
	}
	return s.token, nil
}

func (s *memTokenStore) Delete() error {
	s.token = ""
	s.saved = false
	return nil
}

func (s *memTokenStore) Exists() bool {
	return s.saved
}
