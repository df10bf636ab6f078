package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/epicevents/crm-system/internal/core/domain"
	"github.com/epicevents/crm-system/internal/core/ports"
)

// UserService implements employee administration. All operations are gated
// to GESTION by the CLI guard.
type UserService struct {
	users  ports.UserRepository
	hasher *PasswordHasher
	log    zerolog.Logger
}

func NewUserService(users ports.UserRepository, hasher *PasswordHasher, log zerolog.Logger) *UserService {
	return &UserService{users: users, hasher: hasher, log: log}
}

// Create registers a new employee with a hashed password.
func (s *UserService) Create(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	if !input.Department.Valid() {
		return nil, fmt.Errorf("%w: département inconnu: %s", domain.ErrValidation, input.Department)
	}

	if err := s.checkUnique(ctx, input.Username, input.Email); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Phone:        input.Phone,
		Department:   input.Department,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.log.Info().
		Uint("user_id", created.ID).
		Str("username", created.Username).
		Str("department", string(created.Department)).
		Msg("user created")

	return created, nil
}

func (s *UserService) checkUnique(ctx context.Context, username, email string) error {
	if _, err := s.users.FindByUsername(ctx, username); err == nil {
		return fmt.Errorf("%w: le nom d'utilisateur %s est déjà utilisé", domain.ErrUserExists, username)
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return fmt.Errorf("check username: %w", err)
	}
	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return fmt.Errorf("%w: l'email %s est déjà utilisé", domain.ErrUserExists, email)
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return fmt.Errorf("check email: %w", err)
	}
	return nil
}

// Update applies a partial update. A new password is re-hashed; the
// department is immutable here (changing it requires recreating the user).
func (s *UserService) Update(ctx context.Context, userID uint, input ports.UpdateUserInput) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.Email != nil {
		user.Email = *input.Email
	}
	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}
	if input.Phone != nil {
		user.Phone = *input.Phone
	}
	if input.Password != nil {
		hash, err := s.hasher.Hash(*input.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}

	updated, err := s.users.Update(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}

	s.log.Info().Uint("user_id", updated.ID).Msg("user updated")
	return updated, nil
}

// Delete removes an employee.
func (s *UserService) Delete(ctx context.Context, userID uint) error {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return err
	}
	if err := s.users.Delete(ctx, userID); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	s.log.Info().Uint("user_id", userID).Msg("user deleted")
	return nil
}

func (s *UserService) Get(ctx context.Context, userID uint) (*domain.User, error) {
	return s.users.FindByID(ctx, userID)
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.users.List(ctx)
}
