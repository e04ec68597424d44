package repository

import (
	"context"
	"errors"
	"sync"

	"github.com/spec-kit/bookshop-service/internal/domain"
)

var (
	ErrUserExists   = errors.New("user already exists")
	ErrUserNotFound = errors.New("user not found")
)

// UserRepository defines access to registered identities.
type UserRepository interface {
	Create(ctx context.Context, identity *domain.Identity) error
	GetByUsername(ctx context.Context, username string) (*domain.Identity, error)
	Exists(ctx context.Context, username string) bool
}

type userRepository struct {
	mu    sync.RWMutex
	users map[string]domain.Identity
}

// NewUserRepository returns an in-memory implementation.
func NewUserRepository() UserRepository {
	return &userRepository{users: make(map[string]domain.Identity)}
}

// Create inserts identity unless the username is already taken.
func (r *userRepository) Create(_ context.Context, identity *domain.Identity) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[identity.Username]; exists {
		return ErrUserExists
	}
	r.users[identity.Username] = *identity
	return nil
}

func (r *userRepository) GetByUsername(_ context.Context, username string) (*domain.Identity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	identity, ok := r.users[username]
	if !ok {
		return nil, ErrUserNotFound
	}
	return &identity, nil
}

func (r *userRepository) Exists(_ context.Context, username string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.users[username]
	return ok
}
