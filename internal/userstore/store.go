// Package userstore looks up the users behind authorized requests.
package userstore

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrUserNotFound is returned when no user exists for an id.
var ErrUserNotFound = errors.New("user not found")

// User is a stored user profile.
type User struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

// Store reads and writes users by id.
type Store interface {
	Get(ctx context.Context, id uuid.UUID) (*User, error)
	Put(ctx context.Context, user *User) error
}

// MemoryStore is a Store kept in process memory.
type MemoryStore struct {
	mu    sync.RWMutex
	users map[uuid.UUID]User
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{users: make(map[uuid.UUID]User)}
}

// Get implements Store.
func (s *MemoryStore) Get(_ context.Context, id uuid.UUID) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	return &user, nil
}

// Put implements Store.
func (s *MemoryStore) Put(_ context.Context, user *User) error {
	if user == nil || user.ID == uuid.Nil {
		return errors.New("user id is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[user.ID] = *user
	return nil
}
