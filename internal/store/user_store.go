package store

import (
	"sync"

	"smartcareer/internal/model"
)

// UserStore holds registered accounts for the process lifetime, keyed by
// normalized email.
type UserStore interface {
	Create(user *model.User) bool
	GetByEmail(email string) *model.User
	Count() int
}

type userStore struct {
	mu    sync.RWMutex
	users map[string]*model.User
}

// NewUserStore creates an empty in-memory user store
func NewUserStore() UserStore {
	return &userStore{
		users: make(map[string]*model.User),
	}
}

// Create inserts the user unless the email is already registered.
// Returns false on duplicate.
func (s *userStore) Create(user *model.User) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[user.Email]; exists {
		return false
	}
	s.users[user.Email] = user
	return true
}

// GetByEmail returns the user for the email, or nil if not registered
func (s *userStore) GetByEmail(email string) *model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.users[email]
}

// Count returns the number of registered accounts
func (s *userStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}
