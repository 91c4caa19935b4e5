package store

import (
	"sync"

	"smartcareer/internal/model"
)

// FeedbackStore holds submitted feedback for the process lifetime
type FeedbackStore interface {
	Append(fb *model.Feedback)
	All() []model.Feedback
}

type feedbackStore struct {
	mu      sync.RWMutex
	entries []model.Feedback
}

// NewFeedbackStore creates an empty in-memory feedback store
func NewFeedbackStore() FeedbackStore {
	return &feedbackStore{}
}

// Append adds one feedback entry
func (s *feedbackStore) Append(fb *model.Feedback) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, *fb)
}

// All returns a copy of every stored entry in submission order
func (s *feedbackStore) All() []model.Feedback {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Feedback, len(s.entries))
	copy(out, s.entries)
	return out
}
