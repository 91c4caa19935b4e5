package store

import (
	"sync"

	"smartcareer/internal/model"
)

// ResultStore is the append-only quiz result log. Entries are never
// mutated or deleted; ordering between different users' appends is
// unspecified, but each append is atomic.
type ResultStore interface {
	Append(result *model.QuizResult)
	ByUser(email string) []model.QuizResult
	Len() int
}

type resultStore struct {
	mu      sync.RWMutex
	results []model.QuizResult
}

// NewResultStore creates an empty in-memory result log
func NewResultStore() ResultStore {
	return &resultStore{}
}

// Append adds one result record to the log
func (s *resultStore) Append(result *model.QuizResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results = append(s.results, *result)
}

// ByUser returns the result records for one user in append order
func (s *resultStore) ByUser(email string) []model.QuizResult {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []model.QuizResult
	for _, r := range s.results {
		if r.UserEmail == email {
			out = append(out, r)
		}
	}
	return out
}

// Len returns the total number of logged results
func (s *resultStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.results)
}
