package store

import (
	"sync"

	"smartcareer/internal/model"
)

// ProgressStore keeps per-user activity counters. The record is created
// on first update and incremented thereafter; increments are atomic
// under the store lock so concurrent submissions by the same user never
// lose an update.
type ProgressStore interface {
	RecordQuiz(email string, matchesFound int)
	RecordRoadmapView(email string)
	Get(email string) model.Progress
}

type progressStore struct {
	mu       sync.RWMutex
	progress map[string]*model.Progress
}

// NewProgressStore creates an empty in-memory progress store
func NewProgressStore() ProgressStore {
	return &progressStore{
		progress: make(map[string]*model.Progress),
	}
}

func (s *progressStore) get(email string) *model.Progress {
	p, ok := s.progress[email]
	if !ok {
		p = &model.Progress{}
		s.progress[email] = p
	}
	return p
}

// RecordQuiz increments quizzes_taken and sets matches_found for the user
func (s *progressStore) RecordQuiz(email string, matchesFound int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.get(email)
	p.QuizzesTaken++
	p.MatchesFound = matchesFound
}

// RecordRoadmapView increments roadmaps_viewed for the user
func (s *progressStore) RecordRoadmapView(email string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.get(email).RoadmapsViewed++
}

// Get returns a copy of the user's progress; zero counters if the user
// has no record yet
func (s *progressStore) Get(email string) model.Progress {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if p, ok := s.progress[email]; ok {
		return *p
	}
	return model.Progress{}
}
