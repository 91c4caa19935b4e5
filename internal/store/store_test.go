package store

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"smartcareer/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserStore_DuplicateCreate(t *testing.T) {
	s := NewUserStore()

	ok := s.Create(&model.User{Email: "priya@example.com", Name: "Priya", CreatedAt: time.Now()})
	require.True(t, ok)
	assert.Equal(t, 1, s.Count())

	ok = s.Create(&model.User{Email: "priya@example.com", Name: "Other"})
	assert.False(t, ok)
	assert.Equal(t, 1, s.Count())

	// The first record survives the rejected duplicate.
	assert.Equal(t, "Priya", s.GetByEmail("priya@example.com").Name)
	assert.Nil(t, s.GetByEmail("nobody@example.com"))
}

func TestProgressStore_ConcurrentIncrements(t *testing.T) {
	s := NewProgressStore()

	const workers = 20
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.RecordQuiz("priya@example.com", 3)
			s.RecordRoadmapView("priya@example.com")
		}()
	}
	wg.Wait()

	p := s.Get("priya@example.com")
	assert.Equal(t, workers, p.QuizzesTaken)
	assert.Equal(t, 3, p.MatchesFound)
	assert.Equal(t, workers, p.RoadmapsViewed)

	// Unknown users read zero counters, without creating a record.
	assert.Equal(t, model.Progress{}, s.Get("nobody@example.com"))
}

func TestResultStore_AppendOrderPerUser(t *testing.T) {
	s := NewResultStore()

	for i := 0; i < 3; i++ {
		s.Append(&model.QuizResult{
			UserEmail: "priya@example.com",
			Careers:   []string{fmt.Sprintf("career-%d", i)},
			Timestamp: time.Now(),
		})
	}
	s.Append(&model.QuizResult{UserEmail: "other@example.com"})

	assert.Equal(t, 4, s.Len())

	mine := s.ByUser("priya@example.com")
	require.Len(t, mine, 3)
	for i, r := range mine {
		assert.Equal(t, fmt.Sprintf("career-%d", i), r.Careers[0])
	}

	assert.Empty(t, s.ByUser("nobody@example.com"))
}

func TestFeedbackStore_AllReturnsCopy(t *testing.T) {
	s := NewFeedbackStore()
	s.Append(&model.Feedback{ID: "fb-1", Name: "Priya"})

	out := s.All()
	require.Len(t, out, 1)
	out[0].Name = "mutated"

	assert.Equal(t, "Priya", s.All()[0].Name)
}
