package model

import "time"

// AnswerSet maps a question identifier to the chosen option identifier.
// Keys are matched case-sensitively; unknown keys are ignored apart from
// the generic q-prefixed fallback rule.
type AnswerSet map[string]string

// SubmitQuizRequest is the request body for quiz submission
type SubmitQuizRequest struct {
	Answers AnswerSet `json:"answers"`
}

// TopCareer is one entry of the ranked quiz result, enriched from the
// career-path catalog
type TopCareer struct {
	Name        string   `json:"name"`
	Score       int      `json:"score"` // match percentage, 0-100
	Description string   `json:"description"`
	Salary      string   `json:"salary"`
	Skills      []string `json:"skills"`
}

// QuizResultResponse is returned from quiz submission
type QuizResultResponse struct {
	TopCareers []TopCareer `json:"top_careers"`
}

// QuizResult is one scored submission appended to the result log
type QuizResult struct {
	UserEmail string         `json:"user_email"`
	Careers   []string       `json:"careers"`
	Scores    map[string]int `json:"scores"`
	Timestamp time.Time      `json:"timestamp"`
}

// Progress holds per-user activity counters, created on first quiz
// submission and never reset
type Progress struct {
	QuizzesTaken   int `json:"quizzes_taken"`
	MatchesFound   int `json:"matches_found"`
	RoadmapsViewed int `json:"roadmaps_viewed"`
}

// UserStats is returned from the user stats endpoint
type UserStats struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Joined         string `json:"joined"`
	QuizzesTaken   int    `json:"quizzes_taken"`
	MatchesFound   int    `json:"matches_found"`
	RoadmapsViewed int    `json:"roadmaps_viewed"`
}
