package service

import (
	"sort"
	"strings"
	"time"

	"smartcareer/internal/catalog"
	"smartcareer/internal/model"
	"smartcareer/internal/store"
)

// scoreDelta is one career's contribution from a matched rule
type scoreDelta struct {
	career string
	points int
}

// scoreRule awards its deltas when the answer set contains the exact
// question/answer pair. Rules apply independently and contributions sum.
type scoreRule struct {
	question string
	answer   string
	deltas   []scoreDelta
}

// scoreRules is the additive scoring rubric for the assessment quiz
var scoreRules = []scoreRule{
	// q1: preferred type of work
	{"q1", "building_tech", []scoreDelta{{"Software Developer", 20}, {"AI/ML Engineer", 15}, {"Cloud Architect", 15}}},
	{"q1", "analyzing_data", []scoreDelta{{"Data Scientist", 20}, {"Business Analyst", 15}, {"Product Manager", 10}}},
	{"q1", "creating_visual", []scoreDelta{{"UX/UI Designer", 20}, {"Digital Marketing Specialist", 10}}},
	{"q1", "communicating", []scoreDelta{{"Digital Marketing Specialist", 20}, {"Content Writer", 15}, {"Product Manager", 10}}},

	// q2: skill the user wants to develop
	{"q2", "programming", []scoreDelta{{"Software Developer", 15}, {"AI/ML Engineer", 15}, {"Cloud Architect", 15}}},
	{"q2", "data_analytics", []scoreDelta{{"Data Scientist", 15}, {"Business Analyst", 15}}},
	{"q2", "creative_design", []scoreDelta{{"UX/UI Designer", 15}}},
	{"q2", "cybersecurity", []scoreDelta{{"Cybersecurity Expert", 20}}},

	// q3: work environment
	{"q3", "remote", allCareers(5)},

	// q4: subject interest
	{"q4", "mathematics", []scoreDelta{{"Data Scientist", 10}, {"AI/ML Engineer", 10}}},
	{"q4", "science_tech", []scoreDelta{{"Software Developer", 10}, {"Cloud Architect", 10}}},
	{"q4", "arts_design", []scoreDelta{{"UX/UI Designer", 10}}},
	{"q4", "business", []scoreDelta{{"Business Analyst", 10}, {"Product Manager", 10}}},
}

// ruleTableQuestions are the questions covered by scoreRules; any other
// q-prefixed key falls through to the generic affirmative rule.
var ruleTableQuestions = map[string]bool{"q1": true, "q2": true, "q3": true, "q4": true}

// affirmativeAnswers trigger the generic +2 across all careers
var affirmativeAnswers = map[string]bool{"yes": true, "very": true, "high": true}

func allCareers(points int) []scoreDelta {
	deltas := make([]scoreDelta, len(catalog.CareerNames))
	for i, name := range catalog.CareerNames {
		deltas[i] = scoreDelta{name, points}
	}
	return deltas
}

// QuizService scores career assessment submissions and records the
// results
type QuizService struct {
	results  store.ResultStore
	progress store.ProgressStore
}

// NewQuizService creates a new quiz service
func NewQuizService(results store.ResultStore, progress store.ProgressStore) *QuizService {
	return &QuizService{
		results:  results,
		progress: progress,
	}
}

// scoreAnswers runs the rule table over the answer set and returns the
// raw score accumulator with every career present and ≥ 0
func scoreAnswers(answers model.AnswerSet) map[string]int {
	scores := make(map[string]int, len(catalog.CareerNames))
	for _, name := range catalog.CareerNames {
		scores[name] = 0
	}

	for _, rule := range scoreRules {
		if answers[rule.question] == rule.answer {
			for _, d := range rule.deltas {
				scores[d.career] += d.points
			}
		}
	}

	// Generic rule: any extra q-prefixed question answered affirmatively
	// nudges every career equally.
	for key, value := range answers {
		if strings.HasPrefix(key, "q") && !ruleTableQuestions[key] && affirmativeAnswers[value] {
			for _, name := range catalog.CareerNames {
				scores[name] += 2
			}
		}
	}

	return scores
}

// matchPercentages converts raw scores into 0-100 match percentages.
// The +20 softening constant keeps even the top scorer below 100% in
// typical runs.
func matchPercentages(scores map[string]int) map[string]int {
	if len(scores) == 0 {
		// Defensive only: the accumulator always carries the fixed careers.
		fallback := make(map[string]int, len(catalog.CareerNames))
		for _, name := range catalog.CareerNames {
			fallback[name] = 50
		}
		return fallback
	}

	maxScore := 0
	for _, s := range scores {
		if s > maxScore {
			maxScore = s
		}
	}

	percentages := make(map[string]int, len(scores))
	for career, s := range scores {
		p := s * 100 / (maxScore + 20)
		if p > 100 {
			p = 100
		}
		percentages[career] = p
	}
	return percentages
}

// topCareers picks the three best matches, stable on catalog order for
// ties, and enriches them from the career-path catalog
func topCareers(percentages map[string]int) []model.TopCareer {
	ranked := make([]model.TopCareer, 0, len(catalog.CareerNames))
	for _, name := range catalog.CareerNames {
		ranked = append(ranked, model.TopCareer{Name: name, Score: percentages[name]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	if len(ranked) > 3 {
		ranked = ranked[:3]
	}

	for i := range ranked {
		path, ok := catalog.CareerPaths[ranked[i].Name]
		if !ok {
			ranked[i].Salary = "N/A"
			ranked[i].Skills = []string{}
			continue
		}
		ranked[i].Description = path.Description
		ranked[i].Salary = path.SalaryRange
		ranked[i].Skills = path.SkillsRequired
		if ranked[i].Skills == nil {
			ranked[i].Skills = []string{}
		}
	}
	return ranked
}

// Score evaluates the answer set for the user, appends a result record,
// and updates the user's progress counters
func (s *QuizService) Score(userEmail string, answers model.AnswerSet) (*model.QuizResultResponse, error) {
	scores := scoreAnswers(answers)
	percentages := matchPercentages(scores)
	top := topCareers(percentages)

	names := make([]string, len(top))
	topScores := make(map[string]int, len(top))
	for i, c := range top {
		names[i] = c.Name
		topScores[c.Name] = c.Score
	}

	s.results.Append(&model.QuizResult{
		UserEmail: userEmail,
		Careers:   names,
		Scores:    topScores,
		Timestamp: time.Now(),
	})
	s.progress.RecordQuiz(userEmail, len(top))

	return &model.QuizResultResponse{TopCareers: top}, nil
}
