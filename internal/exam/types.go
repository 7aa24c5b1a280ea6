// Package exam generates and grades the AI daily mock exam: twenty
// multiple-choice questions scoped to the learner's current curriculum day.
package exam

import "github.com/rickyd/lucy/internal/curriculum"

// Category labels a question's track.
type Category string

const (
	CategoryPython   Category = "python"
	CategoryDSA      Category = "dsa"
	CategoryAptitude Category = "aptitude"
)

// Question is one generated multiple-choice question.
type Question struct {
	// ID numbers the question within its exam, starting at 1.
	ID int `json:"id"`

	// Category is the track the question belongs to.
	Category Category `json:"category"`

	// Text is the question prompt.
	Text string `json:"question"`

	// CodeSnippet is an optional code block the question refers to.
	CodeSnippet string `json:"codeSnippet,omitempty"`

	// Options are the four answer choices.
	Options []string `json:"options"`

	// CorrectOptionIndex is the 0-based index of the right option.
	CorrectOptionIndex int `json:"correctOptionIndex"`

	// Explanation is a short explanation shown after grading.
	Explanation string `json:"explanation"`
}

// Exam is a generated set of questions plus the topics they were scoped to.
type Exam struct {
	Day       int
	Questions []Question
	Topics    []curriculum.Topic
}

// TopicTitles returns the titles of the topics the exam covered, for the
// exam-score record.
func (e *Exam) TopicTitles() []string {
	titles := make([]string, len(e.Topics))
	for i, t := range e.Topics {
		titles[i] = t.Title
	}
	return titles
}

// Config holds exam generation parameters.
type Config struct {
	// QuestionCount is the total number of questions to request.
	QuestionCount int

	// MaxTokens caps the generation response size.
	MaxTokens int

	// Temperature for generation.
	Temperature float64

	// PassPercent is the minimum score percentage that advances the
	// curriculum day.
	PassPercent int
}

// DefaultConfig returns the production exam parameters: 20 questions
// (10 Python / 5 DSA / 5 aptitude), pass at 40%.
func DefaultConfig() Config {
	return Config{
		QuestionCount: 20,
		MaxTokens:     4000,
		Temperature:   0.5,
		PassPercent:   40,
	}
}

// Passed reports whether a score meets the pass gate for the given total.
func (c Config) Passed(score, total int) bool {
	if total <= 0 {
		return false
	}
	return score*100 >= c.PassPercent*total
}

// Grade counts correct answers. answers maps question ID to the chosen
// option index; unanswered questions count as wrong.
func Grade(questions []Question, answers map[int]int) int {
	score := 0
	for _, q := range questions {
		if chosen, ok := answers[q.ID]; ok && chosen == q.CorrectOptionIndex {
			score++
		}
	}
	return score
}
