package progress

// ExamScore is one completed practice-exam result. History is append-only
// and chronological; records are never mutated after insertion.
type ExamScore struct {
	// Day is the curriculum day the exam was taken for.
	Day int `json:"day"`

	// Date is the ISO calendar date ("2006-01-02") the exam was taken.
	Date string `json:"date"`

	// Score is the number of correct answers.
	Score int `json:"score"`

	// TotalQuestions is the number of questions in the exam. Always > 0.
	TotalQuestions int `json:"totalQuestions"`

	// Topics lists the topic titles the exam covered.
	Topics []string `json:"topics"`
}

// Percent returns the exam result as a percentage (0-100).
func (e ExamScore) Percent() float64 {
	if e.TotalQuestions == 0 {
		return 0
	}
	return float64(e.Score) / float64(e.TotalQuestions) * 100
}
