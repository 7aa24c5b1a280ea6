// Package mentor is the AI study-mentor: it distills the learner's progress
// into a context block and answers questions through the LLM provider with
// that context injected.
package mentor

import (
	"fmt"
	"math"
	"strings"

	"github.com/rickyd/lucy/internal/curriculum"
	"github.com/rickyd/lucy/internal/progress"
)

// TopicSummary is one of today's topics as presented to the mentor.
type TopicSummary struct {
	Title       string
	Description string
	Category    string
}

// Context is the progress snapshot injected into the mentor's prompt.
type Context struct {
	CurrentDay   int
	Streak       int
	TodaysTopics []TopicSummary

	// AverageScore is the mean exam percentage over the whole history.
	AverageScore int

	// LastExamPercent is the most recent exam's percentage; HasLastExam
	// is false when no exam was taken yet.
	LastExamPercent int
	HasLastExam     bool

	TotalExams int
	Insights   []string
}

// BuildContext assembles the mentor context from the learner's progress.
// Topics come from exact day matches in the python/dsa/aptitude tracks; a
// day past a track's end simply contributes no topic (a "review day").
func BuildContext(day, streak int, scores []progress.ExamScore) Context {
	c := Context{
		CurrentDay: day,
		Streak:     streak,
		TotalExams: len(scores),
	}

	for _, track := range []string{curriculum.TrackPython, curriculum.TrackDSA, curriculum.TrackAptitude} {
		if t, ok := curriculum.TopicForDay(track, day); ok {
			c.TodaysTopics = append(c.TodaysTopics, TopicSummary{
				Title:       t.Title,
				Description: t.Description,
				Category:    trackCategory(track),
			})
		}
	}

	if len(scores) > 0 {
		var total float64
		for _, rec := range scores {
			total += rec.Percent()
		}
		c.AverageScore = int(math.Floor(total/float64(len(scores)) + 0.5))

		last := scores[len(scores)-1]
		c.LastExamPercent = int(math.Floor(last.Percent() + 0.5))
		c.HasLastExam = true
	}

	c.Insights = buildInsights(c)
	return c
}

// buildInsights derives short encouragement lines from the snapshot.
func buildInsights(c Context) []string {
	var insights []string

	if c.Streak >= 7 {
		insights = append(insights, fmt.Sprintf("Amazing! You've maintained a %d-day streak!", c.Streak))
	}

	switch {
	case c.AverageScore >= 80 && c.TotalExams > 0:
		insights = append(insights, "You're performing excellently! Keep it up!")
	case c.AverageScore >= 60 && c.TotalExams > 0:
		insights = append(insights, "Good progress! A bit more practice will get you to excellence.")
	case c.TotalExams > 0:
		insights = append(insights, "Keep practicing! Consistency is key to improvement.")
	}

	if c.HasLastExam && c.LastExamPercent >= 90 {
		insights = append(insights, "Outstanding performance on your last exam!")
	}

	return insights
}

// Prompt renders the context block injected into the mentor's system prompt.
func (c Context) Prompt() string {
	var topics []string
	for _, t := range c.TodaysTopics {
		topics = append(topics, fmt.Sprintf("%s (%s)", t.Title, t.Category))
	}
	topicsList := strings.Join(topics, ", ")
	if topicsList == "" {
		topicsList = "Review day"
	}

	lastExam := "Not taken yet"
	if c.HasLastExam {
		lastExam = fmt.Sprintf("%d%%", c.LastExamPercent)
	}

	var b strings.Builder
	b.WriteString("LEARNER'S CURRENT PROGRESS:\n")
	fmt.Fprintf(&b, "- Day %d of the learning journey\n", c.CurrentDay)
	fmt.Fprintf(&b, "- Current Streak: %d days\n", c.Streak)
	fmt.Fprintf(&b, "- Today's Topics: %s\n", topicsList)
	b.WriteString("\nRECENT PERFORMANCE:\n")
	fmt.Fprintf(&b, "- Average Score: %d%%\n", c.AverageScore)
	fmt.Fprintf(&b, "- Last Exam: %s\n", lastExam)
	fmt.Fprintf(&b, "- Total Exams Completed: %d\n", c.TotalExams)

	if len(c.Insights) > 0 {
		b.WriteString("\nINSIGHTS:\n")
		for _, in := range c.Insights {
			fmt.Fprintf(&b, "- %s\n", in)
		}
	}

	b.WriteString("\nWhen asked about progress, analytics, or what to study, use this specific data to provide personalized insights.\nBe encouraging and specific in your responses.")
	return b.String()
}

func trackCategory(track string) string {
	switch track {
	case curriculum.TrackPython:
		return "Python"
	case curriculum.TrackDSA:
		return "DSA"
	case curriculum.TrackAptitude:
		return "Aptitude"
	default:
		return track
	}
}
