package exam

import (
	"fmt"
	"strings"

	"github.com/rickyd/lucy/internal/curriculum"
)

const systemPrompt = `You are an exam generation API for a programming and aptitude study tracker.

Rules:
- Generate multiple-choice questions strictly scoped to the topics given. If a day covers "Variables", do not ask about loops or classes.
- Every question has exactly 4 options with exactly one correct answer. Distractors should reflect plausible mistakes, not random values.
- Code questions go in the codeSnippet field as plain text; keep the question field readable without it where possible.
- Explanations are one or two sentences, written for a learner revising the topic.
- Number questions sequentially from 1.`

// buildUserMessage constructs the generation request for the given day's
// topics. The 10/5/5 category split mirrors the daily mock exam format.
func buildUserMessage(topics []curriculum.Topic, byTrack map[string]curriculum.Topic, cfg Config) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Generate a daily mock exam with exactly %d multiple-choice questions.\n\n", cfg.QuestionCount)

	b.WriteString("Strict topic scope (do not deviate):\n")
	for i, track := range []string{curriculum.TrackPython, curriculum.TrackDSA, curriculum.TrackAptitude} {
		t, ok := byTrack[track]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "%d. %s (%s)\n", i+1, t.Title, trackLabel(track))
		fmt.Fprintf(&b, "   Context: %s\n", t.Description)
		fmt.Fprintf(&b, "   Key concepts: %s\n", strings.Join(t.Tasks, ", "))
	}

	b.WriteString("\nDistribution:\n")
	b.WriteString("- 10 questions: python\n")
	b.WriteString("- 5 questions: dsa\n")
	b.WriteString("- 5 questions: aptitude\n")

	return b.String()
}

func trackLabel(track string) string {
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
