package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/rickyd/lucy/internal/exam"
	"github.com/rickyd/lucy/internal/llm"
	"github.com/rickyd/lucy/internal/progress"
	"github.com/rickyd/lucy/internal/ui/theme"
)

var examCmd = &cobra.Command{
	Use:   "exam",
	Short: "Take today's mock exam",
	Long:  "Generate and take the daily mock exam. Scoring 40% or higher advances you to the next day.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		st, p, err := openProgress(ctx, cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		provider, err := llm.NewProviderFromEnv(ctx, st)
		if err != nil {
			return fmt.Errorf("LLM provider not configured: %w", err)
		}

		svc := exam.New(provider, exam.DefaultConfig())
		day := p.CurrentDay()

		fmt.Println(theme.Subtitle.Render("Generating your exam..."))
		ex, err := svc.Generate(ctx, day)
		if err != nil {
			return err
		}

		fmt.Println(theme.Title.Render(fmt.Sprintf("Day %d Mock Exam", day)))
		fmt.Println(theme.Subtitle.Render("Topics: " + strings.Join(ex.TopicTitles(), ", ")))
		fmt.Println()

		answers := collectAnswers(ex.Questions)
		score := exam.Grade(ex.Questions, answers)
		total := len(ex.Questions)

		printResults(ex, answers, score)

		p.AddExamScore(ctx, progress.ExamScore{
			Day:            day,
			Date:           time.Now().Format("2006-01-02"),
			Score:          score,
			TotalQuestions: total,
			Topics:         ex.TopicTitles(),
		})

		if svc.Config().Passed(score, total) {
			p.AdvanceDay(ctx)
			fmt.Println(theme.Correct.Render(fmt.Sprintf("Passed! Advancing to day %d.", p.CurrentDay())))
		} else {
			fmt.Println(theme.Incorrect.Render("Below 40%. Review today's topics and try again."))
		}
		return nil
	},
}

// collectAnswers runs the interactive question loop. Unanswered questions
// count as wrong.
func collectAnswers(questions []exam.Question) map[int]int {
	reader := bufio.NewScanner(os.Stdin)
	answers := make(map[int]int)
	letters := []string{"A", "B", "C", "D"}

	for i, q := range questions {
		fmt.Println(theme.Label.Render(fmt.Sprintf("Q%d", i+1)) + " " +
			theme.Hint.Render("["+string(q.Category)+"]"))
		fmt.Println(theme.Body.Render(q.Text))
		if q.CodeSnippet != "" {
			fmt.Println()
			fmt.Println(q.CodeSnippet)
		}
		for j, opt := range q.Options {
			fmt.Printf("  %s. %s\n", letters[j], opt)
		}

		for {
			fmt.Print("Answer (a-d, enter to skip): ")
			if !reader.Scan() {
				return answers
			}
			in := strings.ToLower(strings.TrimSpace(reader.Text()))
			if in == "" {
				break
			}
			idx := strings.Index("abcd", in)
			if len(in) == 1 && idx >= 0 {
				answers[q.ID] = idx
				break
			}
			fmt.Println(theme.Hint.Render("Please answer a, b, c, or d."))
		}
		fmt.Println()
	}
	return answers
}

func printResults(ex *exam.Exam, answers map[int]int, score int) {
	total := len(ex.Questions)
	pct := 0
	if total > 0 {
		pct = score * 100 / total
	}

	fmt.Println(theme.Title.Render("Results"))
	fmt.Println(theme.Value.Render(fmt.Sprintf("%d/%d correct (%d%%)", score, total, pct)))
	fmt.Println()

	for i, q := range ex.Questions {
		given, answered := answers[q.ID]
		if answered && given == q.CorrectOptionIndex {
			continue
		}
		fmt.Println(theme.Incorrect.Render(fmt.Sprintf("Q%d. %s", i+1, q.Text)))
		if answered {
			fmt.Println("  your answer:    " + q.Options[given])
		} else {
			fmt.Println("  your answer:    (skipped)")
		}
		fmt.Println("  correct answer: " + q.Options[q.CorrectOptionIndex])
		fmt.Println("  " + theme.Hint.Render(q.Explanation))
		fmt.Println()
	}
}
