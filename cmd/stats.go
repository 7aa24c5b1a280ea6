package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rickyd/lucy/internal/ui/theme"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show streak, progress, and exam history",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		st, p, err := openProgress(ctx, cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		fmt.Println(theme.Title.Render("Your Progress"))
		fmt.Println()
		fmt.Printf("%s %s\n", theme.Label.Render("Current day:  "), theme.Value.Render(fmt.Sprintf("%d", p.CurrentDay())))
		fmt.Printf("%s %s\n", theme.Label.Render("Streak:       "), theme.Streak.Render(fmt.Sprintf("%d days", p.Streak())))
		if last := p.LastPracticeDate(); last != "" {
			fmt.Printf("%s %s\n", theme.Label.Render("Last practice:"), theme.Value.Render(last))
		}
		fmt.Printf("%s %s\n", theme.Label.Render("Tasks done:   "), theme.Value.Render(fmt.Sprintf("%d", len(p.CompletedTasks()))))

		scores := p.ExamScores()
		fmt.Printf("%s %s\n", theme.Label.Render("Exams taken:  "), theme.Value.Render(fmt.Sprintf("%d", len(scores))))
		if len(scores) > 0 {
			fmt.Printf("%s %s\n", theme.Label.Render("Average score:"), theme.Value.Render(fmt.Sprintf("%d%%", p.AverageScore())))
		}

		recent := p.RecentScores(5)
		if len(recent) > 0 {
			fmt.Println()
			fmt.Println(theme.Label.Render("Recent exams"))
			fmt.Println(theme.Divider.Render(strings.Repeat("─", 56)))
			for _, rec := range recent {
				pct := int(rec.Percent())
				style := theme.Correct
				if pct < 40 {
					style = theme.Incorrect
				}
				fmt.Printf("  %s  day %-4d %s  %s\n",
					rec.Date, rec.Day,
					style.Render(fmt.Sprintf("%3d%%", pct)),
					theme.Hint.Render(strings.Join(rec.Topics, ", ")))
			}
		}
		return nil
	},
}
