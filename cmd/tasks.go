package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rickyd/lucy/internal/curriculum"
	"github.com/rickyd/lucy/internal/ui/theme"
)

var tasksCmd = &cobra.Command{
	Use:   "tasks",
	Short: "List tasks for the current day (or --day N) with their IDs",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		st, p, err := openProgress(ctx, cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		day, _ := cmd.Flags().GetInt("day")
		if day <= 0 {
			day = p.CurrentDay()
		}

		fmt.Println(theme.Title.Render(fmt.Sprintf("Tasks for day %d", day)))
		fmt.Println()

		found := false
		for _, track := range []string{curriculum.TrackPython, curriculum.TrackDSA, curriculum.TrackAptitude} {
			topic, ok := curriculum.TopicForDay(track, day)
			if !ok {
				continue
			}
			found = true
			fmt.Println(theme.Label.Render(trackTitle(track)) + " " + theme.Value.Render(topic.Title))
			for i, task := range topic.Tasks {
				id := curriculum.TaskID(topic.ID, i)
				mark := theme.Pending.Render("○")
				if p.IsComplete(id) {
					mark = theme.Done.Render("✓")
				}
				fmt.Printf("  %s %-12s %s\n", mark, id, task)
			}
			fmt.Println()
		}
		if !found {
			fmt.Println(theme.Hint.Render("No tasks scheduled for this day."))
		} else {
			fmt.Println(theme.Hint.Render("Mark a task done with: lucy done <task-id>"))
		}
		return nil
	},
}

func init() {
	tasksCmd.Flags().Int("day", 0, "Curriculum day to list (default: current day)")
}
