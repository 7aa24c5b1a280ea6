package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rickyd/lucy/internal/curriculum"
	"github.com/rickyd/lucy/internal/ui/theme"
)

var doneCmd = &cobra.Command{
	Use:   "done <task-id>...",
	Short: "Mark tasks complete",
	Long:  "Mark one or more tasks complete by ID (see 'lucy tasks' for IDs, e.g. py1_0).",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		st, p, err := openProgress(ctx, cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		for _, id := range args {
			label, err := lookupTask(id)
			if err != nil {
				return err
			}
			if p.IsComplete(id) {
				fmt.Println(theme.Hint.Render("already done: " + label))
				continue
			}
			p.MarkComplete(ctx, id)
			fmt.Println(theme.Done.Render("✓ " + label))
		}
		return nil
	},
}

// lookupTask resolves a task ID of the form "{topicID}_{index}" to its label.
func lookupTask(taskID string) (string, error) {
	sep := strings.LastIndex(taskID, "_")
	if sep <= 0 {
		return "", fmt.Errorf("invalid task ID %q (expected e.g. py1_0)", taskID)
	}
	topic, ok := curriculum.TopicByID(taskID[:sep])
	if !ok {
		return "", fmt.Errorf("unknown topic in task ID %q", taskID)
	}
	idx, err := strconv.Atoi(taskID[sep+1:])
	if err != nil || idx < 0 || idx >= len(topic.Tasks) {
		return "", fmt.Errorf("task ID %q has no task index %s", taskID, taskID[sep+1:])
	}
	return topic.Tasks[idx], nil
}
