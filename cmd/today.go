package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rickyd/lucy/internal/curriculum"
	"github.com/rickyd/lucy/internal/progress"
	"github.com/rickyd/lucy/internal/ui/theme"
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's topics and tasks",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runToday(cmd)
	},
}

func runToday(cmd *cobra.Command) error {
	ctx := cmd.Context()
	st, p, err := openProgress(ctx, cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	day := p.CurrentDay()
	fmt.Println(theme.Title.Render(fmt.Sprintf("Day %d", day)))
	if streak := p.Streak(); streak > 0 {
		fmt.Println(theme.Streak.Render(fmt.Sprintf("%d-day streak", streak)))
	}
	fmt.Println()

	shown := false
	for _, track := range []string{curriculum.TrackPython, curriculum.TrackDSA, curriculum.TrackAptitude, curriculum.TrackWeeks} {
		topic, ok := curriculum.TopicForDay(track, day)
		if !ok {
			continue
		}
		shown = true
		printTopic(p, track, topic)
	}
	if !shown {
		fmt.Println(theme.Hint.Render("No scheduled topics today. Review day!"))
	}
	return nil
}

func printTopic(p *progress.Store, track string, topic curriculum.Topic) {
	fmt.Println(theme.Label.Render(trackTitle(track)) + " " + theme.Value.Render(topic.Title))
	if topic.Description != "" {
		fmt.Println(theme.Subtitle.Render(topic.Description))
	}

	ids := make([]string, len(topic.Tasks))
	for i, task := range topic.Tasks {
		id := curriculum.TaskID(topic.ID, i)
		ids[i] = id
		if p.IsComplete(id) {
			fmt.Println("  " + theme.Done.Render("✓ "+task))
		} else {
			fmt.Println("  " + theme.Pending.Render("○ "+task) + "  " + theme.Hint.Render(id))
		}
	}
	pct := int(p.CompletionFor(ids) * 100)
	fmt.Println(theme.Subtitle.Render(fmt.Sprintf("%d%% complete", pct)))
	fmt.Println()
}

func trackTitle(track string) string {
	switch track {
	case curriculum.TrackPython:
		return "Python"
	case curriculum.TrackDSA:
		return "DSA"
	case curriculum.TrackAptitude:
		return "Aptitude"
	case curriculum.TrackWeeks:
		return "Focus"
	default:
		return track
	}
}
