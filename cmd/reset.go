package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rickyd/lucy/internal/mentor"
	"github.com/rickyd/lucy/internal/progress"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Erase all progress and chat history",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		if yes, _ := cmd.Flags().GetBool("yes"); !yes {
			fmt.Print("This erases your streak, completed tasks, exam history, and chat. Continue? [y/N] ")
			reader := bufio.NewScanner(os.Stdin)
			if !reader.Scan() {
				return nil
			}
			if in := strings.ToLower(strings.TrimSpace(reader.Text())); in != "y" && in != "yes" {
				fmt.Println("Aborted.")
				return nil
			}
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		for _, key := range progress.Keys() {
			if err := st.RemoveItem(ctx, key); err != nil {
				return fmt.Errorf("clear %s: %w", key, err)
			}
		}
		if err := mentor.NewService(nil, st).Reset(ctx); err != nil {
			return fmt.Errorf("clear chat history: %w", err)
		}

		fmt.Println("All progress cleared. Back to day 1.")
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
}
