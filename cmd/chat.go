package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rickyd/lucy/internal/llm"
	"github.com/rickyd/lucy/internal/mentor"
	"github.com/rickyd/lucy/internal/ui/theme"
)

var chatCmd = &cobra.Command{
	Use:   "chat [message]",
	Short: "Talk to Lucy, your study mentor",
	Long:  "Ask the AI mentor anything: concepts, what to study next, or your progress. With no message, starts an interactive session.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		st, p, err := openProgress(ctx, cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if reset, _ := cmd.Flags().GetBool("reset"); reset {
			svc := mentor.NewService(nil, st)
			if err := svc.Reset(ctx); err != nil {
				return fmt.Errorf("clear chat history: %w", err)
			}
			fmt.Println("Chat history cleared.")
			return nil
		}

		provider, err := llm.NewProviderFromEnv(ctx, st)
		if err != nil {
			return fmt.Errorf("LLM provider not configured: %w", err)
		}
		svc := mentor.NewService(provider, st)
		pctx := mentor.BuildContext(p.CurrentDay(), p.Streak(), p.ExamScores())

		if len(args) > 0 {
			reply, err := svc.Respond(ctx, pctx, strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Println(theme.Body.Render(reply))
			return nil
		}

		fmt.Println(theme.Title.Render("Lucy"))
		fmt.Println(theme.Hint.Render("Ask me anything. Type 'exit' to leave."))
		fmt.Println()

		reader := bufio.NewScanner(os.Stdin)
		for {
			fmt.Print(theme.Label.Render("you") + " > ")
			if !reader.Scan() {
				return nil
			}
			msg := strings.TrimSpace(reader.Text())
			if msg == "" {
				continue
			}
			if msg == "exit" || msg == "quit" {
				return nil
			}

			reply, err := svc.Respond(ctx, pctx, msg)
			if err != nil {
				fmt.Fprintln(os.Stderr, "error:", err)
				continue
			}
			fmt.Println(theme.Title.Render("lucy") + " > " + theme.Body.Render(reply))
			fmt.Println()
		}
	},
}

func init() {
	chatCmd.Flags().Bool("reset", false, "Clear the saved chat history")
}
