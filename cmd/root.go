// Package cmd wires the CLI surface: daily study flow, exams, the mentor
// chat, stats, and maintenance commands.
package cmd

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/rickyd/lucy/internal/progress"
	"github.com/rickyd/lucy/internal/storage"
)

var rootCmd = &cobra.Command{
	Use:   "lucy",
	Short: "Personal programming study tracker",
	Long:  "Lucy — terminal companion for a self-paced Python, DSA, and aptitude curriculum: daily topics, streaks, AI mock exams, and a study mentor.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runToday(cmd)
	},
}

func Execute() error {
	// Optional .env for API keys; absence is fine.
	_ = godotenv.Load()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides LUCY_DB env var)")

	rootCmd.AddCommand(todayCmd)
	rootCmd.AddCommand(tasksCmd)
	rootCmd.AddCommand(doneCmd)
	rootCmd.AddCommand(examCmd)
	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then LUCY_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, storage.EnsureDir(p)
	}
	return storage.DefaultDBPath()
}

// openStore opens the SQLite store for this command invocation.
func openStore(cmd *cobra.Command) (*storage.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	st, err := storage.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return st, nil
}

// openProgress opens the store and loads the progress state from it.
func openProgress(ctx context.Context, cmd *cobra.Command) (*storage.Store, *progress.Store, error) {
	st, err := openStore(cmd)
	if err != nil {
		return nil, nil, err
	}
	p := progress.New(st)
	p.Load(ctx)
	return st, p, nil
}
