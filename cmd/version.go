package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rickyd/lucy/internal/selfupdate"
)

// version is set via -ldflags at build time.
var version = "(devel)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the current version",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("lucy", version)

		if check, _ := cmd.Flags().GetBool("check"); check {
			checker := selfupdate.NewChecker()
			result, err := checker.Check(cmd.Context(), &selfupdate.CheckInput{Version: version})
			if err != nil {
				return fmt.Errorf("check for updates: %w", err)
			}
			if result.UpdateAvailable {
				fmt.Printf("Update available: %s (%s)\n", result.LatestVersion, result.ReleaseURL)
				fmt.Println("Run 'lucy update' to install it.")
			} else {
				fmt.Println("You are up to date.")
			}
		}
		return nil
	},
}

func init() {
	versionCmd.Flags().Bool("check", false, "Check GitHub for a newer release")
}
