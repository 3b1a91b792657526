package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check backing service health",
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil || app.Health == nil {
			fmt.Println("Health checks require an initialized store.")
			return nil
		}

		status, results := app.Health.RunAll(cmd.Context())
		fmt.Printf("Overall: %s\n", status)
		for name, result := range results {
			line := fmt.Sprintf("  %-10s %s (%s)", name, result.Status, result.Latency)
			if result.Message != "" {
				line += " - " + result.Message
			}
			fmt.Println(line)
		}
		if status != "up" {
			return fmt.Errorf("one or more checks failed")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(healthCmd)
}
