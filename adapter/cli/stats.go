package cli

import (
	"fmt"

	"github.com/felixgeelhaar/sangam/internal/session/application/queries"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show your practice statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil || app.UserStats == nil {
			fmt.Println("Stats require an initialized store.")
			return nil
		}

		userID, err := CurrentUserID(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to resolve user: %w", err)
		}

		stats, err := app.UserStats.Handle(cmd.Context(), queries.GetUserStatsQuery{UserID: userID})
		if err != nil {
			return fmt.Errorf("failed to load stats: %w", err)
		}

		if stats.TotalSessions == 0 {
			fmt.Println("No sessions recorded yet. Start one with: sangam session start <practice>")
			return nil
		}

		fmt.Println("Practice Statistics")
		fmt.Println("-------------------")
		fmt.Printf("  Sessions:      %d\n", stats.TotalSessions)
		fmt.Printf("  Total minutes: %d\n", stats.TotalMinutes)
		fmt.Printf("  Last practice: %s\n", stats.LastPractice)
		fmt.Printf("  Last session:  %s\n", stats.LastSessionAt.Format("Mon, Jan 2 2006 15:04"))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
