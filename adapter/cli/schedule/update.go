package schedule

import (
	"errors"
	"fmt"

	"github.com/felixgeelhaar/sangam/adapter/cli"
	"github.com/felixgeelhaar/sangam/internal/schedule/application/commands"
	"github.com/felixgeelhaar/sangam/internal/schedule/application/queries"
	scheduleSync "github.com/felixgeelhaar/sangam/internal/schedule/application/sync"
	"github.com/spf13/cobra"
)

var (
	updateDay      string
	updateTime     string
	updatePractice string
	updateDuration int
)

var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a scheduled practice",
	Long: `Update a scheduled practice. Omitted flags keep their current value.

Examples:
  sangam schedule update 3f2a... --time "8:00 PM"
  sangam schedule update 3f2a... --day Friday --duration 30`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.ScheduleSync == nil {
			fmt.Println("Scheduling requires an initialized store.")
			return nil
		}

		userID, err := cli.CurrentUserID(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to resolve user: %w", err)
		}

		itemID := args[0]
		current, err := findItem(cmd, userID, itemID)
		if err != nil {
			return err
		}

		update := commands.UpdateScheduleItemCommand{
			ItemID:   itemID,
			UserID:   userID,
			Day:      current.Day,
			Time:     current.Time,
			Practice: current.Practice,
			Duration: current.Duration,
		}
		if cmd.Flags().Changed("day") {
			update.Day = updateDay
		}
		if cmd.Flags().Changed("time") {
			update.Time = updateTime
		}
		if cmd.Flags().Changed("practice") {
			update.Practice = updatePractice
		}
		if cmd.Flags().Changed("duration") {
			update.Duration = updateDuration
		}

		if err := app.ScheduleSync.SubmitUpdate(cmd.Context(), update); err != nil {
			if errors.Is(err, scheduleSync.ErrMutationInFlight) {
				fmt.Println("An update is already in progress; try again in a moment.")
				return nil
			}
			return fmt.Errorf("failed to update schedule item: %w", err)
		}

		fmt.Println("Practice updated!")
		fmt.Printf("  %s on %s at %s (%d min)\n", update.Practice, update.Day, update.Time, update.Duration)
		return nil
	},
}

// findItem locates one of the user's schedule items by id.
func findItem(cmd *cobra.Command, userID, itemID string) (*queries.ScheduleItemDTO, error) {
	app := cli.GetApp()
	items, err := app.ListSchedule.Handle(cmd.Context(), queries.ListScheduleQuery{UserID: userID})
	if err != nil {
		return nil, fmt.Errorf("failed to list schedule: %w", err)
	}
	for i := range items {
		if items[i].ID == itemID {
			return &items[i], nil
		}
	}
	return nil, fmt.Errorf("no schedule item with ID %s", itemID)
}

func init() {
	updateCmd.Flags().StringVarP(&updateDay, "day", "d", "", "day of the week (Monday..Sunday)")
	updateCmd.Flags().StringVarP(&updateTime, "time", "t", "", "time slot, e.g. \"7:00 AM\"")
	updateCmd.Flags().StringVarP(&updatePractice, "practice", "p", "", "practice name")
	updateCmd.Flags().IntVarP(&updateDuration, "duration", "m", 0, "duration in minutes")
}
