package schedule

import (
	"errors"
	"fmt"
	"strings"

	"github.com/felixgeelhaar/sangam/adapter/cli"
	"github.com/felixgeelhaar/sangam/internal/schedule/application/commands"
	scheduleSync "github.com/felixgeelhaar/sangam/internal/schedule/application/sync"
	"github.com/spf13/cobra"
)

var (
	addDay      string
	addTime     string
	addDuration int
)

var addCmd = &cobra.Command{
	Use:   "add <practice>",
	Short: "Add a practice to your schedule",
	Long: `Add a practice to your weekly schedule.

Times snap to a half-hour grid in "7:00 AM" form.

Examples:
  sangam schedule add "Chakra Healing" --day Monday --time "7:00 AM" --duration 20
  sangam schedule add "Gita Reflections" -d Sunday -t "6:30 PM" -m 25`,
	Args: cobra.MinimumNArgs(1),
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

		result, err := app.ScheduleSync.SubmitAdd(cmd.Context(), commands.AddScheduleItemCommand{
			UserID:   userID,
			Day:      addDay,
			Time:     addTime,
			Practice: strings.Join(args, " "),
			Duration: addDuration,
		})
		if err != nil {
			if errors.Is(err, scheduleSync.ErrMutationInFlight) {
				fmt.Println("An add is already in progress; try again in a moment.")
				return nil
			}
			return fmt.Errorf("failed to add schedule item: %w", err)
		}

		fmt.Println("Practice scheduled!")
		fmt.Printf("  %s on %s at %s (%d min)\n",
			result.Item.Practice(), result.Item.Day(), result.Item.Time(), result.Item.Duration())
		fmt.Printf("  ID: %s\n", result.Item.ID())
		return nil
	},
}

func init() {
	addCmd.Flags().StringVarP(&addDay, "day", "d", "", "day of the week (Monday..Sunday)")
	addCmd.Flags().StringVarP(&addTime, "time", "t", "", "time slot, e.g. \"7:00 AM\"")
	addCmd.Flags().IntVarP(&addDuration, "duration", "m", 20, "duration in minutes")
	_ = addCmd.MarkFlagRequired("day")
	_ = addCmd.MarkFlagRequired("time")
}
