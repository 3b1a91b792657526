package schedule

import (
	"errors"
	"fmt"

	"github.com/felixgeelhaar/sangam/adapter/cli"
	"github.com/felixgeelhaar/sangam/internal/schedule/application/commands"
	scheduleSync "github.com/felixgeelhaar/sangam/internal/schedule/application/sync"
	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:     "remove <id>",
	Short:   "Remove a practice from your schedule",
	Aliases: []string{"rm"},
	Args:    cobra.ExactArgs(1),
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

		err = app.ScheduleSync.SubmitDelete(cmd.Context(), commands.RemoveScheduleItemCommand{
			ItemID: args[0],
			UserID: userID,
		})
		if err != nil {
			if errors.Is(err, scheduleSync.ErrMutationInFlight) {
				fmt.Println("A removal is already in progress; try again in a moment.")
				return nil
			}
			return fmt.Errorf("failed to remove schedule item: %w", err)
		}

		fmt.Println("Practice removed.")
		return nil
	},
}
