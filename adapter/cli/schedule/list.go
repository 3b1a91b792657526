package schedule

import (
	"fmt"
	"strings"

	"github.com/felixgeelhaar/sangam/adapter/cli"
	"github.com/felixgeelhaar/sangam/internal/schedule/application/queries"
	scheduleDomain "github.com/felixgeelhaar/sangam/internal/schedule/domain"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Short:   "Show your weekly schedule",
	Aliases: []string{"ls"},
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.ListSchedule == nil {
			fmt.Println("Scheduling requires an initialized store.")
			return nil
		}

		userID, err := cli.CurrentUserID(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to resolve user: %w", err)
		}

		items, err := app.ListSchedule.Handle(cmd.Context(), queries.ListScheduleQuery{UserID: userID})
		if err != nil {
			return fmt.Errorf("failed to list schedule: %w", err)
		}

		if len(items) == 0 {
			fmt.Println("Your schedule is empty. Add a practice with: sangam schedule add")
			return nil
		}

		byDay := make(map[string][]queries.ScheduleItemDTO)
		for _, item := range items {
			byDay[item.Day] = append(byDay[item.Day], item)
		}

		fmt.Printf("Weekly Schedule (%d practices):\n", len(items))
		fmt.Println(strings.Repeat("-", 70))
		for _, day := range scheduleDomain.Days {
			dayItems := byDay[string(day)]
			if len(dayItems) == 0 {
				continue
			}
			fmt.Printf("%s:\n", day)
			for _, item := range dayItems {
				fmt.Printf("  %-9s %s (%d min)\n", item.Time, item.Practice, item.Duration)
				fmt.Printf("            ID: %s\n", item.ID)
			}
		}
		return nil
	},
}
