// Package schedule contains the weekly practice schedule commands.
package schedule

import (
	"github.com/spf13/cobra"
)

// Cmd is the schedule command group
var Cmd = &cobra.Command{
	Use:   "schedule",
	Short: "Manage your weekly practice schedule",
	Long:  `Add, list, update, and remove practices on your weekly schedule.`,
}

func init() {
	Cmd.AddCommand(addCmd)
	Cmd.AddCommand(listCmd)
	Cmd.AddCommand(updateCmd)
	Cmd.AddCommand(removeCmd)
}
