package cli

import (
	"context"
	"fmt"
	"strings"

	catalogQueries "github.com/felixgeelhaar/sangam/internal/catalog/application/queries"
	"github.com/felixgeelhaar/sangam/internal/session/application"
	"github.com/felixgeelhaar/sangam/internal/session/application/commands"
	"github.com/felixgeelhaar/sangam/internal/session/domain"
	"github.com/spf13/cobra"
)

var sessionMinutes int

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Run meditation sessions",
	Long:  `Start timed meditation sessions and record them against your stats.`,
}

var sessionStartCmd = &cobra.Command{
	Use:   "start <practice>",
	Short: "Start a timed session",
	Long: `Start a timed meditation session for the named practice.

The session runs a countdown and records a completion when it finishes.
Interrupting the session (Ctrl-C) pauses the timer without recording.

If --minutes is omitted and the practice matches a catalog journey,
the journey's duration is used.

Examples:
  sangam session start "Chakra Healing"
  sangam session start "Breath Awareness" --minutes 10`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil || app.CompleteSession == nil {
			fmt.Println("Sessions require an initialized store.")
			return nil
		}

		practice := strings.Join(args, " ")
		minutes := sessionMinutes
		if minutes == 0 {
			journey, err := app.JourneyByTitle.Handle(cmd.Context(), catalogQueries.GetJourneyByTitleQuery{Title: practice})
			if err != nil {
				return fmt.Errorf("failed to look up journey: %w", err)
			}
			if journey == nil {
				return fmt.Errorf("%q is not a catalog journey; pass --minutes", practice)
			}
			minutes = journey.Duration
		}

		userID, err := CurrentUserID(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to resolve user: %w", err)
		}

		timer, err := domain.NewPlaybackTimer(practice, minutes*60)
		if err != nil {
			return fmt.Errorf("failed to create session timer: %w", err)
		}

		fmt.Printf("Session: %s (%d min)\n", practice, minutes)

		runner := application.NewRunner(timer, application.DefaultTickInterval,
			func(currentSeconds int, progressPercent float64) {
				fmt.Printf("\r  %s / %s (%.0f%%)",
					formatClock(currentSeconds), formatClock(minutes*60), progressPercent)
			},
			func(ctx context.Context) error {
				fmt.Println()
				complete := commands.CompleteSessionCommand{
					UserID:          userID,
					Practice:        practice,
					DurationMinutes: minutes,
				}
				if err := app.CompleteSession.Handle(ctx, complete); err != nil {
					return fmt.Errorf("failed to record session: %w", err)
				}
				fmt.Println("Session complete. Om Shanti.")
				return nil
			},
			logger, app.Metrics,
		)

		if err := runner.Run(cmd.Context()); err != nil {
			fmt.Println()
			return err
		}
		return nil
	},
}

func formatClock(seconds int) string {
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

func init() {
	sessionStartCmd.Flags().IntVarP(&sessionMinutes, "minutes", "m", 0, "session length in minutes")

	sessionCmd.AddCommand(sessionStartCmd)
	rootCmd.AddCommand(sessionCmd)
}
