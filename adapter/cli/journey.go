package cli

import (
	"fmt"
	"strings"

	"github.com/felixgeelhaar/sangam/internal/catalog/application/queries"
	"github.com/spf13/cobra"
)

var (
	journeySearch      string
	journeyCategory    string
	journeyMinDuration int
	journeyMaxDuration int
)

var journeyCmd = &cobra.Command{
	Use:   "journey",
	Short: "Browse meditation journeys",
	Long:  `List, filter, and inspect the guided meditation journey catalog.`,
}

var journeyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List journeys",
	Long: `List the journey catalog with optional filtering.

Filter Options:
  --search     Match a phrase in title or description
  --category   Filter by category (beginner, energy, devotional, advanced, scripture)
  --min        Minimum duration in minutes
  --max        Maximum duration in minutes

Examples:
  sangam journey list                      # Full catalog
  sangam journey list --category energy    # Energy practices only
  sangam journey list --search krishna     # Match by phrase
  sangam journey list --min 20 --max 30    # Duration window`,
	Aliases: []string{"ls"},
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil || app.ListJourneys == nil {
			fmt.Println("Journey listing requires an initialized store.")
			return nil
		}

		query := queries.ListJourneysQuery{
			Text:     journeySearch,
			Category: journeyCategory,
		}
		if cmd.Flags().Changed("min") {
			query.MinDuration = &journeyMinDuration
		}
		if cmd.Flags().Changed("max") {
			query.MaxDuration = &journeyMaxDuration
		}

		journeys, err := app.ListJourneys.Handle(cmd.Context(), query)
		if err != nil {
			return fmt.Errorf("failed to list journeys: %w", err)
		}

		if len(journeys) == 0 {
			fmt.Println("No journeys match. Seed the catalog with: sangam seed")
			return nil
		}

		printJourneys(journeys)
		return nil
	},
}

var journeyFeaturedCmd = &cobra.Command{
	Use:   "featured",
	Short: "List featured journeys",
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil || app.ListFeaturedJourneys == nil {
			fmt.Println("Journey listing requires an initialized store.")
			return nil
		}

		journeys, err := app.ListFeaturedJourneys.Handle(cmd.Context(), queries.ListFeaturedJourneysQuery{})
		if err != nil {
			return fmt.Errorf("failed to list featured journeys: %w", err)
		}

		if len(journeys) == 0 {
			fmt.Println("No featured journeys. Seed the catalog with: sangam seed")
			return nil
		}

		printJourneys(journeys)
		return nil
	},
}

var journeyShowCmd = &cobra.Command{
	Use:   "show <title>",
	Short: "Show a journey by title",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil || app.JourneyByTitle == nil {
			fmt.Println("Journey lookup requires an initialized store.")
			return nil
		}

		title := strings.Join(args, " ")
		journey, err := app.JourneyByTitle.Handle(cmd.Context(), queries.GetJourneyByTitleQuery{Title: title})
		if err != nil {
			return fmt.Errorf("failed to look up journey: %w", err)
		}
		if journey == nil {
			fmt.Printf("No journey titled %q.\n", title)
			return nil
		}

		fmt.Println(journey.Title)
		fmt.Println(strings.Repeat("-", len(journey.Title)))
		fmt.Printf("  %s\n", journey.Description)
		fmt.Printf("  Duration: %d min | Level: %s | Category: %s\n",
			journey.Duration, journey.Level, journey.Category)
		if journey.Featured {
			fmt.Println("  Featured")
		}
		return nil
	},
}

func printJourneys(journeys []queries.JourneyDTO) {
	fmt.Printf("Journeys (%d):\n", len(journeys))
	fmt.Println(strings.Repeat("-", 70))
	for _, j := range journeys {
		star := " "
		if j.Featured {
			star = "*"
		}
		fmt.Printf("%s %s (%d min, %s)\n", star, j.Title, j.Duration, j.Level)
		fmt.Printf("    %s | %s\n", j.Category, j.Description)
	}
}

func init() {
	journeyListCmd.Flags().StringVarP(&journeySearch, "search", "s", "", "match a phrase in title or description")
	journeyListCmd.Flags().StringVarP(&journeyCategory, "category", "c", "", "filter by category")
	journeyListCmd.Flags().IntVar(&journeyMinDuration, "min", 0, "minimum duration in minutes")
	journeyListCmd.Flags().IntVar(&journeyMaxDuration, "max", 0, "maximum duration in minutes")

	journeyCmd.AddCommand(journeyListCmd)
	journeyCmd.AddCommand(journeyFeaturedCmd)
	journeyCmd.AddCommand(journeyShowCmd)
	rootCmd.AddCommand(journeyCmd)
}
