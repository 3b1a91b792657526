package cli

import (
	"fmt"

	"github.com/felixgeelhaar/sangam/internal/catalog/application/commands"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the journey catalog",
	Long: `Populate the journey catalog with the built-in meditation journeys.
Seeding a non-empty catalog is a no-op.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil || app.SeedCatalog == nil {
			fmt.Println("Seeding requires an initialized store.")
			return nil
		}

		if err := app.SeedCatalog.Handle(cmd.Context(), commands.SeedCatalogCommand{}); err != nil {
			return fmt.Errorf("failed to seed catalog: %w", err)
		}

		fmt.Println("Catalog seeded.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
