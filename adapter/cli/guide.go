package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/felixgeelhaar/sangam/internal/guide"
	"github.com/spf13/cobra"
)

var guideLanguage string

var guideCmd = &cobra.Command{
	Use:   "guide [question]",
	Short: "Ask the spiritual guide",
	Long: `Ask the spiritual guide about karma, dharma, or meditation.

With a question argument the guide answers once. Without arguments an
interactive conversation starts; type "exit" to leave.

Examples:
  sangam guide "what is karma?"
  sangam guide --language hindi "ध्यान क्या है?"
  sangam guide`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil || app.Guide == nil {
			fmt.Println("The guide is not available.")
			return nil
		}

		if guideLanguage != "" {
			app.Guide.SetLanguage(guide.Language(guideLanguage))
		}

		if len(args) > 0 {
			answer, err := app.Guide.Ask(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return fmt.Errorf("failed to ask the guide: %w", err)
			}
			fmt.Println(answer)
			return nil
		}

		fmt.Println("Namaste. Ask about karma, dharma, or meditation. Type \"exit\" to leave.")
		scanner := bufio.NewScanner(os.Stdin)
		for {
			fmt.Print("> ")
			if !scanner.Scan() {
				return scanner.Err()
			}
			question := strings.TrimSpace(scanner.Text())
			if question == "" {
				continue
			}
			if strings.EqualFold(question, "exit") {
				fmt.Println("Om Shanti.")
				return nil
			}
			answer, err := app.Guide.Ask(cmd.Context(), question)
			if err != nil {
				return fmt.Errorf("failed to ask the guide: %w", err)
			}
			fmt.Println(answer)
		}
	},
}

func init() {
	guideCmd.Flags().StringVarP(&guideLanguage, "language", "l", "", "reply language (english, hindi)")
	rootCmd.AddCommand(guideCmd)
}
