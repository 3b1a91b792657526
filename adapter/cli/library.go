package cli

import (
	"fmt"
	"strings"

	"github.com/felixgeelhaar/sangam/internal/library"
	"github.com/spf13/cobra"
)

var (
	storyCategory  string
	factSearch     string
	quizDifficulty string
)

var libraryCmd = &cobra.Command{
	Use:   "library",
	Short: "Explore sacred knowledge",
	Long:  `Browse sacred stories, facts, quizzes, and the sacred timeline.`,
}

var storiesCmd = &cobra.Command{
	Use:   "stories",
	Short: "List sacred stories",
	RunE: func(cmd *cobra.Command, args []string) error {
		stories := library.Stories(storyCategory)
		if len(stories) == 0 {
			fmt.Printf("No stories in category %q. Categories: %s\n",
				storyCategory, strings.Join(library.StoryCategories(), ", "))
			return nil
		}

		fmt.Printf("Sacred Stories (%d):\n", len(stories))
		fmt.Println(strings.Repeat("-", 70))
		for _, s := range stories {
			fmt.Printf("%s [%s]\n", s.Title, s.Category)
			fmt.Printf("    %s\n", s.Excerpt)
		}
		return nil
	},
}

var factsCmd = &cobra.Command{
	Use:   "facts",
	Short: "List spiritual facts",
	RunE: func(cmd *cobra.Command, args []string) error {
		facts := library.Facts(factSearch)
		if len(facts) == 0 {
			fmt.Println("No facts match.")
			return nil
		}

		for _, f := range facts {
			fmt.Printf("%s [%s]\n", f.Title, f.Category)
			fmt.Printf("    %s\n", f.Fact)
		}
		return nil
	},
}

var quizzesCmd = &cobra.Command{
	Use:   "quizzes",
	Short: "List knowledge quizzes",
	RunE: func(cmd *cobra.Command, args []string) error {
		quizzes := library.Quizzes(library.Difficulty(quizDifficulty))
		if len(quizzes) == 0 {
			fmt.Println("No quizzes match. Difficulties: easy, medium, hard.")
			return nil
		}

		fmt.Printf("Quizzes (%d):\n", len(quizzes))
		fmt.Println(strings.Repeat("-", 70))
		for _, q := range quizzes {
			fmt.Printf("%s (%s, %d questions, %d min)\n", q.Title, q.Difficulty, q.Questions, q.TimeMinutes)
			fmt.Printf("    %s\n", q.Description)
		}
		return nil
	},
}

var timelineCmd = &cobra.Command{
	Use:   "timeline",
	Short: "Show the sacred timeline",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, e := range library.Timeline() {
			fmt.Printf("%-15s %s\n", e.Year, e.Title)
			fmt.Printf("    %s\n", e.Description)
		}
		return nil
	},
}

func init() {
	storiesCmd.Flags().StringVarP(&storyCategory, "category", "c", "", "filter by category")
	factsCmd.Flags().StringVarP(&factSearch, "search", "s", "", "match a phrase in title or body")
	quizzesCmd.Flags().StringVarP(&quizDifficulty, "difficulty", "d", "", "filter by difficulty (easy, medium, hard)")

	libraryCmd.AddCommand(storiesCmd)
	libraryCmd.AddCommand(factsCmd)
	libraryCmd.AddCommand(quizzesCmd)
	libraryCmd.AddCommand(timelineCmd)
	rootCmd.AddCommand(libraryCmd)
}
