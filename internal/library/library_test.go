package library

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoriesFilterByCategory(t *testing.T) {
	puranas := Stories("Puranas")
	require.Len(t, puranas, 2)
	for _, s := range puranas {
		assert.Equal(t, "Puranas", s.Category)
	}

	assert.Len(t, Stories("all"), 6)
	assert.Len(t, Stories(""), 6)
	assert.Empty(t, Stories("Unknown"))
}

func TestStoryCategoriesAreDistinctWithWildcardFirst(t *testing.T) {
	categories := StoryCategories()
	assert.Equal(t, "all", categories[0])
	assert.Equal(t, []string{"all", "Mahabharata", "Bhagavad Gita", "Bhakti", "Ramayana", "Puranas"}, categories)
}

func TestFactsSearch(t *testing.T) {
	result := Facts("rig veda")
	require.Len(t, result, 1)
	assert.Equal(t, "The Oldest Scripture", result[0].Title)

	assert.Len(t, Facts(""), 3)
	assert.Len(t, Facts("  "), 3)
	assert.Empty(t, Facts("cricket"))
}

func TestQuizzesFilterByDifficulty(t *testing.T) {
	hard := Quizzes(DifficultyHard)
	require.Len(t, hard, 2)
	for _, q := range hard {
		assert.Equal(t, DifficultyHard, q.Difficulty)
	}
	assert.Len(t, Quizzes(""), 6)
}

func TestGroupQuizzesByDifficulty(t *testing.T) {
	groups := GroupQuizzesByDifficulty()
	assert.Len(t, groups[DifficultyEasy], 2)
	assert.Len(t, groups[DifficultyMedium], 2)
	assert.Len(t, groups[DifficultyHard], 2)
}

func TestTimelineIsChronological(t *testing.T) {
	events := Timeline()
	require.Len(t, events, 3)
	assert.Equal(t, "The Kurukshetra War", events[0].Title)
	assert.Equal(t, "Composition of the Upanishads", events[2].Title)
}

func TestAccessorsReturnCopies(t *testing.T) {
	first := Stories("")
	first[0].Title = "mutated"
	assert.Equal(t, "The Kurukshetra War: A Battle of Dharma", Stories("")[0].Title)
}
