package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustJourney(t *testing.T, title string, duration int, category Category) *Journey {
	t.Helper()
	journey, err := NewJourney(title, "a guided practice", duration, LevelAll, category, "", false)
	require.NoError(t, err)
	return journey
}

func titles(journeys []*Journey) []string {
	out := make([]string, 0, len(journeys))
	for _, j := range journeys {
		out = append(out, j.Title())
	}
	return out
}

func TestFilterByCategory(t *testing.T) {
	catalog := []*Journey{
		mustJourney(t, "Inner Peace Sanctuary", 15, CategoryBeginner),
		mustJourney(t, "Cosmic Connection", 30, CategoryAdvanced),
	}

	result := Filter(catalog, FilterQuery{Category: CategoryBeginner})
	assert.Equal(t, []string{"Inner Peace Sanctuary"}, titles(result))
}

func TestFilterByDurationRange(t *testing.T) {
	catalog := []*Journey{
		mustJourney(t, "Inner Peace Sanctuary", 15, CategoryBeginner),
		mustJourney(t, "Cosmic Connection", 30, CategoryAdvanced),
	}

	minD, maxD := 20, 40
	result := Filter(catalog, FilterQuery{MinDuration: &minD, MaxDuration: &maxD})
	assert.Equal(t, []string{"Cosmic Connection"}, titles(result))
}

func TestFilterDurationBoundsAreInclusive(t *testing.T) {
	catalog := []*Journey{
		mustJourney(t, "Chakra Healing", 20, CategoryEnergy),
	}

	minD, maxD := 20, 20
	result := Filter(catalog, FilterQuery{MinDuration: &minD, MaxDuration: &maxD})
	assert.Len(t, result, 1)
}

func TestFilterInvertedBoundsMatchNothing(t *testing.T) {
	catalog := []*Journey{
		mustJourney(t, "Chakra Healing", 20, CategoryEnergy),
		mustJourney(t, "Astral Travel", 30, CategoryAdvanced),
	}

	minD, maxD := 20, 10
	result := Filter(catalog, FilterQuery{MinDuration: &minD, MaxDuration: &maxD})
	assert.Empty(t, result)
}

func TestFilterTextMatchesTitleOrDescription(t *testing.T) {
	chakra, err := NewJourney("Chakra Healing", "Align and balance your seven chakras.", 20, LevelAll, CategoryEnergy, "", true)
	require.NoError(t, err)
	gita, err := NewJourney("Gita Reflections", "Contemplation on verses from the Bhagavad Gita.", 25, LevelAll, CategoryScripture, "", true)
	require.NoError(t, err)
	catalog := []*Journey{chakra, gita}

	assert.Equal(t, []string{"Chakra Healing"}, titles(Filter(catalog, FilterQuery{Text: "CHAKRA"})))
	assert.Equal(t, []string{"Gita Reflections"}, titles(Filter(catalog, FilterQuery{Text: "bhagavad"})))
	assert.Empty(t, Filter(catalog, FilterQuery{Text: "astral"}))
}

func TestFilterCategoryAllIsWildcard(t *testing.T) {
	catalog := []*Journey{
		mustJourney(t, "Inner Peace Sanctuary", 15, CategoryBeginner),
		mustJourney(t, "Cosmic Connection", 30, CategoryAdvanced),
	}

	assert.Len(t, Filter(catalog, FilterQuery{Category: CategoryAll}), 2)
	assert.Len(t, Filter(catalog, FilterQuery{}), 2)
}

func TestFilterPredicatesAreANDed(t *testing.T) {
	catalog := []*Journey{
		mustJourney(t, "Sacred Sound Healing", 25, CategoryEnergy),
		mustJourney(t, "Chakra Healing", 20, CategoryEnergy),
		mustJourney(t, "Mindful Awareness", 10, CategoryBeginner),
	}

	minD := 25
	result := Filter(catalog, FilterQuery{Text: "healing", Category: CategoryEnergy, MinDuration: &minD})
	assert.Equal(t, []string{"Sacred Sound Healing"}, titles(result))
}

func TestFilterIsIdempotent(t *testing.T) {
	catalog := []*Journey{
		mustJourney(t, "Chakra Healing", 20, CategoryEnergy),
		mustJourney(t, "Astral Travel", 30, CategoryAdvanced),
		mustJourney(t, "Mindful Awareness", 10, CategoryBeginner),
	}

	query := FilterQuery{Category: CategoryEnergy}
	once := Filter(catalog, query)
	twice := Filter(once, query)
	assert.Equal(t, titles(once), titles(twice))
}

func TestFilterEmptyCatalog(t *testing.T) {
	assert.Empty(t, Filter(nil, FilterQuery{Text: "anything"}))
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	catalog := []*Journey{
		mustJourney(t, "Chakra Healing", 20, CategoryEnergy),
		mustJourney(t, "Astral Travel", 30, CategoryAdvanced),
	}

	_ = Filter(catalog, FilterQuery{Category: CategoryEnergy})
	assert.Equal(t, []string{"Chakra Healing", "Astral Travel"}, titles(catalog))
}
