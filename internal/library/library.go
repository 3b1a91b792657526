// Package library holds the fixed content collections served alongside
// the meditation catalog: sacred stories, facts, quizzes and the sacred
// timeline. The collections are compiled in; filtering and grouping are
// pure functions over them.
package library

import "strings"

// Story is a short retelling of a sacred narrative.
type Story struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Excerpt  string `json:"excerpt"`
	Category string `json:"category"`
	ImageURL string `json:"imageUrl,omitempty"`
}

// Fact is a standalone piece of spiritual knowledge.
type Fact struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Fact     string `json:"fact"`
	Category string `json:"category"`
}

// Difficulty labels a quiz.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Quiz describes an available knowledge quiz.
type Quiz struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Questions   int        `json:"questions"`
	TimeMinutes int        `json:"timeMinutes"`
	Difficulty  Difficulty `json:"difficulty"`
	ImageURL    string     `json:"imageUrl,omitempty"`
}

// TimelineEvent is one entry on the sacred timeline.
type TimelineEvent struct {
	Year        string `json:"year"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Stories returns all stories, optionally filtered by category.
// Category "all" or "" matches everything.
func Stories(category string) []Story {
	if category == "" || category == "all" {
		return append([]Story(nil), stories...)
	}
	out := make([]Story, 0, len(stories))
	for _, s := range stories {
		if s.Category == category {
			out = append(out, s)
		}
	}
	return out
}

// StoryCategories returns the distinct story categories in first-seen
// order, prefixed with the "all" wildcard.
func StoryCategories() []string {
	seen := make(map[string]bool)
	categories := []string{"all"}
	for _, s := range stories {
		if !seen[s.Category] {
			seen[s.Category] = true
			categories = append(categories, s.Category)
		}
	}
	return categories
}

// Facts returns all facts, optionally filtered by a case-insensitive
// substring of title or body.
func Facts(search string) []Fact {
	if strings.TrimSpace(search) == "" {
		return append([]Fact(nil), facts...)
	}
	lowered := strings.ToLower(search)
	out := make([]Fact, 0, len(facts))
	for _, f := range facts {
		if strings.Contains(strings.ToLower(f.Title), lowered) || strings.Contains(strings.ToLower(f.Fact), lowered) {
			out = append(out, f)
		}
	}
	return out
}

// Quizzes returns all quizzes, optionally filtered by difficulty.
func Quizzes(difficulty Difficulty) []Quiz {
	if difficulty == "" {
		return append([]Quiz(nil), quizzes...)
	}
	out := make([]Quiz, 0, len(quizzes))
	for _, q := range quizzes {
		if q.Difficulty == difficulty {
			out = append(out, q)
		}
	}
	return out
}

// Timeline returns the sacred timeline in chronological order.
func Timeline() []TimelineEvent {
	return append([]TimelineEvent(nil), timeline...)
}

var stories = []Story{
	{
		ID:       "story-1",
		Title:    "The Kurukshetra War: A Battle of Dharma",
		Excerpt:  "Explore the profound spiritual significance of the 18-day battle that changed the course of dharma and showcased the divine message of Lord Krishna.",
		Category: "Mahabharata",
		ImageURL: "https://images.unsplash.com/photo-1500375592092-40eb2168fd21?w=500&q=80",
	},
	{
		ID:       "story-2",
		Title:    "Arjuna's Dilemma and the Divine Counsel",
		Excerpt:  "Understand how Arjuna's moment of doubt on the battlefield led to the revelation of the Bhagavad Gita and timeless wisdom on duty and action.",
		Category: "Bhagavad Gita",
		ImageURL: "https://images.unsplash.com/photo-1506744038136-46273834b3fb?w=500&q=80",
	},
	{
		ID:       "story-3",
		Title:    "The Divine Play of Krishna and Radha",
		Excerpt:  "Discover the symbolic meaning behind the sacred relationship of Krishna and Radha, representing the soul's eternal longing for divine union.",
		Category: "Bhakti",
		ImageURL: "https://images.unsplash.com/photo-1470071459604-3b5ec3a7fe05?w=500&q=80",
	},
	{
		ID:       "story-4",
		Title:    "The Story of Lord Rama's Exile",
		Excerpt:  "Follow the journey of Lord Rama during his 14-year exile and the spiritual lessons of righteousness, duty, and devotion from the Ramayana.",
		Category: "Ramayana",
		ImageURL: "https://images.unsplash.com/photo-1426604966848-d7adac402bff?w=500&q=80",
	},
	{
		ID:       "story-5",
		Title:    "The Churning of the Ocean (Samudra Manthan)",
		Excerpt:  "Learn about the cooperation between devas and asuras to churn the cosmic ocean for amrita, the nectar of immortality, and the emergence of divine entities.",
		Category: "Puranas",
		ImageURL: "https://images.unsplash.com/photo-1523712999610-f77fbcfc3843?w=500&q=80",
	},
	{
		ID:       "story-6",
		Title:    "The Birth of Lord Ganesha",
		Excerpt:  "Explore the fascinating origin story of the elephant-headed deity and why he's worshipped first in all Hindu ceremonies.",
		Category: "Puranas",
		ImageURL: "https://images.unsplash.com/photo-1500673922987-e212871fec22?w=500&q=80",
	},
}

var facts = []Fact{
	{
		ID:       "fact-1",
		Title:    "The Oldest Scripture",
		Fact:     "The Rig Veda is one of the oldest known religious texts in the world, dating back to approximately 1500 BCE. It consists of 1,028 hymns dedicated to various deities.",
		Category: "Vedic Knowledge",
	},
	{
		ID:       "fact-2",
		Title:    "The Sacred Syllable",
		Fact:     "The sound 'Om' (Aum) is considered the most sacred syllable in Hinduism, representing the essence of the ultimate reality, consciousness, or Atman.",
		Category: "Symbolism",
	},
	{
		ID:       "fact-3",
		Title:    "The Four Aims of Life",
		Fact:     "Hinduism prescribes four aims of human life: Dharma (righteousness), Artha (prosperity), Kama (pleasure), and Moksha (liberation from the cycle of rebirth).",
		Category: "Philosophy",
	},
}

var quizzes = []Quiz{
	{
		ID:          "quiz-1",
		Title:       "Bhagavad Gita Essentials",
		Description: "Test your knowledge of the key teachings and verses from the divine song of Lord Krishna.",
		Questions:   10,
		TimeMinutes: 15,
		Difficulty:  DifficultyMedium,
		ImageURL:    "https://images.unsplash.com/photo-1465146344425-f00d5f5c8f07?w=500&q=80",
	},
	{
		ID:          "quiz-2",
		Title:       "Hindu Deities",
		Description: "How well do you know the major gods and goddesses of the Hindu pantheon?",
		Questions:   15,
		TimeMinutes: 20,
		Difficulty:  DifficultyEasy,
		ImageURL:    "https://images.unsplash.com/photo-1482938289607-e9573fc25ebb?w=500&q=80",
	},
	{
		ID:          "quiz-3",
		Title:       "Epic Challenge: Mahabharata",
		Description: "Dive deep into the complex characters and events of the great epic Mahabharata.",
		Questions:   20,
		TimeMinutes: 30,
		Difficulty:  DifficultyHard,
		ImageURL:    "https://images.unsplash.com/photo-1506744038136-46273834b3fb?w=500&q=80",
	},
	{
		ID:          "quiz-4",
		Title:       "The Journey of Rama",
		Description: "Follow the path of Lord Rama through the events of the Ramayana in this immersive quiz.",
		Questions:   15,
		TimeMinutes: 25,
		Difficulty:  DifficultyMedium,
		ImageURL:    "https://images.unsplash.com/photo-1470071459604-3b5ec3a7fe05?w=500&q=80",
	},
	{
		ID:          "quiz-5",
		Title:       "Hindu Festivals & Celebrations",
		Description: "Test your knowledge about the colorful and meaningful festivals celebrated in Hinduism.",
		Questions:   12,
		TimeMinutes: 18,
		Difficulty:  DifficultyEasy,
		ImageURL:    "https://images.unsplash.com/photo-1500375592092-40eb2168fd21?w=500&q=80",
	},
	{
		ID:          "quiz-6",
		Title:       "Advanced Vedic Philosophy",
		Description: "Challenge yourself with complex concepts from the Upanishads and Vedantic philosophy.",
		Questions:   15,
		TimeMinutes: 25,
		Difficulty:  DifficultyHard,
		ImageURL:    "https://images.unsplash.com/photo-1523712999610-f77fbcfc3843?w=500&q=80",
	},
}

var timeline = []TimelineEvent{
	{
		Year:        "~3200 BCE",
		Title:       "The Kurukshetra War",
		Description: "The great battle of Mahabharata between the Pandavas and the Kauravas, during which Lord Krishna imparted the wisdom of the Bhagavad Gita to Arjuna.",
	},
	{
		Year:        "~1500 BCE",
		Title:       "Composition of the Rig Veda",
		Description: "The oldest of the four Vedas, containing hymns, philosophical discussions, and instructions for rituals.",
	},
	{
		Year:        "~1000-500 BCE",
		Title:       "Composition of the Upanishads",
		Description: "The philosophical texts that explore the nature of the soul, reality, and the universe.",
	},
}

// GroupQuizzesByDifficulty splits the quiz set into easy, medium and
// hard buckets, preserving order within each.
func GroupQuizzesByDifficulty() map[Difficulty][]Quiz {
	groups := make(map[Difficulty][]Quiz)
	for _, q := range quizzes {
		groups[q.Difficulty] = append(groups[q.Difficulty], q)
	}
	return groups
}
