package domain

import "strings"

// FilterQuery holds the predicates for filtering journeys. Absent
// predicates match everything for their dimension; provided predicates
// are ANDed.
type FilterQuery struct {
	// Text matches as a case-insensitive substring of title or description.
	Text string
	// Category matches exactly; CategoryAll (or empty) matches every record.
	Category Category
	// MinDuration and MaxDuration are inclusive bounds in minutes. Nil
	// means unbounded on that side.
	MinDuration *int
	MaxDuration *int
}

// Filter applies the query to a journey sequence. It is a pure function:
// the input slice is never modified, order is preserved, and filtering an
// already-filtered result with the same query yields the same set.
// Inverted bounds (min > max) match nothing.
func Filter(journeys []*Journey, query FilterQuery) []*Journey {
	if query.MinDuration != nil && query.MaxDuration != nil && *query.MinDuration > *query.MaxDuration {
		return []*Journey{}
	}

	text := strings.ToLower(strings.TrimSpace(query.Text))

	result := make([]*Journey, 0, len(journeys))
	for _, j := range journeys {
		if text != "" && !matchesText(j, text) {
			continue
		}
		if query.Category != "" && query.Category != CategoryAll && j.Category() != query.Category {
			continue
		}
		if query.MinDuration != nil && j.Duration() < *query.MinDuration {
			continue
		}
		if query.MaxDuration != nil && j.Duration() > *query.MaxDuration {
			continue
		}
		result = append(result, j)
	}
	return result
}

func matchesText(j *Journey, lowered string) bool {
	return strings.Contains(strings.ToLower(j.Title()), lowered) ||
		strings.Contains(strings.ToLower(j.Description()), lowered)
}
