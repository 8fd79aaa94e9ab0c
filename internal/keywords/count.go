package keywords

import "sort"

// Count maps a keyword to the number of times it appears in a job posting.
type Count map[string]int

// Pair is a keyword together with its occurrence count.
type Pair struct {
	Keyword string
	Count   int
}

// Ranked returns all pairs ordered by count (descending), breaking ties
// by keyword name so the order is stable across runs.
func (c Count) Ranked() []Pair {
	pairs := make([]Pair, 0, len(c))
	for keyword, count := range c {
		pairs = append(pairs, Pair{Keyword: keyword, Count: count})
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].Count != pairs[j].Count {
			return pairs[i].Count > pairs[j].Count
		}
		return pairs[i].Keyword < pairs[j].Keyword
	})
	return pairs
}

// Top returns the n highest-ranked pairs. n <= 0 or past the end returns
// everything.
func (c Count) Top(n int) []Pair {
	ranked := c.Ranked()
	if n > 0 && n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}

// Names returns the keywords in ranked order.
func (c Count) Names() []string {
	ranked := c.Ranked()
	names := make([]string, len(ranked))
	for i, pair := range ranked {
		names[i] = pair.Keyword
	}
	return names
}
