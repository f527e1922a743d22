package freq

import (
	"sort"
)

// Entry is one ranked word. Rank starts at 1.
type Entry struct {
	Rank  int    `json:"rank"`
	Count int    `json:"count"`
	Word  string `json:"word"`
}

// Rank orders the map by count descending, then by word ascending, and
// numbers the result 1..len(m).
func Rank(m Map) []Entry {
	ranked := make([]Entry, 0, len(m))
	for word, n := range m {
		ranked = append(ranked, Entry{Count: n, Word: word})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count == ranked[j].Count {
			return ranked[i].Word < ranked[j].Word
		}
		return ranked[i].Count > ranked[j].Count
	})

	for i := range ranked {
		ranked[i].Rank = i + 1
	}

	return ranked
}

// Rerank rebuilds the order of an existing list from its (word, count) pairs,
// ignoring the ranks it carries. Duplicate words are summed.
func Rerank(entries []Entry) []Entry {
	m := make(Map, len(entries))
	for _, e := range entries {
		m[e.Word] += e.Count
	}
	return Rank(m)
}

// Stats summarizes a ranked corpus
type Stats struct {
	Tokens int // total words read
	Unique int // distinct words
	Hapax  int // words seen once
}

// Summarize computes Stats over a ranked list
func Summarize(ranked []Entry) Stats {
	var s Stats
	for _, e := range ranked {
		s.Tokens += e.Count
		if e.Count == 1 {
			s.Hapax++
		}
	}
	s.Unique = len(ranked)
	return s
}

// Point is one (rank, count) pair for a log-log Zipf plot
type Point struct {
	Rank  float64
	Count float64
}

// PlotFeed lists the ranked entries as plot points in rank order
func PlotFeed(ranked []Entry) []Point {
	points := make([]Point, len(ranked))
	for i, e := range ranked {
		points[i] = Point{Rank: float64(e.Rank), Count: float64(e.Count)}
	}
	return points
}
