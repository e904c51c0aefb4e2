package matching

import (
	"sort"
)

// Candidate is a scored catalog item waiting for selection
type Candidate[T any] struct {
	Item     T
	ID       string
	Category string
	Score    float64
}

// RecentSet is the recently-used ids of one couple and catalog kind
type RecentSet map[string]struct{}

// NewRecentSet builds a set from an id list
func NewRecentSet(ids []string) RecentSet {
	s := make(RecentSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Contains reports whether id was used recently
func (s RecentSet) Contains(id string) bool {
	_, ok := s[id]
	return ok
}

// RankByScore sorts candidates by score descending, ties by id
func RankByScore[T any](cands []Candidate[T]) {
	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].Score != cands[j].Score {
			return cands[i].Score > cands[j].Score
		}
		return cands[i].ID < cands[j].ID
	})
}

// TopDiverse takes up to n items from a ranked list. A category already
// chosen is skipped once two slots are filled; any remaining slots are
// backfilled by score regardless of category.
func TopDiverse[T any](ranked []Candidate[T], n int) []Candidate[T] {
	if n <= 0 || len(ranked) == 0 {
		return nil
	}

	selected := make([]Candidate[T], 0, n)
	taken := make([]bool, len(ranked))
	categories := make(map[string]bool)

	for i, c := range ranked {
		if len(selected) == n {
			break
		}
		if categories[c.Category] && len(selected) >= 2 {
			continue
		}
		selected = append(selected, c)
		taken[i] = true
		categories[c.Category] = true
	}

	for i, c := range ranked {
		if len(selected) == n {
			break
		}
		if taken[i] {
			continue
		}
		selected = append(selected, c)
		taken[i] = true
	}

	return selected
}

// WeightedPick draws one candidate with probability proportional to its
// score. Negative scores count as zero; an all-zero list is drawn uniformly.
func WeightedPick[T any](ranked []Candidate[T], rnd RandomSource) (Candidate[T], bool) {
	if len(ranked) == 0 {
		return Candidate[T]{}, false
	}

	var total float64
	for _, c := range ranked {
		total += nonNegative(c.Score)
	}
	if total <= 0 {
		return UniformPick(ranked, rnd)
	}

	remainder := rnd.Float64() * total
	for _, c := range ranked {
		w := nonNegative(c.Score)
		if w == 0 {
			continue
		}
		remainder -= w
		if remainder <= 0 {
			return c, true
		}
	}

	// float rounding can leave a sliver; the last weighted item absorbs it
	for i := len(ranked) - 1; i >= 0; i-- {
		if nonNegative(ranked[i].Score) > 0 {
			return ranked[i], true
		}
	}
	return ranked[len(ranked)-1], true
}

// UniformPick draws one candidate uniformly
func UniformPick[T any](cands []Candidate[T], rnd RandomSource) (Candidate[T], bool) {
	if len(cands) == 0 {
		return Candidate[T]{}, false
	}
	return cands[rnd.Intn(len(cands))], true
}

func nonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
