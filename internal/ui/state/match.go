package state

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// SimilarPeople returns the indices of people whose names fuzzy match query,
// closest first. Exact duplicates are allowed in the ledger; this only feeds
// the hint shown while typing a new name.
func SimilarPeople(query string, people []string) []int {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" || len(people) == 0 {
		return nil
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, people)
	if len(ranks) == 0 {
		return nil
	}
	sort.SliceStable(ranks, func(i, j int) bool {
		if ranks[i].Distance != ranks[j].Distance {
			return ranks[i].Distance < ranks[j].Distance
		}
		return ranks[i].OriginalIndex < ranks[j].OriginalIndex
	})
	out := make([]int, 0, len(ranks))
	for _, rank := range ranks {
		out = append(out, rank.OriginalIndex)
	}
	return out
}
