package ledger

// MergeDuplicateOwners coalesces entries that reference the same person by
// summing their percentages. The first occurrence keeps its position; later
// duplicates are dropped even when they are not adjacent.
func MergeDuplicateOwners(owners []Ownership) []Ownership {
	if len(owners) == 0 {
		return nil
	}
	merged := make([]Ownership, 0, len(owners))
	pos := make(map[int]int, len(owners))
	for _, o := range owners {
		if idx, ok := pos[o.Person]; ok {
			merged[idx].Percentage += o.Percentage
			continue
		}
		pos[o.Person] = len(merged)
		merged = append(merged, o)
	}
	return merged
}

// EqualSplit gives every listed person an equal share and merges repeats, so
// a person listed twice out of three ends up with two thirds. Shares are
// computed from pick counts, so a person picked every time owns exactly 1.
func EqualSplit(people []int) []Ownership {
	if len(people) == 0 {
		return nil
	}
	order := make([]int, 0, len(people))
	counts := make(map[int]int, len(people))
	for _, p := range people {
		if counts[p] == 0 {
			order = append(order, p)
		}
		counts[p]++
	}
	n := float64(len(people))
	owners := make([]Ownership, len(order))
	for i, p := range order {
		owners[i] = Ownership{Person: p, Percentage: float64(counts[p]) / n}
	}
	return owners
}

// SoleOwner reports the person when every entry of people names the same one.
func SoleOwner(people []int) (int, bool) {
	if len(people) == 0 {
		return 0, false
	}
	for _, p := range people[1:] {
		if p != people[0] {
			return 0, false
		}
	}
	return people[0], true
}
