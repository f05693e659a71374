package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeDuplicateOwnersAdjacent(t *testing.T) {
	got := MergeDuplicateOwners([]Ownership{
		{Person: 0, Percentage: 0.25},
		{Person: 0, Percentage: 0.25},
		{Person: 1, Percentage: 0.5},
	})
	assert.Equal(t, []Ownership{{Person: 0, Percentage: 0.5}, {Person: 1, Percentage: 0.5}}, got)
}

// A person picked again after someone else is still merged into one entry.
func TestMergeDuplicateOwnersNonAdjacent(t *testing.T) {
	third := 1.0 / 3
	got := MergeDuplicateOwners([]Ownership{
		{Person: 0, Percentage: third},
		{Person: 1, Percentage: third},
		{Person: 0, Percentage: third},
	})
	require.Len(t, got, 2)
	assert.Equal(t, 0, got[0].Person)
	assert.InDelta(t, 2.0/3, got[0].Percentage, 1e-9)
	assert.Equal(t, 1, got[1].Person)
	assert.InDelta(t, third, got[1].Percentage, 1e-9)
}

func TestMergeDuplicateOwnersEmpty(t *testing.T) {
	assert.Nil(t, MergeDuplicateOwners(nil))
}

func TestMergeDuplicateOwnersDoesNotAliasInput(t *testing.T) {
	in := []Ownership{{Person: 2, Percentage: 0.5}, {Person: 2, Percentage: 0.5}}
	out := MergeDuplicateOwners(in)
	out[0].Percentage = 0
	assert.Equal(t, 0.5, in[0].Percentage)
}

func TestEqualSplit(t *testing.T) {
	assert.Nil(t, EqualSplit(nil))
	assert.Equal(t, []Ownership{{Person: 3, Percentage: 1}}, EqualSplit([]int{3}))
	assert.Equal(t, []Ownership{{Person: 3, Percentage: 1}}, EqualSplit([]int{3, 3}))

	got := EqualSplit([]int{0, 1, 2, 1})
	require.Len(t, got, 3)
	assert.Equal(t, Ownership{Person: 0, Percentage: 0.25}, got[0])
	assert.Equal(t, Ownership{Person: 1, Percentage: 0.5}, got[1])
	assert.Equal(t, Ownership{Person: 2, Percentage: 0.25}, got[2])
}

func TestEqualSplitRepeatedPersonOwnsWholeItem(t *testing.T) {
	for _, n := range []int{7, 9, 11, 21} {
		picks := make([]int, n)
		got := EqualSplit(picks)
		require.Len(t, got, 1, "n=%d", n)
		assert.Equal(t, 1.0, got[0].Percentage, "n=%d", n)

		l := New([]Item{{Description: "Bread", Quantity: 2, Price: decimal.RequireFromString("2.48")}}, []string{"Alice"})
		require.True(t, l.SetOwners(0, got))
		assert.True(t, l.Totals()[0].Equal(decimal.RequireFromString("2.48")), "n=%d total=%s", n, l.Totals()[0])
	}
}

func TestEqualSplitSharesSumToOne(t *testing.T) {
	got := EqualSplit([]int{0, 1, 0, 2, 0, 1, 0, 0, 2})
	require.Len(t, got, 3)
	assert.Equal(t, 5.0/9, got[0].Percentage)
	assert.Equal(t, 2.0/9, got[1].Percentage)
	assert.Equal(t, 2.0/9, got[2].Percentage)
}

func TestSoleOwner(t *testing.T) {
	p, ok := SoleOwner([]int{2, 2, 2})
	assert.True(t, ok)
	assert.Equal(t, 2, p)

	_, ok = SoleOwner([]int{2, 1})
	assert.False(t, ok)
	_, ok = SoleOwner(nil)
	assert.False(t, ok)
}
