package state

import (
	"reflect"
	"testing"
)

func TestSimilarPeople(t *testing.T) {
	people := []string{"Alicia", "Bob", "alice"}
	got := SimilarPeople("ali", people)
	want := []int{2, 0}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if got := SimilarPeople("  ", people); got != nil {
		t.Fatalf("expected no matches for blank query, got %v", got)
	}
	if got := SimilarPeople("zed", people); got != nil {
		t.Fatalf("expected no matches, got %v", got)
	}
}
