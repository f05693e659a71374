package table

import "testing"

func TestFormatAlignsColumns(t *testing.T) {
	rows := [][]string{
		{"Bread", "2", "2.48"},
		{"Eggs", "12", "3.00"},
	}
	got := Format(rows, []Alignment{AlignLeft, AlignRight, AlignRight})
	want := []string{
		"Bread   2  2.48",
		"Eggs   12  3.00",
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d rows, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("row %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestFormatWidthShrinksFirstColumn(t *testing.T) {
	rows := [][]string{{"Sourdough loaf", "1", "4.50"}}
	got := FormatWidth(rows, []Alignment{AlignLeft, AlignRight, AlignRight}, 16)
	if len(got) != 1 {
		t.Fatalf("expected one row, got %d", len(got))
	}
	if got[0] != "Sourdo…  1  4.50" {
		t.Fatalf("unexpected row %q", got[0])
	}
}

func TestFormatEmpty(t *testing.T) {
	if got := Format(nil, nil); got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
}
