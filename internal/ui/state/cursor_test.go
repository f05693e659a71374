package state

import "testing"

func TestStepCursorClamps(t *testing.T) {
	if got := StepCursor(0, -1, 3); got != 0 {
		t.Fatalf("expected cursor to stay at 0, got %d", got)
	}
	if got := StepCursor(1, 1, 3); got != 2 {
		t.Fatalf("expected cursor 2, got %d", got)
	}
	if got := StepCursor(2, 1, 3); got != 2 {
		t.Fatalf("expected cursor to stay at last row, got %d", got)
	}
	if got := StepCursor(2, -5, 3); got != 0 {
		t.Fatalf("expected cursor clamped to 0, got %d", got)
	}
}

func TestStepCursorEmptyListKeepsCursor(t *testing.T) {
	for _, delta := range []int{-1, 1} {
		if got := StepCursor(0, delta, 0); got != 0 {
			t.Fatalf("expected unchanged cursor for empty list, got %d", got)
		}
	}
}

func TestViewportOffsetFollowsCursor(t *testing.T) {
	if got := ViewportOffset(4, 0, 5, 2); got != 3 {
		t.Fatalf("expected offset 3, got %d", got)
	}
	if got := ViewportOffset(-1, 3, 5, 2); got != 0 {
		t.Fatalf("expected offset 0 for negative cursor, got %d", got)
	}
	if got := ViewportOffset(3, 4, 5, 0); got != 0 {
		t.Fatalf("expected offset reset when maxVisible <= 0, got %d", got)
	}
	if got := ViewportOffset(1, 4, 5, 3); got != 1 {
		t.Fatalf("expected offset aligned with cursor, got %d", got)
	}
	if got := ViewportOffset(2, 1, 5, 3); got != 1 {
		t.Fatalf("expected offset kept while cursor visible, got %d", got)
	}
	if got := ViewportOffset(0, 2, 0, 3); got != 0 {
		t.Fatalf("expected offset 0 for empty list, got %d", got)
	}
}
