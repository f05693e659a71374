package state

// StepCursor moves cursor by delta within a list of n entries. An empty
// list leaves the cursor where it is.
func StepCursor(cursor, delta, n int) int {
	if n == 0 {
		return cursor
	}
	cursor += delta
	if cursor < 0 {
		cursor = 0
	}
	if cursor >= n {
		cursor = n - 1
	}
	return cursor
}

// ViewportOffset returns the first visible row so the cursor stays inside a
// window of maxVisible rows over total entries, moving the previous offset as
// little as possible.
func ViewportOffset(cursor, offset, total, maxVisible int) int {
	if total == 0 || maxVisible <= 0 {
		return 0
	}
	if cursor < 0 {
		cursor = 0
	}
	if cursor >= total {
		cursor = total - 1
	}
	maxOffset := total - maxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if offset > maxOffset {
		offset = maxOffset
	}
	if offset < 0 {
		offset = 0
	}
	if cursor < offset {
		offset = cursor
	}
	upper := offset + maxVisible - 1
	if cursor > upper {
		offset = cursor - maxVisible + 1
		if offset < 0 {
			offset = 0
		}
		if offset > maxOffset {
			offset = maxOffset
		}
	}
	return offset
}
