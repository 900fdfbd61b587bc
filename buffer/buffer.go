package buffer

import (
	"strings"

	"github.com/iw2rmb/codeview/internal/grapheme"
)

// Buffer is the editable line sequence. It owns document content only:
// cursor and layout state belong to the editor package, keeping the
// dependency single-directional.
type Buffer struct {
	lines   []Line
	version uint64
}

// New creates a buffer from source text. Line terminators are normalized to
// '\n'; a trailing terminator yields one extra empty final line so the caret
// can rest on a fresh line.
func New(text string) *Buffer {
	return &Buffer{lines: SplitLines(text)}
}

// SplitLines splits source text on line-terminator boundaries. The result is
// never empty: empty text produces a single empty line, and text ending in a
// terminator carries a trailing empty line.
func SplitLines(text string) []Line {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	parts := strings.Split(text, "\n")
	lines := make([]Line, 0, len(parts))
	for _, s := range parts {
		lines = append(lines, NewLine(s))
	}
	if len(lines) == 0 {
		lines = append(lines, Line{})
	}
	return lines
}

// Version increments on every successful mutation. Hosts can compare
// versions to detect change without diffing content.
func (b *Buffer) Version() uint64 { return b.version }

// LineCount returns the number of lines; always >= 1.
func (b *Buffer) LineCount() int { return len(b.lines) }

// LineLen returns the grapheme length of the given row, 0 if row is out of
// range.
func (b *Buffer) LineLen(row int) int {
	if row < 0 || row >= len(b.lines) {
		return 0
	}
	return len(b.lines[row])
}

// LineText returns the text of the given row, "" if row is out of range.
func (b *Buffer) LineText(row int) string {
	if row < 0 || row >= len(b.lines) {
		return ""
	}
	return b.lines[row].String()
}

// Lines returns a snapshot of all line texts in order, for glyph queueing by
// the rendering host.
func (b *Buffer) Lines() []string {
	out := make([]string, len(b.lines))
	for i, line := range b.lines {
		out[i] = line.String()
	}
	return out
}

// Text returns the full document joined with '\n'.
func (b *Buffer) Text() string {
	var sb strings.Builder
	for i, line := range b.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(line.String())
	}
	return sb.String()
}

// Insert inserts text at the grapheme-boundary index col in line row. text is
// segmented and spliced in cluster by cluster so every index keeps holding
// exactly one cluster; it must not contain line terminators (use SplitLine).
// Empty text is a no-op.
func (b *Buffer) Insert(row, col int, text string) error {
	if row < 0 || row >= len(b.lines) {
		return &OutOfBoundsError{Row: row, Col: col}
	}
	if col < 0 || col > len(b.lines[row]) {
		return &OutOfBoundsError{Row: row, Col: col}
	}
	clusters := grapheme.Split(text)
	if len(clusters) == 0 {
		return nil
	}

	line := b.lines[row]
	next := make(Line, 0, len(line)+len(clusters))
	next = append(next, line[:col]...)
	next = append(next, clusters...)
	next = append(next, line[col:]...)
	b.lines[row] = next
	b.version++
	return nil
}

// Remove removes and returns the grapheme cluster at index col in line row.
func (b *Buffer) Remove(row, col int) (string, error) {
	if row < 0 || row >= len(b.lines) {
		return "", &OutOfBoundsError{Row: row, Col: col}
	}
	removed, err := b.lines[row].RemoveAt(col)
	if err != nil {
		return "", &OutOfBoundsError{Row: row, Col: col}
	}
	b.version++
	return removed, nil
}

// SplitLine splits line row at index col: the prefix stays at row and the
// suffix becomes a new line at row+1.
func (b *Buffer) SplitLine(row, col int) error {
	if row < 0 || row >= len(b.lines) {
		return &OutOfBoundsError{Row: row, Col: col}
	}
	suffix, err := b.lines[row].SplitAt(col)
	if err != nil {
		return &OutOfBoundsError{Row: row, Col: col}
	}

	next := make([]Line, 0, len(b.lines)+1)
	next = append(next, b.lines[:row+1]...)
	next = append(next, suffix)
	next = append(next, b.lines[row+1:]...)
	b.lines = next
	b.version++
	return nil
}

// MergeWithPrevious appends line row onto line row-1 and removes line row.
// The returned joinCol is the previous line's length before the merge, which
// is the former split point. row 0 is a no-op returning (0, nil).
func (b *Buffer) MergeWithPrevious(row int) (joinCol int, err error) {
	if row < 0 || row >= len(b.lines) {
		return 0, &OutOfBoundsError{Row: row, Col: 0}
	}
	if row == 0 {
		return 0, nil
	}

	joinCol = len(b.lines[row-1])
	b.lines[row-1].Append(b.lines[row])

	next := make([]Line, 0, len(b.lines)-1)
	next = append(next, b.lines[:row]...)
	next = append(next, b.lines[row+1:]...)
	b.lines = next
	b.version++
	return joinCol, nil
}
