package buffer

import (
	"errors"
	"testing"
)

func TestSplitLines_TrailingTerminator(t *testing.T) {
	cases := []struct {
		text string
		want []string
	}{
		{text: "", want: []string{""}},
		{text: "a", want: []string{"a"}},
		{text: "a\n", want: []string{"a", ""}},
		{text: "a\nb", want: []string{"a", "b"}},
		{text: "a\r\nb\r\n", want: []string{"a", "b", ""}},
		{text: "a\rb", want: []string{"a", "b"}},
		{text: "\n", want: []string{"", ""}},
	}

	for _, tc := range cases {
		lines := SplitLines(tc.text)
		if len(lines) != len(tc.want) {
			t.Fatalf("SplitLines(%q): got %d lines, want %d", tc.text, len(lines), len(tc.want))
		}
		for i, line := range lines {
			if got := line.String(); got != tc.want[i] {
				t.Fatalf("SplitLines(%q)[%d]=%q, want %q", tc.text, i, got, tc.want[i])
			}
		}
	}
}

func TestBuffer_NeverEmpty(t *testing.T) {
	b := New("")
	if got := b.LineCount(); got != 1 {
		t.Fatalf("empty buffer line count=%d, want 1", got)
	}
	if got := b.LineLen(0); got != 0 {
		t.Fatalf("empty buffer line len=%d, want 0", got)
	}
}

func TestBuffer_Insert(t *testing.T) {
	b := New("ac\nz")
	if err := b.Insert(0, 1, "b"); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if got := b.LineText(0); got != "abc" {
		t.Fatalf("line 0=%q, want %q", got, "abc")
	}
	if b.Version() != 1 {
		t.Fatalf("version=%d, want 1", b.Version())
	}

	// Multi-cluster text occupies one index per cluster.
	if err := b.Insert(1, 0, "xy"); err != nil {
		t.Fatalf("Insert multi: %v", err)
	}
	if got := b.LineText(1); got != "xyz" {
		t.Fatalf("line 1=%q, want %q", got, "xyz")
	}
	if got := b.LineLen(1); got != 3 {
		t.Fatalf("line 1 len=%d, want 3", got)
	}

	// Empty text is a no-op and does not bump the version.
	ver := b.Version()
	if err := b.Insert(0, 0, ""); err != nil {
		t.Fatalf("Insert empty: %v", err)
	}
	if b.Version() != ver {
		t.Fatalf("version bumped by empty insert")
	}
}

func TestBuffer_Insert_OutOfBounds(t *testing.T) {
	b := New("ab")
	var oob *OutOfBoundsError

	if err := b.Insert(1, 0, "x"); !errors.As(err, &oob) {
		t.Fatalf("Insert row 1: got %v, want OutOfBoundsError", err)
	}
	if err := b.Insert(0, 3, "x"); !errors.As(err, &oob) {
		t.Fatalf("Insert col 3: got %v, want OutOfBoundsError", err)
	}
	if got := b.Text(); got != "ab" {
		t.Fatalf("buffer changed by rejected insert: %q", got)
	}
	if b.Version() != 0 {
		t.Fatalf("version bumped by rejected insert")
	}
}

func TestBuffer_Remove(t *testing.T) {
	b := New("abc")
	removed, err := b.Remove(0, 1)
	if err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if removed != "b" {
		t.Fatalf("removed=%q, want %q", removed, "b")
	}
	if got := b.LineText(0); got != "ac" {
		t.Fatalf("line=%q, want %q", got, "ac")
	}

	var oob *OutOfBoundsError
	if _, err := b.Remove(0, 2); !errors.As(err, &oob) {
		t.Fatalf("Remove col 2: got %v, want OutOfBoundsError", err)
	}
	if _, err := b.Remove(5, 0); !errors.As(err, &oob) {
		t.Fatalf("Remove row 5: got %v, want OutOfBoundsError", err)
	}
}

func TestBuffer_SplitLine(t *testing.T) {
	b := New("abcd")
	if err := b.SplitLine(0, 2); err != nil {
		t.Fatalf("SplitLine: %v", err)
	}
	if got := b.LineCount(); got != 2 {
		t.Fatalf("line count=%d, want 2", got)
	}
	if got := b.LineText(0); got != "ab" {
		t.Fatalf("line 0=%q, want %q", got, "ab")
	}
	if got := b.LineText(1); got != "cd" {
		t.Fatalf("line 1=%q, want %q", got, "cd")
	}

	// Split at end of line yields an empty new line.
	if err := b.SplitLine(1, 2); err != nil {
		t.Fatalf("SplitLine at end: %v", err)
	}
	if got := b.LineText(2); got != "" {
		t.Fatalf("line 2=%q, want empty", got)
	}

	var oob *OutOfBoundsError
	if err := b.SplitLine(0, 3); !errors.As(err, &oob) {
		t.Fatalf("SplitLine col 3: got %v, want OutOfBoundsError", err)
	}
}

func TestBuffer_MergeWithPrevious(t *testing.T) {
	b := New("ab\ncd")
	joinCol, err := b.MergeWithPrevious(1)
	if err != nil {
		t.Fatalf("MergeWithPrevious: %v", err)
	}
	if joinCol != 2 {
		t.Fatalf("joinCol=%d, want 2", joinCol)
	}
	if got := b.Text(); got != "abcd" {
		t.Fatalf("text=%q, want %q", got, "abcd")
	}
	if got := b.LineCount(); got != 1 {
		t.Fatalf("line count=%d, want 1", got)
	}
}

func TestBuffer_MergeWithPrevious_RowZeroIsNoOp(t *testing.T) {
	b := New("ab\ncd")
	ver := b.Version()
	joinCol, err := b.MergeWithPrevious(0)
	if err != nil {
		t.Fatalf("MergeWithPrevious(0): %v", err)
	}
	if joinCol != 0 {
		t.Fatalf("joinCol=%d, want 0", joinCol)
	}
	if got := b.Text(); got != "ab\ncd" {
		t.Fatalf("text changed by no-op merge: %q", got)
	}
	if b.Version() != ver {
		t.Fatalf("version bumped by no-op merge")
	}
}

func TestBuffer_MergeNeverEmptiesBuffer(t *testing.T) {
	b := New("a\nb\nc")
	for i := 0; i < 10; i++ {
		if _, err := b.MergeWithPrevious(b.LineCount() - 1); err != nil {
			t.Fatalf("merge %d: %v", i, err)
		}
		if b.LineCount() < 1 {
			t.Fatalf("line count dropped below 1")
		}
	}
	if got := b.LineCount(); got != 1 {
		t.Fatalf("line count=%d, want 1", got)
	}
	if got := b.Text(); got != "abc" {
		t.Fatalf("text=%q, want %q", got, "abc")
	}
}

func TestBuffer_SplitMergeRoundTrip(t *testing.T) {
	b := New("abcd")
	if err := b.SplitLine(0, 2); err != nil {
		t.Fatalf("SplitLine: %v", err)
	}
	joinCol, err := b.MergeWithPrevious(1)
	if err != nil {
		t.Fatalf("MergeWithPrevious: %v", err)
	}
	if joinCol != 2 {
		t.Fatalf("joinCol=%d, want 2", joinCol)
	}
	if got := b.Text(); got != "abcd" {
		t.Fatalf("text=%q, want %q", got, "abcd")
	}
}

func TestBuffer_GraphemeIndexing(t *testing.T) {
	// One combining sequence and one emoji each occupy a single column.
	b := New("é\U0001F600x")
	if got := b.LineLen(0); got != 3 {
		t.Fatalf("line len=%d, want 3", got)
	}
	removed, err := b.Remove(0, 1)
	if err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if removed != "\U0001F600" {
		t.Fatalf("removed=%q, want emoji", removed)
	}
	if got := b.LineText(0); got != "éx" {
		t.Fatalf("line=%q, want %q", got, "éx")
	}
}

func TestBuffer_LinesSnapshot(t *testing.T) {
	b := New("a\nb")
	lines := b.Lines()
	lines[0] = "mutated"
	if got := b.LineText(0); got != "a" {
		t.Fatalf("snapshot aliased buffer storage: %q", got)
	}
}
