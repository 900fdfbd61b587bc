package buffer

import "github.com/iw2rmb/codeview/internal/grapheme"

// Line is one row of the document as an ordered sequence of grapheme
// clusters. Index arguments are cluster indices, never bytes or runes.
type Line []string

// NewLine segments text into a Line. text must not contain line terminators;
// SplitLines handles those.
func NewLine(text string) Line {
	return Line(grapheme.Split(text))
}

// Len returns the number of grapheme clusters in the line.
func (l Line) Len() int { return len(l) }

// String returns the line's text.
func (l Line) String() string { return grapheme.Join(l) }

// InsertAt inserts one grapheme cluster at index i (0 <= i <= Len). Input
// that segments into multiple clusters is spliced cluster by cluster, so
// every index keeps holding exactly one cluster.
func (l *Line) InsertAt(i int, cluster string) error {
	if i < 0 || i > len(*l) {
		return &OutOfBoundsError{Row: -1, Col: i}
	}
	ins := []string{cluster}
	if !grapheme.IsSingle(cluster) {
		ins = grapheme.Split(cluster)
	}
	next := make(Line, 0, len(*l)+len(ins))
	next = append(next, (*l)[:i]...)
	next = append(next, ins...)
	next = append(next, (*l)[i:]...)
	*l = next
	return nil
}

// RemoveAt removes and returns the grapheme cluster at index i (0 <= i < Len).
func (l *Line) RemoveAt(i int) (string, error) {
	if i < 0 || i >= len(*l) {
		return "", &OutOfBoundsError{Row: -1, Col: i}
	}
	removed := (*l)[i]
	next := make(Line, 0, len(*l)-1)
	next = append(next, (*l)[:i]...)
	next = append(next, (*l)[i+1:]...)
	*l = next
	return removed, nil
}

// SplitAt splits the line at index i (0 <= i <= Len). The receiver keeps the
// prefix [0, i) and the returned line holds the suffix [i, Len).
func (l *Line) SplitAt(i int) (Line, error) {
	if i < 0 || i > len(*l) {
		return nil, &OutOfBoundsError{Row: -1, Col: i}
	}
	suffix := append(Line(nil), (*l)[i:]...)
	*l = append(Line(nil), (*l)[:i]...)
	return suffix, nil
}

// Append merges other onto the end of the line.
func (l *Line) Append(other Line) {
	*l = append(*l, other...)
}
