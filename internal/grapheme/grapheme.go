// Package grapheme wraps uniseg segmentation behind the small helper set the
// buffer and the layout providers share. Grapheme clusters are the unit of
// column indexing everywhere in this module.
package grapheme

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Split returns the grapheme clusters of text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	g := uniseg.NewGraphemes(text)
	n := 0
	for g.Next() {
		n++
	}
	return n
}

// Join concatenates grapheme clusters into a single string.
func Join(clusters []string) string {
	if len(clusters) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, c := range clusters {
		sb.WriteString(c)
	}
	return sb.String()
}

// IsSingle reports whether text is exactly one grapheme cluster.
func IsSingle(text string) bool {
	if text == "" {
		return false
	}
	g := uniseg.NewGraphemes(text)
	if !g.Next() {
		return false
	}
	return !g.Next()
}
