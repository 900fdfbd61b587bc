// Package fontface provides a LayoutProvider backed by a golang.org/x/image
// font.Face, for hosts that rasterize proportional or bitmap fonts. Advances
// are measured per grapheme cluster with kerning applied between clusters.
package fontface

import (
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/iw2rmb/codeview/internal/grapheme"
)

const defaultTabWidth = 4

// Provider measures lines with a font.Face. Not safe for concurrent use;
// font.Face implementations generally are not either.
type Provider struct {
	face    font.Face
	height  float32
	tabStop fixed.Int26_6
}

// New returns a provider measuring with face. tabWidth is the tab stop
// interval in space-advances; values < 1 fall back to 4.
func New(face font.Face, tabWidth int) *Provider {
	if tabWidth < 1 {
		tabWidth = defaultTabWidth
	}
	space, ok := face.GlyphAdvance(' ')
	if !ok {
		space = font.MeasureString(face, " ")
	}
	return &Provider{
		face:    face,
		height:  toPixels(face.Metrics().Height),
		tabStop: space * fixed.Int26_6(tabWidth),
	}
}

// XAt returns the pixel x-offset of the caret boundary before the col-th
// grapheme cluster of line. ok is false when col exceeds the cluster count.
func (p *Provider) XAt(line string, col int) (float32, bool) {
	if col < 0 {
		return 0, false
	}
	var x fixed.Int26_6
	prev := rune(-1)
	n := 0
	for _, c := range grapheme.Split(line) {
		if n == col {
			return toPixels(x), true
		}
		x, prev = p.advance(x, prev, c)
		n++
	}
	if col == n {
		return toPixels(x), true
	}
	return 0, false
}

// LineWidth returns the measured pixel width of line.
func (p *Provider) LineWidth(line string) float32 {
	var x fixed.Int26_6
	prev := rune(-1)
	for _, c := range grapheme.Split(line) {
		x, prev = p.advance(x, prev, c)
	}
	return toPixels(x)
}

// LineHeight returns the face's line height.
func (p *Provider) LineHeight() float32 { return p.height }

// advance moves x past one cluster and returns the rune kerning should pair
// with next. Tabs jump to the next tab stop and break the kerning chain.
func (p *Provider) advance(x fixed.Int26_6, prev rune, cluster string) (fixed.Int26_6, rune) {
	if cluster == "\t" {
		if p.tabStop > 0 {
			x = (x/p.tabStop + 1) * p.tabStop
		}
		return x, -1
	}
	first, last := edgeRunes(cluster)
	if prev >= 0 {
		x += p.face.Kern(prev, first)
	}
	return x + font.MeasureString(p.face, cluster), last
}

func edgeRunes(s string) (first, last rune) {
	first, last = -1, -1
	for _, r := range s {
		if first < 0 {
			first = r
		}
		last = r
	}
	return first, last
}

func toPixels(v fixed.Int26_6) float32 {
	return float32(v) / 64
}
