// Package monospace provides a LayoutProvider for grid-aligned rendering:
// every grapheme cluster occupies a whole number of cells, wide characters
// take two, and tabs advance to the next tab stop.
package monospace

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/iw2rmb/codeview/internal/grapheme"
)

const defaultTabWidth = 4

// Provider measures lines on a fixed character grid. The zero value is not
// usable; construct with New.
type Provider struct {
	cellWidth float32
	height    float32
	tabWidth  int
}

// New returns a monospace provider with the given cell size. tabWidth is the
// tab stop interval in cells; values < 1 fall back to 4.
func New(cellWidth, lineHeight float32, tabWidth int) *Provider {
	if tabWidth < 1 {
		tabWidth = defaultTabWidth
	}
	return &Provider{cellWidth: cellWidth, height: lineHeight, tabWidth: tabWidth}
}

// XAt returns the pixel x-offset of the caret boundary before the col-th
// grapheme cluster of line. ok is false when col exceeds the cluster count.
func (p *Provider) XAt(line string, col int) (float32, bool) {
	if col < 0 {
		return 0, false
	}
	cells, n := 0, 0
	for _, c := range grapheme.Split(line) {
		if n == col {
			return float32(cells) * p.cellWidth, true
		}
		cells += p.clusterCells(c, cells)
		n++
	}
	if col == n {
		return float32(cells) * p.cellWidth, true
	}
	return 0, false
}

// LineWidth returns the pixel width of line on the cell grid.
func (p *Provider) LineWidth(line string) float32 {
	cells := 0
	for _, c := range grapheme.Split(line) {
		cells += p.clusterCells(c, cells)
	}
	return float32(cells) * p.cellWidth
}

// LineHeight returns the fixed row height.
func (p *Provider) LineHeight() float32 { return p.height }

// Cells returns the starting cell of every caret boundary in line: element i
// is where the i-th cluster begins, and the final element is the line's total
// cell count. Renderers use it to place clusters on the grid without
// re-measuring prefixes.
func (p *Provider) Cells(line string) []int {
	clusters := grapheme.Split(line)
	out := make([]int, len(clusters)+1)
	cells := 0
	for i, c := range clusters {
		out[i] = cells
		cells += p.clusterCells(c, cells)
	}
	out[len(clusters)] = cells
	return out
}

// clusterCells is the cell width of a single cluster at the given cell
// offset. Tabs advance to the next tab stop; everything else is measured
// with runewidth, falling back to uniseg for clusters runewidth reports
// as zero-width.
func (p *Provider) clusterCells(cluster string, at int) int {
	if cluster == "\t" {
		return p.tabWidth - at%p.tabWidth
	}
	w := runewidth.StringWidth(cluster)
	if w <= 0 {
		if fb := uniseg.StringWidth(cluster); fb > w {
			w = fb
		}
	}
	if w < 1 {
		w = 1
	}
	return w
}
