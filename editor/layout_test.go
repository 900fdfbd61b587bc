package editor

import "github.com/iw2rmb/codeview/internal/grapheme"

// fixedWidthProvider gives every grapheme cluster the same advance. Tests
// use it so expected x-offsets are simple multiples of adv.
type fixedWidthProvider struct {
	adv    float32
	height float32
}

func (p fixedWidthProvider) XAt(line string, col int) (float32, bool) {
	if col < 0 || col > grapheme.Count(line) {
		return 0, false
	}
	return float32(col) * p.adv, true
}

func (p fixedWidthProvider) LineWidth(line string) float32 {
	return float32(grapheme.Count(line)) * p.adv
}

func (p fixedWidthProvider) LineHeight() float32 { return p.height }

func testProvider() fixedWidthProvider {
	return fixedWidthProvider{adv: 10, height: 16}
}
