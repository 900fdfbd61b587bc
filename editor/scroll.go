package editor

import "github.com/chewxy/math32"

// ScrollOffset is a host-owned scroll position in pixels. Offsets are
// non-positive: content scrolled out to the left/top corresponds to negative
// x/y, and (0, 0) shows the document origin.
type ScrollOffset struct {
	X float32
	Y float32
}

// Viewport is the visible content area in pixels.
type Viewport struct {
	Width  float32
	Height float32
}

// ScrollBounds is the inclusive valid offset range per axis: [MinX, 0] and
// [MinY, 0]. When the content fits the viewport the minimum is 0.
type ScrollBounds struct {
	MinX float32
	MinY float32
}

// ScrollBounds computes offset bounds for the current content and the given
// viewport: horizontally -(max_line_width - viewport_width), vertically
// -(line_count*line_height - viewport_height), each clamped to at most 0.
func (c *Controller) ScrollBounds(vp Viewport) ScrollBounds {
	m := c.Metrics()
	h := c.layout.LineHeight()
	return ScrollBounds{
		MinX: math32.Min(0, -(m.MaxLineWidth - vp.Width)),
		MinY: math32.Min(0, -(float32(m.LineCount)*h - vp.Height)),
	}
}

// ClampScroll confines off to b.
func ClampScroll(off ScrollOffset, b ScrollBounds) ScrollOffset {
	return ScrollOffset{
		X: math32.Min(0, math32.Max(b.MinX, off.X)),
		Y: math32.Min(0, math32.Max(b.MinY, off.Y)),
	}
}
