package editor

import "strconv"

// Metrics are the layout measurements a scroll/render host needs, recomputed
// when the buffer changes.
type Metrics struct {
	// MaxLineWidth is the pixel width of the widest line.
	MaxLineWidth float32
	// LineCount is the number of lines in the buffer; always >= 1.
	LineCount int
	// GutterWidth is the pixel width of the widest line-number label
	// (1-based), for hosts that render a line-number gutter.
	GutterWidth float32
}

// Metrics returns current layout metrics. Results are cached against the
// buffer version, so calling this every frame is cheap between edits.
func (c *Controller) Metrics() Metrics {
	if c.metricsOK && c.metricsAt == c.buf.Version() {
		return c.metrics
	}

	m := Metrics{LineCount: c.buf.LineCount()}
	for i, line := range c.buf.Lines() {
		if w := c.layout.LineWidth(line); w > m.MaxLineWidth {
			m.MaxLineWidth = w
		}
		if w := c.layout.LineWidth(strconv.Itoa(i + 1)); w > m.GutterWidth {
			m.GutterWidth = w
		}
	}

	c.metrics = m
	c.metricsAt = c.buf.Version()
	c.metricsOK = true
	return m
}

// CaretPos is the caret's pixel position relative to the content origin
// (before scroll offset is applied).
type CaretPos struct {
	X float32
	Y float32
}

// CaretPos returns the caret's pixel position: the cached x-offset and the
// row scaled by the provider's line height.
func (c *Controller) CaretPos() CaretPos {
	return CaretPos{
		X: c.cur.XOffset,
		Y: float32(c.cur.Row) * c.layout.LineHeight(),
	}
}

// Frame is the per-frame output surface for the rendering host: line texts
// for glyph queueing, the logical and pixel caret position, and the metrics
// for scroll-bound clamping.
type Frame struct {
	Lines   []string
	Cursor  Cursor
	Caret   CaretPos
	Metrics Metrics
}

// Frame snapshots the current state for rendering.
func (c *Controller) Frame() Frame {
	return Frame{
		Lines:   c.buf.Lines(),
		Cursor:  c.cur,
		Caret:   c.CaretPos(),
		Metrics: c.Metrics(),
	}
}
