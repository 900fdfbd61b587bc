package editor

// LayoutProvider translates grapheme columns of a single line into pixel
// x-offsets for one font at one size. Implementations are bound to their
// font/size at construction and injected into the Controller; they must be
// pure functions of their inputs and grapheme-cluster aware, matching the
// buffer's indexing.
type LayoutProvider interface {
	// XAt returns the pixel x-offset of the caret boundary at grapheme index
	// col, measured from the line's left origin. ok is false iff col exceeds
	// the line's grapheme count. XAt(line, 0) is always (0, true), including
	// for an empty line.
	XAt(line string, col int) (x float32, ok bool)

	// LineWidth returns the total rendered width of line in pixels.
	LineWidth(line string) float32

	// LineHeight returns the vertical advance of one line in pixels.
	LineHeight() float32
}
