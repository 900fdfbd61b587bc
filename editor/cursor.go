package editor

import (
	"github.com/iw2rmb/codeview/buffer"
	"github.com/iw2rmb/codeview/internal/grapheme"
)

// Cursor is the caret position: a row into the buffer, a grapheme column
// into that row (0 <= Col <= line length; Col == length puts the caret after
// the last cluster), and the cached pixel x-offset for that column. XOffset
// is re-derived from the LayoutProvider after every mutation; it is never an
// independent source of truth.
type Cursor struct {
	Row     int
	Col     int
	XOffset float32
}

// Controller applies navigation and edit events to a buffer while keeping
// the cursor's logical and pixel coordinates consistent.
type Controller struct {
	buf    *buffer.Buffer
	layout LayoutProvider
	cur    Cursor

	metrics   Metrics
	metricsAt uint64
	metricsOK bool
}

// NewController returns a controller for buf measuring with layout. The
// cursor starts at (0, 0).
func NewController(buf *buffer.Buffer, layout LayoutProvider) *Controller {
	return &Controller{buf: buf, layout: layout}
}

// Buffer returns the underlying buffer.
func (c *Controller) Buffer() *buffer.Buffer { return c.buf }

// Cursor returns the current caret position.
func (c *Controller) Cursor() Cursor { return c.cur }

// The movement primitives are pure: they take the current cursor and return
// the next one, so MoveLeft and Backspace share one boundary computation.

func moveLeft(buf *buffer.Buffer, cur Cursor, layout LayoutProvider) Cursor {
	if cur.Col > 0 {
		col := cur.Col - 1
		x, _ := layout.XAt(buf.LineText(cur.Row), col)
		return Cursor{Row: cur.Row, Col: col, XOffset: x}
	}
	if cur.Row > 0 {
		row := cur.Row - 1
		col := buf.LineLen(row)
		x, _ := layout.XAt(buf.LineText(row), col)
		return Cursor{Row: row, Col: col, XOffset: x}
	}
	return cur
}

func moveRight(buf *buffer.Buffer, cur Cursor, layout LayoutProvider) Cursor {
	if x, ok := layout.XAt(buf.LineText(cur.Row), cur.Col+1); ok {
		return Cursor{Row: cur.Row, Col: cur.Col + 1, XOffset: x}
	}
	if cur.Row+1 < buf.LineCount() {
		return Cursor{Row: cur.Row + 1, Col: 0, XOffset: 0}
	}
	return cur
}

// moveVertical moves the cursor delta rows and keeps the column when the
// target line still has a caret boundary there; otherwise it clamps to the
// target line's end. The clamped column is not remembered: navigating
// through a short line and back does not restore the larger column.
func moveVertical(buf *buffer.Buffer, cur Cursor, layout LayoutProvider, delta int) Cursor {
	row := cur.Row + delta
	if row < 0 || row >= buf.LineCount() {
		return cur
	}
	line := buf.LineText(row)
	if x, ok := layout.XAt(line, cur.Col); ok {
		return Cursor{Row: row, Col: cur.Col, XOffset: x}
	}
	col := buf.LineLen(row)
	x, _ := layout.XAt(line, col)
	return Cursor{Row: row, Col: col, XOffset: x}
}

// backspace is moveLeft followed by a removal at the resulting position.
// When the left movement crosses a row boundary the two lines merge instead,
// with the caret placed at the former split point.
func (c *Controller) backspace() error {
	if c.cur.Col > 0 {
		next := moveLeft(c.buf, c.cur, c.layout)
		if _, err := c.buf.Remove(next.Row, next.Col); err != nil {
			return err
		}
		// The line changed; resolve the cached x against the new content.
		x, _ := c.layout.XAt(c.buf.LineText(next.Row), next.Col)
		next.XOffset = x
		c.cur = next
		return nil
	}
	if c.cur.Row == 0 {
		return nil
	}

	joinCol, err := c.buf.MergeWithPrevious(c.cur.Row)
	if err != nil {
		return err
	}
	row := c.cur.Row - 1
	x, _ := c.layout.XAt(c.buf.LineText(row), joinCol)
	c.cur = Cursor{Row: row, Col: joinCol, XOffset: x}
	return nil
}

// insertText inserts text at the caret and re-syncs the cursor to just past
// the inserted clusters, the MoveRight-equivalent step of character input.
func (c *Controller) insertText(text string) error {
	n := grapheme.Count(text)
	if n == 0 {
		return nil
	}
	if err := c.buf.Insert(c.cur.Row, c.cur.Col, text); err != nil {
		return err
	}
	col := c.cur.Col + n
	x, _ := c.layout.XAt(c.buf.LineText(c.cur.Row), col)
	c.cur = Cursor{Row: c.cur.Row, Col: col, XOffset: x}
	return nil
}

// insertLineBreak splits the current line at the caret and moves to the
// start of the new suffix line.
func (c *Controller) insertLineBreak() error {
	if err := c.buf.SplitLine(c.cur.Row, c.cur.Col); err != nil {
		return err
	}
	c.cur = Cursor{Row: c.cur.Row + 1, Col: 0, XOffset: 0}
	return nil
}
