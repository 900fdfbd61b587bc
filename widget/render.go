package widget

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/iw2rmb/codeview/editor"
	"github.com/iw2rmb/codeview/internal/grapheme"
)

func (m Model) renderContent() string {
	f := m.ctl.Frame()

	top := int(-m.scroll.Y)
	bottom := top + m.height
	if m.height <= 0 {
		top, bottom = 0, len(f.Lines)
	}

	left := int(-m.scroll.X)
	right := left + int(m.contentViewport().Width)
	if m.width <= 0 {
		left = 0
		right = int(^uint(0) >> 1)
	}

	digits := gutterDigits(len(f.Lines))

	out := make([]string, 0, bottom-top)
	for row := top; row < bottom; row++ {
		if row < 0 || row >= len(f.Lines) {
			// Viewport rows past the end of the buffer render empty.
			out = append(out, "")
			continue
		}

		var sb strings.Builder
		if m.cfg.ShowLineNums {
			numStyle := m.cfg.Style.LineNum
			if m.focused && row == f.Cursor.Row {
				numStyle = m.cfg.Style.LineNumActive
			}
			sb.WriteString(numStyle.Render(fmt.Sprintf("%*d", digits, row+1)))
			sb.WriteString(m.cfg.Style.Gutter.Render(" "))
		}
		sb.WriteString(m.renderLine(row, f.Lines[row], f.Cursor, left, right))
		out = append(out, sb.String())
	}
	return strings.Join(out, "\n")
}

// renderLine renders the cell span [left, right) of one line, styling the
// cluster under the caret.
func (m Model) renderLine(row int, line string, cur editor.Cursor, left, right int) string {
	st := m.cfg.Style
	hasCursor := m.focused && cur.Row == row

	clusters := grapheme.Split(line)
	bounds := m.layout.Cells(line)

	var sb strings.Builder
	for i, c := range clusters {
		segL, segR := bounds[i], bounds[i+1]
		spanL, spanR := max(segL, left), min(segR, right)
		if spanL >= spanR {
			continue
		}
		text := c
		if c == "\t" || spanR-spanL != segR-segL {
			// Tabs and clipped wide clusters render as blanks.
			text = strings.Repeat(" ", spanR-spanL)
		}
		style := st.Text
		if hasCursor && i == cur.Col {
			style = st.Cursor
		}
		sb.WriteString(style.Render(text))
	}

	// Caret at end of line renders as a 1-cell placeholder space.
	if hasCursor && cur.Col == len(clusters) {
		eol := bounds[len(clusters)]
		if eol >= left && eol < right {
			sb.WriteString(st.Cursor.Render(" "))
		}
	}
	return sb.String()
}

func gutterDigits(lineCount int) int {
	if lineCount < 1 {
		lineCount = 1
	}
	return len(strconv.Itoa(lineCount))
}
