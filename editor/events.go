package editor

import "fmt"

// EventKind enumerates the discrete input events the controller handles.
type EventKind int

const (
	EventMoveUp EventKind = iota + 1
	EventMoveDown
	EventMoveLeft
	EventMoveRight
	EventBackspace
	EventInsertChar
	EventInsertLineBreak
)

// Event is one key or character event. Text carries the inserted grapheme
// cluster(s) and is meaningful only for EventInsertChar.
type Event struct {
	Kind EventKind
	Text string
}

// InsertChar builds a character-insertion event. text should be a single
// grapheme cluster; longer input (IME commits, paste-through) is inserted
// cluster by cluster.
func InsertChar(text string) Event {
	return Event{Kind: EventInsertChar, Text: text}
}

// Apply processes one event synchronously. Movement events never fail:
// movements at buffer extremities clamp and leave the cursor unchanged. Edit
// events return an error only when an internal invariant has been violated;
// in that case the buffer and cursor are left unchanged.
func (c *Controller) Apply(ev Event) error {
	switch ev.Kind {
	case EventMoveUp:
		c.cur = moveVertical(c.buf, c.cur, c.layout, -1)
		return nil
	case EventMoveDown:
		c.cur = moveVertical(c.buf, c.cur, c.layout, +1)
		return nil
	case EventMoveLeft:
		c.cur = moveLeft(c.buf, c.cur, c.layout)
		return nil
	case EventMoveRight:
		c.cur = moveRight(c.buf, c.cur, c.layout)
		return nil
	case EventBackspace:
		return c.backspace()
	case EventInsertChar:
		return c.insertText(ev.Text)
	case EventInsertLineBreak:
		return c.insertLineBreak()
	default:
		return fmt.Errorf("editor: unknown event kind %d", ev.Kind)
	}
}
