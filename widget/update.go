package widget

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/codeview/editor"
)

func (m Model) updateKey(msg tea.KeyMsg) Model {
	if !m.focused {
		return m
	}

	// Paste events insert literal text and never trigger shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		m.insertText(string(msg.Runes))
		m.followCursor()
		return m
	}

	km := m.cfg.KeyMap

	switch {
	case key.Matches(msg, km.Left):
		m.apply(editor.Event{Kind: editor.EventMoveLeft})
	case key.Matches(msg, km.Right):
		m.apply(editor.Event{Kind: editor.EventMoveRight})
	case key.Matches(msg, km.Up):
		m.apply(editor.Event{Kind: editor.EventMoveUp})
	case key.Matches(msg, km.Down):
		m.apply(editor.Event{Kind: editor.EventMoveDown})

	case key.Matches(msg, km.Backspace):
		m.apply(editor.Event{Kind: editor.EventBackspace})
	case key.Matches(msg, km.Enter):
		m.apply(editor.Event{Kind: editor.EventInsertLineBreak})

	default:
		if msg.Type == tea.KeyTab {
			m.apply(editor.InsertChar("\t"))
			break
		}
		if msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt {
			m.insertText(string(msg.Runes))
		}
	}

	m.followCursor()
	return m
}

func (m *Model) apply(ev editor.Event) {
	// Movement at buffer extremities is a no-op, not an error, so failures
	// here only occur for malformed events.
	_ = m.ctl.Apply(ev)
}

// insertText inserts possibly multi-line text, normalizing newlines from
// external sources.
func (m *Model) insertText(s string) {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	for i, part := range strings.Split(s, "\n") {
		if i > 0 {
			m.apply(editor.Event{Kind: editor.EventInsertLineBreak})
		}
		if part != "" {
			m.apply(editor.InsertChar(part))
		}
	}
}
