package widget

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/codeview/buffer"
	"github.com/iw2rmb/codeview/editor"
	"github.com/iw2rmb/codeview/layout/monospace"
)

// Model is a Bubble Tea component that renders and edits a buffer through an
// editor controller. It measures on a terminal cell grid, so scroll offsets
// and caret positions are whole cells.
type Model struct {
	cfg    Config
	ctl    *editor.Controller
	layout *monospace.Provider

	focused bool

	width  int
	height int
	scroll editor.ScrollOffset
}

func New(cfg Config) Model {
	if cfg.TabWidth < 1 {
		cfg.TabWidth = 4
	}
	if !cfg.KeyMap.Left.Enabled() {
		cfg.KeyMap = DefaultKeyMap()
	}
	layout := monospace.New(1, 1, cfg.TabWidth)
	return Model{
		cfg:     cfg,
		ctl:     editor.NewController(buffer.New(cfg.Text), layout),
		layout:  layout,
		focused: true,
	}
}

// Controller exposes the underlying controller so hosts can drive edits or
// read state directly.
func (m Model) Controller() *editor.Controller { return m.ctl }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.width = width
	m.height = height
	m.followCursor()
	return m
}

func (m Model) Focus() Model {
	m.focused = true
	return m
}

func (m Model) Blur() Model {
	m.focused = false
	return m
}

func (m Model) Focused() bool { return m.focused }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		return m.updateKey(msg), nil
	}
	return m, nil
}

func (m Model) View() string { return m.renderContent() }

// contentViewport is the area left for line text after the gutter.
func (m Model) contentViewport() editor.Viewport {
	w := m.width - m.gutterWidth()
	if w < 0 {
		w = 0
	}
	return editor.Viewport{Width: float32(w), Height: float32(m.height)}
}

func (m Model) gutterWidth() int {
	if !m.cfg.ShowLineNums {
		return 0
	}
	return gutterDigits(m.ctl.Buffer().LineCount()) + 1
}

// followCursor adjusts the scroll offset so the caret cell stays inside the
// viewport, then clamps to the content bounds.
func (m *Model) followCursor() {
	vp := m.contentViewport()
	if vp.Width <= 0 || vp.Height <= 0 {
		return
	}
	caret := m.ctl.CaretPos()
	lineH := m.layout.LineHeight()

	if caret.Y+m.scroll.Y < 0 {
		m.scroll.Y = -caret.Y
	} else if caret.Y+lineH+m.scroll.Y > vp.Height {
		m.scroll.Y = vp.Height - caret.Y - lineH
	}
	if caret.X+m.scroll.X < 0 {
		m.scroll.X = -caret.X
	} else if caret.X+1+m.scroll.X > vp.Width {
		m.scroll.X = vp.Width - caret.X - 1
	}

	b := m.ctl.ScrollBounds(vp)
	// The end-of-line caret sits one cell past the widest line.
	b.MinX--
	m.scroll = editor.ClampScroll(m.scroll, b)
}
