package main

import (
	"flag"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	lorem "github.com/drhodes/golorem"

	"github.com/iw2rmb/codeview/widget"
)

type model struct {
	editor widget.Model
}

func newModel(text string) model {
	cfg := widget.Config{
		Text:         text,
		ShowLineNums: true,
		Style:        widget.DefaultStyle(),
	}
	return model{editor: widget.New(cfg)}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "ctrl+c" {
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m model) View() string { return m.editor.View() }

func sampleText(lines int) string {
	out := make([]string, lines)
	for i := range out {
		out[i] = lorem.Sentence(5, 30)
	}
	return strings.Join(out, "\n")
}

func main() {
	lines := flag.Int("lines", 40, "number of generated sample lines")
	flag.Parse()

	text := "Type to edit. Use arrows to move. Ctrl+C to quit.\n\n" + sampleText(*lines)

	p := tea.NewProgram(newModel(text), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}
