package widget

// Config configures the widget Model.
type Config struct {
	// Initial text for the internal buffer.
	Text string

	// Rendering options.
	ShowLineNums bool
	Style        Style

	// TabWidth is the tab stop interval in cells. Values < 1 default to 4.
	TabWidth int

	// KeyMap defaults to DefaultKeyMap when left unset.
	KeyMap KeyMap
}
