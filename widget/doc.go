// Package widget provides a Bubble Tea component around an editor
// controller: key bindings, a line-number gutter, cursor rendering, and a
// scrolling view that follows the caret.
package widget
