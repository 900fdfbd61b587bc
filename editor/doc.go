// Package editor provides the cursor controller for a codeview buffer: it
// owns the logical caret position (row, grapheme column) plus its cached
// pixel x-offset, applies navigation and edit events, and exposes the layout
// metrics a rendering host needs (caret pixel position, max line width, line
// count, scroll bounds).
//
// The controller is deliberately free of rendering state. Pixel measurement
// comes from a LayoutProvider injected at construction, and the host applies
// the returned positions to its own caret geometry.
package editor
