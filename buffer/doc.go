// Package buffer implements the pure, grapheme-accurate document model for
// codeview.
//
// Coordinates are 0-based (Row, Col) in grapheme clusters. A buffer always
// holds at least one line; an empty document is one empty line. Edit
// operations validate their arguments before mutating anything: a rejected
// edit returns *OutOfBoundsError and leaves the buffer unchanged.
package buffer
