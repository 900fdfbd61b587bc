package buffer

import "fmt"

// OutOfBoundsError reports a row or column argument outside the valid range
// of the buffer or line it addresses. It signals a contract violation by the
// caller; the targeted buffer or line is left unchanged.
type OutOfBoundsError struct {
	// Row is the offending row, or -1 for line-local operations that have no
	// row context.
	Row int
	Col int
}

func (e *OutOfBoundsError) Error() string {
	if e.Row < 0 {
		return fmt.Sprintf("buffer: column %d out of bounds", e.Col)
	}
	return fmt.Sprintf("buffer: position (%d, %d) out of bounds", e.Row, e.Col)
}
