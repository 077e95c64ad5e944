// Package console provides the cursor control used to redraw the race in
// place.
package console

import (
	"fmt"
	"io"
)

// Terminal moves the cursor and clears the screen of an output device.
type Terminal interface {
	// CursorUp moves the cursor up by n lines.
	CursorUp(w io.Writer, n int) error

	// Clear clears the screen and moves the cursor to the top-left corner.
	Clear(w io.Writer) error
}

// ANSI is a Terminal that uses ANSI escape sequences.
var ANSI Terminal = ansi{}

// Discard is a Terminal that does nothing. It is used when the output is not a
// terminal, in which case each frame is simply appended to the output.
var Discard Terminal = discard{}

type ansi struct{}

func (ansi) CursorUp(w io.Writer, n int) error {
	if n <= 0 {
		return nil
	}

	_, err := fmt.Fprintf(w, "\033[%dA", n)
	return err
}

func (ansi) Clear(w io.Writer) error {
	_, err := io.WriteString(w, "\033[H\033[2J")
	return err
}

type discard struct{}

func (discard) CursorUp(io.Writer, int) error { return nil }
func (discard) Clear(io.Writer) error         { return nil }
