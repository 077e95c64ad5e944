// Package track renders a horse's position as a fixed-width line of text.
package track

import (
	"strings"

	"github.com/dogmatiq/derby/horse"
)

const (
	// Cells is the number of cells on the track, one for each position from 0
	// to horse.FinishLine, inclusive.
	Cells = horse.FinishLine + 1

	// OccupiedCell is the symbol drawn in the cell occupied by the horse.
	OccupiedCell = "🐎"

	// EmptyCell is the symbol drawn in every other cell.
	EmptyCell = "-"

	// FinishMarker is the symbol drawn after the last cell.
	FinishMarker = "🏁"
)

// Render returns the track for a horse at the given position.
//
// Exactly one cell is occupied when position is between 0 and
// horse.FinishLine. Positions outside that range render an empty track.
func Render(position int) string {
	var b strings.Builder
	b.Grow(Cells + len(OccupiedCell) + len(FinishMarker))

	for i := 0; i < Cells; i++ {
		if i == position {
			b.WriteString(OccupiedCell)
		} else {
			b.WriteString(EmptyCell)
		}
	}

	b.WriteString(FinishMarker)

	return b.String()
}
