package result

import (
	"fmt"
	"io"
	"time"

	"github.com/dogmatiq/iago/must"
)

// Entry is a single horse's result.
type Entry struct {
	// Place is the 1-based finishing position of the horse.
	Place int

	// HorseID is the ID of the horse that finished.
	HorseID int

	// FinishedAt is the time at which the finish was recorded.
	FinishedAt time.Time
}

// Ranking is the finish log of a race, in the order that the horses finished.
type Ranking []Entry

// HorseIDs returns the IDs of the horses in the order they finished.
func (r Ranking) HorseIDs() []int {
	ids := make([]int, len(r))

	for i, e := range r {
		ids[i] = e.HorseID
	}

	return ids
}

// WriteTo writes a human-readable representation of the ranking to w, one
// line per horse.
func (r Ranking) WriteTo(w io.Writer) (_ int64, err error) {
	defer must.Recover(&err)

	var n int
	for _, e := range r {
		n += must.WriteString(
			w,
			fmt.Sprintf("%2d. Horse %d\n", e.Place, e.HorseID),
		)
	}

	return int64(n), err
}
