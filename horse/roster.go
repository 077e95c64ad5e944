package horse

import (
	"fmt"
	"sort"
)

// Standing is the position of a single horse at the moment it was read.
type Standing struct {
	ID       int
	Position int
}

// Finished returns true if the horse had reached the finish line.
func (s Standing) Finished() bool {
	return s.Position >= FinishLine
}

// Roster is a fixed, read-only collection of the horses in a race.
//
// Its membership never changes after construction, so it may be read from
// any number of goroutines while the horses are running.
type Roster struct {
	horses []*Horse
}

// NewRoster returns a roster containing the given horses, in the given order.
//
// It panics if any horse is nil, or if two horses share an ID.
func NewRoster(horses ...*Horse) *Roster {
	ids := map[int]struct{}{}

	for _, h := range horses {
		if h == nil {
			panic("roster must not contain a nil horse")
		}

		if _, ok := ids[h.ID]; ok {
			panic(fmt.Sprintf("roster contains more than one horse with ID %d", h.ID))
		}

		ids[h.ID] = struct{}{}
	}

	return &Roster{
		horses: append([]*Horse(nil), horses...),
	}
}

// Len returns the number of horses in the roster.
func (r *Roster) Len() int {
	return len(r.horses)
}

// Horses returns the horses in the roster, in roster order.
//
// The returned slice is a copy; modifying it does not affect the roster.
func (r *Roster) Horses() []*Horse {
	return append([]*Horse(nil), r.horses...)
}

// Snapshot returns the standing of every horse, sorted by ascending ID.
//
// Each horse's position is read atomically. Horses continue to run while the
// snapshot is taken, so it is not an instantaneous picture of the whole race.
func (r *Roster) Snapshot() []Standing {
	standings := make([]Standing, len(r.horses))

	for i, h := range r.horses {
		standings[i] = Standing{
			ID:       h.ID,
			Position: h.Position(),
		}
	}

	sort.Slice(standings, func(i, j int) bool {
		return standings[i].ID < standings[j].ID
	})

	return standings
}

// Completed returns true if every horse in the roster has reached the finish
// line.
func (r *Roster) Completed() bool {
	for _, h := range r.horses {
		if !h.Finished() {
			return false
		}
	}

	return true
}
