package horse

import (
	"math/rand"
	"sync"
)

// MaxStride is the largest distance the default stride covers in one step.
const MaxStride = 2

// Stride is a function that returns the distance a horse covers in a single
// step. It must never return a negative value.
//
// A stride may be called from several horses' goroutines at once.
type Stride func() int

// DefaultStride is the stride used by horses that do not specify one. It
// covers a uniformly random distance between 0 and MaxStride, inclusive.
var DefaultStride Stride = func() int {
	return rand.Intn(MaxStride + 1)
}

// FixedStride returns a stride that always covers a distance of n.
func FixedStride(n int) Stride {
	if n < 0 {
		panic("stride must not be negative")
	}

	return func() int {
		return n
	}
}

// RandomStride returns a stride that covers a uniformly random distance
// between 0 and limit, inclusive, drawn from r.
//
// The returned stride is safe for concurrent use; r must not be used
// elsewhere.
func RandomStride(limit int, r *rand.Rand) Stride {
	if limit < 0 {
		panic("maximum stride must not be negative")
	}

	var m sync.Mutex

	return func() int {
		m.Lock()
		defer m.Unlock()

		return r.Intn(limit + 1)
	}
}
