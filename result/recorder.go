package result

import (
	"context"
	"sync"
	"time"
)

// Recorder is an append-only log of horses crossing the finish line.
//
// It is safe for concurrent use. The order of the log is the order in which
// calls to RecordFinish() acquired the recorder's lock.
type Recorder struct {
	m       sync.Mutex
	ready   chan struct{}
	entries []Entry
}

// RecordFinish appends the horse with the given ID to the finish log.
//
// It is called exactly once by each horse that reaches the finish line.
func (r *Recorder) RecordFinish(horseID int) {
	r.m.Lock()
	defer r.m.Unlock()

	r.entries = append(
		r.entries,
		Entry{
			Place:      len(r.entries) + 1,
			HorseID:    horseID,
			FinishedAt: time.Now(),
		},
	)

	if r.ready != nil {
		close(r.ready)
		r.ready = nil
	}
}

// Len returns the number of horses that have finished.
func (r *Recorder) Len() int {
	r.m.Lock()
	defer r.m.Unlock()

	return len(r.entries)
}

// Ranking returns the finish log as it stands.
//
// The returned ranking is a copy; later calls to RecordFinish() do not modify
// it.
func (r *Recorder) Ranking() Ranking {
	r.m.Lock()
	defer r.m.Unlock()

	if len(r.entries) == 0 {
		return nil
	}

	return append(Ranking(nil), r.entries...)
}

// Next returns the entry at the given offset of the finish log. The first
// horse to finish is at offset 0.
//
// If no horse has finished at that offset yet, it blocks until one does or
// ctx is canceled.
func (r *Recorder) Next(ctx context.Context, offset int) (Entry, error) {
	if offset < 0 {
		panic("offset must not be negative")
	}

	for {
		e, ready, ok := r.get(offset)
		if ok {
			return e, nil
		}

		select {
		case <-ctx.Done():
			return Entry{}, ctx.Err()
		case <-ready:
			continue
		}
	}
}

// get returns the entry at the given offset, if it is present. Otherwise, it
// returns a channel that is closed when the next entry is recorded.
func (r *Recorder) get(offset int) (Entry, <-chan struct{}, bool) {
	r.m.Lock()
	defer r.m.Unlock()

	if offset < len(r.entries) {
		return r.entries[offset], nil, true
	}

	if r.ready == nil {
		r.ready = make(chan struct{})
	}

	return Entry{}, r.ready, false
}
