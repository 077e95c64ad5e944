// Package monitor renders the progress of a race while it is being run.
//
// The monitor polls a read-only view of the horses, redrawing the track board
// in place until every horse has crossed the finish line, or until it is told
// to stop.
package monitor
