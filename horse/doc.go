// Package horse implements the independently-running participants of a race
// and the read-only roster through which they are observed.
package horse
