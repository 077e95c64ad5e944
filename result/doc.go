// Package result records the order in which horses cross the finish line.
package result
