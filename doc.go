// Package derby simulates a horse race in which every horse runs
// independently, while a monitor draws the track board and a recorder captures
// the order in which the horses finish.
package derby
