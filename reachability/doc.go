// Package reachability treats an N-D grid's occupancy as a graph, so a
// solver's start and goal can be checked for connectivity before a full
// Fast Marching pass is spent discovering they sit in disconnected
// regions.
//
// Passable cells (grid.Cell.Occupied == true) form the "land" a wave
// can cross for free; impassable cells cost one "conversion" to cross,
// used by MinCrossingPath to report how many obstacle cells would have
// to be cleared to join two regions.
package reachability
