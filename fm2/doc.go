// Package fm2 implements Fast Marching Square: two composed Eikonal
// solves over package solver. The first wave seeds from every obstacle
// cell to build a distance-to-obstacle field, normalized into a
// safety-weighted velocity map; the second wave solves arrival time
// across that map from the goal, terminating at the start, so gradient
// descent (package pathextract) can recover a path biased away from
// obstacles.
package fm2
