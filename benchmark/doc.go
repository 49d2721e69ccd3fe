// Package benchmark drives repeated solver runs against one grid,
// parses the INI-like configuration format spec.md §6 describes, reads
// and writes the grid value/path/occupancy-map file formats, and
// renders a grid field as a grayscale heightmap PNG.
package benchmark
