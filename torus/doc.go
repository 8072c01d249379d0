// Package torus addresses cells and walls of an N-dimensional grid whose
// every axis wraps around.
//
// A Shape is the dimension vector; a Cell is one lattice point on it. A Wall
// is named by a cell plus an axis and separates that cell from its neighbour
// one step further along the axis (the wall after the last cell of an axis
// is the wall before cell 0).
//
// Walls are flattened with a mixed-radix index: the cell coordinates with
// axis 0 varying fastest, then the axis as the most significant digit.
// WallIndex and WallAt are inverse bijections between walls and
// [0, CellCount*Dims).
//
//	shape [3 2], axis 0 walls          axis 1 walls
//
//	  0 | 1 | 2 |  (wraps to 0)          6   7   8
//	  3 | 4 | 5 |                        9  10  11
//
// Functions taking a Cell or Wall expect coordinates that belong to the
// Shape (use Contains to check untrusted input); behaviour for foreign
// coordinates is undefined.
package torus
