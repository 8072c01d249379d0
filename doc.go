// Package toromaze builds, walks and solves mazes on N-dimensional tori.
//
// What is toromaze?
//
//	A small library plus a CLI that brings together:
//		• Addressing: cells, walls and neighbours on a wrapping grid of any rank
//		• Generation: a randomized spanning tree carved by frontier growth
//		• Solving: A* with a toroidal taxicab heuristic
//		• Exploration: an explorer that walks along two chosen view axes
//		• Rendering: ASCII and PNG dumps of the plane the explorer stands on
//
// Everything is organized under these subpackages:
//
//	hashheap/      indexed binary min-heap with key lookup and re-keying
//	torus/         Shape, Cell and Wall types with index bijections
//	maze/          Maze state, Generate, Solve and Walk
//	render/        plane dumps as text or image
//	config/        YAML + .env + environment configuration
//	logger/        slog setup with optional rotated file output
//	cmd/toromaze/  command-line front end
//
// Quick ASCII example of a 2×3 plane, explorer on the start cell
// (start and end marks take precedence over the explorer):
//
//	+--+--+--+
//	|SS **|  |
//	+--+  +--+
//	   |EE|
//	+--+--+--+
//
// Walls on the last row and column repeat the first ones: the grid wraps.
//
//	go install github.com/katalvlaran/toromaze/cmd/toromaze@latest
package toromaze
