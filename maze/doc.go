// Package maze generates and solves mazes on an N-dimensional torus.
//
// Overview:
//
//   - A Maze owns a torus.Shape, a start and an end cell, an explorer
//     position, two view axes and one presence flag per wall.
//   - Generate carves a random spanning tree of the cell graph with
//     randomized frontier growth (Prim-style, over walls): every pair of
//     cells is then joined by exactly one simple path of open walls.
//   - Solve runs A* from start to end over open walls, using a
//     hashheap.Heap as the open set and the toroidal taxicab distance as an
//     admissible heuristic.
//   - Walk moves the explorer one step along one of the two view axes,
//     refusing to pass through a present wall.
//
// Generation:
//
//  1. Draw start and end uniformly (they may coincide).
//  2. Close every wall; visited = {start}; frontier = walls of start.
//  3. Repeatedly remove a uniformly random frontier wall. For each of its
//     two cells not yet visited, add that cell's present walls to the
//     frontier and mark it visited. Open the wall iff a cell was newly
//     visited in this step.
//  4. Stop when the frontier is empty. Exactly CellCount-1 walls are open.
//
// Walls whose two cells are already visited when picked stay closed; opening
// them would introduce a cycle.
//
// Complexity:
//
//   - Generate: O(W) time and memory, W = CellCount*Dims.
//   - Solve:    O(C log C) time, O(C) memory, C = CellCount.
//
// Errors:
//
//   - torus.ErrEmptyShape, torus.ErrZeroDimension: rejected by New.
//   - ErrNoPath:          Solve exhausted the open set (all walls present,
//     or walls edited into a disconnected layout).
//   - ErrCellOutOfRange:  an endpoint or position outside the shape.
//   - ErrViewSlot, ErrAxisOutOfRange: invalid SetViewAxis arguments.
//
// Thread safety:
//
//   - A Maze is not safe for concurrent use. Synchronize externally.
package maze
