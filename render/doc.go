// Package render draws the plane of a maze that passes through the
// explorer position and is spanned by the maze's two view axes.
//
// View slot 0 runs down the rows and slot 1 across the columns. The first
// row and column repeat at the far edge because the walls there are the
// wraparound walls. When both slots name the same axis, the plane is a
// single row.
//
// Text marks the explorer with '@', the start with 'S', the end with 'E'
// and solution cells with '*'. The start
// and end marks take precedence over the explorer. Image draws the same plane as pixels and
// adds arrows pointing at the start and end cells.
package render
