// SPDX-License-Identifier: MIT

// Package grid provides dense N-dimensional storage for per-cell data and the
// fixed neighbor topology used to walk it.
//
// What:
//
//   - Grid[T] is a row-major buffer (last axis contiguous) addressed either by
//     a Coord (one signed integer per axis) or by its linear index.
//   - Neighborhood(n) enumerates the 3^n − 1 offsets of the closed unit cube
//     {−1,0,1}^n without the origin: the 8-connected neighborhood in 2D, the
//     26-connected one in 3D, and so on.
//
// Why:
//
//   - Distance maps, cell states and predecessor links all share one shape;
//     a single generic container keeps their index arithmetic identical.
//   - Linear indices are cheap to store (predecessor links) and to compare
//     (deterministic tie-breaking).
//
// Safety:
//
//   - At, Set and IndexOf validate coordinates and return wrapped sentinels
//     (match them with errors.Is); they never panic on user input.
//   - Index, AtIndex and SetIndex are unchecked fast paths for hot loops that
//     have already validated their coordinates.
//
// Complexity quicksheet:
//
//   - New: O(V) zero-init; At/Set/Index: O(n) for n axes; AtIndex/SetIndex: O(1).
//   - Neighborhood: O(3^n · n) the first time per n, then O(1) (cached).
//
// Errors:
//
//   - ErrInvalidDimensions: no axes, or an axis size ≤ 0.
//   - ErrSizeMismatch:      buffer length does not match the requested sizes.
//   - ErrDimensionMismatch: coordinate arity differs from the grid's.
//   - ErrOutOfRange:        coordinate outside the grid.
package grid
