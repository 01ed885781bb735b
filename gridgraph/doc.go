// Package gridgraph treats a 2D grid of cell costs as a graph, enabling
// region analysis, distance maps and minimal-time routes.
//
// What:
//
//   - GridGraph wraps a rectangular [][]float64 grid with a tunable MinCost.
//   - Identifies connected regions of passable cells.
//   - Computes Fast Marching distance maps from seed cells.
//   - Connects a set of sources to the nearest of a set of targets.
//
// Why:
//
//   - Game maps: reachable areas and travel-time fields.
//   - Robotics: routes over heterogeneous terrain.
//   - Image analysis: geodesic distances over a speed image.
//
// Complexity:
//
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H)    (d = number of neighbors, 4 or 8).
//   - DistanceMap:         O(W×H×8×log(W×H)), Memory: O(W×H).
//   - Connect:             same bound, stops at the first target.
//
// Options:
//
//   - GridOptions.MinCost: smallest passable cost.
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors) for regions.
//   - fastmarch options are forwarded to DistanceMap and Connect.
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrNoSeeds, ErrOutOfBounds, ErrSeedBlocked: invalid seeds or targets.
//   - ErrNoPath: no target is reachable.
package gridgraph
