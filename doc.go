// Package eikonal is the root of a Fast Marching toolkit for computing
// arrival times (geodesic distances) over N-dimensional cost grids.
//
// The arrival time u of every cell satisfies the Eikonal equation
// |∇u| = 1/f, where f is the per-cell speed stored in the cost grid.
// Cells are finalized in non-decreasing order of u, starting from a set of
// seed cells at u = 0.
//
// Subpackages:
//
//	grid/           dense row-major N-dimensional grids and the 3^N − 1 neighborhood
//	fastmarch/      the marching engine, the Eikonal update and batch runs
//	gridgraph/      2D cost maps: blocked cells, regions, distance maps, routes
//	observability/  Prometheus collector for run metrics
//	cmd/fmm/        command-line front end over 2D grid files
//
// Quick example:
//
//	cost, _ := grid.New[float64](5, 5)
//	cost.Fill(1)
//	e, _ := fastmarch.New(cost, fastmarch.WithMargin(0))
//	_ = e.InitializeAlivePoints([]grid.Coord{{2, 2}})
//	_ = e.Run()
//	d, _ := e.Distance(grid.Coord{0, 0}) // 2.7071…
//
//	go get github.com/katalvlaran/eikonal
package eikonal
