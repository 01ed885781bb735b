// Package observability exposes Prometheus metrics for fast marching runs.
//
// A Collector is created once per registry and may be shared by any number of
// engines; every method is safe on a nil receiver so engines without metrics
// pay only a nil check.
package observability
