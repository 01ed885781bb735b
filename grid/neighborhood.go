// SPDX-License-Identifier: MIT

package grid

import "sync"

// neighborhoods caches one offset table per dimension.
var neighborhoods sync.Map // map[int][]Coord

// Neighborhood returns every offset in {−1,0,1}^n except the zero vector,
// 3^n − 1 entries in odometer order (last axis fastest). For n = 2 this is
// the 8-connected neighborhood.
//
// The returned slice is shared between callers and must not be modified.
// Returns nil for n ≤ 0.
// Complexity: O(3^n · n) on first use per n, O(1) afterwards.
func Neighborhood(n int) []Coord {
	if n <= 0 {
		return nil
	}
	if v, ok := neighborhoods.Load(n); ok {
		return v.([]Coord)
	}
	v, _ := neighborhoods.LoadOrStore(n, buildNeighborhood(n))

	return v.([]Coord)
}

// buildNeighborhood enumerates the cube {−1,0,1}^n, skipping the origin.
func buildNeighborhood(n int) []Coord {
	total := 1
	for k := 0; k < n; k++ {
		total *= 3
	}
	out := make([]Coord, 0, total-1)
	cur := make(Coord, n)
	for k := range cur {
		cur[k] = -1
	}
	for i := 0; i < total; i++ {
		if !isZero(cur) {
			out = append(out, append(Coord(nil), cur...))
		}
		for k := n - 1; k >= 0; k-- {
			cur[k]++
			if cur[k] <= 1 {
				break
			}
			cur[k] = -1
		}
	}

	return out
}

func isZero(c Coord) bool {
	for _, v := range c {
		if v != 0 {
			return false
		}
	}

	return true
}

// Unit returns the unit vector e_axis of dimension n.
func Unit(n, axis int) Coord {
	e := make(Coord, n)
	e[axis] = 1

	return e
}
