// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"

	"github.com/pkg/errors"
)

// ---------- error context tags ----------

const (
	ctxNew     = "New"
	ctxFrom    = "FromSlice"
	ctxAt      = "At"
	ctxSet     = "Set"
	ctxIndexOf = "IndexOf"
)

// Coord identifies a cell: one signed integer per axis, axis 0 first.
type Coord []int

// Equal reports whether c and o have the same arity and components.
func (c Coord) Equal(o Coord) bool {
	if len(c) != len(o) {
		return false
	}
	for i := range c {
		if c[i] != o[i] {
			return false
		}
	}

	return true
}

// Add returns c + o as a new coordinate. Arity must match.
func (c Coord) Add(o Coord) Coord {
	out := make(Coord, len(c))
	for i := range c {
		out[i] = c[i] + o[i]
	}

	return out
}

// String formats the coordinate as "(a,b,...)".
func (c Coord) String() string {
	s := "("
	for i, v := range c {
		if i > 0 {
			s += ","
		}
		s += fmt.Sprint(v)
	}

	return s + ")"
}

// Grid is a dense N-dimensional array in row-major order.
//   - sizes[k] is the extent of axis k (> 0).
//   - strides[k] is the linear distance between neighbors along axis k;
//     the last axis has stride 1.
//   - data has length Π sizes.
type Grid[T any] struct {
	sizes   []int
	strides []int
	data    []T
}

// New allocates a zero-valued grid with the given axis sizes.
// Returns ErrInvalidDimensions if no size is given or any size is ≤ 0.
// Complexity: O(V) time and memory, V = Π sizes.
func New[T any](sizes ...int) (*Grid[T], error) {
	strides, n, err := layout(sizes)
	if err != nil {
		return nil, errors.Wrapf(err, "Grid.%s%v", ctxNew, sizes)
	}

	return &Grid[T]{
		sizes:   append([]int(nil), sizes...),
		strides: strides,
		data:    make([]T, n),
	}, nil
}

// FromSlice wraps data as a grid without copying; later writes through either
// the slice or the grid are visible to both.
// Returns ErrInvalidDimensions for bad sizes, ErrSizeMismatch if len(data) ≠ Π sizes.
func FromSlice[T any](data []T, sizes ...int) (*Grid[T], error) {
	strides, n, err := layout(sizes)
	if err != nil {
		return nil, errors.Wrapf(err, "Grid.%s%v", ctxFrom, sizes)
	}
	if len(data) != n {
		return nil, errors.Wrapf(ErrSizeMismatch, "Grid.%s%v: len=%d want=%d", ctxFrom, sizes, len(data), n)
	}

	return &Grid[T]{
		sizes:   append([]int(nil), sizes...),
		strides: strides,
		data:    data,
	}, nil
}

// layout validates sizes and derives row-major strides and the total length.
func layout(sizes []int) ([]int, int, error) {
	if len(sizes) == 0 {
		return nil, 0, ErrInvalidDimensions
	}
	strides := make([]int, len(sizes))
	n := 1
	for k := len(sizes) - 1; k >= 0; k-- {
		if sizes[k] <= 0 {
			return nil, 0, ErrInvalidDimensions
		}
		strides[k] = n
		n *= sizes[k]
	}

	return strides, n, nil
}

// Dim returns the number of axes.
func (g *Grid[T]) Dim() int { return len(g.sizes) }

// Len returns the number of cells.
func (g *Grid[T]) Len() int { return len(g.data) }

// Size returns the extent of the given axis.
func (g *Grid[T]) Size(axis int) int { return g.sizes[axis] }

// Sizes returns a copy of the axis extents.
func (g *Grid[T]) Sizes() []int { return append([]int(nil), g.sizes...) }

// Strides returns a copy of the row-major strides.
func (g *Grid[T]) Strides() []int { return append([]int(nil), g.strides...) }

// Data exposes the live backing buffer in row-major order.
func (g *Grid[T]) Data() []T { return g.data }

// SameShape reports whether the grid's sizes equal sizes exactly.
func (g *Grid[T]) SameShape(sizes []int) bool {
	if len(sizes) != len(g.sizes) {
		return false
	}
	for k := range sizes {
		if sizes[k] != g.sizes[k] {
			return false
		}
	}

	return true
}

// Contains reports whether c has the grid's arity and lies inside it.
func (g *Grid[T]) Contains(c Coord) bool {
	if len(c) != len(g.sizes) {
		return false
	}
	for k, v := range c {
		if v < 0 || v >= g.sizes[k] {
			return false
		}
	}

	return true
}

// Index returns the linear offset of c without bounds checks.
// Callers must guarantee g.Contains(c).
func (g *Grid[T]) Index(c Coord) int {
	off := 0
	for k, v := range c {
		off += v * g.strides[k]
	}

	return off
}

// IndexOf is the checked variant of Index.
func (g *Grid[T]) IndexOf(c Coord) (int, error) {
	if err := g.check(c); err != nil {
		return 0, errors.Wrapf(err, "Grid.%s%v", ctxIndexOf, c)
	}

	return g.Index(c), nil
}

// CoordOf converts a linear index back to a coordinate.
// Callers must guarantee 0 ≤ i < Len().
func (g *Grid[T]) CoordOf(i int) Coord {
	c := make(Coord, len(g.sizes))
	for k, s := range g.strides {
		c[k] = i / s
		i -= c[k] * s
	}

	return c
}

// check returns the sentinel describing why c cannot address g, or nil.
func (g *Grid[T]) check(c Coord) error {
	if len(c) != len(g.sizes) {
		return ErrDimensionMismatch
	}
	if !g.Contains(c) {
		return ErrOutOfRange
	}

	return nil
}

// At returns the value stored at c.
// Errors: ErrDimensionMismatch, ErrOutOfRange (wrapped with the coordinate).
func (g *Grid[T]) At(c Coord) (T, error) {
	if err := g.check(c); err != nil {
		var zero T
		return zero, errors.Wrapf(err, "Grid.%s%v", ctxAt, c)
	}

	return g.data[g.Index(c)], nil
}

// Set stores v at c.
// Errors: ErrDimensionMismatch, ErrOutOfRange (wrapped with the coordinate).
func (g *Grid[T]) Set(c Coord, v T) error {
	if err := g.check(c); err != nil {
		return errors.Wrapf(err, "Grid.%s%v", ctxSet, c)
	}
	g.data[g.Index(c)] = v

	return nil
}

// AtIndex returns the value at linear index i (unchecked).
func (g *Grid[T]) AtIndex(i int) T { return g.data[i] }

// SetIndex stores v at linear index i (unchecked).
func (g *Grid[T]) SetIndex(i int, v T) { g.data[i] = v }

// Fill writes v into every cell.
// Complexity: O(V).
func (g *Grid[T]) Fill(v T) {
	for i := range g.data {
		g.data[i] = v
	}
}

// ForEach visits every cell in row-major order. The Coord passed to fn is
// reused between calls; copy it if it must outlive the callback.
// Complexity: O(V·n).
func (g *Grid[T]) ForEach(fn func(i int, c Coord, v T)) {
	c := make(Coord, len(g.sizes))
	for i, v := range g.data {
		fn(i, c, v)
		// odometer increment, last axis fastest
		for k := len(c) - 1; k >= 0; k-- {
			c[k]++
			if c[k] < g.sizes[k] {
				break
			}
			c[k] = 0
		}
	}
}

// Clone returns a deep copy of the grid.
func (g *Grid[T]) Clone() *Grid[T] {
	return &Grid[T]{
		sizes:   append([]int(nil), g.sizes...),
		strides: append([]int(nil), g.strides...),
		data:    append([]T(nil), g.data...),
	}
}
