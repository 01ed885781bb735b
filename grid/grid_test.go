// SPDX-License-Identifier: MIT

package grid_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/eikonal/grid"
)

// TestNew_Errors verifies shape validation in New and FromSlice.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name  string
		sizes []int
	}{
		{"NoAxes", nil},
		{"ZeroAxis", []int{3, 0}},
		{"NegativeAxis", []int{-1, 2}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.New[float64](tc.sizes...)
			require.ErrorIs(t, err, grid.ErrInvalidDimensions)
		})
	}

	_, err := grid.FromSlice([]int{1, 2, 3}, 2, 2)
	require.ErrorIs(t, err, grid.ErrSizeMismatch)
}

// TestIndexRoundTrip checks row-major offsets and their inverse on a 2×3×4 grid.
func TestIndexRoundTrip(t *testing.T) {
	g, err := grid.New[int](2, 3, 4)
	require.NoError(t, err)
	assert.Equal(t, 3, g.Dim())
	assert.Equal(t, 24, g.Len())
	assert.Equal(t, []int{12, 4, 1}, g.Strides())

	assert.Equal(t, 0, g.Index(grid.Coord{0, 0, 0}))
	assert.Equal(t, 1*12+2*4+3, g.Index(grid.Coord{1, 2, 3}))
	for i := 0; i < g.Len(); i++ {
		assert.Equal(t, i, g.Index(g.CoordOf(i)))
	}
}

// TestAtSet exercises checked access and its error kinds.
func TestAtSet(t *testing.T) {
	g, err := grid.New[float64](2, 3)
	require.NoError(t, err)

	require.NoError(t, g.Set(grid.Coord{1, 2}, 4.5))
	v, err := g.At(grid.Coord{1, 2})
	require.NoError(t, err)
	assert.Equal(t, 4.5, v)
	assert.Equal(t, 4.5, g.AtIndex(5))

	_, err = g.At(grid.Coord{2, 0})
	assert.True(t, errors.Is(err, grid.ErrOutOfRange), "got %v", err)
	err = g.Set(grid.Coord{0, -1}, 1)
	assert.ErrorIs(t, err, grid.ErrOutOfRange)
	_, err = g.At(grid.Coord{0})
	assert.ErrorIs(t, err, grid.ErrDimensionMismatch)
	_, err = g.IndexOf(grid.Coord{0, 0, 0})
	assert.ErrorIs(t, err, grid.ErrDimensionMismatch)
}

// TestFromSliceSharesBuffer verifies that FromSlice does not copy.
func TestFromSliceSharesBuffer(t *testing.T) {
	buf := []int{1, 2, 3, 4, 5, 6}
	g, err := grid.FromSlice(buf, 3, 2)
	require.NoError(t, err)

	buf[3] = 40
	v, err := g.At(grid.Coord{1, 1})
	require.NoError(t, err)
	assert.Equal(t, 40, v)

	c := g.Clone()
	c.SetIndex(0, 100)
	assert.Equal(t, 1, buf[0])
}

// TestForEachOrder checks that ForEach walks in row-major order.
func TestForEachOrder(t *testing.T) {
	g, err := grid.New[int](2, 2)
	require.NoError(t, err)
	g.Fill(7)

	var got []string
	g.ForEach(func(i int, c grid.Coord, v int) {
		assert.Equal(t, 7, v)
		assert.Equal(t, i, g.Index(c))
		got = append(got, c.String())
	})
	assert.Equal(t, []string{"(0,0)", "(0,1)", "(1,0)", "(1,1)"}, got)
}

// TestSameShapeContains covers shape comparison and bounds.
func TestSameShapeContains(t *testing.T) {
	g, err := grid.New[bool](4, 5)
	require.NoError(t, err)

	assert.True(t, g.SameShape([]int{4, 5}))
	assert.False(t, g.SameShape([]int{5, 4}))
	assert.False(t, g.SameShape([]int{4}))
	assert.True(t, g.Contains(grid.Coord{3, 4}))
	assert.False(t, g.Contains(grid.Coord{4, 0}))
	assert.False(t, g.Contains(grid.Coord{0, 0, 0}))
}
