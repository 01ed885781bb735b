// SPDX-License-Identifier: MIT

package grid

import "github.com/pkg/errors"

// Sentinel errors. Every message is prefixed with "grid:"; context is attached
// with errors.Wrapf at the detection site, so callers match with errors.Is.
var (
	// ErrInvalidDimensions indicates a grid with no axes or a non-positive axis size.
	ErrInvalidDimensions = errors.New("grid: dimensions must be > 0")

	// ErrSizeMismatch indicates that a backing buffer does not hold exactly
	// the product of the requested sizes.
	ErrSizeMismatch = errors.New("grid: buffer length does not match sizes")

	// ErrDimensionMismatch indicates a coordinate whose arity differs from the grid's.
	ErrDimensionMismatch = errors.New("grid: coordinate dimension mismatch")

	// ErrOutOfRange indicates a coordinate outside the grid.
	ErrOutOfRange = errors.New("grid: coordinate out of range")
)
