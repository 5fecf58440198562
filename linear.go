// Copyright 2023 Gustavo C. Viegas. All rights reserved.

// Package linear implements fixed-dimension linear algebra for
// graphics-scale computation.
//
// Every type is a plain value over a generic floating-point element:
// column vectors V2/V3/V4, their row-vector transposes R2/R3/R4,
// column-major matrices of every shape with 2 to 4 rows and columns,
// and the quaternion Q. Shapes are distinct types, so mismatched
// operations are compile errors rather than runtime checks.
//
// Degenerate inputs (normalizing a zero vector, the logarithm or
// exponential of a quaternion with zero vector part) are not guarded
// against; the non-finite values they produce propagate through
// ordinary floating-point arithmetic.
package linear

import (
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
)

// Scalar is the constraint satisfied by element types.
type Scalar interface {
	constraints.Float
}

// format renders rows x cols entries in the [a b; c d;] debug
// format: row-major traversal, entries in a row separated by
// spaces, rows terminated by ';'.
func format[T Scalar](rows, cols int, at func(i, j int) T) string {
	var b strings.Builder
	b.WriteByte('[')
	for i := 0; i < rows; i++ {
		for j := 0; j < cols-1; j++ {
			fmt.Fprintf(&b, "%v ", at(i, j))
		}
		fmt.Fprintf(&b, "%v;", at(i, cols-1))
		if i < rows-1 {
			b.WriteByte(' ')
		}
	}
	b.WriteByte(']')
	return b.String()
}
