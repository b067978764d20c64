// SPDX-License-Identifier: MIT

// Package matrix - rotation-matrix factories.
//
// Angles are counterclockwise, in radians. The 3D factories compose the
// elementary rotations about x, then y, then z. For every factory the
// RowMajor result is the transpose of the ColumnMajor one.
//
// With a,b = cos,sin(x); c,d = cos,sin(y); e,f = cos,sin(z) the column-major
// 3×3 block is:
//
//	[ c*e          -c*f          d    ]
//	[ a*f+b*d*e    a*e-b*d*f    -b*c  ]
//	[ b*f-a*d*e    a*d*f+b*e     a*c  ]

package matrix

import "math"

// Convention selects how a transform matrix is applied to a vector.
type Convention uint8

const (
	// ColumnMajor applies v' = v·M (the vector is a row, translation sits in
	// the last row of the matrix).
	ColumnMajor Convention = iota
	// RowMajor applies v' = M·v (the vector is a column, translation sits in
	// the last column of the matrix).
	RowMajor
)

// String implements fmt.Stringer.
func (c Convention) String() string {
	if c == RowMajor {
		return "row-major"
	}

	return "column-major"
}

// fixed builds an n×n Float64 instance from row-major values.
// Callers pass n in {2, 3, 4}; anything else is a programmer error and panics.
func fixed(n int, vals []float64) *Matrix {
	m, err := build(n, n, Float64, DefaultValidateNaNInf)
	if err != nil || len(vals) != n*n {
		panic(panicFixedShape)
	}
	for i, v := range vals {
		m.buf.set(i, v)
	}

	return m
}

// oriented returns vals as an n×n matrix, transposed for RowMajor.
func oriented(conv Convention, n int, vals []float64) *Matrix {
	m := fixed(n, vals)
	if conv == RowMajor {
		m.TransposeSelf()
	}

	return m
}

// rotation3 returns the column-major 3×3 block for Euler angles x, y, z.
func rotation3(x, y, z float64) [9]float64 {
	a, b := math.Cos(x), math.Sin(x)
	c, d := math.Cos(y), math.Sin(y)
	e, f := math.Cos(z), math.Sin(z)

	return [9]float64{
		c * e, -c * f, d,
		a*f + b*d*e, -b*d*f + a*e, -b * c,
		b*f - a*d*e, a*d*f + b*e, a * c,
	}
}

// NewRotator22 returns the 2D rotation by z as a Matrix22.
func NewRotator22(conv Convention, z float64) *Matrix {
	a, b := math.Cos(-z), math.Sin(-z)

	return oriented(conv, 2, []float64{
		a, b,
		-b, a,
	})
}

// NewRotator33 returns the 2D rotation by z as a homogeneous Matrix33.
func NewRotator33(conv Convention, z float64) *Matrix {
	a, b := math.Cos(-z), math.Sin(-z)

	return oriented(conv, 3, []float64{
		a, b, 0,
		-b, a, 0,
		0, 0, 1,
	})
}

// NewRotator33XYZ returns the 3D rotation by Euler angles x, y, z as a Matrix33.
func NewRotator33XYZ(conv Convention, x, y, z float64) *Matrix {
	r := rotation3(x, y, z)

	return oriented(conv, 3, r[:])
}

// NewRotator44 returns the 3D rotation by Euler angles x, y, z as a
// homogeneous Matrix44 (zero translation, 1 at [3,3]).
func NewRotator44(conv Convention, x, y, z float64) *Matrix {
	r := rotation3(x, y, z)

	return oriented(conv, 4, []float64{
		r[0], r[1], r[2], 0,
		r[3], r[4], r[5], 0,
		r[6], r[7], r[8], 0,
		0, 0, 0, 1,
	})
}
