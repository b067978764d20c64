// SPDX-License-Identifier: MIT

// Package matrix - square-family factorizations and scalar summaries.
//
// Purpose:
//   - Doolittle LU factorization (no pivoting) into fresh Float64 factors.
//   - Determinant by partial-pivot elimination on a float64 copy.
//   - Trace.
//
// Receivers are never mutated.

package matrix

import (
	"fmt"
	"math"
)

// requireSquare fails with ErrUnsupported outside the square family.
func (m *Matrix) requireSquare(op string) error {
	if !m.class.IsSquare() {
		return matrixErrorf(op, fmt.Errorf("%s: %w", m.class, ErrUnsupported))
	}

	return nil
}

// LU factors m = L·U with L unit lower triangular and U upper triangular.
// Both factors are Float64 n×n matrices.
//
// Implementation:
//   - Stage 1: read m into a float64 working copy.
//   - Stage 2: for each row i, fill U[i][j≥i] then L[j>i][i] (Doolittle order).
//   - Stage 3: wrap both factors as matrices.
//
// Errors:
//   - ErrUnsupported for classes outside the square family.
//   - ErrSingular when a zero pivot appears. Rows are never exchanged, so some
//     invertible matrices (e.g. [[0 1] [1 0]]) have no factorization here.
//
// Complexity: O(n^3) time, O(n^2) memory.
func (m *Matrix) LU() (l, u *Matrix, err error) {
	if err = m.requireSquare(opLU); err != nil {
		return nil, nil, err
	}

	n := m.Rows()
	a := m.Data()
	lv := make([]float64, n*n)
	uv := make([]float64, n*n)

	var i, j, k int
	var sum float64
	for i = 0; i < n; i++ {
		lv[i*n+i] = 1
		for j = i; j < n; j++ {
			sum = 0
			for k = 0; k < i; k++ {
				sum += lv[i*n+k] * uv[k*n+j]
			}
			uv[i*n+j] = a[i*n+j] - sum
		}
		if uv[i*n+i] == 0 {
			return nil, nil, matrixErrorf(opLU, fmt.Errorf("zero pivot at %d: %w", i, ErrSingular))
		}
		for j = i + 1; j < n; j++ {
			sum = 0
			for k = 0; k < i; k++ {
				sum += lv[j*n+k] * uv[k*n+i]
			}
			lv[j*n+i] = (a[j*n+i] - sum) / uv[i*n+i]
		}
	}

	if l, err = New(n, n, lv); err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	if u, err = New(n, n, uv); err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}

	return l, u, nil
}

// Determinant returns det(m). A singular matrix yields 0, not an error.
// The 0×0 matrix has determinant 1.
//
// Errors: ErrUnsupported for classes outside the square family.
//
// Complexity: O(n^3) time, O(n^2) memory.
func (m *Matrix) Determinant() (float64, error) {
	if err := m.requireSquare(opDet); err != nil {
		return 0, err
	}

	n := m.Rows()
	switch m.class {
	case ClassMatrix22:
		a := m.Data()
		return a[0]*a[3] - a[1]*a[2], nil
	case ClassMatrix33:
		a := m.Data()
		return a[0]*(a[4]*a[8]-a[5]*a[7]) -
			a[1]*(a[3]*a[8]-a[5]*a[6]) +
			a[2]*(a[3]*a[7]-a[4]*a[6]), nil
	}

	a := m.Data()
	det := 1.0
	var i, j, k, best int
	var factor float64
	for i = 0; i < n; i++ {
		best = i
		for j = i + 1; j < n; j++ {
			if math.Abs(a[j*n+i]) > math.Abs(a[best*n+i]) {
				best = j
			}
		}
		if a[best*n+i] == 0 {
			return 0, nil
		}
		if best != i {
			for k = 0; k < n; k++ {
				a[i*n+k], a[best*n+k] = a[best*n+k], a[i*n+k]
			}
			det = -det
		}
		det *= a[i*n+i]
		for j = i + 1; j < n; j++ {
			factor = a[j*n+i] / a[i*n+i]
			for k = i; k < n; k++ {
				a[j*n+k] -= factor * a[i*n+k]
			}
		}
	}

	return det, nil
}

// Trace returns the sum of the main diagonal.
// Errors: ErrUnsupported for classes outside the square family.
func (m *Matrix) Trace() (float64, error) {
	if err := m.requireSquare(opTrace); err != nil {
		return 0, err
	}
	n := m.Rows()
	var s float64
	for i := 0; i < n; i++ {
		s += m.buf.at(i*n + i)
	}

	return s, nil
}
