// SPDX-License-Identifier: MIT

// Package matrix - square-family operations.
//
// Purpose:
//   - Gauss-Jordan inversion in place, with threshold row pivoting.
//
// Determinism:
//   - Fixed i→j loop orders; the pivot search scans rows top-down and keeps the
//     first strictly larger candidate.

package matrix

import (
	"fmt"
	"math"
)

// InvertSelf replaces m with its inverse (Gauss-Jordan elimination).
//
// Implementation:
//   - Stage 1: scratch ← identity.
//   - Stage 2: for each column i, when |m[i,i]| < PivotThreshold, swap row i
//     with the row j > i holding the largest |m[j,i]| (if it beats the current
//     pivot). Swaps are mirrored in scratch.
//   - Stage 3: a zero pivot fails with ErrSingular; otherwise divide row i by
//     the pivot and eliminate column i from every other row, mirroring all row
//     operations in scratch.
//   - Stage 4: commit scratch into data.
//
// Errors:
//   - ErrUnsupported for classes outside the square family.
//   - ErrSingular when no non-zero pivot exists. The instance is left in a
//     partially reduced state: inversion is not atomic.
//
// Complexity: O(n^3) time, no allocation.
func (m *Matrix) InvertSelf() error {
	if !m.class.IsSquare() {
		return matrixErrorf(opInvert, fmt.Errorf("%s: %w", m.class, ErrUnsupported))
	}

	n := m.Rows()
	b := m.buf
	b.resetScratch()
	m.makeIdentity(b.setScratch)

	var i, j, k, best int
	var pivot, factor, cand float64
	for i = 0; i < n; i++ {
		pivot = b.at(i*n + i)
		if math.Abs(pivot) < PivotThreshold {
			best = i
			for j = i + 1; j < n; j++ {
				cand = b.at(j*n + i)
				if math.Abs(cand) > math.Abs(pivot) {
					pivot, best = cand, j
				}
			}
			if best != i {
				b.swapRows(i, best, n)
			}
		}
		if pivot == 0 {
			return matrixErrorf(opInvert, ErrSingular)
		}

		// normalize pivot row
		for k = 0; k < n; k++ {
			b.set(i*n+k, b.at(i*n+k)/pivot)
			b.setScratch(i*n+k, b.scratchAt(i*n+k)/pivot)
		}

		// eliminate column i from the other rows
		for j = 0; j < n; j++ {
			if j == i {
				continue
			}
			factor = b.at(j*n + i)
			if factor == 0 {
				continue
			}
			for k = 0; k < n; k++ {
				b.set(j*n+k, b.at(j*n+k)-factor*b.at(i*n+k))
				b.setScratch(j*n+k, b.scratchAt(j*n+k)-factor*b.scratchAt(i*n+k))
			}
		}
	}
	b.commit()

	return nil
}

// Invert returns the inverse as a new instance; m is not modified.
// WithKind selects the kind of the copy the elimination runs in.
func (m *Matrix) Invert(opts ...Option) (*Matrix, error) {
	if !m.class.IsSquare() {
		return nil, matrixErrorf(opInvert, fmt.Errorf("%s: %w", m.class, ErrUnsupported))
	}
	out := m.Clone(opts...)
	if err := out.InvertSelf(); err != nil {
		return nil, err
	}

	return out, nil
}
