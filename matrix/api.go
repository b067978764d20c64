// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid any logic duplication; each facade delegates to the canonical implementation.
//   - Keep function names explicit and intention-revealing to improve discoverability.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying methods.
//   - Facades never mutate their operands; every result is a fresh allocation.
//   - Nil operands are reported as ErrNilMatrix instead of panicking.

package matrix

import "math"

// ---------- Arithmetic (non-mutating) ----------

// Add returns a + b with the promoted kind (or WithKind).
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Add(a, b *Matrix, opts ...Option) (*Matrix, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMatAdd, err)
	}

	return a.MatAdd(b, opts...)
}

// Sub returns a - b with the promoted kind (or WithKind).
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Sub(a, b *Matrix, opts ...Option) (*Matrix, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMatSub, err)
	}

	return a.MatSub(b, opts...)
}

// Mul returns the matrix product a×b (rows(a)×cols(b)).
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*n*c).
func Mul(a, b *Matrix, opts ...Option) (*Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMatMul, err)
	}

	return a.MatMul(b, opts...)
}

// Transpose returns a transposed copy of m.
// Errors: ErrNilMatrix.
func Transpose(m *Matrix) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	return m.Transpose(), nil
}

// Inverse returns m⁻¹ without modifying m.
// Errors: ErrNilMatrix, ErrUnsupported (not square), ErrSingular.
// Complexity: O(n^3).
func Inverse(m *Matrix) (*Matrix, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opInvert, err)
	}

	return m.Invert()
}

// ---------- Comparison ----------

// SameShape reports whether a and b are non-nil and share (rows, cols).
func SameShape(a, b *Matrix) bool {
	if a == nil || b == nil {
		return false
	}

	return ValidateSameShape(a, b) == nil
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// NaN != anything; +Inf equals +Inf; -Inf equals -Inf.
// Time: O(r*c). Space: O(1). Deterministic.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol|; non-finite tolerances fail
//     with ErrNaNInf.
func AllClose(a, b *Matrix, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := ValidateNotNil(a); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	n := a.buf.len()
	var av, bv float64
	for i := 0; i < n; i++ {
		av, bv = a.buf.at(i), b.buf.at(i)
		if av == bv {
			continue // covers equal infinities
		}
		if math.IsNaN(av) || math.IsNaN(bv) || math.Abs(av-bv) > atol+rtol*math.Abs(bv) {
			return false, nil
		}
	}

	return true, nil
}
