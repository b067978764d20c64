// SPDX-License-Identifier: MIT

// Package matrix - vector-family operations.
//
// Purpose:
//   - Single-index access over the flat layout (valid for 1×n and n×1 alike).
//   - Euclidean norm, normalization, dot product and the 3-vector cross product.
//
// Vector2/Vector3 take unrolled paths; the generic vector class loops.

package matrix

import (
	"fmt"
	"math"
)

const (
	ctxVecAt  = "VecAt"
	ctxSetVec = "SetVec"
)

// requireVector fails with ErrUnsupported unless m is in the vector family.
func (m *Matrix) requireVector(op string) error {
	if !m.class.IsVector() {
		return matrixErrorf(op, fmt.Errorf("%s: %w", m.class, ErrUnsupported))
	}

	return nil
}

// VecAt returns element i of a vector.
// Errors: ErrUnsupported (not a vector), ErrOutOfRange (i outside [0, Len)).
func (m *Matrix) VecAt(i int) (float64, error) {
	if err := m.requireVector(opVec); err != nil {
		return 0, err
	}
	if i < 0 || i >= m.buf.len() {
		return 0, denseErrorf(ctxVecAt, i, 0, ErrOutOfRange)
	}

	return m.buf.at(i), nil
}

// SetVec stores v at element i of a vector.
// Errors: ErrUnsupported, ErrOutOfRange, ErrNaNInf (finite-only policy).
func (m *Matrix) SetVec(i int, v float64) error {
	if err := m.requireVector(opVec); err != nil {
		return err
	}
	if i < 0 || i >= m.buf.len() {
		return denseErrorf(ctxSetVec, i, 0, ErrOutOfRange)
	}
	if err := m.checkFinite(v); err != nil {
		return denseErrorf(ctxSetVec, i, 0, err)
	}
	m.buf.set(i, v)

	return nil
}

// Norm returns the Euclidean length sqrt(Σ v_i²).
// Errors: ErrUnsupported when m is not a vector.
func (m *Matrix) Norm() (float64, error) {
	if err := m.requireVector(opNorm); err != nil {
		return 0, err
	}

	return m.norm(), nil
}

func (m *Matrix) norm() float64 {
	b := m.buf
	switch m.class {
	case ClassVector2:
		x, y := b.at(0), b.at(1)
		return math.Sqrt(x*x + y*y)
	case ClassVector3:
		x, y, z := b.at(0), b.at(1), b.at(2)
		return math.Sqrt(x*x + y*y + z*z)
	}

	var sum, v float64
	n := b.len()
	for i := 0; i < n; i++ {
		v = b.at(i)
		sum += v * v
	}

	return math.Sqrt(sum)
}

// NormalizeSelf divides m by its norm in place. A zero vector is not guarded
// and yields NaN elements (0/0).
// Errors: ErrUnsupported when m is not a vector.
func (m *Matrix) NormalizeSelf() error {
	if err := m.requireVector(opNormalize); err != nil {
		return err
	}
	m.DivSelf(m.norm())

	return nil
}

// Normalize returns a unit-length copy; m is not modified.
func (m *Matrix) Normalize(opts ...Option) (*Matrix, error) {
	if err := m.requireVector(opNormalize); err != nil {
		return nil, err
	}
	out := m.Clone(opts...)
	out.DivSelf(out.norm())

	return out, nil
}

// Dot returns Σ m_i*other_i.
//
// Errors:
//   - ErrUnsupported when m is not a vector.
//   - ErrNilMatrix when other is nil.
//   - ErrDimensionMismatch when the shapes differ (a 1×3 and a 3×1 do not match).
func (m *Matrix) Dot(other *Matrix) (float64, error) {
	if err := m.requireVector(opDot); err != nil {
		return 0, err
	}
	if other == nil {
		return 0, matrixErrorf(opDot, ErrNilMatrix)
	}
	if err := ValidateSameShape(m, other); err != nil {
		return 0, matrixErrorf(opDot, err)
	}

	a, b := m.buf, other.buf
	switch m.class {
	case ClassVector2:
		return a.at(0)*b.at(0) + a.at(1)*b.at(1), nil
	case ClassVector3:
		return a.at(0)*b.at(0) + a.at(1)*b.at(1) + a.at(2)*b.at(2), nil
	}

	var sum float64
	n := a.len()
	for i := 0; i < n; i++ {
		sum += a.at(i) * b.at(i)
	}

	return sum, nil
}

// Cross returns the 3-vector cross product m × other as a new instance with
// m's shape and the promoted kind (or WithKind).
//
// Errors:
//   - ErrUnsupported unless m is a Vector3.
//   - ErrNilMatrix, ErrDimensionMismatch (shapes differ).
func (m *Matrix) Cross(other *Matrix, opts ...Option) (*Matrix, error) {
	if m.class != ClassVector3 {
		return nil, matrixErrorf(opCross, fmt.Errorf("%s: %w", m.class, ErrUnsupported))
	}
	if other == nil {
		return nil, matrixErrorf(opCross, ErrNilMatrix)
	}
	if err := ValidateSameShape(m, other); err != nil {
		return nil, matrixErrorf(opCross, err)
	}

	o := gatherOptions(opts...)
	out, err := build(m.Rows(), m.Cols(), resultKind(m.Kind(), other.Kind(), o), o.policyOr(m.validateNaNInf))
	if err != nil {
		return nil, matrixErrorf(opCross, err)
	}

	a, b := m.buf, other.buf
	ax, ay, az := a.at(0), a.at(1), a.at(2)
	bx, by, bz := b.at(0), b.at(1), b.at(2)
	out.buf.set(0, ay*bz-az*by)
	out.buf.set(1, az*bx-ax*bz)
	out.buf.set(2, ax*by-ay*bx)

	return out, nil
}
