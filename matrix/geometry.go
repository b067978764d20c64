// SPDX-License-Identifier: MIT

// Package matrix - geometry on 2- and 3-vectors.
//
// Purpose:
//   - Per-axis translate/scale, Euler rotation in degrees or radians.
//   - Point and vector transforms under both matrix conventions.
//
// Transform shapes (d = vector dimension, n = transform size):
//   - points need n == d+1 (homogeneous, perspective divide by w);
//   - vectors accept n == d or n == d+1 (linear part only, no divide).
//
// Results are assembled in scratch and committed, so the vector is never
// read after a partial write.

package matrix

import (
	"fmt"
	"math"
)

// DegToRad converts degrees to radians.
const DegToRad = math.Pi / 180

// requireGeometry fails with ErrUnsupported unless m is a Vector2 or Vector3.
func (m *Matrix) requireGeometry(op string) error {
	if m.class != ClassVector2 && m.class != ClassVector3 {
		return matrixErrorf(op, fmt.Errorf("%s: %w", m.class, ErrUnsupported))
	}

	return nil
}

// checkArity validates the argument count of a per-axis operation.
// want is the vector dimension for translate/scale, the angle count for rotate.
func (m *Matrix) checkArity(op string, want, got int) error {
	if got != want {
		return matrixErrorf(op, fmt.Errorf("%s takes %d values, got %d: %w", m.class, want, got, ErrArity))
	}

	return nil
}

// rotationAngles is the number of angles a rotation takes: z alone in 2D,
// x, y, z in 3D.
func (m *Matrix) rotationAngles() int {
	if m.class == ClassVector2 {
		return 1
	}

	return 3
}

// Translate adds one offset per axis in place.
// Errors: ErrUnsupported (not a Vector2/Vector3), ErrArity.
func (m *Matrix) Translate(delta ...float64) error {
	if err := m.requireGeometry(opTranslate); err != nil {
		return err
	}
	if err := m.checkArity(opTranslate, m.class.Dim(), len(delta)); err != nil {
		return err
	}
	for i, d := range delta {
		m.buf.set(i, m.buf.at(i)+d)
	}

	return nil
}

// Scale multiplies each axis by its own factor in place.
// Errors: ErrUnsupported (not a Vector2/Vector3), ErrArity.
func (m *Matrix) Scale(factors ...float64) error {
	if err := m.requireGeometry(opScale); err != nil {
		return err
	}
	if err := m.checkArity(opScale, m.class.Dim(), len(factors)); err != nil {
		return err
	}
	for i, f := range factors {
		m.buf.set(i, m.buf.at(i)*f)
	}

	return nil
}

// Rotate is RotateDeg.
func (m *Matrix) Rotate(angles ...float64) error { return m.RotateDeg(angles...) }

// RotateDeg rotates by angles in degrees: z for a Vector2, x, y, z for a Vector3.
func (m *Matrix) RotateDeg(angles ...float64) error {
	rad := make([]float64, len(angles))
	for i, a := range angles {
		rad[i] = a * DegToRad
	}

	return m.RotateRad(rad...)
}

// RotateRad rotates by angles in radians: z for a Vector2, x, y, z for a
// Vector3. A vector stored as a row (cols == dimension) is rotated with the
// column-major rotator, a column vector with the row-major one.
//
// Errors: ErrUnsupported (not a Vector2/Vector3), ErrArity.
func (m *Matrix) RotateRad(angles ...float64) error {
	if err := m.requireGeometry(opRotate); err != nil {
		return err
	}
	if err := m.checkArity(opRotate, m.rotationAngles(), len(angles)); err != nil {
		return err
	}

	conv := RowMajor
	if m.Cols() == m.class.Dim() {
		conv = ColumnMajor
	}

	var rot *Matrix
	if m.class == ClassVector2 {
		rot = NewRotator22(conv, angles[0])
	} else {
		rot = NewRotator33XYZ(conv, angles[0], angles[1], angles[2])
	}

	return m.transform(rot, conv, false)
}

// conventionOf picks the convention a vector's orientation implies:
// a row vector (cols > rows) uses ColumnMajor, a column vector RowMajor.
func (m *Matrix) conventionOf() Convention {
	if m.Cols() > m.Rows() {
		return ColumnMajor
	}

	return RowMajor
}

// TransformPoint applies the full affine transform t (translation and
// perspective divide) in the convention implied by m's orientation.
// A Vector2 takes a Matrix33, a Vector3 a Matrix44.
func (m *Matrix) TransformPoint(t *Matrix) error { return m.transform(t, m.conventionOf(), true) }

// TransformVector applies the linear part of t (no translation, no divide)
// in the convention implied by m's orientation.
// A Vector2 takes a Matrix22 or Matrix33, a Vector3 a Matrix33 or Matrix44.
func (m *Matrix) TransformVector(t *Matrix) error { return m.transform(t, m.conventionOf(), false) }

// TransformColumnMajorPoint computes v' = v·t with perspective divide.
func (m *Matrix) TransformColumnMajorPoint(t *Matrix) error { return m.transform(t, ColumnMajor, true) }

// TransformRowMajorPoint computes v' = t·v with perspective divide.
func (m *Matrix) TransformRowMajorPoint(t *Matrix) error { return m.transform(t, RowMajor, true) }

// TransformColumnMajorVector computes v' = v·t over the linear block.
func (m *Matrix) TransformColumnMajorVector(t *Matrix) error {
	return m.transform(t, ColumnMajor, false)
}

// TransformRowMajorVector computes v' = t·v over the linear block.
func (m *Matrix) TransformRowMajorVector(t *Matrix) error { return m.transform(t, RowMajor, false) }

// transform is the shared kernel behind every Transform* method.
//
// Implementation:
//   - Stage 1: validate m (Vector2/Vector3), t (non-nil, square, size fits).
//   - Stage 2: for each output axis k accumulate Σ_j v[j]*t(j,k) (column-major)
//     or Σ_j v[j]*t(k,j) (row-major); points add the translation entry.
//   - Stage 3: points divide by w; w is not guarded, a zero weight yields ±Inf/NaN.
//   - Stage 4: write scratch, commit.
//
// Complexity: O(d²).
func (m *Matrix) transform(t *Matrix, conv Convention, point bool) error {
	if err := m.requireGeometry(opTransform); err != nil {
		return err
	}
	if t == nil {
		return matrixErrorf(opTransform, ErrNilMatrix)
	}
	d, n := m.class.Dim(), t.Rows()
	fits := t.class.IsSquare() && (n == d+1 || (!point && n == d))
	if !fits {
		return matrixErrorf(opTransform, fmt.Errorf("%s cannot transform a %s %s: %w",
			t.class, m.class, kindOfTransform(point), ErrDimensionMismatch))
	}

	// entry reads t(row, col) in the requested convention.
	tb := t.buf
	entry := func(j, k int) float64 {
		if conv == ColumnMajor {
			return tb.at(j*n + k)
		}
		return tb.at(k*n + j)
	}

	var v, out [3]float64
	var j, k int
	for j = 0; j < d; j++ {
		v[j] = m.buf.at(j)
	}
	for k = 0; k < d; k++ {
		for j = 0; j < d; j++ {
			out[k] += v[j] * entry(j, k)
		}
		if point {
			out[k] += entry(d, k)
		}
	}
	if point {
		w := entry(d, d)
		for j = 0; j < d; j++ {
			w += v[j] * entry(j, d)
		}
		for k = 0; k < d; k++ {
			out[k] /= w
		}
	}

	for k = 0; k < d; k++ {
		m.buf.setScratch(k, out[k])
	}
	m.buf.commit()

	return nil
}

func kindOfTransform(point bool) string {
	if point {
		return "point"
	}

	return "vector"
}
