// SPDX-License-Identifier: MIT

package interop

import (
	"fmt"

	"golang.org/x/image/math/f32"

	"github.com/katalvlaran/linalg/matrix"
)

// vectorOfLen validates that v is a vector holding exactly n elements.
func vectorOfLen(tag string, v *matrix.Matrix, n int) error {
	if err := matrix.ValidateVector(v); err != nil {
		return interopErrorf(tag, err)
	}
	if v.Len() != n {
		return interopErrorf(tag, fmt.Errorf("length %d, want %d: %w", v.Len(), n, matrix.ErrDimensionMismatch))
	}

	return nil
}

// squareOf validates that m is an n×n matrix.
func squareOf(tag string, m *matrix.Matrix, n int) error {
	if err := matrix.ValidateNotNil(m); err != nil {
		return interopErrorf(tag, err)
	}
	if m.Rows() != n || m.Cols() != n {
		return interopErrorf(tag, fmt.Errorf("%dx%d, want %dx%d: %w", m.Rows(), m.Cols(), n, n, matrix.ErrDimensionMismatch))
	}

	return nil
}

// fill narrows the row-major values of m into dst.
func fill(dst []float32, m *matrix.Matrix) {
	for i, v := range m.Data() {
		dst[i] = float32(v)
	}
}

// widen converts float32 values for matrix construction.
func widen(src []float32) []float64 {
	out := make([]float64, len(src))
	for i, v := range src {
		out[i] = float64(v)
	}

	return out
}

// fromF32 builds rows×cols from float32 data, Float32 unless overridden.
func fromF32(tag string, rows, cols int, src []float32, opts []matrix.Option) (*matrix.Matrix, error) {
	opts = append([]matrix.Option{matrix.WithKind(matrix.Float32)}, opts...)
	m, err := matrix.New(rows, cols, widen(src), opts...)
	if err != nil {
		return nil, interopErrorf(tag, err)
	}

	return m, nil
}

// ToVec2 copies a 2-vector (either orientation) into an f32.Vec2.
func ToVec2(v *matrix.Matrix) (f32.Vec2, error) {
	var out f32.Vec2
	if err := vectorOfLen("ToVec2", v, 2); err != nil {
		return out, err
	}
	fill(out[:], v)

	return out, nil
}

// ToVec3 copies a 3-vector (either orientation) into an f32.Vec3.
func ToVec3(v *matrix.Matrix) (f32.Vec3, error) {
	var out f32.Vec3
	if err := vectorOfLen("ToVec3", v, 3); err != nil {
		return out, err
	}
	fill(out[:], v)

	return out, nil
}

// ToVec4 copies a 4-element vector into an f32.Vec4 (e.g. homogeneous
// coordinates).
func ToVec4(v *matrix.Matrix) (f32.Vec4, error) {
	var out f32.Vec4
	if err := vectorOfLen("ToVec4", v, 4); err != nil {
		return out, err
	}
	fill(out[:], v)

	return out, nil
}

// ToMat3 copies a 3×3 matrix into a row-major f32.Mat3.
func ToMat3(m *matrix.Matrix) (f32.Mat3, error) {
	var out f32.Mat3
	if err := squareOf("ToMat3", m, 3); err != nil {
		return out, err
	}
	fill(out[:], m)

	return out, nil
}

// ToMat4 copies a 4×4 matrix into a row-major f32.Mat4.
func ToMat4(m *matrix.Matrix) (f32.Mat4, error) {
	var out f32.Mat4
	if err := squareOf("ToMat4", m, 4); err != nil {
		return out, err
	}
	fill(out[:], m)

	return out, nil
}

// FromVec2 returns v as a 2×1 column vector.
func FromVec2(v f32.Vec2, opts ...matrix.Option) (*matrix.Matrix, error) {
	return fromF32("FromVec2", 2, 1, v[:], opts)
}

// FromVec3 returns v as a 3×1 column vector.
func FromVec3(v f32.Vec3, opts ...matrix.Option) (*matrix.Matrix, error) {
	return fromF32("FromVec3", 3, 1, v[:], opts)
}

// FromVec4 returns v as a 4×1 column vector.
func FromVec4(v f32.Vec4, opts ...matrix.Option) (*matrix.Matrix, error) {
	return fromF32("FromVec4", 4, 1, v[:], opts)
}

// FromMat3 returns m as a Matrix33.
func FromMat3(m f32.Mat3, opts ...matrix.Option) (*matrix.Matrix, error) {
	return fromF32("FromMat3", 3, 3, m[:], opts)
}

// FromMat4 returns m as a Matrix44.
func FromMat4(m f32.Mat4, opts ...matrix.Option) (*matrix.Matrix, error) {
	return fromF32("FromMat4", 4, 4, m[:], opts)
}
