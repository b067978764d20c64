// SPDX-License-Identifier: MIT
// Package matrix_test verifies the rotation-matrix factories.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/stretchr/testify/require"
)

// TestRotator22 pins the quarter turn in both conventions.
func TestRotator22(t *testing.T) {
	q := math.Pi / 2
	cm := matrix.NewRotator22(matrix.ColumnMajor, q)
	require.Equal(t, matrix.ClassMatrix22, cm.Class())
	RequireRowsClose(t, [][]float64{{0, -1}, {1, 0}}, cm)

	rm := matrix.NewRotator22(matrix.RowMajor, q)
	RequireRowsClose(t, [][]float64{{0, 1}, {-1, 0}}, rm)
}

// TestRotator33Planar pins the homogeneous 2D rotator.
func TestRotator33Planar(t *testing.T) {
	cm := matrix.NewRotator33(matrix.ColumnMajor, math.Pi/2)
	require.Equal(t, matrix.ClassMatrix33, cm.Class())
	RequireRowsClose(t, [][]float64{{0, -1, 0}, {1, 0, 0}, {0, 0, 1}}, cm)

	// a z-only Euler rotation equals the planar one
	xyz := matrix.NewRotator33XYZ(matrix.ColumnMajor, 0, 0, math.Pi/2)
	ok, err := matrix.AllClose(cm, xyz, 0, tol)
	require.NoError(t, err)
	require.True(t, ok)
}

// TestRotatorConventionsAreTransposes checks every factory pair.
func TestRotatorConventionsAreTransposes(t *testing.T) {
	x, y, z := 0.3, -1.1, 2.4
	pairs := []struct {
		name   string
		cm, rm *matrix.Matrix
	}{
		{"22", matrix.NewRotator22(matrix.ColumnMajor, z), matrix.NewRotator22(matrix.RowMajor, z)},
		{"33", matrix.NewRotator33(matrix.ColumnMajor, z), matrix.NewRotator33(matrix.RowMajor, z)},
		{"33xyz", matrix.NewRotator33XYZ(matrix.ColumnMajor, x, y, z), matrix.NewRotator33XYZ(matrix.RowMajor, x, y, z)},
		{"44", matrix.NewRotator44(matrix.ColumnMajor, x, y, z), matrix.NewRotator44(matrix.RowMajor, x, y, z)},
	}
	for _, p := range pairs {
		t.Run(p.name, func(t *testing.T) {
			require.Equal(t, p.cm.Transpose().ToArray(), p.rm.ToArray())

			// rotations are orthonormal: R·Rᵀ = I
			prod, err := p.cm.MatMul(p.rm)
			require.NoError(t, err)
			RequireIdentity(t, prod)
		})
	}
}

// TestRotator44Homogeneous checks padding and the embedded 3×3 block.
func TestRotator44Homogeneous(t *testing.T) {
	r44 := matrix.NewRotator44(matrix.RowMajor, 0.5, 0.25, -0.75)
	require.Equal(t, matrix.ClassMatrix44, r44.Class())
	rows := r44.ToArray()
	require.Equal(t, []float64{0, 0, 0, 1}, rows[3])
	for i := 0; i < 3; i++ {
		require.Zero(t, rows[i][3])
	}

	block, err := r44.Block(0, 0, 2, 2)
	require.NoError(t, err)
	require.Equal(t, matrix.NewRotator33XYZ(matrix.RowMajor, 0.5, 0.25, -0.75).ToArray(), block.ToArray())
}

// TestConventionString covers the textual form.
func TestConventionString(t *testing.T) {
	require.Equal(t, "column-major", matrix.ColumnMajor.String())
	require.Equal(t, "row-major", matrix.RowMajor.String())
}

// TestFixedRejectsBadSize ensures the fixed-size builder panics instead of
// returning a half-built instance.
func TestFixedRejectsBadSize(t *testing.T) {
	m := matrix.ExportedFixed(2, []float64{1, 2, 3, 4})
	require.Equal(t, [][]float64{{1, 2}, {3, 4}}, m.ToArray())

	require.Panics(t, func() { matrix.ExportedFixed(2, []float64{1, 2, 3}) })
	require.Panics(t, func() { matrix.ExportedFixed(-1, nil) })
}
