// SPDX-License-Identifier: MIT
// Package matrix_test verifies the package-level facades.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/stretchr/testify/require"
)

// TestFacadesDelegate checks the facades match the methods they wrap.
func TestFacadesDelegate(t *testing.T) {
	a := MustRows(t, [][]float64{{1, 2}, {3, 4}})
	b := MustRows(t, [][]float64{{5, 6}, {7, 8}})

	sum, err := matrix.Add(a, b)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{6, 8}, {10, 12}}, sum.ToArray())

	diff, err := matrix.Sub(b, a)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{4, 4}, {4, 4}}, diff.ToArray())

	prod, err := matrix.Mul(a, b)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{19, 22}, {43, 50}}, prod.ToArray())

	tr, err := matrix.Transpose(a)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 3}, {2, 4}}, tr.ToArray())

	inv, err := matrix.Inverse(a)
	require.NoError(t, err)
	RequireRowsClose(t, [][]float64{{-2, 1}, {1.5, -0.5}}, inv)

	// operands are never mutated
	require.Equal(t, [][]float64{{1, 2}, {3, 4}}, a.ToArray())
}

// TestFacadesNil ensures nil operands surface ErrNilMatrix.
func TestFacadesNil(t *testing.T) {
	a := MustNew(t, 2, 2, nil)
	_, err := matrix.Add(nil, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Sub(a, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Mul(nil, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Transpose(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Inverse(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Inverse(MustNew(t, 2, 3, nil))
	require.ErrorIs(t, err, matrix.ErrUnsupported)
}

// TestSameShape covers nil and orientation.
func TestSameShape(t *testing.T) {
	require.True(t, matrix.SameShape(MustNew(t, 2, 3, nil), MustNew(t, 2, 3, nil)))
	require.False(t, matrix.SameShape(MustNew(t, 1, 3, nil), MustNew(t, 3, 1, nil)))
	require.False(t, matrix.SameShape(nil, MustNew(t, 1, 3, nil)))
}

// TestAllClose covers tolerances, special values and errors.
func TestAllClose(t *testing.T) {
	a := MustNew(t, 1, 3, []float64{1, math.Inf(1), 100})
	b := MustNew(t, 1, 3, []float64{1 + 1e-12, math.Inf(1), 100.5})

	ok, err := matrix.AllClose(a, b, 0, 1e-9)
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = matrix.AllClose(a, b, 0.01, 0)
	require.NoError(t, err)
	require.True(t, ok)

	// negative tolerances are normalized
	ok, err = matrix.AllClose(a, b, -0.01, 0)
	require.NoError(t, err)
	require.True(t, ok)

	nan := MustNew(t, 1, 3, []float64{math.NaN(), 0, 0})
	ok, err = matrix.AllClose(nan, nan, 1, 1)
	require.NoError(t, err)
	require.False(t, ok)

	_, err = matrix.AllClose(a, b, math.NaN(), 0)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	_, err = matrix.AllClose(a, MustNew(t, 3, 1, nil), 0, 0)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.AllClose(nil, a, 0, 0)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
