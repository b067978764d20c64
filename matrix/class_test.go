// SPDX-License-Identifier: MIT
// Package matrix_test verifies the dimension-driven class resolver.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/stretchr/testify/require"
)

// TestResolve pins the priority chain: vector, then square, then generic.
func TestResolve(t *testing.T) {
	cases := []struct {
		rows, cols int
		want       matrix.Class
	}{
		{1, 1, matrix.ClassVector},
		{1, 2, matrix.ClassVector2},
		{2, 1, matrix.ClassVector2},
		{1, 3, matrix.ClassVector3},
		{3, 1, matrix.ClassVector3},
		{1, 4, matrix.ClassVector},
		{7, 1, matrix.ClassVector},
		{0, 0, matrix.ClassSquare},
		{2, 2, matrix.ClassMatrix22},
		{3, 3, matrix.ClassMatrix33},
		{4, 4, matrix.ClassMatrix44},
		{5, 5, matrix.ClassSquare},
		{2, 3, matrix.ClassMatrix},
		{4, 2, matrix.ClassMatrix},
		{0, 3, matrix.ClassMatrix},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("%dx%d", tc.rows, tc.cols), func(t *testing.T) {
			require.Equal(t, tc.want, matrix.Resolve(tc.rows, tc.cols))
			// determinism: a second call yields the same class
			require.Equal(t, matrix.Resolve(tc.rows, tc.cols), matrix.Resolve(tc.rows, tc.cols))
		})
	}
}

// TestClassPredicates checks family membership and fixed sizes.
func TestClassPredicates(t *testing.T) {
	require.True(t, matrix.ClassVector3.IsVector())
	require.False(t, matrix.ClassVector3.IsSquare())
	require.True(t, matrix.ClassMatrix44.IsSquare())
	require.True(t, matrix.ClassSquare.IsSquare())
	require.False(t, matrix.ClassMatrix.IsVector())
	require.False(t, matrix.ClassMatrix.IsSquare())

	require.True(t, matrix.ClassVector2.IsCommon())
	require.False(t, matrix.ClassVector.IsCommon())
	require.Equal(t, 4, matrix.ClassMatrix44.Dim())
	require.Equal(t, 0, matrix.ClassSquare.Dim())

	require.Equal(t, "Matrix33", matrix.ClassMatrix33.String())
	require.Equal(t, "SquareMatrix", matrix.ClassSquare.String())
	require.Equal(t, "Class(200)", matrix.Class(200).String())
}

// TestConstructedClass verifies that construction runs the resolver once and
// that the class never changes across transposition.
func TestConstructedClass(t *testing.T) {
	v := MustNew(t, 3, 1, []float64{1, 0, 0})
	require.Equal(t, matrix.ClassVector3, v.Class())
	v.TransposeSelf()
	require.Equal(t, matrix.ClassVector3, v.Class())
	require.Equal(t, 1, v.Rows())
	require.Equal(t, 3, v.Cols())

	m := MustNew(t, 2, 3, nil)
	require.Equal(t, matrix.ClassMatrix, m.Class())
	m.TransposeSelf()
	require.Equal(t, matrix.ClassMatrix, m.Class())

	sq := MustNew(t, 4, 4, nil)
	require.Equal(t, matrix.ClassMatrix44, sq.Class())
}
