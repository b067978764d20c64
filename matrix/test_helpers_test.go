// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/stretchr/testify/require"
)

// tol is the absolute tolerance used for floating-point comparisons.
const tol = 1e-9

// MustNew ALLOCATES an r×c instance from row-major data or fails the test.
// Implementation:
//   - Stage 1: Call matrix.New(r,c,vals,opts...).
//   - Stage 2: require.NoError to abort the test early.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func MustNew(t testing.TB, r, c int, vals []float64, opts ...matrix.Option) *matrix.Matrix {
	t.Helper()
	m, err := matrix.New(r, c, vals, opts...)
	require.NoError(t, err)

	return m
}

// MustRows builds an instance from nested rows or fails the test.
func MustRows(t testing.TB, rows [][]float64, opts ...matrix.Option) *matrix.Matrix {
	t.Helper()
	m, err := matrix.FromRows(rows, opts...)
	require.NoError(t, err)

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt(t testing.TB, m *matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// RequireRowsClose asserts that m matches want element-wise within tol.
func RequireRowsClose(t testing.TB, want [][]float64, m *matrix.Matrix) {
	t.Helper()
	got := m.ToArray()
	require.Len(t, got, len(want))
	for i := range want {
		require.InDeltaSlice(t, want[i], got[i], tol, "row %d", i)
	}
}

// RequireIdentity asserts that m is an identity matrix within tol.
func RequireIdentity(t testing.TB, m *matrix.Matrix) {
	t.Helper()
	n := m.Rows()
	require.Equal(t, n, m.Cols())
	id, err := matrix.Identity(n)
	require.NoError(t, err)
	ok, err := matrix.AllClose(m, id, 0, 1e-9)
	require.NoError(t, err)
	require.True(t, ok, "not identity:\n%s", m)
}

// RandFilled returns an r×c Float64 instance with values in [-1,1].
// Deterministic for a fixed seed.
func RandFilled(t testing.TB, r, c int, seed int64) *matrix.Matrix {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	vals := make([]float64, r*c)
	for i := range vals {
		vals[i] = rng.Float64()*2 - 1
	}

	return MustNew(t, r, c, vals)
}

// RandDiagDominant returns an n×n matrix with a dominant diagonal (always
// invertible), deterministic for a fixed seed.
func RandDiagDominant(t testing.TB, n int, seed int64) *matrix.Matrix {
	t.Helper()
	m := RandFilled(t, n, n, seed)
	for i := 0; i < n; i++ {
		require.NoError(t, m.Set(i, i, MustAt(t, m, i, i)+float64(n)))
	}

	return m
}
