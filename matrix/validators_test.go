// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/stretchr/testify/require"
)

// TestValidateSameShape covers matching and mismatched dimensions.
func TestValidateSameShape(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		a, b    *matrix.Matrix
		wantErr error
	}{
		{"equal 2x3", MustNew(t, 2, 3, nil), MustNew(t, 2, 3, nil), nil},
		{"row mismatch", MustNew(t, 2, 3, nil), MustNew(t, 3, 3, nil), matrix.ErrDimensionMismatch},
		{"col mismatch", MustNew(t, 2, 3, nil), MustNew(t, 2, 4, nil), matrix.ErrDimensionMismatch},
		{"row vs column", MustNew(t, 1, 3, nil), MustNew(t, 3, 1, nil), matrix.ErrDimensionMismatch},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateSameShape(tc.a, tc.b)
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

// TestValidateNotNil ensures nil pointers are rejected.
func TestValidateNotNil(t *testing.T) {
	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)
	require.NoError(t, matrix.ValidateNotNil(MustNew(t, 1, 1, nil)))
}

// TestValidateSquareAndVector checks the class-based validators.
func TestValidateSquareAndVector(t *testing.T) {
	require.NoError(t, matrix.ValidateSquare(MustNew(t, 3, 3, nil)))
	require.ErrorIs(t, matrix.ValidateSquare(MustNew(t, 2, 3, nil)), matrix.ErrUnsupported)
	require.ErrorIs(t, matrix.ValidateSquare(MustNew(t, 1, 1, nil)), matrix.ErrUnsupported)
	require.ErrorIs(t, matrix.ValidateSquare(nil), matrix.ErrNilMatrix)

	require.NoError(t, matrix.ValidateVector(MustNew(t, 1, 7, nil)))
	require.ErrorIs(t, matrix.ValidateVector(MustNew(t, 2, 2, nil)), matrix.ErrUnsupported)
	require.ErrorIs(t, matrix.ValidateVector(nil), matrix.ErrNilMatrix)
}

// TestValidateMulCompatible checks inner dimensions and nil handling.
func TestValidateMulCompatible(t *testing.T) {
	require.NoError(t, matrix.ValidateMulCompatible(MustNew(t, 2, 3, nil), MustNew(t, 3, 5, nil)))
	require.ErrorIs(t, matrix.ValidateMulCompatible(MustNew(t, 2, 3, nil), MustNew(t, 2, 3, nil)), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateMulCompatible(nil, MustNew(t, 2, 3, nil)), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateMulCompatible(MustNew(t, 2, 3, nil), nil), matrix.ErrNilMatrix)
}
