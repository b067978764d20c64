// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Operations return these sentinels (wrapped with an operation tag)
// and tests check them via errors.Is. No operation panics on user-triggered
// conditions; panics are reserved for programmer errors in option constructors.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for grep-ability. Operations
// wrap with fmt.Errorf("<Op>: %w", ErrX); callers match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil operand -> class support -> shape/dimension -> numeric (singular).

var (
	// ErrBadShape is returned for negative or overflowing dimensions, flat data
	// whose length does not match rows*cols, a shape that does not belong to the
	// requested family (e.g. NewVector3(4, 1, ...)), or an invalid block window.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrDimensionMismatch indicates incompatible operand shapes, e.g. MatAdd of
	// different shapes or MatMul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrIrregularShape signals ragged nested input (rows of different lengths).
	ErrIrregularShape = errors.New("matrix: irregular nested shape")

	// ErrOutOfRange indicates an index outside [0,rows)×[0,cols).
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrUnsupported marks an operation the instance's class does not define,
	// e.g. Invert on a non-square matrix or Cross on anything but a Vector3.
	ErrUnsupported = errors.New("matrix: operation not supported for this class")

	// ErrSingular is returned when Gauss-Jordan elimination finds no usable pivot.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNilMatrix indicates that a nil *Matrix operand was passed.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNaNInf signals a NaN or ±Inf rejected by the finite-only policy.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrArity indicates a wrong number of per-axis arguments (translate/scale/rotate).
	ErrArity = errors.New("matrix: wrong number of arguments")

	// ErrUnknownKind indicates an unrecognized textual element kind.
	ErrUnknownKind = errors.New("matrix: unknown element kind")
)

// Operation name constants for unified error wrapping.
const (
	opNew       = "New"
	opFromRows  = "FromRows"
	opBlock     = "Block"
	opMatAdd    = "MatAdd"
	opMatSub    = "MatSub"
	opMatMul    = "MatMul"
	opNorm      = "Norm"
	opNormalize = "Normalize"
	opDot       = "Dot"
	opCross     = "Cross"
	opInvert    = "Invert"
	opTranslate = "Translate"
	opScale     = "Scale"
	opRotate    = "Rotate"
	opTransform = "Transform"
	opVec       = "Vec"
	opAllClose  = "AllClose"
	opTranspose = "Transpose"
	opLU        = "LU"
	opDet       = "Determinant"
	opTrace     = "Trace"
)

// matrixErrorf wraps err with an operation tag, preserving it for errors.Is.
// Call only with a non-nil err.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// denseErrorf wraps err with accessor context and the offending coordinates.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}
