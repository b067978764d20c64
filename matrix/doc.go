// SPDX-License-Identifier: MIT

// Package matrix provides dense matrices and vectors over typed numeric
// buffers.
//
// The package offers:
//
//   - One concrete type, *Matrix, whose behavior set (Class) is resolved
//     from its dimensions at construction: 1×n and n×1 shapes are vectors
//     (Vector2/Vector3 for 2 and 3 elements), n×n shapes are square
//     (Matrix22/33/44 for 2, 3 and 4), everything else is a plain Matrix.
//   - Nine element kinds (Int8 … Float64, plus Uint8Clamped) with
//     wrap-around or clamping coercion on store and width-based promotion
//     when two operands are combined.
//   - Arithmetic (MatAdd, MatSub, MatMul, Mul, Div), Transpose, Block, Clone.
//   - Gauss-Jordan inversion with threshold pivoting for square matrices.
//   - Dot, Norm, Normalize for vectors and Cross for 3-vectors.
//   - Translate, Scale, Rotate and point/vector transforms for 2- and
//     3-vectors, with rotator factories for both matrix conventions.
//
// Every instance owns a single allocation split into a data region and a
// scratch region of equal length. In-place operations (…Self) build their
// result in scratch before committing it, so m.MatMulSelf(m) is safe.
//
// Errors are sentinel values (ErrBadShape, ErrDimensionMismatch, ...) wrapped
// with an operation tag; match them with errors.Is. Instances are not safe
// for concurrent mutation.
//
// See the examples in this package for usage patterns.
package matrix
