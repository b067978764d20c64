// SPDX-License-Identifier: MIT

// Package interop converts *matrix.Matrix values to and from the types of
// other Go numeric libraries.
//
//   - gonum: *mat.Dense and *mat.VecDense copies, plus View, a zero-copy
//     read-only mat.Matrix over a live instance.
//   - golang.org/x/image/math/f32: Vec2/Vec3/Vec4 and the row-major
//     Mat3/Mat4 used by graphics code.
//
// Conversions into this module produce Float64 instances for gonum and
// Float32 instances for f32, unless matrix.WithKind says otherwise.
package interop
