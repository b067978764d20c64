// SPDX-License-Identifier: MIT

// Package linalg is a small dense linear-algebra toolkit for 2D/3D work.
//
// Everything lives under a few subpackages:
//
//	matrix/              Matrix over typed buffers, element kinds, class resolution,
//	                     arithmetic, Gauss-Jordan inversion, dot/cross/norm,
//	                     rotators and homogeneous transforms
//	interop/             conversion to and from gonum/mat and x/image/math/f32
//	internal/matfile/    YAML/JSON matrix documents
//	internal/logging/    zap logger construction
//	cmd/linalg/          command line front end
//
// Quick start:
//
//	v, _ := matrix.NewVector3(1, 3, []float64{1, 0, 0})
//	_ = v.Rotate(0, 0, 90) // v ≈ [0 -1 0]
//
//	m, _ := matrix.FromRows([][]float64{{4, 7}, {2, 6}})
//	inv, err := m.Invert()
package linalg
