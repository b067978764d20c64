// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/linalg/matrix"
)

// round trims floating noise (and negative zero) for stable output.
func round(vals []float64) []float64 {
	out := make([]float64, len(vals))
	for i, v := range vals {
		out[i] = math.Round(v*1e9)/1e9 + 0
	}

	return out
}

// ExampleMatrix_Rotate rotates the x axis about z, then about x and z.
func ExampleMatrix_Rotate() {
	v, _ := matrix.NewVector3(1, 3, []float64{1, 0, 0})
	fmt.Println(v.Class(), v.ToArray())

	_ = v.Rotate(0, 0, 90)
	fmt.Println(round(v.Data()))

	_ = v.Rotate(180, 0, 90)
	fmt.Println(round(v.Data()))

	// Output:
	// Vector3 [[1 0 0]]
	// [0 -1 0]
	// [1 0 0]
}

// ExampleMatrix_InvertSelf inverts a 3×3 matrix and checks the product.
func ExampleMatrix_InvertSelf() {
	a, _ := matrix.FromRows([][]float64{{2, -1, 0}, {1, 2, -2}, {0, -1, 1}})
	inv := a.Clone()
	if err := inv.InvertSelf(); err != nil {
		fmt.Println(err)
		return
	}
	_ = a.MatMulSelf(inv)
	for _, row := range a.ToArray() {
		fmt.Println(round(row))
	}

	z, _ := matrix.NewMatrix22([]float64{0, 0, 0, 0})
	fmt.Println(z.InvertSelf())

	// Output:
	// [1 0 0]
	// [0 1 0]
	// [0 0 1]
	// Invert: matrix: singular matrix
}

// ExampleMatrix_TransformPoint translates a point with a homogeneous matrix.
func ExampleMatrix_TransformPoint() {
	t, _ := matrix.FromRows([][]float64{
		{1, 0, 0, 2},
		{0, 1, 0, 2},
		{0, 0, 1, 2},
		{0, 0, 0, 1},
	})
	p, _ := matrix.NewVector3(3, 1, []float64{0, 0, 0})
	_ = p.TransformPoint(t)
	fmt.Println(p.Data())

	// Output:
	// [2 2 2]
}

// ExampleMatrix_MatMul shows the result kind override and class resolution.
func ExampleMatrix_MatMul() {
	v, _ := matrix.NewTyped(1, 2, matrix.TypedArray[int16](1, 2))
	m, _ := matrix.FromArrays([]matrix.Array{
		matrix.TypedArray[float32](1, 2),
		matrix.TypedArray[float32](3, 4),
	})
	r, _ := v.MatMul(m, matrix.WithKind(matrix.Int8))
	fmt.Println(r.Class(), r.Kind(), r.Data())

	// Output:
	// Vector2 int8 [7 10]
}

// ExampleMatrix_Cross computes a 3-vector cross product.
func ExampleMatrix_Cross() {
	a, _ := matrix.NewVector3(1, 3, []float64{1, 2, 3})
	b, _ := matrix.NewVector3(1, 3, []float64{-7, 8, 9})
	c, _ := a.Cross(b)
	fmt.Print(c)

	// Output:
	// [-6, -30, 22]
}
