// SPDX-License-Identifier: MIT

package interop

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/linalg/matrix"
)

// ErrEmpty is returned when converting a 0-element instance into a gonum
// type, which cannot represent empty matrices.
var ErrEmpty = errors.New("interop: empty matrix")

// interopErrorf wraps err with a conversion tag.
func interopErrorf(tag string, err error) error {
	return fmt.Errorf("interop.%s: %w", tag, err)
}

// View adapts a live *matrix.Matrix to gonum's read-only mat.Matrix
// interface without copying. Mutating the instance is visible through
// the view. At panics on out-of-range indices, as gonum types do.
type View struct {
	M *matrix.Matrix
}

var _ mat.Matrix = View{}

// Dims returns the dimensions of the viewed instance.
func (v View) Dims() (r, c int) { return v.M.Shape() }

// At returns the element at (i, j).
func (v View) At(i, j int) float64 {
	x, err := v.M.At(i, j)
	if err != nil {
		panic(mat.ErrIndexOutOfRange)
	}

	return x
}

// T returns the implicit transpose of the view.
func (v View) T() mat.Matrix { return mat.Transpose{Matrix: v} }

// ToDense copies m into a new *mat.Dense.
// Errors: matrix.ErrNilMatrix, ErrEmpty.
func ToDense(m *matrix.Matrix) (*mat.Dense, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, interopErrorf("ToDense", err)
	}
	if m.Len() == 0 {
		return nil, interopErrorf("ToDense", ErrEmpty)
	}
	r, c := m.Shape()

	return mat.NewDense(r, c, m.Data()), nil
}

// ToVecDense copies a vector into a new *mat.VecDense.
// Errors: matrix.ErrNilMatrix, matrix.ErrUnsupported (not a vector).
func ToVecDense(v *matrix.Matrix) (*mat.VecDense, error) {
	if err := matrix.ValidateVector(v); err != nil {
		return nil, interopErrorf("ToVecDense", err)
	}

	return mat.NewVecDense(v.Len(), v.Data()), nil
}

// FromGonum copies any gonum matrix into a new instance (Float64 unless
// overridden). The class is resolved from the gonum dimensions, so a
// *mat.VecDense becomes an n×1 vector.
func FromGonum(g mat.Matrix, opts ...matrix.Option) (*matrix.Matrix, error) {
	if g == nil {
		return nil, interopErrorf("FromGonum", matrix.ErrNilMatrix)
	}
	r, c := g.Dims()
	data := make([]float64, 0, r*c)
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			data = append(data, g.At(i, j))
		}
	}
	m, err := matrix.New(r, c, data, opts...)
	if err != nil {
		return nil, interopErrorf("FromGonum", err)
	}

	return m, nil
}
