// SPDX-License-Identifier: MIT

// Package matrix - Matrix storage, safe accessors and dimension-agnostic operations.
//
// Purpose:
//   - Provide the single concrete instance type shared by every behavior class.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Route temporary results through the per-instance scratch region so that
//     in-place operations never read values they have already overwritten.
//
// Complexity quicksheet:
//   - At/Set: O(1); Clone/ToArray/Transpose: O(r*c); MatMul: O(r*n*c).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt    = "At"    // method tag used in error wrappers
	ctxSet   = "Set"   // method tag used in error wrappers
	ctxApply = "Apply" // method tag used in error wrappers
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Matrix is a rows×cols instance over one owned buffer.
//   - buf holds data and scratch (row-major, len == rows*cols each).
//   - dims is the compact (rows, cols) record.
//   - class is the behavior set resolved from dims at construction.
//   - validateNaNInf enables finite-only enforcement on element writes.
//
// A Matrix is not safe for concurrent use; callers must synchronize access to
// a shared instance. Distinct instances never share storage.
type Matrix struct {
	buf            storage
	dims           dims
	class          Class
	validateNaNInf bool
}

var _ fmt.Stringer = (*Matrix)(nil)

// Rows returns the row count. Complexity: O(1).
func (m *Matrix) Rows() int { return m.dims.rows() }

// Cols returns the column count. Complexity: O(1).
func (m *Matrix) Cols() int { return m.dims.cols() }

// Shape packs Rows() and Cols() into a single call.
func (m *Matrix) Shape() (rows, cols int) { return m.dims.rows(), m.dims.cols() }

// Len returns the number of elements (rows*cols).
func (m *Matrix) Len() int { return m.buf.len() }

// Kind returns the element kind backing the instance.
func (m *Matrix) Kind() Kind { return m.buf.kind() }

// Class returns the behavior set resolved at construction.
func (m *Matrix) Class() Class { return m.class }

// DimWidth returns the byte width of the encoded dimension record.
func (m *Matrix) DimWidth() DimWidth { return m.dims.width }

// indexOf validates (row, col) and computes the row-major offset col + row*cols.
// Bounds are strict: 0 ≤ row < rows and 0 ≤ col < cols.
func (m *Matrix) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.Rows() {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.Cols() {
		return 0, ErrOutOfRange
	}

	return col + row*m.Cols(), nil
}

// checkFinite enforces the numeric policy for a value about to be written.
func (m *Matrix) checkFinite(v float64) error {
	if m.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return ErrNaNInf
	}

	return nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Matrix) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.buf.at(off), nil
}

// Set stores v at (row, col), coerced into the element kind.
//
// Errors:
//   - ErrOutOfRange for invalid indices.
//   - ErrNaNInf for non-finite v when the finite-only policy is on.
//
// Complexity: O(1).
func (m *Matrix) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if err = m.checkFinite(v); err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.buf.set(off, v)

	return nil
}

// Data returns a row-major copy of the element values.
func (m *Matrix) Data() []float64 {
	n := m.buf.len()
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = m.buf.at(i)
	}

	return out
}

// ToArray materializes the instance as independent row slices.
// The result never aliases the live buffer. A 0-row instance yields an
// empty, non-nil slice.
//
// Complexity: O(r*c).
func (m *Matrix) ToArray() [][]float64 {
	r, c := m.Shape()
	out := make([][]float64, r)
	var i, j int
	for i = 0; i < r; i++ {
		row := make([]float64, c)
		for j = 0; j < c; j++ {
			row[j] = m.buf.at(i*c + j)
		}
		out[i] = row
	}

	return out
}

// String renders rows as "[a, b]\n" lines for diagnostics.
func (m *Matrix) String() string {
	var b strings.Builder
	r, c := m.Shape()
	var i, j int
	for i = 0; i < r; i++ {
		b.WriteString(_fmtRowOpen)
		for j = 0; j < c; j++ {
			b.WriteString(fmt.Sprintf("%g", m.buf.at(i*c+j)))
			if j+1 < c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// Do visits each element in row-major order; stops early when f returns false.
func (m *Matrix) Do(f func(i, j int, v float64) bool) {
	r, c := m.Shape()
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if !f(i, j, m.buf.at(i*c+j)) {
				return
			}
		}
	}
}

// Apply replaces each element with f(i,j,v) in row-major order.
// Under the finite-only policy a non-finite result aborts with ErrNaNInf;
// elements written before the error remain updated.
func (m *Matrix) Apply(f func(i, j int, v float64) float64) error {
	r, c := m.Shape()
	var i, j, off int
	var nv float64
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			off = i*c + j
			nv = f(i, j, m.buf.at(off))
			if err := m.checkFinite(nv); err != nil {
				return denseErrorf(ctxApply, i, j, err)
			}
			m.buf.set(off, nv)
		}
	}

	return nil
}

// Block returns an independent copy of the inclusive window
// [top..bottom]×[left..right]. The copy keeps the element kind and is
// resolved afresh, so a single-row block of a 3×3 matrix is a Vector3.
//
// Errors:
//   - ErrBadShape when the window is empty, larger than the source, or falls
//     outside it.
//
// Complexity: O(h*w).
func (m *Matrix) Block(top, left, bottom, right int) (*Matrix, error) {
	h, w := bottom-top+1, right-left+1
	r, c := m.Shape()
	if h <= 0 || w <= 0 || h > r || w > c || top < 0 || left < 0 || bottom >= r || right >= c {
		return nil, matrixErrorf(opBlock, fmt.Errorf("(%d,%d)-(%d,%d) of %dx%d: %w", top, left, bottom, right, r, c, ErrBadShape))
	}
	out, err := build(h, w, m.Kind(), m.validateNaNInf)
	if err != nil {
		return nil, matrixErrorf(opBlock, err)
	}

	var i, j, pre int
	for i = 0; i < h; i++ {
		pre = (top+i)*c + left
		for j = 0; j < w; j++ {
			out.buf.set(j+i*w, m.buf.at(pre+j))
		}
	}

	return out, nil
}

// Clone returns a deep copy in a new allocation. WithKind coerces the copy
// into another element kind; the class is re-resolved from the same shape.
//
// Complexity: O(r*c).
func (m *Matrix) Clone(opts ...Option) *Matrix {
	o := gatherOptions(opts...)
	r, c := m.Shape()
	out := &Matrix{
		buf:            allocate(o.kindOr(m.Kind()), r*c),
		dims:           m.dims,
		class:          Resolve(r, c),
		validateNaNInf: o.policyOr(m.validateNaNInf),
	}
	copyInto(out.buf, m.buf)

	return out
}

// TransposeSelf transposes in place and returns m.
//
// Implementation:
//   - Vectors: O(1), only the dimension record is swapped (1×n and n×1 share
//     the same flat layout).
//   - Otherwise: scratch[i + j*rows] = data[j + i*cols], commit, swap dims.
//
// The class never changes: transposition preserves the shape family.
func (m *Matrix) TransposeSelf() *Matrix {
	if m.class.IsVector() {
		m.dims.swap()
		return m
	}

	r, c := m.Shape()
	var i, j, pre int
	for i = 0; i < r; i++ {
		pre = i * c
		for j = 0; j < c; j++ {
			m.buf.setScratch(i+j*r, m.buf.at(j+pre))
		}
	}
	m.buf.commit()
	m.dims.swap()

	return m
}

// Transpose returns a transposed copy; m is not modified.
func (m *Matrix) Transpose() *Matrix { return m.Clone().TransposeSelf() }

// MulSelf multiplies every element by s in place and returns m.
func (m *Matrix) MulSelf(s float64) *Matrix {
	switch m.class {
	case ClassVector2:
		m.buf.set(0, m.buf.at(0)*s)
		m.buf.set(1, m.buf.at(1)*s)
	case ClassVector3:
		m.buf.set(0, m.buf.at(0)*s)
		m.buf.set(1, m.buf.at(1)*s)
		m.buf.set(2, m.buf.at(2)*s)
	default:
		n := m.buf.len()
		for i := 0; i < n; i++ {
			m.buf.set(i, m.buf.at(i)*s)
		}
	}

	return m
}

// DivSelf divides every element by s in place (MulSelf(1/s)) and returns m.
func (m *Matrix) DivSelf(s float64) *Matrix { return m.MulSelf(1 / s) }

// Mul returns a scaled copy; WithKind selects the result kind.
func (m *Matrix) Mul(s float64, opts ...Option) *Matrix { return m.Clone(opts...).MulSelf(s) }

// Div returns a copy divided by s; WithKind selects the result kind.
func (m *Matrix) Div(s float64, opts ...Option) *Matrix { return m.Mul(1/s, opts...) }

// addSubSelf computes m = m + sign*other element-wise.
// Stage 1: validate non-nil and identical shapes; Stage 2: unrolled paths for
// Vector2/Vector3, Float64 flat fast path, generic fallback.
func (m *Matrix) addSubSelf(other *Matrix, sign float64, op string) error {
	if other == nil {
		return matrixErrorf(op, ErrNilMatrix)
	}
	if err := ValidateSameShape(m, other); err != nil {
		return matrixErrorf(op, err)
	}

	switch m.class {
	case ClassVector2:
		m.buf.set(0, m.buf.at(0)+sign*other.buf.at(0))
		m.buf.set(1, m.buf.at(1)+sign*other.buf.at(1))
		return nil
	case ClassVector3:
		m.buf.set(0, m.buf.at(0)+sign*other.buf.at(0))
		m.buf.set(1, m.buf.at(1)+sign*other.buf.at(1))
		m.buf.set(2, m.buf.at(2)+sign*other.buf.at(2))
		return nil
	}

	if dm, ok := float64Data(m.buf); ok {
		if do, ok := float64Data(other.buf); ok {
			for i := range dm {
				dm[i] += sign * do[i]
			}
			return nil
		}
	}
	n := m.buf.len()
	for i := 0; i < n; i++ {
		m.buf.set(i, m.buf.at(i)+sign*other.buf.at(i))
	}

	return nil
}

// MatAddSelf adds other element-wise in place.
// Errors: ErrNilMatrix, ErrDimensionMismatch (shapes differ).
func (m *Matrix) MatAddSelf(other *Matrix) error { return m.addSubSelf(other, +1, opMatAdd) }

// MatSubSelf subtracts other element-wise in place.
// Errors: ErrNilMatrix, ErrDimensionMismatch (shapes differ).
func (m *Matrix) MatSubSelf(other *Matrix) error { return m.addSubSelf(other, -1, opMatSub) }

// MatAdd returns m + other in a new instance. The result kind is
// Promote(m.Kind(), other.Kind()) unless WithKind overrides it.
func (m *Matrix) MatAdd(other *Matrix, opts ...Option) (*Matrix, error) {
	return m.binaryCopy(other, opMatAdd, (*Matrix).MatAddSelf, opts)
}

// MatSub returns m - other in a new instance (kind as in MatAdd).
func (m *Matrix) MatSub(other *Matrix, opts ...Option) (*Matrix, error) {
	return m.binaryCopy(other, opMatSub, (*Matrix).MatSubSelf, opts)
}

// binaryCopy clones m into the promoted kind and applies the in-place op.
func (m *Matrix) binaryCopy(other *Matrix, op string, self func(*Matrix, *Matrix) error, opts []Option) (*Matrix, error) {
	if other == nil {
		return nil, matrixErrorf(op, ErrNilMatrix)
	}
	o := gatherOptions(opts...)
	out := m.Clone(WithKind(resultKind(m.Kind(), other.Kind(), o)))
	if err := self(out, other); err != nil {
		return nil, err
	}

	return out, nil
}

// runMatMul computes a×b and hands every result entry to store, in row-major
// order: result[i,k] = Σ_j a[i,j]*b[j,k]. Entries are accumulated in float64
// and stored once. Callers validate a.Cols() == b.Rows().
func runMatMul(a, b *Matrix, store func(idx int, v float64)) {
	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	var i, j, k, pre int
	var entry float64

	// Fast path: both operands Float64-backed, read flat slices directly.
	if ad, ok := float64Data(a.buf); ok {
		if bd, ok := float64Data(b.buf); ok {
			for i = 0; i < aRows; i++ {
				pre = i * aCols
				for k = 0; k < bCols; k++ {
					entry = 0
					for j = 0; j < aCols; j++ {
						entry += ad[pre+j] * bd[j*bCols+k]
					}
					store(i*bCols+k, entry)
				}
			}
			return
		}
	}

	for i = 0; i < aRows; i++ {
		pre = i * aCols
		for k = 0; k < bCols; k++ {
			entry = 0
			for j = 0; j < aCols; j++ {
				entry += a.buf.at(pre+j) * b.buf.at(j*bCols+k)
			}
			store(i*bCols+k, entry)
		}
	}
}

// MatMulSelf replaces m with m×other. The product must fit m's own storage,
// so other must be cols×cols. The product is built in scratch and committed,
// which makes m.MatMulSelf(m) safe.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (other.Cols != m.Cols or
// other.Rows != m.Cols).
//
// Complexity: O(r*c*c).
func (m *Matrix) MatMulSelf(other *Matrix) error {
	if other == nil {
		return matrixErrorf(opMatMul, ErrNilMatrix)
	}
	if other.Cols() != m.Cols() {
		return matrixErrorf(opMatMul, fmt.Errorf("result %dx%d does not fit %dx%d: %w",
			m.Rows(), other.Cols(), m.Rows(), m.Cols(), ErrDimensionMismatch))
	}
	if err := ValidateMulCompatible(m, other); err != nil {
		return matrixErrorf(opMatMul, err)
	}
	runMatMul(m, other, m.buf.setScratch)
	m.buf.commit()

	return nil
}

// MatMul returns m×other as a new rows(m)×cols(other) instance, resolved
// afresh (a 1×2 times a 2×2 is a Vector2). The result kind is promoted unless
// WithKind overrides it.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (m.Cols != other.Rows).
//
// Complexity: O(r*n*c).
func (m *Matrix) MatMul(other *Matrix, opts ...Option) (*Matrix, error) {
	if other == nil {
		return nil, matrixErrorf(opMatMul, ErrNilMatrix)
	}
	if err := ValidateMulCompatible(m, other); err != nil {
		return nil, matrixErrorf(opMatMul, err)
	}
	o := gatherOptions(opts...)
	out, err := build(m.Rows(), other.Cols(), resultKind(m.Kind(), other.Kind(), o), o.policyOr(m.validateNaNInf))
	if err != nil {
		return nil, matrixErrorf(opMatMul, err)
	}
	runMatMul(m, other, out.buf.set)

	return out, nil
}
