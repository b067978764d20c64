// SPDX-License-Identifier: MIT

// Package matrix - public construction surface.
//
// Purpose:
//   - Build instances from explicit dimensions (+ optional flat data) or from
//     nested row input, applying the element-kind inference rules.
//   - Run the class resolver exactly once per construction, before any data
//     is assigned.
//   - Offer family constructors (NewVector3, NewMatrix44, ...) that reject
//     shapes outside the requested family with ErrBadShape.

package matrix

import "fmt"

// build validates dims, resolves the class and allocates a zeroed instance.
func build(rows, cols int, kind Kind, validateNaNInf bool) (*Matrix, error) {
	d, err := newDims(rows, cols)
	if err != nil {
		return nil, err
	}

	return &Matrix{
		buf:            allocate(kind, rows*cols),
		dims:           d,
		class:          Resolve(rows, cols),
		validateNaNInf: validateNaNInf,
	}, nil
}

// New creates a rows×cols instance. data may be nil (zero matrix); otherwise
// it must hold exactly rows*cols values in row-major order. Plain float64 data
// is backed by Float64 unless WithKind overrides it.
//
// Errors:
//   - ErrBadShape: negative/overflowing dims or len(data) != rows*cols.
//   - ErrNaNInf: non-finite data under WithValidateNaNInf.
//
// Complexity: O(rows*cols).
func New(rows, cols int, data []float64, opts ...Option) (*Matrix, error) {
	o := gatherOptions(opts...)
	m, err := build(rows, cols, o.kindOr(DefaultKind), o.policyOr(DefaultValidateNaNInf))
	if err != nil {
		return nil, matrixErrorf(opNew, err)
	}
	if data != nil {
		if err = m.assignFlat(data); err != nil {
			return nil, matrixErrorf(opNew, err)
		}
	}

	return m, nil
}

// NewTyped creates a rows×cols instance from a typed sequence. The element
// kind follows data.Kind() unless WithKind overrides it.
func NewTyped(rows, cols int, data Array, opts ...Option) (*Matrix, error) {
	o := gatherOptions(opts...)
	m, err := build(rows, cols, o.kindOr(data.kind), o.policyOr(DefaultValidateNaNInf))
	if err != nil {
		return nil, matrixErrorf(opNew, err)
	}
	if err = m.assignFlat(data.vals); err != nil {
		return nil, matrixErrorf(opNew, err)
	}

	return m, nil
}

// FromRows creates an instance from plain nested rows. An empty outer slice
// (or an empty first row) yields 0 rows; every row must have the length of
// the first one.
//
// Errors:
//   - ErrIrregularShape: ragged rows, or an empty first row followed by rows.
func FromRows(rows [][]float64, opts ...Option) (*Matrix, error) {
	arrays := make([]Array, len(rows))
	for i, r := range rows {
		arrays[i] = Array{kind: DefaultKind, vals: r}
	}

	return fromNested(arrays, gatherOptions(opts...))
}

// FromArrays creates an instance from typed (or plain) rows. Without WithKind
// the element kind is inferred: any plain row forces Float64, otherwise the
// widest row kind wins and 8-byte kinds short-circuit to Float64.
func FromArrays(rows []Array, opts ...Option) (*Matrix, error) {
	return fromNested(rows, gatherOptions(opts...))
}

// fromNested is the shared nested-input path of FromRows/FromArrays.
// Stage 1: derive (rows, cols) from the first row; Stage 2: infer the kind;
// Stage 3: allocate; Stage 4: copy rows, rejecting ragged input.
func fromNested(rows []Array, o Options) (*Matrix, error) {
	r, c := len(rows), 0
	kind := Float64
	if r == 0 || len(rows[0].vals) == 0 {
		r = 0
	} else {
		c = len(rows[0].vals)
		kind = inferRowsKind(rows)
	}

	m, err := build(r, c, o.kindOr(kind), o.policyOr(DefaultValidateNaNInf))
	if err != nil {
		return nil, matrixErrorf(opFromRows, err)
	}
	if r != len(rows) {
		return nil, matrixErrorf(opFromRows, ErrIrregularShape)
	}

	var i, j int
	for i = 0; i < r; i++ {
		if len(rows[i].vals) != c {
			return nil, matrixErrorf(opFromRows,
				fmt.Errorf("row %d has %d elements, want %d: %w", i, len(rows[i].vals), c, ErrIrregularShape))
		}
		for j = 0; j < c; j++ {
			if err = m.checkFinite(rows[i].vals[j]); err != nil {
				return nil, matrixErrorf(opFromRows, err)
			}
			m.buf.set(i*c+j, rows[i].vals[j])
		}
	}

	return m, nil
}

// assignFlat copies row-major data into a freshly built instance.
func (m *Matrix) assignFlat(data []float64) error {
	if len(data) != m.buf.len() {
		return fmt.Errorf("data length %d, want %d: %w", len(data), m.buf.len(), ErrBadShape)
	}
	for i, v := range data {
		if err := m.checkFinite(v); err != nil {
			return err
		}
		m.buf.set(i, v)
	}

	return nil
}

// ---------- family constructors ----------

// newInFamily builds rows×cols only if the resolved class satisfies accept.
func newInFamily(rows, cols int, data []float64, accept func(Class) bool, opts []Option) (*Matrix, error) {
	if !accept(Resolve(rows, cols)) {
		return nil, matrixErrorf(opNew, fmt.Errorf("%dx%d: %w", rows, cols, ErrBadShape))
	}

	return New(rows, cols, data, opts...)
}

// NewVector creates a vector (rows==1 or cols==1). The result may specialize
// further into Vector2/Vector3.
func NewVector(rows, cols int, data []float64, opts ...Option) (*Matrix, error) {
	return newInFamily(rows, cols, data, Class.IsVector, opts)
}

// NewVector2 creates a 1×2 or 2×1 vector.
func NewVector2(rows, cols int, data []float64, opts ...Option) (*Matrix, error) {
	return newInFamily(rows, cols, data, func(c Class) bool { return c == ClassVector2 }, opts)
}

// NewVector3 creates a 1×3 or 3×1 vector.
func NewVector3(rows, cols int, data []float64, opts ...Option) (*Matrix, error) {
	return newInFamily(rows, cols, data, func(c Class) bool { return c == ClassVector3 }, opts)
}

// NewSquare creates an n×n matrix (n >= 0, n != 1).
func NewSquare(n int, data []float64, opts ...Option) (*Matrix, error) {
	return newInFamily(n, n, data, Class.IsSquare, opts)
}

// NewMatrix22 creates a 2×2 matrix from 4 row-major values (nil → zeros).
func NewMatrix22(data []float64, opts ...Option) (*Matrix, error) { return New(2, 2, data, opts...) }

// NewMatrix33 creates a 3×3 matrix from 9 row-major values (nil → zeros).
func NewMatrix33(data []float64, opts ...Option) (*Matrix, error) { return New(3, 3, data, opts...) }

// NewMatrix44 creates a 4×4 matrix from 16 row-major values (nil → zeros).
func NewMatrix44(data []float64, opts ...Option) (*Matrix, error) { return New(4, 4, data, opts...) }

// Identity returns the n×n identity matrix. Identity(1) is the 1×1 [1],
// which resolves to the Vector class like any other 1×1 instance.
func Identity(n int, opts ...Option) (*Matrix, error) {
	m, err := New(n, n, nil, opts...)
	if err != nil {
		return nil, err
	}
	m.makeIdentity(m.buf.set)

	return m, nil
}

// makeIdentity writes ones on the diagonal through store (data or scratch).
// The target must already be zeroed off the diagonal.
func (m *Matrix) makeIdentity(store func(i int, v float64)) {
	r, c := m.Rows(), m.Cols()
	for i := 0; i < r && i < c; i++ {
		store(i*c+i, 1)
	}
}
