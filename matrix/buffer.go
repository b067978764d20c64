// SPDX-License-Identifier: MIT

// Package matrix - buffer layout.
//
// Purpose:
//   - Allocate ONE contiguous region per instance and carve it into two
//     non-overlapping, equally sized views: data (authoritative values,
//     row-major) and scratch (transient workspace for in-place algorithms).
//   - Keep the dimension record compact: the narrowest unsigned width able to
//     hold max(rows, cols), capped at MaxDimension.
//
// Scratch contract:
//   - An algorithm that writes scratch must either Commit (copy scratch → data)
//     or abandon it before returning. Scratch is never read as a durable value
//     across operations.
//
// Complexity quicksheet:
//   - allocate: O(n) zero-init; At/Set: O(1); commit/loadFrom: O(n).

package matrix

import "math"

// MaxDimension is the largest value a single dimension may take.
const MaxDimension = math.MaxUint32

// DimWidth is the byte width used to encode the dimension record.
type DimWidth uint8

// Dimension record encodings.
const (
	DimWidth8  DimWidth = 1
	DimWidth16 DimWidth = 2
	DimWidth32 DimWidth = 4
)

// dims is the compact (rows, cols) record of an instance.
type dims struct {
	width DimWidth
	rc    [2]uint32
}

// newDims validates and encodes (rows, cols).
// Errors: ErrBadShape for negative dimensions, max(rows,cols) > MaxDimension,
// or a data+scratch region (2*rows*cols elements) that overflows int.
func newDims(rows, cols int) (dims, error) {
	if rows < 0 || cols < 0 {
		return dims{}, ErrBadShape
	}
	hi := uint64(rows)
	if uint64(cols) > hi {
		hi = uint64(cols)
	}
	if hi > MaxDimension {
		return dims{}, ErrBadShape
	}
	if cols != 0 && rows > math.MaxInt/2/cols {
		return dims{}, ErrBadShape
	}

	d := dims{rc: [2]uint32{uint32(rows), uint32(cols)}}
	switch {
	case hi <= math.MaxUint8:
		d.width = DimWidth8
	case hi <= math.MaxUint16:
		d.width = DimWidth16
	default:
		d.width = DimWidth32
	}

	return d, nil
}

func (d dims) rows() int { return int(d.rc[0]) }
func (d dims) cols() int { return int(d.rc[1]) }
func (d *dims) swap()    { d.rc[0], d.rc[1] = d.rc[1], d.rc[0] }

// storage is the element-kind-agnostic view over a buffer region.
// Loads widen to float64; stores coerce into the buffer's kind.
type storage interface {
	kind() Kind
	len() int
	at(i int) float64
	set(i int, v float64)
	scratchAt(i int) float64
	setScratch(i int, v float64)
	// swapRows exchanges rows a and b (width w) in both data and scratch.
	swapRows(a, b, w int)
	// commit copies scratch into data.
	commit()
	// resetScratch zero-fills scratch.
	resetScratch()
}

// buffer is the concrete storage for Go element type T.
type buffer[T Element] struct {
	k       Kind
	data    []T
	scratch []T
	conv    func(float64) T
}

// newBuffer allocates a single 2n region and carves data and scratch from it.
func newBuffer[T Element](k Kind, n int, conv func(float64) T) *buffer[T] {
	region := make([]T, 2*n)

	return &buffer[T]{
		k:       k,
		data:    region[:n:n],
		scratch: region[n:],
		conv:    conv,
	}
}

func (b *buffer[T]) kind() Kind                  { return b.k }
func (b *buffer[T]) len() int                    { return len(b.data) }
func (b *buffer[T]) at(i int) float64            { return float64(b.data[i]) }
func (b *buffer[T]) set(i int, v float64)        { b.data[i] = b.conv(v) }
func (b *buffer[T]) scratchAt(i int) float64     { return float64(b.scratch[i]) }
func (b *buffer[T]) setScratch(i int, v float64) { b.scratch[i] = b.conv(v) }
func (b *buffer[T]) commit()                     { copy(b.data, b.scratch) }

func (b *buffer[T]) resetScratch() {
	var zero T
	for i := range b.scratch {
		b.scratch[i] = zero
	}
}

func (b *buffer[T]) swapRows(r1, r2, w int) {
	o1, o2 := r1*w, r2*w
	for z := 0; z < w; z++ {
		b.data[o1+z], b.data[o2+z] = b.data[o2+z], b.data[o1+z]
		b.scratch[o1+z], b.scratch[o2+z] = b.scratch[o2+z], b.scratch[o1+z]
	}
}

// allocate returns a zeroed storage of n elements of kind k.
// Panics on an invalid kind; callers validate kinds at the option boundary.
func allocate(k Kind, n int) storage {
	switch k {
	case Int8:
		return newBuffer(k, n, toInt8)
	case Uint8:
		return newBuffer(k, n, toUint8)
	case Uint8Clamped:
		return newBuffer(k, n, func(v float64) Clamped { return Clamped(toClamped(v)) })
	case Int16:
		return newBuffer(k, n, toInt16)
	case Uint16:
		return newBuffer(k, n, toUint16)
	case Int32:
		return newBuffer(k, n, toInt32)
	case Uint32:
		return newBuffer(k, n, toUint32)
	case Float32:
		return newBuffer(k, n, toFloat32)
	case Float64:
		return newBuffer(k, n, toFloat64)
	default:
		panic(panicKindInvalid)
	}
}

// float64Data returns the raw data slice when s is Float64-backed.
// Used by hot kernels as a fast path; callers must fall back otherwise.
func float64Data(s storage) ([]float64, bool) {
	if fb, ok := s.(*buffer[float64]); ok {
		return fb.data, true
	}

	return nil, false
}

// copyInto stores every element of src into dst (same length), coercing into
// dst's kind.
func copyInto(dst, src storage) {
	if dd, ok := float64Data(dst); ok {
		if sd, ok := float64Data(src); ok {
			copy(dd, sd)
			return
		}
	}
	n := src.len()
	for i := 0; i < n; i++ {
		dst.set(i, src.at(i))
	}
}
