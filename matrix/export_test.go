// SPDX-License-Identifier: MIT

package matrix

import "unsafe"

// Test-Bridge (White-Box) for layout internals.
//
// Purpose:
//   - Expose the scratch region and inference helpers to matrix_test ONLY,
//     without widening the production API.

var (
	// ExportedInferRowsKind exposes the nested-input kind inference.
	ExportedInferRowsKind = inferRowsKind
)

// ExportedScratch returns a copy of m's scratch region.
func ExportedScratch(m *Matrix) []float64 {
	n := m.buf.len()
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = m.buf.scratchAt(i)
	}

	return out
}

// ExportedSingleRegion reports whether scratch starts exactly where data
// ends, i.e. both are carved from one allocation. Float64 instances only.
func ExportedSingleRegion(m *Matrix) bool {
	fb, ok := m.buf.(*buffer[float64])
	if !ok || len(fb.data) == 0 {
		return false
	}
	end := unsafe.Add(unsafe.Pointer(&fb.data[0]), len(fb.data)*int(unsafe.Sizeof(fb.data[0])))

	return unsafe.Pointer(&fb.scratch[0]) == end && len(fb.scratch) == len(fb.data)
}

// ExportedSharesData reports whether a and b alias the same data region.
func ExportedSharesData(a, b *Matrix) bool {
	fa, okA := a.buf.(*buffer[float64])
	fb, okB := b.buf.(*buffer[float64])
	if !okA || !okB || len(fa.data) == 0 || len(fb.data) == 0 {
		return false
	}

	return &fa.data[0] == &fb.data[0]
}

// OptionsSnapshot is a read-only view of the gathered Options.
type OptionsSnapshot struct {
	Kind           Kind
	KindSet        bool
	ValidateNaNInf bool
	PolicySet      bool
}

// GatherOptionsSnapshot applies opts over the defaults and returns a snapshot.
func GatherOptionsSnapshot(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{
		Kind:           o.kind,
		KindSet:        o.kindSet,
		ValidateNaNInf: o.validateNaNInf,
		PolicySet:      o.validateNaNInfSet,
	}
}

// ExportedFixed exposes the fixed-size constructor used by the rotators.
func ExportedFixed(n int, vals []float64) *Matrix { return fixed(n, vals) }
