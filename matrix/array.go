// SPDX-License-Identifier: MIT

package matrix

// Clamped is an 8-bit unsigned element that saturates into [0,255] on store.
// It exists as a distinct Go type so TypedArray can tell it apart from uint8.
type Clamped uint8

// Element lists the Go element types accepted by TypedArray.
type Element interface {
	int8 | uint8 | Clamped | int16 | uint16 | int32 | uint32 | float32 | float64
}

// Array is a one-dimensional input sequence tagged with an element kind.
// A plain Array (built by Values) carries no kind of its own and defaults to
// Float64 during inference; a typed Array keeps its kind.
type Array struct {
	kind  Kind
	typed bool
	vals  []float64 // already coerced to kind
}

// Values builds a plain, untyped sequence.
func Values(vals ...float64) Array {
	cp := make([]float64, len(vals))
	copy(cp, vals)

	return Array{kind: DefaultKind, vals: cp}
}

// ArrayOf builds a typed sequence of kind k, coercing every value into k.
// Panics if k is not a valid kind (programmer error).
func ArrayOf(k Kind, vals ...float64) Array {
	if !k.Valid() {
		panic(panicKindInvalid)
	}
	cp := make([]float64, len(vals))
	for i, v := range vals {
		cp[i] = Coerce(k, v)
	}

	return Array{kind: k, typed: true, vals: cp}
}

// TypedArray builds a typed sequence whose kind follows the Go element type.
func TypedArray[T Element](vals ...T) Array {
	cp := make([]float64, len(vals))
	for i, v := range vals {
		cp[i] = float64(v)
	}

	return Array{kind: kindOf[T](), typed: true, vals: cp}
}

// kindOf maps a Go element type onto its Kind.
func kindOf[T Element]() Kind {
	var zero T
	switch any(zero).(type) {
	case int8:
		return Int8
	case uint8:
		return Uint8
	case Clamped:
		return Uint8Clamped
	case int16:
		return Int16
	case uint16:
		return Uint16
	case int32:
		return Int32
	case uint32:
		return Uint32
	case float32:
		return Float32
	default:
		return Float64
	}
}

// Kind returns the element kind (DefaultKind for plain sequences).
func (a Array) Kind() Kind { return a.kind }

// Typed reports whether the sequence carries an explicit kind.
func (a Array) Typed() bool { return a.typed }

// Len returns the number of elements.
func (a Array) Len() int { return len(a.vals) }

// Floats returns a copy of the values.
func (a Array) Floats() []float64 {
	cp := make([]float64, len(a.vals))
	copy(cp, a.vals)

	return cp
}
