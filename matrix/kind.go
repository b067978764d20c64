// SPDX-License-Identifier: MIT

// Package matrix - element kinds and the promotion policy.
//
// Purpose:
//   - Enumerate the numeric representations a buffer can be backed by.
//   - Decide which kind results from combining two buffers (Promote) and which
//     kind a nested input resolves to (inferRowsKind).
//   - Define the store-time coercion of a float64 value into each kind.
//
// Coercion rules (applied on every store into a buffer):
//   - Integer kinds: NaN/±Inf → 0; truncate toward zero; wrap modulo 2^bits.
//   - Uint8Clamped: NaN → 0; clamp into [0,255]; round half to even.
//   - Float32: round to nearest float32.
//   - Float64: identity.

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// Kind identifies the numeric element representation of a buffer.
type Kind uint8

// Supported element kinds, ordered by byte width.
const (
	Int8 Kind = iota + 1
	Uint8
	Uint8Clamped
	Int16
	Uint16
	Int32
	Uint32
	Float32
	Float64
)

// DefaultKind backs plain (untyped) numeric input.
const DefaultKind = Float64

var kindNames = [...]string{
	Int8:         "int8",
	Uint8:        "uint8",
	Uint8Clamped: "uint8clamped",
	Int16:        "int16",
	Uint16:       "uint16",
	Int32:        "int32",
	Uint32:       "uint32",
	Float32:      "float32",
	Float64:      "float64",
}

var kindSizes = [...]int{
	Int8:         1,
	Uint8:        1,
	Uint8Clamped: 1,
	Int16:        2,
	Uint16:       2,
	Int32:        4,
	Uint32:       4,
	Float32:      4,
	Float64:      8,
}

// Valid reports whether k is one of the supported kinds.
func (k Kind) Valid() bool { return k >= Int8 && k <= Float64 }

// Size returns the byte width of one element of kind k (0 for invalid kinds).
func (k Kind) Size() int {
	if !k.Valid() {
		return 0
	}

	return kindSizes[k]
}

// IsFloat reports whether k is a floating-point kind.
func (k Kind) IsFloat() bool { return k == Float32 || k == Float64 }

// String implements fmt.Stringer.
func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}

	return kindNames[k]
}

// ParseKind resolves a textual kind name (case-insensitive), e.g. "float32".
// Returns ErrUnknownKind for unrecognized names.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for k := Int8; k <= Float64; k++ {
		if kindNames[k] == name {
			return k, nil
		}
	}

	return 0, fmt.Errorf("ParseKind(%q): %w", s, ErrUnknownKind)
}

// Promote returns the kind that results from combining a receiver of kind a
// with an operand of kind b.
//
// Policy:
//   - The wider byte width wins.
//   - On equal width the receiver wins, except that a float kind beats an
//     integer kind of the same width (Int32 ⊕ Float32 = Float32).
//
// Complexity: O(1).
func Promote(a, b Kind) Kind {
	sa, sb := a.Size(), b.Size()
	switch {
	case sb > sa:
		return b
	case sb == sa && b.IsFloat() && !a.IsFloat():
		return b
	default:
		return a
	}
}

// resultKind picks the kind of a binary operation result: an explicit
// override from options wins, otherwise Promote(receiver, operand).
func resultKind(receiver, operand Kind, o Options) Kind {
	if o.kindSet {
		return o.kind
	}

	return Promote(receiver, operand)
}

// inferRowsKind implements the nested-input inference rule:
//   - any plain (untyped) row forces Float64;
//   - otherwise the widest row kind wins (first row wins ties);
//   - any row of 8 bytes or wider short-circuits to Float64.
//
// rows must be non-empty.
func inferRowsKind(rows []Array) Kind {
	if !rows[0].typed {
		return Float64
	}
	kind := rows[0].kind
	for i := 1; i < len(rows); i++ {
		if !rows[i].typed {
			return Float64
		}
		if rows[i].kind.Size() >= 8 {
			return Float64
		}
		if rows[i].kind.Size() > kind.Size() {
			kind = rows[i].kind
		}
	}

	return kind
}

// ---------- store-time coercion ----------

// wrapModulo truncates v toward zero and reduces it into [0, mod).
// Non-finite inputs map to 0.
func wrapModulo(v, mod float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	t := math.Mod(math.Trunc(v), mod)
	if t < 0 {
		t += mod
	}

	return t
}

func toInt8(v float64) int8     { return int8(uint8(wrapModulo(v, 1<<8))) }
func toUint8(v float64) uint8   { return uint8(wrapModulo(v, 1<<8)) }
func toInt16(v float64) int16   { return int16(uint16(wrapModulo(v, 1<<16))) }
func toUint16(v float64) uint16 { return uint16(wrapModulo(v, 1<<16)) }
func toInt32(v float64) int32   { return int32(uint32(wrapModulo(v, 1<<32))) }
func toUint32(v float64) uint32 { return uint32(wrapModulo(v, 1<<32)) }
func toFloat32(v float64) float32 {
	return float32(v)
}
func toFloat64(v float64) float64 { return v }

func toClamped(v float64) uint8 {
	switch {
	case math.IsNaN(v), v <= 0:
		return 0
	case v >= 255:
		return 255
	default:
		return uint8(math.RoundToEven(v))
	}
}

// Coerce returns v as it would read back after being stored into a buffer
// of kind k. Invalid kinds return v unchanged.
func Coerce(k Kind, v float64) float64 {
	switch k {
	case Int8:
		return float64(toInt8(v))
	case Uint8:
		return float64(toUint8(v))
	case Uint8Clamped:
		return float64(toClamped(v))
	case Int16:
		return float64(toInt16(v))
	case Uint16:
		return float64(toUint16(v))
	case Int32:
		return float64(toInt32(v))
	case Uint32:
		return float64(toUint32(v))
	case Float32:
		return float64(toFloat32(v))
	default:
		return v
	}
}
