// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for construction and binary
// operations. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultValidateNaNInf toggles finite-only validation in Set/SetVec/Apply.
	// Off by default: transforms with a zero homogeneous weight and
	// normalizing a zero vector legitimately produce non-finite values.
	DefaultValidateNaNInf = false

	// PivotThreshold is the |pivot| below which Gauss-Jordan elimination looks
	// for a larger pivot further down the column.
	PivotThreshold = 0.5
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicKindInvalid = "matrix: WithKind: kind must be a valid element kind"
	panicFixedShape  = "matrix: fixed-size constructor received an invalid size"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	kind    Kind // explicit element kind; meaningful only when kindSet
	kindSet bool

	validateNaNInf    bool
	validateNaNInfSet bool
}

// WithKind forces the element kind of the constructed or resulting instance,
// overriding inference and promotion.
// Panics if k is not a valid kind.
func WithKind(k Kind) Option {
	if !k.Valid() {
		panic(panicKindInvalid)
	}

	return func(o *Options) {
		o.kind = k
		o.kindSet = true
	}
}

// WithValidateNaNInf enables finite-only enforcement on element writes.
func WithValidateNaNInf() Option {
	return func(o *Options) {
		o.validateNaNInf = true
		o.validateNaNInfSet = true
	}
}

// WithNoValidateNaNInf disables finite-only enforcement on element writes.
func WithNoValidateNaNInf() Option {
	return func(o *Options) {
		o.validateNaNInf = false
		o.validateNaNInfSet = true
	}
}

// gatherOptions applies user setters over the defaults; later options win.
func gatherOptions(user ...Option) Options {
	o := Options{validateNaNInf: DefaultValidateNaNInf}
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// kindOr returns the explicit kind if one was set, otherwise fallback.
func (o Options) kindOr(fallback Kind) Kind {
	if o.kindSet {
		return o.kind
	}

	return fallback
}

// policyOr returns the explicit NaN/Inf policy if set, otherwise fallback.
func (o Options) policyOr(fallback bool) bool {
	if o.validateNaNInfSet {
		return o.validateNaNInf
	}

	return fallback
}
