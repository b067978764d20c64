// SPDX-License-Identifier: MIT

// Package matrix - behavior classes and the dimension-driven resolver.
//
// Purpose:
//   - Describe, as a closed enumeration, which operation contract an instance
//     exhibits (generic matrix, vector, 2-/3-vector, square, 2×2/3×3/4×4).
//   - Resolve the class ONCE per construction, purely from (rows, cols).
//
// Priority chain (first match wins):
//  1. rows==1 || cols==1        → vector family, specialized by the major dim.
//  2. rows==cols                → square family, specialized by the size.
//  3. otherwise                 → generic matrix.
//
// Both families share one table-driven specialization step.

package matrix

import "fmt"

// Class is the behavior set of an instance.
type Class uint8

// Behavior classes.
const (
	ClassMatrix Class = iota
	ClassVector
	ClassVector2
	ClassVector3
	ClassSquare
	ClassMatrix22
	ClassMatrix33
	ClassMatrix44
)

var classNames = [...]string{
	ClassMatrix:   "Matrix",
	ClassVector:   "Vector",
	ClassVector2:  "Vector2",
	ClassVector3:  "Vector3",
	ClassSquare:   "SquareMatrix",
	ClassMatrix22: "Matrix22",
	ClassMatrix33: "Matrix33",
	ClassMatrix44: "Matrix44",
}

// String implements fmt.Stringer.
func (c Class) String() string {
	if int(c) >= len(classNames) {
		return fmt.Sprintf("Class(%d)", uint8(c))
	}

	return classNames[c]
}

// IsVector reports whether c belongs to the vector family.
func (c Class) IsVector() bool { return c >= ClassVector && c <= ClassVector3 }

// IsSquare reports whether c belongs to the square-matrix family.
func (c Class) IsSquare() bool { return c >= ClassSquare && c <= ClassMatrix44 }

// IsCommon reports whether c is one of the fixed-size geometry classes
// (Vector2, Vector3, Matrix22, Matrix33, Matrix44).
func (c Class) IsCommon() bool { return c.Dim() != 0 }

// Dim returns the fixed size of a common class (2, 3 or 4), or 0.
func (c Class) Dim() int {
	switch c {
	case ClassVector2, ClassMatrix22:
		return 2
	case ClassVector3, ClassMatrix33:
		return 3
	case ClassMatrix44:
		return 4
	default:
		return 0
	}
}

// family describes one shape family for the shared specialization step.
type family struct {
	base   Class
	bySize [5]Class // index: major dimension; zero value means "no specialization"
}

var (
	vectorFamily = family{
		base:   ClassVector,
		bySize: [5]Class{2: ClassVector2, 3: ClassVector3},
	}
	squareFamily = family{
		base:   ClassSquare,
		bySize: [5]Class{2: ClassMatrix22, 3: ClassMatrix33, 4: ClassMatrix44},
	}
)

// specialize maps the major dimension onto a specialized class of the family,
// falling back to the family base.
func (f family) specialize(major int) Class {
	if major >= 0 && major < len(f.bySize) && f.bySize[major] != ClassMatrix {
		return f.bySize[major]
	}

	return f.base
}

// Resolve returns the behavior class for an instance of the given shape.
// It is pure and deterministic: the same (rows, cols) always yields the
// same class. A 1×1 shape is a (generic) Vector; 0×0 is a generic square.
//
// Complexity: O(1).
func Resolve(rows, cols int) Class {
	switch {
	case rows == 1 || cols == 1:
		return vectorFamily.specialize(max(rows, cols))
	case rows == cols:
		return squareFamily.specialize(rows)
	default:
		return ClassMatrix
	}
}
