// Package vector provides small 2D and 3D geometric vector value types that
// share a common capability contract.
package vector

import (
	"fmt"
	"iter"
)

// Vector is the operation set every concrete vector variant implements.
//
// Binary operations accept any Vector. A nil operand yields ErrNilVector and an
// operand of a different dimension yields ErrDimensionMismatch. Implementations
// are not safe for concurrent mutation: Extend and AddInPlace are unsynchronized.
type Vector interface {
	fmt.Stringer
	fmt.GoStringer

	// Normalize returns a unit-length vector pointing in the same direction.
	// A zero vector yields ErrZeroVector.
	Normalize() (Vector, error)
	// Extend multiplies every component by k in place.
	Extend(k float64)
	// Magnitude returns the Euclidean norm.
	Magnitude() float64
	// Distance returns the Euclidean distance to other.
	Distance(other Vector) (float64, error)
	// Determinant returns other.x*self.y - other.y*self.x.
	Determinant(other Vector) (float64, error)
	// Angle returns the angle in degrees between the vector and other.
	// A nil other selects the positive x-axis as reference.
	Angle(other Vector) (float64, error)
	// Add returns the component-wise sum as a new vector.
	Add(other Vector) (Vector, error)
	// AddInPlace writes the component-wise sum back into the receiver.
	AddInPlace(other Vector) error
	// Dot returns the scalar product.
	Dot(other Vector) (float64, error)
	// Len returns the dimension.
	Len() int
	// Equal reports whether other is the same variant and every component
	// differs by less than Epsilon.
	Equal(other Vector) bool
	// At returns component i: 0 is x, 1 is y, 2 is z.
	At(i int) (float64, error)
	// All yields the components in declared order. Every call starts over.
	All() iter.Seq[float64]
	// Clone returns an independent copy.
	Clone() Vector
}

var (
	_ Vector = (*Vector2D)(nil)
	_ Vector = (*Vector3D)(nil)
)

// Components collects the components of v into a slice.
func Components(v Vector) []float64 {
	out := make([]float64, 0, v.Len())
	for c := range v.All() {
		out = append(out, c)
	}
	return out
}

// components reads the components of other after checking it against the
// expected dimension.
func components(other Vector, dim int) ([]float64, error) {
	if isNil(other) {
		return nil, ErrNilVector
	}
	if n := other.Len(); n != dim {
		return nil, fmt.Errorf("%w: got %d components, want %d", ErrDimensionMismatch, n, dim)
	}
	return Components(other), nil
}

func isNil(v Vector) bool {
	switch t := v.(type) {
	case nil:
		return true
	case *Vector2D:
		return t == nil
	case *Vector3D:
		return t == nil
	}
	return false
}
