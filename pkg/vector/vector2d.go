package vector

import (
	"fmt"
	"iter"
	"math"
)

// Vector2D is a two-component vector.
type Vector2D struct {
	X, Y float64
}

// New2D returns a new vector with the given components.
func New2D(x, y float64) *Vector2D {
	return &Vector2D{X: x, Y: y}
}

// Normalize returns the unit vector pointing the same way as v.
func (v Vector2D) Normalize() (Vector, error) {
	n, err := v.normalized()
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func (v Vector2D) normalized() (Vector2D, error) {
	m := v.Magnitude()
	if err := checkMagnitude(m); err != nil {
		return Vector2D{}, fmt.Errorf("normalize %s: %w", v, err)
	}
	return Vector2D{X: v.X / m, Y: v.Y / m}, nil
}

// Extend scales v by k in place.
func (v *Vector2D) Extend(k float64) {
	v.X *= k
	v.Y *= k
}

// Magnitude returns the Euclidean length of v without intermediate overflow.
func (v Vector2D) Magnitude() float64 {
	return math.Hypot(v.X, v.Y)
}

// Distance returns the Euclidean distance between v and other.
func (v Vector2D) Distance(other Vector) (float64, error) {
	o, err := components(other, 2)
	if err != nil {
		return 0, err
	}
	return math.Hypot(v.X-o[0], v.Y-o[1]), nil
}

// Determinant returns other.X*v.Y - other.Y*v.X. The operand order is part of
// the contract: it is the negation of the conventional v × other.
func (v Vector2D) Determinant(other Vector) (float64, error) {
	o, err := components(other, 2)
	if err != nil {
		return 0, err
	}
	return o[0]*v.Y - o[1]*v.X, nil
}

// Angle returns the signed angle in degrees, in (-180, 180], that rotates other
// onto v. Counterclockwise is positive. With a nil other the reference is (1, 0),
// so the result is the heading of v measured from the positive x-axis.
// Only v is normalized; other is used as given.
func (v Vector2D) Angle(other Vector) (float64, error) {
	ref := Vector2D{X: 1}
	if !isNil(other) {
		o, err := components(other, 2)
		if err != nil {
			return 0, err
		}
		ref = Vector2D{X: o[0], Y: o[1]}
	}
	if err := checkMagnitude(ref.Magnitude()); err != nil {
		return 0, fmt.Errorf("angle reference %s: %w", ref, err)
	}

	norm, err := v.normalized()
	if err != nil {
		return 0, err
	}
	dot := norm.X*ref.X + norm.Y*ref.Y
	det := ref.X*norm.Y - ref.Y*norm.X

	deg := degrees(math.Atan2(det, dot))
	if deg == -180 {
		deg = 180
	}
	return deg, nil
}

// Add returns v + other.
func (v Vector2D) Add(other Vector) (Vector, error) {
	o, err := components(other, 2)
	if err != nil {
		return nil, err
	}
	return &Vector2D{X: v.X + o[0], Y: v.Y + o[1]}, nil
}

// AddInPlace sets v to v + other. v is unchanged on error.
func (v *Vector2D) AddInPlace(other Vector) error {
	sum, err := v.Add(other)
	if err != nil {
		return err
	}
	*v = *sum.(*Vector2D)
	return nil
}

// Dot returns the scalar product of v and other.
func (v Vector2D) Dot(other Vector) (float64, error) {
	o, err := components(other, 2)
	if err != nil {
		return 0, err
	}
	return v.X*o[0] + v.Y*o[1], nil
}

// Len is always 2.
func (v Vector2D) Len() int { return 2 }

// Equal is false for anything that is not a *Vector2D.
func (v Vector2D) Equal(other Vector) bool {
	o, ok := other.(*Vector2D)
	if !ok || o == nil {
		return false
	}
	return ApproxEqual(v.X, o.X) && ApproxEqual(v.Y, o.Y)
}

// At returns X for 0 and Y for 1.
func (v Vector2D) At(i int) (float64, error) {
	switch i {
	case 0:
		return v.X, nil
	case 1:
		return v.Y, nil
	}
	return 0, fmt.Errorf("%w: %d not in [0, 2)", ErrIndexOutOfRange, i)
}

// All yields X then Y.
func (v Vector2D) All() iter.Seq[float64] {
	return func(yield func(float64) bool) {
		if !yield(v.X) {
			return
		}
		yield(v.Y)
	}
}

func (v Vector2D) Clone() Vector {
	return &Vector2D{X: v.X, Y: v.Y}
}

// String renders v as "Vector2D: [x, y]".
func (v Vector2D) String() string {
	return "Vector2D: " + formatList(v.X, v.Y)
}

func (v Vector2D) GoString() string {
	return formatFields("Vector2D", v.X, v.Y)
}
