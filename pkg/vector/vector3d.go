package vector

import (
	"fmt"
	"iter"
	"math"
)

// Vector3D is a three-component vector.
type Vector3D struct {
	X, Y, Z float64
}

// New3D returns a new vector with the given components.
func New3D(x, y, z float64) *Vector3D {
	return &Vector3D{X: x, Y: y, Z: z}
}

// Normalize returns the unit vector pointing the same way as v.
func (v Vector3D) Normalize() (Vector, error) {
	n, err := v.normalized()
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func (v Vector3D) normalized() (Vector3D, error) {
	m := v.Magnitude()
	if err := checkMagnitude(m); err != nil {
		return Vector3D{}, fmt.Errorf("normalize %s: %w", v, err)
	}
	return Vector3D{X: v.X / m, Y: v.Y / m, Z: v.Z / m}, nil
}

// Extend scales v by k in place.
func (v *Vector3D) Extend(k float64) {
	v.X *= k
	v.Y *= k
	v.Z *= k
}

// Magnitude returns the Euclidean length of v without intermediate overflow.
func (v Vector3D) Magnitude() float64 {
	return hypot3(v.X, v.Y, v.Z)
}

// hypot3 scales by the largest absolute component so squaring neither
// overflows nor underflows.
func hypot3(x, y, z float64) float64 {
	s := max(math.Abs(x), math.Abs(y), math.Abs(z))
	if s == 0 || math.IsInf(s, 0) || math.IsNaN(s) {
		return s
	}
	x, y, z = x/s, y/s, z/s
	return s * math.Sqrt(x*x+y*y+z*z)
}

// Distance returns the Euclidean distance between v and other.
func (v Vector3D) Distance(other Vector) (float64, error) {
	o, err := components(other, 3)
	if err != nil {
		return 0, err
	}
	return hypot3(v.X-o[0], v.Y-o[1], v.Z-o[2]), nil
}

// Determinant returns the z-component of other × v, which equals
// Vector2D.Determinant for vectors lying in the xy-plane.
func (v Vector3D) Determinant(other Vector) (float64, error) {
	o, err := components(other, 3)
	if err != nil {
		return 0, err
	}
	return o[0]*v.Y - o[1]*v.X, nil
}

// Angle returns the unsigned angle in degrees, in [0, 180], between v and other.
// With a nil other the reference is (1, 0, 0).
func (v Vector3D) Angle(other Vector) (float64, error) {
	ref := Vector3D{X: 1}
	if !isNil(other) {
		o, err := components(other, 3)
		if err != nil {
			return 0, err
		}
		ref = Vector3D{X: o[0], Y: o[1], Z: o[2]}
	}
	if err := checkMagnitude(ref.Magnitude()); err != nil {
		return 0, fmt.Errorf("angle reference %s: %w", ref, err)
	}

	norm, err := v.normalized()
	if err != nil {
		return 0, err
	}
	cross := norm.Cross(ref)
	dot := norm.X*ref.X + norm.Y*ref.Y + norm.Z*ref.Z
	return degrees(math.Atan2(cross.Magnitude(), dot)), nil
}

// Cross returns the conventional cross product v × other.
func (v Vector3D) Cross(other Vector3D) Vector3D {
	return Vector3D{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// Add returns v + other.
func (v Vector3D) Add(other Vector) (Vector, error) {
	o, err := components(other, 3)
	if err != nil {
		return nil, err
	}
	return &Vector3D{X: v.X + o[0], Y: v.Y + o[1], Z: v.Z + o[2]}, nil
}

// AddInPlace sets v to v + other. v is unchanged on error.
func (v *Vector3D) AddInPlace(other Vector) error {
	sum, err := v.Add(other)
	if err != nil {
		return err
	}
	*v = *sum.(*Vector3D)
	return nil
}

// Dot returns the scalar product of v and other.
func (v Vector3D) Dot(other Vector) (float64, error) {
	o, err := components(other, 3)
	if err != nil {
		return 0, err
	}
	return v.X*o[0] + v.Y*o[1] + v.Z*o[2], nil
}

// Len is always 3.
func (v Vector3D) Len() int { return 3 }

// Equal is false for anything that is not a *Vector3D.
func (v Vector3D) Equal(other Vector) bool {
	o, ok := other.(*Vector3D)
	if !ok || o == nil {
		return false
	}
	return ApproxEqual(v.X, o.X) && ApproxEqual(v.Y, o.Y) && ApproxEqual(v.Z, o.Z)
}

// At returns X, Y or Z for 0, 1 or 2.
func (v Vector3D) At(i int) (float64, error) {
	switch i {
	case 0:
		return v.X, nil
	case 1:
		return v.Y, nil
	case 2:
		return v.Z, nil
	}
	return 0, fmt.Errorf("%w: %d not in [0, 3)", ErrIndexOutOfRange, i)
}

func (v Vector3D) All() iter.Seq[float64] {
	return func(yield func(float64) bool) {
		for _, c := range [3]float64{v.X, v.Y, v.Z} {
			if !yield(c) {
				return
			}
		}
	}
}

func (v Vector3D) Clone() Vector {
	return &Vector3D{X: v.X, Y: v.Y, Z: v.Z}
}

// String renders v as "Vector3D: [x, y, z]".
func (v Vector3D) String() string {
	return "Vector3D: " + formatList(v.X, v.Y, v.Z)
}

func (v Vector3D) GoString() string {
	return formatFields("Vector3D", v.X, v.Y, v.Z)
}
