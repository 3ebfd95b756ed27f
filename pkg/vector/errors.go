package vector

import "errors"

var (
	// ErrDimensionMismatch is returned when an operand has a different number of components.
	ErrDimensionMismatch = errors.New("vector dimension mismatch")
	// ErrIndexOutOfRange is returned by At for an index outside the vector's dimension.
	ErrIndexOutOfRange = errors.New("vector index out of range")
	// ErrZeroVector is returned when a zero-length vector would have to be normalized.
	ErrZeroVector = errors.New("zero-length vector has no direction")
	// ErrNonFinite is returned when a magnitude is NaN or infinite.
	ErrNonFinite = errors.New("vector magnitude is not finite")
	// ErrNilVector is returned when a nil operand is passed to a binary operation.
	ErrNilVector = errors.New("nil vector operand")
)
