package scenario

import (
	"github.com/zeusync/easyvector/pkg/sequence"
	"github.com/zeusync/easyvector/pkg/vector"
)

// Op names a vector operation.
type Op string

const (
	OpNormalize   Op = "normalize"
	OpExtend      Op = "extend"
	OpMagnitude   Op = "magnitude"
	OpDistance    Op = "distance"
	OpDeterminant Op = "determinant"
	OpAngle       Op = "angle"
	OpAdd         Op = "add"
	OpAddInPlace  Op = "add_in_place"
	OpDot         Op = "dot"
	OpLen         Op = "len"
	OpEqual       Op = "equal"
	OpAt          Op = "at"
	OpIterate     Op = "iterate"
	OpString      Op = "string"
	OpDebug       Op = "debug"
)

type opSpec struct {
	minArgs, maxArgs int
	needsScalar      bool
	needsIndex       bool
	yieldsVector     bool // result may be stored with Into
	eval             func(step Step, recv vector.Vector, other vector.Vector) (any, vector.Vector, error)
}

var ops = map[Op]opSpec{
	OpNormalize: {minArgs: 1, maxArgs: 1, yieldsVector: true,
		eval: func(_ Step, v, _ vector.Vector) (any, vector.Vector, error) {
			n, err := v.Normalize()
			if err != nil {
				return nil, nil, err
			}
			return vector.Components(n), n, nil
		}},
	OpExtend: {minArgs: 1, maxArgs: 1, needsScalar: true,
		eval: func(s Step, v, _ vector.Vector) (any, vector.Vector, error) {
			v.Extend(*s.Scalar)
			return vector.Components(v), nil, nil
		}},
	OpMagnitude: {minArgs: 1, maxArgs: 1,
		eval: func(_ Step, v, _ vector.Vector) (any, vector.Vector, error) {
			return v.Magnitude(), nil, nil
		}},
	OpDistance: {minArgs: 2, maxArgs: 2,
		eval: func(_ Step, v, o vector.Vector) (any, vector.Vector, error) {
			return number(v.Distance(o))
		}},
	OpDeterminant: {minArgs: 2, maxArgs: 2,
		eval: func(_ Step, v, o vector.Vector) (any, vector.Vector, error) {
			return number(v.Determinant(o))
		}},
	OpAngle: {minArgs: 1, maxArgs: 2,
		eval: func(_ Step, v, o vector.Vector) (any, vector.Vector, error) {
			return number(v.Angle(o))
		}},
	OpAdd: {minArgs: 2, maxArgs: 2, yieldsVector: true,
		eval: func(_ Step, v, o vector.Vector) (any, vector.Vector, error) {
			sum, err := v.Add(o)
			if err != nil {
				return nil, nil, err
			}
			return vector.Components(sum), sum, nil
		}},
	OpAddInPlace: {minArgs: 2, maxArgs: 2,
		eval: func(_ Step, v, o vector.Vector) (any, vector.Vector, error) {
			if err := v.AddInPlace(o); err != nil {
				return nil, nil, err
			}
			return vector.Components(v), nil, nil
		}},
	OpDot: {minArgs: 2, maxArgs: 2,
		eval: func(_ Step, v, o vector.Vector) (any, vector.Vector, error) {
			return number(v.Dot(o))
		}},
	OpLen: {minArgs: 1, maxArgs: 1,
		eval: func(_ Step, v, _ vector.Vector) (any, vector.Vector, error) {
			return v.Len(), nil, nil
		}},
	OpEqual: {minArgs: 2, maxArgs: 2,
		eval: func(_ Step, v, o vector.Vector) (any, vector.Vector, error) {
			return v.Equal(o), nil, nil
		}},
	OpAt: {minArgs: 1, maxArgs: 1, needsIndex: true,
		eval: func(s Step, v, _ vector.Vector) (any, vector.Vector, error) {
			return number(v.At(*s.Index))
		}},
	OpIterate: {minArgs: 1, maxArgs: 1,
		eval: func(_ Step, v, _ vector.Vector) (any, vector.Vector, error) {
			return sequence.FromSeq(v.All()).Collect(), nil, nil
		}},
	OpString: {minArgs: 1, maxArgs: 1,
		eval: func(_ Step, v, _ vector.Vector) (any, vector.Vector, error) {
			return v.String(), nil, nil
		}},
	OpDebug: {minArgs: 1, maxArgs: 1,
		eval: func(_ Step, v, _ vector.Vector) (any, vector.Vector, error) {
			return v.GoString(), nil, nil
		}},
}

func number(f float64, err error) (any, vector.Vector, error) {
	if err != nil {
		return nil, nil, err
	}
	return f, nil, nil
}
