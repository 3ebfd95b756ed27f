package scenario

import (
	"errors"

	"github.com/zeusync/easyvector/pkg/vector"
)

// ErrInvalidScenario wraps every validation failure reported by Load.
var ErrInvalidScenario = errors.New("invalid scenario")

// Error codes used in expect_error and StepResult.Error.
const (
	CodeDimensionMismatch = "dimension_mismatch"
	CodeIndexOutOfRange   = "index_out_of_range"
	CodeZeroVector        = "zero_vector"
	CodeNonFinite         = "non_finite"
	CodeNilVector         = "nil_vector"
	CodeUnknown           = "unknown"
)

var knownCodes = map[string]bool{
	CodeDimensionMismatch: true,
	CodeIndexOutOfRange:   true,
	CodeZeroVector:        true,
	CodeNonFinite:         true,
	CodeNilVector:         true,
}

// ErrorCode maps a vector error to its stable code.
func ErrorCode(err error) string {
	switch {
	case errors.Is(err, vector.ErrDimensionMismatch):
		return CodeDimensionMismatch
	case errors.Is(err, vector.ErrIndexOutOfRange):
		return CodeIndexOutOfRange
	case errors.Is(err, vector.ErrZeroVector):
		return CodeZeroVector
	case errors.Is(err, vector.ErrNonFinite):
		return CodeNonFinite
	case errors.Is(err, vector.ErrNilVector):
		return CodeNilVector
	default:
		return CodeUnknown
	}
}
