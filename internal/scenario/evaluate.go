package scenario

import (
	"context"
	"fmt"
	"time"

	"github.com/zeusync/easyvector/pkg/vector"
)

// Evaluate runs the steps of s in order against fresh vectors built from
// s.Vectors. Mutating steps update the named vector for later steps.
// Evaluation stops between steps once ctx is done; the partial result is
// returned together with the context error.
func Evaluate(ctx context.Context, s Scenario) (Result, error) {
	start := time.Now()
	res := Result{
		Name:   s.Name,
		Passed: true,
		Steps:  make([]StepResult, 0, len(s.Steps)),
	}

	env := make(map[string]vector.Vector, len(s.Vectors))
	for name, cs := range s.Vectors {
		v, err := build(cs)
		if err != nil {
			return res, fmt.Errorf("scenario %q vector %q: %w", s.Name, name, err)
		}
		env[name] = v
	}

	for i, step := range s.Steps {
		if err := ctx.Err(); err != nil {
			res.Passed = false
			res.Duration = time.Since(start)
			return res, err
		}
		sr := evalStep(env, i, step)
		if !sr.Passed {
			res.Passed = false
		}
		res.Steps = append(res.Steps, sr)
	}

	res.Duration = time.Since(start)
	return res, nil
}

func build(cs []float64) (vector.Vector, error) {
	switch len(cs) {
	case 2:
		return vector.New2D(cs[0], cs[1]), nil
	case 3:
		return vector.New3D(cs[0], cs[1], cs[2]), nil
	default:
		return nil, fmt.Errorf("%w: %d components", vector.ErrDimensionMismatch, len(cs))
	}
}

func evalStep(env map[string]vector.Vector, i int, step Step) StepResult {
	sr := StepResult{Index: i, Op: step.Op, Args: step.Args}

	def, ok := ops[step.Op]
	if !ok {
		sr.Reason = fmt.Sprintf("unknown op %q", step.Op)
		return sr
	}

	operands := make([]vector.Vector, 2)
	for j, name := range step.Args {
		v, ok := env[name]
		if !ok {
			sr.Reason = fmt.Sprintf("vector %q unavailable", name)
			return sr
		}
		operands[j] = v
	}

	value, produced, err := def.eval(step, operands[0], operands[1])
	if err != nil {
		sr.Error = ErrorCode(err)
		if step.ExpectError == sr.Error {
			sr.Passed = true
		} else {
			sr.Reason = err.Error()
		}
		return sr
	}

	sr.Value = value
	if step.Into != "" && produced != nil {
		env[step.Into] = produced
	}

	switch {
	case step.ExpectError != "":
		sr.Reason = fmt.Sprintf("expected error %s", step.ExpectError)
	case step.Expect != nil:
		sr.Passed, sr.Reason = matches(step.Expect, value)
	default:
		sr.Passed = true
	}
	return sr
}

// matches compares a decoded YAML expectation with an operation result.
// Floating point values compare within vector.Epsilon.
func matches(expect, got any) (bool, string) {
	mismatch := fmt.Sprintf("expected %v, got %v", expect, got)
	switch g := got.(type) {
	case float64:
		want, ok := toFloat(expect)
		if !ok || !vector.ApproxEqual(want, g) {
			return false, mismatch
		}
	case int:
		want, ok := toFloat(expect)
		if !ok || want != float64(g) {
			return false, mismatch
		}
	case []float64:
		list, ok := expect.([]any)
		if !ok || len(list) != len(g) {
			return false, mismatch
		}
		for i, e := range list {
			want, ok := toFloat(e)
			if !ok || !vector.ApproxEqual(want, g[i]) {
				return false, mismatch
			}
		}
	case bool, string:
		if expect != got {
			return false, mismatch
		}
	default:
		return false, fmt.Sprintf("cannot compare %T", got)
	}
	return true, ""
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}
