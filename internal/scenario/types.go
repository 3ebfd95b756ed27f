package scenario

import "time"

// Document is one scenario file.
type Document struct {
	Scenarios []Scenario `yaml:"scenarios"`

	// Source is the path the document was read from, if any.
	Source string `yaml:"-"`
	// Digest is the xxhash of the raw document bytes, hex encoded.
	Digest string `yaml:"-"`
}

// Scenario is a named set of vectors and the steps applied to them in order.
type Scenario struct {
	Name    string               `yaml:"name"`
	Vectors map[string][]float64 `yaml:"vectors"`
	Steps   []Step               `yaml:"steps"`
}

// Step applies one operation. Args[0] is the receiver, Args[1] the operand.
type Step struct {
	Op          Op       `yaml:"op"`
	Args        []string `yaml:"args"`
	Scalar      *float64 `yaml:"scalar,omitempty"`
	Index       *int     `yaml:"index,omitempty"`
	Into        string   `yaml:"into,omitempty"`
	Expect      any      `yaml:"expect,omitempty"`
	ExpectError string   `yaml:"expect_error,omitempty"`
}

// Result is the outcome of evaluating one scenario.
type Result struct {
	Name     string        `yaml:"name"`
	Source   string        `yaml:"source,omitempty"`
	Passed   bool          `yaml:"passed"`
	Duration time.Duration `yaml:"duration"`
	Steps    []StepResult  `yaml:"steps"`
}

// StepResult is the outcome of one step. Value is a float64, int, bool,
// string or []float64 depending on the operation.
type StepResult struct {
	Index  int      `yaml:"index"`
	Op     Op       `yaml:"op"`
	Args   []string `yaml:"args,flow"`
	Value  any      `yaml:"value,omitempty"`
	Error  string   `yaml:"error,omitempty"`
	Passed bool     `yaml:"passed"`
	Reason string   `yaml:"reason,omitempty"`
}
