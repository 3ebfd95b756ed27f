package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
	"gopkg.in/yaml.v3"
)

// LoadFile reads and validates the scenario document at path.
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	doc, err := Load(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	doc.Source = path
	return doc, nil
}

// Load decodes and validates a YAML scenario document. Unknown fields are rejected.
func Load(data []byte) (*Document, error) {
	var doc Document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	doc.Digest = fmt.Sprintf("%016x", xxhash.Sum64(data))
	return &doc, nil
}

// Validate checks names, dimensions, operations and references.
func (d *Document) Validate() error {
	if len(d.Scenarios) == 0 {
		return fmt.Errorf("%w: no scenarios", ErrInvalidScenario)
	}
	names := make(map[string]bool, len(d.Scenarios))
	for i := range d.Scenarios {
		s := &d.Scenarios[i]
		if s.Name == "" {
			return fmt.Errorf("%w: scenario %d has no name", ErrInvalidScenario, i)
		}
		if names[s.Name] {
			return fmt.Errorf("%w: duplicate scenario %q", ErrInvalidScenario, s.Name)
		}
		names[s.Name] = true
		if err := s.validate(); err != nil {
			return fmt.Errorf("%w: scenario %q: %w", ErrInvalidScenario, s.Name, err)
		}
	}
	return nil
}

func (s *Scenario) validate() error {
	defined := make(map[string]bool, len(s.Vectors))
	for name, cs := range s.Vectors {
		if name == "" {
			return errors.New("empty vector name")
		}
		if len(cs) != 2 && len(cs) != 3 {
			return fmt.Errorf("vector %q has %d components, want 2 or 3", name, len(cs))
		}
		defined[name] = true
	}

	for i, step := range s.Steps {
		def, ok := ops[step.Op]
		if !ok {
			return fmt.Errorf("step %d: unknown op %q", i, step.Op)
		}
		if n := len(step.Args); n < def.minArgs || n > def.maxArgs {
			return fmt.Errorf("step %d: %s takes %d to %d args, got %d", i, step.Op, def.minArgs, def.maxArgs, n)
		}
		for _, arg := range step.Args {
			if !defined[arg] {
				return fmt.Errorf("step %d: undefined vector %q", i, arg)
			}
		}
		if def.needsScalar && step.Scalar == nil {
			return fmt.Errorf("step %d: %s requires scalar", i, step.Op)
		}
		if def.needsIndex && step.Index == nil {
			return fmt.Errorf("step %d: %s requires index", i, step.Op)
		}
		if step.Expect != nil && step.ExpectError != "" {
			return fmt.Errorf("step %d: expect and expect_error are exclusive", i)
		}
		if step.ExpectError != "" && !knownCodes[step.ExpectError] {
			return fmt.Errorf("step %d: unknown error code %q", i, step.ExpectError)
		}
		if step.Into != "" {
			if !def.yieldsVector {
				return fmt.Errorf("step %d: %s does not produce a vector", i, step.Op)
			}
			if defined[step.Into] {
				return fmt.Errorf("step %d: vector %q already defined", i, step.Into)
			}
			defined[step.Into] = true
		}
	}
	return nil
}
