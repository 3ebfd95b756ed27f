package runner

import (
	"io"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/zeusync/easyvector/internal/scenario"
	"github.com/zeusync/easyvector/pkg/sequence"
)

type DocumentInfo struct {
	Source string `yaml:"source,omitempty"`
	Digest string `yaml:"digest"`
}

// Report is the outcome of one Run.
type Report struct {
	RunID     string            `yaml:"run_id"`
	Started   time.Time         `yaml:"started"`
	Duration  time.Duration     `yaml:"duration"`
	Documents []DocumentInfo    `yaml:"documents"`
	Scenarios []scenario.Result `yaml:"scenarios"`
}

// Failed returns the number of scenarios that did not pass.
func (r *Report) Failed() int {
	return sequence.From(r.Scenarios).Filter(func(s scenario.Result) bool { return !s.Passed }).Count()
}

// PassRate returns the fraction of scenarios that passed, 1 for an empty run.
func (r *Report) PassRate() float64 {
	if len(r.Scenarios) == 0 {
		return 1
	}
	return float64(len(r.Scenarios)-r.Failed()) / float64(len(r.Scenarios))
}

func (r *Report) Passed() bool {
	return r.Failed() == 0
}

// WriteYAML encodes the report to w.
func (r *Report) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return err
	}
	return enc.Close()
}
